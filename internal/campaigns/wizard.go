package campaigns

import (
	"fmt"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
)

// firstStep is where every new draft starts.
const firstStep = enums.CampaignStepDetails

// advance returns the step after current once current validates.
func advance(current enums.CampaignStep, payload Payload) (enums.CampaignStep, error) {
	if current == enums.CampaignStepReview {
		return current, pkgerrors.New(pkgerrors.CodeStateConflict, "draft is at review; submit it instead")
	}
	next, ok := enums.CampaignStepAt(current.Index() + 1)
	if !ok {
		return current, pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("unknown wizard step %q", current))
	}
	if err := validateStep(current, payload); err != nil {
		return current, err
	}
	return next, nil
}

// retreat returns the previous step. The first step has none and stays put.
func retreat(current enums.CampaignStep) enums.CampaignStep {
	if prev, ok := enums.CampaignStepAt(current.Index() - 1); ok {
		return prev
	}
	return current
}

// setStep replaces the data of the given step in the payload.
func setStep(payload Payload, step enums.CampaignStep, data any) Payload {
	switch v := data.(type) {
	case *DetailsStep:
		payload.Details = v
	case *DiscountStep:
		payload.Discount = v
	case *TargetingStep:
		payload.Targeting = v
	case *ScheduleStep:
		payload.Schedule = v
	}
	return payload
}

// newStepData returns an empty value to decode the data of step into. review has none.
func newStepData(step enums.CampaignStep) (any, bool) {
	switch step {
	case enums.CampaignStepDetails:
		return &DetailsStep{}, true
	case enums.CampaignStepDiscount:
		return &DiscountStep{}, true
	case enums.CampaignStepTargeting:
		return &TargetingStep{}, true
	case enums.CampaignStepSchedule:
		return &ScheduleStep{}, true
	default:
		return nil, false
	}
}
