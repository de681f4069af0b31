package enums

import "fmt"

// CampaignStep is one stage of the campaign creation wizard, in order.
type CampaignStep string

const (
	CampaignStepDetails   CampaignStep = "details"
	CampaignStepDiscount  CampaignStep = "discount"
	CampaignStepTargeting CampaignStep = "targeting"
	CampaignStepSchedule  CampaignStep = "schedule"
	CampaignStepReview    CampaignStep = "review"
)

var orderedCampaignSteps = []CampaignStep{
	CampaignStepDetails,
	CampaignStepDiscount,
	CampaignStepTargeting,
	CampaignStepSchedule,
	CampaignStepReview,
}

// CampaignSteps returns the wizard steps in order.
func CampaignSteps() []CampaignStep {
	out := make([]CampaignStep, len(orderedCampaignSteps))
	copy(out, orderedCampaignSteps)
	return out
}

// Index returns the zero-based position of the step, or -1 when unknown.
func (s CampaignStep) Index() int {
	for i, candidate := range orderedCampaignSteps {
		if candidate == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether the value is a known CampaignStep.
func (s CampaignStep) IsValid() bool {
	return s.Index() >= 0
}

// String implements fmt.Stringer.
func (s CampaignStep) String() string {
	return string(s)
}

// CampaignStepAt returns the step at index i.
func CampaignStepAt(i int) (CampaignStep, bool) {
	if i < 0 || i >= len(orderedCampaignSteps) {
		return "", false
	}
	return orderedCampaignSteps[i], true
}

// CampaignType is the promotional mechanic a campaign uses.
type CampaignType string

const (
	CampaignTypeDiscount     CampaignType = "discount"
	CampaignTypeHappyHour    CampaignType = "happy_hour"
	CampaignTypeFlashSale    CampaignType = "flash_sale"
	CampaignTypeLoyaltyBoost CampaignType = "loyalty_boost"
	CampaignTypeFirstVisit   CampaignType = "first_visit"
)

var validCampaignTypes = []CampaignType{
	CampaignTypeDiscount,
	CampaignTypeHappyHour,
	CampaignTypeFlashSale,
	CampaignTypeLoyaltyBoost,
	CampaignTypeFirstVisit,
}

// IsValid reports whether the value is a known CampaignType.
func (c CampaignType) IsValid() bool {
	for _, candidate := range validCampaignTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCampaignType converts raw input into a CampaignType.
func ParseCampaignType(value string) (CampaignType, error) {
	for _, candidate := range validCampaignTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid campaign type %q", value)
}

// DiscountType selects how a campaign discount value is interpreted.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// IsValid reports whether the value is a known DiscountType.
func (d DiscountType) IsValid() bool {
	return d == DiscountTypePercentage || d == DiscountTypeFixed
}

// DraftStatus tracks whether a campaign draft was already sent to the platform.
type DraftStatus string

const (
	DraftStatusOpen       DraftStatus = "open"
	DraftStatusSubmitting DraftStatus = "submitting"
	DraftStatusSubmitted  DraftStatus = "submitted"
)
