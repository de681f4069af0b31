package campaigns

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/validation"
)

// DetailsStep names the campaign and picks its mechanic.
type DetailsStep struct {
	Name          string             `json:"name" validate:"required,max=120"`
	Description   string             `json:"description" validate:"max=1000"`
	Type          enums.CampaignType `json:"type" validate:"required,oneof=discount happy_hour flash_sale loyalty_boost first_visit"`
	BannerMessage string             `json:"banner_message" validate:"required,max=160"`
	Terms         string             `json:"terms" validate:"max=2000"`
}

// DiscountStep sets the discount applied to matching bookings.
type DiscountStep struct {
	DiscountType  enums.DiscountType `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal    `json:"discount_value"`
}

// TargetingStep restricts which services and customers the campaign applies to. Empty
// lists mean every service and every tier.
type TargetingStep struct {
	ServiceIDs       []int64             `json:"service_ids" validate:"omitempty,unique,dive,gt=0"`
	Tiers            []enums.LoyaltyTier `json:"tiers" validate:"omitempty,unique,dive,oneof=bronze silver gold platinum"`
	NewCustomersOnly bool                `json:"new_customers_only"`
}

// ScheduleStep bounds the campaign in time.
type ScheduleStep struct {
	StartDate  string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	DailyStart *string  `json:"daily_start" validate:"omitempty,clock"`
	DailyEnd   *string  `json:"daily_end" validate:"omitempty,clock"`
	Weekdays   []string `json:"weekdays" validate:"omitempty,unique,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

// Payload accumulates the data entered at every step of a draft.
type Payload struct {
	Details   *DetailsStep   `json:"details,omitempty"`
	Discount  *DiscountStep  `json:"discount,omitempty"`
	Targeting *TargetingStep `json:"targeting,omitempty"`
	Schedule  *ScheduleStep  `json:"schedule,omitempty"`
}

type stepValidator func(Payload) error

// stepValidators holds the rules checked before leaving each step. review re-checks
// every earlier step.
var stepValidators = map[enums.CampaignStep]stepValidator{
	enums.CampaignStepDetails:   validateDetails,
	enums.CampaignStepDiscount:  validateDiscount,
	enums.CampaignStepTargeting: validateTargeting,
	enums.CampaignStepSchedule:  validateSchedule,
	enums.CampaignStepReview:    validateAll,
}

func validateStep(step enums.CampaignStep, payload Payload) error {
	rule, ok := stepValidators[step]
	if !ok {
		return nil
	}
	return validation.Wrap(rule(payload))
}

func validateDetails(p Payload) error {
	return validation.Struct(valueOrZero(p.Details))
}

func validateDiscount(p Payload) error {
	step := valueOrZero(p.Discount)
	var rule error
	value := step.DiscountValue
	switch step.DiscountType {
	case enums.DiscountTypePercentage:
		if !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(100)) {
			rule = validation.Fieldf("discount_value", "must be greater than 0 and at most 100")
		}
	case enums.DiscountTypeFixed:
		switch {
		case !value.IsPositive():
			rule = validation.Fieldf("discount_value", "must be greater than 0")
		case !value.Equal(value.Round(2)):
			rule = validation.Fieldf("discount_value", "must have at most two decimals")
		}
	}
	return validation.Collect(validation.Struct(step), rule)
}

func validateTargeting(p Payload) error {
	step := valueOrZero(p.Targeting)
	var tiers, newOnly error
	if step.NewCustomersOnly && len(step.Tiers) > 0 {
		tiers = validation.Fieldf("tiers", "must be empty when targeting new customers only")
	}
	if p.Details != nil && p.Details.Type == enums.CampaignTypeFirstVisit && !step.NewCustomersOnly {
		newOnly = validation.Fieldf("new_customers_only", "must be set for first visit campaigns")
	}
	return validation.Collect(validation.Struct(step), tiers, newOnly)
}

func validateSchedule(p Payload) error {
	step := valueOrZero(p.Schedule)
	var dates, window error

	start, startErr := time.Parse(time.DateOnly, step.StartDate)
	end, endErr := time.Parse(time.DateOnly, step.EndDate)
	if startErr == nil && endErr == nil && end.Before(start) {
		dates = validation.Fieldf("end_date", "must not be before start_date")
	}

	hasStart := step.DailyStart != nil && *step.DailyStart != ""
	hasEnd := step.DailyEnd != nil && *step.DailyEnd != ""
	switch {
	case hasStart != hasEnd:
		window = validation.Fieldf("daily_end", "daily_start and daily_end must be set together")
	case hasStart && validation.IsClock(*step.DailyStart) && validation.IsClock(*step.DailyEnd) && *step.DailyEnd <= *step.DailyStart:
		window = validation.Fieldf("daily_end", "must be after daily_start")
	case !hasStart && p.Details != nil && p.Details.Type == enums.CampaignTypeHappyHour:
		window = validation.Fieldf("daily_start", "is required for happy hour campaigns")
	}
	return validation.Collect(validation.Struct(step), dates, window)
}

func validateAll(p Payload) error {
	return validation.Collect(
		validateDetails(p),
		validateDiscount(p),
		validateTargeting(p),
		validateSchedule(p),
	)
}

func valueOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
