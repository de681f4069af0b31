package salon

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salonadmin/pkg/enums"
)

// CampaignInput is the campaign definition sent to the platform once the wizard completes.
type CampaignInput struct {
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	Type          enums.CampaignType  `json:"type"`
	DiscountType  enums.DiscountType  `json:"discount_type"`
	DiscountValue decimal.Decimal     `json:"discount_value"`
	ServiceIDs    []int64             `json:"service_ids,omitempty"`
	Tiers         []enums.LoyaltyTier `json:"tiers,omitempty"`
	NewCustomers  bool                `json:"new_customers_only"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	DailyStart    *string             `json:"daily_start,omitempty"`
	DailyEnd      *string             `json:"daily_end,omitempty"`
	Weekdays      []string            `json:"weekdays,omitempty"`
	BannerMessage string              `json:"banner_message"`
	Terms         string              `json:"terms,omitempty"`
}

// Campaign is the platform's view of a created campaign.
type Campaign struct {
	ID      int64  `json:"id"`
	PlaceID int64  `json:"place_id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
}
