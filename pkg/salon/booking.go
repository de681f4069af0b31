package salon

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salonadmin/pkg/enums"
)

// Booking is a persisted appointment. BookingDate ("YYYY-MM-DD") and BookingTime ("HH:MM")
// are venue wall-clock values.
type Booking struct {
	ID      int64 `json:"id"`
	PlaceID int64 `json:"place_id"`

	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`

	Services    []BookingService `json:"services,omitempty"`
	ServiceID   *int64           `json:"service_id,omitempty"`
	ServiceName string           `json:"service_name,omitempty"`

	EmployeeID   *int64  `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`

	BookingDate string              `json:"booking_date"`
	BookingTime string              `json:"booking_time"`
	Duration    *int                `json:"duration,omitempty"`
	Status      enums.BookingStatus `json:"status"`
	Color       string              `json:"color,omitempty"`

	CampaignID            *int64       `json:"campaign_id,omitempty"`
	CampaignName          *string      `json:"campaign_name,omitempty"`
	CampaignBannerMessage *string      `json:"campaign_banner_message,omitempty"`
	CampaignType          *string      `json:"campaign_type,omitempty"`
	CampaignDiscountValue *json.Number `json:"campaign_discount_value,omitempty"`
	CampaignDiscountType  *string      `json:"campaign_discount_type,omitempty"`
}

// BookingService is one service line of a multi-service booking.
type BookingService struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Duration int             `json:"duration"`
}

// BookingUpdate is the partial mutation payload; nil fields are not sent.
type BookingUpdate struct {
	BookingDate *string              `json:"booking_date,omitempty"`
	BookingTime *string              `json:"booking_time,omitempty"`
	Duration    *int                 `json:"duration,omitempty"`
	Status      *enums.BookingStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u BookingUpdate) IsEmpty() bool {
	return u.BookingDate == nil && u.BookingTime == nil && u.Duration == nil && u.Status == nil
}
