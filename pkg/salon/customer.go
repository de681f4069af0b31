// Package salon holds the records exchanged with the salon platform API.
package salon

import (
	"time"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/types"
)

// Customer is a user as seen by one place. The same user appears once per place.
type Customer struct {
	UserID  int64   `json:"user_id"`
	PlaceID int64   `json:"place_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`

	TotalBookings     int        `json:"total_bookings"`
	CompletedBookings int        `json:"completed_bookings"`
	FirstBookingAt    *time.Time `json:"first_booking_at,omitempty"`
	LastBookingAt     *time.Time `json:"last_booking_at,omitempty"`

	PointsBalance *int              `json:"points_balance,omitempty"`
	Tier          enums.LoyaltyTier `json:"tier,omitempty"`

	DataProcessingConsent   types.TriState `json:"data_processing_consent"`
	DataProcessingConsentAt *time.Time     `json:"data_processing_consent_at,omitempty"`
	MarketingConsent        types.TriState `json:"marketing_consent"`
	MarketingConsentAt      *time.Time     `json:"marketing_consent_at,omitempty"`
	ConsentVersion          *string        `json:"consent_version,omitempty"`
	ConsentVersionAt        *time.Time     `json:"consent_version_at,omitempty"`

	RewardsSubscribed types.TriState `json:"rewards_subscribed"`
	AccountActive     types.TriState `json:"account_active"`
}

// CustomerKey is the per-place identity used for list deduplication.
type CustomerKey struct {
	Email   string
	PlaceID int64
}

// Key returns the deduplication key of the customer.
func (c Customer) Key() CustomerKey {
	return CustomerKey{Email: c.Email, PlaceID: c.PlaceID}
}

// PendingBookings is the number of bookings not yet completed, never negative.
func (c Customer) PendingBookings() int {
	if diff := c.Total() - c.Completed(); diff > 0 {
		return diff
	}
	return 0
}

// Total returns the booking total clamped at zero.
func (c Customer) Total() int {
	return max(c.TotalBookings, 0)
}

// Completed returns the completed booking count clamped at zero.
func (c Customer) Completed() int {
	return max(c.CompletedBookings, 0)
}
