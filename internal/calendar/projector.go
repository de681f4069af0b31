// Package calendar maps persisted bookings to calendar events and calendar
// interactions back to booking updates.
package calendar

import (
	"encoding/json"
	"math"
	"time"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/salon"
	"github.com/angelmondragon/salonadmin/pkg/types"
)

// DefaultDurationMinutes applies when a booking has neither services nor a duration.
const DefaultDurationMinutes = 60

const anchorLayout = "2006-01-02T15:04:05"

// Event is the calendar projection of one booking. Start and End are venue wall-clock
// readings; an unparseable anchor leaves both zero, rendered as null.
type Event struct {
	ID       int64               `json:"id"`
	Title    string              `json:"title"`
	Start    types.LocalDateTime `json:"start"`
	End      types.LocalDateTime `json:"end"`
	Duration int                 `json:"duration"`
	Color    string              `json:"color"`
	Resource Resource            `json:"resource"`
}

// Resource carries the booking fields the calendar renders next to an event.
type Resource struct {
	EmployeeID    *int64                `json:"employee_id,omitempty"`
	EmployeeName  *string               `json:"employee_name,omitempty"`
	ServiceID     *int64                `json:"service_id,omitempty"`
	ServiceName   string                `json:"service_name,omitempty"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	Status        enums.BookingStatus   `json:"status"`
	Actions       []enums.BookingAction `json:"actions"`

	CampaignID            *int64       `json:"campaign_id,omitempty"`
	CampaignName          *string      `json:"campaign_name,omitempty"`
	CampaignBannerMessage *string      `json:"campaign_banner_message,omitempty"`
	CampaignType          *string      `json:"campaign_type,omitempty"`
	CampaignDiscountValue *json.Number `json:"campaign_discount_value,omitempty"`
	CampaignDiscountType  *string      `json:"campaign_discount_type,omitempty"`
}

// ToEvent projects a booking. booking_date and booking_time are read as wall-clock
// values in loc without any conversion.
func ToEvent(booking salon.Booking, loc *time.Location) Event {
	if loc == nil {
		loc = time.UTC
	}
	duration := DurationMinutes(booking)
	start := anchor(booking, loc)
	var end time.Time
	if !start.IsZero() {
		end = start.Add(time.Duration(duration) * time.Minute)
	}

	color := booking.Color
	if color == "" {
		color = salon.DefaultColor
	}

	return Event{
		ID:       booking.ID,
		Title:    booking.CustomerName,
		Start:    types.LocalDateTime{Time: start},
		End:      types.LocalDateTime{Time: end},
		Duration: duration,
		Color:    color,
		Resource: resourceFor(booking),
	}
}

// ToEvents projects every booking, keeping input order.
func ToEvents(bookings []salon.Booking, loc *time.Location) []Event {
	events := make([]Event, 0, len(bookings))
	for _, booking := range bookings {
		events = append(events, ToEvent(booking, loc))
	}
	return events
}

// DurationMinutes sums the service durations when services are listed, otherwise
// falls back to the booking duration and finally to DefaultDurationMinutes.
func DurationMinutes(booking salon.Booking) int {
	if len(booking.Services) > 0 {
		total := 0
		for _, svc := range booking.Services {
			total += svc.Duration
		}
		return total
	}
	if booking.Duration != nil && *booking.Duration > 0 {
		return *booking.Duration
	}
	return DefaultDurationMinutes
}

func anchor(booking salon.Booking, loc *time.Location) time.Time {
	start, err := time.ParseInLocation(anchorLayout, booking.BookingDate+"T"+booking.BookingTime+":00", loc)
	if err != nil {
		return time.Time{}
	}
	return start
}

func resourceFor(booking salon.Booking) Resource {
	res := Resource{
		EmployeeID:            booking.EmployeeID,
		EmployeeName:          booking.EmployeeName,
		ServiceID:             booking.ServiceID,
		ServiceName:           booking.ServiceName,
		CustomerName:          booking.CustomerName,
		CustomerEmail:         booking.CustomerEmail,
		Status:                booking.Status,
		Actions:               AllowedActions(booking.Status),
		CampaignID:            booking.CampaignID,
		CampaignName:          booking.CampaignName,
		CampaignBannerMessage: booking.CampaignBannerMessage,
		CampaignType:          booking.CampaignType,
		CampaignDiscountValue: booking.CampaignDiscountValue,
		CampaignDiscountType:  booking.CampaignDiscountType,
	}
	if len(booking.Services) > 0 {
		primary := booking.Services[0]
		res.ServiceID = &primary.ID
		res.ServiceName = primary.Name
	}
	return res
}

// OnEventDrop builds the update for a moved event. The new start is sent as both the
// date and the time, and the duration always comes from the dropped interval.
func OnEventDrop(newStart, newEnd time.Time) salon.BookingUpdate {
	instant := newStart.Format(time.RFC3339)
	duration := minutesBetween(newStart, newEnd)
	return salon.BookingUpdate{
		BookingDate: &instant,
		BookingTime: &instant,
		Duration:    &duration,
	}
}

// OnEventResize builds the update for a resized event; only the duration changes.
func OnEventResize(start, end time.Time) salon.BookingUpdate {
	duration := minutesBetween(start, end)
	return salon.BookingUpdate{Duration: &duration}
}

func minutesBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
