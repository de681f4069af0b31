package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/salonadmin/internal/calendar"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/logger"
	"github.com/angelmondragon/salonadmin/pkg/pubsub"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

// maxRangeDays bounds the calendar window a single request may fetch.
const maxRangeDays = 92

type bookingStore interface {
	ListBookings(ctx context.Context, placeID int64, from, to time.Time) ([]salon.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (salon.Booking, error)
	UpdateBooking(ctx context.Context, bookingID int64, update salon.BookingUpdate) (salon.Booking, error)
}

// Actor identifies the admin performing a mutation.
type Actor struct {
	UserID   int64
	PlaceIDs []int64
}

func (a Actor) canAccess(placeID int64) bool {
	for _, id := range a.PlaceIDs {
		if id == placeID {
			return true
		}
	}
	return false
}

// Service drives the booking calendar: projection for reads, inverse mappings and the
// status machine for writes.
type Service interface {
	Events(ctx context.Context, placeID int64, from, to time.Time) ([]calendar.Event, error)
	Move(ctx context.Context, actor Actor, bookingID int64, start, end time.Time) (*calendar.Event, error)
	Resize(ctx context.Context, actor Actor, bookingID int64, start, end time.Time) (*calendar.Event, error)
	Accept(ctx context.Context, actor Actor, bookingID int64) (*calendar.Event, error)
	Decline(ctx context.Context, actor Actor, bookingID int64) (*calendar.Event, error)
	Cancel(ctx context.Context, actor Actor, bookingID int64) (*calendar.Event, error)
	SetStatus(ctx context.Context, actor Actor, bookingID int64, status enums.BookingStatus) (*calendar.Event, error)
}

type service struct {
	store  bookingStore
	events pubsub.BookingEvents
	loc    *time.Location
	logg   *logger.Logger
	now    func() time.Time
}

func NewService(store bookingStore, events pubsub.BookingEvents, loc *time.Location, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("booking store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if events == nil {
		events = pubsub.NoopPublisher{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		store:  store,
		events: events,
		loc:    loc,
		logg:   logg,
		now:    time.Now,
	}, nil
}

func (s *service) Events(ctx context.Context, placeID int64, from, to time.Time) ([]calendar.Event, error) {
	if placeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "place id is required")
	}
	if to.Before(from) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "to must not be before from").
			WithDetails(map[string]string{"to": "must not be before from"})
	}
	if calendarDays(from, to) > maxRangeDays {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date range too large").
			WithDetails(map[string]string{"to": "range must not exceed 92 days"})
	}
	records, err := s.store.ListBookings(ctx, placeID, from, to)
	if err != nil {
		return nil, err
	}
	return calendar.ToEvents(records, s.loc), nil
}

// calendarDays counts whole dates between from and to in from's zone, ignoring DST shifts.
func calendarDays(from, to time.Time) int {
	to = to.In(from.Location())
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func (s *service) Move(ctx context.Context, actor Actor, bookingID int64, start, end time.Time) (*calendar.Event, error) {
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}
	return s.mutate(ctx, actor, bookingID, "move", func(salon.Booking) (salon.BookingUpdate, error) {
		return calendar.OnEventDrop(start.In(s.loc), end.In(s.loc)), nil
	})
}

func (s *service) Resize(ctx context.Context, actor Actor, bookingID int64, start, end time.Time) (*calendar.Event, error) {
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}
	return s.mutate(ctx, actor, bookingID, "resize", func(salon.Booking) (salon.BookingUpdate, error) {
		return calendar.OnEventResize(start, end), nil
	})
}

func (s *service) Accept(ctx context.Context, actor Actor, bookingID int64) (*calendar.Event, error) {
	return s.transition(ctx, actor, bookingID, enums.BookingActionAccept, "")
}

func (s *service) Decline(ctx context.Context, actor Actor, bookingID int64) (*calendar.Event, error) {
	return s.transition(ctx, actor, bookingID, enums.BookingActionDecline, "")
}

func (s *service) Cancel(ctx context.Context, actor Actor, bookingID int64) (*calendar.Event, error) {
	return s.transition(ctx, actor, bookingID, enums.BookingActionCancel, "")
}

func (s *service) SetStatus(ctx context.Context, actor Actor, bookingID int64, status enums.BookingStatus) (*calendar.Event, error) {
	return s.transition(ctx, actor, bookingID, enums.BookingActionSet, status)
}

func (s *service) transition(ctx context.Context, actor Actor, bookingID int64, action enums.BookingAction, target enums.BookingStatus) (*calendar.Event, error) {
	return s.mutate(ctx, actor, bookingID, string(action), func(current salon.Booking) (salon.BookingUpdate, error) {
		next, err := calendar.Transition(current.Status, action, target)
		if err != nil {
			return salon.BookingUpdate{}, err
		}
		return salon.BookingUpdate{Status: &next}, nil
	})
}

// mutate loads the booking, checks access, sends the update built by build and publishes
// the change. The returned event reflects the platform's answer.
func (s *service) mutate(ctx context.Context, actor Actor, bookingID int64, action string, build func(salon.Booking) (salon.BookingUpdate, error)) (*calendar.Event, error) {
	if bookingID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "booking id is required")
	}
	current, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.canAccess(current.PlaceID) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}

	update, err := build(current)
	if err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateBooking(ctx, bookingID, update)
	if err != nil {
		return nil, err
	}
	if updated.ID == 0 {
		// empty PATCH response; read back the stored state
		if updated, err = s.store.GetBooking(ctx, bookingID); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, actor, updated, action)

	event := calendar.ToEvent(updated, s.loc)
	return &event, nil
}

func (s *service) publish(ctx context.Context, actor Actor, booking salon.Booking, action string) {
	event := pubsub.BookingChanged{
		BookingID:   booking.ID,
		PlaceID:     booking.PlaceID,
		Action:      action,
		Status:      string(booking.Status),
		ActorUserID: actor.UserID,
		OccurredAt:  s.now().UTC(),
	}
	if err := s.events.PublishBookingChanged(ctx, event); err != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"booking_id": booking.ID,
			"action":     action,
		})
		s.logg.Error(ctx, "bookings.publish_failed", err)
	}
}

func validateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "start and end are required").
			WithDetails(map[string]string{"start": "is required", "end": "is required"})
	}
	if !end.After(start) {
		return pkgerrors.New(pkgerrors.CodeValidation, "end must be after start").
			WithDetails(map[string]string{"end": "must be after start"})
	}
	return nil
}
