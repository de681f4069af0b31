package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/salonadmin/api/middleware"
	"github.com/angelmondragon/salonadmin/api/responses"
	"github.com/angelmondragon/salonadmin/api/validators"
	"github.com/angelmondragon/salonadmin/internal/bookings"
	"github.com/angelmondragon/salonadmin/internal/calendar"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/logger"
)

const bookingParam = "bookingId"

type intervalRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

type statusRequest struct {
	Status enums.BookingStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// PlaceCalendar returns the calendar events of a place between from and to (inclusive
// dates in the venue timezone).
func PlaceCalendar(svc bookings.Service, loc *time.Location, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		placeID := middleware.PlaceIDFromContext(r.Context())
		if placeID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "place context missing"))
			return
		}

		from, err := validators.ParseQueryDate(r, "from", loc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.ParseQueryDate(r, "to", loc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		events, err := svc.Events(r.Context(), placeID, from, to)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"events": events})
	}
}

// BookingMove applies a drag-and-drop to a booking.
func BookingMove(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return bookingInterval(svc, logg, bookings.Service.Move)
}

// BookingResize applies a resize to a booking.
func BookingResize(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return bookingInterval(svc, logg, bookings.Service.Resize)
}

type intervalFunc func(bookings.Service, context.Context, bookings.Actor, int64, time.Time, time.Time) (*calendar.Event, error)

func bookingInterval(svc bookings.Service, logg *logger.Logger, apply intervalFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		bookingID, err := validators.URLParamInt64(r, bookingParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload intervalRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := apply(svc, r.Context(), actorFromRequest(r), bookingID, payload.Start, payload.End)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, event)
	}
}

type actionFunc func(bookings.Service, context.Context, bookings.Actor, int64) (*calendar.Event, error)

// BookingAction runs a status action (accept, decline, cancel) on a booking.
func BookingAction(svc bookings.Service, action enums.BookingAction, logg *logger.Logger) http.HandlerFunc {
	var apply actionFunc
	switch action {
	case enums.BookingActionAccept:
		apply = bookings.Service.Accept
	case enums.BookingActionDecline:
		apply = bookings.Service.Decline
	case enums.BookingActionCancel:
		apply = bookings.Service.Cancel
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || apply == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking action unavailable"))
			return
		}

		bookingID, err := validators.URLParamInt64(r, bookingParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := apply(svc, r.Context(), actorFromRequest(r), bookingID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, event)
	}
}

// BookingSetStatus sets any valid status on a booking.
func BookingSetStatus(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		bookingID, err := validators.URLParamInt64(r, bookingParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload statusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.SetStatus(r.Context(), actorFromRequest(r), bookingID, payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, event)
	}
}

func actorFromRequest(r *http.Request) bookings.Actor {
	return bookings.Actor{
		UserID:   middleware.UserIDFromContext(r.Context()),
		PlaceIDs: middleware.PlaceIDsFromContext(r.Context()),
	}
}
