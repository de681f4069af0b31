package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/salonadmin/api/middleware"
	"github.com/angelmondragon/salonadmin/internal/bookings"
	"github.com/angelmondragon/salonadmin/internal/calendar"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
)

type stubBookingService struct {
	from, to   time.Time
	placeID    int64
	actor      bookings.Actor
	start, end time.Time
	action     string
	status     enums.BookingStatus
	err        error
}

func (s *stubBookingService) Events(_ context.Context, placeID int64, from, to time.Time) ([]calendar.Event, error) {
	s.placeID, s.from, s.to = placeID, from, to
	return []calendar.Event{{ID: 1, Title: "Cut"}}, s.err
}

func (s *stubBookingService) Move(_ context.Context, actor bookings.Actor, id int64, start, end time.Time) (*calendar.Event, error) {
	s.actor, s.start, s.end, s.action = actor, start, end, "move"
	return s.result(id)
}

func (s *stubBookingService) Resize(_ context.Context, actor bookings.Actor, id int64, start, end time.Time) (*calendar.Event, error) {
	s.actor, s.start, s.end, s.action = actor, start, end, "resize"
	return s.result(id)
}

func (s *stubBookingService) Accept(_ context.Context, actor bookings.Actor, id int64) (*calendar.Event, error) {
	s.actor, s.action = actor, "accept"
	return s.result(id)
}

func (s *stubBookingService) Decline(_ context.Context, actor bookings.Actor, id int64) (*calendar.Event, error) {
	s.actor, s.action = actor, "decline"
	return s.result(id)
}

func (s *stubBookingService) Cancel(_ context.Context, actor bookings.Actor, id int64) (*calendar.Event, error) {
	s.actor, s.action = actor, "cancel"
	return s.result(id)
}

func (s *stubBookingService) SetStatus(_ context.Context, actor bookings.Actor, id int64, status enums.BookingStatus) (*calendar.Event, error) {
	s.actor, s.action, s.status = actor, "status", status
	return s.result(id)
}

func (s *stubBookingService) result(id int64) (*calendar.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &calendar.Event{ID: id, Title: "Cut"}, nil
}

func TestPlaceCalendarParsesRange(t *testing.T) {
	svc := &stubBookingService{}
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	req := newRequest(http.MethodGet, "/api/v1/places/7/calendar?from=2024-03-01&to=2024-03-07", "", nil, 7)
	req = req.WithContext(middleware.WithPlaceID(req.Context(), 7))
	resp := httptest.NewRecorder()
	PlaceCalendar(svc, loc, testLogger()).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, int64(7), svc.placeID)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), svc.from)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, loc), svc.to)

	var body struct {
		Data struct {
			Events []calendar.Event `json:"events"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Data.Events, 1)
}

func TestPlaceCalendarRequiresDates(t *testing.T) {
	req := newRequest(http.MethodGet, "/api/v1/places/7/calendar?from=2024-03-01", "", nil, 7)
	req = req.WithContext(middleware.WithPlaceID(req.Context(), 7))
	resp := httptest.NewRecorder()
	PlaceCalendar(&stubBookingService{}, time.UTC, testLogger()).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBookingMovePassesActorAndInterval(t *testing.T) {
	svc := &stubBookingService{}
	body := `{"start":"2024-03-01T10:00:00Z","end":"2024-03-01T11:00:00Z"}`
	req := newRequest(http.MethodPost, "/api/v1/bookings/5/move", body, map[string]string{"bookingId": "5"}, 7, 8)
	resp := httptest.NewRecorder()
	BookingMove(svc, testLogger()).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "move", svc.action)
	assert.Equal(t, bookings.Actor{UserID: 42, PlaceIDs: []int64{7, 8}}, svc.actor)
	assert.True(t, svc.start.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.True(t, svc.end.Equal(time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)))
}

func TestBookingResizeRejectsMissingEnd(t *testing.T) {
	svc := &stubBookingService{}
	req := newRequest(http.MethodPost, "/api/v1/bookings/5/resize", `{"start":"2024-03-01T10:00:00Z"}`, map[string]string{"bookingId": "5"}, 7)
	resp := httptest.NewRecorder()
	BookingResize(svc, testLogger()).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, svc.action)
}

func TestBookingActionRoutesToService(t *testing.T) {
	for _, action := range []enums.BookingAction{enums.BookingActionAccept, enums.BookingActionDecline, enums.BookingActionCancel} {
		svc := &stubBookingService{}
		req := newRequest(http.MethodPost, "/api/v1/bookings/5/"+string(action), "", map[string]string{"bookingId": "5"}, 7)
		resp := httptest.NewRecorder()
		BookingAction(svc, action, testLogger()).ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code, string(action))
		assert.Equal(t, string(action), svc.action)
	}
}

func TestBookingActionMapsStateConflict(t *testing.T) {
	svc := &stubBookingService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "booking cannot be accepted")}
	req := newRequest(http.MethodPost, "/api/v1/bookings/5/accept", "", map[string]string{"bookingId": "5"}, 7)
	resp := httptest.NewRecorder()
	BookingAction(svc, enums.BookingActionAccept, testLogger()).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestBookingRejectsBadID(t *testing.T) {
	req := newRequest(http.MethodPost, "/api/v1/bookings/abc/accept", "", map[string]string{"bookingId": "abc"}, 7)
	resp := httptest.NewRecorder()
	BookingAction(&stubBookingService{}, enums.BookingActionAccept, testLogger()).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBookingSetStatusValidatesStatus(t *testing.T) {
	svc := &stubBookingService{}

	req := newRequest(http.MethodPut, "/api/v1/bookings/5/status", `{"status":"archived"}`, map[string]string{"bookingId": "5"}, 7)
	resp := httptest.NewRecorder()
	BookingSetStatus(svc, testLogger()).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	req = newRequest(http.MethodPut, "/api/v1/bookings/5/status", `{"status":"completed"}`, map[string]string{"bookingId": "5"}, 7)
	resp = httptest.NewRecorder()
	BookingSetStatus(svc, testLogger()).ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, enums.BookingStatusCompleted, svc.status)
}

func TestBookingHandlersRequireService(t *testing.T) {
	req := newRequest(http.MethodPost, "/api/v1/bookings/5/accept", "", map[string]string{"bookingId": "5"}, 7)
	resp := httptest.NewRecorder()
	BookingAction(nil, enums.BookingActionAccept, testLogger()).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
