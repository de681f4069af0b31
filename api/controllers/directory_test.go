package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/salonadmin/api/middleware"
	"github.com/angelmondragon/salonadmin/internal/directory"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/pagination"
)

type stubCustomerService struct {
	placeID int64
	query   directory.CustomerQuery
	calls   int
}

func (s *stubCustomerService) List(_ context.Context, placeID int64, query directory.CustomerQuery) (*directory.CustomerDirectory, error) {
	s.calls++
	s.placeID = placeID
	s.query = query
	return &directory.CustomerDirectory{}, nil
}

type stubEmployeeService struct {
	query directory.EmployeeQuery
	calls int
}

func (s *stubEmployeeService) List(_ context.Context, _ int64, query directory.EmployeeQuery) (*directory.EmployeeDirectory, error) {
	s.calls++
	s.query = query
	return &directory.EmployeeDirectory{}, nil
}

func placeRequest(target string) *http.Request {
	req := newRequest(http.MethodGet, target, "", nil, 7)
	return req.WithContext(middleware.WithPlaceID(req.Context(), 7))
}

func TestPlaceCustomersParsesFilters(t *testing.T) {
	svc := &stubCustomerService{}
	resp := httptest.NewRecorder()
	PlaceCustomers(svc, testLogger()).ServeHTTP(resp, placeRequest("/api/v1/places/7/customers?q=%20ana%20&tier=GOLD&booking_status=pending&limit=10&offset=20"))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(7), svc.placeID)
	assert.Equal(t, "ana", svc.query.Search)
	assert.Equal(t, enums.LoyaltyTierGold, svc.query.Tier)
	assert.Equal(t, enums.BookingBucketPending, svc.query.BookingStatus)
	assert.Equal(t, pagination.Params{Limit: 10, Offset: 20}, svc.query.Page)
}

func TestPlaceCustomersRejectsUnknownTier(t *testing.T) {
	svc := &stubCustomerService{}
	resp := httptest.NewRecorder()
	PlaceCustomers(svc, testLogger()).ServeHTTP(resp, placeRequest("/api/v1/places/7/customers?tier=diamond"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"field":"tier"`)
	assert.Zero(t, svc.calls)
}

func TestPlaceCustomersRequiresPlaceContext(t *testing.T) {
	resp := httptest.NewRecorder()
	req := newRequest(http.MethodGet, "/api/v1/places/7/customers", "", nil, 7)
	PlaceCustomers(&stubCustomerService{}, testLogger()).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestPlaceEmployeesActiveFilter(t *testing.T) {
	svc := &stubEmployeeService{}
	resp := httptest.NewRecorder()
	PlaceEmployees(svc, testLogger()).ServeHTTP(resp, placeRequest("/api/v1/places/7/employees?active=inactive"))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, directory.ActiveInactive, svc.query.Active)
	assert.Equal(t, pagination.DefaultLimit, svc.query.Page.Limit)

	resp = httptest.NewRecorder()
	PlaceEmployees(svc, testLogger()).ServeHTTP(resp, placeRequest("/api/v1/places/7/employees?active=maybe"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestDirectoryHandlersRequireService(t *testing.T) {
	resp := httptest.NewRecorder()
	PlaceCustomers(nil, testLogger()).ServeHTTP(resp, placeRequest("/api/v1/places/7/customers"))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	resp = httptest.NewRecorder()
	PlaceEmployees(nil, testLogger()).ServeHTTP(resp, placeRequest("/api/v1/places/7/employees"))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
