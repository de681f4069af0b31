package controllers

import (
	"net/http"

	"github.com/angelmondragon/salonadmin/api/middleware"
	"github.com/angelmondragon/salonadmin/api/responses"
	"github.com/angelmondragon/salonadmin/api/validators"
	"github.com/angelmondragon/salonadmin/internal/customers"
	"github.com/angelmondragon/salonadmin/internal/directory"
	"github.com/angelmondragon/salonadmin/internal/employees"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/logger"
)

// PlaceCustomers returns the reconciled customer directory of the place in the URL.
func PlaceCustomers(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		placeID := middleware.PlaceIDFromContext(r.Context())
		if placeID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "place context missing"))
			return
		}

		tier, err := validators.ParseQueryEnum(r, "tier", enums.ParseLoyaltyTier)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bucket, err := validators.ParseQueryEnum(r, "booking_status", enums.ParseBookingBucket)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := validators.ParsePage(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.List(r.Context(), placeID, directory.CustomerQuery{
			Search:        validators.ParseSearch(r),
			Tier:          tier,
			BookingStatus: bucket,
			Page:          page,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// PlaceEmployees returns the reconciled staff directory of the place in the URL.
func PlaceEmployees(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employee service unavailable"))
			return
		}

		placeID := middleware.PlaceIDFromContext(r.Context())
		if placeID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "place context missing"))
			return
		}

		active, err := validators.ParseQueryEnum(r, "active", directory.ParseActiveFilter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := validators.ParsePage(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.List(r.Context(), placeID, directory.EmployeeQuery{
			Search: validators.ParseSearch(r),
			Active: active,
			Page:   page,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
