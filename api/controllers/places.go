package controllers

import (
	"net/http"

	"github.com/angelmondragon/salonadmin/api/middleware"
	"github.com/angelmondragon/salonadmin/api/responses"
	"github.com/angelmondragon/salonadmin/api/validators"
	"github.com/angelmondragon/salonadmin/internal/directory"
	"github.com/angelmondragon/salonadmin/internal/places"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/logger"
)

// PlacesList returns the caller's places reconciled by search, type and page.
func PlacesList(svc places.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "place service unavailable"))
			return
		}

		placeType, err := validators.ParseQueryEnum(r, "type", enums.ParsePlaceType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := validators.ParsePage(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.List(r.Context(), directory.PlaceQuery{
			Search: validators.ParseSearch(r),
			Type:   placeType,
			Page:   page,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func PlaceCreate(svc places.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "place service unavailable"))
			return
		}

		var input places.PlaceInput
		if err := validators.DecodeJSON(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		place, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, place)
	}
}

func PlaceUpdate(svc places.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "place service unavailable"))
			return
		}

		placeID := middleware.PlaceIDFromContext(r.Context())
		if placeID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "place context missing"))
			return
		}

		var input places.PlaceInput
		if err := validators.DecodeJSON(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		place, err := svc.Update(r.Context(), placeID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, place)
	}
}
