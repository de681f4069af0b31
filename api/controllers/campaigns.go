package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/salonadmin/api/middleware"
	"github.com/angelmondragon/salonadmin/api/responses"
	"github.com/angelmondragon/salonadmin/api/validators"
	"github.com/angelmondragon/salonadmin/internal/campaigns"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/logger"
)

const draftParam = "draftId"

// CampaignDraftStart opens a new wizard draft for the place in the URL.
func CampaignDraftStart(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		placeID := middleware.PlaceIDFromContext(r.Context())
		if placeID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "place context missing"))
			return
		}

		draft, err := svc.Start(r.Context(), placeID, middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, draft)
	}
}

// CampaignDraftList returns the caller's drafts for the place in the URL.
func CampaignDraftList(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		placeID := middleware.PlaceIDFromContext(r.Context())
		if placeID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "place context missing"))
			return
		}

		drafts, err := svc.List(r.Context(), placeID, middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"drafts": drafts})
	}
}

func CampaignDraftGet(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return draftStep(svc, logg, campaigns.Service.Get)
}

func CampaignDraftNext(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return draftStep(svc, logg, campaigns.Service.Next)
}

func CampaignDraftBack(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return draftStep(svc, logg, campaigns.Service.Back)
}

func CampaignDraftSubmit(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return draftStep(svc, logg, campaigns.Service.Submit)
}

type draftFunc func(campaigns.Service, context.Context, int64, uuid.UUID) (*campaigns.DraftDTO, error)

func draftStep(svc campaigns.Service, logg *logger.Logger, apply draftFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		draftID, err := validators.URLParamUUID(r, draftParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := apply(svc, r.Context(), middleware.UserIDFromContext(r.Context()), draftID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, draft)
	}
}

// CampaignDraftSave stores the body as the data of the draft's current step.
func CampaignDraftSave(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		draftID, err := validators.URLParamUUID(r, draftParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		data, err := validators.ReadRawJSON(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := svc.Save(r.Context(), middleware.UserIDFromContext(r.Context()), draftID, data)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, draft)
	}
}

func CampaignDraftDelete(svc campaigns.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		draftID, err := validators.URLParamUUID(r, draftParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), middleware.UserIDFromContext(r.Context()), draftID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
