package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/salonadmin/api/responses"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/logger"
)

// PlaceParam is the URL parameter RequirePlace checks.
const PlaceParam = "placeId"

// RequirePlace rejects requests whose {placeId} is not granted by the caller's token.
func RequirePlace(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, PlaceParam)
			placeID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || placeID <= 0 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid place id").
					WithDetails(map[string]string{PlaceParam: "must be a positive integer"}))
				return
			}

			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}
			if !claims.CanAccessPlace(placeID) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "place not accessible"))
				return
			}

			ctx := WithPlaceID(r.Context(), placeID)
			if logg != nil {
				ctx = logg.WithPlaceID(ctx, placeID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
