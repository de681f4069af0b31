package middleware

import (
	"context"

	"github.com/angelmondragon/salonadmin/pkg/auth"
)

type contextKey string

const (
	ctxClaims  contextKey = "claims"
	ctxPlaceID contextKey = "place_id"
)

// WithClaims injects verified token claims into the context.
func WithClaims(ctx context.Context, claims *auth.AccessTokenClaims) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxClaims, claims)
}

func ClaimsFromContext(ctx context.Context) *auth.AccessTokenClaims {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxClaims).(*auth.AccessTokenClaims); ok {
		return v
	}
	return nil
}

// UserIDFromContext returns the authenticated user id, or 0.
func UserIDFromContext(ctx context.Context) int64 {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

func RoleFromContext(ctx context.Context) string {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return string(claims.Role)
	}
	return ""
}

// PlaceIDsFromContext returns the places the token grants access to.
func PlaceIDsFromContext(ctx context.Context) []int64 {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.PlaceIDs
	}
	return nil
}

// WithPlaceID injects the checked place identifier for downstream handlers.
func WithPlaceID(ctx context.Context, placeID int64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxPlaceID, placeID)
}

func PlaceIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxPlaceID).(int64); ok {
		return v
	}
	return 0
}
