package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"

	"github.com/angelmondragon/salonadmin/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID   int64
	Role     enums.MemberRole
	PlaceIDs []int64
	JTI      string
}

// AccessTokenClaims is the admin session token shared with the platform's auth service.
type AccessTokenClaims struct {
	UserID   int64            `json:"user_id"`
	Role     enums.MemberRole `json:"role"`
	PlaceIDs []int64          `json:"place_ids"`
	jwt.RegisteredClaims
}

// CanAccessPlace reports whether the token grants access to placeID.
func (c *AccessTokenClaims) CanAccessPlace(placeID int64) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.PlaceIDs, placeID)
}
