package salon

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salonadmin/pkg/enums"
)

// Place is a salon location owned or managed by the caller.
type Place struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	PlaceType       enums.PlaceType  `json:"place_type"`
	Address         string           `json:"address"`
	City            string           `json:"city"`
	PostalCode      string           `json:"postal_code,omitempty"`
	ServiceRadiusKm *decimal.Decimal `json:"service_radius_km,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Description     *string          `json:"description,omitempty"`
	IsActive        bool             `json:"is_active"`
}

// PlaceInput is the body sent when creating or updating a place.
type PlaceInput struct {
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	PlaceType       enums.PlaceType  `json:"place_type"`
	Address         string           `json:"address,omitempty"`
	City            string           `json:"city,omitempty"`
	PostalCode      string           `json:"postal_code,omitempty"`
	ServiceRadiusKm *decimal.Decimal `json:"service_radius_km,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Description     *string          `json:"description,omitempty"`
}
