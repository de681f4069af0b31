package places

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

// PlaceInput is the create/update body accepted from the admin.
type PlaceInput struct {
	Name            string           `json:"name" validate:"required,max=120"`
	Slug            string           `json:"slug" validate:"omitempty,max=80,slug"`
	PlaceType       enums.PlaceType  `json:"place_type" validate:"required,oneof=fixed mobile"`
	Address         string           `json:"address" validate:"required_if=PlaceType fixed,max=255"`
	City            string           `json:"city" validate:"max=120"`
	PostalCode      string           `json:"postal_code" validate:"max=20"`
	ServiceRadiusKm *decimal.Decimal `json:"service_radius_km"`
	Phone           *string          `json:"phone" validate:"omitempty,max=32"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	Description     *string          `json:"description" validate:"omitempty,max=2000"`
}

func (in PlaceInput) normalized() PlaceInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	return in
}

func (in PlaceInput) toPlatform() salon.PlaceInput {
	out := salon.PlaceInput{
		Name:        in.Name,
		Slug:        in.Slug,
		PlaceType:   in.PlaceType,
		Address:     in.Address,
		City:        in.City,
		PostalCode:  in.PostalCode,
		Phone:       in.Phone,
		Email:       in.Email,
		Description: in.Description,
	}
	if in.PlaceType == enums.PlaceTypeMobile {
		out.ServiceRadiusKm = in.ServiceRadiusKm
	}
	return out
}
