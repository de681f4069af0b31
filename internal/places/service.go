package places

import (
	"context"
	"fmt"

	"github.com/angelmondragon/salonadmin/internal/directory"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/salon"
	"github.com/angelmondragon/salonadmin/pkg/slug"
	"github.com/angelmondragon/salonadmin/pkg/validation"
)

type placeStore interface {
	ListPlaces(ctx context.Context) ([]salon.Place, error)
	CreatePlace(ctx context.Context, input salon.PlaceInput) (salon.Place, error)
	UpdatePlace(ctx context.Context, placeID int64, input salon.PlaceInput) (salon.Place, error)
}

// Service manages the caller's places.
type Service interface {
	List(ctx context.Context, query directory.PlaceQuery) (*directory.PlaceDirectory, error)
	Create(ctx context.Context, input PlaceInput) (*salon.Place, error)
	Update(ctx context.Context, placeID int64, input PlaceInput) (*salon.Place, error)
}

type service struct {
	store placeStore
}

func NewService(store placeStore) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("place store required")
	}
	return &service{store: store}, nil
}

func (s *service) List(ctx context.Context, query directory.PlaceQuery) (*directory.PlaceDirectory, error) {
	records, err := s.store.ListPlaces(ctx)
	if err != nil {
		return nil, err
	}
	view := directory.ReconcilePlaces(records, query)
	return &view, nil
}

func (s *service) Create(ctx context.Context, input PlaceInput) (*salon.Place, error) {
	payload, err := prepare(input)
	if err != nil {
		return nil, err
	}
	place, err := s.store.CreatePlace(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (s *service) Update(ctx context.Context, placeID int64, input PlaceInput) (*salon.Place, error) {
	if placeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "place id is required")
	}
	payload, err := prepare(input)
	if err != nil {
		return nil, err
	}
	place, err := s.store.UpdatePlace(ctx, placeID, payload)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// prepare validates the input and fills the slug from the name when omitted.
func prepare(input PlaceInput) (salon.PlaceInput, error) {
	input = input.normalized()
	if input.Slug == "" {
		input.Slug = slug.Make(input.Name)
	}

	var slugErr, radiusErr error
	if input.Slug == "" && input.Name != "" {
		slugErr = validation.Fieldf("slug", "could not be derived from name")
	}
	if input.PlaceType == enums.PlaceTypeMobile && (input.ServiceRadiusKm == nil || !input.ServiceRadiusKm.IsPositive()) {
		radiusErr = validation.Fieldf("service_radius_km", "must be greater than 0 for mobile places")
	}
	if err := validation.Wrap(validation.Collect(validation.Struct(input), slugErr, radiusErr)); err != nil {
		return salon.PlaceInput{}, err
	}
	return input.toPlatform(), nil
}
