package customers

import (
	"context"
	"fmt"

	"github.com/angelmondragon/salonadmin/internal/directory"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

type customerSource interface {
	ListCustomers(ctx context.Context, placeID int64) ([]salon.Customer, error)
}

// Service exposes the customer directory of a place.
type Service interface {
	List(ctx context.Context, placeID int64, query directory.CustomerQuery) (*directory.CustomerDirectory, error)
}

type service struct {
	source customerSource
}

// NewService builds a customer service on top of the platform client.
func NewService(source customerSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("customer source required")
	}
	return &service{source: source}, nil
}

func (s *service) List(ctx context.Context, placeID int64, query directory.CustomerQuery) (*directory.CustomerDirectory, error) {
	if placeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "place id is required")
	}
	records, err := s.source.ListCustomers(ctx, placeID)
	if err != nil {
		return nil, err
	}
	view := directory.ReconcileCustomers(records, query)
	return &view, nil
}
