package employees

import (
	"context"
	"fmt"

	"github.com/angelmondragon/salonadmin/internal/directory"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

type employeeSource interface {
	ListEmployees(ctx context.Context, placeID int64) ([]salon.Employee, error)
}

// Service exposes the employee directory of a place.
type Service interface {
	List(ctx context.Context, placeID int64, query directory.EmployeeQuery) (*directory.EmployeeDirectory, error)
}

type service struct {
	source employeeSource
}

func NewService(source employeeSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("employee source required")
	}
	return &service{source: source}, nil
}

func (s *service) List(ctx context.Context, placeID int64, query directory.EmployeeQuery) (*directory.EmployeeDirectory, error) {
	if placeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "place id is required")
	}
	records, err := s.source.ListEmployees(ctx, placeID)
	if err != nil {
		return nil, err
	}
	view := directory.ReconcileEmployees(records, query)
	return &view, nil
}
