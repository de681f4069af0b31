package places

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/salonadmin/internal/directory"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
	"github.com/angelmondragon/salonadmin/pkg/salon"
	"github.com/angelmondragon/salonadmin/pkg/validation"
)

type stubStore struct {
	places  []salon.Place
	created *salon.PlaceInput
	updated *salon.PlaceInput
	updID   int64
	err     error
}

func (s *stubStore) ListPlaces(context.Context) ([]salon.Place, error) {
	return s.places, s.err
}

func (s *stubStore) CreatePlace(_ context.Context, input salon.PlaceInput) (salon.Place, error) {
	s.created = &input
	return salon.Place{ID: 10, Name: input.Name, Slug: input.Slug, PlaceType: input.PlaceType}, s.err
}

func (s *stubStore) UpdatePlace(_ context.Context, placeID int64, input salon.PlaceInput) (salon.Place, error) {
	s.updID = placeID
	s.updated = &input
	return salon.Place{ID: placeID, Name: input.Name, Slug: input.Slug, PlaceType: input.PlaceType}, s.err
}

func radius(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestCreateDerivesSlugFromName(t *testing.T) {
	store := &stubStore{}
	svc, err := NewService(store)
	require.NoError(t, err)

	place, err := svc.Create(context.Background(), PlaceInput{
		Name:      "  Café Élégance  ",
		PlaceType: enums.PlaceTypeFixed,
		Address:   "1 Main St",
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)
	assert.Equal(t, "cafe-elegance", store.created.Slug)
	assert.Equal(t, "Café Élégance", store.created.Name)
	assert.Equal(t, int64(10), place.ID)
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	store := &stubStore{}
	svc, _ := NewService(store)

	_, err := svc.Create(context.Background(), PlaceInput{
		Name:      "Downtown",
		Slug:      "downtown-2",
		PlaceType: enums.PlaceTypeFixed,
		Address:   "2 Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, "downtown-2", store.created.Slug)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		input  PlaceInput
		fields []string
	}{
		{
			name:   "missing name and type",
			input:  PlaceInput{},
			fields: []string{"name", "place_type"},
		},
		{
			name:   "fixed without address",
			input:  PlaceInput{Name: "Shop", PlaceType: enums.PlaceTypeFixed},
			fields: []string{"address"},
		},
		{
			name:   "mobile without radius",
			input:  PlaceInput{Name: "Van", PlaceType: enums.PlaceTypeMobile},
			fields: []string{"service_radius_km"},
		},
		{
			name:   "mobile with zero radius",
			input:  PlaceInput{Name: "Van", PlaceType: enums.PlaceTypeMobile, ServiceRadiusKm: radius("0")},
			fields: []string{"service_radius_km"},
		},
		{
			name:   "bad slug",
			input:  PlaceInput{Name: "Shop", Slug: "Bad Slug", PlaceType: enums.PlaceTypeFixed, Address: "x"},
			fields: []string{"slug"},
		},
		{
			name:   "slug cannot be derived",
			input:  PlaceInput{Name: "***", PlaceType: enums.PlaceTypeFixed, Address: "x"},
			fields: []string{"slug"},
		},
		{
			name:   "bad email",
			input:  PlaceInput{Name: "Shop", PlaceType: enums.PlaceTypeFixed, Address: "x", Email: strPtr("nope")},
			fields: []string{"email"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{}
			svc, _ := NewService(store)
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
			assert.Equal(t, tc.fields, validation.Fields(err))
			assert.Nil(t, store.created)
		})
	}
}

func TestCreateMobileSendsRadius(t *testing.T) {
	store := &stubStore{}
	svc, _ := NewService(store)

	_, err := svc.Create(context.Background(), PlaceInput{
		Name:            "Mobile Nails",
		PlaceType:       enums.PlaceTypeMobile,
		ServiceRadiusKm: radius("12.5"),
	})
	require.NoError(t, err)
	require.NotNil(t, store.created.ServiceRadiusKm)
	assert.True(t, store.created.ServiceRadiusKm.Equal(decimal.RequireFromString("12.5")))
}

func TestCreateFixedDropsRadius(t *testing.T) {
	store := &stubStore{}
	svc, _ := NewService(store)

	_, err := svc.Create(context.Background(), PlaceInput{
		Name:            "Studio",
		PlaceType:       enums.PlaceTypeFixed,
		Address:         "3 Main St",
		ServiceRadiusKm: radius("4"),
	})
	require.NoError(t, err)
	assert.Nil(t, store.created.ServiceRadiusKm)
}

func TestUpdateRequiresPlaceID(t *testing.T) {
	store := &stubStore{}
	svc, _ := NewService(store)

	_, err := svc.Update(context.Background(), 0, PlaceInput{Name: "Studio", PlaceType: enums.PlaceTypeFixed, Address: "x"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	place, err := svc.Update(context.Background(), 7, PlaceInput{Name: "Studio", PlaceType: enums.PlaceTypeFixed, Address: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), store.updID)
	assert.Equal(t, int64(7), place.ID)
	assert.Equal(t, "studio", store.updated.Slug)
}

func TestListReconcilesPlaces(t *testing.T) {
	store := &stubStore{places: []salon.Place{
		{ID: 1, Name: "Downtown", PlaceType: enums.PlaceTypeFixed},
		{ID: 1, Name: "Downtown", PlaceType: enums.PlaceTypeFixed},
		{ID: 2, Name: "Van", PlaceType: enums.PlaceTypeMobile},
	}}
	svc, _ := NewService(store)

	view, err := svc.List(context.Background(), directory.PlaceQuery{Type: enums.PlaceTypeFixed})
	require.NoError(t, err)
	require.Len(t, view.Places, 1)
	assert.Equal(t, int64(1), view.Places[0].ID)
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}

func strPtr(v string) *string {
	return &v
}
