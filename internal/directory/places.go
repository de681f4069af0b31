package directory

import (
	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/pagination"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

// PlaceQuery narrows the list of places a caller can manage.
type PlaceQuery struct {
	Search string
	Type   enums.PlaceType
	Page   pagination.Params
}

// PlaceDirectory is one page of the reconciled place list.
type PlaceDirectory struct {
	Places []salon.Place   `json:"places"`
	Page   pagination.Info `json:"page"`
}

func placeKey(p salon.Place) int64 {
	return p.ID
}

func placeSearchFields(p salon.Place) []string {
	return []string{p.Name, p.City, p.Address}
}

// DeduplicatePlaces keeps the first record per place id.
func DeduplicatePlaces(records []salon.Place) []salon.Place {
	return Deduplicate(records, placeKey)
}

// SearchPlaces matches term against name, city and address.
func SearchPlaces(records []salon.Place, term string) []salon.Place {
	return FilterBySearch(records, term, placeSearchFields)
}

// FilterByPlaceType keeps exact type matches. An empty type means no filter.
func FilterByPlaceType(records []salon.Place, placeType enums.PlaceType) []salon.Place {
	if placeType == "" {
		return records
	}
	return Filter(records, func(p salon.Place) bool {
		return p.PlaceType == placeType
	})
}

// ReconcilePlaces deduplicates, filters and pages the raw place listing.
func ReconcilePlaces(records []salon.Place, query PlaceQuery) PlaceDirectory {
	view := DeduplicatePlaces(records)
	view = SearchPlaces(view, query.Search)
	view = FilterByPlaceType(view, query.Type)

	page, info := pagination.Slice(view, query.Page)
	return PlaceDirectory{Places: page, Page: info}
}
