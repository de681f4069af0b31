package enums

import "fmt"

// PlaceType distinguishes fixed-address salons from mobile/service-area businesses.
type PlaceType string

const (
	PlaceTypeFixed  PlaceType = "fixed"
	PlaceTypeMobile PlaceType = "mobile"
)

var validPlaceTypes = []PlaceType{
	PlaceTypeFixed,
	PlaceTypeMobile,
}

// String implements fmt.Stringer.
func (p PlaceType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PlaceType.
func (p PlaceType) IsValid() bool {
	for _, candidate := range validPlaceTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlaceType converts raw input into a PlaceType.
func ParsePlaceType(value string) (PlaceType, error) {
	for _, candidate := range validPlaceTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid place type %q", value)
}
