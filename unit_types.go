package condottieri

import (
	"strings"

	"github.com/pkg/errors"
)

// UnitType is what sort of unit a Setup places in an area.
type UnitType string

const (
	Army     UnitType = "A" // moves over land
	Fleet    UnitType = "F" // moves over sea & along coasts
	Garrison UnitType = "G" // sits in a fortified city
)

var (
	allUnitTypes = []UnitType{Army, Fleet, Garrison}

	unitTypeNames = map[UnitType]string{
		Army:     "Army",
		Fleet:    "Fleet",
		Garrison: "Garrison",
	}
)

// AllUnitTypes returns all known UnitType enums
func AllUnitTypes() []UnitType {
	return allUnitTypes
}

// String returns the human readable name of the unit type
func (u UnitType) String() string {
	name, ok := unitTypeNames[u]
	if !ok {
		return string(u)
	}
	return name
}

// Valid returns if u is one of Army, Fleet or Garrison
func (u UnitType) Valid() bool {
	_, ok := unitTypeNames[u]
	return ok
}

// ParseUnitType accepts either the single letter code or the name.
func ParseUnitType(in string) (UnitType, error) {
	in = strings.TrimSpace(in)
	for _, u := range allUnitTypes {
		if strings.EqualFold(in, string(u)) || strings.EqualFold(in, u.String()) {
			return u, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidUnitType, "%q", in)
}
