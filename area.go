package condottieri

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voidshard/condottieri/internal/encoding"

	"github.com/boljen/go-bitmap"
	"github.com/pkg/errors"
)

const (
	// bit numbers for an area's terrain bitmap
	bitSea       = 0
	bitCoast     = 1
	bitCity      = 2
	bitFortified = 3
	bitPort      = 4
	bitMixed     = 5
)

var terrainNames = []string{"sea", "coast", "city", "fortified", "port", "mixed"}

// areaPair is an unordered pair of area codes, stored with the lowest
// code first so that lookups are symmetric.
type areaPair [2]string

// newAreaPair returns a normalised pair
func newAreaPair(a, b string) areaPair {
	if b < a {
		a, b = b, a
	}
	return areaPair{a, b}
}

// fleetExceptions lists coastal areas that share a land border but whose
// coastlines do not touch (they face different seas), so an army may pass
// between them but a fleet may not.
var fleetExceptions = map[areaPair]bool{
	newAreaPair("SAL", "BAR"): true,
	newAreaPair("SAL", "AQU"): true,
	newAreaPair("CAP", "AQU"): true,
	newAreaPair("NAP", "AQU"): true,
	newAreaPair("HER", "ALB"): true,
	newAreaPair("PIS", "FLO"): true,
}

// isFleetException returns if a fleet is forbidden from crossing a <-> b
// regardless of the borders between them.
func isFleetException(a, b string) bool {
	return fleetExceptions[newAreaPair(a, b)]
}

// Area is a region of the board.
type Area struct {
	Code string `json:"code"` // 1-5 uppercase characters
	Name string `json:"name"`

	IsSea       bool `json:"is_sea,omitempty"`       // seas cannot be controlled
	IsCoast     bool `json:"is_coast,omitempty"`     // land touching a sea
	HasCity     bool `json:"has_city,omitempty"`     //
	IsFortified bool `json:"is_fortified,omitempty"` // fortified city, may hold a garrison
	HasPort     bool `json:"has_port,omitempty"`     // city with a port, may build fleets

	// Mixed areas behave like seas for armies but can still be controlled
	// (eg. a lagoon city).
	Mixed bool `json:"mixed,omitempty"`

	// ControlIncome is earned for controlling both the province and the city
	ControlIncome int `json:"control_income,omitempty"`

	// GarrisonIncome is earned holding the city with a garrison without
	// controlling the province
	GarrisonIncome int `json:"garrison_income,omitempty"`

	// pixel positions of the sprites drawn for this area
	ControlToken *Token `json:"control_token,omitempty"`
	GToken       *Token `json:"g_token,omitempty"`
	AFToken      *Token `json:"af_token,omitempty"`

	// positions in the disaster tables, if any
	Famine *Cell `json:"famine,omitempty"`
	Plague *Cell `json:"plague,omitempty"`
	Storm  *Cell `json:"storm,omitempty"`

	// neighbour code -> true if every border to it is land only.
	// Populated by Setting.Index()
	neighbours map[string]bool
}

// String implements fmt.Stringer, eg. "VEN - Venice"
func (a *Area) String() string {
	return fmt.Sprintf("%s - %s", a.Code, a.Name)
}

// link records a border between a and the area with the given code.
// If any border allows fleets the pair is not land only.
func (a *Area) link(code string, onlyLand bool) {
	if a.neighbours == nil {
		a.neighbours = map[string]bool{}
	}
	current, ok := a.neighbours[code]
	if ok {
		onlyLand = current && onlyLand
	}
	a.neighbours[code] = onlyLand
}

// Neighbours returns the codes of all areas bordering a, sorted.
func (a *Area) Neighbours() []string {
	codes := make([]string, 0, len(a.neighbours))
	for code := range a.neighbours {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsAdjacent returns if a border exists between a and dest (in either
// direction). If fleet is set the border must also be navigable, that is,
// not flagged as land only & not one of the fixed fleet exceptions.
func (a *Area) IsAdjacent(dest *Area, fleet bool) bool {
	if a == nil || dest == nil {
		return false
	}
	onlyLand, ok := a.neighbours[dest.Code]
	if !ok {
		return false
	}
	if !fleet {
		return true
	}
	return !onlyLand && !isFleetException(a.Code, dest.Code)
}

// AcceptsType returns if a unit of type u may stay in the area.
func (a *Area) AcceptsType(u UnitType) (bool, error) {
	switch u {
	case Army:
		return !a.IsSea && !a.Mixed, nil
	case Fleet:
		return a.IsSea || a.IsCoast, nil
	case Garrison:
		return a.IsFortified, nil
	}
	return false, errors.Wrapf(ErrInvalidUnitType, "%q", string(u))
}

// BuildPossible returns if a unit of type u may be raised in the area.
// This differs from AcceptsType for fleets: a fleet can stay along any
// coast but can only be built in a port.
func (a *Area) BuildPossible(u UnitType) (bool, error) {
	switch u {
	case Army:
		return !a.IsSea && !a.Mixed, nil
	case Fleet:
		return a.HasPort, nil
	case Garrison:
		return a.IsFortified, nil
	}
	return false, errors.Wrapf(ErrInvalidUnitType, "%q", string(u))
}

// IsMajorCity returns if the city is worth more than a single ducat to a garrison
func (a *Area) IsMajorCity() bool {
	return a.GarrisonIncome > 1
}

// Terrain is an area's terrain flags packed into 8 bits.
type Terrain uint8

// Terrain returns the area flags as a Terrain bitmap
func (a *Area) Terrain() Terrain {
	bm := bitmap.Bitmap(make([]byte, 1))
	bm.Set(bitSea, a.IsSea)
	bm.Set(bitCoast, a.IsCoast)
	bm.Set(bitCity, a.HasCity)
	bm.Set(bitFortified, a.IsFortified)
	bm.Set(bitPort, a.HasPort)
	bm.Set(bitMixed, a.Mixed)
	return Terrain(encoding.FromBytes8(bm.Data(true)))
}

// has returns if the given bit is set
func (t Terrain) has(bit int) bool {
	return bitmap.Bitmap(encoding.ToBytes8(uint8(t))).Get(bit)
}

// IsSea returns if the sea bit is set
func (t Terrain) IsSea() bool { return t.has(bitSea) }

// IsCoast returns if the coast bit is set
func (t Terrain) IsCoast() bool { return t.has(bitCoast) }

// HasCity returns if the city bit is set
func (t Terrain) HasCity() bool { return t.has(bitCity) }

// IsMixed returns if the mixed bit is set
func (t Terrain) IsMixed() bool { return t.has(bitMixed) }

// String lists the set flags, eg. "coast,city,port". Areas with no flags
// are plain "land".
func (t Terrain) String() string {
	set := []string{}
	for bit, name := range terrainNames {
		if t.has(bit) {
			set = append(set, name)
		}
	}
	if len(set) == 0 {
		return "land"
	}
	return strings.Join(set, ",")
}
