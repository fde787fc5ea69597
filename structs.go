package condottieri

import (
	"fmt"
	"image"
)

// Token is the pixel position (top left) at which a sprite is pasted onto
// the board for a given area.
type Token struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point returns the token position as an image.Point
func (t *Token) Point() image.Point {
	return image.Pt(t.X, t.Y)
}

// Cell is a row / column of a disaster table (famine, plague, storm).
type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Configuration holds optional rules for a Setting.
type Configuration struct {
	ReligiousWar bool `json:"religious_war,omitempty"`
	TradeRoutes  bool `json:"trade_routes,omitempty"`
}

// Border is a directed edge between two areas. It is traversable both
// ways; the direction only records how the editor entered it.
type Border struct {
	From string `json:"from"`
	To   string `json:"to"`

	// OnlyLand implies an army can cross but a fleet cannot
	OnlyLand bool `json:"only_land,omitempty"`
}

// CityRandomIncome is the random income table for a city.
type CityRandomIncome struct {
	City       string `json:"city"`
	IncomeList string `json:"income_list"`
}

// CountryRandomIncome is the random income table of a country within a Setting.
type CountryRandomIncome struct {
	Setting    string `json:"setting"`
	IncomeList string `json:"income_list"`
}

// Home is an area controlled by a contender at the start of a scenario.
type Home struct {
	Area string `json:"area"`

	// IsHome marks the area as part of the country's home territory
	// (it gets a flag drawn over the control marker).
	IsHome bool `json:"is_home"`
}

// Setup is a unit placed at the start of a scenario.
type Setup struct {
	Area     string   `json:"area"`
	UnitType UnitType `json:"unit_type"`
}

// Treasury is the money a contender starts with.
type Treasury struct {
	Ducats int `json:"ducats"`
}

// Contender is a country's (or autonomous faction's) participation
// slot within a scenario.
type Contender struct {
	// Country static name, empty for autonomous contenders
	Country  string    `json:"country,omitempty"`
	Priority int       `json:"priority"`
	Homes    []*Home   `json:"homes,omitempty"`
	Setups   []*Setup  `json:"setups,omitempty"`
	Treasury *Treasury `json:"treasury,omitempty"`
}

// IsAutonomous returns if the contender has no country
func (c *Contender) IsAutonomous() bool {
	return c.Country == ""
}

// TreasuryString describes the starting treasury, eg. "Venice starts with 12 ducats"
func (c *Contender) TreasuryString(countryName string) string {
	ducats := 0
	if c.Treasury != nil {
		ducats = c.Treasury.Ducats
	}
	return fmt.Sprintf("%s starts with %d ducats", countryName, ducats)
}

// SpecialUnit is a unit (eg. mercenaries) that some countries may buy.
type SpecialUnit struct {
	StaticTitle string `json:"static_title"`
	Title       string `json:"title"`
	Cost        int    `json:"cost"`
	Power       int    `json:"power"`
	Loyalty     int    `json:"loyalty"`
}

// String implements fmt.Stringer, eg. "Swiss pikemen (6d)"
func (s *SpecialUnit) String() string {
	return fmt.Sprintf("%s (%dd)", s.Title, s.Cost)
}

// Describe returns a short description of the unit stats
func (s *SpecialUnit) Describe() string {
	return fmt.Sprintf("Costs %d; Strength %d; Loyalty %d", s.Cost, s.Power, s.Loyalty)
}

// Religion a country may follow.
type Religion struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}
