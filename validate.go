package condottieri

import (
	"fmt"
	"regexp"

	"github.com/voidshard/condottieri/internal/encoding"
)

var areaCodeRe = regexp.MustCompile(`^[A-Z]{1,5}$`)

// Validate checks the terrain flags & incomes of an area are consistent.
// These are data-entry rules: the adjacency & placement checks assume they hold.
func (a *Area) Validate() error {
	var errs ValidationErrors

	if !areaCodeRe.MatchString(a.Code) {
		errs.add("code", "%q must be 1-5 uppercase characters", a.Code)
	}
	if a.ControlIncome < 0 {
		errs.add("control_income", "cannot be negative")
	}
	if a.GarrisonIncome < 0 {
		errs.add("garrison_income", "cannot be negative")
	}

	if a.IsSea {
		if a.IsCoast {
			errs.add("is_coast", "a sea cannot be a coast")
		}
		if a.HasCity {
			errs.add("has_city", "a sea cannot have a city")
		}
		if a.Mixed {
			errs.add("mixed", "a sea cannot be mixed")
		}
		if a.ControlIncome != 0 || a.GarrisonIncome != 0 {
			errs.add("control_income", "a sea cannot be controlled")
		}
		if a.Famine != nil {
			errs.add("famine", "famine table cells are for land areas")
		}
		if a.Plague != nil {
			errs.add("plague", "plague table cells are for land areas")
		}
	} else if a.Storm != nil {
		errs.add("storm", "storm table cells are for seas")
	}

	if a.IsFortified {
		if !a.HasCity {
			errs.add("is_fortified", "only a city can be fortified")
		}
		if a.ControlIncome != a.GarrisonIncome+1 {
			errs.add("control_income", "must be garrison income + 1 in a fortified city (%d != %d)", a.ControlIncome, a.GarrisonIncome+1)
		}
	}

	if a.HasPort {
		if !a.HasCity {
			errs.add("has_port", "only a city can have a port")
		}
		if !a.IsCoast && !a.Mixed {
			errs.add("has_port", "a port must be on a coast")
		}
	}

	if !a.HasCity && a.GarrisonIncome != 0 {
		errs.add("garrison_income", "an area without a city cannot have garrison income")
	}

	tokens := []struct {
		field string
		t     *Token
	}{
		{"control_token", a.ControlToken},
		{"g_token", a.GToken},
		{"af_token", a.AFToken},
	}
	for _, tok := range tokens {
		if tok.t != nil && (tok.t.X < 0 || tok.t.Y < 0) {
			errs.add(tok.field, "position (%d,%d) is off the board", tok.t.X, tok.t.Y)
		}
	}

	return errs.err()
}

// Validate checks areas, borders & income tables of the setting and
// (re)builds its index.
func (s *Setting) Validate() error {
	var errs ValidationErrors

	if s.Slug == "" {
		errs.add("slug", "is required")
	}
	if s.Title == "" {
		errs.add("title", "is required")
	}

	seen := map[string]bool{}
	for i, a := range s.Areas {
		if a == nil {
			errs.add(fmt.Sprintf("areas[%d]", i), "is null")
			continue
		}
		errs.prefixed(fmt.Sprintf("areas[%d]", i), a.Validate())
		if seen[a.Code] {
			errs.add(fmt.Sprintf("areas[%d].code", i), "%q is used more than once", a.Code)
		}
		seen[a.Code] = true
	}

	for i, b := range s.Borders {
		field := fmt.Sprintf("borders[%d]", i)
		if b == nil {
			errs.add(field, "is null")
			continue
		}
		if !seen[b.From] {
			errs.add(field+".from", "unknown area %q", b.From)
		}
		if !seen[b.To] {
			errs.add(field+".to", "unknown area %q", b.To)
		}
		if b.From == b.To {
			errs.add(field, "an area cannot border itself")
		}
	}

	for i, ri := range s.CityRandomIncomes {
		field := fmt.Sprintf("city_random_incomes[%d]", i)
		a, err := s.Area(ri.City)
		if err != nil {
			errs.add(field+".city", "unknown area %q", ri.City)
		} else if !a.HasCity {
			errs.add(field+".city", "%s has no city", ri.City)
		}
		if _, err := ParseIncomeTable(ri.IncomeList); err != nil {
			errs.add(field+".income_list", "%v", err)
		}
	}

	for _, kind := range []DisasterKind{Famine, Plague, Storm} {
		cells := map[Cell]string{}
		for _, a := range s.Areas {
			c := disasterCell(a, kind)
			if c == nil {
				continue
			}
			if c.Row < 1 || c.Column < 1 {
				errs.add(string(kind), "%s: row & column start at 1", a.Code)
			}
			if other, ok := cells[*c]; ok {
				errs.add(string(kind), "%s & %s share cell (%d,%d)", other, a.Code, c.Row, c.Column)
			}
			cells[*c] = a.Code
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return s.Index()
}

// disasterCell returns the area's cell in the given table
func disasterCell(a *Area, kind DisasterKind) *Cell {
	if a == nil {
		return nil
	}
	switch kind {
	case Famine:
		return a.Famine
	case Plague:
		return a.Plague
	case Storm:
		return a.Storm
	}
	return nil
}

// Validate checks a country's identity & income tables
func (c *Country) Validate() error {
	var errs ValidationErrors

	if c.Name == "" {
		errs.add("name", "is required")
	}
	if c.StaticName == "" || Slugify(c.StaticName) != c.StaticName {
		errs.add("static_name", "%q must be a non empty slug", c.StaticName)
	}
	if c.StaticName == autonomousName {
		errs.add("static_name", "%q is reserved", autonomousName)
	}
	if _, err := encoding.ParseHexColour(c.Color); err != nil {
		errs.add("color", "%v", err)
	}
	for i, ri := range c.RandomIncomes {
		if _, err := ParseIncomeTable(ri.IncomeList); err != nil {
			errs.add(fmt.Sprintf("random_incomes[%d].income_list", i), "%v", err)
		}
	}

	return errs.err()
}

// Validate checks the scenario setup against its setting:
// - every referenced area exists & is in play
// - an area is controlled by at most one contender
// - units are placed where they can stay, at most one army / fleet
//   and one garrison per area
// - autonomous contenders only hold garrisons
func (s *Scenario) Validate(setting *Setting) error {
	var errs ValidationErrors

	if s.Slug == "" {
		errs.add("slug", "is required")
	}
	if setting == nil {
		errs.add("setting", "is required")
		return errs
	}
	if s.Setting != setting.Slug {
		errs.add("setting", "%q does not match %q", s.Setting, setting.Slug)
	}
	if s.NumberOfPlayers < len(s.Neutrals) {
		errs.add("number_of_players", "fewer players (%d) than neutral countries (%d)", s.NumberOfPlayers, len(s.Neutrals))
	}

	lookup := func(field, code string) *Area {
		a, err := setting.Area(code)
		if err != nil {
			errs.add(field, "unknown area %q", code)
			return nil
		}
		if s.IsDisabled(code) {
			errs.add(field, "%s is disabled", code)
			return nil
		}
		return a
	}

	for i, code := range s.DisabledAreas {
		if _, err := setting.Area(code); err != nil {
			errs.add(fmt.Sprintf("disabled_areas[%d]", i), "unknown area %q", code)
		}
	}

	for i, code := range s.CityIncomes {
		a := lookup(fmt.Sprintf("city_incomes[%d]", i), code)
		if a != nil && !a.HasCity {
			errs.add(fmt.Sprintf("city_incomes[%d]", i), "%s has no city", code)
		}
	}

	for i, n := range s.Neutrals {
		if _, ok := s.Contender(n); !ok {
			errs.add(fmt.Sprintf("neutrals[%d]", i), "%q is not a contender", n)
		}
	}

	countries := map[string]bool{}
	controlled := map[string]int{}
	units := map[string]int{}
	garrisons := map[string]int{}

	for ci, c := range s.Contenders {
		prefix := fmt.Sprintf("contenders[%d]", ci)
		if c == nil {
			errs.add(prefix, "is null")
			continue
		}

		if !c.IsAutonomous() {
			if countries[c.Country] {
				errs.add(prefix+".country", "%q takes part more than once", c.Country)
			}
			countries[c.Country] = true
		} else if len(c.Homes) > 0 {
			errs.add(prefix+".homes", "autonomous contenders cannot control areas")
		}

		if c.Treasury != nil && c.Treasury.Ducats < 0 {
			errs.add(prefix+".treasury", "cannot start in debt")
		}

		for hi, h := range c.Homes {
			field := fmt.Sprintf("%s.homes[%d]", prefix, hi)
			if h == nil {
				errs.add(field, "is null")
				continue
			}
			a := lookup(field, h.Area)
			if a == nil {
				continue
			}
			if a.IsSea {
				errs.add(field, "%s is a sea and cannot be controlled", a.Code)
			}
			if other, ok := controlled[a.Code]; ok && other != ci {
				errs.add(field, "%s is already controlled by contenders[%d]", a.Code, other)
			}
			controlled[a.Code] = ci
		}

		for si, setup := range c.Setups {
			field := fmt.Sprintf("%s.setups[%d]", prefix, si)
			if setup == nil {
				errs.add(field, "is null")
				continue
			}
			if !setup.UnitType.Valid() {
				errs.add(field+".unit_type", "%q is not one of %v", string(setup.UnitType), AllUnitTypes())
				continue
			}
			if c.IsAutonomous() && setup.UnitType != Garrison {
				errs.add(field+".unit_type", "autonomous contenders only hold garrisons")
			}
			a := lookup(field+".area", setup.Area)
			if a == nil {
				continue
			}
			ok, err := a.AcceptsType(setup.UnitType)
			if err != nil {
				errs.add(field+".unit_type", "%v", err)
				continue
			}
			if !ok {
				errs.add(field, "%s cannot hold a %s", a.Code, setup.UnitType)
			}

			placed := units
			if setup.UnitType == Garrison {
				placed = garrisons
			}
			if n := placed[a.Code]; n > 0 {
				errs.add(field, "%s already holds a unit of that kind", a.Code)
			}
			placed[a.Code]++
		}
	}

	return errs.err()
}
