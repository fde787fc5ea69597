package condottieri

import (
	"fmt"

	"github.com/pkg/errors"
)

// DisasterKind names one of the random event tables of a Setting.
type DisasterKind string

const (
	Famine DisasterKind = "famine" // land areas only
	Plague DisasterKind = "plague" // land areas only
	Storm  DisasterKind = "storm"  // seas only
)

// Setting is a board & ruleset under which scenarios are defined.
type Setting struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled,omitempty"`

	// Board is the base image, relative to Config.MediaRoot.
	// If empty the image is expected at BoardPath()
	Board string `json:"board,omitempty"`

	Configuration     *Configuration      `json:"configuration,omitempty"`
	Areas             []*Area             `json:"areas"`
	Borders           []*Border           `json:"borders,omitempty"`
	CityRandomIncomes []*CityRandomIncome `json:"city_random_incomes,omitempty"`

	areas map[string]*Area
}

// String implements fmt.Stringer
func (s *Setting) String() string {
	return s.Title
}

// Index builds the area lookup & links borders onto their areas. It must
// be called after Areas or Borders change & before adjacency is checked.
func (s *Setting) Index() error {
	s.areas = make(map[string]*Area, len(s.Areas))
	for i, a := range s.Areas {
		if a == nil {
			return errors.Errorf("setting %s: areas[%d] is null", s.Slug, i)
		}
		if _, ok := s.areas[a.Code]; ok {
			return errors.Errorf("setting %s: duplicate area code %q", s.Slug, a.Code)
		}
		a.neighbours = map[string]bool{}
		s.areas[a.Code] = a
	}

	for i, b := range s.Borders {
		if b == nil {
			return errors.Errorf("setting %s: borders[%d] is null", s.Slug, i)
		}
		from, ok := s.areas[b.From]
		if !ok {
			return errors.Wrapf(ErrUnknownArea, "setting %s: border from %q", s.Slug, b.From)
		}
		to, ok := s.areas[b.To]
		if !ok {
			return errors.Wrapf(ErrUnknownArea, "setting %s: border to %q", s.Slug, b.To)
		}
		from.link(to.Code, b.OnlyLand)
		to.link(from.Code, b.OnlyLand)
	}

	return nil
}

// Area returns the area with the given code
func (s *Setting) Area(code string) (*Area, error) {
	if s.areas != nil {
		a, ok := s.areas[code]
		if ok {
			return a, nil
		}
		return nil, errors.Wrapf(ErrUnknownArea, "%q in setting %s", code, s.Slug)
	}
	for _, a := range s.Areas {
		if a != nil && a.Code == code {
			return a, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownArea, "%q in setting %s", code, s.Slug)
}

// MajorCities returns areas whose garrison income is more than one ducat
func (s *Setting) MajorCities() []*Area {
	major := []*Area{}
	for _, a := range s.Areas {
		if a.IsMajorCity() {
			major = append(major, a)
		}
	}
	return major
}

// BoardName is the file name of the board image, eg. "board-italy.png"
func (s *Setting) BoardName() string {
	return fmt.Sprintf("board-%s.png", s.Slug)
}

// BoardPath returns where on disk the base board image is
func (s *Setting) BoardPath(cfg *Config) string {
	if s.Board != "" {
		return cfg.mediaPath(s.Board)
	}
	return cfg.mediaPath(cfg.relScenarios(boardsDirName, s.BoardName()))
}

// AreasMapName is the file name of the areas overlay, eg. "areas-italy.png"
func (s *Setting) AreasMapName() string {
	return fmt.Sprintf("areas-%s.png", s.Slug)
}

// AreasMapPath returns where the areas overlay is written
func (s *Setting) AreasMapPath(cfg *Config) string {
	return cfg.mediaPath(cfg.relScenarios(s.AreasMapName()))
}

// CityRandomIncome returns the random income of the city for a die roll,
// or 0 if the city has no random income table.
func (s *Setting) CityRandomIncome(code string, die int) (int, error) {
	for _, ri := range s.CityRandomIncomes {
		if ri.City != code {
			continue
		}
		table, err := ParseIncomeTable(ri.IncomeList)
		if err != nil {
			return 0, errors.Wrapf(err, "city %s", code)
		}
		return table.Ducats(die, false)
	}
	return 0, nil
}

// DisasterTable returns the area codes of the given table by cell.
func (s *Setting) DisasterTable(kind DisasterKind) map[Cell]string {
	table := map[Cell]string{}
	for _, a := range s.Areas {
		if c := disasterCell(a, kind); c != nil {
			table[*c] = a.Code
		}
	}
	return table
}

// DisasterRows returns the table as a grid of area codes, rows & columns
// starting at 1. Empty cells are "".
func (s *Setting) DisasterRows(kind DisasterKind) [][]string {
	table := s.DisasterTable(kind)
	rows, cols := 0, 0
	for c := range table {
		rows = maxint(rows, c.Row)
		cols = maxint(cols, c.Column)
	}

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
	}
	for c, code := range table {
		if c.Row < 1 || c.Column < 1 {
			continue
		}
		grid[c.Row-1][c.Column-1] = code
	}
	return grid
}
