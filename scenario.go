package condottieri

import (
	"fmt"
	"sort"
)

// Scenario is a historical starting configuration of a Setting.
type Scenario struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Designer        string `json:"designer,omitempty"`
	Setting         string `json:"setting"`
	StartYear       int    `json:"start_year"`
	NumberOfPlayers int    `json:"number_of_players"`
	Enabled         bool   `json:"enabled,omitempty"`

	// DisabledAreas are not in play in this scenario
	DisabledAreas []string `json:"disabled_areas,omitempty"`

	// CityIncomes are cities that pay a special (random) income
	CityIncomes []string `json:"city_incomes,omitempty"`

	// Neutrals are countries that may be left without a player
	Neutrals []string `json:"neutrals,omitempty"`

	// Contenders in priority order
	Contenders []*Contender `json:"contenders,omitempty"`
}

// String implements fmt.Stringer
func (s *Scenario) String() string {
	return s.Title
}

// MaxPlayers is the number of players needed for a full game
func (s *Scenario) MaxPlayers() int {
	return s.NumberOfPlayers
}

// MinPlayers is the number of players needed if every neutral country
// is left without a player
func (s *Scenario) MinPlayers() int {
	return s.MaxPlayers() - len(s.Neutrals)
}

// CountryContenders returns contenders that have a country, ordered by
// priority (ties keep their order in the scenario)
func (s *Scenario) CountryContenders() []*Contender {
	found := []*Contender{}
	for _, c := range s.Contenders {
		if !c.IsAutonomous() {
			found = append(found, c)
		}
	}
	sort.SliceStable(found, func(a, b int) bool {
		return found[a].Priority < found[b].Priority
	})
	return found
}

// Autonomous returns contenders without a country
func (s *Scenario) Autonomous() []*Contender {
	found := []*Contender{}
	for _, c := range s.Contenders {
		if c.IsAutonomous() {
			found = append(found, c)
		}
	}
	return found
}

// Contender returns the contender playing the given country, if any
func (s *Scenario) Contender(country string) (*Contender, bool) {
	for _, c := range s.Contenders {
		if c != nil && !c.IsAutonomous() && c.Country == country {
			return c, true
		}
	}
	return nil, false
}

// IsDisabled returns if the area is out of play in this scenario
func (s *Scenario) IsDisabled(code string) bool {
	for _, d := range s.DisabledAreas {
		if d == code {
			return true
		}
	}
	return false
}

// MapName is the file name of the scenario map, eg. "scenario-italy-1454.jpg"
func (s *Scenario) MapName() string {
	return fmt.Sprintf("scenario-%s.jpg", s.Slug)
}

// MapPath is where on disk the scenario map is written
func (s *Scenario) MapPath(cfg *Config) string {
	return cfg.mediaPath(cfg.relScenarios(s.MapName()))
}

// MapURL is the public URL of the scenario map
func (s *Scenario) MapURL(cfg *Config) string {
	return cfg.mediaURL(cfg.relScenarios(s.MapName()))
}

// ThumbnailPathFor returns where the thumbnail of the given size is written
func (s *Scenario) ThumbnailPathFor(cfg *Config, t *ThumbnailConfig) string {
	return cfg.mediaPath(cfg.relScenarios(t.Dir, s.MapName()))
}

// ThumbnailPath is where the smallest (first configured) thumbnail is
// written, or "" if no thumbnails are configured
func (s *Scenario) ThumbnailPath(cfg *Config) string {
	if len(cfg.Thumbnails) == 0 {
		return ""
	}
	return s.ThumbnailPathFor(cfg, cfg.Thumbnails[0])
}

// LargeThumbnailPath is where the largest (last configured) thumbnail is
// written, or "" if no thumbnails are configured
func (s *Scenario) LargeThumbnailPath(cfg *Config) string {
	if len(cfg.Thumbnails) == 0 {
		return ""
	}
	return s.ThumbnailPathFor(cfg, cfg.Thumbnails[len(cfg.Thumbnails)-1])
}

// ThumbnailURL is the public URL of the smallest thumbnail
func (s *Scenario) ThumbnailURL(cfg *Config) string {
	if len(cfg.Thumbnails) == 0 {
		return ""
	}
	return cfg.mediaURL(cfg.relScenarios(cfg.Thumbnails[0].Dir, s.MapName()))
}
