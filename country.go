package condottieri

import (
	"fmt"

	"github.com/pkg/errors"
)

// Country is the static identity of a power. Its colour & coat of arms
// are used to generate the sprites drawn on scenario maps.
type Country struct {
	Name string `json:"name"`

	// StaticName is the slug sprites & badges are named after
	StaticName string `json:"static_name"`

	// Color is hexadecimal RGB, eg. "FF0000"
	Color string `json:"color"`

	// CoatOfArms is a 40x40 PNG with transparency, relative to MediaRoot.
	// If empty the image is expected at CoatPath()
	CoatOfArms string `json:"coat_of_arms,omitempty"`

	CanExcommunicate bool                   `json:"can_excommunicate,omitempty"`
	Religion         string                 `json:"religion,omitempty"`
	SpecialUnits     []string               `json:"special_units,omitempty"`
	Enabled          bool                   `json:"enabled,omitempty"`
	RandomIncomes    []*CountryRandomIncome `json:"random_incomes,omitempty"`

	// Protected countries have hand drawn sprites that must not be regenerated
	Protected bool `json:"protected,omitempty"`
}

// String implements fmt.Stringer
func (c *Country) String() string {
	return c.Name
}

// CoatName is the file name of the coat of arms, eg. "coat-venice.png"
func (c *Country) CoatName() string {
	return fmt.Sprintf("coat-%s.png", c.StaticName)
}

// CoatPath returns where on disk the coat of arms is
func (c *Country) CoatPath(cfg *Config) string {
	if c.CoatOfArms != "" {
		return cfg.mediaPath(c.CoatOfArms)
	}
	return cfg.mediaPath(cfg.relScenarios(coatsDirName, c.CoatName()))
}

// HasIncome returns if the country has a random income table in the setting
func (c *Country) HasIncome(s *Setting) bool {
	_, ok := c.incomeList(s)
	return ok
}

// RandomIncome returns the random income of the country in the setting
// for a die roll, doubled if double is set. Countries without a table
// for the setting earn nothing.
func (c *Country) RandomIncome(s *Setting, die int, double bool) (int, error) {
	list, ok := c.incomeList(s)
	if !ok {
		return 0, nil
	}
	table, err := ParseIncomeTable(list)
	if err != nil {
		return 0, errors.Wrapf(err, "country %s", c.StaticName)
	}
	return table.Ducats(die, double)
}

// incomeList returns the stored income list for the setting
func (c *Country) incomeList(s *Setting) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, ri := range c.RandomIncomes {
		if ri.Setting == s.Slug {
			return ri.IncomeList, true
		}
	}
	return "", false
}
