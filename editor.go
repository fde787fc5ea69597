package condottieri

import (
	"sort"

	"github.com/voidshard/condottieri/internal/encoding"

	"github.com/pkg/errors"
)

// TokenGenerator regenerates the derived images of a country.
// *TokenMaker is the usual implementation.
type TokenGenerator interface {
	Make(c *Country) error
}

// CountryEditor is the create / update workflow for countries. Saving a
// country whose artwork changed regenerates its tokens first; the record is
// only stored once that succeeded, so a failed save can simply be retried.
type CountryEditor struct {
	tokens    TokenGenerator
	countries map[string]*Country
}

// NewCountryEditor returns an editor over the given (already saved)
// countries. Tokens of existing countries are not regenerated.
func NewCountryEditor(tokens TokenGenerator, existing ...*Country) *CountryEditor {
	e := &CountryEditor{tokens: tokens, countries: map[string]*Country{}}
	for _, c := range existing {
		normaliseColour(c)
		e.countries[c.StaticName] = c
	}
	return e
}

// Create validates & adds a new country, then generates its tokens.
// If no static name is set one is derived from the name.
func (e *CountryEditor) Create(c *Country) error {
	if c.StaticName == "" {
		c.StaticName = Slugify(c.Name)
	}
	err := c.Validate()
	if err != nil {
		return err
	}
	normaliseColour(c)
	if _, ok := e.countries[c.StaticName]; ok {
		return errors.Errorf("country %s already exists", c.StaticName)
	}

	err = e.regenerate(c)
	if err != nil {
		return err
	}
	e.countries[c.StaticName] = c
	return nil
}

// Update replaces a country by static name. Tokens are regenerated only
// if the colour or coat of arms path changed; callers that overwrite the
// artwork file in place should call RegenerateTokens themselves.
func (e *CountryEditor) Update(c *Country) error {
	current, ok := e.countries[c.StaticName]
	if !ok {
		return errors.Errorf("country %s does not exist", c.StaticName)
	}
	err := c.Validate()
	if err != nil {
		return err
	}
	normaliseColour(c)

	if current.Color != c.Color || current.CoatOfArms != c.CoatOfArms {
		err = e.regenerate(c)
		if err != nil {
			return err
		}
	}
	e.countries[c.StaticName] = c
	return nil
}

// normaliseColour stores the colour as upper case hex without a leading #,
// so "#ff0000" and "FF0000" compare equal. c must already be valid.
func normaliseColour(c *Country) {
	rgba, err := encoding.ParseHexColour(c.Color)
	if err == nil {
		c.Color = encoding.HexColour(rgba)
	}
}

// RegenerateTokens redraws all derived images of the country
func (e *CountryEditor) RegenerateTokens(static string) error {
	c, ok := e.countries[static]
	if !ok {
		return errors.Errorf("country %s does not exist", static)
	}
	return e.regenerate(c)
}

func (e *CountryEditor) regenerate(c *Country) error {
	if e.tokens == nil {
		return nil
	}
	return errors.Wrapf(e.tokens.Make(c), "country %s: regenerate tokens", c.StaticName)
}

// Country returns a country by static name
func (e *CountryEditor) Country(static string) (*Country, bool) {
	c, ok := e.countries[static]
	return c, ok
}

// Countries returns all countries ordered by name
func (e *CountryEditor) Countries() []*Country {
	all := make([]*Country, 0, len(e.countries))
	for _, c := range e.countries {
		all = append(all, c)
	}
	sort.Slice(all, func(a, b int) bool {
		return all[a].Name < all[b].Name
	})
	return all
}
