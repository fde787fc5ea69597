package condottieri

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// Bundle is the content exported by editors & read by the game engine:
// every setting, country & scenario plus their supporting records.
type Bundle struct {
	Settings     []*Setting     `json:"settings"`
	Countries    []*Country     `json:"countries"`
	Scenarios    []*Scenario    `json:"scenarios"`
	SpecialUnits []*SpecialUnit `json:"special_units,omitempty"`
	Religions    []*Religion    `json:"religions,omitempty"`
}

// LoadBundle decodes a bundle & indexes its settings.
func LoadBundle(r io.Reader) (*Bundle, error) {
	b := &Bundle{}
	err := json.NewDecoder(r).Decode(b)
	if err != nil {
		return nil, errors.Wrap(err, "decode bundle")
	}
	return b, b.Index()
}

// LoadBundleFile reads a bundle from disk
func LoadBundleFile(fpath string) (*Bundle, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadBundle(f)
}

// JSON returns the bundle as json.
func (b *Bundle) JSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// SaveJSON writes a json file to the given path.
func (b *Bundle) SaveJSON(fpath string) error {
	data, err := b.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// Index links the borders of every setting onto its areas
func (b *Bundle) Index() error {
	for i, s := range b.Settings {
		if s == nil {
			return errors.Errorf("settings[%d] is null", i)
		}
		err := s.Index()
		if err != nil {
			return err
		}
	}
	return nil
}

// Setting returns a setting by slug
func (b *Bundle) Setting(slug string) (*Setting, bool) {
	for _, s := range b.Settings {
		if s != nil && s.Slug == slug {
			return s, true
		}
	}
	return nil, false
}

// Scenario returns a scenario by slug
func (b *Bundle) Scenario(slug string) (*Scenario, bool) {
	for _, s := range b.Scenarios {
		if s != nil && s.Slug == slug {
			return s, true
		}
	}
	return nil, false
}

// Country returns a country by static name
func (b *Bundle) Country(static string) (*Country, bool) {
	for _, c := range b.Countries {
		if c != nil && c.StaticName == static {
			return c, true
		}
	}
	return nil, false
}

// SettingOf returns the setting a scenario is defined under
func (b *Bundle) SettingOf(s *Scenario) (*Setting, error) {
	setting, ok := b.Setting(s.Setting)
	if !ok {
		return nil, errors.Errorf("scenario %s: unknown setting %q", s.Slug, s.Setting)
	}
	return setting, nil
}

// Validate checks every record of the bundle, including references
// between them (contender countries, special units, religions).
func (b *Bundle) Validate() error {
	var errs ValidationErrors

	for i, s := range b.Settings {
		if s == nil {
			errs.add(fmt.Sprintf("settings[%d]", i), "is null")
			continue
		}
		errs.prefixed(fmt.Sprintf("settings[%d]", i), s.Validate())
	}

	units := map[string]bool{}
	for i, u := range b.SpecialUnits {
		if u == nil {
			errs.add(fmt.Sprintf("special_units[%d]", i), "is null")
			continue
		}
		units[u.StaticTitle] = true
	}
	religions := map[string]bool{}
	for i, r := range b.Religions {
		if r == nil {
			errs.add(fmt.Sprintf("religions[%d]", i), "is null")
			continue
		}
		religions[r.Slug] = true
	}

	statics := map[string]bool{}
	for i, c := range b.Countries {
		prefix := fmt.Sprintf("countries[%d]", i)
		if c == nil {
			errs.add(prefix, "is null")
			continue
		}
		errs.prefixed(prefix, c.Validate())
		if statics[c.StaticName] {
			errs.add(prefix+".static_name", "%q is used more than once", c.StaticName)
		}
		statics[c.StaticName] = true
		for _, u := range c.SpecialUnits {
			if !units[u] {
				errs.add(prefix+".special_units", "unknown special unit %q", u)
			}
		}
		if c.Religion != "" && !religions[c.Religion] {
			errs.add(prefix+".religion", "unknown religion %q", c.Religion)
		}
		for j, ri := range c.RandomIncomes {
			if _, ok := b.Setting(ri.Setting); !ok {
				errs.add(fmt.Sprintf("%s.random_incomes[%d].setting", prefix, j), "unknown setting %q", ri.Setting)
			}
		}
	}

	slugs := map[string]bool{}
	for i, s := range b.Scenarios {
		prefix := fmt.Sprintf("scenarios[%d]", i)
		if s == nil {
			errs.add(prefix, "is null")
			continue
		}
		if slugs[s.Slug] {
			errs.add(prefix+".slug", "%q is used more than once", s.Slug)
		}
		slugs[s.Slug] = true

		setting, err := b.SettingOf(s)
		if err != nil {
			errs.add(prefix+".setting", "%v", err)
			continue
		}
		errs.prefixed(prefix, s.Validate(setting))
		for j, c := range s.Contenders {
			if c != nil && !c.IsAutonomous() && !statics[c.Country] {
				errs.add(fmt.Sprintf("%s.contenders[%d].country", prefix, j), "unknown country %q", c.Country)
			}
		}
	}

	return errs.err()
}
