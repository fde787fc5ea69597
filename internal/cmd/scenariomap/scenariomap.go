// Package scenariomap renders the starting position maps of the scenarios
// in a content bundle, and optionally the country tokens & setting area
// overlays they are drawn from.
package scenariomap

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/voidshard/condottieri"
	"github.com/voidshard/condottieri/internal/platform/config"

	"github.com/pkg/errors"
)

// Config holds scenariomap command configuration.
type Config struct {
	Bundle        string `env:"CONDOTTIERI_BUNDLE"`
	MediaRoot     string `env:"CONDOTTIERI_MEDIA_ROOT"      envDefault:"media"`
	MediaURL      string `env:"CONDOTTIERI_MEDIA_URL"       envDefault:"/media/"`
	ScenariosRoot string `env:"CONDOTTIERI_SCENARIOS_ROOT"  envDefault:"scenarios"`
	JPEGQuality   int    `env:"CONDOTTIERI_JPEG_QUALITY"    envDefault:"75"`
	Scenarios     string `env:"CONDOTTIERI_SCENARIOS"`
	Tokens        bool   `env:"CONDOTTIERI_TOKENS"`
	Areas         bool   `env:"CONDOTTIERI_AREAS"`
	ValidateOnly  bool   `env:"CONDOTTIERI_VALIDATE_ONLY"`
	Verbose       bool   `env:"CONDOTTIERI_VERBOSE"`
}

// ParseConfig parses env & then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Bundle, "bundle", cfg.Bundle, "path to the content bundle (json)")
	fs.StringVar(&cfg.MediaRoot, "media-root", cfg.MediaRoot, "directory images are read from & written to")
	fs.StringVar(&cfg.MediaURL, "media-url", cfg.MediaURL, "public url prefix of the media root")
	fs.StringVar(&cfg.ScenariosRoot, "scenarios-root", cfg.ScenariosRoot, "scenarios directory under the media root")
	fs.IntVar(&cfg.JPEGQuality, "quality", cfg.JPEGQuality, "jpeg quality of maps & thumbnails")
	fs.StringVar(&cfg.Scenarios, "scenario", cfg.Scenarios, "comma separated scenario slugs to render (default all)")
	fs.BoolVar(&cfg.Tokens, "tokens", cfg.Tokens, "regenerate country tokens before rendering")
	fs.BoolVar(&cfg.Areas, "areas", cfg.Areas, "render the areas overlay of each setting")
	fs.BoolVar(&cfg.ValidateOnly, "validate", cfg.ValidateOnly, "validate the bundle & exit")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every file written")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mediaConfig returns the drawing configuration for cfg
func (c Config) mediaConfig() *condottieri.Config {
	mc := condottieri.DefaultConfig()
	mc.MediaRoot = c.MediaRoot
	mc.MediaURL = c.MediaURL
	mc.ScenariosRoot = c.ScenariosRoot
	if c.JPEGQuality > 0 {
		mc.JPEGQuality = c.JPEGQuality
	}
	return mc
}

// slugs returns the requested scenario slugs, nil meaning all
func (c Config) slugs() []string {
	if strings.TrimSpace(c.Scenarios) == "" {
		return nil
	}
	found := []string{}
	for _, s := range strings.Split(c.Scenarios, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			found = append(found, s)
		}
	}
	return found
}

// Run executes the scenariomap command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = ioutil.Discard
	}
	if errOut == nil {
		errOut = ioutil.Discard
	}
	if cfg.Bundle == "" {
		return errors.New("bundle path is required")
	}
	if cfg.JPEGQuality < 0 || cfg.JPEGQuality > 100 {
		return errors.Errorf("jpeg quality %d out of range [1,100]", cfg.JPEGQuality)
	}

	logger := log.New(errOut, "", 0)
	var libLog *log.Logger
	if cfg.Verbose {
		libLog = logger
	}

	b, err := condottieri.LoadBundleFile(cfg.Bundle)
	if err != nil {
		return errors.Wrap(err, "load bundle")
	}
	err = b.Validate()
	if err != nil {
		return errors.Wrap(err, "invalid bundle")
	}
	if cfg.ValidateOnly {
		fmt.Fprintf(out, "bundle ok: %d settings, %d countries, %d scenarios\n", len(b.Settings), len(b.Countries), len(b.Scenarios))
		return nil
	}

	mc := cfg.mediaConfig()

	if cfg.Tokens {
		editor := condottieri.NewCountryEditor(condottieri.NewTokenMaker(mc, libLog), b.Countries...)
		for _, c := range editor.Countries() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err = editor.RegenerateTokens(c.StaticName)
			if err != nil {
				return err
			}
		}
		logger.Printf("regenerated tokens of %d countries", len(b.Countries))
	}

	comp := condottieri.New(mc, nil, libLog)

	if cfg.Areas {
		for _, s := range b.Settings {
			if err := ctx.Err(); err != nil {
				return err
			}
			err = comp.RenderAreas(s, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s.AreasMapPath(mc))
		}
	}

	scenarios, err := selectScenarios(b, cfg.slugs())
	if err != nil {
		return err
	}
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}
		setting, err := b.SettingOf(sc)
		if err != nil {
			return err
		}
		err = comp.Render(setting, sc)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sc.MapPath(mc))
	}

	logger.Printf("rendered %d scenario maps", len(scenarios))
	return nil
}

// selectScenarios returns the scenarios with the given slugs, in order,
// or every scenario if no slugs are given
func selectScenarios(b *condottieri.Bundle, slugs []string) ([]*condottieri.Scenario, error) {
	if slugs == nil {
		return b.Scenarios, nil
	}
	found := make([]*condottieri.Scenario, 0, len(slugs))
	for _, slug := range slugs {
		sc, ok := b.Scenario(slug)
		if !ok {
			return nil, errors.Errorf("unknown scenario %q", slug)
		}
		found = append(found, sc)
	}
	return found, nil
}
