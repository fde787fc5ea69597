package condottieri

import (
	"image"
	"io/ioutil"
	"log"

	"github.com/pkg/errors"
)

const (
	// sprite names of the fixed markers
	disabledSprite = "disabled"
	chestSprite    = "chest"

	// static name used for the sprites of autonomous contenders
	autonomousName = "autonomous"
)

// tokenKind says which of an area's stored positions to use
type tokenKind string

const (
	controlToken  tokenKind = "control token"
	garrisonToken tokenKind = "garrison token"
	unitToken     tokenKind = "army/fleet token"
)

// Compositor draws the starting position map of scenarios by pasting
// token sprites over the board of their setting.
type Compositor struct {
	cfg    *Config
	assets Assets
	log    *log.Logger
}

// New creates a Compositor. A nil cfg implies DefaultConfig(), nil assets
// implies NewDirAssets(cfg) & a nil logger discards output.
func New(cfg *Config, assets Assets, logger *log.Logger) *Compositor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if assets == nil {
		assets = NewDirAssets(cfg)
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Compositor{cfg: cfg, assets: assets, log: logger}
}

// Config returns the compositor configuration
func (c *Compositor) Config() *Config {
	return c.cfg
}

// Compose draws the scenario map in memory. Nothing is written to disk.
func (c *Compositor) Compose(setting *Setting, s *Scenario) (*image.RGBA, error) {
	if setting == nil || s == nil {
		return nil, errors.New("setting and scenario are required")
	}
	if s.Setting != setting.Slug {
		return nil, errors.Errorf("scenario %s belongs to setting %q not %q", s.Slug, s.Setting, setting.Slug)
	}

	b := &mapBuilder{
		assets:   c.assets,
		cfg:      c.cfg,
		setting:  setting,
		scenario: s,
		sprites:  map[string]image.Image{},
	}
	err := b.build()
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", s.Slug)
	}
	return b.canvas, nil
}

// Render draws the scenario map, writes it to s.MapPath() as an opaque
// JPEG & then writes each configured thumbnail.
// Output depends only on the scenario, setting & sprites so re-rendering
// an unchanged scenario produces identical files.
func (c *Compositor) Render(setting *Setting, s *Scenario) error {
	im, err := c.Compose(setting, s)
	if err != nil {
		return err
	}
	result := flatten(im)

	fpath := s.MapPath(c.cfg)
	err = saveJPEG(fpath, result, c.cfg.JPEGQuality)
	if err != nil {
		return errors.Wrapf(err, "scenario %s: write map", s.Slug)
	}
	c.log.Printf("scenario %s: wrote %s", s.Slug, fpath)

	for _, t := range c.cfg.Thumbnails {
		tpath := s.ThumbnailPathFor(c.cfg, t)
		err = saveJPEG(tpath, thumbnail(result, t.Width, t.Height), c.cfg.JPEGQuality)
		if err != nil {
			return errors.Wrapf(err, "scenario %s: write %dx%d thumbnail", s.Slug, t.Width, t.Height)
		}
		c.log.Printf("scenario %s: wrote %s", s.Slug, tpath)
	}

	return nil
}

// mapBuilder holds the state of a single render
type mapBuilder struct {
	assets   Assets
	cfg      *Config
	setting  *Setting
	scenario *Scenario

	canvas  *image.RGBA
	sprites map[string]image.Image
}

// build pastes each layer in turn. Order matters: later layers paint
// over earlier ones.
func (b *mapBuilder) build() error {
	board, err := b.assets.Board(b.setting)
	if err != nil {
		return err
	}
	b.canvas = toRGBA(board)

	err = b.markDisabled()
	if err != nil {
		return err
	}

	err = b.markCityIncomes()
	if err != nil {
		return err
	}

	// areas of different contenders never overlap, so the order between
	// countries doesn't change the picture
	for _, c := range b.scenario.CountryContenders() {
		err = b.drawContender(c)
		if err != nil {
			return err
		}
	}

	for _, c := range b.scenario.Autonomous() {
		err = b.drawAutonomous(c)
		if err != nil {
			return err
		}
	}

	return nil
}

// markDisabled marks areas that are out of play
func (b *mapBuilder) markDisabled() error {
	for _, code := range b.scenario.DisabledAreas {
		err := b.paste(disabledSprite, code, unitToken, image.Point{})
		if err != nil {
			return err
		}
	}
	return nil
}

// markCityIncomes puts a chest beside cities with a special income
func (b *mapBuilder) markCityIncomes() error {
	for _, code := range b.scenario.CityIncomes {
		err := b.paste(chestSprite, code, garrisonToken, b.cfg.ChestOffset)
		if err != nil {
			return err
		}
	}
	return nil
}

// drawContender pastes control markers, home flags & units of a country
func (b *mapBuilder) drawContender(c *Contender) error {
	for _, h := range c.Homes {
		err := b.paste(controlSpriteName(c.Country), h.Area, controlToken, image.Point{})
		if err != nil {
			return err
		}
		if !h.IsHome {
			continue
		}
		err = b.paste(flagSpriteName(c.Country), h.Area, controlToken, b.cfg.FlagOffset)
		if err != nil {
			return err
		}
	}

	for _, s := range c.Setups {
		err := b.drawUnit(c.Country, s)
		if err != nil {
			return err
		}
	}

	return nil
}

// drawUnit pastes a single unit of the given country
func (b *mapBuilder) drawUnit(country string, s *Setup) error {
	switch s.UnitType {
	case Army, Fleet:
		return b.paste(unitSpriteName(s.UnitType, country), s.Area, unitToken, image.Point{})
	case Garrison:
		return b.paste(unitSpriteName(Garrison, country), s.Area, garrisonToken, image.Point{})
	}
	return errors.Wrapf(ErrInvalidUnitType, "%q in %s (%s)", string(s.UnitType), s.Area, country)
}

// drawAutonomous pastes the garrisons of a country-less contender
func (b *mapBuilder) drawAutonomous(c *Contender) error {
	for _, s := range c.Setups {
		if s.UnitType != Garrison {
			continue
		}
		err := b.paste(unitSpriteName(Garrison, autonomousName), s.Area, garrisonToken, image.Point{})
		if err != nil {
			return err
		}
	}
	return nil
}

// paste draws the named sprite at the given token of an area, plus offset
func (b *mapBuilder) paste(name, code string, kind tokenKind, offset image.Point) error {
	im, err := b.sprite(name)
	if err != nil {
		return err
	}
	pos, err := b.position(code, kind)
	if err != nil {
		return err
	}
	paste(b.canvas, im, pos.Add(offset))
	return nil
}

// sprite returns the named sprite, loading it on first use
func (b *mapBuilder) sprite(name string) (image.Image, error) {
	im, ok := b.sprites[name]
	if ok {
		return im, nil
	}
	im, err := b.assets.Sprite(name)
	if err != nil {
		return nil, err
	}
	b.sprites[name] = im
	return im, nil
}

// position returns the stored pixel position of an area's token
func (b *mapBuilder) position(code string, kind tokenKind) (image.Point, error) {
	a, err := b.setting.Area(code)
	if err != nil {
		return image.Point{}, &MissingAssetError{Kind: "area", Name: code, Err: err}
	}

	var t *Token
	switch kind {
	case controlToken:
		t = a.ControlToken
	case garrisonToken:
		t = a.GToken
	case unitToken:
		t = a.AFToken
	}
	if t == nil {
		return image.Point{}, &MissingAssetError{Kind: string(kind), Name: code}
	}

	return b.canvas.Bounds().Min.Add(t.Point()), nil
}
