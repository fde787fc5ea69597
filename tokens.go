package condottieri

import (
	"fmt"
	"image"
	"image/color"
	"io/ioutil"
	"log"
	"path/filepath"

	"github.com/voidshard/condottieri/internal/encoding"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

const (
	// template file names under Config.TemplatesDir()
	badgeTemplate    = "badge-base.png"
	armyTemplate     = "army-base.png"
	garrisonTemplate = "garrison-base.png"
	fleetTemplate    = "fleet-base.png"
	shipTemplate     = "ship-icon.png"

	// sizes of the generated images
	controlSize = 24
	flagSize    = 32
	iconSize    = 24
	armyCoat    = 26
	smallCoat   = 19
)

// flagOutline is the polygon of the home flag, drawn on a flagSize square
var flagOutline = []image.Point{
	{5, 12}, {13, 9}, {17, 12}, {30, 9}, {30, 1}, {17, 4}, {13, 1}, {5, 4},
}

// unitSpriteName returns eg. "A-venice"
func unitSpriteName(u UnitType, static string) string {
	return fmt.Sprintf("%s-%s", string(u), static)
}

// controlSpriteName returns eg. "control-venice"
func controlSpriteName(static string) string {
	return "control-" + static
}

// flagSpriteName returns eg. "flag-venice"
func flagSpriteName(static string) string {
	return "flag-" + static
}

// TokenMaker draws the sprites of a country from its colour & coat of arms.
type TokenMaker struct {
	cfg *Config
	log *log.Logger
}

// NewTokenMaker returns a TokenMaker writing under the directories of cfg.
// A nil logger discards output.
func NewTokenMaker(cfg *Config, logger *log.Logger) *TokenMaker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &TokenMaker{cfg: cfg, log: logger}
}

// CountryImages are the seven images derived from a country's colour &
// coat of arms.
type CountryImages struct {
	Badge    image.Image // 48x48 coat of arms on the badge template
	Icon     image.Image // coat of arms shrunk to 24x24
	Army     image.Image
	Garrison image.Image
	Fleet    image.Image
	Control  image.Image // 24x24 disc
	Flag     image.Image // 32x32 home flag
}

// Paths returns where each of the seven images of a country is written,
// in the same order as the fields of CountryImages.
func (t *TokenMaker) Paths(c *Country) []string {
	tokens := t.cfg.TokensDir()
	badges := t.cfg.BadgesDir()
	return []string{
		filepath.Join(badges, fmt.Sprintf("badge-%s.png", c.StaticName)),
		filepath.Join(badges, fmt.Sprintf("icon-%s.png", c.StaticName)),
		filepath.Join(tokens, unitSpriteName(Army, c.StaticName)+".png"),
		filepath.Join(tokens, unitSpriteName(Garrison, c.StaticName)+".png"),
		filepath.Join(tokens, unitSpriteName(Fleet, c.StaticName)+".png"),
		filepath.Join(tokens, controlSpriteName(c.StaticName)+".png"),
		filepath.Join(tokens, flagSpriteName(c.StaticName)+".png"),
	}
}

// Make regenerates & writes all seven images of the country.
// It must be called whenever the colour or coat of arms changes.
// Protected countries have hand made sprites & are left alone.
func (t *TokenMaker) Make(c *Country) error {
	if c.Protected {
		t.log.Printf("country %s: protected, tokens not regenerated", c.StaticName)
		return nil
	}

	ims, err := t.Draw(c)
	if err != nil {
		return err
	}

	paths := t.Paths(c)
	for i, im := range []image.Image{ims.Badge, ims.Icon, ims.Army, ims.Garrison, ims.Fleet, ims.Control, ims.Flag} {
		err = savePNG(paths[i], im)
		if err != nil {
			return errors.Wrapf(err, "country %s: write %s", c.StaticName, paths[i])
		}
	}

	t.log.Printf("country %s: wrote %d tokens", c.StaticName, len(paths))
	return nil
}

// Draw renders the images of a country in memory
func (t *TokenMaker) Draw(c *Country) (*CountryImages, error) {
	fill, err := encoding.ParseHexColour(c.Color)
	if err != nil {
		return nil, errors.Wrapf(err, "country %s", c.StaticName)
	}

	coat, err := loadAsset("coat of arms", c.StaticName, c.CoatPath(t.cfg))
	if err != nil {
		return nil, err
	}

	templates := map[string]image.Image{}
	for _, name := range []string{badgeTemplate, armyTemplate, garrisonTemplate, fleetTemplate, shipTemplate} {
		im, err := loadAsset("template", name, filepath.Join(t.cfg.TemplatesDir(), name))
		if err != nil {
			return nil, err
		}
		templates[name] = im
	}

	gcoat := thumbnail(coat, smallCoat, smallCoat)

	return &CountryImages{
		Badge:    drawBadge(templates[badgeTemplate], coat),
		Icon:     thumbnail(coat, iconSize, iconSize),
		Army:     drawArmy(templates[armyTemplate], fill, thumbnail(coat, armyCoat, armyCoat)),
		Garrison: drawGarrison(templates[garrisonTemplate], fill, gcoat),
		Fleet:    drawFleet(templates[fleetTemplate], templates[shipTemplate], fill, gcoat),
		Control:  drawControl(fill),
		Flag:     drawFlag(fill),
	}, nil
}

// drawBadge pastes the coat of arms onto the badge template
func drawBadge(base, coat image.Image) image.Image {
	dc := gg.NewContextForImage(base)
	dc.DrawImage(coat, 4, 4)
	return dc.Image()
}

// drawArmy fills a disc of the country colour on the army template
// & centres the coat of arms on it
func drawArmy(base image.Image, fill color.Color, coat image.Image) image.Image {
	dc := gg.NewContextForImage(base)
	dc.SetColor(fill)
	dc.DrawEllipse(25, 25, 20, 20)
	dc.Fill()
	dc.DrawImage(coat, 12, 12)
	return dc.Image()
}

// drawGarrison is drawArmy on the (smaller) garrison template
func drawGarrison(base image.Image, fill color.Color, coat image.Image) image.Image {
	dc := gg.NewContextForImage(base)
	dc.SetColor(fill)
	dc.DrawEllipse(16.5, 16.5, 13.5, 13.5)
	dc.Fill()
	dc.DrawImage(coat, 8, 8)
	return dc.Image()
}

// drawFleet puts a rounded rectangle of the country colour under the
// ship icon, with the coat of arms on the stern
func drawFleet(base, ship image.Image, fill color.Color, coat image.Image) image.Image {
	dc := gg.NewContextForImage(base)
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(2, 2, 49, 24, 7)
	dc.Fill()
	dc.DrawImage(ship, 0, 0)
	dc.DrawImage(coat, 6, 5)
	return dc.Image()
}

// drawControl returns a disc of the country colour with a black outline
func drawControl(fill color.Color) image.Image {
	dc := gg.NewContext(controlSize, controlSize)
	r := float64(controlSize) / 2
	dc.DrawEllipse(r, r, r-0.5, r-0.5)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(colornames.Black)
	dc.SetLineWidth(1)
	dc.Stroke()
	return dc.Image()
}

// drawFlag returns a simple waving flag of the country colour on a pole
func drawFlag(fill color.Color) image.Image {
	dc := gg.NewContext(flagSize, flagSize)
	for i, p := range flagOutline {
		if i == 0 {
			dc.MoveTo(float64(p.X), float64(p.Y))
			continue
		}
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.ClosePath()
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(colornames.Black)
	dc.SetLineWidth(1)
	dc.Stroke()

	dc.SetLineWidth(2)
	dc.DrawLine(5, 3, 5, 31)
	dc.Stroke()
	return dc.Image()
}
