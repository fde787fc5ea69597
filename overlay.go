package condottieri

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// TerrainScheme defines how the areas overlay is coloured.
type TerrainScheme struct {
	Land   color.Color
	Coast  color.Color
	Sea    color.Color
	Mixed  color.Color
	City   color.Color // outline of areas with a city
	Border color.Color // borders passable by fleets
	Land2  color.Color // land only borders
	Label  color.Color
}

// DefaultTerrainScheme returns a reasonable default TerrainScheme.
func DefaultTerrainScheme() *TerrainScheme {
	return &TerrainScheme{
		Land:   colornames.Forestgreen,
		Coast:  colornames.Wheat,
		Sea:    colornames.Royalblue,
		Mixed:  colornames.Mediumturquoise,
		City:   colornames.Crimson,
		Border: colornames.Navy,
		Land2:  colornames.Saddlebrown,
		Label:  colornames.Black,
	}
}

// fillFor returns the disc colour for an area's terrain
func (s *TerrainScheme) fillFor(t Terrain) color.Color {
	switch {
	case t.IsSea():
		return s.Sea
	case t.IsMixed():
		return s.Mixed
	case t.IsCoast():
		return s.Coast
	}
	return s.Land
}

// AreasMap draws every area of the setting over its board so editors can
// check token positions & borders: a line per border between control
// tokens (dashed if land only), a disc coloured by terrain & the area code.
// Areas without a control token are skipped & logged.
func (c *Compositor) AreasMap(setting *Setting, scheme *TerrainScheme) (*image.RGBA, error) {
	if scheme == nil {
		scheme = DefaultTerrainScheme()
	}
	board, err := c.assets.Board(setting)
	if err != nil {
		return nil, errors.Wrapf(err, "setting %s", setting.Slug)
	}
	canvas := toRGBA(board)
	dc := gg.NewContextForRGBA(canvas)
	origin := canvas.Bounds().Min
	r := float64(controlSize) / 2

	centre := func(code string) (float64, float64, bool) {
		a, err := setting.Area(code)
		if err != nil || a.ControlToken == nil {
			return 0, 0, false
		}
		p := a.ControlToken.Point().Add(origin)
		return float64(p.X) + r, float64(p.Y) + r, true
	}

	dc.SetLineWidth(2)
	for _, b := range setting.Borders {
		x1, y1, ok1 := centre(b.From)
		x2, y2, ok2 := centre(b.To)
		if !ok1 || !ok2 {
			continue
		}
		if b.OnlyLand {
			dc.SetColor(scheme.Land2)
			dc.SetDash(4, 3)
		} else {
			dc.SetColor(scheme.Border)
			dc.SetDash()
		}
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetFontFace(basicfont.Face7x13)
	for _, a := range setting.Areas {
		x, y, ok := centre(a.Code)
		if !ok {
			c.log.Printf("setting %s: area %s has no control token", setting.Slug, a.Code)
			continue
		}
		t := a.Terrain()

		dc.DrawCircle(x, y, r/2)
		dc.SetColor(scheme.fillFor(t))
		dc.FillPreserve()
		if t.HasCity() {
			dc.SetColor(scheme.City)
			dc.SetLineWidth(2)
		} else {
			dc.SetColor(scheme.Label)
			dc.SetLineWidth(1)
		}
		dc.Stroke()

		dc.SetColor(scheme.Label)
		dc.DrawStringAnchored(a.Code, x, y+r+4, 0.5, 0.5)
	}

	return canvas, nil
}

// RenderAreas draws the areas overlay of a setting & writes it to
// setting.AreasMapPath() as a PNG.
func (c *Compositor) RenderAreas(setting *Setting, scheme *TerrainScheme) error {
	im, err := c.AreasMap(setting, scheme)
	if err != nil {
		return err
	}
	fpath := setting.AreasMapPath(c.cfg)
	err = savePNG(fpath, im)
	if err != nil {
		return errors.Wrapf(err, "setting %s: write areas map", setting.Slug)
	}
	c.log.Printf("setting %s: wrote %s", setting.Slug, fpath)
	return nil
}
