package condottieri

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"
)

// tokenConfig writes token templates & a coat of arms for "venice" under
// a temporary media root
func tokenConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.MediaRoot = t.TempDir()

	templates := map[string]image.Image{
		badgeTemplate:    solid(48, 48, colornames.Gold),
		armyTemplate:     solid(50, 50, colornames.Black),
		garrisonTemplate: solid(33, 33, colornames.Black),
		fleetTemplate:    solid(53, 28, colornames.Black),
		shipTemplate:     image.NewRGBA(image.Rect(0, 0, 53, 28)),
	}
	for name, im := range templates {
		if err := savePNG(filepath.Join(cfg.TemplatesDir(), name), im); err != nil {
			t.Fatalf("save template: %v", err)
		}
	}

	c := &Country{StaticName: "venice"}
	if err := savePNG(c.CoatPath(cfg), solid(40, 40, colornames.Red)); err != nil {
		t.Fatalf("save coat: %v", err)
	}
	return cfg
}

func TestTokenMakerMake(t *testing.T) {
	cfg := tokenConfig(t)
	tm := NewTokenMaker(cfg, nil)
	c := &Country{Name: "Venice", StaticName: "venice", Color: "FFD700"}

	if err := tm.Make(c); err != nil {
		t.Fatalf("Make: %v", err)
	}

	paths := tm.Paths(c)
	if len(paths) != 7 {
		t.Fatalf("Paths() returned %d paths, want 7", len(paths))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("%s not written: %v", p, err)
		}
	}

	// the compositor must find the generated unit sprites by name
	assets := NewDirAssets(cfg)
	for _, name := range []string{"A-venice", "F-venice", "G-venice", "control-venice", "flag-venice"} {
		if _, err := assets.Sprite(name); err != nil {
			t.Fatalf("Sprite(%s): %v", name, err)
		}
	}
}

func TestTokenMakerDraw(t *testing.T) {
	cfg := tokenConfig(t)
	ims, err := NewTokenMaker(cfg, nil).Draw(&Country{Name: "Venice", StaticName: "venice", Color: "FFD700"})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	sizes := []struct {
		name string
		im   image.Image
		want image.Point
	}{
		{"badge", ims.Badge, image.Pt(48, 48)},
		{"icon", ims.Icon, image.Pt(iconSize, iconSize)},
		{"army", ims.Army, image.Pt(50, 50)},
		{"garrison", ims.Garrison, image.Pt(33, 33)},
		{"fleet", ims.Fleet, image.Pt(53, 28)},
		{"control", ims.Control, image.Pt(controlSize, controlSize)},
		{"flag", ims.Flag, image.Pt(flagSize, flagSize)},
	}
	for _, s := range sizes {
		if got := s.im.Bounds().Size(); got != s.want {
			t.Fatalf("%s size = %v, want %v", s.name, got, s.want)
		}
	}

	// centre of the control disc is the country colour
	if got := ims.Control.At(controlSize/2, controlSize/2); !sameColour(got, colornames.Gold) {
		t.Fatalf("control centre = %v, want %v", got, colornames.Gold)
	}
	// army disc edge (inside the circle, outside the coat) is the country colour
	if got := ims.Army.At(25, 8); !sameColour(got, colornames.Gold) {
		t.Fatalf("army disc = %v, want %v", got, colornames.Gold)
	}
	// corner of the army template is untouched
	if got := ims.Army.At(0, 0); !sameColour(got, colornames.Black) {
		t.Fatalf("army corner = %v, want %v", got, colornames.Black)
	}
}

func TestTokenMakerProtected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MediaRoot = t.TempDir()
	tm := NewTokenMaker(cfg, nil)
	c := &Country{Name: "Venice", StaticName: "venice", Color: "FFD700", Protected: true}

	// no templates on disk: anything other than skipping would fail
	if err := tm.Make(c); err != nil {
		t.Fatalf("Make: %v", err)
	}
	for _, p := range tm.Paths(c) {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("%s written for a protected country", p)
		}
	}
}

func TestTokenMakerErrors(t *testing.T) {
	cfg := tokenConfig(t)
	tm := NewTokenMaker(cfg, nil)

	if err := tm.Make(&Country{Name: "Venice", StaticName: "venice", Color: "nope"}); err == nil {
		t.Fatalf("Make(bad colour): expected error")
	}

	err := tm.Make(&Country{Name: "Genoa", StaticName: "genoa", Color: "FF0000"})
	if !IsMissingAsset(err) {
		t.Fatalf("Make(no coat) = %v, want missing asset", err)
	}
}
