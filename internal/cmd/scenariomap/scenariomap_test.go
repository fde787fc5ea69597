package scenariomap

import (
	"bytes"
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testBundle = `{
  "settings": [{
    "slug": "italy",
    "title": "Italy",
    "areas": [
      {"code": "VEN", "name": "Venice", "is_coast": true, "af_token": {"x": 4, "y": 4}},
      {"code": "ADR", "name": "Adriatic", "is_sea": true}
    ],
    "borders": [{"from": "VEN", "to": "ADR"}]
  }],
  "countries": [],
  "scenarios": [{
    "slug": "italy-1454",
    "title": "Italy 1454",
    "setting": "italy",
    "number_of_players": 0,
    "disabled_areas": ["VEN"]
  }]
}`

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("scenariomap", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.MediaRoot != "media" {
		t.Fatalf("MediaRoot = %q, want media", cfg.MediaRoot)
	}
	if cfg.ScenariosRoot != "scenarios" {
		t.Fatalf("ScenariosRoot = %q, want scenarios", cfg.ScenariosRoot)
	}
	if cfg.JPEGQuality != 75 {
		t.Fatalf("JPEGQuality = %d, want 75", cfg.JPEGQuality)
	}
	if cfg.Tokens || cfg.Areas || cfg.ValidateOnly {
		t.Fatal("expected optional steps to default to off")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("CONDOTTIERI_MEDIA_ROOT", "/srv/media")
	t.Setenv("CONDOTTIERI_BUNDLE", "env.json")
	fs := flag.NewFlagSet("scenariomap", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, []string{"-bundle", "flag.json", "-scenario", "a, b", "-tokens"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.MediaRoot != "/srv/media" {
		t.Fatalf("MediaRoot = %q, want env value", cfg.MediaRoot)
	}
	if cfg.Bundle != "flag.json" {
		t.Fatalf("Bundle = %q, want flag to win over env", cfg.Bundle)
	}
	if !cfg.Tokens {
		t.Fatal("expected -tokens to be set")
	}
	if got := cfg.slugs(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("slugs() = %v, want [a b]", got)
	}
}

func TestRunRequiresBundle(t *testing.T) {
	err := Run(context.Background(), Config{}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "bundle path is required") {
		t.Fatalf("Run() = %v, want missing bundle error", err)
	}
}

func TestRunValidateOnly(t *testing.T) {
	bundle := writeBundle(t, testBundle)
	var out bytes.Buffer

	err := Run(context.Background(), Config{Bundle: bundle, ValidateOnly: true}, &out, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := out.String(); got != "bundle ok: 1 settings, 0 countries, 1 scenarios\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunInvalidBundle(t *testing.T) {
	bundle := writeBundle(t, strings.Replace(testBundle, `"setting": "italy"`, `"setting": "france"`, 1))

	err := Run(context.Background(), Config{Bundle: bundle, ValidateOnly: true}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "invalid bundle") {
		t.Fatalf("Run() = %v, want invalid bundle error", err)
	}
}

func TestRunRendersMaps(t *testing.T) {
	bundle := writeBundle(t, testBundle)
	media := t.TempDir()
	scenarios := filepath.Join(media, "scenarios")
	writePNG(t, filepath.Join(scenarios, "boards", "board-italy.png"), 40, 40, color.White)
	writePNG(t, filepath.Join(scenarios, "tokens", "disabled.png"), 8, 8, color.Black)

	cfg := Config{
		Bundle:        bundle,
		MediaRoot:     media,
		MediaURL:      "/media/",
		ScenariosRoot: "scenarios",
		JPEGQuality:   75,
		Scenarios:     "italy-1454",
	}
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := filepath.Join(scenarios, "scenario-italy-1454.jpg")
	if got := strings.TrimSpace(out.String()); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	for _, p := range []string{
		want,
		filepath.Join(scenarios, "thumbnails", "scenario-italy-1454.jpg"),
		filepath.Join(scenarios, "625x890", "scenario-italy-1454.jpg"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("%s not written: %v", p, err)
		}
	}

	cfg.Scenarios = "italy-1500"
	if err := Run(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected unknown scenario error")
	}
}

func TestRunCancelled(t *testing.T) {
	bundle := writeBundle(t, testBundle)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, Config{Bundle: bundle, MediaRoot: t.TempDir()}, nil, nil)
	if err != context.Canceled {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
}

func writeBundle(t *testing.T, data string) string {
	t.Helper()
	fpath := filepath.Join(t.TempDir(), "bundle.json")
	if err := ioutil.WriteFile(fpath, []byte(data), 0644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	return fpath
}

func writePNG(t *testing.T, fpath string, w, h int, c color.Color) {
	t.Helper()
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, c)
		}
	}
	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(fpath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, im); err != nil {
		t.Fatalf("encode: %v", err)
	}
}
