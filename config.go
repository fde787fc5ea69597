package condottieri

import (
	"image"
	"path"
	"path/filepath"
	"strings"
)

const (
	tokensDirName    = "tokens"
	templatesDirName = "token_templates"
	badgesDirName    = "badges"
	coatsDirName     = "coats"
	boardsDirName    = "boards"
)

// Config outlines where content lives on disk & a few drawing constants
// that are shared by every scenario.
type Config struct {
	// MediaRoot is the directory all images are read from / written to.
	MediaRoot string

	// MediaURL is the public prefix MediaRoot is served under.
	MediaURL string

	// ScenariosRoot is the directory (relative to MediaRoot) holding
	// scenario maps, tokens, templates, badges, coats & boards.
	ScenariosRoot string

	// Thumbnails to generate after each scenario map, in order.
	// Each is a box the map is shrunk to fit in (aspect ratio kept).
	Thumbnails []*ThumbnailConfig

	// ChestOffset is added to a city's garrison token position when
	// marking a special city income
	ChestOffset image.Point

	// FlagOffset is added to an area's control token position when
	// drawing a home flag
	FlagOffset image.Point

	// JPEGQuality for scenario maps & thumbnails [1,100]
	JPEGQuality int
}

// ThumbnailConfig is a box size & the directory (under ScenariosRoot)
// thumbnails of that size are written to.
type ThumbnailConfig struct {
	Width  int
	Height int
	Dir    string
}

// DefaultConfig returns a Config matching the layout the game engine expects.
func DefaultConfig() *Config {
	return &Config{
		MediaRoot:     "media",
		MediaURL:      "/media/",
		ScenariosRoot: "scenarios",
		Thumbnails: []*ThumbnailConfig{
			{Width: 187, Height: 267, Dir: "thumbnails"},
			{Width: 625, Height: 890, Dir: "625x890"},
		},
		ChestOffset: image.Pt(48, 0),
		FlagOffset:  image.Pt(0, -15),
		JPEGQuality: 75,
	}
}

// ScenariosDir is MediaRoot/ScenariosRoot
func (c *Config) ScenariosDir() string {
	return filepath.Join(c.MediaRoot, c.ScenariosRoot)
}

// TokensDir holds fixed markers (disabled, chest, G-autonomous) and the
// generated per-country sprites.
func (c *Config) TokensDir() string {
	return filepath.Join(c.ScenariosDir(), tokensDirName)
}

// TemplatesDir holds the shape templates country tokens are drawn over.
func (c *Config) TemplatesDir() string {
	return filepath.Join(c.ScenariosDir(), templatesDirName)
}

// BadgesDir holds generated country badges & icons.
func (c *Config) BadgesDir() string {
	return filepath.Join(c.ScenariosDir(), badgesDirName)
}

// mediaPath returns rel as a path under MediaRoot. Absolute paths are
// returned as is.
func (c *Config) mediaPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.MediaRoot, filepath.FromSlash(rel))
}

// mediaURL returns the public URL of rel (a path relative to MediaRoot)
func (c *Config) mediaURL(rel string) string {
	if c.MediaURL == "" {
		return rel
	}
	return strings.TrimSuffix(c.MediaURL, "/") + "/" + rel
}

// relScenarios joins elements under ScenariosRoot using forward slashes,
// as stored in content bundles & URLs.
func (c *Config) relScenarios(elem ...string) string {
	return path.Join(append([]string{filepath.ToSlash(c.ScenariosRoot)}, elem...)...)
}
