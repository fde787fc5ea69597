package condottieri

import (
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DirAssets reads sprites & boards from the directories given by a Config.
type DirAssets struct {
	cfg *Config
}

// NewDirAssets returns Assets backed by cfg.TokensDir() & setting boards
// under cfg.MediaRoot.
func NewDirAssets(cfg *Config) *DirAssets {
	return &DirAssets{cfg: cfg}
}

// Sprite loads <tokens dir>/<name>.png
func (d *DirAssets) Sprite(name string) (image.Image, error) {
	return loadAsset("sprite", name, filepath.Join(d.cfg.TokensDir(), name+".png"))
}

// Board loads the setting's base board
func (d *DirAssets) Board(s *Setting) (image.Image, error) {
	return loadAsset("board", s.Slug, s.BoardPath(d.cfg))
}

// loadAsset loads a PNG, turning a missing file into a MissingAssetError
func loadAsset(kind, name, fpath string) (image.Image, error) {
	im, err := loadPNG(fpath)
	if os.IsNotExist(errors.Cause(err)) {
		return nil, &MissingAssetError{Kind: kind, Name: name, Err: err}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s %s", kind, name)
	}
	return im, nil
}
