package condottieri

import (
	"image"
)

// Assets tells the compositor where to find the images it pastes.
// We only have two questions;
// - what does the named sprite look like? (eg. "disabled", "chest", "A-venice")
// - what is the base board of a setting?
// Both must return a *MissingAssetError (possibly wrapped) if the image
// does not exist.
type Assets interface {
	// Sprite returns a token sprite by name (file name sans extension)
	Sprite(name string) (image.Image, error)

	// Board returns the base board image of the setting
	Board(s *Setting) (image.Image, error)
}
