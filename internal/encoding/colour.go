package encoding

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColour turns "FF0000" (or "#ff0000") into an opaque colour.
func ParseHexColour(in string) (color.RGBA, error) {
	in = strings.TrimPrefix(strings.TrimSpace(in), "#")
	if len(in) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q must be 6 hexadecimal digits", in)
	}
	data, err := hex.DecodeString(in)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", in, err)
	}
	return color.RGBA{R: data[0], G: data[1], B: data[2], A: 255}, nil
}

// HexColour is the inverse of ParseHexColour, returning upper case digits
// without a leading #.
func HexColour(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return strings.ToUpper(hex.EncodeToString([]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}))
}
