package condottieri

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// paste draws src over dst with its top left corner at p, using the
// alpha channel of src as the mask.
func paste(dst draw.Image, src image.Image, p image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: p, Max: p.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

// toRGBA copies an image into a new RGBA with the same bounds
func toRGBA(in image.Image) *image.RGBA {
	out := image.NewRGBA(in.Bounds())
	draw.Draw(out, out.Bounds(), in, in.Bounds().Min, draw.Src)
	return out
}

// flatten drops the alpha channel, keeping each pixel's straight colour.
// JPEG has no transparency; any alpha left in the board is discarded rather
// than blended against some background.
func flatten(in image.Image) *image.RGBA {
	bnds := in.Bounds()
	out := image.NewRGBA(bnds)
	for y := bnds.Min.Y; y < bnds.Max.Y; y++ {
		for x := bnds.Min.X; x < bnds.Max.X; x++ {
			c := color.NRGBAModel.Convert(in.At(x, y)).(color.NRGBA)
			c.A = 255
			out.Set(x, y, c)
		}
	}
	return out
}

// fitBox returns the largest size with the aspect ratio of (w,h) that fits
// in (maxW,maxH). Images that already fit are not enlarged.
func fitBox(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := maxint(1, int(math.Round(float64(w)*ratio)))
	nh := maxint(1, int(math.Round(float64(h)*ratio)))
	return minint(nw, maxW), minint(nh, maxH)
}

// thumbnail shrinks in to fit (maxW,maxH) using Catmull-Rom resampling
func thumbnail(in image.Image, maxW, maxH int) *image.RGBA {
	sb := in.Bounds()
	w, h := fitBox(sb.Dx(), sb.Dy(), maxW, maxH)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), in, sb, xdraw.Src, nil)
	return out
}

// ensureDir creates the parent directory of fpath if required
func ensureDir(fpath string) error {
	return os.MkdirAll(filepath.Dir(fpath), 0755)
}

// loadPNG reads & decodes a PNG from disk
func loadPNG(fpath string) (image.Image, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	im, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", fpath)
	}
	return im, nil
}

// savePNG to disk, creating directories as needed
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	if err := ensureDir(fpath); err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}

// saveJPEG to disk, creating directories as needed
func saveJPEG(fpath string, in image.Image, quality int) error {
	buff := new(bytes.Buffer)
	err := jpeg.Encode(buff, in, &jpeg.Options{Quality: quality})
	if err != nil {
		return err
	}
	if err := ensureDir(fpath); err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}

// maxint returns the highest of two ints
func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minint returns the lowest of two ints
func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}
