package condottieri

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestFitBox(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{1000, 1000, 187, 267, 187, 187},
		{400, 600, 187, 267, 178, 267},
		{2000, 500, 625, 890, 625, 156},
		{100, 100, 187, 267, 100, 100},
		{10000, 1, 187, 267, 187, 1},
	}

	for _, tt := range tests {
		w, h := fitBox(tt.w, tt.h, tt.maxW, tt.maxH)
		if w != tt.wantW || h != tt.wantH {
			t.Fatalf("fitBox(%d, %d, %d, %d) = %d, %d; want %d, %d", tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestThumbnail(t *testing.T) {
	im := thumbnail(solid(400, 600, colornames.Navy), 187, 267)
	if got := im.Bounds().Size(); got != image.Pt(178, 267) {
		t.Fatalf("thumbnail size = %v, want 178x267", got)
	}
	// resampling a flat colour may be off by a rounding error
	r, g, b, _ := im.At(89, 133).RGBA()
	if r>>8 > 1 || g>>8 > 1 || b>>8 < 127 {
		t.Fatalf("thumbnail centre = %v, want %v", im.At(89, 133), colornames.Navy)
	}
}

func TestFlatten(t *testing.T) {
	in := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	in.Set(0, 0, color.NRGBA{200, 100, 50, 0})
	in.Set(1, 0, color.NRGBA{10, 20, 30, 128})

	out := flatten(in)
	if got := out.At(0, 0); !sameColour(got, color.RGBA{200, 100, 50, 255}) {
		t.Fatalf("flatten(transparent) = %v", got)
	}
	if got := out.At(1, 0); !sameColour(got, color.RGBA{10, 20, 30, 255}) {
		t.Fatalf("flatten(half) = %v", got)
	}
}

func TestPasteOffBoard(t *testing.T) {
	dst := solid(10, 10, colornames.White)
	paste(dst, solid(4, 4, colornames.Black), image.Pt(8, -2))

	if got := dst.At(9, 0); !sameColour(got, colornames.Black) {
		t.Fatalf("pixel (9,0) = %v, want black", got)
	}
	if got := dst.At(7, 0); !sameColour(got, colornames.White) {
		t.Fatalf("pixel (7,0) = %v, want white", got)
	}
}
