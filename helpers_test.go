package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var red = color.NRGBA{R: 255, A: 255}

// gradient returns a w by h image whose pixel (x, y) is (x, y, x+y).
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

type encodeFunc func(f *os.File, img image.Image) error

func encodePNG(f *os.File, img image.Image) error  { return png.Encode(f, img) }
func encodeBMP(f *os.File, img image.Image) error  { return bmp.Encode(f, img) }
func encodeTIFF(f *os.File, img image.Image) error { return tiff.Encode(f, img, nil) }

func writeImage(t *testing.T, name string, img image.Image, enc encodeFunc) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, enc(f, img), test.ShouldBeNil)
	test.That(t, f.Close(), test.ShouldBeNil)
	return path
}

func collect(im *Image) []Pixel {
	var out []Pixel
	for p := range im.Pixels() {
		out = append(out, p)
	}
	return out
}
