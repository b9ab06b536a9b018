package main

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Pixel is a single RGB color with alpha already discarded.
type Pixel struct {
	R, G, B uint8
}

// String renders the pixel as "(r, g, b)".
func (p Pixel) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.R, p.G, p.B)
}

// DecodeError is returned when a file exists but is not an image any
// registered decoder understands.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type format struct {
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}

var formats = map[string]format{
	".jpg":  {jpeg.Decode, jpeg.DecodeConfig},
	".jpeg": {jpeg.Decode, jpeg.DecodeConfig},
	".png":  {png.Decode, png.DecodeConfig},
	".gif":  {gif.Decode, gif.DecodeConfig},
	".bmp":  {bmp.Decode, bmp.DecodeConfig},
	".tif":  {tiff.Decode, tiff.DecodeConfig},
	".tiff": {tiff.Decode, tiff.DecodeConfig},
	".webp": {webp.Decode, webp.DecodeConfig},
}

// Image is a decoded source image.
type Image struct {
	img image.Image
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	return &Image{img: img}
}

// LoadImage opens and decodes the image at path.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening image")
	}
	defer f.Close()
	return DecodeImage(f, path)
}

// DecodeImage decodes an image from r. The decoder is picked from the
// extension of name, falling back to sniffing the content.
func DecodeImage(r io.ReadSeeker, name string) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if f, ok := formats[ext]; ok {
		img, err := f.decode(r)
		if err == nil {
			return NewImage(img), nil
		}
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, errors.Wrap(err, "rewinding image")
		}
	}
	// slow path, try to guess
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}
	return NewImage(img), nil
}

// LoadImageConfig reads only the header of the image at path.
func LoadImageConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, errors.Wrap(err, "opening image")
	}
	defer f.Close()

	if dec, ok := formats[strings.ToLower(filepath.Ext(path))]; ok {
		cfg, err := dec.decodeConfig(f)
		if err == nil {
			return cfg, nil
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return image.Config{}, errors.Wrap(err, "rewinding image")
		}
	}
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, &DecodeError{Path: path, Err: err}
	}
	return cfg, nil
}

// Width is the image width in pixels.
func (im *Image) Width() int { return im.img.Bounds().Dx() }

// Height is the image height in pixels.
func (im *Image) Height() int { return im.img.Bounds().Dy() }

// Len is the number of pixels Pixels yields.
func (im *Image) Len() int { return im.Width() * im.Height() }

// Pixels yields every pixel in row-major order, left to right then top
// to bottom.
func (im *Image) Pixels() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		b := im.img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if !yield(toPixel(im.img.At(x, y))) {
					return
				}
			}
		}
	}
}

// toPixel un-premultiplies c before dropping alpha, so a translucent
// pixel keeps its stored color rather than being darkened.
func toPixel(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}
