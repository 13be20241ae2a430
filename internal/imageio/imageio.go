// Package imageio decodes panorama images into 8-bit RGB buffers ready for
// texture upload.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	gomath "math"
	"os"

	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/rgbe" // Radiance .hdr decoder
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// DialogExtensions are the file extensions offered by the open dialog.
var DialogExtensions = []string{"jpg", "png", "hdr", "jpeg"}

// Buffer is a tightly packed RGB image, rows top to bottom.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8 // len = Width*Height*3
}

// Source describes what was decoded.
type Source struct {
	Format     string // Decoder name reported by image.Decode
	Normalized bool   // True when samples were rescaled from a non-8-bit depth
}

// Load decodes the image at path into an RGB buffer. Images deeper than
// 8 bits per channel are min-max rescaled into [0, 255].
func Load(path string) (*Buffer, Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Source{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, Source{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	buf, normalized, err := FromImage(img)
	if err != nil {
		return nil, Source{}, fmt.Errorf("converting %s: %w", path, err)
	}
	return buf, Source{Format: format, Normalized: normalized}, nil
}

// FromImage converts a decoded image to an RGB buffer, dropping alpha.
// The second return reports whether depth normalization was applied.
func FromImage(img image.Image) (*Buffer, bool, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, false, ErrEmptyImage
	}

	switch src := img.(type) {
	case hdr.Image:
		return normalize(b, func(x, y int) (float64, float64, float64) {
			r, g, bl, _ := src.HDRAt(x, y).HDRRGBA()
			return r, g, bl
		}), true, nil
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		return normalize(b, func(x, y int) (float64, float64, float64) {
			c := color.NRGBA64Model.Convert(src.At(x, y)).(color.NRGBA64)
			return float64(c.R), float64(c.G), float64(c.B)
		}), true, nil
	default:
		return to8Bit(img), false, nil
	}
}

// to8Bit copies the straight (non-premultiplied) colour channels.
func to8Bit(img image.Image) *Buffer {
	b := img.Bounds()
	buf := newBuffer(b.Dx(), b.Dy())

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix[i] = c.R
			buf.Pix[i+1] = c.G
			buf.Pix[i+2] = c.B
			i += 3
		}
	}
	return buf
}

// normalize rescales every sample linearly so the global minimum maps to 0
// and the global maximum to 255. A flat image maps to all zeros. The image is
// walked twice, once for the range and once to write, so no copy of the
// samples is held.
func normalize(b image.Rectangle, at func(x, y int) (float64, float64, float64)) *Buffer {
	lo, hi := gomath.Inf(1), gomath.Inf(-1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := at(x, y)
			for _, s := range [3]float64{r, g, bl} {
				s = nanToZero(s)
				lo = gomath.Min(lo, s)
				hi = gomath.Max(hi, s)
			}
		}
	}

	buf := newBuffer(b.Dx(), b.Dy())
	if hi-lo <= 0 || gomath.IsInf(hi-lo, 0) {
		return buf
	}

	scale := 255 / (hi - lo)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := at(x, y)
			for _, s := range [3]float64{r, g, bl} {
				buf.Pix[i] = uint8(gomath.Round((nanToZero(s) - lo) * scale))
				i++
			}
		}
	}
	return buf
}

// nanToZero maps NaN samples to 0.
func nanToZero(s float64) float64 {
	if gomath.IsNaN(s) {
		return 0
	}
	return s
}

func newBuffer(w, h int) *Buffer {
	return &Buffer{Width: w, Height: h, Pix: make([]uint8, w*h*3)}
}
