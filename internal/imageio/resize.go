package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit returns buf unchanged when both sides are within maxSize, otherwise a
// bilinearly resampled copy whose longer side equals maxSize.
func Fit(buf *Buffer, maxSize int) *Buffer {
	if maxSize <= 0 || (buf.Width <= maxSize && buf.Height <= maxSize) {
		return buf
	}

	w, h := buf.Width, buf.Height
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}

	src := buf.RGBA()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return fromRGBA(dst)
}

// RGBA expands the buffer to an opaque RGBA image.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

func fromRGBA(img *image.RGBA) *Buffer {
	b := img.Bounds()
	buf := newBuffer(b.Dx(), b.Dy())
	i := 0
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			buf.Pix[i] = row[x]
			buf.Pix[i+1] = row[x+1]
			buf.Pix[i+2] = row[x+2]
			i += 3
		}
	}
	return buf
}
