// Package texture uploads decoded images to the GPU.
package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/panoview/internal/imageio"
)

// Texture is an immutable 2D RGB texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// MaxSize returns GL_MAX_TEXTURE_SIZE for the current context.
func MaxSize() int {
	var size int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &size)
	return int(size)
}

// Upload creates a texture from buf as mip level 0 with linear filtering
// and edge clamping on both axes. No mipmaps are generated.
func Upload(buf *imageio.Buffer) (*Texture, error) {
	if buf.Width <= 0 || buf.Height <= 0 || len(buf.Pix) != buf.Width*buf.Height*3 {
		return nil, fmt.Errorf("invalid buffer %dx%d with %d bytes", buf.Width, buf.Height, len(buf.Pix))
	}

	t := &Texture{Width: buf.Width, Height: buf.Height}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	// RGB rows are not 4-byte aligned for most widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8,
		int32(buf.Width), int32(buf.Height), 0,
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(buf.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &t.ID)
		return nil, fmt.Errorf("glTexImage2D failed: 0x%x", e)
	}
	return t, nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the GPU texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
