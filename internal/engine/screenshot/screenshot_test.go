package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	c := New("shots", "pano")
	c.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 8e6, time.UTC) }

	want := filepath.Join("shots", "pano_2026-03-04_05-06-07.008.png")
	if got := c.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}

	c.dir = ""
	if got := c.Filename(); strings.ContainsRune(got, filepath.Separator) {
		t.Errorf("expected bare filename without dir, got %q", got)
	}
}

func TestSaveFramebufferFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	c := New(dir, "pano")

	// 1x2 image, bottom row first: red bottom, blue top
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := c.SaveFramebuffer(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SaveFramebuffer failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("screenshot written to %s, want dir %s", path, dir)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(0, 1)).(color.RGBA)
	if top != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("top pixel = %v, want blue", top)
	}
	if bottom != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom pixel = %v, want red", bottom)
	}
}

func TestSaveFramebufferSizeMismatch(t *testing.T) {
	c := New(t.TempDir(), "pano")
	if _, err := c.SaveFramebuffer(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error, got nil")
	}
}
