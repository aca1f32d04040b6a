package easel

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewImageSize(t *testing.T) {
	im := NewImage(40, 30)
	if im.Width() != 40 || im.Height() != 30 {
		t.Fatalf("unexpected size %dx%d", im.Width(), im.Height())
	}
	// degenerate sizes clamp instead of failing
	if im := NewImage(0, -3); im.Width() != 1 || im.Height() != 1 {
		t.Fatalf("degenerate size should clamp to 1x1, got %dx%d", im.Width(), im.Height())
	}
}

func TestImagePixelRoundTrip(t *testing.T) {
	im := NewImage(8, 8)
	im.SetPixel(3, 5, LightMagenta)
	if got := im.Pixel(3, 5); got != LightMagenta {
		t.Fatalf("pixel round trip failed: %+v", got)
	}
	if got := im.Pixel(0, 0); got != Black {
		t.Fatalf("untouched pixel should be black, got %+v", got)
	}
}

func TestImageResize(t *testing.T) {
	im := NewImage(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			im.SetPixel(x, y, Red)
		}
	}
	im.Resize(25, 5)
	if im.Width() != 25 || im.Height() != 5 {
		t.Fatalf("unexpected size after resize: %dx%d", im.Width(), im.Height())
	}
	if got := im.Pixel(12, 2); got != Red {
		t.Fatalf("uniform image should stay uniform after resize, got %+v", got)
	}
}

func TestImageSaveLoad(t *testing.T) {
	im := NewImage(6, 4)
	im.SetPixel(2, 1, Yellow)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := im.Save(path); err != nil {
		t.Fatal(err)
	}

	back, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Width() != 6 || back.Height() != 4 {
		t.Fatalf("unexpected size after reload: %dx%d", back.Width(), back.Height())
	}
	if got := back.Pixel(2, 1); got != Yellow {
		t.Fatalf("pixel lost in save/load: %+v", got)
	}
}

func TestImageSaveUnsupportedExtension(t *testing.T) {
	im := NewImage(2, 2)
	err := im.Save(filepath.Join(t.TempDir(), "out.tiff"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestImageRotateQuarterTurn(t *testing.T) {
	im := NewImage(10, 4)
	out := im.Rotate(1.5707963267948966, Black)
	if out.Width() != 4 || out.Height() != 10 {
		t.Fatalf("quarter turn should swap dimensions, got %dx%d", out.Width(), out.Height())
	}
}

func TestImageInverted(t *testing.T) {
	im := NewImage(2, 2)
	im.SetPixel(0, 0, White)
	inv := im.inverted()
	if got := inv.Pixel(0, 0); got != Black {
		t.Fatalf("white should invert to black, got %+v", got)
	}
	if got := inv.Pixel(1, 1); got != White {
		t.Fatalf("black should invert to white, got %+v", got)
	}
}
