package easel

import (
	"image/color"
	"testing"
)

func TestColorImplementsColorColor(t *testing.T) {
	var _ color.Color = White

	r, g, b, a := LightBlue.RGBA()
	if a != 0xFFFF {
		t.Fatalf("colors should be opaque, alpha=%#04x", a)
	}
	if r != 85*0x101 || g != 85*0x101 || b != 255*0x101 {
		t.Fatalf("unexpected channels: %d %d %d", r, g, b)
	}
}

func TestPaletteEndpoints(t *testing.T) {
	if Black != (Color{0, 0, 0}) || White != (Color{255, 255, 255}) {
		t.Fatal("palette endpoints wrong")
	}
	if Brown != (Color{170, 85, 0}) {
		t.Fatalf("brown should be the dark yellow slot, got %+v", Brown)
	}
}

func TestGray(t *testing.T) {
	g := Gray(90)
	if g.R != 90 || g.G != 90 || g.B != 90 {
		t.Fatalf("unexpected gray: %+v", g)
	}
}
