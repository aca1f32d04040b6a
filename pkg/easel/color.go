package easel

import "image/color"

// Color is an opaque 24-bit RGB color. It satisfies image/color.Color so
// it can be handed straight to the render engine.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns the achromatic color with the given intensity.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xFFFF
	return
}

func (c Color) rgba() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// The classic 16-color palette.
var (
	Black        = Color{0, 0, 0}
	Blue         = Color{0, 0, 170}
	Green        = Color{0, 170, 0}
	Cyan         = Color{0, 170, 170}
	Red          = Color{170, 0, 0}
	Magenta      = Color{170, 0, 170}
	Brown        = Color{170, 85, 0}
	LightGray    = Color{170, 170, 170}
	DarkGray     = Color{85, 85, 85}
	LightBlue    = Color{85, 85, 255}
	LightGreen   = Color{85, 255, 85}
	LightCyan    = Color{85, 255, 255}
	LightRed     = Color{255, 85, 85}
	LightMagenta = Color{255, 85, 255}
	Yellow       = Color{255, 255, 85}
	White        = Color{255, 255, 255}
)
