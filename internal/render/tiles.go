// Package render rasterizes the 8x8 pattern cells that hatched and
// bit-pattern fill styles repeat across a shape.
package render

import (
	"image"
	"image/color"
)

// TileSize is the side length of one pattern cell in pixels.
const TileSize = 8

// Tile is one RGBA pattern cell.
type Tile struct {
	Pixels []uint8 // RGBA, TileSize*TileSize*4
}

func NewTile() *Tile {
	return &Tile{Pixels: make([]uint8, TileSize*TileSize*4)}
}

func (t *Tile) Fill(c color.RGBA) {
	for i := 0; i < len(t.Pixels); i += 4 {
		t.Pixels[i+0] = c.R
		t.Pixels[i+1] = c.G
		t.Pixels[i+2] = c.B
		t.Pixels[i+3] = c.A
	}
}

func (t *Tile) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= TileSize || y >= TileSize {
		return
	}
	i := (y*TileSize + x) * 4
	t.Pixels[i+0] = c.R
	t.Pixels[i+1] = c.G
	t.Pixels[i+2] = c.B
	t.Pixels[i+3] = c.A
}

func (t *Tile) At(x, y int) color.RGBA {
	i := (y*TileSize + x) * 4
	return color.RGBA{t.Pixels[i+0], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]}
}

// RGBA copies the tile into a standalone image.
func (t *Tile) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	copy(img.Pix, t.Pixels)
	return img
}

// Hatch selects one of the fixed hatch layouts.
type Hatch int

const (
	HatchHorizontal Hatch = iota // -----
	HatchVertical                // |||||
	HatchFDiagonal               // \\\\\
	HatchBDiagonal               // /////
	HatchCross                   // +++++
	HatchDiagCross               // xxxxx
)

// HatchTile renders a hatch layout with fg strokes over a bg cell.
func HatchTile(h Hatch, fg, bg color.RGBA) *Tile {
	t := NewTile()
	t.Fill(bg)
	for i := 0; i < TileSize; i++ {
		switch h {
		case HatchHorizontal:
			t.Set(i, 0, fg)
		case HatchVertical:
			t.Set(0, i, fg)
		case HatchFDiagonal:
			t.Set(i, i, fg)
		case HatchBDiagonal:
			t.Set(i, TileSize-1-i, fg)
		case HatchCross:
			t.Set(i, 0, fg)
			t.Set(0, i, fg)
		case HatchDiagCross:
			t.Set(i, i, fg)
			t.Set(i, TileSize-1-i, fg)
		}
	}
	return t
}

// PatternTile renders a caller-supplied 8x8 bit pattern, one byte per row
// with the most significant bit leftmost. Set bits take fg, clear bits bg.
func PatternTile(rows [TileSize]uint8, fg, bg color.RGBA) *Tile {
	t := NewTile()
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			if rows[y]&(0x80>>x) != 0 {
				t.Set(x, y, fg)
			} else {
				t.Set(x, y, bg)
			}
		}
	}
	return t
}
