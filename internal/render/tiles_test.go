package render

import (
	"image/color"
	"testing"
)

var (
	fg = color.RGBA{255, 255, 255, 255}
	bg = color.RGBA{0, 0, 0, 255}
)

func TestHatchHorizontal(t *testing.T) {
	tile := HatchTile(HatchHorizontal, fg, bg)
	for x := 0; x < TileSize; x++ {
		if tile.At(x, 0) != fg {
			t.Fatalf("row 0 col %d should be fg", x)
		}
		if tile.At(x, 4) != bg {
			t.Fatalf("row 4 col %d should be bg", x)
		}
	}
}

func TestHatchDiagCross(t *testing.T) {
	tile := HatchTile(HatchDiagCross, fg, bg)
	for i := 0; i < TileSize; i++ {
		if tile.At(i, i) != fg {
			t.Fatalf("main diagonal broken at %d", i)
		}
		if tile.At(i, TileSize-1-i) != fg {
			t.Fatalf("cross diagonal broken at %d", i)
		}
	}
	if tile.At(1, 4) != bg {
		t.Fatal("off-diagonal cell should be bg")
	}
}

func TestPatternTileBitOrder(t *testing.T) {
	var rows [TileSize]uint8
	rows[0] = 0x80 // leftmost pixel of the first row
	rows[7] = 0x01 // rightmost pixel of the last row
	tile := PatternTile(rows, fg, bg)

	if tile.At(0, 0) != fg {
		t.Fatal("msb should map to x=0")
	}
	if tile.At(7, 7) != fg {
		t.Fatal("lsb should map to x=7")
	}
	if tile.At(1, 0) != bg || tile.At(6, 7) != bg {
		t.Fatal("unset bits should be bg")
	}
}

func TestTileRGBACopy(t *testing.T) {
	tile := HatchTile(HatchVertical, fg, bg)
	img := tile.RGBA()
	img.Pix[0] = 7
	if tile.Pixels[0] == 7 {
		t.Fatal("RGBA should copy, not alias")
	}
}
