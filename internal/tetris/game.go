// Package tetris holds the game rules for the falling-blocks example,
// kept free of any drawing so the rules are testable on their own.
package tetris

import (
	"math/rand"
	"time"

	"easel/pkg/easel"
)

const (
	GridWidth  = 10
	GridHeight = 20
	BlockSize  = 25
)

// Shape is one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ

	shapeCount
)

var shapeCells = [shapeCount][4][4]bool{
	ShapeI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	ShapeO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	ShapeT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	ShapeL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	ShapeJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	ShapeS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	ShapeZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
}

var shapeColors = [shapeCount]easel.Color{
	ShapeI: easel.Cyan,
	ShapeO: easel.Yellow,
	ShapeT: easel.Magenta,
	ShapeL: easel.RGB(255, 165, 0), // orange
	ShapeJ: easel.Blue,
	ShapeS: easel.Green,
	ShapeZ: easel.Red,
}

func (s Shape) Color() easel.Color {
	return shapeColors[s]
}

// Blocks lists the grid-relative cells the shape occupies at the given
// rotation.
func (s Shape) Blocks(rotation int) [][2]int {
	var out [][2]int
	cells := &shapeCells[s]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if cells[y][x] {
				rx, ry := rotate(x, y, rotation)
				out = append(out, [2]int{rx, ry})
			}
		}
	}
	return out
}

// rotate maps a cell of the unrotated 4x4 shape box through quarter-turn
// rotations.
func rotate(x, y, rotation int) (int, int) {
	switch rotation % 4 {
	case 1:
		return 3 - y, x
	case 2:
		return 3 - x, 3 - y
	case 3:
		return y, 3 - x
	}
	return x, y
}

// Piece is the falling tetromino.
type Piece struct {
	Shape    Shape
	X, Y     int
	Rotation int
}

// Blocks lists the absolute grid cells the piece occupies.
func (p Piece) Blocks() [][2]int {
	blocks := p.Shape.Blocks(p.Rotation)
	for i := range blocks {
		blocks[i][0] += p.X
		blocks[i][1] += p.Y
	}
	return blocks
}

// Cell is one landed grid cell.
type Cell struct {
	Color  easel.Color
	Filled bool
}

// Game is the full rules state.
type Game struct {
	Grid    [GridHeight][GridWidth]Cell
	Current Piece
	Next    Shape
	Score   int
	Over    bool

	lastDrop  time.Time
	dropEvery time.Duration
	rng       *rand.Rand
	now       func() time.Time
}

func New() *Game {
	return newGame(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func newGame(rng *rand.Rand, now func() time.Time) *Game {
	g := &Game{
		Next:      Shape(rng.Intn(int(shapeCount))),
		dropEvery: time.Second,
		rng:       rng,
		now:       now,
	}
	g.lastDrop = now()
	g.Current = Piece{Shape: Shape(rng.Intn(int(shapeCount))), X: GridWidth/2 - 2}
	return g
}

// collides reports whether the piece overlaps a wall, the floor or a
// landed cell. Cells above the top edge are allowed.
func (g *Game) collides(p Piece) bool {
	for _, b := range p.Blocks() {
		x, y := b[0], b[1]
		if x < 0 || x >= GridWidth || y >= GridHeight {
			return true
		}
		if y >= 0 && g.Grid[y][x].Filled {
			return true
		}
	}
	return false
}

func (g *Game) tryMove(dx, dy int) bool {
	moved := g.Current
	moved.X += dx
	moved.Y += dy
	if g.collides(moved) {
		return false
	}
	g.Current = moved
	return true
}

func (g *Game) MoveLeft() bool  { return !g.Over && g.tryMove(-1, 0) }
func (g *Game) MoveRight() bool { return !g.Over && g.tryMove(1, 0) }
func (g *Game) MoveDown() bool  { return !g.Over && g.tryMove(0, 1) }

// Rotate turns the piece a quarter turn, clockwise for positive steps.
// When the rotated pose collides it is nudged sideways up to three cells
// in either direction before giving up.
func (g *Game) Rotate(clockwise bool) bool {
	if g.Over {
		return false
	}
	turned := g.Current
	if clockwise {
		turned.Rotation = (turned.Rotation + 1) % 4
	} else {
		turned.Rotation = (turned.Rotation + 3) % 4
	}
	baseX := turned.X
	for adjust := 0; adjust < 4; adjust++ {
		turned.X = baseX + adjust
		if !g.collides(turned) {
			g.Current = turned
			return true
		}
		turned.X = baseX - adjust
		if !g.collides(turned) {
			g.Current = turned
			return true
		}
	}
	return false
}

// HardDrop slams the piece to the bottom. It locks on the next Step.
func (g *Game) HardDrop() {
	if g.Over {
		return
	}
	for g.tryMove(0, 1) {
	}
}

// Step advances the timed drop. When the piece can no longer fall it is
// locked, full lines are cleared and the next piece spawns; a spawn with
// no room ends the game.
func (g *Game) Step() {
	if g.Over {
		return
	}
	now := g.now()
	if now.Sub(g.lastDrop) <= g.dropEvery {
		return
	}
	if !g.tryMove(0, 1) {
		g.lock()
		g.clearLines()
		g.spawn()
	}
	g.lastDrop = now
}

func (g *Game) lock() {
	c := g.Current.Shape.Color()
	for _, b := range g.Current.Blocks() {
		x, y := b[0], b[1]
		if x >= 0 && x < GridWidth && y >= 0 && y < GridHeight {
			g.Grid[y][x] = Cell{Color: c, Filled: true}
		}
	}
}

func (g *Game) clearLines() {
	cleared := 0
	var next [GridHeight][GridWidth]Cell
	writeY := GridHeight - 1
	for y := GridHeight - 1; y >= 0; y-- {
		full := true
		for x := 0; x < GridWidth; x++ {
			if !g.Grid[y][x].Filled {
				full = false
				break
			}
		}
		if full {
			cleared++
			continue
		}
		next[writeY] = g.Grid[y]
		writeY--
	}
	g.Grid = next
	g.Score += cleared * 100

	if cleared > 0 {
		g.dropEvery -= 50 * time.Millisecond
		if g.dropEvery < 100*time.Millisecond {
			g.dropEvery = 100 * time.Millisecond
		}
	}
}

func (g *Game) spawn() {
	g.Current = Piece{Shape: g.Next, X: GridWidth/2 - 2}
	g.Next = Shape(g.rng.Intn(int(shapeCount)))
	if g.collides(g.Current) {
		g.Over = true
	}
}
