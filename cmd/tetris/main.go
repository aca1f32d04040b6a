// Command tetris is a falling-blocks game built on the easel frame loop:
// keyboard input drained once per frame, a timed drop, batched rendering.
package main

import (
	"fmt"
	"os"

	"easel/internal/tetris"
	"easel/pkg/easel"
	"easel/pkg/easel/event"
)

const (
	windowWidth  = 800
	windowHeight = 600

	fieldWidth  = tetris.GridWidth * tetris.BlockSize
	fieldHeight = tetris.GridHeight * tetris.BlockSize

	panelLeft   = fieldWidth + 50
	previewTop  = 50
	previewSize = 4 * tetris.BlockSize
	scoreTop    = 200
)

func main() {
	if err := easel.Run(windowWidth, windowHeight, play); err != nil {
		fmt.Fprintf(os.Stderr, "tetris: %v\n", err)
		os.Exit(1)
	}
}

func play(w *easel.Window) error {
	g := tetris.New()

	w.BeginBatch()
	defer w.EndBatch()

	loop := &event.Loop{
		Queue:    w.Events(),
		Filter:   event.FilterKey,
		Continue: w.Alive,
		Clear:    w.ClearDevice,
		Step:     g.Step,
		Render:   func() { render(w, g) },
		Present:  w.FlushBatch,
	}
	loop.Handle = func(m event.Message) { handleKey(loop, g, m) }
	return loop.Run()
}

func handleKey(loop *event.Loop, g *tetris.Game, m event.Message) {
	if m.Kind != event.KindKeyDown {
		return
	}
	kb, ok := m.Keyboard()
	if !ok {
		return
	}
	switch kb.Key {
	case event.KeyEscape:
		loop.Stop()
	case event.KeyLeft:
		g.MoveLeft()
	case event.KeyRight:
		g.MoveRight()
	case event.KeyDown:
		g.MoveDown()
	case event.KeyUp:
		g.Rotate(true)
	case event.KeySpace:
		g.HardDrop()
	}
}

func render(w *easel.Window, g *tetris.Game) {
	drawField(w, g)
	drawPreview(w, g)

	w.SetTextColor(easel.White)
	w.SetTextHeight(24, 0, "")
	w.OutText(panelLeft, scoreTop, fmt.Sprintf("Score: %d", g.Score))

	if g.Over {
		drawGameOver(w)
	}
}

func drawField(w *easel.Window, g *tetris.Game) {
	w.SetLineColor(easel.DarkGray)
	w.Rectangle(0, 0, fieldWidth, fieldHeight)

	for y := 0; y < tetris.GridHeight; y++ {
		for x := 0; x < tetris.GridWidth; x++ {
			if g.Grid[y][x].Filled {
				drawBlock(w, x, y, g.Grid[y][x].Color)
			}
		}
	}
	if !g.Over {
		c := g.Current.Shape.Color()
		for _, b := range g.Current.Blocks() {
			if b[1] >= 0 {
				drawBlock(w, b[0], b[1], c)
			}
		}
	}
}

func drawBlock(w *easel.Window, x, y int, c easel.Color) {
	left := x * tetris.BlockSize
	top := y * tetris.BlockSize
	w.SetFillColor(c)
	w.SetLineColor(easel.Black)
	w.FillRectangle(left, top, left+tetris.BlockSize, top+tetris.BlockSize)
}

func drawPreview(w *easel.Window, g *tetris.Game) {
	w.SetTextColor(easel.White)
	w.SetTextHeight(16, 0, "")
	w.OutText(panelLeft, previewTop-25, "Next")

	w.SetLineColor(easel.LightGray)
	w.Rectangle(panelLeft, previewTop, panelLeft+previewSize, previewTop+previewSize)

	c := g.Next.Color()
	w.SetFillColor(c)
	w.SetLineColor(easel.Black)
	for _, b := range g.Next.Blocks(0) {
		left := panelLeft + b[0]*tetris.BlockSize
		top := previewTop + b[1]*tetris.BlockSize
		w.FillRectangle(left, top, left+tetris.BlockSize, top+tetris.BlockSize)
	}
}

func drawGameOver(w *easel.Window) {
	const boxW, boxH = 180, 60
	left := (fieldWidth - boxW) / 2
	top := (fieldHeight - boxH) / 2

	w.SetFillColor(easel.Red)
	w.SolidRectangle(left, top, left+boxW, top+boxH)

	w.SetTextColor(easel.White)
	w.SetTextHeight(24, 0, "")
	w.SetBkMode(easel.Transparent)
	w.DrawText("GAME OVER", easel.Rect{Left: left, Top: top, Right: left + boxW, Bottom: top + boxH},
		easel.FormatCenter|easel.FormatVCenter|easel.FormatSingleLine)
}
