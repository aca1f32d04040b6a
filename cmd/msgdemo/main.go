// Command msgdemo echoes every input message a window receives: pointer
// position and buttons, key transitions, translated characters and window
// notifications. Escape quits, F2 saves a screenshot through a native save
// dialog, and typing c copies the status line to the system clipboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf16"

	"github.com/atotto/clipboard"
	"github.com/sqweek/dialog"

	"easel/pkg/easel"
	"easel/pkg/easel/event"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func main() {
	if err := easel.RunFlags(windowWidth, windowHeight, easel.NoClose|easel.DoubleClicks, demo); err != nil {
		fmt.Fprintf(os.Stderr, "msgdemo: %v\n", err)
		os.Exit(1)
	}
}

// state is everything the demo has learned from the queue so far.
type state struct {
	mouse  event.Mouse
	key    string
	chars  []rune
	wheel  int
	window string
	note   string
}

func demo(w *easel.Window) error {
	var st state
	st.note = "move the mouse, press keys, type"

	w.BeginBatch()
	defer w.EndBatch()

	for w.Alive() {
		w.ClearDevice()

		// peek first: the same message must come back from the consuming
		// drain below
		peeked, ok, err := w.Poll(event.FilterAll, false)
		if err != nil {
			return err
		}
		if ok {
			st.note = "pending: " + peeked.Kind.String()
		}

		quit, err := drain(w.Events(), w, &st)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		draw(w, &st)
		if err := w.FlushBatch(); err != nil {
			return err
		}
	}
	return nil
}

// drain consumes every pending message and folds it into st. A failure
// from the queue is fatal and propagates out, so the process exits with an
// error instead of dropping input on the floor.
func drain(q *event.Queue, w *easel.Window, st *state) (bool, error) {
	for {
		m, ok, err := q.Poll(event.FilterAll, true)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if st.apply(w, m) {
			return true, nil
		}
	}
}

// apply folds one message into the demo state. It reports whether the
// demo should exit.
func (st *state) apply(w *easel.Window, m event.Message) bool {
	switch m.Kind {
	case event.KindMouseMove, event.KindMouseWheel,
		event.KindLButtonDown, event.KindLButtonUp, event.KindLButtonDblClk,
		event.KindRButtonDown, event.KindRButtonUp, event.KindRButtonDblClk,
		event.KindMButtonDown, event.KindMButtonUp, event.KindMButtonDblClk:
		mouse, _ := m.Mouse()
		st.mouse = mouse
		st.wheel += int(mouse.Wheel)
		if m.Kind != event.KindMouseMove {
			st.note = m.Kind.String()
		}

	case event.KindKeyDown, event.KindKeyUp:
		kb, _ := m.Keyboard()
		st.key = fmt.Sprintf("%s %s (scan %#02x, repeat %v)",
			kb.Key, m.Kind, kb.Scan, kb.PrevDown)
		if m.Kind == event.KindKeyUp {
			switch kb.Key {
			case event.KeyEscape:
				// a release always follows a press, so PrevDown filters out
				// the stray release of an Escape pressed before the window
				// had focus
				if kb.PrevDown {
					return true
				}
			case event.KeyF2:
				st.screenshot(w)
			}
		}

	case event.KindChar:
		ch, _ := m.Char()
		r := utf16.Decode([]uint16{ch.Code})
		if len(r) == 1 {
			st.chars = append(st.chars, r[0])
			if len(st.chars) > 40 {
				st.chars = st.chars[1:]
			}
			if r[0] == 'c' {
				st.copyStatus()
			}
		}

	case event.KindActivate, event.KindMove, event.KindSize:
		win, _ := m.Window()
		st.window = fmt.Sprintf("%s wparam=%d lparam=%d", m.Kind, win.WParam, win.LParam)
	}
	return false
}

func (st *state) status() string {
	return fmt.Sprintf("mouse (%d,%d) wheel %d | %s", st.mouse.X, st.mouse.Y, st.wheel, st.key)
}

func (st *state) copyStatus() {
	if err := clipboard.WriteAll(st.status()); err != nil {
		st.note = "clipboard: " + err.Error()
		return
	}
	st.note = "status copied to clipboard"
}

func (st *state) screenshot(w *easel.Window) {
	im := w.Capture(0, 0, w.Width(), w.Height())
	path, err := dialog.File().Filter("PNG image", "png").Title("Save screenshot").Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			st.note = "save dialog: " + err.Error()
		}
		return
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	if err := im.Save(path); err != nil {
		st.note = err.Error()
		return
	}
	st.note = "saved " + filepath.Base(path)
}

func draw(w *easel.Window, st *state) {
	w.SetTextColor(easel.White)
	w.SetBkMode(easel.Transparent)

	w.SetTextHeight(20, 0, "")
	w.OutText(20, 20, "easel message demo - Esc quits, F2 screenshot, c copies status")

	w.SetLineColor(easel.DarkGray)
	w.Rectangle(20, 60, windowWidth-20, 100)
	w.SetTextHeight(16, 0, "")
	w.OutText(30, 70, fmt.Sprintf("mouse: (%d, %d)  left=%v right=%v middle=%v ctrl=%v shift=%v  wheel=%d",
		st.mouse.X, st.mouse.Y, st.mouse.Left, st.mouse.Right, st.mouse.Middle,
		st.mouse.Ctrl, st.mouse.Shift, st.wheel))

	w.Rectangle(20, 120, windowWidth-20, 160)
	w.OutText(30, 130, "key: "+st.key)

	w.Rectangle(20, 180, windowWidth-20, 220)
	w.OutText(30, 190, "typed: "+string(st.chars))

	w.Rectangle(20, 240, windowWidth-20, 280)
	w.OutText(30, 250, "window: "+st.window)

	w.SetTextColor(easel.Yellow)
	w.OutText(20, 310, st.note)

	// follow the pointer with a small marker
	w.SetFillColor(easel.LightGreen)
	w.SolidCircle(int(st.mouse.X), int(st.mouse.Y), 4)
}
