// Package easel is an immediate-mode 2D drawing and input surface in the
// spirit of the classic teaching graphics libraries: one window, ambient
// style state, batched double-buffered frames, and a polled message queue.
// The render engine underneath is treated as an opaque collaborator; this
// package owns the message model and the run boundary.
package easel

import (
	"errors"
	"fmt"

	"easel/internal/platform"
	"easel/pkg/easel/event"
)

// InitFlag tunes window creation. Flags combine with bitwise or.
type InitFlag uint32

const (
	// ShowConsole keeps the process console visible where the host has one.
	ShowConsole InitFlag = 1 << 0
	// NoClose disables the window close button.
	NoClose InitFlag = 1 << 1
	// NoMinimize disables the minimize button where the host can express it.
	NoMinimize InitFlag = 1 << 2
	// DoubleClicks enables synthesis of double-click messages.
	DoubleClicks InitFlag = 1 << 3
)

// Run opens a width x height window and executes fn on its own goroutine
// while the display drives frames. It returns when fn returns or the
// window is closed. A panic inside fn is converted into an error; on every
// exit path the display is released exactly once.
func Run(width, height int, fn func(*Window) error) error {
	return RunFlags(width, height, 0, fn)
}

// RunFlags is Run with window creation flags.
func RunFlags(width, height int, flags InitFlag, fn func(*Window) error) error {
	cfg := platform.Config{
		Title:        "easel",
		WidthPx:      width,
		HeightPx:     height,
		ShowConsole:  flags&ShowConsole != 0,
		NoClose:      flags&NoClose != 0,
		NoMinimize:   flags&NoMinimize != 0,
		DoubleClicks: flags&DoubleClicks != 0,
	}
	return runOn(platform.NewEngineDisplay(cfg), cfg, fn)
}

func runOn(d platform.Display, cfg platform.Config, fn func(*Window) error) error {
	w := newWindow(d, cfg)
	s := &session{win: w}

	errc := make(chan error, 1)
	go func() {
		err := runGuarded(func() error { return fn(w) })
		w.finish()
		d.Stop()
		errc <- err
	}()

	driveErr := d.Drive(s)
	w.shutdown()
	d.Release()

	err := <-errc
	if errors.Is(err, event.ErrClosed) {
		// the window went away while fn was blocked on the queue; that is
		// an ordinary exit, not a failure
		err = nil
	}
	if err != nil {
		return err
	}
	return driveErr
}

// runGuarded traps any fault from the application flow and re-surfaces it
// as an ordinary error, so the caller's teardown always runs.
func runGuarded(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("easel: application panic: %v", r)
		}
	}()
	return fn()
}
