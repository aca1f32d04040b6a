// Package platform is the seam between the window layer and whatever
// actually owns the native surface. The real backend drives an engine
// window; the headless backend drives frames from a timer so the run
// boundary and input plumbing are testable without a display.
package platform

import (
	"github.com/hajimehoshi/ebiten/v2"

	"easel/pkg/easel/event"
)

type Config struct {
	Title    string
	WidthPx  int
	HeightPx int

	ShowConsole  bool
	NoClose      bool
	NoMinimize   bool
	DoubleClicks bool
}

// Handler is what the window layer hands a display to drive. All methods
// are called from the display's goroutine.
type Handler interface {
	// Push delivers one raw input record.
	Push(event.Raw)
	// Tick marks the end of one display frame. The window layer uses it to
	// release batch flushes waiting for presentation.
	Tick()
	// Scene returns the committed frame to present, or nil before the
	// first commit.
	Scene() *ebiten.Image
	// Done reports that the application flow has finished and the display
	// should stop driving.
	Done() bool
}

// Display is one native render surface plus its input source.
type Display interface {
	Size() (int, int)
	// Drive blocks, running the handler until Stop is called, Done reports
	// true, or the surface fails.
	Drive(Handler) error
	// Stop asks a blocked Drive to return. Safe to call from any
	// goroutine, before or during Drive.
	Stop()
	// Release destroys the surface. The caller guarantees exactly one
	// call, on every exit path.
	Release()
}
