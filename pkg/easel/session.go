package easel

import (
	"github.com/hajimehoshi/ebiten/v2"

	"easel/pkg/easel/event"
)

// session adapts a Window to the display handler contract. It is the only
// path the display goroutine uses into the window.
type session struct {
	win *Window
}

func (s *session) Push(r event.Raw) {
	s.win.queue.Push(r)
}

func (s *session) Tick() {
	s.win.advanceTick()
}

func (s *session) Scene() *ebiten.Image {
	return s.win.scene()
}

func (s *session) Done() bool {
	return s.win.finished()
}
