package easel

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"easel/internal/platform"
	"easel/pkg/easel/event"
)

// Window is one open render surface plus its input queue and ambient
// style state. All drawing and polling happens from the application's
// single control flow; the display backend touches the window only
// through the session adapter.
type Window struct {
	display platform.Display
	queue   *event.Queue
	width   int
	height  int

	mu       sync.Mutex
	tickCond *sync.Cond
	tick     uint64
	closed   bool
	done     chan struct{}
	doneOnce sync.Once

	canvas   *ebiten.Image // committed scene the display presents
	batch    *ebiten.Image // back buffer while a batch scope is open
	batching bool

	lineColor Color
	fillColor Color
	textColor Color
	bkColor   Color
	lineStyle LineStyle
	fillStyle FillStyle
	textStyle TextStyle
	bkMode    BkMode

	fonts *fontBank

	lastFillKey fillTexKey
	lastFillTex *ebiten.Image
}

// fillTexKey identifies one memoized fill cell.
type fillTexKey struct {
	kind    FillKind
	hatch   Hatch
	pattern [8]uint8
	fg      Color
	bg      Color
}

func newWindow(d platform.Display, cfg platform.Config) *Window {
	w := &Window{
		display:   d,
		queue:     event.NewQueue(),
		width:     cfg.WidthPx,
		height:    cfg.HeightPx,
		done:      make(chan struct{}),
		lineColor: White,
		fillColor: White,
		textColor: White,
		bkColor:   Black,
		lineStyle: SolidLine(1),
		fillStyle: SolidFill(),
		textStyle: TextStyle{Height: 16},
		fonts:     newFontBank(),
	}
	w.tickCond = sync.NewCond(&w.mu)
	return w
}

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

// Events exposes the window's message queue for use with event.Loop.
func (w *Window) Events() *event.Queue { return w.queue }

// Poll fetches the next queued message matching the filter without
// blocking. With consume false the message stays queued.
func (w *Window) Poll(f event.Filter, consume bool) (event.Message, bool, error) {
	return w.queue.Poll(f, consume)
}

// Wait blocks the application flow until a matching message arrives. It
// fails with event.ErrClosed once the window is gone.
func (w *Window) Wait(f event.Filter) (event.Message, error) {
	return w.queue.Wait(f)
}

// FlushMessages discards all queued messages matching the filter.
func (w *Window) FlushMessages(f event.Filter) {
	w.queue.Flush(f)
}

// Alive reports whether the display is still driving frames. Frame loops
// should use it as their continue predicate so a closed window ends them.
func (w *Window) Alive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.closed
}

// ambient style state

func (w *Window) LineColor() Color          { return w.lineColor }
func (w *Window) SetLineColor(c Color)      { w.lineColor = c }
func (w *Window) FillColor() Color          { return w.fillColor }
func (w *Window) SetFillColor(c Color)      { w.fillColor = c }
func (w *Window) TextColor() Color          { return w.textColor }
func (w *Window) SetTextColor(c Color)      { w.textColor = c }
func (w *Window) BkColor() Color            { return w.bkColor }
func (w *Window) SetBkColor(c Color)        { w.bkColor = c }
func (w *Window) LineStyle() LineStyle      { return w.lineStyle }
func (w *Window) SetLineStyle(s LineStyle)  { w.lineStyle = s }
func (w *Window) FillStyle() FillStyle      { return w.fillStyle }
func (w *Window) SetFillStyle(s FillStyle)  { w.fillStyle = s }
func (w *Window) TextStyle() TextStyle      { return w.textStyle }
func (w *Window) SetTextStyle(s TextStyle)  { w.textStyle = s }
func (w *Window) BkMode() BkMode            { return w.bkMode }
func (w *Window) SetBkMode(m BkMode)        { w.bkMode = m }

// SetTextHeight sets the font height and face name, keeping the other
// text attributes.
func (w *Window) SetTextHeight(height, width int, face string) {
	w.textStyle.Height = height
	w.textStyle.Width = width
	w.textStyle.Face = face
}

// batched drawing

// BeginBatch opens a batch scope: subsequent draw calls land on a back
// buffer and stay invisible until FlushBatch or EndBatch.
func (w *Window) BeginBatch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.batching {
		return
	}
	w.ensureSurfacesLocked()
	w.batch.DrawImage(w.canvas, nil)
	w.batching = true
}

// FlushBatch commits the back buffer to the presented scene and paces the
// application flow to the next display frame. It fails with
// event.ErrClosed once the window is gone.
func (w *Window) FlushBatch() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return event.ErrClosed
	}
	if w.batching && w.batch != nil {
		w.canvas.DrawImage(w.batch, nil)
	}
	tick := w.tick
	for w.tick == tick && !w.closed {
		w.tickCond.Wait()
	}
	w.mu.Unlock()
	return nil
}

// EndBatch commits once more and closes the batch scope.
func (w *Window) EndBatch() error {
	err := w.FlushBatch()
	w.mu.Lock()
	w.batching = false
	w.mu.Unlock()
	return err
}

// target returns the image draw calls should land on, allocating surfaces
// on first use.
func (w *Window) target() *ebiten.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ensureSurfacesLocked()
	if w.batching {
		return w.batch
	}
	return w.canvas
}

func (w *Window) ensureSurfacesLocked() {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.width, w.height)
		w.canvas.Fill(w.bkColor.rgba())
		w.batch = ebiten.NewImage(w.width, w.height)
	}
}

// session plumbing

func (w *Window) scene() *ebiten.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canvas
}

func (w *Window) advanceTick() {
	w.mu.Lock()
	w.tick++
	w.tickCond.Broadcast()
	w.mu.Unlock()
}

// finish marks the application flow complete.
func (w *Window) finish() {
	w.doneOnce.Do(func() { close(w.done) })
}

func (w *Window) finished() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// shutdown wakes everything still blocked on the window after the display
// stops driving.
func (w *Window) shutdown() {
	w.mu.Lock()
	w.closed = true
	w.tickCond.Broadcast()
	w.mu.Unlock()
	w.queue.Close()
}
