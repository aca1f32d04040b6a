package platform

import (
	"sync/atomic"
	"unicode/utf16"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"easel/internal/vkmap"
	"easel/pkg/easel/event"
)

// key auto-repeat in ticks at 60 TPS: 500ms delay, then 50ms interval
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// double clicks must land within this many ticks and pixels of the
// previous click to synthesize a *DblClk message
const (
	dblClkTicks = 30
	dblClkSlop  = 4
)

// EngineDisplay drives a real engine window. It implements the engine's
// game callbacks: Update pumps raw input records into the handler and
// Draw presents the handler's committed scene.
type EngineDisplay struct {
	cfg     Config
	handler Handler
	stopped atomic.Bool

	tick      int64
	haveMouse bool
	lastX     int
	lastY     int
	lastW     int
	lastH     int
	lastWinX  int
	lastWinY  int
	focused   bool
	clicks    [3]clickMark

	keyBuf  []ebiten.Key
	runeBuf []rune
}

type clickMark struct {
	tick int64
	x    int
	y    int
}

func NewEngineDisplay(cfg Config) *EngineDisplay {
	return &EngineDisplay{cfg: cfg, lastW: cfg.WidthPx, lastH: cfg.HeightPx}
}

func (d *EngineDisplay) Size() (int, int) {
	return d.cfg.WidthPx, d.cfg.HeightPx
}

func (d *EngineDisplay) Drive(h Handler) error {
	d.handler = h
	ebiten.SetWindowTitle(d.cfg.Title)
	ebiten.SetWindowSize(d.cfg.WidthPx, d.cfg.HeightPx)
	if d.cfg.NoClose {
		ebiten.SetWindowClosingHandled(true)
	}
	return ebiten.RunGame(d)
}

func (d *EngineDisplay) Stop() {
	d.stopped.Store(true)
}

// Release is part of the Display contract. The engine window is torn down
// when Drive returns, so there is no separate native handle to free here.
func (d *EngineDisplay) Release() {}

func (d *EngineDisplay) Update() error {
	if d.stopped.Load() || d.handler.Done() {
		return ebiten.Termination
	}
	d.tick++
	d.pumpKeys()
	d.pumpChars()
	d.pumpMouse()
	d.pumpWindow()
	d.handler.Tick()
	return nil
}

func (d *EngineDisplay) Draw(screen *ebiten.Image) {
	if scene := d.handler.Scene(); scene != nil {
		screen.DrawImage(scene, nil)
	}
}

func (d *EngineDisplay) Layout(_, _ int) (int, int) {
	return d.cfg.WidthPx, d.cfg.HeightPx
}

func (d *EngineDisplay) pumpKeys() {
	d.keyBuf = inpututil.AppendJustPressedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		d.pushKey(k, event.KindKeyDown, false)
	}

	d.keyBuf = inpututil.AppendPressedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		dur := inpututil.KeyPressDuration(k)
		if dur > repeatDelay && (dur-repeatDelay)%repeatInterval == 0 {
			d.pushKey(k, event.KindKeyDown, true)
		}
	}

	d.keyBuf = inpututil.AppendJustReleasedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		d.pushKey(k, event.KindKeyUp, true)
	}
}

func (d *EngineDisplay) pushKey(k ebiten.Key, kind event.Kind, prevDown bool) {
	code, ok := vkmap.Code(k)
	if !ok {
		return
	}
	d.handler.Push(event.Raw{
		Msg:      uint32(kind),
		VKCode:   code,
		Scan:     code,
		Extended: vkmap.Extended(k),
		PrevDown: prevDown,
	})
}

func (d *EngineDisplay) pumpChars() {
	d.runeBuf = ebiten.AppendInputChars(d.runeBuf[:0])
	for _, r := range d.runeBuf {
		for _, unit := range utf16.Encode([]rune{r}) {
			d.handler.Push(event.Raw{Msg: uint32(event.KindChar), Code: unit})
		}
	}
}

var mouseButtons = [3]struct {
	button ebiten.MouseButton
	down   event.Kind
	up     event.Kind
	dbl    event.Kind
}{
	{ebiten.MouseButtonLeft, event.KindLButtonDown, event.KindLButtonUp, event.KindLButtonDblClk},
	{ebiten.MouseButtonRight, event.KindRButtonDown, event.KindRButtonUp, event.KindRButtonDblClk},
	{ebiten.MouseButtonMiddle, event.KindMButtonDown, event.KindMButtonUp, event.KindMButtonDblClk},
}

func (d *EngineDisplay) pumpMouse() {
	x, y := ebiten.CursorPosition()
	state := d.mouseState(x, y)

	if !d.haveMouse || x != d.lastX || y != d.lastY {
		d.haveMouse = true
		d.lastX, d.lastY = x, y
		r := state
		r.Msg = uint32(event.KindMouseMove)
		d.handler.Push(r)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		r := state
		r.Msg = uint32(event.KindMouseWheel)
		r.Wheel = int16(wy * 120)
		d.handler.Push(r)
	}

	for i, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			kind := b.down
			mark := &d.clicks[i]
			if d.cfg.DoubleClicks && mark.tick > 0 &&
				d.tick-mark.tick <= dblClkTicks &&
				abs(x-mark.x) <= dblClkSlop && abs(y-mark.y) <= dblClkSlop {
				kind = b.dbl
				mark.tick = 0
			} else {
				*mark = clickMark{tick: d.tick, x: x, y: y}
			}
			r := state
			r.Msg = uint32(kind)
			d.handler.Push(r)
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			r := state
			r.Msg = uint32(b.up)
			d.handler.Push(r)
		}
	}
}

func (d *EngineDisplay) mouseState(x, y int) event.Raw {
	return event.Raw{
		Ctrl:   ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift:  ebiten.IsKeyPressed(ebiten.KeyShift),
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		X:      clampU16(x),
		Y:      clampU16(y),
	}
}

func (d *EngineDisplay) pumpWindow() {
	if w, h := ebiten.WindowSize(); w != d.lastW || h != d.lastH {
		d.lastW, d.lastH = w, h
		d.handler.Push(event.Raw{
			Msg:    uint32(event.KindSize),
			LParam: int64(h)<<16 | int64(uint16(w)),
		})
	}
	if x, y := ebiten.WindowPosition(); x != d.lastWinX || y != d.lastWinY {
		d.lastWinX, d.lastWinY = x, y
		d.handler.Push(event.Raw{
			Msg:    uint32(event.KindMove),
			LParam: int64(y)<<16 | int64(uint16(x)),
		})
	}
	if focused := ebiten.IsFocused(); focused != d.focused {
		d.focused = focused
		var active uintptr
		if focused {
			active = 1
		}
		d.handler.Push(event.Raw{Msg: uint32(event.KindActivate), WParam: active})
	}
}

func clampU16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
