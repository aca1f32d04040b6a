// Package event implements the input message model shared by every easel
// window: raw records pushed by the display backend, a classifier that decodes
// them into typed messages, a filtered FIFO queue with peek and blocking
// fetch, and a cooperative frame loop that drains the queue once per frame.
package event

// Kind identifies which native message produced a Message. The numeric
// values are the Win32 WM_* codes so records coming off a real window
// procedure classify without translation.
type Kind uint32

const (
	KindMove     Kind = 0x0003
	KindSize     Kind = 0x0005
	KindActivate Kind = 0x0006

	KindKeyDown Kind = 0x0100
	KindKeyUp   Kind = 0x0101
	KindChar    Kind = 0x0102

	KindMouseMove     Kind = 0x0200
	KindLButtonDown   Kind = 0x0201
	KindLButtonUp     Kind = 0x0202
	KindLButtonDblClk Kind = 0x0203
	KindRButtonDown   Kind = 0x0204
	KindRButtonUp     Kind = 0x0205
	KindRButtonDblClk Kind = 0x0206
	KindMButtonDown   Kind = 0x0207
	KindMButtonUp     Kind = 0x0208
	KindMButtonDblClk Kind = 0x0209
	KindMouseWheel    Kind = 0x020A
)

// Filter selects which message categories Poll, Wait and Flush surface.
// Bits may be combined; FilterAll is the union of every category.
type Filter uint8

const (
	FilterMouse  Filter = 1 << 0
	FilterKey    Filter = 1 << 1
	FilterChar   Filter = 1 << 2
	FilterWindow Filter = 1 << 3

	FilterAll = FilterMouse | FilterKey | FilterChar | FilterWindow
)

// Category reports the filter bit a kind belongs to, or zero for a kind
// outside the known set.
func (k Kind) Category() Filter {
	switch k {
	case KindMouseMove, KindMouseWheel,
		KindLButtonDown, KindLButtonUp, KindLButtonDblClk,
		KindRButtonDown, KindRButtonUp, KindRButtonDblClk,
		KindMButtonDown, KindMButtonUp, KindMButtonDblClk:
		return FilterMouse
	case KindKeyDown, KindKeyUp:
		return FilterKey
	case KindChar:
		return FilterChar
	case KindActivate, KindMove, KindSize:
		return FilterWindow
	}
	return 0
}

// Matches reports whether the filter admits messages of the given kind.
// Kinds outside the known set match no filter.
func (f Filter) Matches(k Kind) bool {
	return f&k.Category() != 0
}

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "Move"
	case KindSize:
		return "Size"
	case KindActivate:
		return "Activate"
	case KindKeyDown:
		return "KeyDown"
	case KindKeyUp:
		return "KeyUp"
	case KindChar:
		return "Char"
	case KindMouseMove:
		return "MouseMove"
	case KindMouseWheel:
		return "MouseWheel"
	case KindLButtonDown:
		return "LButtonDown"
	case KindLButtonUp:
		return "LButtonUp"
	case KindLButtonDblClk:
		return "LButtonDblClk"
	case KindRButtonDown:
		return "RButtonDown"
	case KindRButtonUp:
		return "RButtonUp"
	case KindRButtonDblClk:
		return "RButtonDblClk"
	case KindMButtonDown:
		return "MButtonDown"
	case KindMButtonUp:
		return "MButtonUp"
	case KindMButtonDblClk:
		return "MButtonDblClk"
	}
	return "Unknown"
}

// Message is one classified input event. Kind tags which native message
// produced it and selects the concrete type of Body: mouse kinds carry a
// Mouse, key kinds a Keyboard, KindChar a Char and window kinds a Window.
// Messages are plain values, built once by Classify and never mutated.
type Message struct {
	Kind Kind
	Body Body
}

// Body is the payload of a Message. The four implementations form a closed
// set; callers type-switch on it or use the Message accessors.
type Body interface {
	body()
}

// Mouse carries pointer state at the time of a mouse message.
type Mouse struct {
	Ctrl   bool
	Shift  bool
	Left   bool
	Middle bool
	Right  bool
	X      uint16
	Y      uint16
	Wheel  int16
}

// Keyboard carries a key transition. PrevDown reports whether the key was
// already down before this message, which distinguishes auto-repeat on
// KindKeyDown and is always true on KindKeyUp.
type Keyboard struct {
	Key      KeyCode
	Scan     uint8
	Extended bool
	PrevDown bool
}

// Char carries one UTF-16 code unit of translated character input.
type Char struct {
	Code uint16
}

// Window carries the two native parameters of a window message, passed
// through uninterpreted.
type Window struct {
	WParam uintptr
	LParam int64
}

func (Mouse) body()    {}
func (Keyboard) body() {}
func (Char) body()     {}
func (Window) body()   {}

// Mouse returns the body as a Mouse payload if this is a mouse message.
func (m Message) Mouse() (Mouse, bool) {
	b, ok := m.Body.(Mouse)
	return b, ok
}

// Keyboard returns the body as a Keyboard payload if this is a key message.
func (m Message) Keyboard() (Keyboard, bool) {
	b, ok := m.Body.(Keyboard)
	return b, ok
}

// Char returns the body as a Char payload if this is a character message.
func (m Message) Char() (Char, bool) {
	b, ok := m.Body.(Char)
	return b, ok
}

// Window returns the body as a Window payload if this is a window message.
func (m Message) Window() (Window, bool) {
	b, ok := m.Body.(Window)
	return b, ok
}
