package event

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedKind reports a raw record whose message identifier is
// outside the known kind set. It signals a classifier/source version
// mismatch and is fatal: the record is never retried and never partially
// decoded.
var ErrUnrecognizedKind = errors.New("event: unrecognized event kind")

// Raw is one untyped record as delivered by the display backend, before
// classification. Msg selects which of the payload fields are meaningful;
// Classify is the only place that interpretation happens.
type Raw struct {
	Msg uint32

	// mouse payload
	Ctrl   bool
	Shift  bool
	Left   bool
	Middle bool
	Right  bool
	X      uint16
	Y      uint16
	Wheel  int16

	// keyboard payload
	VKCode   byte
	Scan     byte
	Extended bool
	PrevDown bool

	// char payload
	Code uint16

	// window payload
	WParam uintptr
	LParam int64
}

// Classify decodes a raw record into a typed Message. The payload
// interpretation is selected by the message identifier alone. An identifier
// outside the known set fails with ErrUnrecognizedKind and yields no
// partially decoded message.
func Classify(r Raw) (Message, error) {
	k := Kind(r.Msg)
	switch k.Category() {
	case FilterMouse:
		return Message{Kind: k, Body: Mouse{
			Ctrl:   r.Ctrl,
			Shift:  r.Shift,
			Left:   r.Left,
			Middle: r.Middle,
			Right:  r.Right,
			X:      r.X,
			Y:      r.Y,
			Wheel:  r.Wheel,
		}}, nil
	case FilterKey:
		return Message{Kind: k, Body: Keyboard{
			Key:      FromRaw(r.VKCode),
			Scan:     r.Scan,
			Extended: r.Extended,
			PrevDown: r.PrevDown,
		}}, nil
	case FilterChar:
		return Message{Kind: k, Body: Char{Code: r.Code}}, nil
	case FilterWindow:
		return Message{Kind: k, Body: Window{WParam: r.WParam, LParam: r.LParam}}, nil
	}
	return Message{}, fmt.Errorf("%w: 0x%08X", ErrUnrecognizedKind, r.Msg)
}
