package easel

import (
	"errors"
	"testing"
	"time"

	"easel/pkg/easel/event"
)

func charRecord(r rune) event.Raw {
	return event.Raw{Msg: uint32(event.KindChar), Code: uint16(r)}
}

func keyRecord(k event.KeyCode) event.Raw {
	return event.Raw{Msg: uint32(event.KindKeyDown), VKCode: byte(k)}
}

// runInputBox opens the modal under the headless display and feeds it the
// given records once it is up.
func runInputBox(t *testing.T, maxLen int, records []event.Raw) (string, bool, error) {
	t.Helper()
	d, cfg := headless()
	var (
		text   string
		ok     bool
		boxErr error
	)
	err := runOn(d, cfg, func(w *Window) error {
		go func() {
			// let the box flush stale input before feeding it
			time.Sleep(20 * time.Millisecond)
			for _, r := range records {
				w.Events().Push(r)
			}
		}()
		text, ok, boxErr = w.InputBox("title", "prompt", maxLen)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return text, ok, boxErr
}

func TestInputBoxEnterAccepts(t *testing.T) {
	text, ok, err := runInputBox(t, 0, []event.Raw{
		charRecord('h'), charRecord('i'), keyRecord(event.KeyReturn),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok || text != "hi" {
		t.Fatalf("expected accepted %q, got ok=%v text=%q", "hi", ok, text)
	}
}

func TestInputBoxEscapeCancels(t *testing.T) {
	text, ok, err := runInputBox(t, 0, []event.Raw{
		charRecord('x'), keyRecord(event.KeyEscape),
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok || text != "" {
		t.Fatalf("escape should cancel with no text, got ok=%v text=%q", ok, text)
	}
}

func TestInputBoxBackspaceEdits(t *testing.T) {
	text, ok, err := runInputBox(t, 0, []event.Raw{
		charRecord('a'), charRecord('b'), keyRecord(event.KeyBack),
		charRecord('c'), keyRecord(event.KeyReturn),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok || text != "ac" {
		t.Fatalf("backspace should remove the last rune, got ok=%v text=%q", ok, text)
	}
}

func TestInputBoxCapsLength(t *testing.T) {
	text, ok, err := runInputBox(t, 3, []event.Raw{
		charRecord('a'), charRecord('b'), charRecord('c'),
		charRecord('d'), charRecord('e'), keyRecord(event.KeyReturn),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok || text != "abc" {
		t.Fatalf("entry should stop at maxLen, got ok=%v text=%q", ok, text)
	}
}

func TestInputBoxPastesFromClipboard(t *testing.T) {
	saved := readClipboard
	readClipboard = func() (string, error) { return "pasted", nil }
	defer func() { readClipboard = saved }()

	text, ok, err := runInputBox(t, 0, []event.Raw{
		charRecord(0x16), keyRecord(event.KeyReturn),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ok || text != "pasted" {
		t.Fatalf("ctrl-v should insert the clipboard text, got ok=%v text=%q", ok, text)
	}
}

func TestInputBoxFailsOnUnrecognizedRecord(t *testing.T) {
	text, ok, err := runInputBox(t, 0, []event.Raw{
		charRecord('a'), {Msg: 0xFFFFFFFF},
	})
	if !errors.Is(err, event.ErrUnrecognizedKind) {
		t.Fatalf("expected ErrUnrecognizedKind, got %v", err)
	}
	if ok || text != "" {
		t.Fatalf("a queue failure must not read as accepted input, got ok=%v text=%q", ok, text)
	}
}
