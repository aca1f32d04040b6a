package easel

import (
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"easel/pkg/easel/event"
)

// readClipboard is a seam for tests.
var readClipboard = clipboard.ReadAll

// InputBox runs a modal text prompt drawn over the current scene. It
// drains the window's character and key messages until the user accepts
// with enter or cancels with escape, and reports the entered text. A
// window teardown while the box is open cancels it; a failure from the
// queue is fatal and is returned to the caller.
func (w *Window) InputBox(title, prompt string, maxLen int) (string, bool, error) {
	if maxLen <= 0 {
		maxLen = 256
	}

	// the box owns the ambient state while it is up
	savedLine := w.lineColor
	savedFill := w.fillColor
	savedText := w.textColor
	savedBk := w.bkColor
	savedStyle := w.textStyle
	savedFillStyle := w.fillStyle
	savedMode := w.bkMode
	defer func() {
		w.lineColor = savedLine
		w.fillColor = savedFill
		w.textColor = savedText
		w.bkColor = savedBk
		w.textStyle = savedStyle
		w.fillStyle = savedFillStyle
		w.bkMode = savedMode
	}()

	w.queue.Flush(event.FilterChar | event.FilterKey)

	var entered []rune
	blink := 0
	for {
		for {
			m, ok, err := w.queue.Poll(event.FilterChar|event.FilterKey, true)
			if err != nil {
				return "", false, err
			}
			if !ok {
				break
			}
			switch body := m.Body.(type) {
			case event.Char:
				switch body.Code {
				case 0x16: // ^V
					if pasted, err := readClipboard(); err == nil {
						for _, r := range pasted {
							if len(entered) >= maxLen {
								break
							}
							if unicode.IsPrint(r) {
								entered = append(entered, r)
							}
						}
					}
				default:
					r := rune(body.Code)
					if unicode.IsPrint(r) && len(entered) < maxLen {
						entered = append(entered, r)
					}
				}
			case event.Keyboard:
				if m.Kind != event.KindKeyDown {
					continue
				}
				switch body.Key {
				case event.KeyReturn:
					return string(entered), true, nil
				case event.KeyEscape:
					return "", false, nil
				case event.KeyBack:
					if len(entered) > 0 {
						entered = entered[:len(entered)-1]
					}
				}
			}
		}

		blink++
		w.drawInputBox(title, prompt, string(entered), blink/30%2 == 0)
		if err := w.FlushBatch(); err != nil {
			// the window went away under the box; that is a cancel, not a
			// failure
			return "", false, nil
		}
	}
}

func (w *Window) drawInputBox(title, prompt, entered string, caret bool) {
	w.textStyle = TextStyle{Height: 16}
	w.bkMode = Transparent
	w.fillStyle = SolidFill()

	const boxW, boxH = 360, 130
	left := (w.width - boxW) / 2
	top := (w.height - boxH) / 2

	w.fillColor = LightGray
	w.lineColor = Black
	w.FillRectangle(left, top, left+boxW, top+boxH)

	w.fillColor = DarkGray
	w.SolidRectangle(left, top, left+boxW, top+24)
	w.textColor = White
	w.OutText(left+8, top+4, title)

	w.textColor = Black
	w.OutText(left+12, top+34, prompt)

	fieldTop := top + boxH - 44
	w.fillColor = White
	w.FillRectangle(left+12, fieldTop, left+boxW-12, fieldTop+26)

	shown := entered
	for len(shown) > 0 && w.TextWidth(shown) > boxW-36 {
		_, size := utf8.DecodeRuneInString(shown)
		shown = shown[size:]
	}
	w.OutText(left+16, fieldTop+4, shown)
	if caret {
		cx := left + 16 + w.TextWidth(shown)
		w.Line(cx, fieldTop+4, cx, fieldTop+22)
	}
}
