package easel

import (
	"testing"

	"easel/internal/platform"
)

func textWindow() *Window {
	cfg := platform.Config{WidthPx: 640, HeightPx: 480}
	return newWindow(platform.NewHeadless(cfg), cfg)
}

func TestTextMeasurement(t *testing.T) {
	w := textWindow()
	w.SetTextHeight(20, 0, "")

	if got := w.TextWidth(""); got != 0 {
		t.Fatalf("empty string should measure 0, got %d", got)
	}
	short := w.TextWidth("hi")
	long := w.TextWidth("hi there, measured text")
	if short <= 0 {
		t.Fatalf("non-empty string should have positive width, got %d", short)
	}
	if long <= short {
		t.Fatalf("longer string should measure wider: %d vs %d", long, short)
	}
	if h := w.TextHeight("hi"); h <= 0 {
		t.Fatalf("text height should be positive, got %d", h)
	}
}

func TestTextHeightTracksFontSize(t *testing.T) {
	w := textWindow()
	w.SetTextHeight(14, 0, "")
	small := w.TextHeight("x")
	w.SetTextHeight(40, 0, "")
	big := w.TextHeight("x")
	if big <= small {
		t.Fatalf("larger font should be taller: %d vs %d", big, small)
	}
}

func TestMonospaceFaceSelection(t *testing.T) {
	w := textWindow()
	w.SetTextHeight(18, 0, "Courier New")
	iw := w.TextWidth("i")
	mw := w.TextWidth("m")
	if iw != mw {
		t.Fatalf("monospace face should measure equal advances: i=%d m=%d", iw, mw)
	}

	w.SetTextHeight(18, 0, "Arial")
	if w.TextWidth("i") == w.TextWidth("m") {
		t.Fatal("proportional face should not measure i and m equally")
	}
}

func TestWordBreakLayout(t *testing.T) {
	w := textWindow()
	w.SetTextHeight(16, 0, "")
	face := w.fonts.face(w.textStyle)
	if face == nil {
		t.Fatal("no face available")
	}

	r := Rect{Left: 0, Top: 0, Right: 120, Bottom: 400}
	lines := w.layoutLines("alpha beta gamma delta epsilon", r, FormatWordBreak, face)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %q", lines)
	}
	for _, line := range lines {
		if got := w.TextWidth(line); got > 120 {
			t.Fatalf("wrapped line %q exceeds rect width: %d", line, got)
		}
	}

	single := w.layoutLines("alpha\nbeta", r, FormatSingleLine, face)
	if len(single) != 1 || single[0] != "alpha beta" {
		t.Fatalf("single line layout wrong: %q", single)
	}
}
