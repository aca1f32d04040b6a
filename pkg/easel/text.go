package easel

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontKey struct {
	size   int
	bold   bool
	italic bool
	mono   bool
}

type fontBank struct {
	regular    *opentype.Font
	bold       *opentype.Font
	italic     *opentype.Font
	boldItalic *opentype.Font
	monospace  *opentype.Font
	cache      map[fontKey]font.Face
}

func newFontBank() *fontBank {
	bank := &fontBank{cache: map[fontKey]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bol, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return bank
	}
	ita, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return bank
	}
	bit, err := opentype.Parse(gobolditalic.TTF)
	if err != nil {
		return bank
	}
	mon, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	bank.bold = bol
	bank.italic = ita
	bank.boldItalic = bit
	bank.monospace = mon
	return bank
}

func (b *fontBank) face(style TextStyle) font.Face {
	size := style.Height
	if size <= 0 {
		size = 16
	}
	lower := strings.ToLower(style.Face)
	mono := strings.Contains(lower, "mono") || strings.Contains(lower, "courier")
	key := fontKey{size: size, bold: style.Bold, italic: style.Italic, mono: mono}
	if f, ok := b.cache[key]; ok {
		return f
	}

	var base *opentype.Font
	switch {
	case mono:
		base = b.monospace
	case style.Bold && style.Italic:
		base = b.boldItalic
	case style.Bold:
		base = b.bold
	case style.Italic:
		base = b.italic
	default:
		base = b.regular
	}
	if base == nil {
		return nil
	}
	opts := &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull}
	f, err := opentype.NewFace(base, opts)
	if err != nil {
		return nil
	}
	b.cache[key] = f
	return f
}

// TextWidth measures the pixel width of s in the ambient text style.
func (w *Window) TextWidth(s string) int {
	f := w.fonts.face(w.textStyle)
	if f == nil || s == "" {
		return 0
	}
	return font.MeasureString(f, s).Round()
}

// TextHeight measures the pixel height of one line in the ambient text
// style.
func (w *Window) TextHeight(s string) int {
	f := w.fonts.face(w.textStyle)
	if f == nil {
		return 0
	}
	m := f.Metrics()
	return m.Ascent.Round() + m.Descent.Round()
}

// OutText draws s with its top-left corner at (x, y) in the text color.
// In opaque background mode the text cell is painted with the background
// color first.
func (w *Window) OutText(x, y int, s string) {
	f := w.fonts.face(w.textStyle)
	if f == nil || s == "" {
		return
	}
	dst := w.target()
	m := f.Metrics()
	width := font.MeasureString(f, s).Round()
	height := m.Ascent.Round() + m.Descent.Round()

	if w.bkMode == Opaque {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height),
			w.bkColor.rgba(), false)
	}

	baseline := y + m.Ascent.Round()
	text.Draw(dst, s, f, x, baseline, w.textColor.rgba())
	w.decorateText(dst, x, y, width, baseline, m)
}

func (w *Window) decorateText(dst *ebiten.Image, x, y, width, baseline int, m font.Metrics) {
	if w.textStyle.Underline {
		uy := baseline + max(1, m.Descent.Round()/2)
		vector.StrokeLine(dst, float32(x), float32(uy), float32(x+width), float32(uy),
			1, w.textColor.rgba(), false)
	}
	if w.textStyle.StrikeOut {
		sy := baseline - m.Ascent.Round()*2/5
		vector.StrokeLine(dst, float32(x), float32(sy), float32(x+width), float32(sy),
			1, w.textColor.rgba(), false)
	}
}

// Rect is a text layout rectangle.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Format flags for DrawText. Horizontal and vertical alignments combine
// with bitwise or.
type Format uint32

const (
	FormatLeft    Format = 0
	FormatCenter  Format = 1 << 0
	FormatRight   Format = 1 << 1
	FormatTop     Format = 0
	FormatVCenter Format = 1 << 2
	FormatBottom  Format = 1 << 3
	// FormatSingleLine lays the whole string on one line.
	FormatSingleLine Format = 1 << 4
	// FormatWordBreak wraps at word boundaries to fit the rectangle width.
	FormatWordBreak Format = 1 << 5
)

// DrawText lays s out inside r according to the format flags and draws it
// in the ambient text style.
func (w *Window) DrawText(s string, r Rect, f Format) {
	face := w.fonts.face(w.textStyle)
	if face == nil || s == "" {
		return
	}
	lines := w.layoutLines(s, r, f, face)
	m := face.Metrics()
	lineH := m.Ascent.Round() + m.Descent.Round()

	totalH := lineH * len(lines)
	y := r.Top
	switch {
	case f&FormatVCenter != 0:
		y = r.Top + (r.Bottom-r.Top-totalH)/2
	case f&FormatBottom != 0:
		y = r.Bottom - totalH
	}

	dst := w.target()
	for _, line := range lines {
		lw := font.MeasureString(face, line).Round()
		x := r.Left
		switch {
		case f&FormatCenter != 0:
			x = r.Left + (r.Right-r.Left-lw)/2
		case f&FormatRight != 0:
			x = r.Right - lw
		}
		baseline := y + m.Ascent.Round()
		text.Draw(dst, line, face, x, baseline, w.textColor.rgba())
		w.decorateText(dst, x, y, lw, baseline, m)
		y += lineH
	}
}

func (w *Window) layoutLines(s string, r Rect, f Format, face font.Face) []string {
	if f&FormatSingleLine != 0 {
		return []string{strings.ReplaceAll(s, "\n", " ")}
	}
	raw := strings.Split(s, "\n")
	if f&FormatWordBreak == 0 {
		return raw
	}
	maxW := r.Right - r.Left
	var lines []string
	for _, para := range raw {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, word := range words[1:] {
			joined := cur + " " + word
			if font.MeasureString(face, joined).Round() > maxW {
				lines = append(lines, cur)
				cur = word
				continue
			}
			cur = joined
		}
		lines = append(lines, cur)
	}
	return lines
}
