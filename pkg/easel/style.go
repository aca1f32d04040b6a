package easel

import "easel/internal/render"

// LinePattern selects how line strokes are segmented. Patterns other than
// solid apply to straight segments; curves always stroke solid.
type LinePattern int

const (
	LineSolid LinePattern = iota
	LineDash
	LineDot
	LineDashDot
	LineDashDotDot
	LineNull
	LineUser
)

type CapStyle int

const (
	CapRound CapStyle = iota
	CapSquare
	CapFlat
)

type JoinStyle int

const (
	JoinRound JoinStyle = iota
	JoinBevel
	JoinMiter
)

// LineStyle is the ambient stroke state read by every outline draw call.
type LineStyle struct {
	Pattern   LinePattern
	Thickness int
	Cap       CapStyle
	Join      JoinStyle
	// UserDashes holds on/off pixel run lengths for LineUser.
	UserDashes []int
}

func SolidLine(thickness int) LineStyle {
	return LineStyle{Pattern: LineSolid, Thickness: thickness}
}

func DashLine(thickness int) LineStyle {
	return LineStyle{Pattern: LineDash, Thickness: thickness}
}

func DotLine(thickness int) LineStyle {
	return LineStyle{Pattern: LineDot, Thickness: thickness}
}

func UserLine(thickness int, dashes []int) LineStyle {
	return LineStyle{Pattern: LineUser, Thickness: thickness, UserDashes: dashes}
}

// dashes returns the on/off run lengths for the pattern, or nil for a
// continuous stroke.
func (s LineStyle) dashes() []int {
	switch s.Pattern {
	case LineDash:
		return []int{12, 6}
	case LineDot:
		return []int{3, 3}
	case LineDashDot:
		return []int{9, 6, 3, 6}
	case LineDashDotDot:
		return []int{9, 3, 3, 3, 3, 3}
	case LineUser:
		return s.UserDashes
	}
	return nil
}

func (s LineStyle) width() float32 {
	if s.Thickness < 1 {
		return 1
	}
	return float32(s.Thickness)
}

// Hatch selects one of the fixed hatch layouts for hatched fills.
type Hatch int

const (
	HatchHorizontal Hatch = iota
	HatchVertical
	HatchFDiagonal
	HatchBDiagonal
	HatchCross
	HatchDiagCross
)

func (h Hatch) tile() render.Hatch {
	return render.Hatch(h)
}

// FillKind selects how filled shapes paint their interior.
type FillKind int

const (
	FillSolid FillKind = iota
	FillNull
	FillHatched
	FillPattern
	FillImage
)

// FillStyle is the ambient interior state read by every Fill*/Solid* call.
// Solid fills use the window's fill color; hatched fills stroke the hatch
// in the fill color over the background color; pattern fills map set bits
// to the fill color; image fills tile the given image.
type FillStyle struct {
	Kind    FillKind
	Hatch   Hatch
	Pattern [8]uint8
	Image   *Image
}

func SolidFill() FillStyle {
	return FillStyle{Kind: FillSolid}
}

func HatchedFill(h Hatch) FillStyle {
	return FillStyle{Kind: FillHatched, Hatch: h}
}

func PatternFill(rows [8]uint8) FillStyle {
	return FillStyle{Kind: FillPattern, Pattern: rows}
}

func ImageFill(img *Image) FillStyle {
	return FillStyle{Kind: FillImage, Image: img}
}

// BkMode controls whether text paints its cell background.
type BkMode int

const (
	Opaque BkMode = iota
	Transparent
)

// TextStyle is the ambient font state read by text output. Height is the
// nominal glyph height in pixels; Width of zero keeps the natural aspect.
// Face names containing "mono" or "courier" select the monospace family;
// everything else falls back to the default family.
type TextStyle struct {
	Height    int
	Width     int
	Face      string
	Bold      bool
	Italic    bool
	Underline bool
	StrikeOut bool
}
