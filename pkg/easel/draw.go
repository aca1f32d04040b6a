package easel

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"easel/internal/render"
)

// Point is one vertex of a polyline, polygon or bezier chain.
type Point struct {
	X, Y int
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ClearDevice erases the whole drawing surface to the background color.
func (w *Window) ClearDevice() {
	w.target().Fill(w.bkColor.rgba())
}

// PutPixel sets one pixel to the given color, bypassing ambient state.
func (w *Window) PutPixel(x, y int, c Color) {
	vector.DrawFilledRect(w.target(), float32(x), float32(y), 1, 1, c.rgba(), false)
}

// GetPixel reads one pixel back from the drawing surface.
func (w *Window) GetPixel(x, y int) Color {
	r, g, b, _ := w.target().At(x, y).RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Line draws a straight segment in the line color and style.
func (w *Window) Line(x1, y1, x2, y2 int) {
	w.strokeSegment(w.target(), float32(x1), float32(y1), float32(x2), float32(y2))
}

// Rectangle outlines a rectangle in the line color.
func (w *Window) Rectangle(left, top, right, bottom int) {
	w.strokeRect(w.target(), left, top, right, bottom)
}

// FillRectangle fills the interior with the fill style and outlines the
// border in the line color.
func (w *Window) FillRectangle(left, top, right, bottom int) {
	dst := w.target()
	w.fillRect(dst, left, top, right, bottom)
	w.strokeRect(dst, left, top, right, bottom)
}

// SolidRectangle fills the interior only, with no border.
func (w *Window) SolidRectangle(left, top, right, bottom int) {
	w.fillRect(w.target(), left, top, right, bottom)
}

// ClearRectangle erases the rectangle to the background color.
func (w *Window) ClearRectangle(left, top, right, bottom int) {
	vector.DrawFilledRect(w.target(),
		float32(left), float32(top), float32(right-left), float32(bottom-top),
		w.bkColor.rgba(), false)
}

// Circle outlines a circle in the line color.
func (w *Window) Circle(x, y, radius int) {
	vector.StrokeCircle(w.target(), float32(x), float32(y), float32(radius),
		w.lineStyle.width(), w.lineColor.rgba(), true)
}

// FillCircle fills a circle with the fill style and outlines it.
func (w *Window) FillCircle(x, y, radius int) {
	dst := w.target()
	p := circlePath(x, y, radius)
	w.fillPath(dst, p)
	vector.StrokeCircle(dst, float32(x), float32(y), float32(radius),
		w.lineStyle.width(), w.lineColor.rgba(), true)
}

// SolidCircle fills a circle with no border.
func (w *Window) SolidCircle(x, y, radius int) {
	w.fillPath(w.target(), circlePath(x, y, radius))
}

// ClearCircle erases a circle to the background color.
func (w *Window) ClearCircle(x, y, radius int) {
	vector.DrawFilledCircle(w.target(), float32(x), float32(y), float32(radius),
		w.bkColor.rgba(), true)
}

// Ellipse outlines the ellipse inscribed in the given rectangle.
func (w *Window) Ellipse(left, top, right, bottom int) {
	w.strokePath(w.target(), ellipsePath(left, top, right, bottom))
}

// FillEllipse fills and outlines the inscribed ellipse.
func (w *Window) FillEllipse(left, top, right, bottom int) {
	dst := w.target()
	p := ellipsePath(left, top, right, bottom)
	w.fillPath(dst, p)
	w.strokePath(dst, p)
}

// SolidEllipse fills the inscribed ellipse with no border.
func (w *Window) SolidEllipse(left, top, right, bottom int) {
	w.fillPath(w.target(), ellipsePath(left, top, right, bottom))
}

// ClearEllipse erases the inscribed ellipse to the background color.
func (w *Window) ClearEllipse(left, top, right, bottom int) {
	p := ellipsePath(left, top, right, bottom)
	fillPathColor(w.target(), p, w.bkColor)
}

// RoundRect outlines a rectangle with elliptic corners of the given
// corner ellipse size.
func (w *Window) RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	w.strokePath(w.target(), roundRectPath(left, top, right, bottom, ellipseWidth, ellipseHeight))
}

// FillRoundRect fills and outlines a round-cornered rectangle.
func (w *Window) FillRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	dst := w.target()
	p := roundRectPath(left, top, right, bottom, ellipseWidth, ellipseHeight)
	w.fillPath(dst, p)
	w.strokePath(dst, p)
}

// SolidRoundRect fills a round-cornered rectangle with no border.
func (w *Window) SolidRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	w.fillPath(w.target(), roundRectPath(left, top, right, bottom, ellipseWidth, ellipseHeight))
}

// ClearRoundRect erases a round-cornered rectangle to the background color.
func (w *Window) ClearRoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	p := roundRectPath(left, top, right, bottom, ellipseWidth, ellipseHeight)
	fillPathColor(w.target(), p, w.bkColor)
}

// Arc draws the elliptic arc between the two angles, in radians,
// counterclockwise with angle zero at three o'clock.
func (w *Window) Arc(left, top, right, bottom int, start, end float64) {
	w.strokePath(w.target(), arcPath(left, top, right, bottom, start, end, false))
}

// Pie outlines a pie slice of the inscribed ellipse.
func (w *Window) Pie(left, top, right, bottom int, start, end float64) {
	w.strokePath(w.target(), arcPath(left, top, right, bottom, start, end, true))
}

// FillPie fills and outlines a pie slice.
func (w *Window) FillPie(left, top, right, bottom int, start, end float64) {
	dst := w.target()
	p := arcPath(left, top, right, bottom, start, end, true)
	w.fillPath(dst, p)
	w.strokePath(dst, p)
}

// SolidPie fills a pie slice with no border.
func (w *Window) SolidPie(left, top, right, bottom int, start, end float64) {
	w.fillPath(w.target(), arcPath(left, top, right, bottom, start, end, true))
}

// ClearPie erases a pie slice to the background color.
func (w *Window) ClearPie(left, top, right, bottom int, start, end float64) {
	fillPathColor(w.target(), arcPath(left, top, right, bottom, start, end, true), w.bkColor)
}

// Polyline draws connected segments through the points.
func (w *Window) Polyline(pts []Point) {
	dst := w.target()
	for i := 1; i < len(pts); i++ {
		w.strokeSegment(dst,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y))
	}
}

// Polygon outlines a closed polygon in the line color.
func (w *Window) Polygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	dst := w.target()
	w.Polyline(pts)
	last := pts[len(pts)-1]
	w.strokeSegment(dst, float32(last.X), float32(last.Y), float32(pts[0].X), float32(pts[0].Y))
}

// FillPolygon fills a closed polygon with the fill style and outlines it.
func (w *Window) FillPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	w.fillPath(w.target(), polygonPath(pts))
	w.Polygon(pts)
}

// SolidPolygon fills a closed polygon with no border.
func (w *Window) SolidPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	w.fillPath(w.target(), polygonPath(pts))
}

// ClearPolygon erases a closed polygon to the background color.
func (w *Window) ClearPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	fillPathColor(w.target(), polygonPath(pts), w.bkColor)
}

// PolyBezier draws a chain of cubic bezier curves: the first point is the
// start, each following group of three supplies two control points and an
// endpoint.
func (w *Window) PolyBezier(pts []Point) {
	if len(pts) < 4 {
		return
	}
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for i := 1; i+2 < len(pts); i += 3 {
		p.CubicTo(
			float32(pts[i].X), float32(pts[i].Y),
			float32(pts[i+1].X), float32(pts[i+1].Y),
			float32(pts[i+2].X), float32(pts[i+2].Y))
	}
	w.strokePath(w.target(), &p)
}

// stroke helpers

func (w *Window) strokeRect(dst *ebiten.Image, left, top, right, bottom int) {
	l, t, r, b := float32(left), float32(top), float32(right), float32(bottom)
	w.strokeSegment(dst, l, t, r, t)
	w.strokeSegment(dst, r, t, r, b)
	w.strokeSegment(dst, r, b, l, b)
	w.strokeSegment(dst, l, b, l, t)
}

// strokeSegment draws one straight run, splitting it into dash runs when
// the line style asks for them.
func (w *Window) strokeSegment(dst *ebiten.Image, x1, y1, x2, y2 float32) {
	if w.lineStyle.Pattern == LineNull {
		return
	}
	dashes := w.lineStyle.dashes()
	if len(dashes) == 0 {
		vector.StrokeLine(dst, x1, y1, x2, y2, w.lineStyle.width(), w.lineColor.rgba(), false)
		return
	}
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	pos := float32(0)
	for i := 0; pos < length; i++ {
		run := float32(dashes[i%len(dashes)])
		if run <= 0 {
			break
		}
		end := pos + run
		if end > length {
			end = length
		}
		if i%2 == 0 {
			vector.StrokeLine(dst, x1+ux*pos, y1+uy*pos, x1+ux*end, y1+uy*end,
				w.lineStyle.width(), w.lineColor.rgba(), false)
		}
		pos = end
	}
}

func (w *Window) strokePath(dst *ebiten.Image, p *vector.Path) {
	if w.lineStyle.Pattern == LineNull {
		return
	}
	op := &vector.StrokeOptions{
		Width:      w.lineStyle.width(),
		MiterLimit: 10,
	}
	switch w.lineStyle.Cap {
	case CapRound:
		op.LineCap = vector.LineCapRound
	case CapSquare:
		op.LineCap = vector.LineCapSquare
	default:
		op.LineCap = vector.LineCapButt
	}
	switch w.lineStyle.Join {
	case JoinRound:
		op.LineJoin = vector.LineJoinRound
	case JoinBevel:
		op.LineJoin = vector.LineJoinBevel
	default:
		op.LineJoin = vector.LineJoinMiter
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	colorizeVertices(vs, w.lineColor)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule: ebiten.FillRuleNonZero,
	})
}

// fill helpers

// fillRect paints a rectangle interior according to the ambient fill
// style.
func (w *Window) fillRect(dst *ebiten.Image, left, top, right, bottom int) {
	switch w.fillStyle.Kind {
	case FillNull:
		return
	case FillSolid:
		vector.DrawFilledRect(dst,
			float32(left), float32(top), float32(right-left), float32(bottom-top),
			w.fillColor.rgba(), false)
	default:
		w.fillPath(dst, rectPath(left, top, right, bottom))
	}
}

// fillPath paints a closed path interior according to the ambient fill
// style.
func (w *Window) fillPath(dst *ebiten.Image, p *vector.Path) {
	switch w.fillStyle.Kind {
	case FillNull:
		return
	case FillSolid:
		fillPathColor(dst, p, w.fillColor)
	default:
		tex := w.fillTexture()
		if tex == nil {
			fillPathColor(dst, p, w.fillColor)
			return
		}
		vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX = vs[i].DstX
			vs[i].SrcY = vs[i].DstY
			vs[i].ColorR = 1
			vs[i].ColorG = 1
			vs[i].ColorB = 1
			vs[i].ColorA = 1
		}
		dst.DrawTriangles(vs, is, tex, &ebiten.DrawTrianglesOptions{
			FillRule: ebiten.FillRuleNonZero,
			Address:  ebiten.AddressRepeat,
		})
	}
}

func fillPathColor(dst *ebiten.Image, p *vector.Path, c Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	colorizeVertices(vs, c)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule: ebiten.FillRuleNonZero,
	})
}

func colorizeVertices(vs []ebiten.Vertex, c Color) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = 1
	}
}

// fillTexture builds (and memoizes) the repeating cell for hatched,
// pattern and image fills.
func (w *Window) fillTexture() *ebiten.Image {
	switch w.fillStyle.Kind {
	case FillHatched:
		key := fillTexKey{kind: FillHatched, hatch: w.fillStyle.Hatch, fg: w.fillColor, bg: w.bkColor}
		if w.lastFillKey == key && w.lastFillTex != nil {
			return w.lastFillTex
		}
		tile := render.HatchTile(w.fillStyle.Hatch.tile(), w.fillColor.rgba(), w.bkColor.rgba())
		w.lastFillKey = key
		w.lastFillTex = ebiten.NewImageFromImage(tile.RGBA())
		return w.lastFillTex
	case FillPattern:
		key := fillTexKey{kind: FillPattern, pattern: w.fillStyle.Pattern, fg: w.fillColor, bg: w.bkColor}
		if w.lastFillKey == key && w.lastFillTex != nil {
			return w.lastFillTex
		}
		tile := render.PatternTile(w.fillStyle.Pattern, w.fillColor.rgba(), w.bkColor.rgba())
		w.lastFillKey = key
		w.lastFillTex = ebiten.NewImageFromImage(tile.RGBA())
		return w.lastFillTex
	case FillImage:
		if w.fillStyle.Image == nil {
			return nil
		}
		return w.fillStyle.Image.texture()
	}
	return nil
}

// path builders

func rectPath(left, top, right, bottom int) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(left), float32(top))
	p.LineTo(float32(right), float32(top))
	p.LineTo(float32(right), float32(bottom))
	p.LineTo(float32(left), float32(bottom))
	p.Close()
	return &p
}

func circlePath(x, y, radius int) *vector.Path {
	var p vector.Path
	p.Arc(float32(x), float32(y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	return &p
}

// bezierCircle is the control-point factor approximating a quarter circle
// with one cubic segment.
const bezierCircle = 0.5522847

func ellipsePath(left, top, right, bottom int) *vector.Path {
	cx := float32(left+right) / 2
	cy := float32(top+bottom) / 2
	rx := float32(right-left) / 2
	ry := float32(bottom-top) / 2
	kx := rx * bezierCircle
	ky := ry * bezierCircle

	var p vector.Path
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return &p
}

func roundRectPath(left, top, right, bottom, ellipseWidth, ellipseHeight int) *vector.Path {
	l, t, r, b := float32(left), float32(top), float32(right), float32(bottom)
	rx := float32(ellipseWidth) / 2
	ry := float32(ellipseHeight) / 2
	if rx > (r-l)/2 {
		rx = (r - l) / 2
	}
	if ry > (b-t)/2 {
		ry = (b - t) / 2
	}
	kx := rx * bezierCircle
	ky := ry * bezierCircle

	var p vector.Path
	p.MoveTo(l+rx, t)
	p.LineTo(r-rx, t)
	p.CubicTo(r-rx+kx, t, r, t+ry-ky, r, t+ry)
	p.LineTo(r, b-ry)
	p.CubicTo(r, b-ry+ky, r-rx+kx, b, r-rx, b)
	p.LineTo(l+rx, b)
	p.CubicTo(l+rx-kx, b, l, b-ry+ky, l, b-ry)
	p.LineTo(l, t+ry)
	p.CubicTo(l, t+ry-ky, l+rx-kx, t, l+rx, t)
	p.Close()
	return &p
}

// arcPath samples the elliptic arc between start and end (radians,
// counterclockwise, zero at three o'clock). With pie true the path runs
// through the center and closes.
func arcPath(left, top, right, bottom int, start, end float64, pie bool) *vector.Path {
	cx := float64(left+right) / 2
	cy := float64(top+bottom) / 2
	rx := float64(right-left) / 2
	ry := float64(bottom-top) / 2
	for end <= start {
		end += 2 * math.Pi
	}

	steps := int((end - start) / (2 * math.Pi) * 64)
	if steps < 8 {
		steps = 8
	}
	var p vector.Path
	if pie {
		p.MoveTo(float32(cx), float32(cy))
	}
	for i := 0; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		x := float32(cx + rx*math.Cos(a))
		y := float32(cy - ry*math.Sin(a))
		if i == 0 && !pie {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	if pie {
		p.Close()
	}
	return &p
}

func polygonPath(pts []Point) *vector.Path {
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.Close()
	return &p
}
