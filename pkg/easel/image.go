package easel

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ErrUnsupportedFormat reports a save path with an extension no encoder
// covers.
var ErrUnsupportedFormat = errors.New("easel: unsupported image format")

// Image is an off-screen picture. Pixels live in an RGBA buffer; the
// engine texture is rebuilt lazily whenever the buffer has changed.
type Image struct {
	rgba  *image.RGBA
	tex   *ebiten.Image
	dirty bool
}

// NewImage creates a blank image of the given size.
func NewImage(width, height int) *Image {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Image{rgba: image.NewRGBA(image.Rect(0, 0, width, height)), dirty: true}
}

func newImageFrom(src image.Image) *Image {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)
	return &Image{rgba: rgba, dirty: true}
}

// LoadImage reads a png, jpeg or bmp file.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("easel: load image: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("easel: load image %s: %w", path, err)
	}
	return newImageFrom(src), nil
}

// Save writes the image in the format named by the path extension:
// .png, .jpg/.jpeg or .bmp.
func (im *Image) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("easel: save image: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, im.rgba)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, im.rgba, nil)
	case ".bmp":
		err = bmp.Encode(f, im.rgba)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("easel: save image %s: %w", path, err)
	}
	return nil
}

func (im *Image) Width() int {
	return im.rgba.Bounds().Dx()
}

func (im *Image) Height() int {
	return im.rgba.Bounds().Dy()
}

// SetPixel writes one pixel of the buffer.
func (im *Image) SetPixel(x, y int, c Color) {
	im.rgba.SetRGBA(x, y, c.rgba())
	im.dirty = true
}

// Pixel reads one pixel of the buffer.
func (im *Image) Pixel(x, y int) Color {
	c := im.rgba.RGBAAt(x, y)
	return Color{R: c.R, G: c.G, B: c.B}
}

// Resize rescales the image in place with bilinear filtering.
func (im *Image) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), im.rgba, im.rgba.Bounds(), xdraw.Src, nil)
	im.rgba = dst
	im.tex = nil
	im.dirty = true
}

// Rotate returns a copy rotated counterclockwise by the given angle in
// radians. The result grows to hold the whole rotated image; uncovered
// corners take the background color.
func (im *Image) Rotate(radians float64, background Color) *Image {
	srcW := float64(im.Width())
	srcH := float64(im.Height())
	sin, cos := math.Sincos(radians)
	dstW := int(math.Round(math.Abs(srcW*cos) + math.Abs(srcH*sin)))
	dstH := int(math.Round(math.Abs(srcW*sin) + math.Abs(srcH*cos)))

	out := NewImage(dstW, dstH)
	bgFill := background.rgba()
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			out.rgba.SetRGBA(x, y, bgFill)
		}
	}

	// rotate about the source center, then recenter in the grown result;
	// screen y grows down, so the sine terms flip for a counterclockwise
	// visual rotation
	m := f64.Aff3{
		cos, sin, float64(dstW)/2 - cos*srcW/2 - sin*srcH/2,
		-sin, cos, float64(dstH)/2 + sin*srcW/2 - cos*srcH/2,
	}
	xdraw.BiLinear.Transform(out.rgba, m, im.rgba, im.rgba.Bounds(), xdraw.Over, nil)
	return out
}

// texture returns the engine-side copy of the buffer, rebuilding it after
// buffer writes.
func (im *Image) texture() *ebiten.Image {
	if im.tex == nil {
		im.tex = ebiten.NewImage(im.Width(), im.Height())
		im.dirty = true
	}
	if im.dirty {
		im.tex.WritePixels(im.rgba.Pix)
		im.dirty = false
	}
	return im.tex
}

// Rop selects how PutImage combines source pixels with the surface.
type Rop int

const (
	// RopSrcCopy replaces destination pixels.
	RopSrcCopy Rop = iota
	// RopSrcPaint brightens the destination by the source (additive).
	RopSrcPaint
	// RopSrcInvert combines source and destination with xor blending.
	RopSrcInvert
	// RopNotSrcCopy replaces destination pixels with the inverted source.
	RopNotSrcCopy
)

// PutImage draws the whole image with its top-left corner at (x, y).
func (w *Window) PutImage(x, y int, im *Image, rop Rop) {
	w.PutImagePart(x, y, im, 0, 0, im.Width(), im.Height(), rop)
}

// PutImagePart draws the sub-rectangle of im starting at (srcX, srcY)
// with the given size, placing it at (x, y).
func (w *Window) PutImagePart(x, y int, im *Image, srcX, srcY, width, height int, rop Rop) {
	if im == nil || width <= 0 || height <= 0 {
		return
	}
	src := im
	if rop == RopNotSrcCopy {
		src = im.inverted()
	}
	tex := src.texture()
	sub := tex.SubImage(image.Rect(srcX, srcY, srcX+width, srcY+height)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	switch rop {
	case RopSrcPaint:
		op.Blend = ebiten.BlendLighter
	case RopSrcInvert:
		op.Blend = ebiten.BlendXor
	}
	w.target().DrawImage(sub, op)
}

func (im *Image) inverted() *Image {
	out := NewImage(im.Width(), im.Height())
	copy(out.rgba.Pix, im.rgba.Pix)
	for i := 0; i+3 < len(out.rgba.Pix); i += 4 {
		out.rgba.Pix[i+0] = ^out.rgba.Pix[i+0]
		out.rgba.Pix[i+1] = ^out.rgba.Pix[i+1]
		out.rgba.Pix[i+2] = ^out.rgba.Pix[i+2]
	}
	return out
}

// Capture copies a region of the drawing surface into a new Image.
func (w *Window) Capture(x, y, width, height int) *Image {
	out := NewImage(width, height)
	sub := w.target().SubImage(image.Rect(x, y, x+width, y+height)).(*ebiten.Image)
	sub.ReadPixels(out.rgba.Pix)
	return out
}
