package typeface

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maskPad is the blank margin around a rendered bitmap mask.
const maskPad = 2

// BitmapFace is the built-in 7x13 fallback font. It does not scale: labels
// drawn with it are smaller than the configured size.
type BitmapFace struct {
	face *basicfont.Face
}

// Bitmap returns the fallback bitmap face.
func Bitmap() *BitmapFace {
	return &BitmapFace{face: basicfont.Face7x13}
}

// Name returns "basicfont 7x13".
func (b *BitmapFace) Name() string { return "basicfont 7x13" }

// Scalable returns false.
func (b *BitmapFace) Scalable() bool { return false }

// Ascent returns the bitmap font ascent in pixels.
func (b *BitmapFace) Ascent() float64 {
	return float64(b.face.Ascent)
}

// mask renders s in opaque alpha with the pen at (maskPad, maskPad+Ascent).
func (b *BitmapFace) mask(s string) *image.Alpha {
	advance := font.MeasureString(b.face, s).Ceil()
	m := image.NewAlpha(image.Rect(0, 0, advance+2*maskPad, b.face.Height+2*maskPad))
	d := &font.Drawer{
		Dst:  m,
		Src:  image.Opaque,
		Face: b.face,
		Dot:  fixed.P(maskPad, maskPad+b.face.Ascent),
	}
	d.DrawString(s)
	return m
}

// InkBounds returns the painted column range of s.
func (b *BitmapFace) InkBounds(s string) (left, width int) {
	if s == "" {
		return 0, 0
	}
	minX, maxX, ok := inkColumns(b.mask(s))
	if !ok {
		return 0, font.MeasureString(b.face, s).Ceil()
	}
	return minX - maskPad, maxX - minX + 1
}

// Draw composites the glyph mask onto dc. x and baseline are rounded to
// whole pixels.
func (b *BitmapFace) Draw(dc *gg.Context, s string, x, baseline float64, col gg.RGBA) {
	if s == "" {
		return
	}
	m := b.mask(s)
	dst := dc.Image()
	ox := int(math.Round(x)) - maskPad
	oy := int(math.Round(baseline)) - b.face.Ascent - maskPad

	bounds := m.Bounds()
	for my := bounds.Min.Y; my < bounds.Max.Y; my++ {
		for mx := bounds.Min.X; mx < bounds.Max.X; mx++ {
			a := m.AlphaAt(mx, my).A
			if a == 0 {
				continue
			}
			px, py := ox+mx, oy+my
			under := gg.FromColor(dst.At(px, py))
			dc.SetPixel(px, py, blend(col, under, float64(a)/0xff))
		}
	}
}

// blend composites src with coverage t over an opaque dst.
func blend(src, dst gg.RGBA, t float64) gg.RGBA {
	t *= src.A
	return gg.RGBA{
		R: src.R*t + dst.R*(1-t),
		G: src.G*t + dst.G*(1-t),
		B: src.B*t + dst.B*(1-t),
		A: math.Max(dst.A, t),
	}
}
