package typeface

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
)

// ErrInvalidFont is returned when a font file cannot be parsed as a single
// TrueType or OpenType font.
var ErrInvalidFont = errors.New("typeface: invalid font")

// Face draws and measures label text.
type Face interface {
	// Name returns a human-readable font name for logs.
	Name() string

	// Scalable reports whether the face is an outline font.
	// The bitmap fallback returns false.
	Scalable() bool

	// Ascent returns the distance from the top of the line to the baseline
	// in pixels.
	Ascent() float64

	// InkBounds returns the horizontal extent of the pixels s paints when
	// drawn with its pen at x=0. left is relative to the pen position and
	// may be negative.
	InkBounds(s string) (left, width int)

	// Draw paints s with the pen at (x, baseline).
	Draw(dc *gg.Context, s string, x, baseline float64, col gg.RGBA)
}

// inkColumns returns the first and last columns of img that contain a
// pixel with non-zero alpha.
func inkColumns(img image.Image) (minX, maxX int, ok bool) {
	b := img.Bounds()
	minX, maxX = b.Max.X, b.Min.X-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
	}
	if maxX < minX {
		return 0, 0, false
	}
	return minX - b.Min.X, maxX - b.Min.X, true
}
