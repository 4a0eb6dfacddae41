package typeface

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ScalableFace is a label face backed by an outline font file.
// It owns its FontSource; call Close when the face is no longer needed.
type ScalableFace struct {
	source *text.FontSource
	face   text.Face
	size   float64
	path   string
}

// LoadFace loads the font at path and returns a face of the given size in
// pixels. Font collections (.ttc) are rejected.
func LoadFace(path string, size float64) (*ScalableFace, error) {
	// #nosec G304 -- font path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeface: reading font file: %w", err)
	}
	return NewFace(data, size)
}

// NewFace builds a face from in-memory font data.
func NewFace(data []byte, size float64) (*ScalableFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, size)
	}
	// go-text is stricter than the x/image parser gg draws with, so a
	// file it accepts renders with all of its tables intact.
	if _, err := font.ParseTTF(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return &ScalableFace{
		source: source,
		face:   source.Face(size),
		size:   size,
	}, nil
}

// Name returns the font family name.
func (f *ScalableFace) Name() string {
	return f.source.Name()
}

// Scalable returns true.
func (f *ScalableFace) Scalable() bool { return true }

// Size returns the face size in pixels.
func (f *ScalableFace) Size() float64 { return f.size }

// Ascent returns the font ascent at the face size.
func (f *ScalableFace) Ascent() float64 {
	return f.face.Metrics().Ascent
}

// InkBounds renders s on a transparent scratch canvas and scans it for
// painted columns. Glyphs are drawn with the pen on whole pixels, so the
// result holds for any integer pen position.
func (f *ScalableFace) InkBounds(s string) (left, width int) {
	advance, lineHeight := text.Measure(s, f.face)
	if advance == 0 {
		return 0, 0
	}
	pad := int(math.Ceil(f.size))
	w := int(math.Ceil(advance)) + 2*pad
	h := int(math.Ceil(lineHeight)) + 2*pad

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	dc.SetFont(f.face)
	dc.SetColor(color.Black)
	dc.DrawString(s, float64(pad), float64(pad)+f.Ascent())

	minX, maxX, ok := inkColumns(dc.Image())
	if !ok {
		return 0, int(math.Round(advance))
	}
	return minX - pad, maxX - minX + 1
}

// Draw paints s with the pen at (x, baseline).
func (f *ScalableFace) Draw(dc *gg.Context, s string, x, baseline float64, col gg.RGBA) {
	dc.SetFont(f.face)
	dc.SetColor(col.Color())
	dc.DrawString(s, x, baseline)
}

// Close releases the font source.
func (f *ScalableFace) Close() error {
	return f.source.Close()
}
