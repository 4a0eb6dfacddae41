package markers

import (
	"image"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/markers/typeface"
)

const (
	// DefaultSize is the canvas edge length MindAR recommends for targets.
	DefaultSize = 640

	// DefaultLabelSize is the label font size at DefaultSize.
	DefaultLabelSize = 40

	// designSize is the edge length all coordinates are authored in.
	designSize = 640

	borderWidth = 40

	// labelMargin is the distance from the bottom edge to the top of the label.
	labelMargin = 80
)

// Gray and dim gray match the CSS named colors.
var (
	ink     = gg.Black
	paper   = gg.White
	gray    = gg.Hex("#808080")
	dimGray = gg.Hex("#696969")
)

// LabelSize scales a label font size given for the 640 pixel design to a
// canvas of the given size.
func LabelSize(base float64, size int) float64 {
	return base * float64(size) / designSize
}

// Generator renders marker images. A Generator holds no per-render state
// and renders the same pixels every time for the same kind.
type Generator struct {
	size       int
	face       typeface.Face
	background gg.RGBA
}

// NewGenerator creates a generator. Without WithFace labels use the
// built-in bitmap font.
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.face == nil {
		o.face = typeface.Bitmap()
	}
	return &Generator{size: o.size, face: o.face, background: o.background}
}

// Size returns the canvas edge length in pixels.
func (g *Generator) Size() int {
	return g.size
}

// Background returns the canvas fill.
func (g *Generator) Background() gg.RGBA {
	return g.background
}

// Face returns the label face.
func (g *Generator) Face() typeface.Face {
	return g.face
}

// Render draws the marker of the given kind.
func (g *Generator) Render(k Kind) (*image.RGBA, error) {
	switch k {
	case BCC:
		return g.RenderBCC(), nil
	case FCC:
		return g.RenderFCC(), nil
	case HCP:
		return g.RenderHCP(), nil
	}
	return nil, ErrUnknownKind
}

// RenderBCC draws the body-centered cubic marker.
func (g *Generator) RenderBCC() *image.RGBA {
	return g.render(BCC, drawBCC)
}

// RenderFCC draws the face-centered cubic marker.
func (g *Generator) RenderFCC() *image.RGBA {
	return g.render(FCC, drawFCC)
}

// RenderHCP draws the hexagonal close-packed marker.
func (g *Generator) RenderHCP() *image.RGBA {
	return g.render(HCP, drawHCP)
}

// render paints the frame, the pattern in design space and the label.
func (g *Generator) render(k Kind, pattern func(dc *gg.Context)) *image.RGBA {
	dc := gg.NewContext(g.size, g.size)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(g.background)

	scale := float64(g.size) / designSize
	dc.Push()
	dc.Scale(scale, scale)
	strokeFrame(dc, designSize, borderWidth, ink)
	pattern(dc)
	dc.Pop()

	size := float64(g.size)
	DrawLabel(dc, g.face, k.String(), size/2, size-labelMargin*scale, ink)

	Logger().Info("marker rendered",
		slog.String("kind", k.String()),
		slog.Int("size", g.size),
		slog.String("font", g.face.Name()))

	return toRGBA(dc.Image())
}

// toRGBA returns img as *image.RGBA, copying only when it is another type.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
