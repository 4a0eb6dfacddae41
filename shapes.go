package markers

import (
	"math"

	"github.com/gogpu/gg"
)

// Point is a vertex in design space.
type Point struct {
	X, Y float64
}

// RegularPolygon returns the n vertices of a regular polygon centered at
// (cx, cy) with circumradius r. Vertex i lies at angle rotation+i*2pi/n.
func RegularPolygon(n int, cx, cy, r, rotation float64) []Point {
	pts := make([]Point, n)
	step := 2.0 * math.Pi / float64(n)
	for i := range pts {
		a := rotation + step*float64(i)
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// Hexagon returns the six vertices of a flat-sided hexagon, vertex k at
// angle k*60 degrees.
func Hexagon(cx, cy, r float64) []Point {
	return RegularPolygon(6, cx, cy, r, 0)
}

// Diamond returns a square rotated 45 degrees with half-diagonal r,
// starting at the top vertex and going clockwise.
func Diamond(cx, cy, r float64) []Point {
	return []Point{
		{cx, cy - r},
		{cx + r, cy},
		{cx, cy + r},
		{cx - r, cy},
	}
}

// style is the fill and outline of one shape. A zero Width draws no outline.
type style struct {
	Fill    gg.RGBA
	Outline gg.RGBA
	Width   float64
}

// tracePolygon replaces the current path with a closed polygon.
func tracePolygon(dc *gg.Context, pts []Point) {
	dc.ClearPath()
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
}

// fillPolygon fills pts and strokes the outline centered on its edges.
func fillPolygon(dc *gg.Context, pts []Point, s style) {
	tracePolygon(dc, pts)
	dc.SetColor(s.Fill.Color())
	if s.Width <= 0 {
		_ = dc.Fill()
		return
	}
	_ = dc.FillPreserve()
	dc.SetColor(s.Outline.Color())
	dc.SetLineWidth(s.Width)
	_ = dc.Stroke()
}

// fillCircle fills a circle of radius r and strokes its outline inside the
// radius, so the shape never grows past r.
func fillCircle(dc *gg.Context, cx, cy, r float64, s style) {
	dc.ClearPath()
	dc.SetColor(s.Fill.Color())
	dc.DrawCircle(cx, cy, r)
	_ = dc.Fill()
	if s.Width <= 0 {
		return
	}
	dc.SetColor(s.Outline.Color())
	dc.SetLineWidth(s.Width)
	dc.DrawCircle(cx, cy, r-s.Width/2)
	_ = dc.Stroke()
}

// fillSquare fills an axis-aligned square of half-side h centered at
// (cx, cy) with an outline inside its edges.
func fillSquare(dc *gg.Context, cx, cy, h float64, s style) {
	dc.ClearPath()
	dc.SetColor(s.Fill.Color())
	dc.DrawRectangle(cx-h, cy-h, 2*h, 2*h)
	_ = dc.Fill()
	if s.Width <= 0 {
		return
	}
	in := s.Width / 2
	dc.SetColor(s.Outline.Color())
	dc.SetLineWidth(s.Width)
	dc.DrawRectangle(cx-h+in, cy-h+in, 2*(h-in), 2*(h-in))
	_ = dc.Stroke()
}

// strokeFrame draws a band of width w along the inside edge of a square
// canvas. Miter joins keep the corners square.
func strokeFrame(dc *gg.Context, size, w float64, col gg.RGBA) {
	dc.ClearPath()
	dc.SetColor(col.Color())
	dc.SetLineWidth(w)
	dc.SetLineJoin(gg.LineJoinMiter)
	dc.DrawRectangle(w/2, w/2, size-w, size-w)
	_ = dc.Stroke()
}
