package markers

import "github.com/gogpu/gg"

// BCC geometry in design space. The cube is drawn in isometric view from
// three quadrilaterals sharing the edge at y=bccCenter.
const (
	bccCenter    = designSize / 2
	bccCube      = 200
	bccCenterDot = 30
	bccDot       = 20
)

// bccDots are the corner atoms: four outer corners, then four inner points.
var bccDots = []Point{
	{100, 100}, {540, 100}, {100, 540}, {540, 540},
	{200, 200}, {440, 200}, {200, 440}, {440, 440},
}

func bccFaces() (front, top, side []Point) {
	const c, s = bccCenter, bccCube
	front = []Point{
		{c - s/2, c},
		{c + s/2, c},
		{c + s/2, c + s/2},
		{c - s/2, c + s/2},
	}
	top = []Point{
		{c - s/2, c},
		{c, c - s/3},
		{c + s, c - s/3},
		{c + s/2, c},
	}
	side = []Point{
		{c + s/2, c},
		{c + s, c - s/3},
		{c + s, c + s/6},
		{c + s/2, c + s/2},
	}
	return front, top, side
}

func drawBCC(dc *gg.Context) {
	front, top, side := bccFaces()
	fillPolygon(dc, front, style{Fill: ink, Outline: ink, Width: 1})
	fillPolygon(dc, top, style{Fill: gray, Outline: ink, Width: 1})
	fillPolygon(dc, side, style{Fill: dimGray, Outline: ink, Width: 1})

	// Body-centered atom.
	fillCircle(dc, bccCenter, bccCenter, bccCenterDot, style{Fill: paper, Outline: ink, Width: 3})

	for _, p := range bccDots {
		fillCircle(dc, p.X, p.Y, bccDot, style{Fill: ink, Outline: paper, Width: 2})
	}
}
