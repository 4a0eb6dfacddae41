package markers

import "github.com/gogpu/gg"

const (
	fccCenter       = designSize / 2
	fccDiamond      = 220
	fccInnerDiamond = 150
	fccFaceDot      = 25
	fccSquare       = 25
)

// fccFaceDots sit on the four faces plus one diagonal.
var fccFaceDots = []Point{
	{fccCenter, 100},
	{fccCenter, 540},
	{100, fccCenter},
	{540, fccCenter},
	{fccCenter - 120, fccCenter - 120},
	{fccCenter + 120, fccCenter + 120},
}

// fccSquares form two concentric rings of corner atoms.
var fccSquares = []Point{
	{120, 120}, {520, 120}, {120, 520}, {520, 520},
	{220, 220}, {420, 220}, {220, 420}, {420, 420},
}

func drawFCC(dc *gg.Context) {
	fillPolygon(dc, Diamond(fccCenter, fccCenter, fccDiamond), style{Fill: ink, Outline: ink, Width: 1})
	fillPolygon(dc, Diamond(fccCenter, fccCenter, fccInnerDiamond), style{Fill: paper, Outline: ink, Width: 3})

	for _, p := range fccFaceDots {
		fillCircle(dc, p.X, p.Y, fccFaceDot, style{Fill: ink, Outline: paper, Width: 2})
	}
	for _, p := range fccSquares {
		fillSquare(dc, p.X, p.Y, fccSquare, style{Fill: gray, Outline: ink, Width: 2})
	}
}
