// Package typeface loads the font used for marker labels.
//
// A label face is either scalable (a TrueType/OpenType file rendered through
// gg's text package) or the built-in 7x13 bitmap font from
// golang.org/x/image/font/basicfont. [Loader] tries a list of font files and
// falls back to the bitmap font, so obtaining a [Face] never fails:
//
//	face := typeface.Loader{
//	    Candidates: typeface.SystemCandidates(),
//	    Size:       40,
//	}.Load()
//
// Both kinds report the ink bounds of a string, which is what label
// centering is computed from.
package typeface
