// Package markers draws the BCC, FCC and HCP fiducial markers used as
// MindAR image targets.
//
// # Overview
//
// Each marker is a square, high-contrast geometric pattern inside a black
// frame with a short label near the bottom edge. The patterns are named
// after crystal lattices (body-centered cubic, face-centered cubic,
// hexagonal close-packed) and exist to give the image tracker many strong
// corners to lock on to.
//
// # Quick Start
//
//	face := typeface.Loader{
//	    Candidates: typeface.SystemCandidates(),
//	    Size:       markers.DefaultLabelSize,
//	}.Load()
//
//	d := markers.Driver{
//	    Generator: markers.NewGenerator(markers.WithFace(face)),
//	    OutputDir: "assets/markers",
//	}
//	paths, err := d.Run()
//
// The PNGs are then compiled into a single targets.mind file with the
// MindAR compiler (see [CompilerURL]) and placed next to them.
//
// # Coordinate System
//
// All geometry is authored for a 640x640 canvas, origin top-left, Y down,
// angles in radians increasing clockwise on screen. Other sizes scale the
// drawing transform. The coordinates are fixed design constants.
//
// # Determinism
//
// Rendering reads no input besides the generator options, so rendering a
// kind twice yields identical pixels.
package markers

// CompilerURL is the MindAR web tool that turns marker images into a
// targets.mind tracking file.
const CompilerURL = "https://hiukim.github.io/mind-ar-js-doc/tools/compile"

// TargetsFile is the file name the compiled tracking descriptor is saved
// under, next to the marker images.
const TargetsFile = "targets.mind"
