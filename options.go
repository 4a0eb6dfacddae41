package markers

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/markers/typeface"
)

// Option configures a Generator during creation.
//
// Example:
//
//	face := typeface.Loader{Candidates: typeface.SystemCandidates(), Size: 40}.Load()
//	g := markers.NewGenerator(markers.WithSize(1280), markers.WithFace(face))
type Option func(*options)

// options holds optional configuration for Generator creation.
type options struct {
	size       int
	face       typeface.Face
	background gg.RGBA
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		size:       DefaultSize,
		face:       nil, // bitmap face if nil
		background: gg.White,
	}
}

// WithSize sets the canvas edge length in pixels. Values below 1 are
// ignored. Geometry is scaled from the 640 pixel design.
func WithSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.size = size
		}
	}
}

// WithFace sets the label face. The caller keeps ownership and closes it
// after the generator is done.
func WithFace(face typeface.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithBackground sets the canvas fill drawn before the frame and pattern.
// The default is white; trackers need the contrast, so change it with care.
func WithBackground(col gg.RGBA) Option {
	return func(o *options) {
		o.background = col
	}
}
