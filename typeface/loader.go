package typeface

import (
	"log/slog"
)

// Loader resolves the label face once at startup.
type Loader struct {
	// Candidates are font file paths tried in order.
	Candidates []string

	// Size is the face size in pixels.
	Size float64

	// Logger receives the outcome of each attempt. Nil discards.
	Logger *slog.Logger
}

// Load returns the first candidate that loads as a scalable face, or the
// bitmap face when none does. It never fails.
func (l Loader) Load() Face {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	for _, path := range l.Candidates {
		f, err := LoadFace(path, l.Size)
		if err != nil {
			logger.Debug("font candidate rejected",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		f.path = path
		logger.Info("label font loaded",
			slog.String("name", f.Name()),
			slog.String("path", path),
			slog.Float64("size", l.Size))
		return f
	}

	logger.Warn("no scalable label font available, using bitmap fallback",
		slog.Int("candidates", len(l.Candidates)))
	return Bitmap()
}

// Path returns the file the face was loaded from, if any.
func (f *ScalableFace) Path() string {
	return f.path
}
