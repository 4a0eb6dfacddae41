package markers

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/markers/internal/filesystem"
)

// DefaultOutputDir is where markers are written when no directory is set.
const DefaultOutputDir = "assets/markers"

// Reporter receives human-readable progress from a Driver run.
type Reporter interface {
	Start(outputDir string, size int)
	DirectoryCreated(dir string)
	Rendering(k Kind)
	Saved(k Kind, path string)
	Finish(outputDir string, saved []string)
}

// Driver renders markers and saves them as <OutputDir>/marker_<name>.png.
type Driver struct {
	// Generator renders the images. Nil uses NewGenerator().
	Generator *Generator

	// OutputDir is created if missing. Empty uses DefaultOutputDir.
	OutputDir string

	// Kinds selects the markers to write. They are always produced in
	// BCC, FCC, HCP order. Nil writes all three.
	Kinds []Kind

	// Reporter receives progress. Nil is silent.
	Reporter Reporter
}

// Run writes the selected markers and returns the paths written. It stops
// at the first failure; files written before it are left in place.
func (d *Driver) Run() ([]string, error) {
	g := d.Generator
	if g == nil {
		g = NewGenerator()
	}
	dir := d.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	r := d.Reporter
	if r == nil {
		r = nopReporter{}
	}
	kinds, err := d.kinds()
	if err != nil {
		return nil, err
	}

	r.Start(dir, g.Size())

	created, err := filesystem.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("markers: creating output directory: %w", err)
	}
	if created {
		Logger().Info("output directory created", slog.String("dir", dir))
		r.DirectoryCreated(dir)
	}

	saved := make([]string, 0, len(kinds))
	for _, k := range kinds {
		r.Rendering(k)
		img, err := g.Render(k)
		if err != nil {
			return saved, err
		}
		path := filepath.Join(dir, k.FileName())
		if err := SavePNG(path, img); err != nil {
			return saved, err
		}
		Logger().Info("marker saved",
			slog.String("kind", k.String()),
			slog.String("path", path))
		r.Saved(k, path)
		saved = append(saved, path)
	}

	r.Finish(dir, saved)
	return saved, nil
}

// kinds returns the selection in generation order.
func (d *Driver) kinds() ([]Kind, error) {
	if d.Kinds == nil {
		return Kinds(), nil
	}
	want := make(map[Kind]bool, len(d.Kinds))
	for _, k := range d.Kinds {
		if !k.valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
		}
		want[k] = true
	}
	kinds := make([]Kind, 0, len(want))
	for _, k := range Kinds() {
		if want[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

type nopReporter struct{}

func (nopReporter) Start(string, int)       {}
func (nopReporter) DirectoryCreated(string) {}
func (nopReporter) Rendering(Kind)          {}
func (nopReporter) Saved(Kind, string)      {}
func (nopReporter) Finish(string, []string) {}
