// Package console prints markergen progress for people at a terminal.
package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/markers"
)

const ruleWidth = 70

// Reporter writes banners and status lines. Colors are used only when the
// writer is a terminal that supports them.
type Reporter struct {
	w        io.Writer
	creating bool

	rule  lipgloss.Style
	title lipgloss.Style
	ok    lipgloss.Style
	kind  lipgloss.Style
	dim   lipgloss.Style
}

var _ markers.Reporter = (*Reporter)(nil)

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:     w,
		rule:  r.NewStyle().Foreground(lipgloss.Color("#243141")),
		title: r.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true),
		kind:  r.NewStyle().Bold(true),
		dim:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}),
	}
}

func (r *Reporter) println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}

func (r *Reporter) banner(title string) {
	line := r.rule.Render(strings.Repeat("=", ruleWidth))
	r.println(line)
	r.println("  " + r.title.Render(title))
	r.println(line)
}

// Start prints the opening banner.
func (r *Reporter) Start(outputDir string, size int) {
	r.creating = false
	r.banner("AR MARKER GENERATOR")
	r.println("Output: " + outputDir)
	r.println(fmt.Sprintf("Size: %dx%d pixels", size, size))
	r.println(r.rule.Render(strings.Repeat("=", ruleWidth)))
}

// DirectoryCreated reports that the output directory was created.
func (r *Reporter) DirectoryCreated(dir string) {
	r.println(r.ok.Render("[OK]") + " Created directory: " + dir)
}

// Rendering announces a marker.
func (r *Reporter) Rendering(k markers.Kind) {
	if !r.creating {
		r.creating = true
		r.println()
		r.println("[*] Creating markers...")
	}
	r.println()
	r.println("  " + r.kind.Render("["+k.String()+"]") + " " + k.Title() + "...")
}

// Saved reports a written marker file.
func (r *Reporter) Saved(_ markers.Kind, path string) {
	r.println("     " + r.ok.Render("[OK]") + " Saved: " + path)
}

// Finish prints the completion banner and the manual compile steps.
func (r *Reporter) Finish(outputDir string, saved []string) {
	r.println()
	r.banner("MARKER CREATION COMPLETE")
	r.println()
	r.println("Next steps:")
	r.println("  1. Compile markers with MindAR:")
	r.println("     -> " + r.dim.Render(markers.CompilerURL))
	r.println(fmt.Sprintf("  2. Upload all %d PNG files", len(saved)))
	r.println("  3. Download " + markers.TargetsFile)
	r.println("  4. Save to: " + filepath.Join(outputDir, markers.TargetsFile))
	r.println(r.rule.Render(strings.Repeat("=", ruleWidth)))
	r.println()
}
