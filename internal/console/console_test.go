package console

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/markers"
)

func TestReporterTranscript(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	dir := filepath.Join("assets", "markers")
	r.Start(dir, 640)
	r.DirectoryCreated(dir)
	var saved []string
	for _, k := range markers.Kinds() {
		r.Rendering(k)
		p := filepath.Join(dir, k.FileName())
		r.Saved(k, p)
		saved = append(saved, p)
	}
	r.Finish(dir, saved)

	out := buf.String()
	want := []string{
		"AR MARKER GENERATOR",
		"Output: " + dir,
		"Size: 640x640 pixels",
		"[OK] Created directory: " + dir,
		"[*] Creating markers...",
		"[BCC] Body-Centered Cubic...",
		"[FCC] Face-Centered Cubic...",
		"[HCP] Hexagonal Close-Packed...",
		"[OK] Saved: " + filepath.Join(dir, "marker_hcp.png"),
		"MARKER CREATION COMPLETE",
		markers.CompilerURL,
		"Upload all 3 PNG files",
		"Download targets.mind",
		"Save to: " + filepath.Join(dir, "targets.mind"),
	}
	last := -1
	for _, s := range want {
		i := strings.Index(out, s)
		if i < 0 {
			t.Errorf("output missing %q:\n%s", s, out)
			continue
		}
		if i < last {
			t.Errorf("%q out of order:\n%s", s, out)
		}
		last = i
	}
	if n := strings.Count(out, "[*] Creating markers..."); n != 1 {
		t.Errorf("creating header printed %d times, want 1", n)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal output contains escape codes:\n%q", out)
	}
}

func TestReporterWithDriver(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	d := &markers.Driver{
		OutputDir: dir,
		Kinds:     []markers.Kind{markers.FCC},
		Reporter:  New(&buf),
	}
	if _, err := d.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Created directory") {
		t.Errorf("existing directory reported as created:\n%s", out)
	}
	if !strings.Contains(out, "Upload all 1 PNG files") {
		t.Errorf("missing upload step:\n%s", out)
	}
}
