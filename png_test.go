package markers

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	img := NewGenerator().RenderBCC()

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}

	data := buf.Bytes()
	// IHDR color type 2 is truecolor without alpha.
	if len(data) < 26 || data[25] != 2 {
		t.Errorf("PNG color type = %d, want 2 (RGB)", data[25])
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	for _, p := range []image.Point{{10, 10}, {60, 60}, {100, 100}, {320, 380}} {
		r1, g1, b1, _ := img.At(p.X, p.Y).RGBA()
		r2, g2, b2, _ := decoded.At(p.X, p.Y).RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Errorf("pixel %v changed through PNG round trip", p)
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marker_fcc.png")
	if err := SavePNG(path, NewGenerator().RenderFCC()); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() = %v", err)
	}
	if cfg.Width != DefaultSize || cfg.Height != DefaultSize {
		t.Errorf("saved size %dx%d, want %dx%d", cfg.Width, cfg.Height, DefaultSize, DefaultSize)
	}
}

func TestSavePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "marker_fcc.png")
	if err := SavePNG(path, NewGenerator().RenderFCC()); err == nil {
		t.Error("SavePNG() into missing directory = nil, want error")
	}
}
