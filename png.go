package markers

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	"github.com/gogpu/markers/internal/filesystem"
)

// EncodePNG writes img as a PNG at best compression. Opaque images, which
// every rendered marker is, are stored as 8-bit RGB without alpha.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// SavePNG encodes img and writes it to path atomically. The parent
// directory must exist.
func SavePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return fmt.Errorf("markers: encoding %s: %w", path, err)
	}
	if err := filesystem.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("markers: writing %s: %w", path, err)
	}
	Logger().Debug("png written",
		slog.String("path", path),
		slog.Int("bytes", buf.Len()))
	return nil
}
