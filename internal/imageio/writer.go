// Package imageio persists finished grain rasters.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/tiff"

	"regolith/internal/grain"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatTIFF:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported image format %q (want png or tiff)", s)
}

// FileName returns the conventional output name for grain n.
func FileName(n int, f Format) string {
	return fmt.Sprintf("result_%d.%s", n, f)
}

// Gray converts a raster into an 8-bit grayscale image. The lower of the two
// pixel values maps to black and the higher one to white, so with the default
// values particles are black on a white background.
func Gray(r *grain.Raster) *image.Gray {
	lo, hi := min(r.Foreground, r.Background), max(r.Foreground, r.Background)
	img := image.NewGray(r.Bounds())
	px := r.Pixels()
	n := r.Size()
	for y := 0; y < n; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+n]
		for x := 0; x < n; x++ {
			v := px[y*n+x]
			switch {
			case v <= lo:
				row[x] = 0
			case v >= hi:
				row[x] = 255
			default:
				row[x] = uint8(int(v-lo) * 255 / int(hi-lo))
			}
		}
	}
	return img
}

// Encode writes r to w in the requested format.
func Encode(w io.Writer, r *grain.Raster, f Format) error {
	img := Gray(r)
	switch f {
	case FormatPNG, "":
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported image format %q", f)
}

// Writer stores grains as result_<n>.<ext> files inside Dir.
type Writer struct {
	Dir    string
	Format Format
}

// NewWriter returns a Writer for dir, creating the directory if needed.
func NewWriter(dir string, f Format) (*Writer, error) {
	if f == "" {
		f = FormatPNG
	}
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Writer{Dir: dir, Format: f}, nil
}

// WriteGrain encodes grain n and returns the path written.
func (w *Writer) WriteGrain(n int, r *grain.Raster) (string, error) {
	path := filepath.Join(w.Dir, FileName(n, w.Format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, r, w.Format); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
