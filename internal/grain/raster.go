package grain

import (
	"image"
	"math"

	"regolith/internal/core"
)

// Raster is the square binary image a single grain grows on. Every pixel holds
// either Foreground (particle material) or Background (void).
type Raster struct {
	grid *core.ByteGrid

	Foreground uint8
	Background uint8
}

// NewRaster allocates a size×size raster filled with the background value.
func NewRaster(size int, foreground, background uint8) *Raster {
	r := &Raster{
		grid:       core.NewByteGrid(size, size),
		Foreground: foreground,
		Background: background,
	}
	r.grid.Fill(background)
	return r
}

// Size returns the side length in pixels.
func (r *Raster) Size() int { return r.grid.W }

// Bounds returns the pixel rectangle covered by the raster.
func (r *Raster) Bounds() image.Rectangle { return image.Rect(0, 0, r.grid.W, r.grid.H) }

// Pixels exposes the row-major pixel buffer.
func (r *Raster) Pixels() []uint8 { return r.grid.Cells() }

// At returns the pixel value at (x, y), replicating the edge for coordinates
// past the last row or column.
func (r *Raster) At(x, y int) uint8 { return r.grid.At(x, y) }

// Set writes a pixel. Writes outside the raster are ignored.
func (r *Raster) Set(x, y int, v uint8) { r.grid.Set(x, y, v) }

// IsForeground reports whether (x, y) is inside the raster and holds particle
// material.
func (r *Raster) IsForeground(x, y int) bool {
	return r.grid.In(x, y) && r.grid.At(x, y) == r.Foreground
}

// ForegroundCount returns the number of particle pixels.
func (r *Raster) ForegroundCount() int { return r.grid.Count(r.Foreground) }

// Clone returns an independent copy of the raster.
func (r *Raster) Clone() *Raster {
	return &Raster{grid: r.grid.Clone(), Foreground: r.Foreground, Background: r.Background}
}

// FillDisk sets every pixel whose center lies within Euclidean distance radius
// of c to v, clipped to the raster. It returns the number of pixels written.
func (r *Raster) FillDisk(c image.Point, radius float64, v uint8) int {
	if radius < 0 || math.IsNaN(radius) {
		return 0
	}
	span := int(math.Floor(radius))
	x0, x1 := max(c.X-span, 0), min(c.X+span, r.grid.W-1)
	y0, y1 := max(c.Y-span, 0), min(c.Y+span, r.grid.H-1)
	r2 := radius * radius

	cells := r.grid.Cells()
	written := 0
	for y := y0; y <= y1; y++ {
		dy := float64(y - c.Y)
		row := y * r.grid.W
		for x := x0; x <= x1; x++ {
			dx := float64(x - c.X)
			if dx*dx+dy*dy > r2 {
				continue
			}
			cells[row+x] = v
			written++
		}
	}
	return written
}
