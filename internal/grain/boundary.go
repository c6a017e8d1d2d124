package grain

import (
	"image"
	"math"
)

// ExtractBoundary returns every boundary pixel of r in row-major order.
//
// A pixel is on the boundary when the Roberts cross gradient anchored at it is
// non-zero. The operator compares the 2×2 block whose top-left corner is the
// pixel, replicating the last row and column, so the result is a thin ring on
// both sides of every foreground/background transition. Differences are taken
// on integer pixel values, so flat regions are exactly zero.
func ExtractBoundary(r *Raster) []image.Point {
	return AppendBoundary(nil, r)
}

// AppendBoundary is ExtractBoundary writing into dst[:0], reusing its storage.
func AppendBoundary(dst []image.Point, r *Raster) []image.Point {
	dst = dst[:0]
	n := r.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a, b := robertsCross(r, x, y)
			if a != 0 || b != 0 {
				dst = append(dst, image.Pt(x, y))
			}
		}
	}
	return dst
}

// EdgeMagnitude returns the Roberts cross gradient magnitude at (x, y),
// sqrt((a² + b²) / 2) for the two diagonal differences a and b.
func EdgeMagnitude(r *Raster, x, y int) float64 {
	a, b := robertsCross(r, x, y)
	return math.Sqrt(float64(a*a+b*b) / 2)
}

func robertsCross(r *Raster, x, y int) (int, int) {
	a := int(r.At(x+1, y+1)) - int(r.At(x, y))
	b := int(r.At(x, y+1)) - int(r.At(x+1, y))
	return a, b
}
