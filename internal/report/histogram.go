// Package report renders diagnostics about a run's radius pool.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"regolith/internal/grain"
)

// DefaultBins is the bin count used for radius histograms.
const DefaultBins = 14

// PoolSummary describes the distribution of a radius pool.
type PoolSummary struct {
	Size   int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	P95    float64
}

func (s PoolSummary) String() string {
	return fmt.Sprintf("size=%d min=%.2f max=%.2f mean=%.2f median=%.2f p95=%.2f",
		s.Size, s.Min, s.Max, s.Mean, s.Median, s.P95)
}

// Summarize computes summary statistics for pool without modifying it.
func Summarize(pool grain.RadiusPool) PoolSummary {
	if len(pool) == 0 {
		return PoolSummary{}
	}
	sorted := append([]float64(nil), pool...)
	sort.Float64s(sorted)
	return PoolSummary{
		Size:   len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}

// WriteRadiusHistogram plots a density-normalised histogram of pool to path.
// The image format follows the file extension (png, svg, pdf, ...).
func WriteRadiusHistogram(pool grain.RadiusPool, bins int, path string) error {
	if len(pool) == 0 {
		return errors.New("radius histogram: empty pool")
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Particle radii (%d)", len(pool))
	p.X.Label.Text = "Radius (px)"
	p.Y.Label.Text = "Density"

	h, err := plotter.NewHist(plotter.Values(pool), bins)
	if err != nil {
		return fmt.Errorf("radius histogram: %w", err)
	}
	h.Normalize(1)
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filepath.Clean(path)); err != nil {
		return fmt.Errorf("save radius histogram: %w", err)
	}
	return nil
}
