package grain

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RadiusParams controls how the radius pool is generated.
type RadiusParams struct {
	// Count is the number of raw samples drawn before filtering.
	Count int
	// Mean is the mean of the exponential distribution.
	Mean float64
	// ScaleFactor multiplies every raw sample into pixel units.
	ScaleFactor float64
	// Min and Max bound the retained radii, inclusive.
	Min float64
	Max float64
}

// RadiusPool is the immutable set of admissible particle radii for a run. It is
// shared read-only by every grain.
type RadiusPool []float64

// BuildRadiusPool draws p.Count exponential samples from src, scales them and
// keeps those within [p.Min, p.Max]. The result may be empty, in which case
// no grain can be grown; NewEngine reports that as ErrEmptyRadiusPool. A
// non-positive count, mean or scale, or bounds that do not form a range,
// give an empty pool.
func BuildRadiusPool(src rand.Source, p RadiusParams) RadiusPool {
	if p.Count <= 0 || !(p.Mean > 0) || !(p.ScaleFactor > 0) || !(p.Min <= p.Max) {
		return RadiusPool{}
	}
	dist := distuv.Exponential{Rate: 1 / p.Mean, Src: src}
	pool := make(RadiusPool, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		r := dist.Rand() * p.ScaleFactor
		if !(r >= p.Min && r <= p.Max) {
			continue
		}
		pool = append(pool, r)
	}
	return pool
}

// Pick returns a radius chosen uniformly by index.
func (p RadiusPool) Pick(rng Rand) float64 {
	return p[rng.IntN(len(p))]
}

// Range returns the smallest and largest radius in the pool. Both are zero for
// an empty pool.
func (p RadiusPool) Range() (lo, hi float64) {
	if len(p) == 0 {
		return 0, 0
	}
	lo, hi = p[0], p[0]
	for _, r := range p[1:] {
		lo = min(lo, r)
		hi = max(hi, r)
	}
	return lo, hi
}
