package grain

import (
	"errors"
	"image"
)

var (
	// ErrEmptyRadiusPool is returned when no radius survived filtering. It is
	// fatal for a run.
	ErrEmptyRadiusPool = errors.New("grain: radius pool is empty")
	// ErrEmptyBoundary is returned when a deposit is attempted with no
	// boundary pixels. The engine recovers by skipping the deposit.
	ErrEmptyBoundary = errors.New("grain: boundary set is empty")
)

// Rand is the source of uniform integer draws used for particle sampling.
// *core.RNG satisfies it; tests may substitute a scripted source.
type Rand interface {
	IntN(n int) int
}

// Polarity selects whether a particle adds or removes material.
type Polarity uint8

const (
	Additive Polarity = iota
	Erosive
)

func (p Polarity) String() string {
	switch p {
	case Additive:
		return "additive"
	case Erosive:
		return "erosive"
	}
	return "unknown"
}

// Particle is a single disk about to be rasterized.
type Particle struct {
	Center   image.Point
	Radius   float64
	Polarity Polarity
}

// SamplePolarity returns Erosive with probability negativePercent/100.
func SamplePolarity(rng Rand, negativePercent int) Polarity {
	if 1+rng.IntN(100) > 100-negativePercent {
		return Erosive
	}
	return Additive
}

// SampleParticle draws a radius from pool, a center from boundary and a
// polarity, in that order. No draws are made when either input is empty.
func SampleParticle(rng Rand, pool RadiusPool, boundary []image.Point, negativePercent int) (Particle, error) {
	if len(pool) == 0 {
		return Particle{}, ErrEmptyRadiusPool
	}
	if len(boundary) == 0 {
		return Particle{}, ErrEmptyBoundary
	}
	radius := pool.Pick(rng)
	center := boundary[rng.IntN(len(boundary))]
	return Particle{
		Center:   center,
		Radius:   radius,
		Polarity: SamplePolarity(rng, negativePercent),
	}, nil
}

// Stamp rasterizes p onto r and returns the number of pixels written.
func (r *Raster) Stamp(p Particle) int {
	v := r.Foreground
	if p.Polarity == Erosive {
		v = r.Background
	}
	return r.FillDisk(p.Center, p.Radius, v)
}

// Deposit samples one particle and stamps it onto r. The boundary slice is
// left untouched; callers recompute it after the raster changes.
func Deposit(r *Raster, rng Rand, pool RadiusPool, boundary []image.Point, negativePercent int) (Particle, error) {
	p, err := SampleParticle(rng, pool, boundary, negativePercent)
	if err != nil {
		return Particle{}, err
	}
	r.Stamp(p)
	return p, nil
}
