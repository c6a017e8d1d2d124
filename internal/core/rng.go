package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewStreamRNG(seed, 0)
}

// NewStreamRNG creates a deterministic RNG for one of several independent
// streams sharing a seed. Distinct streams never share state, so each grain
// of a batch can own one.
func NewStreamRNG(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use. It satisfies
// rand.Source, which is what gonum's distributions consume.
func (r *RNG) Source() *rand.Rand { return r.r }
