package grain

import (
	"image"

	"regolith/internal/core"
	"regolith/internal/monitoring"
)

// GrainStream is the RNG stream a Sim grows on. The batch runner gives grain n
// stream n+1 and builds the radius pool on stream 0, so a Sim reset with a
// run's seed replays that run's first grain.
const GrainStream = 1

// Sim adapts Engine to core.Sim so the viewer can drive a growth run one
// particle per tick.
type Sim struct {
	cfg     Config
	pool    RadiusPool
	engine  *Engine
	display []uint8
}

// NewSim returns a Sim for cfg. Call Reset before stepping.
func NewSim(cfg Config) *Sim {
	total := max(cfg.ImageSize, 1) * max(cfg.ImageSize, 1)
	return &Sim{cfg: cfg, display: make([]uint8, total)}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "regolith" }

// Size reports the raster dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.ImageSize, H: s.cfg.ImageSize} }

// Reset rebuilds the radius pool and restarts growth from an empty raster.
// A zero seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.pool = BuildRadiusPool(core.NewRNG(seed).Source(), s.cfg.Radius)
	e, err := NewEngine(s.cfg, s.pool, core.NewStreamRNG(seed, GrainStream))
	if err != nil {
		monitoring.Logf("regolith: cannot start growth: %v", err)
		s.engine = nil
		clear(s.display)
		return
	}
	s.engine = e
	s.refresh()
}

// Step deposits one particle, or seeds the raster on the first call.
func (s *Sim) Step() {
	if s.engine == nil || s.engine.State() == StateDone {
		return
	}
	s.engine.Step()
	s.refresh()
}

// Cells returns 1 for particle pixels and 0 elsewhere, regardless of the
// configured pixel values.
func (s *Sim) Cells() []uint8 { return s.display }

// Boundary returns the current boundary set, or nil before Reset.
func (s *Sim) Boundary() []image.Point {
	if s.engine == nil {
		return nil
	}
	return s.engine.Boundary()
}

// Engine exposes the running engine; nil until a successful Reset.
func (s *Sim) Engine() *Engine { return s.engine }

func (s *Sim) refresh() {
	px := s.engine.Raster().Pixels()
	fg := s.engine.Raster().Foreground
	for i, v := range px {
		if v == fg {
			s.display[i] = 1
			continue
		}
		s.display[i] = 0
	}
}

func init() {
	core.Register("regolith", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
