package grain

import (
	"errors"
	"fmt"
	"image"

	"regolith/internal/core"
	"regolith/internal/monitoring"
)

// State is the phase of a growth run.
type State uint8

const (
	StateSeeding State = iota
	StateGrowing
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSeeding:
		return "seeding"
	case StateGrowing:
		return "growing"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Stats counts what happened during a growth run. The seed particle is not
// included in Deposited.
type Stats struct {
	Iterations int
	Deposited  int
	Skipped    int
	Erosive    int
}

// Engine grows one grain. It owns its raster and RNG exclusively; distinct
// engines may run on separate goroutines as long as they do not share an RNG.
type Engine struct {
	cfg  Config
	pool RadiusPool
	rng  *core.RNG

	raster   *Raster
	boundary []image.Point

	state State
	stats Stats
}

// NewEngine returns an engine ready to seed a fresh raster.
func NewEngine(cfg Config, pool RadiusPool, rng *core.RNG) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyRadiusPool
	}
	if rng == nil {
		return nil, errors.New("grain: nil RNG")
	}
	return &Engine{
		cfg:    cfg,
		pool:   pool,
		rng:    rng,
		raster: NewRaster(cfg.ImageSize, cfg.Foreground, cfg.Background),
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// State reports the current phase.
func (e *Engine) State() State { return e.state }

// Stats reports the counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// Raster exposes the raster being grown.
func (e *Engine) Raster() *Raster { return e.raster }

// Boundary exposes the boundary set extracted after the latest step. The
// slice is reused by the next step.
func (e *Engine) Boundary() []image.Point { return e.boundary }

// Step advances the run by one transition: the seed deposit while seeding, one
// deposit-and-extract iteration while growing, nothing once done.
func (e *Engine) Step() {
	switch e.state {
	case StateSeeding:
		e.raster.FillDisk(e.cfg.SeedCenter(), e.cfg.SeedRadius, e.raster.Foreground)
		e.boundary = AppendBoundary(e.boundary, e.raster)
		e.state = StateGrowing
		if e.cfg.Particles <= 1 {
			e.state = StateDone
		}
	case StateGrowing:
		e.grow()
		e.stats.Iterations++
		if e.stats.Iterations >= e.cfg.Particles-1 {
			e.state = StateDone
		}
	}
}

func (e *Engine) grow() {
	p, err := Deposit(e.raster, e.rng, e.pool, e.boundary, e.cfg.NegativePercent)
	if err != nil {
		e.stats.Skipped++
		monitoring.Logf("grain: particle %d of %d skipped: %v", e.stats.Iterations+2, e.cfg.Particles, err)
	} else {
		e.stats.Deposited++
		if p.Polarity == Erosive {
			e.stats.Erosive++
		}
	}
	e.boundary = AppendBoundary(e.boundary, e.raster)
}

// Run steps until the particle budget is exhausted and returns the final
// raster.
func (e *Engine) Run() *Raster {
	for e.state != StateDone {
		e.Step()
	}
	return e.raster
}

// Grow builds an engine, runs it to completion and returns the raster.
func Grow(cfg Config, pool RadiusPool, rng *core.RNG) (*Raster, Stats, error) {
	e, err := NewEngine(cfg, pool, rng)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("grow grain: %w", err)
	}
	r := e.Run()
	return r, e.Stats(), nil
}
