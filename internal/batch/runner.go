// Package batch grows every grain of a run concurrently and hands each
// finished raster to a writer.
package batch

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"regolith/internal/core"
	"regolith/internal/grain"
	"regolith/internal/monitoring"
)

// Writer persists a finished grain and returns where it went.
type Writer interface {
	WriteGrain(n int, r *grain.Raster) (string, error)
}

// Result describes one grain of a run.
type Result struct {
	Index  int
	Raster *grain.Raster
	Stats  grain.Stats
	Path   string
	Err    error
}

// Runner grows Config.Grains independent grains from one shared radius pool.
type Runner struct {
	Config  grain.Config
	Workers int
	Writer  Writer

	// KeepRasters retains each final raster in its Result. Without it rasters
	// are released once written.
	KeepRasters bool
}

// BuildPool generates the run's radius pool on stream 0 of the run seed.
func BuildPool(cfg grain.Config) grain.RadiusPool {
	return grain.BuildRadiusPool(core.NewStreamRNG(cfg.Seed, 0).Source(), cfg.Radius)
}

// Run validates the configuration, builds the radius pool and grows every
// grain. Configuration problems and an empty pool abort before any grain
// starts. Per-grain write failures do not stop the other grains; they are
// reported in the results and joined into the returned error.
func (r *Runner) Run() ([]Result, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool := BuildPool(cfg)
	if len(pool) == 0 {
		return nil, fmt.Errorf("radius pool built from %d samples: %w", cfg.Radius.Count, grain.ErrEmptyRadiusPool)
	}
	return r.RunWithPool(pool)
}

// RunWithPool grows every grain from an already built pool.
func (r *Runner) RunWithPool(pool grain.RadiusPool) ([]Result, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, grain.ErrEmptyRadiusPool
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, cfg.Grains)
	var g errgroup.Group
	g.SetLimit(workers)
	for n := 0; n < cfg.Grains; n++ {
		g.Go(func() error {
			results[n] = r.growOne(n, cfg, pool)
			return results[n].Err
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}

func (r *Runner) growOne(n int, cfg grain.Config, pool grain.RadiusPool) Result {
	res := Result{Index: n}
	raster, stats, err := grain.Grow(cfg, pool, core.NewStreamRNG(cfg.Seed, uint64(n)+grain.GrainStream))
	if err != nil {
		res.Err = fmt.Errorf("grain %d: %w", n, err)
		return res
	}
	res.Stats = stats

	if r.Writer != nil {
		path, err := r.Writer.WriteGrain(n, raster)
		if err != nil {
			res.Err = fmt.Errorf("grain %d: %w", n, err)
		}
		res.Path = path
	}
	if r.KeepRasters {
		res.Raster = raster
	}

	where := ""
	if res.Path != "" {
		where = " -> " + res.Path
	}
	monitoring.Logf("grain %d: %d deposited (%d erosive), %d skipped, %d foreground pixels%s",
		n, stats.Deposited, stats.Erosive, stats.Skipped, raster.ForegroundCount(), where)
	return res
}
