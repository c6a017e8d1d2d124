package grain

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"regolith/internal/core"
	"regolith/internal/monitoring"
)

func muteLogs(t *testing.T) *[]string {
	t.Helper()
	orig := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = orig })
	var lines []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	return &lines
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.ImageSize = 120
	cfg.SeedRadius = 12
	cfg.Particles = 30
	return cfg
}

func TestEngineSeedOnlyMatchesDisk(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Particles = 1

	e, err := NewEngine(cfg, RadiusPool{5}, core.NewRNG(1))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	r := e.Run()

	if e.State() != StateDone {
		t.Fatalf("state = %s, want done", e.State())
	}
	if st := e.Stats(); st.Iterations != 0 || st.Deposited != 0 || st.Skipped != 0 {
		t.Fatalf("expected no growth iterations, got %+v", st)
	}

	center := cfg.SeedCenter()
	if center != image.Pt(200, 200) {
		t.Fatalf("seed center = %v, want (200,200)", center)
	}
	want := 0
	for y := 0; y < cfg.ImageSize; y++ {
		for x := 0; x < cfg.ImageSize; x++ {
			dx, dy := x-center.X, y-center.Y
			inside := dx*dx+dy*dy <= 60*60
			if inside {
				want++
			}
			if got := r.IsForeground(x, y); got != inside {
				t.Fatalf("pixel (%d,%d) foreground=%v, want %v", x, y, got, inside)
			}
		}
	}
	if got := r.ForegroundCount(); got != want {
		t.Fatalf("foreground pixels = %d, want %d", got, want)
	}
	if got, bg := countValue(r, r.Background), len(r.Pixels())-want; got != bg {
		t.Fatalf("background pixels = %d, want %d", got, bg)
	}
}

func TestEngineRunsExactBudget(t *testing.T) {
	muteLogs(t)
	cfg := smallConfig()
	pool := BuildRadiusPool(core.NewRNG(cfg.Seed).Source(), cfg.Radius)

	e, err := NewEngine(cfg, pool, core.NewStreamRNG(cfg.Seed, 1))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.Run()

	st := e.Stats()
	if st.Iterations != cfg.Particles-1 {
		t.Fatalf("iterations = %d, want %d", st.Iterations, cfg.Particles-1)
	}
	if st.Deposited+st.Skipped != st.Iterations {
		t.Fatalf("deposited %d + skipped %d != iterations %d", st.Deposited, st.Skipped, st.Iterations)
	}
	if st.Erosive > st.Deposited {
		t.Fatalf("erosive %d exceeds deposited %d", st.Erosive, st.Deposited)
	}
}

func TestEngineContinuesPastEmptyBoundary(t *testing.T) {
	logs := muteLogs(t)
	cfg := DefaultConfig()
	cfg.ImageSize = 60
	cfg.SeedRadius = 5
	cfg.Particles = 10
	cfg.NegativePercent = 100

	e, err := NewEngine(cfg, RadiusPool{50}, core.NewRNG(3))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	r := e.Run()

	st := e.Stats()
	want := Stats{Iterations: 9, Deposited: 1, Skipped: 8, Erosive: 1}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
	if n := r.ForegroundCount(); n != 0 {
		t.Fatalf("expected the erosive particle to clear the grain, %d pixels remain", n)
	}
	if len(*logs) != 8 {
		t.Fatalf("expected one warning per skipped deposit, got %d: %q", len(*logs), *logs)
	}
}

func TestEngineStateTransitions(t *testing.T) {
	cfg := smallConfig()
	cfg.Particles = 3
	e, err := NewEngine(cfg, RadiusPool{4}, core.NewRNG(2))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	if e.State() != StateSeeding || len(e.Boundary()) != 0 {
		t.Fatalf("fresh engine: state %s, boundary %d", e.State(), len(e.Boundary()))
	}
	e.Step()
	if e.State() != StateGrowing || len(e.Boundary()) == 0 {
		t.Fatalf("after seeding: state %s, boundary %d", e.State(), len(e.Boundary()))
	}
	e.Step()
	if e.State() != StateGrowing {
		t.Fatalf("after one iteration: state %s", e.State())
	}
	e.Step()
	if e.State() != StateDone {
		t.Fatalf("after budget: state %s", e.State())
	}

	before := e.Raster().Clone()
	e.Step()
	if e.Stats().Iterations != 2 {
		t.Fatalf("stepping a finished engine changed iterations to %d", e.Stats().Iterations)
	}
	assertSamePixels(t, before, e.Raster())
}

func TestEngineDeterministic(t *testing.T) {
	muteLogs(t)
	cfg := smallConfig()
	pool := BuildRadiusPool(core.NewRNG(11).Source(), cfg.Radius)

	a, _, err := Grow(cfg, pool, core.NewStreamRNG(11, 4))
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	b, _, err := Grow(cfg, pool, core.NewStreamRNG(11, 4))
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if diff := cmp.Diff(a.Pixels(), b.Pixels()); diff != "" {
		t.Fatalf("same seed produced different grains (-a +b):\n%s", diff)
	}
}

func TestNewEngineRejectsEmptyPool(t *testing.T) {
	_, err := NewEngine(DefaultConfig(), nil, core.NewRNG(1))
	if !errors.Is(err, ErrEmptyRadiusPool) {
		t.Fatalf("expected ErrEmptyRadiusPool, got %v", err)
	}
	_, _, err = Grow(DefaultConfig(), RadiusPool{}, core.NewRNG(1))
	if !errors.Is(err, ErrEmptyRadiusPool) {
		t.Fatalf("Grow: expected ErrEmptyRadiusPool, got %v", err)
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Particles = 0
	if _, err := NewEngine(cfg, RadiusPool{3}, core.NewRNG(1)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func countValue(r *Raster, v uint8) int {
	n := 0
	for _, p := range r.Pixels() {
		if p == v {
			n++
		}
	}
	return n
}
