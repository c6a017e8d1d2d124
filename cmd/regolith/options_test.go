package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func parse(t *testing.T, args ...string) *options {
	t.Helper()
	fs := flag.NewFlagSet("regolith", flag.ContinueOnError)
	o := newOptions()
	o.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return o
}

func TestRunConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte(`{"image_size": 300, "n_particles": 50, "seed": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}

	o := parse(t, "-config", path, "-set", "n_particles=75", "-set", " negative_particle_percent = 0 ", "-seed", "9")
	cfg, err := o.runConfig()
	if err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if cfg.ImageSize != 300 {
		t.Fatalf("image_size = %d, want 300 from file", cfg.ImageSize)
	}
	if cfg.Particles != 75 {
		t.Fatalf("n_particles = %d, want -set to win over file", cfg.Particles)
	}
	if cfg.NegativePercent != 0 {
		t.Fatalf("negative_particle_percent = %d, want 0", cfg.NegativePercent)
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed = %d, want -seed to win over file", cfg.Seed)
	}
}

func TestRunConfigKeepsFileSeedWithoutFlag(t *testing.T) {
	o := parse(t, "-set", "seed=12")
	cfg, err := o.runConfig()
	if err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if cfg.Seed != 12 {
		t.Fatalf("seed = %d, want 12", cfg.Seed)
	}
}

func TestRunConfigRejectsBadOverrides(t *testing.T) {
	for _, arg := range []string{"n_particles", "unknown=1", "n_particles=0"} {
		o := parse(t, "-set", arg)
		if _, err := o.runConfig(); err == nil {
			t.Fatalf("expected -set %q to fail", arg)
		}
	}
}
