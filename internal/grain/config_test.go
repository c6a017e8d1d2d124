package grain

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.SeedCenter() != image.Pt(200, 200) {
		t.Fatalf("seed center = %v", cfg.SeedCenter())
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"size":        func(c *Config) { c.ImageSize = 0 },
		"grains":      func(c *Config) { c.Grains = 0 },
		"particles":   func(c *Config) { c.Particles = 0 },
		"samples":     func(c *Config) { c.Radius.Count = 0 },
		"mean":        func(c *Config) { c.Radius.Mean = -1 },
		"scale":       func(c *Config) { c.Radius.ScaleFactor = 0 },
		"bounds":      func(c *Config) { c.Radius.Min, c.Radius.Max = 10, 5 },
		"percent":     func(c *Config) { c.NegativePercent = 101 },
		"same values": func(c *Config) { c.Foreground = c.Background },
		"seed radius": func(c *Config) { c.SeedRadius = -1 },
		"nan mean":    func(c *Config) { c.Radius.Mean = math.NaN() },
		"nan min":     func(c *Config) { c.Radius.Min = math.NaN() },
		"nan max":     func(c *Config) { c.Radius.Max = math.NaN() },
		"inf scale":   func(c *Config) { c.Radius.ScaleFactor = math.Inf(1) },
		"inf seed":    func(c *Config) { c.SeedRadius = math.Inf(1) },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestValidateRejectsNonFiniteOverrides(t *testing.T) {
	for _, kv := range [][2]string{
		{"mean_radius", "nan"},
		{"min_radius", "NaN"},
		{"max_radius", "+Inf"},
		{"seed_radius", "inf"},
	} {
		cfg := DefaultConfig()
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set(%s, %s): %v", kv[0], kv[1], err)
		}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s=%s: expected ErrInvalidConfig, got %v", kv[0], kv[1], err)
		}
	}
}

func TestConfigSetAndApply(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Apply(map[string]string{
		"image_size":                "256",
		"negative_particle_percent": "12",
		"mean_radius":               "2.5",
		"foreground_value":          "255",
		"background_value":          "0",
		"seed":                      "-4",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.ImageSize != 256 || cfg.NegativePercent != 12 || cfg.Radius.Mean != 2.5 ||
		cfg.Foreground != 255 || cfg.Background != 0 || cfg.Seed != -4 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	if err := cfg.Set("nope", "1"); err == nil {
		t.Fatal("expected unknown key to fail")
	}
	if err := cfg.Set("foreground_value", "300"); err == nil {
		t.Fatal("expected out-of-range pixel value to fail")
	}
	if err := cfg.Apply(map[string]string{"n_particles": "many"}); err == nil {
		t.Fatal("expected unparsable value to fail")
	}
}

func TestFromMapSkipsInvalid(t *testing.T) {
	muteLogs(t)
	cfg := FromMap(map[string]string{"n_particles": "7", "max_radius": "x", "bogus": "1"})
	def := DefaultConfig()
	if cfg.Particles != 7 {
		t.Fatalf("n_particles = %d, want 7", cfg.Particles)
	}
	if cfg.Radius.Max != def.Radius.Max {
		t.Fatalf("max_radius = %f, want default %f", cfg.Radius.Max, def.Radius.Max)
	}
}

func TestKeysCoverSnapshot(t *testing.T) {
	snap := DefaultConfig().Parameters()
	for _, k := range Keys() {
		if _, ok := snap.Lookup(k); !ok {
			t.Fatalf("config key %q missing from parameter snapshot", k)
		}
	}
}

func TestSeedCenterRoundsDown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageSize = 100
	if got, want := cfg.SeedCenter(), image.Pt(33, 33); got != want {
		t.Fatalf("SeedCenter() = %v, want %v", got, want)
	}
}
