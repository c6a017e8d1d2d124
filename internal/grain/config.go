package grain

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
	"strconv"

	"regolith/internal/monitoring"
)

// ErrInvalidConfig wraps every validation failure reported by Config.Validate.
var ErrInvalidConfig = errors.New("invalid grain config")

// Config holds the run-level parameters of a growth run.
type Config struct {
	ImageSize int
	Grains    int
	Particles int

	Seed int64

	Radius RadiusParams

	NegativePercent int
	Foreground      uint8
	Background      uint8

	SeedRadius float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ImageSize: 600,
		Grains:    20,
		Particles: 100,
		Seed:      1,
		Radius: RadiusParams{
			Count:       1000,
			Mean:        3,
			ScaleFactor: 10,
			Min:         1,
			Max:         50,
		},
		NegativePercent: 5,
		Foreground:      0,
		Background:      1,
		SeedRadius:      60,
	}
}

// SeedCenter is where the seed particle goes: one third of the way along each
// axis, rounded down to a whole pixel.
func (c Config) SeedCenter() image.Point {
	return image.Pt(c.ImageSize/3, c.ImageSize/3)
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"mean_radius", c.Radius.Mean},
		{"radius_scale_factor", c.Radius.ScaleFactor},
		{"min_radius", c.Radius.Min},
		{"max_radius", c.Radius.Max},
		{"seed_radius", c.SeedRadius},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %g: %w", f.key, f.v, ErrInvalidConfig)
		}
	}
	switch {
	case c.ImageSize <= 0:
		return fmt.Errorf("image_size must be positive, got %d: %w", c.ImageSize, ErrInvalidConfig)
	case c.Grains < 1:
		return fmt.Errorf("n_regolith_grains must be at least 1, got %d: %w", c.Grains, ErrInvalidConfig)
	case c.Particles < 1:
		return fmt.Errorf("n_particles must be at least 1, got %d: %w", c.Particles, ErrInvalidConfig)
	case c.Radius.Count <= 0:
		return fmt.Errorf("radius_sample_count must be positive, got %d: %w", c.Radius.Count, ErrInvalidConfig)
	case c.Radius.Mean <= 0:
		return fmt.Errorf("mean_radius must be positive, got %g: %w", c.Radius.Mean, ErrInvalidConfig)
	case c.Radius.ScaleFactor <= 0:
		return fmt.Errorf("radius_scale_factor must be positive, got %g: %w", c.Radius.ScaleFactor, ErrInvalidConfig)
	case c.Radius.Min < 0 || c.Radius.Min > c.Radius.Max:
		return fmt.Errorf("radius bounds [%g, %g] are not a valid range: %w", c.Radius.Min, c.Radius.Max, ErrInvalidConfig)
	case c.NegativePercent < 0 || c.NegativePercent > 100:
		return fmt.Errorf("negative_particle_percent must be within 0-100, got %d: %w", c.NegativePercent, ErrInvalidConfig)
	case c.Foreground == c.Background:
		return fmt.Errorf("foreground_value and background_value are both %d: %w", c.Foreground, ErrInvalidConfig)
	case c.SeedRadius < 0:
		return fmt.Errorf("seed_radius must not be negative, got %g: %w", c.SeedRadius, ErrInvalidConfig)
	}
	return nil
}

type setter func(c *Config, v string) error

var setters = map[string]setter{
	"image_size":                func(c *Config, v string) error { return parseInt(v, &c.ImageSize) },
	"n_regolith_grains":         func(c *Config, v string) error { return parseInt(v, &c.Grains) },
	"n_particles":               func(c *Config, v string) error { return parseInt(v, &c.Particles) },
	"seed":                      func(c *Config, v string) error { return parseInt64(v, &c.Seed) },
	"mean_radius":               func(c *Config, v string) error { return parseFloat(v, &c.Radius.Mean) },
	"radius_sample_count":       func(c *Config, v string) error { return parseInt(v, &c.Radius.Count) },
	"radius_scale_factor":       func(c *Config, v string) error { return parseFloat(v, &c.Radius.ScaleFactor) },
	"min_radius":                func(c *Config, v string) error { return parseFloat(v, &c.Radius.Min) },
	"max_radius":                func(c *Config, v string) error { return parseFloat(v, &c.Radius.Max) },
	"negative_particle_percent": func(c *Config, v string) error { return parseInt(v, &c.NegativePercent) },
	"foreground_value":          func(c *Config, v string) error { return parseUint8(v, &c.Foreground) },
	"background_value":          func(c *Config, v string) error { return parseUint8(v, &c.Background) },
	"seed_radius":               func(c *Config, v string) error { return parseFloat(v, &c.SeedRadius) },
}

// Keys returns the recognised configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns a single key=value override.
func (c *Config) Set(key, value string) error {
	s, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown parameter %q", key)
	}
	if err := s(c, value); err != nil {
		return fmt.Errorf("parameter %s: %w", key, err)
	}
	return nil
}

// Apply assigns every override in kv, stopping at the first error. Keys are
// applied in sorted order so the outcome does not depend on map iteration.
func (c *Config) Apply(kv map[string]string) error {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.Set(k, kv[k]); err != nil {
			return err
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are logged and skipped.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	for k, v := range cfg {
		if err := c.Set(k, v); err != nil {
			monitoring.Logf("grain: ignoring override: %v", err)
		}
	}
	return c
}

func parseInt(v string, dst *int) error {
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

func parseInt64(v string, dst *int64) error {
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

func parseFloat(v string, dst *float64) error {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

func parseUint8(v string, dst *uint8) error {
	parsed, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return err
	}
	*dst = uint8(parsed)
	return nil
}
