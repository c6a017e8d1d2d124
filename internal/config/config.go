// Package config loads run configuration files. A file only needs to name the
// parameters it overrides; everything else keeps its default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"regolith/internal/grain"
)

// RunConfig mirrors grain.Config with optional fields so partial files are
// safe. Keys match the -set flag names.
type RunConfig struct {
	ImageSize *int   `json:"image_size,omitempty"`
	Grains    *int   `json:"n_regolith_grains,omitempty"`
	Particles *int   `json:"n_particles,omitempty"`
	Seed      *int64 `json:"seed,omitempty"`

	MeanRadius        *float64 `json:"mean_radius,omitempty"`
	RadiusSampleCount *int     `json:"radius_sample_count,omitempty"`
	RadiusScaleFactor *float64 `json:"radius_scale_factor,omitempty"`
	MinRadius         *float64 `json:"min_radius,omitempty"`
	MaxRadius         *float64 `json:"max_radius,omitempty"`
	SeedRadius        *float64 `json:"seed_radius,omitempty"`

	NegativeParticlePercent *int   `json:"negative_particle_percent,omitempty"`
	ForegroundValue         *uint8 `json:"foreground_value,omitempty"`
	BackgroundValue         *uint8 `json:"background_value,omitempty"`
}

// Load reads a RunConfig from a JSON file. The file must have a .json
// extension and be at most 1MB. Unknown fields are rejected so typos do not
// silently fall back to defaults.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var rc RunConfig
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}
	return &rc, nil
}

// ApplyTo copies every field present in the file onto cfg.
func (rc *RunConfig) ApplyTo(cfg *grain.Config) {
	if rc == nil || cfg == nil {
		return
	}
	setInt(&cfg.ImageSize, rc.ImageSize)
	setInt(&cfg.Grains, rc.Grains)
	setInt(&cfg.Particles, rc.Particles)
	if rc.Seed != nil {
		cfg.Seed = *rc.Seed
	}

	setFloat(&cfg.Radius.Mean, rc.MeanRadius)
	setInt(&cfg.Radius.Count, rc.RadiusSampleCount)
	setFloat(&cfg.Radius.ScaleFactor, rc.RadiusScaleFactor)
	setFloat(&cfg.Radius.Min, rc.MinRadius)
	setFloat(&cfg.Radius.Max, rc.MaxRadius)
	setFloat(&cfg.SeedRadius, rc.SeedRadius)

	setInt(&cfg.NegativePercent, rc.NegativeParticlePercent)
	if rc.ForegroundValue != nil {
		cfg.Foreground = *rc.ForegroundValue
	}
	if rc.BackgroundValue != nil {
		cfg.Background = *rc.BackgroundValue
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
