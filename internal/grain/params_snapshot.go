package grain

import (
	"strconv"

	"regolith/internal/core"
)

// Parameters describes the run configuration for display and logging.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("image_size", "Image size", c.ImageSize),
				intParam("n_regolith_grains", "Grains", c.Grains),
				intParam("n_particles", "Particles per grain", c.Particles),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Radii",
			Params: []core.Parameter{
				floatParam("mean_radius", "Mean radius", c.Radius.Mean),
				intParam("radius_sample_count", "Sample count", c.Radius.Count),
				floatParam("radius_scale_factor", "Scale factor", c.Radius.ScaleFactor),
				floatParam("min_radius", "Min radius", c.Radius.Min),
				floatParam("max_radius", "Max radius", c.Radius.Max),
				floatParam("seed_radius", "Seed radius", c.SeedRadius),
			},
		},
		{
			Name: "Particles",
			Params: []core.Parameter{
				intParam("negative_particle_percent", "Erosive %", c.NegativePercent),
				intParam("foreground_value", "Foreground value", int(c.Foreground)),
				intParam("background_value", "Background value", int(c.Background)),
			},
		},
	}}
}

// Parameters extends the configuration snapshot with live growth counters.
func (s *Sim) Parameters() core.ParameterSnapshot {
	snap := s.cfg.Parameters()
	growth := core.ParameterGroup{Name: "Growth", Summary: "not started"}
	if s.engine != nil {
		st := s.engine.Stats()
		growth.Summary = s.engine.State().String()
		growth.Params = []core.Parameter{
			intParam("pool_size", "Radius pool", len(s.pool)),
			intParam("iterations", "Iterations", st.Iterations),
			intParam("deposited", "Deposited", st.Deposited),
			intParam("skipped", "Skipped", st.Skipped),
			intParam("erosive", "Erosive", st.Erosive),
			intParam("boundary", "Boundary pixels", len(s.engine.Boundary())),
		}
	}
	snap.Groups = append(snap.Groups, growth)
	return snap
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
