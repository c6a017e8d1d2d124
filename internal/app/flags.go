package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	PPS    int
	Seed   int64
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "regolith", Scale: 1, TPS: 60, PPS: 10, Seed: 1, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.PPS, "pps", c.PPS, "particles deposited per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Func("set", "sim parameter in key=value form (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("%q is not in key=value form", v)
		}
		c.Params[strings.TrimSpace(key)] = strings.TrimSpace(value)
		return nil
	})
}
