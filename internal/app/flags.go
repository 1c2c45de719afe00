package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim        string
	Input      string
	ConfigPath string
	Scale      int
	TPS        int
	CPS        int
	Seed       int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "rocks", Scale: 6, TPS: 60, CPS: 4, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Input, "input", c.Input, "grid file to load instead of a random grid")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.CPS, "cps", c.CPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random grid (overrides the config file)")
}

// SimConfig converts the flags into the key/value form sim factories take.
// Empty values are omitted, and seed is passed only when -seed was set on fs,
// so factory defaults and config files still apply.
func (c *Config) SimConfig(fs *flag.FlagSet) map[string]string {
	out := map[string]string{}
	if c.Input != "" {
		out["input"] = c.Input
	}
	if c.ConfigPath != "" {
		out["config"] = c.ConfigPath
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			out["seed"] = strconv.FormatInt(c.Seed, 10)
		}
	})
	return out
}
