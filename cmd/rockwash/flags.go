package main

import (
	"flag"
	"fmt"

	"rockwash/internal/sims/rocks"
)

// Config represents the command-line parameters for the solver.
type Config struct {
	ConfigPath string
	Input      string
	Part       int
	Cycles     int
	MaxCycles  int
	LogLevel   string
}

// NewConfig returns a Config populated from the simulator defaults.
func NewConfig() *Config {
	def := rocks.DefaultConfig()
	return &Config{
		Input:     "-",
		Part:      2,
		Cycles:    def.Cycles,
		MaxCycles: def.MaxCycles,
		LogLevel:  def.LogLevel,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file; flags given explicitly override it")
	fs.StringVar(&c.Input, "input", c.Input, "grid file, - for stdin")
	fs.IntVar(&c.Part, "part", c.Part, "1: load after a single north tilt, 2: load after -cycles wash cycles")
	fs.IntVar(&c.Cycles, "cycles", c.Cycles, "number of wash cycles to report the load for")
	fs.IntVar(&c.MaxCycles, "max-cycles", c.MaxCycles, "give up when no repeat is found within this many cycles (0 = never)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logrus level: debug, info, warn, error")
}

// Resolve merges the optional config file with the flags fs saw explicitly.
func (c *Config) Resolve(fs *flag.FlagSet) (rocks.Config, error) {
	rc := rocks.DefaultConfig()
	rc.Input = c.Input
	if c.ConfigPath != "" {
		loaded, err := rocks.LoadConfig(c.ConfigPath)
		if err != nil {
			return rc, err
		}
		rc = loaded
		if rc.Input == "" {
			rc.Input = c.Input
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			rc.Input = c.Input
		case "cycles":
			rc.Cycles = c.Cycles
		case "max-cycles":
			rc.MaxCycles = c.MaxCycles
		case "log-level":
			rc.LogLevel = c.LogLevel
		}
	})
	if c.Part != 1 && c.Part != 2 {
		return rc, fmt.Errorf("%w: part %d, want 1 or 2", rocks.ErrInvalidConfig, c.Part)
	}
	return rc, rc.Validate()
}
