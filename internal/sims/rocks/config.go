package rocks

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config controls grid construction and the extrapolation target.
type Config struct {
	// Input is a grid file. When empty a random grid is generated.
	Input string `yaml:"input"`

	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Seed          int64   `yaml:"seed"`
	RollingChance float64 `yaml:"rolling_chance"`
	FixedChance   float64 `yaml:"fixed_chance"`

	Cycles    int `yaml:"cycles"`
	MaxCycles int `yaml:"max_cycles"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         100,
		Height:        100,
		Seed:          42,
		RollingChance: 0.3,
		FixedChance:   0.15,
		Cycles:        DefaultTarget,
		LogLevel:      "warn",
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return Overlay(DefaultConfig(), cfg)
}

// Overlay returns base with every recognised, well-formed key of cfg applied.
// Unparseable values leave the base value in place.
func Overlay(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["input"]; ok {
		c.Input = v
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rolling_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.RollingChance = parsed
		}
	}
	if v, ok := cfg["fixed_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FixedChance = parsed
		}
	}
	if v, ok := cfg["cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cycles = parsed
		}
	}
	if v, ok := cfg["max_cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxCycles = parsed
		}
	}
	if v, ok := cfg["log_level"]; ok {
		if _, err := logrus.ParseLevel(v); err == nil {
			c.LogLevel = v
		}
	}
	return c
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Input == "" && (c.Width <= 0 || c.Height <= 0):
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.RollingChance < 0 || c.RollingChance > 1:
		return fmt.Errorf("%w: rolling_chance %v not in [0,1]", ErrInvalidConfig, c.RollingChance)
	case c.FixedChance < 0 || c.FixedChance > 1:
		return fmt.Errorf("%w: fixed_chance %v not in [0,1]", ErrInvalidConfig, c.FixedChance)
	case c.Cycles < 0:
		return fmt.Errorf("%w: cycles %d", ErrInvalidConfig, c.Cycles)
	case c.MaxCycles < 0:
		return fmt.Errorf("%w: max_cycles %d", ErrInvalidConfig, c.MaxCycles)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the extrapolation settings for Simulate.
func (c Config) Options(log logrus.FieldLogger) Options {
	return Options{Target: c.Cycles, MaxCycles: c.MaxCycles, Logger: log}
}

// InitialGrid parses Input, or generates a random grid from Seed when no
// input is configured.
func (c Config) InitialGrid() (*Grid, error) {
	if c.Input == "" {
		return Random(c.Width, c.Height, c.Seed, c.RollingChance, c.FixedChance), nil
	}
	return ReadFile(c.Input)
}

// ReadFile parses the grid stored at path.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
