package rocks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":              "12",
		"h":              "0",
		"seed":           "-4",
		"rolling_chance": "0.5",
		"fixed_chance":   "1.5",
		"cycles":         "77",
		"max_cycles":     "nope",
		"log_level":      "debug",
		"input":          "grid.txt",
	})
	def := DefaultConfig()
	require.Equal(t, 12, c.Width)
	require.Equal(t, def.Height, c.Height)
	require.Equal(t, int64(-4), c.Seed)
	require.Equal(t, 0.5, c.RollingChance)
	require.Equal(t, def.FixedChance, c.FixedChance)
	require.Equal(t, 77, c.Cycles)
	require.Equal(t, def.MaxCycles, c.MaxCycles)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, "grid.txt", c.Input)

	require.Equal(t, def, FromMap(nil))
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("testdata/config.yaml")
	require.NoError(t, err)
	require.Equal(t, "testdata/example.txt", c.Input)
	require.Equal(t, 1000, c.Cycles)
	require.Equal(t, 500, c.MaxCycles)
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, DefaultConfig().Width, c.Width)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cycles: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	require.ErrorContains(t, err, "bad.yaml")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("fixed_chance: 2\n"), 0o644))
	_, err = LoadConfig(invalid)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := map[string]func(*Config){
		"size":       func(c *Config) { c.Width = 0 },
		"rolling":    func(c *Config) { c.RollingChance = -0.1 },
		"fixed":      func(c *Config) { c.FixedChance = 1.1 },
		"cycles":     func(c *Config) { c.Cycles = -1 },
		"max cycles": func(c *Config) { c.MaxCycles = -1 },
		"log level":  func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	// Size is irrelevant once an input file supplies the grid.
	c := DefaultConfig()
	c.Width = 0
	c.Input = "grid.txt"
	require.NoError(t, c.Validate())
}

func TestInitialGrid(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height = 8, 6
	g, err := c.InitialGrid()
	require.NoError(t, err)
	require.Equal(t, 8, g.Width())
	require.Equal(t, 6, g.Height())

	c.Input = "testdata/example.txt"
	g, err = c.InitialGrid()
	require.NoError(t, err)
	require.Equal(t, example, g.String())

	opts := c.Options(nil)
	require.Equal(t, c.Cycles, opts.Target)
	require.Equal(t, c.MaxCycles, opts.MaxCycles)
}
