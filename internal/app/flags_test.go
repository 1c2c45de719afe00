package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rockwash/internal/core"
	"rockwash/internal/sims/rocks"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, fs
}

func TestConfigBind(t *testing.T) {
	cfg, fs := parse(t, "-input", "grid.txt", "-cps", "10", "-seed", "3")
	require.Equal(t, "rocks", cfg.Sim)
	require.Equal(t, 10, cfg.CPS)
	require.Equal(t, int64(3), cfg.Seed)
	require.Equal(t, map[string]string{"input": "grid.txt", "seed": "3"}, cfg.SimConfig(fs))
}

func TestSimConfigEmpty(t *testing.T) {
	cfg, fs := parse(t)
	require.Empty(t, cfg.SimConfig(fs))
}

func TestSimConfigKeepsConfigFileSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 8\nheight: 5\nseed: 7\n"), 0o644))

	cfg, fs := parse(t, "-config", path)
	sim, err := core.New(cfg.Sim, cfg.SimConfig(fs))
	require.NoError(t, err)
	viewer, ok := sim.(Sim)
	require.True(t, ok)
	require.Equal(t, int64(7), viewer.Seed())

	cfg, fs = parse(t, "-config", path, "-seed", "42")
	sim, err = core.New(cfg.Sim, cfg.SimConfig(fs))
	require.NoError(t, err)
	require.Equal(t, int64(42), sim.(*rocks.Sim).Seed())
}
