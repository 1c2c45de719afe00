package rocks

import (
	"image/color"

	"rockwash/internal/core"
)

// Sim steps a grid one wash cycle at a time and tracks its history so the
// long-run load can be projected as soon as the states start repeating.
type Sim struct {
	cfg     Config
	initial *Grid

	grid    *Grid
	history *History
	cycles  int
	fp      Fingerprint
	seed    int64
}

// New builds a Sim from cfg. A configured input file is parsed once; Reset
// restores that grid regardless of seed.
func New(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := cfg.InitialGrid()
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg}
	if cfg.Input != "" {
		s.initial = g.Clone()
	}
	s.start(g, cfg.Seed)
	return s, nil
}

// NewFromGrid builds a Sim that starts from a copy of g.
func NewFromGrid(g *Grid, cfg Config) *Sim {
	s := &Sim{cfg: cfg, initial: g.Clone()}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "rocks" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Cells exposes the tile bytes, usable as palette indices.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Seed reports the seed of the last Reset.
func (s *Sim) Seed() int64 { return s.seed }

// Reset restarts from the input grid, or from a fresh random grid for seed.
func (s *Sim) Reset(seed int64) {
	if s.initial != nil {
		s.start(s.initial.Clone(), seed)
		return
	}
	s.start(Random(s.cfg.Width, s.cfg.Height, seed, s.cfg.RollingChance, s.cfg.FixedChance), seed)
}

func (s *Sim) start(g *Grid, seed int64) {
	s.seed = seed
	s.grid = g
	s.history = NewHistory()
	s.cycles = 0
	s.fp = g.Fingerprint()
}

// Step applies one wash cycle.
func (s *Sim) Step() {
	s.grid.Cycle()
	s.cycles++
	s.fp = s.grid.Fingerprint()
	s.history.Record(s.fp, s.grid.Load())
}

// Grid exposes the live grid.
func (s *Sim) Grid() *Grid { return s.grid }

// History exposes the cycles recorded since the last Reset.
func (s *Sim) History() *History { return s.history }

// Cycles reports how many wash cycles ran since the last Reset.
func (s *Sim) Cycles() int { return s.cycles }

// Projected returns the load after the configured target once a loop has
// been observed.
func (s *Sim) Projected() (int, bool) {
	if s.cfg.Cycles == 0 {
		return s.grid.Load(), s.cycles == 0
	}
	load, err := s.history.LoadAt(s.cfg.Cycles)
	if err != nil {
		return 0, false
	}
	return load, true
}

// RowLoads returns each row's share of the current load.
func (s *Sim) RowLoads() []int { return s.grid.RowLoads() }

var palette = []color.RGBA{
	Empty:       {R: 24, G: 22, B: 28, A: 255},
	RollingRock: {R: 222, G: 184, B: 108, A: 255},
	FixedRock:   {R: 112, G: 118, B: 130, A: 255},
}

// Palette maps tile values to display colours.
func (s *Sim) Palette() []color.RGBA { return palette }

func init() {
	core.Register("rocks", func(cfg map[string]string) (core.Sim, error) {
		path := cfg["config"]
		if path == "" {
			return New(FromMap(cfg))
		}
		base, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		return New(Overlay(base, cfg))
	})
}
