package rocks

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"rockwash/internal/core"
	pkgcore "rockwash/pkg/core"
)

// Grid is a fixed-size rectangle of tiles stored row-major.
type Grid struct {
	cells *core.ByteGrid
}

// NewGrid returns an all-empty grid. Dimensions below 1 are clamped to 1.
func NewGrid(w, h int) *Grid {
	return &Grid{cells: core.NewByteGrid(w, h)}
}

// Parse reads one tile row per line. Trailing blank lines and carriage
// returns are ignored; anything else outside ".O#" is rejected.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rocks: reading grid: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return fromRows(rows)
}

// ParseString is Parse over an in-memory block.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

func fromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		// Columns count characters, so non-ASCII input is reported as typed.
		x := 0
		for _, r := range row {
			t, err := ParseTile(r)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d, column %d", err, y+1, x+1)
			}
			if x < w {
				g.Set(x, y, t)
			}
			x++
		}
		if x != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedInput, y+1, x, w)
		}
	}
	return g, nil
}

// Random fills a w*h grid from seed. Each position becomes a fixed rock with
// probability fixed, otherwise a rolling rock with probability rolling.
func Random(w, h int, seed int64, rolling, fixed float64) *Grid {
	g := NewGrid(w, h)
	rng := pkgcore.NewRNG(seed)
	cells := g.cells.Cells()
	for i := range cells {
		switch {
		case rng.Chance(fixed):
			cells[i] = uint8(FixedRock)
		case rng.Chance(rolling):
			cells[i] = uint8(RollingRock)
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// At returns the tile at column x, row y.
func (g *Grid) At(x, y int) Tile { return Tile(g.cells.At(x, y)) }

// Set stores t at column x, row y.
func (g *Grid) Set(x, y int, t Tile) { g.cells.Set(x, y, uint8(t)) }

// Cells exposes the row-major tile bytes.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid { return &Grid{cells: g.cells.Clone()} }

// Counts returns how many positions hold each tile, indexed by Tile.
func (g *Grid) Counts() [3]int {
	var out [3]int
	for _, c := range g.cells.Cells() {
		if int(c) < len(out) {
			out[c]++
		}
	}
	return out
}

// String renders the grid in input notation, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			b.WriteByte(g.At(x, y).Byte())
		}
	}
	return b.String()
}
