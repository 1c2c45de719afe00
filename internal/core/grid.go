package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Row returns a view over row y.
func (g *ByteGrid) Row(y int) LineView { return rowView{g: g, y: y} }

// Column returns a view over column x.
func (g *ByteGrid) Column(x int) LineView { return columnView{g: g, x: x} }

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// LineView addresses one line of a grid by position, independent of whether
// the line is laid out contiguously in memory.
type LineView interface {
	Len() int
	At(i int) uint8
	Set(i int, v uint8)
}

type rowView struct {
	g *ByteGrid
	y int
}

func (r rowView) Len() int           { return r.g.W }
func (r rowView) At(i int) uint8     { return r.g.data[r.y*r.g.W+i] }
func (r rowView) Set(i int, v uint8) { r.g.data[r.y*r.g.W+i] = v }

type columnView struct {
	g *ByteGrid
	x int
}

func (c columnView) Len() int           { return c.g.H }
func (c columnView) At(i int) uint8     { return c.g.data[i*c.g.W+c.x] }
func (c columnView) Set(i int, v uint8) { c.g.data[i*c.g.W+c.x] = v }

type reversedView struct {
	l LineView
}

func (r reversedView) Len() int           { return r.l.Len() }
func (r reversedView) At(i int) uint8     { return r.l.At(r.l.Len() - 1 - i) }
func (r reversedView) Set(i int, v uint8) { r.l.Set(r.l.Len()-1-i, v) }

// Reverse returns a view that indexes l from its far end.
func Reverse(l LineView) LineView {
	if r, ok := l.(reversedView); ok {
		return r.l
	}
	return reversedView{l: l}
}
