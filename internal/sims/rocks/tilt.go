package rocks

import "rockwash/internal/core"

// Direction is the way rolling rocks travel during a tilt.
type Direction uint8

const (
	North Direction = iota
	West
	South
	East
)

// WashOrder is the sequence of tilts making up one wash cycle.
var WashOrder = [...]Direction{North, West, South, East}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	}
	return "unknown"
}

// Compact rolls every rolling rock in line toward index 0 until it meets a
// fixed rock, the start of the line, or a rock that already settled.
func Compact(line core.LineView) {
	free := 0
	for i, n := 0, line.Len(); i < n; i++ {
		switch Tile(line.At(i)) {
		case FixedRock:
			free = i + 1
		case RollingRock:
			if i != free {
				line.Set(free, uint8(RollingRock))
				line.Set(i, uint8(Empty))
			}
			free++
		}
	}
}

// line returns the i-th line of g oriented so that index 0 is the edge the
// rocks roll toward when tilting in d.
func (g *Grid) line(d Direction, i int) core.LineView {
	switch d {
	case North:
		return g.cells.Column(i)
	case South:
		return core.Reverse(g.cells.Column(i))
	case West:
		return g.cells.Row(i)
	default:
		return core.Reverse(g.cells.Row(i))
	}
}

// lines returns how many lines a tilt in d compacts.
func (g *Grid) lines(d Direction) int {
	if d == North || d == South {
		return g.Width()
	}
	return g.Height()
}

// Tilt rolls every rolling rock as far as it goes in d.
func (g *Grid) Tilt(d Direction) {
	for i, n := 0, g.lines(d); i < n; i++ {
		Compact(g.line(d, i))
	}
}

// Cycle applies one wash cycle: tilts north, west, south, then east.
func (g *Grid) Cycle() {
	for _, d := range WashOrder {
		g.Tilt(d)
	}
}
