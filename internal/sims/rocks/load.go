package rocks

// Load sums, over every rolling rock, its distance in rows from the bottom
// edge plus one.
func (g *Grid) Load() int {
	total := 0
	for _, l := range g.RowLoads() {
		total += l
	}
	return total
}

// RowLoads returns each row's contribution to Load.
func (g *Grid) RowLoads() []int {
	h := g.Height()
	out := make([]int, h)
	for y := 0; y < h; y++ {
		row := g.cells.Row(y)
		for x, n := 0, row.Len(); x < n; x++ {
			if Tile(row.At(x)) == RollingRock {
				out[y] += h - y
			}
		}
	}
	return out
}

// NorthLoad reports the load after a single north tilt, leaving g untouched.
func NorthLoad(g *Grid) int {
	c := g.Clone()
	c.Tilt(North)
	return c.Load()
}
