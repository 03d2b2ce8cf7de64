package grid

// neighbors8 lists the 8 neighbor offsets of a cell.
var neighbors8 = [8]Position{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Regions finds all 8-connected regions of passable cells. Each region lists
// its positions in breadth-first order from its top-left-most cell; regions
// are ordered by that first cell in row-major order.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() [][]Position {
	seen := make([]bool, g.rows*g.cols)
	var regions [][]Position

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			if !g.Passable(p) || seen[g.index(p)] {
				continue
			}
			regions = append(regions, g.flood(p, seen))
		}
	}
	return regions
}

// RegionOf returns the 8-connected passable region containing p, or nil
// when p is out of bounds or an obstacle.
func (g *Grid) RegionOf(p Position) []Position {
	if !g.Passable(p) {
		return nil
	}
	return g.flood(p, make([]bool, g.rows*g.cols))
}

// Reachable reports whether the end lies in the start's region, i.e. whether
// any path exists at all.
func (g *Grid) Reachable() bool {
	for _, p := range g.RegionOf(g.start) {
		if p == g.end {
			return true
		}
	}
	return false
}

// flood collects the region around from by BFS, marking cells in seen.
func (g *Grid) flood(from Position, seen []bool) []Position {
	queue := []Position{from}
	seen[g.index(from)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range neighbors8 {
			v := u.Add(d)
			if !g.Passable(v) {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// index maps p to its row-major offset.
func (g *Grid) index(p Position) int { return p.Row*g.cols + p.Col }
