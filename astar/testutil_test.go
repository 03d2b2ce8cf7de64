package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

const costEpsilon = 1e-9

// mustParse builds a grid from text or fails the test.
func mustParse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(text)
	require.NoError(t, err)
	return g
}

// cheapestCost runs a plain Dijkstra over the same movement model
// (multiplier × destination weight, 8 directions) and returns the minimum
// cost from start to end, or +Inf when the end is unreachable.
func cheapestCost(g *grid.Grid) float64 {
	offsets := []struct {
		d grid.Position
		m float64
	}{
		{grid.Position{Row: -1, Col: 0}, 1}, {grid.Position{Row: 1, Col: 0}, 1},
		{grid.Position{Row: 0, Col: -1}, 1}, {grid.Position{Row: 0, Col: 1}, 1},
		{grid.Position{Row: -1, Col: -1}, math.Sqrt2}, {grid.Position{Row: -1, Col: 1}, math.Sqrt2},
		{grid.Position{Row: 1, Col: -1}, math.Sqrt2}, {grid.Position{Row: 1, Col: 1}, math.Sqrt2},
	}
	dist := map[grid.Position]float64{g.Start(): 0}
	done := map[grid.Position]bool{}
	for {
		var u grid.Position
		best := math.Inf(1)
		for p, d := range dist {
			if !done[p] && d < best {
				u, best = p, d
			}
		}
		if math.IsInf(best, 1) {
			return best
		}
		if u == g.End() {
			return best
		}
		done[u] = true
		for _, o := range offsets {
			v := u.Add(o.d)
			if !g.Passable(v) || done[v] {
				continue
			}
			w, _ := g.WeightAt(v)
			nd := best + o.m*float64(w)
			if old, ok := dist[v]; !ok || nd < old {
				dist[v] = nd
			}
		}
	}
}

// checkPath asserts the structural invariants every returned path must hold.
func checkPath(t *testing.T, g *grid.Grid, path astar.Path) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start(), path[0].Position(), "path must begin at start")
	assert.Equal(t, g.End(), path[len(path)-1].Position(), "path must end at end")
	assert.Nil(t, path[0].Parent(), "start node has no parent")
	assert.Zero(t, path[0].G())

	seen := make(map[grid.Position]bool, len(path))
	for i, n := range path {
		p := n.Position()
		assert.False(t, seen[p], "position %s repeated", p)
		seen[p] = true
		assert.True(t, g.Passable(p), "position %s is not passable", p)
		assert.Equal(t, float64(p.Manhattan(g.End())), n.H(), "h at %s", p)
		if i == 0 {
			continue
		}
		prev := path[i-1].Position()
		dr, dc := p.Row-prev.Row, p.Col-prev.Col
		assert.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1 && (dr != 0 || dc != 0),
			"step %s → %s is not a neighbor move", prev, p)
		assert.Same(t, path[i-1], n.Parent(), "parent link at %d", i)
	}

	replayed, err := path.Replay(g)
	require.NoError(t, err)
	for i, n := range path {
		assert.InDelta(t, replayed[i], n.G(), costEpsilon, "g at step %d", i)
	}
}

// randomGrid returns a grid of 1..8 rows and columns with ~25% obstacles
// and weights 0..8 elsewhere. Start and end may coincide.
func randomGrid(rng *rand.Rand) *grid.Grid {
	rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
	weights := make([][]int, rows)
	for r := range weights {
		weights[r] = make([]int, cols)
		for c := range weights[r] {
			if rng.Float64() < 0.25 {
				weights[r][c] = grid.DefaultObstacleThreshold
			} else {
				weights[r][c] = rng.Intn(grid.DefaultObstacleThreshold)
			}
		}
	}
	start := grid.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	end := grid.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	g, err := grid.FromWeights(weights, start, end, grid.DefaultOptions())
	if err != nil {
		panic(err)
	}
	return g
}
