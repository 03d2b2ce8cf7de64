package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
)

// TestSearch_RandomGrids checks on many random grids that:
//   - a path is found exactly when the end shares the start's region,
//   - every path is a connected chain of passable neighbors from start to end,
//   - the reported cost equals the replayed cost and is never below the
//     cheapest possible cost,
//   - OnExpand sees exactly Result.Expanded distinct positions.
func TestSearch_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		g := randomGrid(rng)
		seen := map[string]bool{}
		res, err := astar.Search(g, astar.WithOnExpand(func(n *astar.Node) {
			seen[n.Position().String()] = true
		}))
		require.NoError(t, err)
		assert.Len(t, seen, res.Expanded, "grid %d", i)

		assert.Equal(t, g.Reachable(), res.Found, "grid %d\n%s", i, g)

		best := cheapestCost(g)
		if math.IsInf(best, 1) {
			assert.False(t, res.Found, "grid %d: found a path to an unreachable end\n%s", i, g)
			continue
		}
		require.True(t, res.Found, "grid %d: reachable end not found\n%s", i, g)
		checkPath(t, g, res.Path)
		assert.InDelta(t, res.Path.Cost(), res.Cost, costEpsilon)
		assert.GreaterOrEqual(t, res.Cost, best-costEpsilon, "grid %d\n%s", i, g)

		if g.Start() == g.End() {
			assert.Len(t, res.Path, 1)
			assert.Zero(t, res.Cost)
		}
	}
}

// TestSearch_Deterministic runs the same grid twice and expects identical
// paths and statistics.
func TestSearch_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		g := randomGrid(rng)
		a, err := astar.Search(g)
		require.NoError(t, err)
		b, err := astar.Search(g)
		require.NoError(t, err)

		assert.Equal(t, a.Found, b.Found)
		assert.Equal(t, a.Expanded, b.Expanded)
		assert.Equal(t, a.Path.Positions(), b.Path.Positions())
	}
}
