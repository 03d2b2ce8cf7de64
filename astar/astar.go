package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath runs A* from g.Start() to g.End() and returns the path in
// start → end order. The boolean is false when no path exists.
// A nil grid also reports false.
func FindPath(g *grid.Grid) (Path, bool) {
	res, err := Search(g)
	if err != nil || !res.Found {
		return nil, false
	}

	return res.Path, true
}

// Search runs A* over g and reports the outcome together with search
// statistics. Hooks supplied through opts observe the open and closed sets.
//
// Returns:
//
//   - Result.Found == true with the full path and its cost, or
//   - Result.Found == false when every route to the end is blocked.
//   - err: ErrNilGrid for a nil grid; otherwise nil.
//
// Complexity:
//
//   - Time:  O(N log N), N = Rows×Cols
//   - Space: O(N)
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:         g,
		options:   cfg,
		goal:      g.End(),
		threshold: g.ObstacleThreshold(),
		open:      newOpenSet(g.Rows() + g.Cols()),
		closed:    make(map[grid.Position]struct{}, g.Rows()*g.Cols()),
	}
	r.init()
	goal, err := r.process()
	if err != nil {
		return nil, err
	}

	res := &Result{Expanded: r.expanded}
	if goal == nil {
		return res, nil
	}
	res.Path = goal.Path()
	res.Cost = goal.G()
	res.Found = true

	return res, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g         *grid.Grid                 // read-only input
	options   Options                    // hooks
	goal      grid.Position              // g.End()
	threshold int                        // g.ObstacleThreshold()
	open      *openSet                   // frontier
	closed    map[grid.Position]struct{} // fully expanded positions
	expanded  int                        // len(closed), kept for Result
}

// init seeds the open set with the start node (g = 0, h = Manhattan to goal).
func (r *runner) init() {
	start := r.g.Start()
	n := newNode(start, 0, r.heuristic(start), nil)
	r.open.push(n)
	r.options.OnEnqueue(n)
}

// process pops the cheapest open node until the goal is dequeued or the open
// set runs dry. It returns the goal node, or nil when the goal is unreachable.
func (r *runner) process() (*Node, error) {
	for r.open.Len() > 0 {
		current := r.open.pop()

		if current.pos == r.goal {
			return current, nil
		}

		r.closed[current.pos] = struct{}{}
		r.expanded++
		r.options.OnExpand(current)

		if err := r.expand(current); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand generates the 8 neighbors of current and merges them into the open
// set. A neighbor replaces an open entry at the same position only when its
// g-cost is strictly lower.
func (r *runner) expand(current *Node) error {
	for _, dir := range directions {
		next := current.pos.Add(dir.offset)
		if !r.g.InBounds(next) {
			continue
		}
		w, err := r.g.WeightAt(next)
		if err != nil {
			return fmt.Errorf("astar: weight of %s: %w", next, err)
		}
		if w >= r.threshold {
			continue
		}
		if _, done := r.closed[next]; done {
			continue
		}

		tentativeG := current.g + dir.multiplier*float64(w)

		existing, inOpen := r.open.get(next)
		if inOpen && tentativeG >= existing.g {
			continue
		}
		n := newNode(next, tentativeG, r.heuristic(next), current)
		if inOpen {
			r.open.replace(n)
		} else {
			r.open.push(n)
		}
		r.options.OnEnqueue(n)
	}

	return nil
}

// heuristic is the Manhattan distance from p to the goal.
func (r *runner) heuristic(p grid.Position) float64 {
	return float64(p.Manhattan(r.goal))
}
