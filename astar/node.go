package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Node is an immutable search state: a grid position, the accumulated cost g
// from the start, the heuristic estimate h to the goal and the node it was
// reached from. The start node has no parent.
//
// Two nodes denote the same logical search state when their positions are
// equal; costs and parents do not take part in identity.
type Node struct {
	pos    grid.Position
	g, h   float64
	parent *Node
}

func newNode(pos grid.Position, g, h float64, parent *Node) *Node {
	return &Node{pos: pos, g: g, h: h, parent: parent}
}

// Position returns the grid cell of n.
func (n *Node) Position() grid.Position { return n.pos }

// G returns the accumulated cost from the start.
func (n *Node) G() float64 { return n.g }

// H returns the Manhattan estimate to the goal.
func (n *Node) H() float64 { return n.h }

// F returns G + H.
func (n *Node) F() float64 { return n.g + n.h }

// Parent returns the node n was generated from, or nil for the start node.
func (n *Node) Parent() *Node { return n.parent }

// SameAs reports whether n and o occupy the same position.
func (n *Node) SameAs(o *Node) bool {
	return n != nil && o != nil && n.pos == o.pos
}

// String formats n as "(r,c) g=… h=…".
func (n *Node) String() string {
	return fmt.Sprintf("%s g=%.3f h=%.0f", n.pos, n.g, n.h)
}

// Path walks parent links from n back to the start and returns the chain in
// start → n order. The result always has at least one element.
func (n *Node) Path() Path {
	var path Path
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	// reverse to get start → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Path is an ordered sequence of nodes from start to goal inclusive.
type Path []*Node

// Len returns the number of nodes in p.
func (p Path) Len() int { return len(p) }

// Cost returns the g-cost of the last node, or 0 for an empty path.
func (p Path) Cost() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].g
}

// Positions returns the grid positions of p in order.
func (p Path) Positions() []grid.Position {
	out := make([]grid.Position, len(p))
	for i, n := range p {
		out[i] = n.pos
	}
	return out
}

// Contains reports whether pos is on p.
func (p Path) Contains(pos grid.Position) bool {
	for _, n := range p {
		if n.pos == pos {
			return true
		}
	}
	return false
}

// Replay recomputes the accumulated cost at every node of p from the movement
// cost model alone: out[0] is 0 and out[i] = out[i-1] + StepCost(p[i-1], p[i]).
// For a path returned by Search, out[i] equals p[i].G() up to floating-point
// rounding.
func (p Path) Replay(g *grid.Grid) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(p) == 0 || p[0].pos != g.Start() || p[len(p)-1].pos != g.End() {
		return nil, ErrBrokenPath
	}
	out := make([]float64, len(p))
	for i := 1; i < len(p); i++ {
		step, err := StepCost(g, p[i-1].pos, p[i].pos)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out[i] = out[i-1] + step
	}

	return out, nil
}

// String formats p as "(r,c) (r,c) …".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = n.pos.String()
	}
	return strings.Join(parts, " ")
}

// StepCost returns the cost of moving from one cell to an adjacent one:
// the direction multiplier times the weight of the destination.
// It fails with ErrNotAdjacent when to is not one of the 8 neighbors of from,
// and with grid.ErrOutOfBounds when to lies outside g.
func StepCost(g *grid.Grid, from, to grid.Position) (float64, error) {
	d := grid.Position{Row: to.Row - from.Row, Col: to.Col - from.Col}
	for _, dir := range directions {
		if dir.offset != d {
			continue
		}
		w, err := g.WeightAt(to)
		if err != nil {
			return 0, err
		}
		return dir.multiplier * float64(w), nil
	}

	return 0, fmt.Errorf("%w: %s → %s", ErrNotAdjacent, from, to)
}
