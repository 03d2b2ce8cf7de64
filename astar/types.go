package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNotAdjacent indicates two positions are not one of the 8 neighbor offsets apart.
	ErrNotAdjacent = errors.New("astar: positions are not adjacent")

	// ErrBrokenPath indicates a path whose first node is not the grid start
	// or whose last node is not the grid end.
	ErrBrokenPath = errors.New("astar: path does not join start to end")
)

// Direction multipliers.
const (
	OrthogonalCost = 1.0
	DiagonalCost   = math.Sqrt2
)

// direction is one of the 8 movement offsets with its cost multiplier.
type direction struct {
	offset     grid.Position
	multiplier float64
}

// directions lists orthogonal moves (N, S, W, E) first, then diagonals
// (NW, NE, SW, SE). Expansion follows this order.
var directions = [8]direction{
	{grid.Position{Row: -1, Col: 0}, OrthogonalCost},
	{grid.Position{Row: 1, Col: 0}, OrthogonalCost},
	{grid.Position{Row: 0, Col: -1}, OrthogonalCost},
	{grid.Position{Row: 0, Col: 1}, OrthogonalCost},
	{grid.Position{Row: -1, Col: -1}, DiagonalCost},
	{grid.Position{Row: -1, Col: 1}, DiagonalCost},
	{grid.Position{Row: 1, Col: -1}, DiagonalCost},
	{grid.Position{Row: 1, Col: 1}, DiagonalCost},
}

// Options configures a Search.
type Options struct {
	// OnExpand is called with each node as it is moved to the closed set,
	// before its neighbors are generated. It is not called for the goal.
	OnExpand func(n *Node)

	// OnEnqueue is called with each node inserted into the open set,
	// including the start node and nodes that replace a costlier entry.
	OnEnqueue func(n *Node)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand:  func(*Node) {},
		OnEnqueue: func(*Node) {},
	}
}

// WithOnExpand registers a callback run when a node is expanded.
// Callbacks registered more than once run in registration order.
// A nil fn is ignored.
func WithOnExpand(fn func(n *Node)) Option {
	return func(o *Options) {
		o.OnExpand = chain(o.OnExpand, fn)
	}
}

// WithOnEnqueue registers a callback run when a node enters the open set.
// Callbacks registered more than once run in registration order.
// A nil fn is ignored.
func WithOnEnqueue(fn func(n *Node)) Option {
	return func(o *Options) {
		o.OnEnqueue = chain(o.OnEnqueue, fn)
	}
}

// chain returns a hook calling prev then next. Either may be nil.
func chain(prev, next func(*Node)) func(*Node) {
	switch {
	case next == nil:
		return prev
	case prev == nil:
		return next
	}
	return func(n *Node) {
		prev(n)
		next(n)
	}
}

// Result holds the outcome of a Search:
//   - Path: start → end inclusive; nil when Found is false.
//   - Cost: g-cost of the end node (0 when not found).
//   - Expanded: number of nodes moved to the closed set.
//   - Found: false when the end is unreachable.
type Result struct {
	Path     Path
	Cost     float64
	Expanded int
	Found    bool
}
