package grid

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates no StartMarker cell was found.
	ErrMissingStart = errors.New("grid: start position 'S' not found")
	// ErrMissingEnd indicates no EndMarker cell was found.
	ErrMissingEnd = errors.New("grid: end position 'E' not found")
	// ErrDuplicateMarker indicates a start or end marker occurs more than once.
	ErrDuplicateMarker = errors.New("grid: start and end markers must appear exactly once")
	// ErrNegativeWeight indicates a cell holds a negative weight that is not a marker.
	ErrNegativeWeight = errors.New("grid: cell weights must be non-negative")
	// ErrBadThreshold indicates a non-positive obstacle threshold.
	ErrBadThreshold = errors.New("grid: obstacle threshold must be positive")
	// ErrOutOfBounds indicates a lookup outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBadToken indicates an unparsable cell token in textual input.
	ErrBadToken = errors.New("grid: invalid cell token")
)

// Cell sentinels used in the construction table. They are negative so they
// can never collide with a legal weight.
const (
	StartMarker = -1
	EndMarker   = -2
)

// DefaultObstacleThreshold is the smallest weight treated as a wall.
const DefaultObstacleThreshold = 9

// Position is a (row, column) coordinate. It is a comparable value and can be
// used directly as a map key.
type Position struct {
	Row, Col int
}

// Add returns the component-wise sum of p and d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// ObstacleThreshold is the minimum weight considered impassable.
	ObstacleThreshold int
}

// DefaultOptions returns Options with ObstacleThreshold=9.
func DefaultOptions() Options {
	return Options{
		ObstacleThreshold: DefaultObstacleThreshold,
	}
}

// Grid is an immutable weighted table with resolved start and end positions.
// weights[r][c] holds the traversal weight of cell (r,c); the start and end
// cells hold 0.
type Grid struct {
	rows, cols int
	weights    [][]int
	start, end Position
	threshold  int
}
