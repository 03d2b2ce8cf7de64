package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular row-major table.
// It deep-copies the input so later changes to cells do not leak in.
//
// The table must contain exactly one StartMarker and one EndMarker; both are
// recorded and replaced by weight 0. Every other cell must be ≥ 0.
//
// Validation order:
//  1. opts.ObstacleThreshold > 0 (ErrBadThreshold).
//  2. at least one row and one column (ErrEmptyGrid).
//  3. equal row lengths (ErrNonRectangular).
//  4. no negative weights, markers unique (ErrNegativeWeight, ErrDuplicateMarker).
//  5. both markers present (ErrMissingStart, ErrMissingEnd).
//
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]int, opts Options) (*Grid, error) {
	if err := validateShape(cells, opts); err != nil {
		return nil, err
	}
	rows, cols := len(cells), len(cells[0])

	weights := make([][]int, rows)
	var start, end *Position
	for r := 0; r < rows; r++ {
		weights[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			v := cells[r][c]
			switch {
			case v == StartMarker:
				if start != nil {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrDuplicateMarker, r, c)
				}
				start = &Position{Row: r, Col: c}
				v = 0
			case v == EndMarker:
				if end != nil {
					return nil, fmt.Errorf("%w: second end at (%d,%d)", ErrDuplicateMarker, r, c)
				}
				end = &Position{Row: r, Col: c}
				v = 0
			case v < 0:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeWeight, v, r, c)
			}
			weights[r][c] = v
		}
	}
	if start == nil {
		return nil, ErrMissingStart
	}
	if end == nil {
		return nil, ErrMissingEnd
	}

	return &Grid{
		rows:      rows,
		cols:      cols,
		weights:   weights,
		start:     *start,
		end:       *end,
		threshold: opts.ObstacleThreshold,
	}, nil
}

// FromWeights constructs a Grid from a plain weight table and explicit
// endpoints. Markers are not accepted here: every cell must be ≥ 0.
// The weights at start and end are cleared to 0, as NewGrid does for marker
// cells. Unlike NewGrid, start and end may be the same position.
//
// Returns the NewGrid shape errors, ErrNegativeWeight, or ErrOutOfBounds when
// an endpoint lies outside the table.
func FromWeights(weights [][]int, start, end Position, opts Options) (*Grid, error) {
	if err := validateShape(weights, opts); err != nil {
		return nil, err
	}
	g := &Grid{
		rows:      len(weights),
		cols:      len(weights[0]),
		start:     start,
		end:       end,
		threshold: opts.ObstacleThreshold,
	}
	for _, p := range []Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: endpoint %s in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
		}
	}

	g.weights = make([][]int, g.rows)
	for r, row := range weights {
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeWeight, v, r, c)
			}
		}
		g.weights[r] = make([]int, g.cols)
		copy(g.weights[r], row)
	}
	g.weights[start.Row][start.Col] = 0
	g.weights[end.Row][end.Col] = 0

	return g, nil
}

// validateShape checks the threshold and that cells is a non-empty rectangle.
func validateShape(cells [][]int, opts Options) error {
	if opts.ObstacleThreshold <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadThreshold, opts.ObstacleThreshold)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	return nil
}

// From2D is NewGrid with DefaultOptions.
func From2D(cells [][]int) (*Grid, error) {
	return NewGrid(cells, DefaultOptions())
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the resolved start position.
func (g *Grid) Start() Position { return g.start }

// End returns the resolved end (goal) position.
func (g *Grid) End() Position { return g.end }

// ObstacleThreshold returns the minimum impassable weight.
func (g *Grid) ObstacleThreshold() int { return g.threshold }

// InBounds reports whether p lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// WeightAt returns the weight stored at p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) WeightAt(p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return g.weights[p.Row][p.Col], nil
}

// Passable reports whether p is in bounds and below the obstacle threshold.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.weights[p.Row][p.Col] < g.threshold
}

// Cells returns a deep copy of the weight table (markers already cleared).
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for r := range g.weights {
		out[r] = make([]int, g.cols)
		copy(out[r], g.weights[r])
	}
	return out
}

// String renders the grid in the textual form accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			p := Position{Row: r, Col: c}
			switch p {
			case g.start:
				sb.WriteString(startToken)
			case g.end:
				sb.WriteString(endToken)
			default:
				sb.WriteString(strconv.Itoa(g.weights[r][c]))
			}
		}
	}
	return sb.String()
}
