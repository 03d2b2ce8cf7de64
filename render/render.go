// Package render draws a grid with a path laid over it, either as plain text
// or coloured with lipgloss.
//
// Layout: one row per line, cells separated by a single space. Every cell
// shows its weight; path cells show "*"; the start and end cells show "S"
// and "E" on top of the path. Plain output is stable and used by tests and
// the JSON report; Styled output is meant for terminals.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Tokens used for overlaid cells.
const (
	PathToken  = "*"
	StartToken = "S"
	EndToken   = "E"
)

// Theme holds one style per cell kind.
type Theme struct {
	Free     lipgloss.Style // weight 0
	Weighted lipgloss.Style // 0 < weight < threshold
	Obstacle lipgloss.Style // weight ≥ threshold
	Path     lipgloss.Style
	Start    lipgloss.Style
	End      lipgloss.Style
}

// NewTheme builds the default palette on renderer r, so the colour profile
// follows r's output rather than stdout.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Free:     r.NewStyle().Foreground(lipgloss.Color("241")),
		Weighted: r.NewStyle().Foreground(lipgloss.Color("39")),
		Obstacle: r.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("238")),
		Path:     r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Start:    r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		End:      r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// DefaultTheme is NewTheme on lipgloss's default (stdout) renderer.
func DefaultTheme() Theme {
	return NewTheme(lipgloss.DefaultRenderer())
}

// kind classifies a cell for styling.
type kind int

const (
	kindFree kind = iota
	kindWeighted
	kindObstacle
	kindPath
	kindStart
	kindEnd
)

// cell is one classified, tokenised grid cell.
type cell struct {
	token string
	kind  kind
}

// layout classifies every cell of g with path overlaid. A nil path draws the
// bare grid.
func layout(g *grid.Grid, path astar.Path) [][]cell {
	onPath := make(map[grid.Position]bool, len(path))
	for _, p := range path.Positions() {
		onPath[p] = true
	}

	weights := g.Cells()
	out := make([][]cell, g.Rows())
	for r := range weights {
		out[r] = make([]cell, g.Cols())
		for c, w := range weights[r] {
			p := grid.Position{Row: r, Col: c}
			switch {
			case p == g.Start():
				out[r][c] = cell{StartToken, kindStart}
			case p == g.End():
				out[r][c] = cell{EndToken, kindEnd}
			case onPath[p]:
				out[r][c] = cell{PathToken, kindPath}
			case w >= g.ObstacleThreshold():
				out[r][c] = cell{strconv.Itoa(w), kindObstacle}
			case w > 0:
				out[r][c] = cell{strconv.Itoa(w), kindWeighted}
			default:
				out[r][c] = cell{strconv.Itoa(w), kindFree}
			}
		}
	}
	return out
}

// join renders each cell with paint and joins cells by spaces and rows by
// newlines.
func join(cells [][]cell, paint func(cell) string) string {
	var sb strings.Builder
	for r, row := range cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, x := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(paint(x))
		}
	}
	return sb.String()
}

// Plain renders g with path overlaid, without any styling.
func Plain(g *grid.Grid, path astar.Path) string {
	return join(layout(g, path), func(x cell) string { return x.token })
}

// Styled renders g with path overlaid, painting each cell with the matching
// style of t. On a renderer without colour support the result equals Plain.
func Styled(g *grid.Grid, path astar.Path, t Theme) string {
	styles := map[kind]lipgloss.Style{
		kindFree:     t.Free,
		kindWeighted: t.Weighted,
		kindObstacle: t.Obstacle,
		kindPath:     t.Path,
		kindStart:    t.Start,
		kindEnd:      t.End,
	}
	return join(layout(g, path), func(x cell) string {
		return styles[x.kind].Render(x.token)
	})
}

// Coordinates lists the positions of path as "(r,c) (r,c) ...".
func Coordinates(path astar.Path) string {
	return path.String()
}
