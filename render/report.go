package render

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Report is the machine-readable outcome of one search.
// Path holds [row, col] pairs and is empty (not null) when nothing was found.
type Report struct {
	Found    bool     `json:"found"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path"`
	Rendered string   `json:"rendered"`
}

// NewReport summarises res over g. A nil res reports nothing found.
func NewReport(g *grid.Grid, res *astar.Result) Report {
	rep := Report{Path: make([][2]int, 0)}
	if res == nil {
		rep.Rendered = Plain(g, nil)
		return rep
	}
	rep.Found = res.Found
	rep.Cost = res.Cost
	rep.Expanded = res.Expanded
	for _, p := range res.Path.Positions() {
		rep.Path = append(rep.Path, [2]int{p.Row, p.Col})
	}
	rep.Rendered = Plain(g, res.Path)

	return rep
}
