package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

const easyMaze = `
	S 0 0 0 0
	9 9 1 9 0
	0 1 1 1 0
	0 9 1 9 0
	0 0 0 0 E`

func solve(t *testing.T, text string) (*grid.Grid, astar.Path) {
	t.Helper()
	g, err := grid.ParseString(text)
	require.NoError(t, err)
	path, _ := astar.FindPath(g)
	return g, path
}

func TestPlain_EasyMaze(t *testing.T) {
	g, path := solve(t, easyMaze)
	require.NotNil(t, path)

	want := "S * * * 0\n" +
		"9 9 1 9 *\n" +
		"0 1 1 1 *\n" +
		"0 9 1 9 *\n" +
		"0 0 0 0 E"
	assert.Equal(t, want, render.Plain(g, path))
}

func TestPlain_NoPath(t *testing.T) {
	g, path := solve(t, "S 9\n9 9\n0 E")
	assert.Nil(t, path)
	assert.Equal(t, g.String(), render.Plain(g, nil), "without a path the grid prints as parsed")
}

func TestPlain_SingleCell(t *testing.T) {
	p := grid.Position{}
	g, err := grid.FromWeights([][]int{{4}}, p, p, grid.DefaultOptions())
	require.NoError(t, err)
	path, ok := astar.FindPath(g)
	require.True(t, ok)
	assert.Equal(t, "S", render.Plain(g, path), "start wins over end")
}

// TestStyled_NoColour: a renderer writing to a buffer has no colour
// support, so styling collapses to the plain layout.
func TestStyled_NoColour(t *testing.T) {
	g, path := solve(t, easyMaze)
	r := lipgloss.NewRenderer(&bytes.Buffer{})

	assert.Equal(t, render.Plain(g, path), render.Styled(g, path, render.NewTheme(r)))
}

func TestStyled_ThemeMapping(t *testing.T) {
	g, path := solve(t, "S 9 3\n0 0 E")
	r := lipgloss.NewRenderer(&bytes.Buffer{})

	theme := render.NewTheme(r)
	theme.Obstacle = r.NewStyle().Transform(func(string) string { return "#" })
	theme.Weighted = r.NewStyle().Transform(func(s string) string { return "w" + s })
	theme.Path = r.NewStyle().Transform(func(string) string { return "o" })

	assert.Equal(t, "S # w3\n0 o E", render.Styled(g, path, theme))
}

func TestCoordinates(t *testing.T) {
	_, path := solve(t, "S 1 E")
	assert.Equal(t, "(0,0) (0,1) (0,2)", render.Coordinates(path))
	assert.Empty(t, render.Coordinates(nil))
}

func TestNewReport(t *testing.T) {
	g, err := grid.ParseString("S 1 E")
	require.NoError(t, err)
	res, err := astar.Search(g)
	require.NoError(t, err)

	rep := render.NewReport(g, res)
	assert.True(t, rep.Found)
	assert.InDelta(t, 1.0, rep.Cost, 1e-9)
	assert.Equal(t, res.Expanded, rep.Expanded)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}}, rep.Path)
	assert.Equal(t, "S * E", rep.Rendered)

	data, err := json.Marshal(render.NewReport(g, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"found":false,"cost":0,"expanded":0,"path":[],"rendered":"S 1 E"}`, string(data))
}
