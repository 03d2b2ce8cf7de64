package tui_test

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/tui"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, text string) tui.Model {
	t.Helper()
	g, err := grid.ParseString(text)
	require.NoError(t, err)
	res, err := astar.Search(g)
	require.NoError(t, err)
	theme := render.NewTheme(lipgloss.NewRenderer(&bytes.Buffer{}))
	return tui.New(g, res, theme)
}

// send applies msgs in order and returns the resulting model.
func send(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(tui.Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(t, "S 1 1 E")
	assert.Zero(t, m.Cursor())
	assert.Nil(t, m.Init())

	cases := []struct {
		name string
		msg  tea.Msg
		want int
	}{
		{"NextRune", runes("n"), 1},
		{"NextArrow", tea.KeyMsg{Type: tea.KeyRight}, 2},
		{"Next", runes("n"), 3},
		{"ClampAtEnd", runes("n"), 3},
		{"PrevRune", runes("p"), 2},
		{"PrevArrow", tea.KeyMsg{Type: tea.KeyLeft}, 1},
		{"First", tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"ClampAtStart", runes("p"), 0},
		{"Last", runes("G"), 3},
		{"Unbound", runes("x"), 3},
	}
	for _, tc := range cases {
		m = send(t, m, tc.msg)
		assert.Equal(t, tc.want, m.Cursor(), tc.name)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, "S E")
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_View(t *testing.T) {
	m := newModel(t, "S 1 1 E")
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})

	view := m.View()
	assert.Contains(t, view, "gridpath 1×4")
	assert.Contains(t, view, "S 1 1 E")
	assert.Contains(t, view, "step 1/4 (0,0) g=0.000 h=3 f=3.000")
	assert.Contains(t, view, "q quit")

	m = send(t, m, runes("n"), runes("n"))
	view = m.View()
	assert.Contains(t, view, "S * * E", "path revealed up to the cursor")
	assert.Contains(t, view, "step 3/4 (0,2) g=2.000 h=1 f=3.000")
	assert.Contains(t, view, "cost 2.000")
}

func TestModel_NoSolution(t *testing.T) {
	m := newModel(t, "S 9\n9 9\n0 E")
	m = send(t, m, runes("n"), runes("G"))
	assert.Zero(t, m.Cursor())

	view := m.View()
	assert.Contains(t, view, "No solution! • 1 expanded")
	assert.Contains(t, view, "S 9")
}

func TestModel_NilResult(t *testing.T) {
	g, err := grid.ParseString("S 0 E")
	require.NoError(t, err)
	m := tui.New(g, nil, render.NewTheme(lipgloss.NewRenderer(&bytes.Buffer{})))
	assert.Contains(t, m.View(), "No solution!")
	assert.Contains(t, m.View(), "S 0 E")
}
