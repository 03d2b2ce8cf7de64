// Package tui is an interactive terminal viewer that walks a found path one
// step at a time over the styled grid.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	statusStyle = lipgloss.NewStyle().Bold(true)
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// KeyMap lists the bindings understood by Model.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:  key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next")),
		Prev:  key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "prev")),
		First: key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "start")),
		Last:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "end")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the bubbletea model. The cursor indexes the path; the grid shows
// the path up to and including the cursor node.
type Model struct {
	g        *grid.Grid
	path     astar.Path
	expanded int
	cursor   int
	theme    render.Theme
	keys     KeyMap
	viewport viewport.Model
}

// New builds a Model for the outcome res of searching g. A nil or
// unsuccessful res shows the bare grid.
func New(g *grid.Grid, res *astar.Result, theme render.Theme) Model {
	m := Model{
		g:     g,
		theme: theme,
		keys:  DefaultKeyMap(),
	}
	if res != nil {
		m.path = res.Path
		m.expanded = res.Expanded
	}
	m.viewport = viewport.New(max(2*g.Cols(), 40), g.Rows())
	m.refresh()

	return m
}

// Cursor returns the index of the highlighted path node.
func (m Model) Cursor() int { return m.cursor }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.move(m.cursor + 1)
		case key.Matches(msg, m.keys.Prev):
			m.move(m.cursor - 1)
		case key.Matches(msg, m.keys.First):
			m.move(0)
		case key.Matches(msg, m.keys.Last):
			m.move(len(m.path) - 1)
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		// header (2 lines) + status + help
		m.viewport.Height = max(msg.Height-4, 1)
		m.refresh()
	}

	return m, nil
}

// move clamps i to the path and redraws.
func (m *Model) move(i int) {
	if len(m.path) == 0 {
		return
	}
	m.cursor = min(max(i, 0), len(m.path)-1)
	m.refresh()
}

func (m *Model) refresh() {
	var shown astar.Path
	if len(m.path) > 0 {
		shown = m.path[:m.cursor+1]
	}
	m.viewport.SetContent(render.Styled(m.g, shown, m.theme))
}

// View implements tea.Model.
func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("gridpath %d×%d", m.g.Rows(), m.g.Cols()))

	var status string
	if len(m.path) == 0 {
		status = missStyle.Render(fmt.Sprintf("No solution! • %d expanded", m.expanded))
	} else {
		n := m.path[m.cursor]
		status = statusStyle.Render(fmt.Sprintf("step %d/%d %s g=%.3f h=%.0f f=%.3f • cost %.3f • %d expanded",
			m.cursor+1, len(m.path), n.Position(), n.G(), n.H(), n.F(), m.path.Cost(), m.expanded))
	}

	bindings := []key.Binding{m.keys.Next, m.keys.Prev, m.keys.First, m.keys.Last, m.keys.Quit}
	help := make([]string, len(bindings))
	for i, b := range bindings {
		help[i] = b.Help().Key + " " + b.Help().Desc
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		status,
		subtleStyle.Render(strings.Join(help, " • ")),
	)
}

// Run starts a full-screen program for res over g and blocks until the user
// quits.
func Run(g *grid.Grid, res *astar.Result, theme render.Theme) error {
	p := tea.NewProgram(New(g, res, theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
