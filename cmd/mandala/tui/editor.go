// Package tui implements the interactive grid editor: a 3×3 board with
// cursor navigation, bias nudging, and exact-value entry.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mandala/cmd/mandala/ui"
	"mandala/internal/grid"
)

// Model is the bubbletea model for the grid editor.
type Model struct {
	grid   *grid.Grid
	path   string
	layout [3][3]int
	row    int
	col    int

	editing bool
	input   textinput.Model

	dirty     bool
	quitArmed bool
	status    string

	width  int
	height int
	ready  bool
	styles ui.Styles
}

// New creates an editor over g. Edits apply to g in place; s saves the
// grid to path.
func New(g *grid.Grid, path string, theme ui.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 8
	ti.Width = 10

	return Model{
		grid:   g,
		path:   path,
		layout: grid.Layout(),
		row:    1,
		col:    1, // start on the center
		input:  ti,
		styles: ui.NewStyles(theme),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run opens the editor over g and blocks until the user quits. Unsaved
// edits still live in g when Run returns; only s writes them to path.
func Run(g *grid.Grid, path string, theme ui.Theme) error {
	p := tea.NewProgram(New(g, path, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
