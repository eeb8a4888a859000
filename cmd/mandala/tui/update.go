package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mandala/internal/grid"
	"mandala/internal/profile"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	armed := m.quitArmed
	m.quitArmed = false

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q", "esc":
		if m.dirty && !armed {
			m.quitArmed = true
			m.status = "unsaved changes: press again to discard, s to save"
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < 2 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < 2 {
			m.col++
		}

	case "+", "=":
		m.nudge(0.05)
	case "-", "_":
		m.nudge(-0.05)

	case "e", "enter":
		m.startEditing()
		return m, textinput.Blink

	case "s":
		m.save()
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		m.applyInput()
		m.editing = false
		m.input.Blur()
		return m, nil

	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selected returns the position under the cursor, nil if the grid has
// no position at that board slot.
func (m *Model) selected() *grid.Position {
	p, err := m.grid.Get(m.layout[m.row][m.col])
	if err != nil {
		return nil
	}
	return p
}

// nudge steps the selected bias by delta, clamped to [0, 1] and rounded
// to two decimals so repeated steps stay on clean values.
func (m *Model) nudge(delta float64) {
	p := m.selected()
	if p == nil {
		return
	}
	b := math.Round((p.Bias+delta)*100) / 100
	if b < 0 {
		b = 0
	}
	if b > 1 {
		b = 1
	}
	if b != p.Bias {
		p.Bias = b
		m.dirty = true
	}
	m.status = ""
}

func (m *Model) startEditing() {
	p := m.selected()
	if p == nil {
		return
	}
	m.editing = true
	m.status = ""
	m.input.SetValue(grid.FormatBias(p.Bias))
	m.input.CursorEnd()
	m.input.Focus()
}

// applyInput commits the textinput value as the selected bias. Exact
// entry is permissive: values outside [0, 1] are allowed, validate
// flags them later.
func (m *Model) applyInput() {
	p := m.selected()
	if p == nil {
		return
	}
	raw := strings.TrimSpace(m.input.Value())
	b, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.status = fmt.Sprintf("not a number: %q", raw)
		return
	}
	p.Bias = b
	m.dirty = true
	if b < 0 || b > 1 {
		m.status = fmt.Sprintf("%s bias set to %s (outside the usual [0, 1])", p.Label, grid.FormatBias(b))
	} else {
		m.status = fmt.Sprintf("%s bias set to %s", p.Label, grid.FormatBias(b))
	}
}

func (m *Model) save() {
	if err := profile.Save(m.path, m.grid); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.dirty = false
	m.status = "saved to " + m.path
}
