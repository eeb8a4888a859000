package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mandala/internal/grid"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderBoard(),
		m.renderDetail(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" mandala edit ")
	name := m.styles.Badge.Render(m.grid.Name)

	marker := ""
	if m.dirty {
		marker = " " + m.styles.Warning.Render("●")
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", name, marker)
	target := m.styles.Muted.Render(" " + m.path)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		target,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderBoard() string {
	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			cells = append(cells, m.renderCell(r, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(row, col int) string {
	index := m.layout[row][col]

	style := m.styles.Cell
	if index == grid.Center {
		style = m.styles.CellCenter
	}
	if row == m.row && col == m.col {
		style = m.styles.CellSelected
	}

	p, err := m.grid.Get(index)
	if err != nil {
		return style.Render(fmt.Sprintf("—\n[%d]", index))
	}
	return style.Render(fmt.Sprintf("%s\n[%d] %.2f", truncate(p.Label, 18), index, p.Bias))
}

func (m Model) renderDetail() string {
	index := m.layout[m.row][m.col]
	p, err := m.grid.Get(index)
	if err != nil {
		return m.styles.Muted.Render(fmt.Sprintf("\nPosition %d is not in this grid", index))
	}

	label := m.styles.Bold.Render(fmt.Sprintf("[%d] %s", p.Index, p.Label))
	if p.LabelZH != "" {
		label += "  " + m.styles.Muted.Render(p.LabelZH)
	}

	lines := []string{
		"",
		label,
		fmt.Sprintf("%s %s (%s)", m.styles.Muted.Render("Consciousness:"), p.Consciousness, p.ConsciousnessZH),
		fmt.Sprintf("%s %s", m.styles.Muted.Render("Function:     "), p.Function),
		fmt.Sprintf("%s %s", m.styles.Muted.Render("Bias:         "), grid.FormatBias(p.Bias)),
	}
	if p.Description != "" {
		lines = append(lines, m.styles.Subtitle.Render(p.Description))
	}
	if m.editing {
		lines = append(lines, fmt.Sprintf("%s %s", m.styles.Muted.Render("New bias:     "), m.input.View()))
	}

	// Grid-level preview tracks edits as they happen.
	lines = append(lines, "", fmt.Sprintf("%s %s", m.styles.Muted.Render("Signature:    "), m.grid.Signature()))
	if top := m.grid.TopN(1); len(top) == 1 {
		lines = append(lines, fmt.Sprintf("%s ⬆ %s — you naturally %s",
			m.styles.Muted.Render("Mirror:       "), top[0].Label, strings.ToLower(top[0].Description)))
	}

	if m.status != "" {
		lines = append(lines, m.styles.Info.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderFooter() string {
	hints := "[↑↓←→] Move  [+/-] Nudge  [e] Edit  [s] Save  [q] Quit"
	if m.editing {
		hints = "[Enter] Apply  [Esc] Cancel"
	}
	return lipgloss.NewStyle().
		MarginTop(1).
		Render(m.styles.Muted.Render(hints))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
