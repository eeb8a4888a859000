package grid

import (
	"fmt"
	"strings"
)

// layoutRows is the board layout by position index. The center sits in
// the middle; the ring runs clockwise from top-left through the senses
// down to manas and the lineage position.
var layoutRows = [3][3]int{
	{1, 2, 3},
	{6, 0, 5},
	{7, 8, 4},
}

// Layout returns the board layout as rows of position indices, top to
// bottom. The TUI uses it to translate cursor movement into indices.
func Layout() [3][3]int {
	return layoutRows
}

// Display renders the grid as a bordered 3×3 board, seven lines with no
// trailing newline. Each cell shows the label, truncated to twelve runes
// and centered, followed by the bias to two decimals. The 16-dash border
// against 20-rune cells is the historical board shape; keep it.
func (g *Grid) Display() string {
	byIndex := make(map[int]Position, len(g.Positions))
	for _, p := range g.Positions {
		byIndex[p.Index] = p
	}
	cell := func(index int) string {
		p, ok := byIndex[index]
		if !ok {
			return strings.Repeat(" ", 20)
		}
		return fmt.Sprintf("%s(%.2f)", centerText(truncate(p.Label, 12), 14), p.Bias)
	}
	sep := "+" + strings.Repeat(strings.Repeat("-", 16)+"+", 3)
	lines := make([]string, 0, 7)
	lines = append(lines, sep)
	for _, row := range layoutRows {
		lines = append(lines, fmt.Sprintf("|%s|%s|%s|", cell(row[0]), cell(row[1]), cell(row[2])))
		lines = append(lines, sep)
	}
	return strings.Join(lines, "\n")
}

// ConsciousnessMap lists every position's traditional consciousness name
// beside its label, in descending bias order.
func (g *Grid) ConsciousnessMap() string {
	lines := make([]string, 0, len(g.Positions))
	for _, p := range g.byBiasDescending() {
		lines = append(lines, fmt.Sprintf("  [%d] %s → %s (bias=%s)", p.Index, p.ConsciousnessZH, p.Label, FormatBias(p.Bias)))
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// centerText pads s with spaces to width runes, extra space on the right
// when the padding is odd. Strings already at or past width pass through.
func centerText(s string, width int) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
