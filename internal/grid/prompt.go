package grid

import (
	"fmt"
	"strings"
)

// WeightedPrompt renders the grid as a system-prompt preamble for the
// given task. All nine positions appear in descending bias order, the
// center included, each as an identity line plus a function line. The
// output carries no trailing newline.
func (g *Grid) WeightedPrompt(task string) string {
	lines := []string{
		"You are reasoning through a mandala grid — a weighted personality framework.",
		fmt.Sprintf("Grid: %s (v%s)", g.Name, g.Version),
		"",
		"Each position represents a cognitive function with a bias weight.",
		"Higher bias = stronger influence on your reasoning.",
		"",
	}
	for _, p := range g.byBiasDescending() {
		lines = append(lines,
			fmt.Sprintf("  [%d] %s (bias=%s) — %s", p.Index, p.Label, FormatBias(p.Bias), p.Consciousness),
			fmt.Sprintf("      %s: %s", p.Function, p.Description),
		)
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Task: %s", task),
		"",
		"Process this task through all 9 positions, weighting your reasoning by each position's bias. Start from the center observer, then engage positions from highest to lowest bias.",
	)
	return strings.Join(lines, "\n")
}
