package grid

import (
	"fmt"
	"strings"
)

// MirrorAnalysis renders the grid as a portrait of its author: the three
// strongest positions, the two weakest, and the center. The premise is
// that a hand-tuned grid encodes the cognitive habits of whoever tuned
// it. Grids without a center skip the center stanza.
func MirrorAnalysis(g *Grid) string {
	lines := []string{
		"═══ Mirror Analysis ═══",
		"",
		"The AI-as-Mirror theory: your mandala_grid is not a design spec —",
		"it's a self-portrait of how you think.",
		"",
		"Your strongest cognitive patterns:",
	}
	for _, p := range g.TopN(3) {
		lines = append(lines, fmt.Sprintf("  ⬆ %s (bias=%s): You naturally %s",
			p.Label, FormatBias(p.Bias), strings.ToLower(p.Description)))
	}
	lines = append(lines, "", "Your deprioritized patterns:")
	for _, p := range g.BottomN(2) {
		lines = append(lines, fmt.Sprintf("  ⬇ %s (bias=%s): You tend to under-invest in %s",
			p.Label, FormatBias(p.Bias), p.Function))
	}
	lines = append(lines, "")
	if center, err := g.Get(Center); err == nil {
		lines = append(lines,
			fmt.Sprintf("Your center: %s — %s", center.Label, center.Description),
			"",
		)
	}
	lines = append(lines, "Buddhism calls this self-awareness. You call it mandala_grid. Same thing.")
	return strings.Join(lines, "\n")
}
