package grid

import "fmt"

// Warnings reports non-fatal oddities in a grid: bias weights outside
// the conventional [0, 1] range, canonical indices that are absent, and
// a position count other than nine. Decoding stays permissive; these
// are advisory only.
func (g *Grid) Warnings() []string {
	var warnings []string
	if len(g.Positions) != 9 {
		warnings = append(warnings, fmt.Sprintf("%d positions (a full grid has 9)", len(g.Positions)))
	}
	for _, p := range g.Positions {
		if p.Bias < 0 || p.Bias > 1 {
			warnings = append(warnings, fmt.Sprintf("position %d (%s): bias %s outside [0, 1]", p.Index, p.Label, FormatBias(p.Bias)))
		}
	}
	var missing []int
	for index := 0; index <= 8; index++ {
		if _, err := g.Get(index); err != nil {
			missing = append(missing, index)
		}
	}
	if len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("missing canonical indices %v", missing))
	}
	return warnings
}
