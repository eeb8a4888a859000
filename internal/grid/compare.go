package grid

import (
	"fmt"
	"math"
	"strings"
)

// compareEpsilon is the bias delta below which two positions count as
// equal, absorbing float noise from decoded profiles.
const compareEpsilon = 0.01

// Compare reports the position-by-position bias differences between two
// grids, walking a's positions in document order, then both signatures.
// Deltas within compareEpsilon are omitted. Fails if b lacks a position
// index that a has.
func Compare(a, b *Grid) (string, error) {
	lines := []string{
		fmt.Sprintf("Comparing [%s] vs [%s]", a.Name, b.Name),
		strings.Repeat("=", 50),
	}
	for _, pa := range a.Positions {
		pb, err := b.Get(pa.Index)
		if err != nil {
			return "", fmt.Errorf("compare %q vs %q: %w", a.Name, b.Name, err)
		}
		diff := pa.Bias - pb.Bias
		if math.Abs(diff) <= compareEpsilon {
			continue
		}
		arrow := "↑"
		if diff < 0 {
			arrow = "↓"
		}
		lines = append(lines, fmt.Sprintf("  Position %d (%s): %.2f → %.2f [%s%.2f]",
			pa.Index, pa.Label, pa.Bias, pb.Bias, arrow, math.Abs(diff)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("  %s: %s", a.Name, a.Signature()),
		fmt.Sprintf("  %s: %s", b.Name, b.Signature()),
	)
	return strings.Join(lines, "\n"), nil
}
