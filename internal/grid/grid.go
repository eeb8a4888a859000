// Package grid implements the mandala grid personality model: a named,
// versioned set of nine weighted cognitive positions arranged on a 3×3
// board and mapped onto the Eight Consciousnesses (八識) of Yogācāra
// Buddhism. A grid parameterizes how an agent reasons, not what it knows:
// the bias weights rank the positions, and every rendered artifact
// (weighted prompt, board, signature, mirror analysis) derives from that
// ranking.
package grid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Center is the index of the center observer position (ālayavijñāna).
// Ranking operations exclude it: the center watches, it does not compete.
const Center = 0

// Grid is a complete mandala grid. Positions preserve document order,
// which is also the iteration order for Compare; ranked renderings sort a
// copy and never mutate the slice.
type Grid struct {
	Positions   []Position `json:"positions" yaml:"positions"`
	Version     string     `json:"version" yaml:"version"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
}

// Get returns the position with the given index, or ErrPositionNotFound.
// The pointer aliases the grid's backing slice, so edits through it are
// edits to the grid.
func (g *Grid) Get(index int) (*Position, error) {
	for i := range g.Positions {
		if g.Positions[i].Index == index {
			return &g.Positions[i], nil
		}
	}
	return nil, fmt.Errorf("index %d: %w", index, ErrPositionNotFound)
}

// TopN returns the n highest-bias positions, excluding the center, in
// descending bias order. Ties keep document order. n is clamped to the
// available count.
func (g *Grid) TopN(n int) []Position {
	ranked := g.rank(func(a, b Position) bool { return a.Bias > b.Bias })
	return clampHead(ranked, n)
}

// BottomN returns the n lowest-bias positions, excluding the center, in
// ascending bias order. Ties keep document order.
func (g *Grid) BottomN(n int) []Position {
	ranked := g.rank(func(a, b Position) bool { return a.Bias < b.Bias })
	return clampHead(ranked, n)
}

// Signature condenses the grid into a one-line personality fingerprint:
// the grid name followed by its top three positions joined by " > ".
func (g *Grid) Signature() string {
	top := g.TopN(3)
	parts := make([]string, 0, len(top))
	for _, p := range top {
		parts = append(parts, fmt.Sprintf("%s(%s)", p.Label, FormatBias(p.Bias)))
	}
	return fmt.Sprintf("[%s] %s", g.Name, strings.Join(parts, " > "))
}

// rank returns the non-center positions sorted by less, stably.
func (g *Grid) rank(less func(a, b Position) bool) []Position {
	out := make([]Position, 0, len(g.Positions))
	for _, p := range g.Positions {
		if p.Index != Center {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// byBiasDescending returns all positions, center included, sorted stably
// by descending bias. Used by the prompt and consciousness-map renderers,
// which walk the full grid.
func (g *Grid) byBiasDescending() []Position {
	out := make([]Position, len(g.Positions))
	copy(out, g.Positions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Bias > out[j].Bias })
	return out
}

func clampHead(positions []Position, n int) []Position {
	if n < 0 {
		n = 0
	}
	if n > len(positions) {
		n = len(positions)
	}
	return positions[:n]
}

// FormatBias renders a bias weight with minimal digits while keeping a
// trailing ".0" on whole values, so 1.0 prints as "1.0" and 0.95 as
// "0.95". This matches the historical profile output, which downstream
// prompts and recorded signatures depend on.
func FormatBias(b float64) string {
	s := strconv.FormatFloat(b, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
