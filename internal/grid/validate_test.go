package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings(t *testing.T) {
	t.Run("default grid is clean", func(t *testing.T) {
		assert.Empty(t, Default().Warnings())
	})

	t.Run("bias outside range", func(t *testing.T) {
		g := Default()
		g.Positions[1].Bias = 1.7
		g.Positions[4].Bias = -0.25

		warnings := g.Warnings()
		assert.Len(t, warnings, 2)
		assert.Equal(t, "position 1 (Logic Gate): bias 1.7 outside [0, 1]", warnings[0])
		assert.Equal(t, "position 4 (Pragmatic Executor): bias -0.25 outside [0, 1]", warnings[1])
	})

	t.Run("missing indices and short count", func(t *testing.T) {
		g := Default()
		g.Positions = g.Positions[:7] // drops indices 7 and 8

		warnings := g.Warnings()
		assert.Len(t, warnings, 2)
		assert.Equal(t, "7 positions (a full grid has 9)", warnings[0])
		assert.Equal(t, "missing canonical indices [7 8]", warnings[1])
	})

	t.Run("empty grid", func(t *testing.T) {
		g := &Grid{Name: "empty"}
		warnings := g.Warnings()
		assert.Len(t, warnings, 2)
		assert.True(t, strings.HasPrefix(warnings[0], "0 positions"))
	})
}
