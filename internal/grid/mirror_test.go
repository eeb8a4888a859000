package grid

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

const wantDefaultMirror = `═══ Mirror Analysis ═══

The AI-as-Mirror theory: your mandala_grid is not a design spec —
it's a self-portrait of how you think.

Your strongest cognitive patterns:
  ⬆ Deconstructor (bias=0.95): You naturally actively seeks counter-examples and hidden assumptions.
  ⬆ Logic Gate (bias=0.9): You naturally rejects any output that contradicts established logic chains.
  ⬆ Boundary Sentinel (bias=0.9): You naturally flags when reasoning exceeds model capabilities or data.

Your deprioritized patterns:
  ⬇ Legacy Keeper (bias=0.5): You tend to under-invest in core_record_relay
  ⬇ Pragmatic Executor (bias=0.6): You tend to under-invest in practical_execution

Your center: Center Observer — The silent witness. Observes all positions without attachment.

Buddhism calls this self-awareness. You call it mandala_grid. Same thing.`

func TestMirrorAnalysis(t *testing.T) {
	got := MirrorAnalysis(Default())
	if diff := cmp.Diff(wantDefaultMirror, got); diff != "" {
		t.Errorf("MirrorAnalysis() mismatch (-want +got):\n%s", diff)
	}
}

func TestMirrorAnalysisWithoutCenter(t *testing.T) {
	g := Default()
	g.Positions = g.Positions[1:]

	out := MirrorAnalysis(g)
	assert.NotContains(t, out, "Your center:")
	assert.True(t, strings.HasSuffix(out, "Buddhism calls this self-awareness. You call it mandala_grid. Same thing."))
}
