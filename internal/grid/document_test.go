package grid

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPositionMap() map[string]any {
	return map[string]any{
		"index":            3,
		"label":            "Minimal Reasoner",
		"label_zh":         "極簡推理",
		"consciousness":    "ghrāṇa-vijñāna",
		"consciousness_zh": "鼻識",
		"function":         "minimal_reasoning",
		"bias":             0.7,
		"description":      "Strips arguments to their simplest valid form.",
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := Default()

	data, err := g.Encode()
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAMLDecodeRoundTrip(t *testing.T) {
	g := Default()
	g.Name = "yaml-check"
	p, err := g.Get(7)
	require.NoError(t, err)
	p.Bias = 0.85

	data, err := g.EncodeYAML()
	require.NoError(t, err)
	got, err := DecodeYAML(data)
	require.NoError(t, err)
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeShape(t *testing.T) {
	data, err := Default().Encode()
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "{\n  \"mandala_grid\": {\n    \"version\": \"2.0\",\n    \"name\": \"quan-default\""))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	// CJK and diacritics stay raw, not \u-escaped.
	assert.Contains(t, out, `"label_zh": "中心觀測者"`)
	assert.Contains(t, out, `"consciousness": "ālayavijñāna"`)
	assert.NotContains(t, out, `\u`)
	assert.Contains(t, out, `"bias": 0.95`)
}

func TestDecodeNestedAndFlat(t *testing.T) {
	inner := map[string]any{
		"version":     "3.1",
		"name":        "shapes",
		"description": "same grid, two shapes",
		"positions":   []any{validPositionMap()},
	}
	nested := mustJSON(t, map[string]any{"mandala_grid": inner})
	flat := mustJSON(t, inner)

	fromNested, err := Decode(nested)
	require.NoError(t, err)
	fromFlat, err := Decode(flat)
	require.NoError(t, err)
	if diff := cmp.Diff(fromNested, fromFlat); diff != "" {
		t.Errorf("nested vs flat mismatch (-nested +flat):\n%s", diff)
	}
	assert.Equal(t, "shapes", fromNested.Name)
	assert.Equal(t, "3.1", fromNested.Version)
}

func TestDecodeDefaults(t *testing.T) {
	g, err := Decode(mustJSON(t, map[string]any{"positions": []any{validPositionMap()}}))
	require.NoError(t, err)
	assert.Equal(t, "2.0", g.Version)
	assert.Equal(t, "custom", g.Name)
	assert.Equal(t, "", g.Description)

	t.Run("empty positions list is a valid grid", func(t *testing.T) {
		g, err := Decode([]byte(`{"positions": []}`))
		require.NoError(t, err)
		assert.Empty(t, g.Positions)
	})
}

func TestDecodeMissingPositions(t *testing.T) {
	for _, in := range []string{`{}`, `{"mandala_grid": {}}`, `{"name": "no-positions"}`} {
		_, err := Decode([]byte(in))
		require.Error(t, err, "input %s", in)
		assert.True(t, errors.Is(err, ErrInvalidProfile), "input %s", in)
		assert.Contains(t, err.Error(), "positions")
	}
}

func TestDecodeRequiredPositionFields(t *testing.T) {
	required := []string{"index", "label", "label_zh", "consciousness", "consciousness_zh", "function", "bias"}
	for _, field := range required {
		t.Run("missing "+field, func(t *testing.T) {
			pos := validPositionMap()
			delete(pos, field)
			_, err := Decode(mustJSON(t, map[string]any{"positions": []any{pos}}))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidProfile))
			assert.Contains(t, err.Error(), field)
		})
	}

	t.Run("description is optional", func(t *testing.T) {
		pos := validPositionMap()
		delete(pos, "description")
		g, err := Decode(mustJSON(t, map[string]any{"positions": []any{pos}}))
		require.NoError(t, err)
		assert.Equal(t, "", g.Positions[0].Description)
	})
}

func TestDecodeDuplicateIndex(t *testing.T) {
	a := validPositionMap()
	b := validPositionMap()
	b["label"] = "Impostor"
	_, err := Decode(mustJSON(t, map[string]any{"positions": []any{a, b}}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidProfile))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestDecodePermissiveBias(t *testing.T) {
	// Bias is a free weight; values outside [0,1] decode without complaint.
	hot := validPositionMap()
	hot["bias"] = 1.7
	cold := validPositionMap()
	cold["index"] = 4
	cold["bias"] = -0.25
	g, err := Decode(mustJSON(t, map[string]any{"positions": []any{hot, cold}}))
	require.NoError(t, err)
	assert.Equal(t, 1.7, g.Positions[0].Bias)
	assert.Equal(t, -0.25, g.Positions[1].Bias)
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{`[1, 2, 3]`, `"hello"`, `{"mandala_grid": "hello"}`, `{"positions": `, `not json at all`} {
		_, err := Decode([]byte(in))
		require.Error(t, err, "input %s", in)
		assert.True(t, errors.Is(err, ErrInvalidProfile), "input %s", in)
	}
}

func TestDecodeYAMLSources(t *testing.T) {
	t.Run("flat hand-written profile", func(t *testing.T) {
		src := `
name: handmade
positions:
  - index: 0
    label: Core
    label_zh: 核心
    consciousness: ālayavijñāna
    consciousness_zh: 第八識
    function: core_identity
    bias: 1
`
		g, err := DecodeYAML([]byte(src))
		require.NoError(t, err)
		assert.Equal(t, "handmade", g.Name)
		assert.Equal(t, "2.0", g.Version)
		require.Len(t, g.Positions, 1)
		assert.Equal(t, 1.0, g.Positions[0].Bias)
	})

	t.Run("missing field still enforced", func(t *testing.T) {
		src := `
positions:
  - index: 0
    label: Core
`
		_, err := DecodeYAML([]byte(src))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidProfile))
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	g := Default()
	g.Description = ""

	got, err := FromDocument(g.Document())
	require.NoError(t, err)
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("document round trip mismatch (-want +got):\n%s", diff)
	}

	t.Run("duplicate index rejected", func(t *testing.T) {
		doc := Document{MandalaGrid: GridDocument{Positions: []Position{
			{Index: 2, Label: "A"},
			{Index: 2, Label: "B"},
		}}}
		_, err := FromDocument(doc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidProfile))
	})

	t.Run("document does not alias the grid", func(t *testing.T) {
		g := Default()
		doc := g.Document()
		doc.MandalaGrid.Positions[0].Bias = 0.123
		assert.Equal(t, 1.0, g.Positions[0].Bias)
	})
}
