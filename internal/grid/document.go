package grid

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the interchange form of a grid: the grid object nested
// under a "mandala_grid" key. This is the only shape Encode emits;
// Decode also accepts the bare grid object for hand-written profiles.
type Document struct {
	MandalaGrid GridDocument `json:"mandala_grid" yaml:"mandala_grid"`
}

// GridDocument is the grid object as persisted. Field order here is the
// wire order of the emitted JSON.
type GridDocument struct {
	Version     string     `json:"version" yaml:"version"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Positions   []Position `json:"positions" yaml:"positions"`
}

// Document returns the interchange form of the grid. The positions slice
// is copied, so the document does not alias the grid.
func (g *Grid) Document() Document {
	return Document{MandalaGrid: GridDocument{
		Version:     g.Version,
		Name:        g.Name,
		Description: g.Description,
		Positions:   append([]Position(nil), g.Positions...),
	}}
}

// FromDocument rebuilds a grid from its interchange form. Fields copy
// through verbatim; the only check is position index uniqueness, so
// FromDocument(g.Document()) round-trips any valid grid exactly.
func FromDocument(doc Document) (*Grid, error) {
	gd := doc.MandalaGrid
	if err := checkIndexUniqueness(gd.Positions); err != nil {
		return nil, err
	}
	return &Grid{
		Positions:   append([]Position(nil), gd.Positions...),
		Version:     gd.Version,
		Name:        gd.Name,
		Description: gd.Description,
	}, nil
}

// Encode serializes the grid as indented JSON in interchange form.
// HTML escaping is off so the CJK and diacritic fields stay readable.
func (g *Grid) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Document()); err != nil {
		return nil, fmt.Errorf("encode grid %q: %w", g.Name, err)
	}
	return buf.Bytes(), nil
}

// EncodeYAML serializes the grid as YAML in interchange form.
func (g *Grid) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(g.Document())
	if err != nil {
		return nil, fmt.Errorf("encode grid %q: %w", g.Name, err)
	}
	return data, nil
}

// Decode parses a JSON profile into a grid. The document may nest the
// grid under "mandala_grid" or be the bare grid object. Every position
// must carry index, label, label_zh, consciousness, consciousness_zh,
// function, and bias; description may be omitted. Missing grid metadata
// falls back to version "2.0" and name "custom". All failures wrap
// ErrInvalidProfile.
func Decode(data []byte) (*Grid, error) {
	return decode(json.Unmarshal, data)
}

// DecodeYAML parses a YAML profile with the same rules as Decode.
func DecodeYAML(data []byte) (*Grid, error) {
	return decode(yaml.Unmarshal, data)
}

func decode(unmarshal func([]byte, any) error, data []byte) (*Grid, error) {
	var doc rawDocument
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	rg := doc.MandalaGrid
	if rg == nil {
		rg = &rawGrid{}
		if err := unmarshal(data, rg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
	}
	return rg.toGrid()
}

// Raw decode targets. Pointer fields distinguish an absent key from a
// zero value, which is what lets decoding enforce the required position
// fields and apply grid-level defaults only where keys are truly missing.
type rawDocument struct {
	MandalaGrid *rawGrid `json:"mandala_grid" yaml:"mandala_grid"`
}

type rawGrid struct {
	Version     *string        `json:"version" yaml:"version"`
	Name        *string        `json:"name" yaml:"name"`
	Description *string        `json:"description" yaml:"description"`
	Positions   *[]rawPosition `json:"positions" yaml:"positions"`
}

type rawPosition struct {
	Index           *int     `json:"index" yaml:"index"`
	Label           *string  `json:"label" yaml:"label"`
	LabelZH         *string  `json:"label_zh" yaml:"label_zh"`
	Consciousness   *string  `json:"consciousness" yaml:"consciousness"`
	ConsciousnessZH *string  `json:"consciousness_zh" yaml:"consciousness_zh"`
	Function        *string  `json:"function" yaml:"function"`
	Bias            *float64 `json:"bias" yaml:"bias"`
	Description     *string  `json:"description" yaml:"description"`
}

func (rg *rawGrid) toGrid() (*Grid, error) {
	if rg.Positions == nil {
		return nil, fmt.Errorf("%w: missing positions", ErrInvalidProfile)
	}
	positions := make([]Position, 0, len(*rg.Positions))
	for ordinal, rp := range *rg.Positions {
		p, err := rp.toPosition(ordinal)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	if err := checkIndexUniqueness(positions); err != nil {
		return nil, err
	}
	g := &Grid{Positions: positions, Version: DefaultVersion, Name: "custom"}
	if rg.Version != nil {
		g.Version = *rg.Version
	}
	if rg.Name != nil {
		g.Name = *rg.Name
	}
	if rg.Description != nil {
		g.Description = *rg.Description
	}
	return g, nil
}

func (rp rawPosition) toPosition(ordinal int) (Position, error) {
	var missing string
	switch {
	case rp.Index == nil:
		missing = "index"
	case rp.Label == nil:
		missing = "label"
	case rp.LabelZH == nil:
		missing = "label_zh"
	case rp.Consciousness == nil:
		missing = "consciousness"
	case rp.ConsciousnessZH == nil:
		missing = "consciousness_zh"
	case rp.Function == nil:
		missing = "function"
	case rp.Bias == nil:
		missing = "bias"
	}
	if missing != "" {
		return Position{}, fmt.Errorf("%w: position %d missing %q", ErrInvalidProfile, ordinal, missing)
	}
	p := Position{
		Index:           *rp.Index,
		Label:           *rp.Label,
		LabelZH:         *rp.LabelZH,
		Consciousness:   *rp.Consciousness,
		ConsciousnessZH: *rp.ConsciousnessZH,
		Function:        *rp.Function,
		Bias:            *rp.Bias,
	}
	if rp.Description != nil {
		p.Description = *rp.Description
	}
	return p, nil
}

func checkIndexUniqueness(positions []Position) error {
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		if seen[p.Index] {
			return fmt.Errorf("%w: duplicate position index %d", ErrInvalidProfile, p.Index)
		}
		seen[p.Index] = true
	}
	return nil
}
