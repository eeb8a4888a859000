package grid

// Position is a single cell in the 3×3 mandala grid: a labeled cognitive
// function with a bias weight that scales its influence on the agent's
// reasoning. The zh fields carry the traditional-script forms and must
// survive serialization byte-for-byte.
type Position struct {
	Index           int     `json:"index" yaml:"index"`
	Label           string  `json:"label" yaml:"label"`
	LabelZH         string  `json:"label_zh" yaml:"label_zh"`
	Consciousness   string  `json:"consciousness" yaml:"consciousness"`
	ConsciousnessZH string  `json:"consciousness_zh" yaml:"consciousness_zh"`
	Function        string  `json:"function" yaml:"function"`
	Bias            float64 `json:"bias" yaml:"bias"`
	Description     string  `json:"description" yaml:"description"`
}
