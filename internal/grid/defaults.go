package grid

// Canonical grid identity. Decoded profiles that omit these fields fall
// back to DefaultVersion and the name "custom", never to DefaultName.
const (
	DefaultName    = "quan-default"
	DefaultVersion = "2.0"
)

// defaultPositions is the canonical Quan reference table. Index 0 is the
// center; 1 through 7 map the classical Eight Consciousnesses and 8 sits
// beyond them as the lineage position.
var defaultPositions = [9]Position{
	{
		Index:           0,
		Label:           "Center Observer",
		LabelZH:         "中心觀測者",
		Consciousness:   "ālayavijñāna",
		ConsciousnessZH: "第八識（阿賴耶識）",
		Function:        "core_identity",
		Bias:            1.0,
		Description:     "The silent witness. Observes all positions without attachment.",
	},
	{
		Index:           1,
		Label:           "Logic Gate",
		LabelZH:         "邏輯門",
		Consciousness:   "manovijñāna",
		ConsciousnessZH: "第六識（意識）",
		Function:        "logical_consistency",
		Bias:            0.9,
		Description:     "Rejects any output that contradicts established logic chains.",
	},
	{
		Index:           2,
		Label:           "Evidence Filter",
		LabelZH:         "證據過濾",
		Consciousness:   "cakṣur-vijñāna",
		ConsciousnessZH: "眼識",
		Function:        "critical_evidence",
		Bias:            0.8,
		Description:     "Demands verifiable evidence before accepting claims.",
	},
	{
		Index:           3,
		Label:           "Minimal Reasoner",
		LabelZH:         "極簡推理",
		Consciousness:   "ghrāṇa-vijñāna",
		ConsciousnessZH: "鼻識",
		Function:        "minimal_reasoning",
		Bias:            0.7,
		Description:     "Strips arguments to their simplest valid form.",
	},
	{
		Index:           4,
		Label:           "Pragmatic Executor",
		LabelZH:         "實踐執行",
		Consciousness:   "kāya-vijñāna",
		ConsciousnessZH: "身識",
		Function:        "practical_execution",
		Bias:            0.6,
		Description:     "Converts reasoning into actionable steps.",
	},
	{
		Index:           5,
		Label:           "Precision Output",
		LabelZH:         "精準產出",
		Consciousness:   "jihvā-vijñāna",
		ConsciousnessZH: "舌識",
		Function:        "precise_output",
		Bias:            0.8,
		Description:     "Ensures output matches the required format and depth.",
	},
	{
		Index:           6,
		Label:           "Boundary Sentinel",
		LabelZH:         "認知邊界",
		Consciousness:   "śrotra-vijñāna",
		ConsciousnessZH: "耳識",
		Function:        "cognitive_boundary",
		Bias:            0.9,
		Description:     "Flags when reasoning exceeds model capabilities or data.",
	},
	{
		Index:           7,
		Label:           "Deconstructor",
		LabelZH:         "解構者",
		Consciousness:   "manas",
		ConsciousnessZH: "第七識（末那識）",
		Function:        "deconstruction",
		Bias:            0.95,
		Description:     "Actively seeks counter-examples and hidden assumptions.",
	},
	{
		Index:           8,
		Label:           "Legacy Keeper",
		LabelZH:         "傳承守護",
		Consciousness:   "beyond-eight",
		ConsciousnessZH: "傳承（超八識）",
		Function:        "core_record_relay",
		Bias:            0.5,
		Description:     "Ensures continuity across sessions and generations.",
	},
}

// Default returns a fresh copy of the canonical Quan grid. Every call
// allocates, so callers may mutate the result freely.
func Default() *Grid {
	return &Grid{
		Positions:   append([]Position(nil), defaultPositions[:]...),
		Version:     DefaultVersion,
		Name:        DefaultName,
		Description: "The canonical Quan personality grid with Eight Consciousnesses mapping.",
	}
}
