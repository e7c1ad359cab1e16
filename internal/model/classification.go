package model

// Classification is the analyzer's verdict on a situation description.
type Classification struct {
	Intent     Intent   `json:"intent"`
	Urgency    Urgency  `json:"urgency"`
	Confidence float64  `json:"confidence"`        // [0, 0.95] pre-synthesis
	Matched    []string `json:"matched,omitempty"` // winning intent's matching patterns, for explainability
}
