package dto

// AdvisorRequest input for the LLM advisor: which product to narrate.
type AdvisorRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AdvisorNarrativeDTO output of the LLM advisor: a short plain-language
// reading of the computed metrics. Advisory only, nothing here feeds back
// into the deterministic rule engine.
type AdvisorNarrativeDTO struct {
	Summary    string   `json:"summary"`
	NextSteps  []string `json:"next_steps"`
	Confidence float64  `json:"confidence"` // 0.0–1.0, as reported by the model
}
