package ports

import (
	"context"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
)

// LLMService is the outgoing port for language-model advisors. Any adapter
// (Anthropic, Gemini, a mock) implements this contract; the application layer
// never knows the concrete vendor.
type LLMService interface {
	// NarrateInsight turns a product's computed metrics and recommendations
	// into a short plain-language reading for a non-technical owner.
	// The context must carry a timeout: external calls must not block
	// request handling indefinitely.
	NarrateInsight(ctx context.Context, insight *dto.ProductInsightDTO) (*dto.AdvisorNarrativeDTO, error)
}
