package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/insight"
	"github.com/raihanpm/bisnisku-api/internal/application/ports"
	"github.com/raihanpm/bisnisku-api/internal/domain"
)

const advisorTimeout = 10 * time.Second

// AdvisorUseCase orchestrates the LLM narration of a product insight.
// The insight itself is computed deterministically first; the model only gets
// to phrase it, never to change the numbers or the recommendations.
type AdvisorUseCase struct {
	insights *insight.InsightUseCase
	llm      ports.LLMService
}

// NewAdvisorUseCase builds the use case. llm may come from any adapter.
func NewAdvisorUseCase(insights *insight.InsightUseCase, llm ports.LLMService) *AdvisorUseCase {
	return &AdvisorUseCase{insights: insights, llm: llm}
}

// Narrate computes the product insight and asks the model for a short
// plain-language reading. External calls get a 10 second timeout so a slow
// vendor cannot pin server goroutines.
func (uc *AdvisorUseCase) Narrate(ctx context.Context, businessID string, req dto.AdvisorRequest) (*dto.AdvisorNarrativeDTO, error) {
	if req.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	productInsight, err := uc.insights.GetProductInsight(req.ProductID)
	if err != nil {
		return nil, err
	}
	if productInsight == nil {
		return nil, domain.ErrNotFound
	}
	if productInsight.Product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	ctx, cancel := context.WithTimeout(ctx, advisorTimeout)
	defer cancel()

	narrative, err := uc.llm.NarrateInsight(ctx, productInsight)
	if err != nil {
		return nil, fmt.Errorf("advisor narration: %w", err)
	}
	return narrative, nil
}
