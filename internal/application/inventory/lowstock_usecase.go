package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// idealStockFactor targets 1.5× the threshold on restock, so a material does
// not trip the alert again the week after.
var idealStockFactor = decimal.NewFromFloat(1.5)

// LowStockUseCase builds the weekly restock list: materials at or below their
// threshold, with a suggested order quantity and its estimated cost.
type LowStockUseCase struct {
	materialRepo repository.MaterialRepository
}

// NewLowStockUseCase builds the use case.
func NewLowStockUseCase(materialRepo repository.MaterialRepository) *LowStockUseCase {
	return &LowStockUseCase{materialRepo: materialRepo}
}

// GenerateSuggestions returns materials below threshold ranked by urgency:
// deepest relative deficit first, then highest estimated restock cost.
func (uc *LowStockUseCase) GenerateSuggestions(ctx context.Context, businessID string) ([]dto.LowStockSuggestionDTO, error) {
	materials, err := uc.materialRepo.ListLowStock(businessID)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return []dto.LowStockSuggestionDTO{}, nil
	}

	suggestions := make([]dto.LowStockSuggestionDTO, 0, len(materials))
	for _, m := range materials {
		idealStock := m.MinStock.Mul(idealStockFactor)
		suggestedQty := idealStock.Sub(m.Stock)
		if suggestedQty.LessThanOrEqual(decimal.Zero) {
			suggestedQty = decimal.Zero
		}
		suggestions = append(suggestions, dto.LowStockSuggestionDTO{
			MaterialID:        m.ID,
			Name:              m.Name,
			Unit:              m.Unit,
			CurrentStock:      m.Stock,
			MinStock:          m.MinStock,
			IdealStock:        idealStock,
			SuggestedOrderQty: suggestedQty,
			EstimatedCost:     suggestedQty.Mul(m.UnitPrice),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.MinStock.Sub(a.CurrentStock)
		defB := b.MinStock.Sub(b.CurrentStock)
		if !defA.Equal(defB) {
			return defA.GreaterThan(defB)
		}
		return a.EstimatedCost.GreaterThan(b.EstimatedCost)
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}

	return suggestions, nil
}
