// Package insight wires the pure costing pipeline to persisted records:
// it loads a product with its variations and BOM lines, derives cost basis,
// profitability, channel metrics and recommendations, and maps them to DTOs.
package insight

import (
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain/costing"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// InsightUseCase derives the full profitability view of a product.
type InsightUseCase struct {
	productRepo   repository.ProductRepository
	variationRepo repository.VariationRepository
	bomRepo       repository.BOMItemRepository
	feeModels     []costing.FeeModel
}

// NewInsightUseCase builds the use case. feeModels come from config-merged
// defaults; their order fixes the order of the channels array in responses.
func NewInsightUseCase(
	productRepo repository.ProductRepository,
	variationRepo repository.VariationRepository,
	bomRepo repository.BOMItemRepository,
	feeModels []costing.FeeModel,
) *InsightUseCase {
	return &InsightUseCase{
		productRepo:   productRepo,
		variationRepo: variationRepo,
		bomRepo:       bomRepo,
		feeModels:     feeModels,
	}
}

// GetProductInsight loads one product's rows and runs the whole derivation:
// cost basis, average cost, margin/ROAS, channel metrics, per-variation
// detail and the recommendation set sorted high → low.
func (uc *InsightUseCase) GetProductInsight(productID string) (*dto.ProductInsightDTO, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	variations, err := uc.variationRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items, err := uc.bomRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	baseItems, byVariation := splitBOMItems(items)

	// Average cost drives the product-level numbers so that products with
	// uneven variations are not overstated in the summary.
	perVariation := make([][]entity.BOMItem, 0, len(variations))
	for _, v := range variations {
		perVariation = append(perVariation, byVariation[v.ID])
	}
	avgCost := costing.AverageTotalCost(baseItems, perVariation)

	costBasis := costing.ComputeCostBasis(baseItems, nil)
	metrics := costing.ComputeProfitability(product.Price, avgCost)

	channelDTOs := make([]dto.ChannelMetricsDTO, 0, len(uc.feeModels))
	channelMetrics := make(map[string]costing.ChannelMetrics, len(uc.feeModels))
	for _, fee := range uc.feeModels {
		m := costing.ComputeChannelProfitability(product.Price, avgCost, fee)
		channelMetrics[fee.Channel] = m
		channelDTOs = append(channelDTOs, dto.ChannelMetricsDTO{
			Channel:      m.Channel,
			FeePct:       fee.FeePct,
			FixedFee:     fee.FixedFee,
			NetRevenue:   m.NetRevenue,
			NetProfit:    m.NetProfit,
			NetMarginPct: m.NetMarginPct,
		})
	}

	recs := costing.Generate(costing.Signals{
		ProductID:      product.ID,
		Metrics:        metrics,
		VariationCount: len(variations),
		BOMItemCount:   len(items),
		Channels:       channelMetrics,
	})
	costing.SortByPriority(recs)

	out := &dto.ProductInsightDTO{
		Product:         toProductResponse(product),
		BOMItemCount:    len(items),
		VariationCount:  len(variations),
		CostBasis:       toCostBasisDTO(costBasis),
		AverageCost:     avgCost,
		Profitability:   toProfitabilityDTO(metrics),
		Channels:        channelDTOs,
		Recommendations: toRecommendationDTOs(recs),
	}

	for _, v := range variations {
		vb := costing.ComputeCostBasis(baseItems, byVariation[v.ID])
		price := v.Price
		if price.IsZero() {
			price = product.Price // variation inherits the product price
		}
		out.Variations = append(out.Variations, dto.VariationInsightDTO{
			Variation: dto.VariationResponse{
				ID:        v.ID,
				ProductID: v.ProductID,
				Name:      v.Name,
				SKU:       v.SKU,
				Price:     v.Price,
				Stock:     v.Stock,
				CreatedAt: v.CreatedAt,
				UpdatedAt: v.UpdatedAt,
			},
			CostBasis:     toCostBasisDTO(vb),
			Profitability: toProfitabilityDTO(costing.ComputeProfitability(price, vb.TotalCost)),
		})
	}

	return out, nil
}

// ListCostSummaries builds the list-view rows: average cost and headline
// margin per product.
func (uc *InsightUseCase) ListCostSummaries(businessID string, limit, offset int) ([]dto.ProductCostSummaryDTO, error) {
	products, err := uc.productRepo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductCostSummaryDTO, 0, len(products))
	for _, p := range products {
		variations, err := uc.variationRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		items, err := uc.bomRepo.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		baseItems, byVariation := splitBOMItems(items)
		perVariation := make([][]entity.BOMItem, 0, len(variations))
		for _, v := range variations {
			perVariation = append(perVariation, byVariation[v.ID])
		}
		avgCost := costing.AverageTotalCost(baseItems, perVariation)
		metrics := costing.ComputeProfitability(p.Price, avgCost)

		out = append(out, dto.ProductCostSummaryDTO{
			Product:         toProductResponse(p),
			VariationCount:  len(variations),
			AverageCost:     avgCost,
			ProfitMarginPct: metrics.ProfitMarginPct,
		})
	}
	return out, nil
}

// splitBOMItems separates base lines from variation-specific ones.
func splitBOMItems(items []*entity.BOMItem) (base []entity.BOMItem, byVariation map[string][]entity.BOMItem) {
	byVariation = make(map[string][]entity.BOMItem)
	for _, it := range items {
		if it.VariationID == "" {
			base = append(base, *it)
		} else {
			byVariation[it.VariationID] = append(byVariation[it.VariationID], *it)
		}
	}
	return base, byVariation
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCostBasisDTO(cb costing.CostBasis) dto.CostBasisDTO {
	return dto.CostBasisDTO{
		BaseCost:      cb.BaseCost,
		VariationCost: cb.VariationCost,
		TotalCost:     cb.TotalCost,
	}
}

func toProfitabilityDTO(m costing.ProfitabilityMetrics) dto.ProfitabilityDTO {
	return dto.ProfitabilityDTO{
		HPP:             m.HPP,
		SellingPrice:    m.SellingPrice,
		ProfitMarginPct: m.ProfitMarginPct.Round(2),
		MinimalROAS:     m.MinimalROAS.Round(2),
		RecommendedROAS: m.RecommendedROAS.Round(2),
	}
}

func toRecommendationDTOs(recs []costing.Recommendation) []dto.RecommendationDTO {
	out := make([]dto.RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendationDTO{
			ID:             r.ID,
			Category:       r.Category,
			Priority:       r.Priority,
			Title:          r.Title,
			Description:    r.Description,
			ActionItems:    r.ActionItems,
			ExpectedImpact: r.ExpectedImpact,
			Difficulty:     r.Difficulty,
		})
	}
	return out
}

// FeeModelsFromOverrides merges config overrides into the default schedule,
// returning the models in a fixed order (shopee, tiktok).
func FeeModelsFromOverrides(shopeePct, shopeeFixed, tiktokPct float64) []costing.FeeModel {
	schedule := costing.DefaultFeeSchedule()

	shopee := schedule[entity.ChannelShopee]
	if shopeePct > 0 {
		shopee.FeePct = decimal.NewFromFloat(shopeePct)
	}
	if shopeeFixed > 0 {
		shopee.FixedFee = decimal.NewFromFloat(shopeeFixed)
	}

	tiktok := schedule[entity.ChannelTikTok]
	if tiktokPct > 0 {
		tiktok.FeePct = decimal.NewFromFloat(tiktokPct)
	}

	return []costing.FeeModel{shopee, tiktok}
}
