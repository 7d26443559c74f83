package insight_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanpm/bisnisku-api/internal/application/insight"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// In-memory repositories. Only the read paths the use case touches are real.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByBusinessAndSKU(businessID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.BusinessID == businessID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error          { return nil }

type fakeVariationRepo struct {
	byProduct map[string][]*entity.ProductVariation
}

func (r *fakeVariationRepo) Create(*entity.ProductVariation) error { return nil }
func (r *fakeVariationRepo) GetByID(id string) (*entity.ProductVariation, error) {
	for _, list := range r.byProduct {
		for _, v := range list {
			if v.ID == id {
				return v, nil
			}
		}
	}
	return nil, nil
}
func (r *fakeVariationRepo) ListByProduct(productID string) ([]*entity.ProductVariation, error) {
	return r.byProduct[productID], nil
}
func (r *fakeVariationRepo) Update(*entity.ProductVariation) error { return nil }
func (r *fakeVariationRepo) Delete(string) error                   { return nil }

type fakeBOMRepo struct {
	byProduct map[string][]*entity.BOMItem
}

func (r *fakeBOMRepo) Create(*entity.BOMItem) error { return nil }
func (r *fakeBOMRepo) GetByID(id string) (*entity.BOMItem, error) {
	for _, list := range r.byProduct {
		for _, it := range list {
			if it.ID == id {
				return it, nil
			}
		}
	}
	return nil, nil
}
func (r *fakeBOMRepo) ListByProduct(productID string) ([]*entity.BOMItem, error) {
	return r.byProduct[productID], nil
}
func (r *fakeBOMRepo) ListBase(productID string) ([]*entity.BOMItem, error) {
	var out []*entity.BOMItem
	for _, it := range r.byProduct[productID] {
		if it.VariationID == "" {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *fakeBOMRepo) ListByVariation(variationID string) ([]*entity.BOMItem, error) {
	var out []*entity.BOMItem
	for _, list := range r.byProduct {
		for _, it := range list {
			if it.VariationID == variationID {
				out = append(out, it)
			}
		}
	}
	return out, nil
}
func (r *fakeBOMRepo) Update(*entity.BOMItem) error { return nil }
func (r *fakeBOMRepo) Delete(string) error          { return nil }

// buildFixture: one product at 100_000 IDR with a 20_000 base BOM and two
// variations. V1 adds 1_500 and inherits the product price; V2 has no extra
// lines and its own price of 120_000. Average cost: 20_000 + (1_500+0)/2.
func buildFixture() *insight.InsightUseCase {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {
			ID:         "p1",
			BusinessID: "b1",
			SKU:        "TAS-01",
			Name:       "Tas Rajut",
			Price:      decimal.NewFromInt(100000),
			Active:     true,
		},
	}}
	variations := &fakeVariationRepo{byProduct: map[string][]*entity.ProductVariation{
		"p1": {
			{ID: "v1", ProductID: "p1", Name: "Hitam"},
			{ID: "v2", ProductID: "p1", Name: "Premium", Price: decimal.NewFromInt(120000)},
		},
	}}
	bom := &fakeBOMRepo{byProduct: map[string][]*entity.BOMItem{
		"p1": {
			{ID: "b1", ProductID: "p1", MaterialID: "m1",
				Quantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(10000)},
			{ID: "b2", ProductID: "p1", VariationID: "v1", MaterialID: "m2",
				Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(1500)},
		},
	}}

	return insight.NewInsightUseCase(products, variations, bom, insight.FeeModelsFromOverrides(0, 0, 0))
}

func TestGetProductInsight_CostAndMargin(t *testing.T) {
	uc := buildFixture()

	out, err := uc.GetProductInsight("p1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 2, out.BOMItemCount)
	assert.Equal(t, 2, out.VariationCount)

	// Base cost 20_000; average across variations 20_750.
	assert.True(t, out.CostBasis.TotalCost.Equal(decimal.NewFromInt(20000)),
		"base cost basis, got %s", out.CostBasis.TotalCost)
	assert.True(t, out.AverageCost.Equal(decimal.NewFromInt(20750)),
		"average cost, got %s", out.AverageCost)

	// (100_000 - 20_750) / 100_000 = 79.25%.
	assert.True(t, out.Profitability.HPP.Equal(decimal.NewFromInt(20750)))
	assert.True(t, out.Profitability.ProfitMarginPct.Equal(decimal.NewFromFloat(79.25)),
		"margin, got %s", out.Profitability.ProfitMarginPct)
}

func TestGetProductInsight_ChannelsInScheduleOrder(t *testing.T) {
	uc := buildFixture()

	out, err := uc.GetProductInsight("p1")
	require.NoError(t, err)
	require.Len(t, out.Channels, 2)

	shopee := out.Channels[0]
	assert.Equal(t, entity.ChannelShopee, shopee.Channel)
	// 100_000 - 7.5% - 1_250 = 91_250; minus 20_750 cost = 70_500.
	assert.True(t, shopee.NetRevenue.Equal(decimal.NewFromInt(91250)), "got %s", shopee.NetRevenue)
	assert.True(t, shopee.NetProfit.Equal(decimal.NewFromInt(70500)), "got %s", shopee.NetProfit)

	tiktok := out.Channels[1]
	assert.Equal(t, entity.ChannelTikTok, tiktok.Channel)
	// 100_000 - 8% = 92_000; minus 20_750 cost = 71_250.
	assert.True(t, tiktok.NetRevenue.Equal(decimal.NewFromInt(92000)), "got %s", tiktok.NetRevenue)
	assert.True(t, tiktok.NetProfit.Equal(decimal.NewFromInt(71250)), "got %s", tiktok.NetProfit)
}

func TestGetProductInsight_VariationDetail(t *testing.T) {
	uc := buildFixture()

	out, err := uc.GetProductInsight("p1")
	require.NoError(t, err)
	require.Len(t, out.Variations, 2)

	// V1 has no own price: inherits 100_000 and carries base + its own line.
	v1 := out.Variations[0]
	assert.Equal(t, "v1", v1.Variation.ID)
	assert.True(t, v1.CostBasis.TotalCost.Equal(decimal.NewFromInt(21500)), "got %s", v1.CostBasis.TotalCost)
	assert.True(t, v1.Profitability.SellingPrice.Equal(decimal.NewFromInt(100000)))

	// V2 has its own price and no extra lines.
	v2 := out.Variations[1]
	assert.Equal(t, "v2", v2.Variation.ID)
	assert.True(t, v2.CostBasis.TotalCost.Equal(decimal.NewFromInt(20000)), "got %s", v2.CostBasis.TotalCost)
	assert.True(t, v2.Profitability.SellingPrice.Equal(decimal.NewFromInt(120000)))
}

func TestGetProductInsight_RecommendationsSortedByPriority(t *testing.T) {
	uc := buildFixture()

	out, err := uc.GetProductInsight("p1")
	require.NoError(t, err)

	// Healthy margin + both channels above threshold + variations present:
	// three high-priority advisories, then the marketing one.
	require.Len(t, out.Recommendations, 4)
	assert.Equal(t, "high", out.Recommendations[0].Priority)
	assert.Equal(t, "high", out.Recommendations[1].Priority)
	assert.Equal(t, "high", out.Recommendations[2].Priority)
	assert.Equal(t, "medium", out.Recommendations[3].Priority)
	assert.Equal(t, "marketing", out.Recommendations[3].Category)

	// IDs are deterministic per product and rule.
	assert.Equal(t, "p1:scale-ads", out.Recommendations[0].ID)
}

func TestGetProductInsight_UnknownProductIsNil(t *testing.T) {
	uc := buildFixture()

	out, err := uc.GetProductInsight("missing")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListCostSummaries(t *testing.T) {
	uc := buildFixture()

	rows, err := uc.ListCostSummaries("b1", 20, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "p1", rows[0].Product.ID)
	assert.Equal(t, 2, rows[0].VariationCount)
	assert.True(t, rows[0].AverageCost.Equal(decimal.NewFromInt(20750)), "got %s", rows[0].AverageCost)
	assert.True(t, rows[0].ProfitMarginPct.Equal(decimal.NewFromFloat(79.25)), "got %s", rows[0].ProfitMarginPct)
}
