package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanpm/bisnisku-api/internal/domain/costing"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

func bomItem(qty, unitCost float64) entity.BOMItem {
	return entity.BOMItem{
		Quantity: decimal.NewFromFloat(qty),
		UnitCost: decimal.NewFromFloat(unitCost),
	}
}

func TestBaseCost_SumsQuantityTimesUnitCost(t *testing.T) {
	// "Fabric" at 10000/unit, 2 units per product → 20000.
	items := []entity.BOMItem{
		bomItem(2, 10000),
		bomItem(0.5, 4000), // 2000
	}
	got := costing.BaseCost(items)
	assert.True(t, got.Equal(decimal.NewFromInt(22000)), "base cost = 20000 + 2000, got %s", got)
}

func TestBaseCost_EmptyIsZero(t *testing.T) {
	assert.True(t, costing.BaseCost(nil).IsZero())
	assert.True(t, costing.BaseCost([]entity.BOMItem{}).IsZero())
}

// Adding a zero-quantity line never changes the total, and incomplete rows
// (negative values from half-filled forms) count as zero instead of failing.
func TestBaseCost_ZeroAndNegativeLinesAreInert(t *testing.T) {
	base := []entity.BOMItem{bomItem(2, 10000)}
	withNoise := append([]entity.BOMItem{
		bomItem(0, 99999),
		bomItem(-1, 5000),
		bomItem(3, -100),
	}, base...)

	assert.True(t, costing.BaseCost(withNoise).Equal(costing.BaseCost(base)),
		"zero/negative lines must not move the total")
}

func TestComputeCostBasis_AddsVariationIncrement(t *testing.T) {
	baseItems := []entity.BOMItem{bomItem(2, 10000)}
	variationItems := []entity.BOMItem{bomItem(1, 1500)}

	cb := costing.ComputeCostBasis(baseItems, variationItems)

	assert.True(t, cb.BaseCost.Equal(decimal.NewFromInt(20000)))
	assert.True(t, cb.VariationCost.Equal(decimal.NewFromInt(1500)))
	assert.True(t, cb.TotalCost.Equal(decimal.NewFromInt(21500)))
}

// Two variations must stay independent: changing V2's lines never moves V1's
// cost basis.
func TestComputeCostBasis_VariationsAreIndependent(t *testing.T) {
	baseItems := []entity.BOMItem{bomItem(1, 1000)}
	v1 := []entity.BOMItem{bomItem(1, 200)}
	v2 := []entity.BOMItem{bomItem(1, 800)}

	before := costing.ComputeCostBasis(baseItems, v1)

	// Mutate V2 heavily.
	v2 = append(v2, bomItem(10, 10000))
	_ = costing.ComputeCostBasis(baseItems, v2)

	after := costing.ComputeCostBasis(baseItems, v1)
	assert.True(t, before.TotalCost.Equal(after.TotalCost),
		"V1 cost basis must not depend on V2's BOM")
}

// List-view cost for a product with variations: base + mean of the variation
// increments. base=1000, V1=200, V2=800 → 1000 + (200+800)/2 = 1500, while the
// detail views stay at 1200 and 1800.
func TestAverageTotalCost_MeanOfVariationIncrements(t *testing.T) {
	baseItems := []entity.BOMItem{bomItem(1, 1000)}
	v1 := []entity.BOMItem{bomItem(1, 200)}
	v2 := []entity.BOMItem{bomItem(1, 800)}

	avg := costing.AverageTotalCost(baseItems, [][]entity.BOMItem{v1, v2})
	require.True(t, avg.Equal(decimal.NewFromInt(1500)), "average total cost, got %s", avg)

	assert.True(t, costing.ComputeCostBasis(baseItems, v1).TotalCost.Equal(decimal.NewFromInt(1200)))
	assert.True(t, costing.ComputeCostBasis(baseItems, v2).TotalCost.Equal(decimal.NewFromInt(1800)))
}

func TestAverageTotalCost_NoVariationsEqualsBase(t *testing.T) {
	baseItems := []entity.BOMItem{bomItem(3, 500)}
	avg := costing.AverageTotalCost(baseItems, nil)
	assert.True(t, avg.Equal(decimal.NewFromInt(1500)))
}

func TestWeightedAverageUnitCost(t *testing.T) {
	// 10 units at 100 in stock, restock 10 units at 200 → new average 150.
	got := costing.WeightedAverageUnitCost(
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		decimal.NewFromInt(10), decimal.NewFromInt(200),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(150)), "got %s", got)
}

func TestWeightedAverageUnitCost_EmptyStockIsZero(t *testing.T) {
	got := costing.WeightedAverageUnitCost(
		decimal.Zero, decimal.NewFromInt(100),
		decimal.Zero, decimal.NewFromInt(200),
	)
	assert.True(t, got.IsZero())
}
