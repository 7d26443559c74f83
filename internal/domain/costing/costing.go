// Package costing holds the pure derivation pipeline: BOM cost roll-up,
// profitability / ROAS metrics, channel fee models and the advisory rule
// engine. Everything here is a stateless function over already-loaded
// snapshots; persistence and HTTP stay in the outer layers.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// CostBasis is the derived cost of one product, or one product+variation pair.
// It is recomputed on every load and never persisted.
type CostBasis struct {
	BaseCost      decimal.Decimal // sum of the base BOM lines
	VariationCost decimal.Decimal // sum of the selected variation's own lines
	TotalCost     decimal.Decimal // BaseCost + VariationCost
}

// BaseCost sums quantity × unit cost over the given BOM lines.
// Incomplete rows (negative quantity or cost) contribute zero; an empty
// collection yields zero. Partial data is expected, not an error.
func BaseCost(items []entity.BOMItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalCost())
	}
	return total
}

// ComputeCostBasis derives the cost basis for a product given its base BOM
// lines and, optionally, the lines of one selected variation.
func ComputeCostBasis(baseItems, variationItems []entity.BOMItem) CostBasis {
	base := BaseCost(baseItems)
	variation := BaseCost(variationItems)
	return CostBasis{
		BaseCost:      base,
		VariationCost: variation,
		TotalCost:     base.Add(variation),
	}
}

// AverageTotalCost reports the cost basis for a product in list/summary views
// where no single variation is selected: base cost plus the mean of the
// per-variation incremental costs. With no variations it equals the base cost,
// so products with cheap and expensive variations are not overstated.
func AverageTotalCost(baseItems []entity.BOMItem, perVariation [][]entity.BOMItem) decimal.Decimal {
	base := BaseCost(baseItems)
	if len(perVariation) == 0 {
		return base
	}
	sum := decimal.Zero
	for _, items := range perVariation {
		sum = sum.Add(BaseCost(items))
	}
	return base.Add(sum.Div(decimal.NewFromInt(int64(len(perVariation)))))
}

// WeightedAverageUnitCost returns the new average unit cost of a material
// after a restock.
// NewCost = ((CurrentStock × CurrentCost) + (QtyIn × CostIn)) / (CurrentStock + QtyIn)
func WeightedAverageUnitCost(currentStock, currentCost, qtyIn, costIn decimal.Decimal) decimal.Decimal {
	sum := currentStock.Add(qtyIn)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := currentStock.Mul(currentCost).Add(qtyIn.Mul(costIn))
	return num.Div(sum)
}
