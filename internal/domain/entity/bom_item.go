package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMItem is one material line of a product's bill of materials.
// VariationID is empty for the base BOM and set for variation-specific lines.
// UnitCost is captured from the material's price when the line is created and
// does not follow later price changes; use the resnapshot operation to refresh.
type BOMItem struct {
	ID          string
	ProductID   string
	VariationID string // empty = base BOM line
	MaterialID  string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalCost is always Quantity × UnitCost, recomputed on every call.
// Negative quantities or costs (incomplete rows) contribute zero.
func (b *BOMItem) TotalCost() decimal.Decimal {
	if b.Quantity.IsNegative() || b.UnitCost.IsNegative() {
		return decimal.Zero
	}
	return b.Quantity.Mul(b.UnitCost)
}
