package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is a raw material consumed by product BOMs.
// UnitPrice is the weighted-average restock cost; Stock is mutated only by
// stock movements and sales fulfilment, never by CRUD updates.
type Material struct {
	ID         string
	BusinessID string
	Name       string
	Unit       string          // pcs, m, kg, ...
	UnitPrice  decimal.Decimal // cost per unit, IDR
	Stock      decimal.Decimal
	MinStock   decimal.Decimal // low-stock threshold
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLowStock reports whether the material is at or below its threshold.
func (m *Material) IsLowStock() bool {
	return m.Stock.LessThanOrEqual(m.MinStock)
}
