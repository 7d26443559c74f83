package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement types.
const (
	MovementTypeIn     = "in"     // restock; carries a unit cost
	MovementTypeOut    = "out"    // consumption (manual or sales fulfilment)
	MovementTypeAdjust = "adjust" // correction, signed quantity
)

// StockMovement records one mutation of a material's stock.
type StockMovement struct {
	ID         string
	BusinessID string
	MaterialID string
	Type       string          // in, out, adjust
	Quantity   decimal.Decimal // positive for in/out; signed for adjust
	UnitCost   decimal.Decimal // purchase cost, only meaningful for "in"
	Reference  string          // sale ID, purchase note, etc.
	Notes      string
	CreatedBy  string // UserID
	CreatedAt  time.Time
}
