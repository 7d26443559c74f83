package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. Its cost basis is never stored: it is derived
// from BOM items by the costing package on every read.
type Product struct {
	ID          string
	BusinessID  string
	SKU         string // unique per business
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // selling price, IDR
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
