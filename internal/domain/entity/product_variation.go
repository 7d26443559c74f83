package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariation is a purchasable configuration of a product (e.g. a
// color/size combination) with its own price, stock and incremental BOM items.
type ProductVariation struct {
	ID        string
	ProductID string
	Name      string
	SKU       string // optional
	Price     decimal.Decimal
	Stock     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
