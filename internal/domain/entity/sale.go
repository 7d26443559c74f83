package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sales channels.
const (
	ChannelShopee = "shopee"
	ChannelTikTok = "tiktok"
	ChannelDirect = "direct"
)

// Sale is one recorded order on a channel. Fulfilment consumes materials
// according to each item's BOM.
type Sale struct {
	ID         string
	BusinessID string
	Channel    string // shopee | tiktok | direct
	Reference  string // marketplace order number, optional
	Total      decimal.Decimal
	Notes      string
	CreatedBy  string // UserID
	CreatedAt  time.Time
}

// SaleItem is one product (optionally a specific variation) line of a sale.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	VariationID string // empty when the base product was sold
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Subtotal is Quantity × UnitPrice.
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
