package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest one line of a sale. UnitPrice overrides the catalog price
// when set (marketplace discounts); zero means "use the catalog price".
type SaleItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	VariationID string          `json:"variation_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest input to record a sale. Fulfilment consumes materials
// according to each item's BOM inside one transaction.
type CreateSaleRequest struct {
	Channel   string            `json:"channel" validate:"required,oneof=shopee tiktok direct"`
	Reference string            `json:"reference"`
	Notes     string            `json:"notes"`
	Items     []SaleItemRequest `json:"items" validate:"required,min=1"`
}

// SaleItemResponse one sale line output.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	VariationID string          `json:"variation_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse sale output with items.
type SaleResponse struct {
	ID         string             `json:"id"`
	BusinessID string             `json:"business_id"`
	Channel    string             `json:"channel"`
	Reference  string             `json:"reference,omitempty"`
	Total      decimal.Decimal    `json:"total"`
	Notes      string             `json:"notes,omitempty"`
	Items      []SaleItemResponse `json:"items"`
	CreatedBy  string             `json:"created_by"`
	CreatedAt  time.Time          `json:"created_at"`
}

// SaleListResponse paginated sale list (without items).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
