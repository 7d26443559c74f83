package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBOMItemRequest input to add a BOM line. The unit cost is snapshotted
// from the material's current price server-side; clients never send it.
type CreateBOMItemRequest struct {
	VariationID string          `json:"variation_id"` // empty = base BOM line
	MaterialID  string          `json:"material_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Notes       string          `json:"notes"`
}

// UpdateBOMItemRequest input to update a BOM line's quantity or notes.
type UpdateBOMItemRequest struct {
	Quantity *decimal.Decimal `json:"quantity"`
	Notes    *string          `json:"notes"`
}

// BOMItemResponse BOM line output. TotalCost is always recomputed.
type BOMItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	VariationID  string          `json:"variation_id,omitempty"`
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BOMListResponse all BOM lines of a product, split base vs variations.
type BOMListResponse struct {
	ProductID      string            `json:"product_id"`
	BaseItems      []BOMItemResponse `json:"base_items"`
	VariationItems []BOMItemResponse `json:"variation_items"`
	BaseCost       decimal.Decimal   `json:"base_cost"`
}
