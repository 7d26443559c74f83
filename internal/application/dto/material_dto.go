package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest input to create a material. InitialStock and UnitPrice
// seed the first stock position; later changes go through movements.
type CreateMaterialRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Unit         string          `json:"unit" validate:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
}

// UpdateMaterialRequest input to update a material (stock and unit price are
// movement-managed and not accepted here).
type UpdateMaterialRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit     *string          `json:"unit"`
	MinStock *decimal.Decimal `json:"min_stock"`
}

// MaterialResponse material output.
type MaterialResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Stock      decimal.Decimal `json:"stock"`
	MinStock   decimal.Decimal `json:"min_stock"`
	LowStock   bool            `json:"low_stock"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// MaterialListResponse paginated material list.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LowStockSuggestionDTO one material below threshold with a suggested restock.
type LowStockSuggestionDTO struct {
	MaterialID        string          `json:"material_id"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	MinStock          decimal.Decimal `json:"min_stock"`
	IdealStock        decimal.Decimal `json:"ideal_stock"`
	SuggestedOrderQty decimal.Decimal `json:"suggested_order_qty"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	Priority          int             `json:"priority"` // 1 = most urgent
}
