package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest input for a stock movement.
// UnitCost is required for "in" movements (it feeds the weighted average);
// "adjust" accepts a signed quantity.
type RegisterMovementRequest struct {
	MaterialID string          `json:"material_id" validate:"required"`
	Type       string          `json:"type" validate:"required,oneof=in out adjust"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
}

// MovementResponse stock movement output.
type MovementResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	MaterialID string          `json:"material_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Reference  string          `json:"reference,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MovementListResponse paginated movement list.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
