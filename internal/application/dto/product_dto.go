package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Active      *bool           `json:"active"`
}

// UpdateProductRequest input to update a product.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"business_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateVariationRequest input to add a variation to a product.
type CreateVariationRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	Stock decimal.Decimal `json:"stock"`
}

// UpdateVariationRequest input to update a variation.
type UpdateVariationRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU   *string          `json:"sku"`
	Price *decimal.Decimal `json:"price"`
	Stock *decimal.Decimal `json:"stock"`
}

// VariationResponse variation output.
type VariationResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Stock     decimal.Decimal `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
