package repository

import "github.com/raihanpm/bisnisku-api/internal/domain/entity"

// VariationRepository persistence port for ProductVariation.
type VariationRepository interface {
	Create(variation *entity.ProductVariation) error
	GetByID(id string) (*entity.ProductVariation, error)
	ListByProduct(productID string) ([]*entity.ProductVariation, error)
	Update(variation *entity.ProductVariation) error
	Delete(id string) error
}
