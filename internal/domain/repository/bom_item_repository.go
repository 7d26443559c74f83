package repository

import "github.com/raihanpm/bisnisku-api/internal/domain/entity"

// BOMItemRepository persistence port for BOM lines.
// ListByProduct returns base and variation lines together; callers split on
// VariationID. ListBase and ListByVariation return one slice each.
type BOMItemRepository interface {
	Create(item *entity.BOMItem) error
	GetByID(id string) (*entity.BOMItem, error)
	ListByProduct(productID string) ([]*entity.BOMItem, error)
	ListBase(productID string) ([]*entity.BOMItem, error)
	ListByVariation(variationID string) ([]*entity.BOMItem, error)
	Update(item *entity.BOMItem) error
	Delete(id string) error
}
