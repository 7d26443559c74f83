package repository

import "github.com/raihanpm/bisnisku-api/internal/domain/entity"

// ProductRepository persistence port for Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBusinessAndSKU(businessID, sku string) (*entity.Product, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
