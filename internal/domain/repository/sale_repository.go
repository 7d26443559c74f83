package repository

import "github.com/raihanpm/bisnisku-api/internal/domain/entity"

// SaleRepository persistence port for sales and their items.
type SaleRepository interface {
	Create(sale *entity.Sale, items []entity.SaleItem) error
	GetByID(id string) (*entity.Sale, []entity.SaleItem, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Sale, error)
}
