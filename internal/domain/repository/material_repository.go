package repository

import (
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// MaterialRepository persistence port for Material.
// Stock and UnitPrice are mutated only through ApplyStockChange (called inside
// a movement transaction), never through Update.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Material, error)
	ListLowStock(businessID string) ([]*entity.Material, error)
	Update(material *entity.Material) error
	ApplyStockChange(materialID string, newStock, newUnitPrice decimal.Decimal) error
	Delete(id string) error
}
