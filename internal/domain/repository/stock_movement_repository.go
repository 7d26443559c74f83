package repository

import "github.com/raihanpm/bisnisku-api/internal/domain/entity"

// StockMovementRepository persistence port for material stock movements.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByMaterial(materialID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.StockMovement, error)
}
