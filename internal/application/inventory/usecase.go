// Package inventory contains the stock movement engine for materials:
// every stock change goes through a transactional movement so history,
// stock level and the weighted-average unit cost stay consistent.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/costing"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// RegisterMovementUseCase applies one stock movement to a material.
//
// Rules:
//   - "in":     stock += qty; unit price becomes the weighted average of the
//     current position and the incoming batch.
//   - "out":    stock -= qty; fails with ErrInsufficientStock below zero.
//   - "adjust": signed qty added to stock; clamped at zero never below.
type RegisterMovementUseCase struct {
	tx           TxRunner
	movRepo      repository.StockMovementRepository // pool-bound, reads only
	materialRepo repository.MaterialRepository      // pool-bound, reads only
}

// NewRegisterMovementUseCase builds the use case.
func NewRegisterMovementUseCase(tx TxRunner, movRepo repository.StockMovementRepository, materialRepo repository.MaterialRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{tx: tx, movRepo: movRepo, materialRepo: materialRepo}
}

// RegisterMovement validates and applies the movement inside one transaction.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, businessID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if in.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjust:
		if in.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.StockMovement{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		MaterialID: in.MaterialID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		Reference:  in.Reference,
		Notes:      in.Notes,
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}

	err := uc.tx.Run(ctx, func(movRepo repository.StockMovementRepository, materialRepo repository.MaterialRepository) error {
		material, err := materialRepo.GetByID(in.MaterialID)
		if err != nil {
			return err
		}
		if material == nil || material.BusinessID != businessID {
			return domain.ErrNotFound
		}

		newStock := material.Stock
		newPrice := material.UnitPrice

		switch in.Type {
		case entity.MovementTypeIn:
			cost := in.UnitCost
			if cost.IsNegative() {
				cost = decimal.Zero
			}
			newPrice = costing.WeightedAverageUnitCost(material.Stock, material.UnitPrice, in.Quantity, cost)
			newStock = material.Stock.Add(in.Quantity)
		case entity.MovementTypeOut:
			newStock = material.Stock.Sub(in.Quantity)
			if newStock.IsNegative() {
				return domain.ErrInsufficientStock
			}
		case entity.MovementTypeAdjust:
			newStock = material.Stock.Add(in.Quantity)
			if newStock.IsNegative() {
				newStock = decimal.Zero
			}
		}

		if err := materialRepo.ApplyStockChange(material.ID, newStock, newPrice); err != nil {
			return err
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	return toMovementResponse(movement), nil
}

// ListByMaterial returns a material's movement history. The material must
// belong to the caller's business; a foreign one reads as missing.
func (uc *RegisterMovementUseCase) ListByMaterial(businessID, materialID string, limit, offset int) (*dto.MovementListResponse, error) {
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil || material.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByMaterial(materialID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		MaterialID: m.MaterialID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		UnitCost:   m.UnitCost,
		Reference:  m.Reference,
		Notes:      m.Notes,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
	}
}
