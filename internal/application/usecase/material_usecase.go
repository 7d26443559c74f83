package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// MaterialUseCase CRUD for materials. Stock and unit price are mutated through
// movements only; Create seeds the opening position.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase builds the use case.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create registers a material with its opening stock and unit price.
// Negative numbers are normalized to zero, matching the permissive handling
// of incomplete records everywhere else.
func (uc *MaterialUseCase) Create(businessID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	unitPrice := in.UnitPrice
	if unitPrice.IsNegative() {
		unitPrice = decimal.Zero
	}
	stock := in.InitialStock
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	minStock := in.MinStock
	if minStock.IsNegative() {
		minStock = decimal.Zero
	}
	now := time.Now()
	material := &entity.Material{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		Unit:       in.Unit,
		UnitPrice:  unitPrice,
		Stock:      stock,
		MinStock:   minStock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID fetches one material.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toMaterialResponse(material), nil
}

// Update edits name, unit and threshold. Stock and price stay movement-managed.
// A material from another business reads as missing.
func (uc *MaterialUseCase) Update(businessID, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil || material.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.MinStock != nil && !in.MinStock.IsNegative() {
		material.MinStock = *in.MinStock
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List returns the business's materials with pagination.
func (uc *MaterialUseCase) List(businessID string, limit, offset int) (*dto.MaterialListResponse, error) {
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a material by ID.
func (uc *MaterialUseCase) Delete(businessID, id string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil || material.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		Name:       m.Name,
		Unit:       m.Unit,
		UnitPrice:  m.UnitPrice,
		Stock:      m.Stock,
		MinStock:   m.MinStock,
		LowStock:   m.IsLowStock(),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
