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

// VariationUseCase CRUD for product variations.
type VariationUseCase struct {
	repo        repository.VariationRepository
	productRepo repository.ProductRepository
}

// NewVariationUseCase builds the use case.
func NewVariationUseCase(repo repository.VariationRepository, productRepo repository.ProductRepository) *VariationUseCase {
	return &VariationUseCase{repo: repo, productRepo: productRepo}
}

// ownedProduct loads a product and checks it belongs to the caller's business.
func (uc *VariationUseCase) ownedProduct(businessID, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Create adds a variation to a product.
func (uc *VariationUseCase) Create(businessID, productID string, in dto.CreateVariationRequest) (*dto.VariationResponse, error) {
	if _, err := uc.ownedProduct(businessID, productID); err != nil {
		return nil, err
	}
	price := in.Price
	if price.IsNegative() {
		price = decimal.Zero
	}
	stock := in.Stock
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	now := time.Now()
	variation := &entity.ProductVariation{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      in.Name,
		SKU:       in.SKU,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(variation); err != nil {
		return nil, err
	}
	return toVariationResponse(variation), nil
}

// ListByProduct returns all variations of a product.
func (uc *VariationUseCase) ListByProduct(businessID, productID string) ([]dto.VariationResponse, error) {
	if _, err := uc.ownedProduct(businessID, productID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariationResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVariationResponse(v))
	}
	return items, nil
}

// Update edits a variation.
func (uc *VariationUseCase) Update(businessID, id string, in dto.UpdateVariationRequest) (*dto.VariationResponse, error) {
	variation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variation == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.ownedProduct(businessID, variation.ProductID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		variation.Name = *in.Name
	}
	if in.SKU != nil {
		variation.SKU = *in.SKU
	}
	if in.Price != nil && !in.Price.IsNegative() {
		variation.Price = *in.Price
	}
	if in.Stock != nil && !in.Stock.IsNegative() {
		variation.Stock = *in.Stock
	}
	variation.UpdatedAt = time.Now()
	if err := uc.repo.Update(variation); err != nil {
		return nil, err
	}
	return toVariationResponse(variation), nil
}

// Delete removes a variation (its BOM lines cascade in the DB).
func (uc *VariationUseCase) Delete(businessID, id string) error {
	variation, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if variation == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.ownedProduct(businessID, variation.ProductID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toVariationResponse(v *entity.ProductVariation) *dto.VariationResponse {
	if v == nil {
		return nil
	}
	return &dto.VariationResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Name:      v.Name,
		SKU:       v.SKU,
		Price:     v.Price,
		Stock:     v.Stock,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
