package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/costing"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// BOMUseCase manages bill-of-materials lines. On Create the material's current
// unit price is captured on the line; the line then keeps that cost until
// ResnapshotCosts refreshes it deliberately.
type BOMUseCase struct {
	repo          repository.BOMItemRepository
	materialRepo  repository.MaterialRepository
	productRepo   repository.ProductRepository
	variationRepo repository.VariationRepository
}

// NewBOMUseCase builds the use case.
func NewBOMUseCase(
	repo repository.BOMItemRepository,
	materialRepo repository.MaterialRepository,
	productRepo repository.ProductRepository,
	variationRepo repository.VariationRepository,
) *BOMUseCase {
	return &BOMUseCase{
		repo:          repo,
		materialRepo:  materialRepo,
		productRepo:   productRepo,
		variationRepo: variationRepo,
	}
}

// ownedProduct loads a product and checks it belongs to the caller's business.
// A foreign product is indistinguishable from a missing one.
func (uc *BOMUseCase) ownedProduct(businessID, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Create adds a BOM line, snapshotting the material's current price as the
// line's unit cost.
func (uc *BOMUseCase) Create(businessID, productID string, in dto.CreateBOMItemRequest) (*dto.BOMItemResponse, error) {
	if _, err := uc.ownedProduct(businessID, productID); err != nil {
		return nil, err
	}
	if in.VariationID != "" {
		variation, err := uc.variationRepo.GetByID(in.VariationID)
		if err != nil {
			return nil, err
		}
		if variation == nil || variation.ProductID != productID {
			return nil, domain.ErrNotFound
		}
	}
	material, err := uc.materialRepo.GetByID(in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil || material.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}

	qty := in.Quantity
	if qty.IsNegative() {
		qty = decimal.Zero
	}
	now := time.Now()
	item := &entity.BOMItem{
		ID:          uuid.New().String(),
		ProductID:   productID,
		VariationID: in.VariationID,
		MaterialID:  in.MaterialID,
		Quantity:    qty,
		UnitCost:    material.UnitPrice, // snapshot, not a live reference
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return uc.toBOMItemResponse(item, material), nil
}

// Update edits quantity or notes of a line. The unit cost snapshot stays.
func (uc *BOMUseCase) Update(businessID, id string, in dto.UpdateBOMItemRequest) (*dto.BOMItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.ownedProduct(businessID, item.ProductID); err != nil {
		return nil, err
	}
	if in.Quantity != nil && !in.Quantity.IsNegative() {
		item.Quantity = *in.Quantity
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return uc.toBOMItemResponse(item, nil), nil
}

// ListByProduct returns all lines of a product, split into base and
// variation-specific, with the derived base cost.
func (uc *BOMUseCase) ListByProduct(businessID, productID string) (*dto.BOMListResponse, error) {
	if _, err := uc.ownedProduct(businessID, productID); err != nil {
		return nil, err
	}
	items, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	out := &dto.BOMListResponse{ProductID: productID}
	var baseItems []entity.BOMItem
	for _, it := range items {
		resp := *uc.toBOMItemResponse(it, nil)
		if material, err := uc.materialRepo.GetByID(it.MaterialID); err == nil && material != nil {
			resp.MaterialName = material.Name
			resp.Unit = material.Unit
		}
		if it.VariationID == "" {
			baseItems = append(baseItems, *it)
			out.BaseItems = append(out.BaseItems, resp)
		} else {
			out.VariationItems = append(out.VariationItems, resp)
		}
	}
	out.BaseCost = costing.BaseCost(baseItems)
	return out, nil
}

// ResnapshotCosts refreshes the unit cost of every line of a product from the
// materials' current prices. Used after a supplier price change.
func (uc *BOMUseCase) ResnapshotCosts(businessID, productID string) (*dto.BOMListResponse, error) {
	if _, err := uc.ownedProduct(businessID, productID); err != nil {
		return nil, err
	}
	items, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		material, err := uc.materialRepo.GetByID(it.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			continue // orphaned line: keep the old snapshot
		}
		if it.UnitCost.Equal(material.UnitPrice) {
			continue
		}
		it.UnitCost = material.UnitPrice
		it.UpdatedAt = time.Now()
		if err := uc.repo.Update(it); err != nil {
			return nil, err
		}
	}
	return uc.ListByProduct(businessID, productID)
}

// Delete removes a BOM line.
func (uc *BOMUseCase) Delete(businessID, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.ownedProduct(businessID, item.ProductID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *BOMUseCase) toBOMItemResponse(b *entity.BOMItem, material *entity.Material) *dto.BOMItemResponse {
	if b == nil {
		return nil
	}
	resp := &dto.BOMItemResponse{
		ID:          b.ID,
		ProductID:   b.ProductID,
		VariationID: b.VariationID,
		MaterialID:  b.MaterialID,
		Quantity:    b.Quantity,
		UnitCost:    b.UnitCost,
		TotalCost:   b.TotalCost(),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if material != nil {
		resp.MaterialName = material.Name
		resp.Unit = material.Unit
	}
	return resp
}
