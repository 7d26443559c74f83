// Package sales records orders and consumes materials per BOM on fulfilment.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// CreateSaleUseCase records a sale and, in the same transaction, writes one
// "out" movement per consumed material: BOM line quantity × units sold, base
// lines plus the sold variation's own lines.
type CreateSaleUseCase struct {
	tx            TxRunner
	productRepo   repository.ProductRepository
	variationRepo repository.VariationRepository
	bomRepo       repository.BOMItemRepository
	saleRepo      repository.SaleRepository // pool-bound, reads only
}

// NewCreateSaleUseCase builds the use case.
func NewCreateSaleUseCase(
	tx TxRunner,
	productRepo repository.ProductRepository,
	variationRepo repository.VariationRepository,
	bomRepo repository.BOMItemRepository,
	saleRepo repository.SaleRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		tx:            tx,
		productRepo:   productRepo,
		variationRepo: variationRepo,
		bomRepo:       bomRepo,
		saleRepo:      saleRepo,
	}
}

// consumption is one material draw computed from a BOM line.
type consumption struct {
	materialID string
	quantity   decimal.Decimal
}

// Create validates the items, resolves prices, and commits sale + movements.
func (uc *CreateSaleUseCase) Create(ctx context.Context, businessID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	switch in.Channel {
	case entity.ChannelShopee, entity.ChannelTikTok, entity.ChannelDirect:
	default:
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Channel:    in.Channel,
		Reference:  in.Reference,
		Notes:      in.Notes,
		CreatedBy:  userID,
		CreatedAt:  now,
	}

	var items []entity.SaleItem
	var consumptions []consumption
	total := decimal.Zero

	for _, reqItem := range in.Items {
		if reqItem.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.BusinessID != businessID {
			return nil, domain.ErrNotFound
		}

		unitPrice := reqItem.UnitPrice
		bomLines, err := uc.bomRepo.ListBase(product.ID)
		if err != nil {
			return nil, err
		}

		if reqItem.VariationID != "" {
			variation, err := uc.variationRepo.GetByID(reqItem.VariationID)
			if err != nil {
				return nil, err
			}
			if variation == nil || variation.ProductID != product.ID {
				return nil, domain.ErrNotFound
			}
			if unitPrice.IsZero() && !variation.Price.IsZero() {
				unitPrice = variation.Price
			}
			variationLines, err := uc.bomRepo.ListByVariation(variation.ID)
			if err != nil {
				return nil, err
			}
			bomLines = append(bomLines, variationLines...)
		}
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		if unitPrice.IsNegative() {
			unitPrice = decimal.Zero
		}

		item := entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   product.ID,
			VariationID: reqItem.VariationID,
			Quantity:    reqItem.Quantity,
			UnitPrice:   unitPrice,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())

		for _, line := range bomLines {
			if line.Quantity.LessThanOrEqual(decimal.Zero) {
				continue
			}
			consumptions = append(consumptions, consumption{
				materialID: line.MaterialID,
				quantity:   line.Quantity.Mul(reqItem.Quantity),
			})
		}
	}
	sale.Total = total

	err := uc.tx.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		materialRepo repository.MaterialRepository,
	) error {
		if err := saleRepo.Create(sale, items); err != nil {
			return err
		}
		for _, c := range consumptions {
			material, err := materialRepo.GetByID(c.materialID)
			if err != nil {
				return err
			}
			if material == nil {
				return domain.ErrNotFound
			}
			newStock := material.Stock.Sub(c.quantity)
			if newStock.IsNegative() {
				return domain.ErrInsufficientStock
			}
			if err := materialRepo.ApplyStockChange(material.ID, newStock, material.UnitPrice); err != nil {
				return err
			}
			if err := movRepo.Create(&entity.StockMovement{
				ID:         uuid.New().String(),
				BusinessID: businessID,
				MaterialID: c.materialID,
				Type:       entity.MovementTypeOut,
				Quantity:   c.quantity,
				Reference:  sale.ID,
				Notes:      "sale fulfilment",
				CreatedBy:  userID,
				CreatedAt:  now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

// GetByID returns a sale with its items.
func (uc *CreateSaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, items, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale, items), nil
}

// List returns the business's sales, newest first, without items.
func (uc *CreateSaleUseCase) List(businessID string, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale, items []entity.SaleItem) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	out := &dto.SaleResponse{
		ID:         s.ID,
		BusinessID: s.BusinessID,
		Channel:    s.Channel,
		Reference:  s.Reference,
		Total:      s.Total,
		Notes:      s.Notes,
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			VariationID: it.VariationID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return out
}
