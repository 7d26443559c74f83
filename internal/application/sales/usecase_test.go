package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/sales"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByBusinessAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListByBusiness(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error          { return nil }

type fakeVariationRepo struct {
	variations map[string]*entity.ProductVariation
}

func (r *fakeVariationRepo) Create(*entity.ProductVariation) error { return nil }
func (r *fakeVariationRepo) GetByID(id string) (*entity.ProductVariation, error) {
	return r.variations[id], nil
}
func (r *fakeVariationRepo) ListByProduct(string) ([]*entity.ProductVariation, error) {
	return nil, nil
}
func (r *fakeVariationRepo) Update(*entity.ProductVariation) error { return nil }
func (r *fakeVariationRepo) Delete(string) error                   { return nil }

type fakeBOMRepo struct {
	base        map[string][]*entity.BOMItem // by product
	byVariation map[string][]*entity.BOMItem
}

func (r *fakeBOMRepo) Create(*entity.BOMItem) error              { return nil }
func (r *fakeBOMRepo) GetByID(string) (*entity.BOMItem, error)   { return nil, nil }
func (r *fakeBOMRepo) ListByProduct(string) ([]*entity.BOMItem, error) {
	return nil, nil
}
func (r *fakeBOMRepo) ListBase(productID string) ([]*entity.BOMItem, error) {
	return r.base[productID], nil
}
func (r *fakeBOMRepo) ListByVariation(variationID string) ([]*entity.BOMItem, error) {
	return r.byVariation[variationID], nil
}
func (r *fakeBOMRepo) Update(*entity.BOMItem) error { return nil }
func (r *fakeBOMRepo) Delete(string) error          { return nil }

type fakeSaleRepo struct {
	sale  *entity.Sale
	items []entity.SaleItem
}

func (r *fakeSaleRepo) Create(sale *entity.Sale, items []entity.SaleItem) error {
	r.sale = sale
	r.items = items
	return nil
}
func (r *fakeSaleRepo) GetByID(string) (*entity.Sale, []entity.SaleItem, error) {
	return r.sale, r.items, nil
}
func (r *fakeSaleRepo) ListByBusiness(string, int, int) ([]*entity.Sale, error) {
	if r.sale == nil {
		return nil, nil
	}
	return []*entity.Sale{r.sale}, nil
}

type fakeMaterialRepo struct {
	materials map[string]*entity.Material
}

func (r *fakeMaterialRepo) Create(*entity.Material) error { return nil }
func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.materials[id], nil
}
func (r *fakeMaterialRepo) ListByBusiness(string, int, int) ([]*entity.Material, error) {
	return nil, nil
}
func (r *fakeMaterialRepo) ListLowStock(string) ([]*entity.Material, error) { return nil, nil }
func (r *fakeMaterialRepo) Update(*entity.Material) error                   { return nil }
func (r *fakeMaterialRepo) ApplyStockChange(materialID string, newStock, newUnitPrice decimal.Decimal) error {
	m := r.materials[materialID]
	m.Stock = newStock
	m.UnitPrice = newUnitPrice
	return nil
}
func (r *fakeMaterialRepo) Delete(string) error { return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByMaterial(string, int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) ListByBusiness(string, int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

// fakeTx calls the callback directly. A failed callback leaves restore to the
// test; the real adapter rolls back.
type fakeTx struct {
	saleRepo     *fakeSaleRepo
	movRepo      *fakeMovementRepo
	materialRepo *fakeMaterialRepo
}

func (tx *fakeTx) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	movRepo repository.StockMovementRepository,
	materialRepo repository.MaterialRepository,
) error) error {
	return fn(tx.saleRepo, tx.movRepo, tx.materialRepo)
}

type saleFixture struct {
	uc        *sales.CreateSaleUseCase
	materials *fakeMaterialRepo
	movements *fakeMovementRepo
	saleRepo  *fakeSaleRepo
}

// newSaleFixture: product at 50_000 with 0.5 m of fabric per unit; variation
// "Besar" at 65_000 adds one zipper per unit.
func newSaleFixture(fabricStock float64) *saleFixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", BusinessID: "b1", Name: "Pouch", Price: decimal.NewFromInt(50000), Active: true},
	}}
	variations := &fakeVariationRepo{variations: map[string]*entity.ProductVariation{
		"v1": {ID: "v1", ProductID: "p1", Name: "Besar", Price: decimal.NewFromInt(65000)},
	}}
	bom := &fakeBOMRepo{
		base: map[string][]*entity.BOMItem{
			"p1": {{ID: "b1", ProductID: "p1", MaterialID: "fabric",
				Quantity: decimal.NewFromFloat(0.5), UnitCost: decimal.NewFromInt(20000)}},
		},
		byVariation: map[string][]*entity.BOMItem{
			"v1": {{ID: "b2", ProductID: "p1", VariationID: "v1", MaterialID: "zipper",
				Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(2000)}},
		},
	}
	materials := &fakeMaterialRepo{materials: map[string]*entity.Material{
		"fabric": {ID: "fabric", BusinessID: "b1", Name: "Kain", Unit: "m",
			Stock: decimal.NewFromFloat(fabricStock), UnitPrice: decimal.NewFromInt(20000)},
		"zipper": {ID: "zipper", BusinessID: "b1", Name: "Resleting", Unit: "pcs",
			Stock: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(2000)},
	}}
	saleRepo := &fakeSaleRepo{}
	movements := &fakeMovementRepo{}
	tx := &fakeTx{saleRepo: saleRepo, movRepo: movements, materialRepo: materials}

	return &saleFixture{
		uc:        sales.NewCreateSaleUseCase(tx, products, variations, bom, saleRepo),
		materials: materials,
		movements: movements,
		saleRepo:  saleRepo,
	}
}

func TestCreateSale_ConsumesBaseAndVariationBOM(t *testing.T) {
	f := newSaleFixture(10)

	out, err := f.uc.Create(context.Background(), "b1", "u1", dto.CreateSaleRequest{
		Channel: entity.ChannelShopee,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", VariationID: "v1", Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Variation price wins: 2 × 65_000.
	assert.True(t, out.Total.Equal(decimal.NewFromInt(130000)), "total, got %s", out.Total)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(65000)))

	// 0.5 m fabric × 2 units and 1 zipper × 2 units consumed.
	fabric := f.materials.materials["fabric"]
	assert.True(t, fabric.Stock.Equal(decimal.NewFromInt(9)), "fabric stock, got %s", fabric.Stock)
	zipper := f.materials.materials["zipper"]
	assert.True(t, zipper.Stock.Equal(decimal.NewFromInt(98)), "zipper stock, got %s", zipper.Stock)

	// One "out" movement per material, referencing the sale.
	require.Len(t, f.movements.movements, 2)
	for _, m := range f.movements.movements {
		assert.Equal(t, entity.MovementTypeOut, m.Type)
		assert.Equal(t, out.ID, m.Reference)
		assert.Equal(t, "u1", m.CreatedBy)
	}
}

func TestCreateSale_PriceOverrideBeatsCatalog(t *testing.T) {
	f := newSaleFixture(10)

	out, err := f.uc.Create(context.Background(), "b1", "u1", dto.CreateSaleRequest{
		Channel: entity.ChannelDirect,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(45000)},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(45000)), "discounted total, got %s", out.Total)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	// 0.4 m of fabric left, one unit needs 0.5 m.
	f := newSaleFixture(0.4)

	_, err := f.uc.Create(context.Background(), "b1", "u1", dto.CreateSaleRequest{
		Channel: entity.ChannelTikTok,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreateSale_RejectsBadInput(t *testing.T) {
	f := newSaleFixture(10)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, "b1", "u1", dto.CreateSaleRequest{
		Channel: "lazada",
		Items:   []dto.SaleItemRequest{{ProductID: "p1", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown channel")

	_, err = f.uc.Create(ctx, "b1", "u1", dto.CreateSaleRequest{Channel: entity.ChannelDirect})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no items")

	_, err = f.uc.Create(ctx, "b1", "u1", dto.CreateSaleRequest{
		Channel: entity.ChannelDirect,
		Items:   []dto.SaleItemRequest{{ProductID: "p1", Quantity: decimal.NewFromInt(-1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative quantity")
}

func TestCreateSale_OtherTenantsProductIsNotFound(t *testing.T) {
	f := newSaleFixture(10)

	_, err := f.uc.Create(context.Background(), "someone-else", "u1", dto.CreateSaleRequest{
		Channel: entity.ChannelDirect,
		Items:   []dto.SaleItemRequest{{ProductID: "p1", Quantity: decimal.NewFromInt(1)}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
