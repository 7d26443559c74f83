package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/inventory"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

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
func (r *fakeMaterialRepo) ListLowStock(businessID string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.materials {
		if m.BusinessID == businessID && m.IsLowStock() {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMaterialRepo) Update(*entity.Material) error { return nil }
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

type fakeTx struct {
	movRepo      *fakeMovementRepo
	materialRepo *fakeMaterialRepo
}

func (tx *fakeTx) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	materialRepo repository.MaterialRepository,
) error) error {
	return fn(tx.movRepo, tx.materialRepo)
}

func newMovementFixture(stock, unitPrice int64) (*inventory.RegisterMovementUseCase, *fakeMaterialRepo, *fakeMovementRepo) {
	materials := &fakeMaterialRepo{materials: map[string]*entity.Material{
		"m1": {ID: "m1", BusinessID: "b1", Name: "Kain", Unit: "m",
			Stock: decimal.NewFromInt(stock), UnitPrice: decimal.NewFromInt(unitPrice)},
	}}
	movements := &fakeMovementRepo{}
	tx := &fakeTx{movRepo: movements, materialRepo: materials}
	return inventory.NewRegisterMovementUseCase(tx, movements, materials), materials, movements
}

func TestRegisterMovement_InUpdatesWeightedAverage(t *testing.T) {
	uc, materials, movements := newMovementFixture(10, 100)

	out, err := uc.RegisterMovement(context.Background(), "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1",
		Type:       entity.MovementTypeIn,
		Quantity:   decimal.NewFromInt(10),
		UnitCost:   decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// 10@100 + 10@200 → 20 units at 150.
	m := materials.materials["m1"]
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(20)), "stock, got %s", m.Stock)
	assert.True(t, m.UnitPrice.Equal(decimal.NewFromInt(150)), "unit price, got %s", m.UnitPrice)
	require.Len(t, movements.movements, 1)
}

func TestRegisterMovement_OutKeepsUnitPrice(t *testing.T) {
	uc, materials, _ := newMovementFixture(10, 100)

	_, err := uc.RegisterMovement(context.Background(), "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1",
		Type:       entity.MovementTypeOut,
		Quantity:   decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	m := materials.materials["m1"]
	assert.True(t, m.Stock.Equal(decimal.NewFromInt(6)))
	assert.True(t, m.UnitPrice.Equal(decimal.NewFromInt(100)), "out must not touch the average cost")
}

func TestRegisterMovement_OutBelowZeroFails(t *testing.T) {
	uc, materials, movements := newMovementFixture(3, 100)

	_, err := uc.RegisterMovement(context.Background(), "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1",
		Type:       entity.MovementTypeOut,
		Quantity:   decimal.NewFromInt(5),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, materials.materials["m1"].Stock.Equal(decimal.NewFromInt(3)), "stock untouched")
	assert.Empty(t, movements.movements, "no movement recorded")
}

func TestRegisterMovement_AdjustClampsAtZero(t *testing.T) {
	uc, materials, _ := newMovementFixture(3, 100)

	_, err := uc.RegisterMovement(context.Background(), "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1",
		Type:       entity.MovementTypeAdjust,
		Quantity:   decimal.NewFromInt(-10),
	})
	require.NoError(t, err)
	assert.True(t, materials.materials["m1"].Stock.IsZero(), "adjust clamps at zero")
}

func TestRegisterMovement_Validation(t *testing.T) {
	uc, _, _ := newMovementFixture(10, 100)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1", Type: "transfer", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown type")

	_, err = uc.RegisterMovement(ctx, "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative in quantity")

	_, err = uc.RegisterMovement(ctx, "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1", Type: entity.MovementTypeAdjust, Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero adjust")

	_, err = uc.RegisterMovement(ctx, "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "missing", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown material")
}

func TestListByMaterial_ScopedToBusiness(t *testing.T) {
	uc, _, _ := newMovementFixture(10, 100)

	_, err := uc.RegisterMovement(context.Background(), "b1", "u1", dto.RegisterMovementRequest{
		MaterialID: "m1",
		Type:       entity.MovementTypeIn,
		Quantity:   decimal.NewFromInt(5),
		UnitCost:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	out, err := uc.ListByMaterial("b1", "m1", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	_, err = uc.ListByMaterial("b2", "m1", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound, "another business must not read m1's history")
}

func TestLowStockSuggestions_RankedByDeficit(t *testing.T) {
	materials := &fakeMaterialRepo{materials: map[string]*entity.Material{
		"m1": {ID: "m1", BusinessID: "b1", Name: "Kain", Unit: "m",
			Stock: decimal.NewFromInt(2), MinStock: decimal.NewFromInt(10),
			UnitPrice: decimal.NewFromInt(20000)},
		"m2": {ID: "m2", BusinessID: "b1", Name: "Benang", Unit: "roll",
			Stock: decimal.NewFromInt(9), MinStock: decimal.NewFromInt(10),
			UnitPrice: decimal.NewFromInt(5000)},
		"m3": {ID: "m3", BusinessID: "b1", Name: "Resleting", Unit: "pcs",
			Stock: decimal.NewFromInt(50), MinStock: decimal.NewFromInt(10),
			UnitPrice: decimal.NewFromInt(2000)},
	}}
	uc := inventory.NewLowStockUseCase(materials)

	out, err := uc.GenerateSuggestions(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, out, 2, "only materials at or below threshold")

	// Deeper deficit first.
	assert.Equal(t, "m1", out[0].MaterialID)
	assert.Equal(t, 1, out[0].Priority)
	assert.Equal(t, "m2", out[1].MaterialID)

	// Target 1.5× threshold: order 15 - 2 = 13 m, at 20_000/m.
	assert.True(t, out[0].SuggestedOrderQty.Equal(decimal.NewFromInt(13)), "got %s", out[0].SuggestedOrderQty)
	assert.True(t, out[0].EstimatedCost.Equal(decimal.NewFromInt(260000)), "got %s", out[0].EstimatedCost)
}
