package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/usecase"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

func newProductFixture() (*usecase.ProductUseCase, *fakeProductRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", BusinessID: "b1", SKU: "POUCH-01", Name: "Pouch",
			Price: decimal.NewFromInt(50000), Active: true},
	}}
	return usecase.NewProductUseCase(products), products
}

func TestProductUpdate_ScopedToBusiness(t *testing.T) {
	uc, products := newProductFixture()

	price := decimal.NewFromInt(55000)
	out, err := uc.Update("b1", "p1", dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(55000)))

	// Another business's caller sees the product as missing.
	price = decimal.NewFromInt(1)
	_, err = uc.Update("b2", "p1", dto.UpdateProductRequest{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, products.products["p1"].Price.Equal(decimal.NewFromInt(55000)), "price untouched")

	_, err = uc.Update("b1", "missing", dto.UpdateProductRequest{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_ScopedToBusiness(t *testing.T) {
	uc, products := newProductFixture()

	err := uc.Delete("b2", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, products.products, "p1", "product still there")

	require.NoError(t, uc.Delete("b1", "p1"))
	assert.Empty(t, products.products)
}

func TestMaterialUpdate_ScopedToBusiness(t *testing.T) {
	materials := &fakeMaterialRepo{materials: map[string]*entity.Material{
		"m1": {ID: "m1", BusinessID: "b1", Name: "Kain", Unit: "m",
			MinStock: decimal.NewFromInt(5)},
	}}
	uc := usecase.NewMaterialUseCase(materials)

	minStock := decimal.NewFromInt(10)
	out, err := uc.Update("b1", "m1", dto.UpdateMaterialRequest{MinStock: &minStock})
	require.NoError(t, err)
	assert.True(t, out.MinStock.Equal(decimal.NewFromInt(10)))

	minStock = decimal.NewFromInt(99)
	_, err = uc.Update("b2", "m1", dto.UpdateMaterialRequest{MinStock: &minStock})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, materials.materials["m1"].MinStock.Equal(decimal.NewFromInt(10)), "threshold untouched")

	err = uc.Delete("b2", "m1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, materials.materials, "m1")

	require.NoError(t, uc.Delete("b1", "m1"))
	assert.Empty(t, materials.materials)
}
