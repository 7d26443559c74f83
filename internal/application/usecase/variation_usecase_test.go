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

func newVariationFixture() (*usecase.VariationUseCase, *fakeVariationRepo) {
	variations := &fakeVariationRepo{variations: map[string]*entity.ProductVariation{}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", BusinessID: "b1", Name: "Pouch", Active: true},
		"p2": {ID: "p2", BusinessID: "b2", Name: "Totebag", Active: true},
	}}
	return usecase.NewVariationUseCase(variations, products), variations
}

func TestVariationCreate(t *testing.T) {
	uc, variations := newVariationFixture()

	out, err := uc.Create("b1", "p1", dto.CreateVariationRequest{
		Name:  "Besar",
		Price: decimal.NewFromInt(65000),
		Stock: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "p1", out.ProductID)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(65000)))
	assert.Contains(t, variations.variations, out.ID)

	_, err = uc.Create("b1", "missing", dto.CreateVariationRequest{Name: "Besar"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown product")
}

func TestVariationUpdate(t *testing.T) {
	uc, _ := newVariationFixture()

	created, err := uc.Create("b1", "p1", dto.CreateVariationRequest{
		Name: "Besar", Price: decimal.NewFromInt(65000),
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(70000)
	out, err := uc.Update("b1", created.ID, dto.UpdateVariationRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(70000)))

	_, err = uc.Update("b1", "missing", dto.UpdateVariationRequest{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVariation_ScopedToBusiness(t *testing.T) {
	uc, variations := newVariationFixture()

	// b2 cannot add a variation to b1's product.
	_, err := uc.Create("b2", "p1", dto.CreateVariationRequest{Name: "Besar"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, variations.variations, "nothing persisted")

	created, err := uc.Create("b1", "p1", dto.CreateVariationRequest{
		Name: "Besar", Price: decimal.NewFromInt(65000),
	})
	require.NoError(t, err)

	_, err = uc.ListByProduct("b2", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "Kecil"
	_, err = uc.Update("b2", created.ID, dto.UpdateVariationRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Besar", variations.variations[created.ID].Name, "name untouched")

	err = uc.Delete("b2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, variations.variations, created.ID, "variation still there")

	require.NoError(t, uc.Delete("b1", created.ID))
	assert.Empty(t, variations.variations)
}
