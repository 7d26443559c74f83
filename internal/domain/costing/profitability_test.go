package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanpm/bisnisku-api/internal/domain/costing"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// Reference vector: cost 20000 (2 × Fabric @10000), price 50000 →
// margin 60%, break-even ROAS 50000/30000 ≈ 1.67, recommended ≈ 2.5.
func TestComputeProfitability_ReferenceVector(t *testing.T) {
	m := costing.ComputeProfitability(decimal.NewFromInt(50000), decimal.NewFromInt(20000))

	require.True(t, m.ProfitMarginPct.Equal(decimal.NewFromInt(60)),
		"margin must be exactly 60%%, got %s", m.ProfitMarginPct)
	assert.True(t, m.MinimalROAS.Round(2).Equal(decimal.NewFromFloat(1.67)),
		"minimal ROAS 50000/30000, got %s", m.MinimalROAS)
	assert.True(t, m.RecommendedROAS.Round(2).Equal(decimal.NewFromFloat(2.5)),
		"recommended = minimal × 1.5, got %s", m.RecommendedROAS)
	assert.True(t, m.HPP.Equal(decimal.NewFromInt(20000)))
}

// Break-even product: price == cost. Margin is 0 and the ROAS clamp kicks in,
// never Infinity or a negative multiplier.
func TestComputeProfitability_ROASClampAtBreakEven(t *testing.T) {
	m := costing.ComputeProfitability(decimal.NewFromInt(15000), decimal.NewFromInt(15000))

	assert.True(t, m.ProfitMarginPct.IsZero(), "margin at break-even is 0, got %s", m.ProfitMarginPct)
	assert.True(t, m.MinimalROAS.Equal(decimal.NewFromInt(2)), "clamped sentinel, got %s", m.MinimalROAS)
	assert.True(t, m.RecommendedROAS.Equal(decimal.NewFromInt(3)))
}

func TestComputeProfitability_ROASClampWhenUnderwater(t *testing.T) {
	// Cost above price: same clamp.
	m := costing.ComputeProfitability(decimal.NewFromInt(10000), decimal.NewFromInt(12000))
	assert.True(t, m.MinimalROAS.Equal(decimal.NewFromInt(2)))
	assert.True(t, m.ProfitMarginPct.IsNegative(), "margin may go negative, only ROAS is clamped")
}

func TestComputeProfitability_ZeroAndNegativePrice(t *testing.T) {
	m := costing.ComputeProfitability(decimal.Zero, decimal.NewFromInt(5000))
	assert.True(t, m.ProfitMarginPct.IsZero())
	assert.True(t, m.MinimalROAS.Equal(decimal.NewFromInt(2)))

	// Negative inputs are treated as zero, not rejected.
	m = costing.ComputeProfitability(decimal.NewFromInt(-100), decimal.NewFromInt(-100))
	assert.True(t, m.SellingPrice.IsZero())
	assert.True(t, m.HPP.IsZero())
}

// For a fixed cost basis the margin must be strictly increasing in the price.
func TestComputeProfitability_MarginMonotonicInPrice(t *testing.T) {
	cost := decimal.NewFromInt(10000)
	prices := []int64{11000, 15000, 20000, 50000, 100000}

	prev := costing.ComputeProfitability(decimal.NewFromInt(prices[0]), cost).ProfitMarginPct
	for _, p := range prices[1:] {
		cur := costing.ComputeProfitability(decimal.NewFromInt(p), cost).ProfitMarginPct
		assert.True(t, cur.GreaterThan(prev), "margin at price %d must exceed margin at lower price", p)
		prev = cur
	}
}

// Shopee vector: 7.5% fee + 1250 fixed on a 50000 sale with cost 20000 →
// net revenue 45000, net margin ≈ 55.6%.
func TestComputeChannelProfitability_ShopeeVector(t *testing.T) {
	fee := costing.FeeForChannel(entity.ChannelShopee)
	m := costing.ComputeChannelProfitability(decimal.NewFromInt(50000), decimal.NewFromInt(20000), fee)

	require.True(t, m.NetRevenue.Equal(decimal.NewFromInt(45000)),
		"50000 - 3750 - 1250, got %s", m.NetRevenue)
	assert.True(t, m.NetProfit.Equal(decimal.NewFromInt(25000)))
	assert.True(t, m.NetMarginPct.Round(1).Equal(decimal.NewFromFloat(55.6)),
		"got %s", m.NetMarginPct)
}

func TestComputeChannelProfitability_PercentageOnlyChannel(t *testing.T) {
	fee := costing.FeeForChannel(entity.ChannelTikTok)
	require.True(t, fee.FixedFee.IsZero(), "TikTok model is percentage-only")

	m := costing.ComputeChannelProfitability(decimal.NewFromInt(100000), decimal.NewFromInt(50000), fee)
	assert.True(t, m.NetRevenue.Equal(decimal.NewFromInt(92000)), "100000 × (1 - 0.08), got %s", m.NetRevenue)
	assert.True(t, m.NetProfit.Equal(decimal.NewFromInt(42000)))
}

func TestComputeChannelProfitability_FeesAboveRevenue(t *testing.T) {
	// Tiny order: fixed fee exceeds the price. Net revenue goes negative and
	// the margin percentage stays at zero instead of dividing by it.
	fee := costing.FeeForChannel(entity.ChannelShopee)
	m := costing.ComputeChannelProfitability(decimal.NewFromInt(1000), decimal.NewFromInt(500), fee)

	assert.True(t, m.NetRevenue.IsNegative())
	assert.True(t, m.NetMarginPct.IsZero())
}

func TestFeeForChannel_UnknownChannelKeepsFullPrice(t *testing.T) {
	fee := costing.FeeForChannel("warung-depan")
	m := costing.ComputeChannelProfitability(decimal.NewFromInt(10000), decimal.NewFromInt(4000), fee)
	assert.True(t, m.NetRevenue.Equal(decimal.NewFromInt(10000)))
}

func TestDefaultFeeSchedule_ReturnsCopy(t *testing.T) {
	s := costing.DefaultFeeSchedule()
	s[entity.ChannelShopee] = costing.FeeModel{Channel: entity.ChannelShopee}

	again := costing.DefaultFeeSchedule()
	assert.False(t, again[entity.ChannelShopee].FeePct.IsZero(),
		"mutating the returned map must not touch the schedule")
}
