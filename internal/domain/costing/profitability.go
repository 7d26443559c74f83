package costing

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)

	// roasSentinel is returned as MinimalROAS when gross profit is zero or
	// negative: no finite ad spend breaks even, so the value signals "fix
	// pricing first" instead of surfacing Infinity or a negative multiplier.
	roasSentinel = decimal.NewFromInt(2)

	// roasSafetyFactor puts the recommended target 50% above break-even.
	roasSafetyFactor = decimal.NewFromFloat(1.5)
)

// ProfitabilityMetrics are the derived margin and ad-return thresholds for one
// selling price / cost basis pair. Never persisted.
type ProfitabilityMetrics struct {
	HPP             decimal.Decimal // cost of goods for one unit
	SellingPrice    decimal.Decimal
	ProfitMarginPct decimal.Decimal
	MinimalROAS     decimal.Decimal // break-even return on ad spend
	RecommendedROAS decimal.Decimal // MinimalROAS × 1.5
}

// ComputeProfitability derives margin and ROAS thresholds.
// Negative inputs are treated as zero; a non-positive gross profit clamps
// MinimalROAS to the sentinel. Never returns an error.
func ComputeProfitability(sellingPrice, costBasis decimal.Decimal) ProfitabilityMetrics {
	if sellingPrice.IsNegative() {
		sellingPrice = decimal.Zero
	}
	if costBasis.IsNegative() {
		costBasis = decimal.Zero
	}

	m := ProfitabilityMetrics{
		HPP:          costBasis,
		SellingPrice: sellingPrice,
	}

	grossProfit := sellingPrice.Sub(costBasis)
	if sellingPrice.GreaterThan(decimal.Zero) {
		m.ProfitMarginPct = grossProfit.Div(sellingPrice).Mul(hundred)
	}

	if sellingPrice.GreaterThan(decimal.Zero) && grossProfit.GreaterThan(decimal.Zero) {
		m.MinimalROAS = sellingPrice.Div(grossProfit)
	} else {
		m.MinimalROAS = roasSentinel
	}
	m.RecommendedROAS = m.MinimalROAS.Mul(roasSafetyFactor)

	return m
}

// ChannelMetrics is per-marketplace profitability after channel fees.
type ChannelMetrics struct {
	Channel      string
	NetRevenue   decimal.Decimal // selling price minus channel fees
	NetProfit    decimal.Decimal // NetRevenue minus cost basis
	NetMarginPct decimal.Decimal // NetProfit / NetRevenue × 100
}

// ComputeChannelProfitability applies a channel fee model to a selling price
// and cost basis. Percentage-only models simply carry a zero FixedFee.
func ComputeChannelProfitability(sellingPrice, costBasis decimal.Decimal, fee FeeModel) ChannelMetrics {
	if sellingPrice.IsNegative() {
		sellingPrice = decimal.Zero
	}
	if costBasis.IsNegative() {
		costBasis = decimal.Zero
	}

	netRevenue := sellingPrice.Sub(sellingPrice.Mul(fee.FeePct)).Sub(fee.FixedFee)
	netProfit := netRevenue.Sub(costBasis)

	m := ChannelMetrics{
		Channel:    fee.Channel,
		NetRevenue: netRevenue,
		NetProfit:  netProfit,
	}
	if netRevenue.GreaterThan(decimal.Zero) {
		m.NetMarginPct = netProfit.Div(netRevenue).Mul(hundred)
	}
	return m
}
