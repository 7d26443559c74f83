package dto

import "github.com/shopspring/decimal"

// CostBasisDTO derived cost for a product or product+variation pair.
type CostBasisDTO struct {
	BaseCost      decimal.Decimal `json:"base_cost"`
	VariationCost decimal.Decimal `json:"variation_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// ProfitabilityDTO margin and ROAS thresholds.
type ProfitabilityDTO struct {
	HPP             decimal.Decimal `json:"hpp"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	ProfitMarginPct decimal.Decimal `json:"profit_margin_pct"`
	MinimalROAS     decimal.Decimal `json:"minimal_roas"`
	RecommendedROAS decimal.Decimal `json:"recommended_roas"`
}

// ChannelMetricsDTO per-marketplace profitability after fees.
type ChannelMetricsDTO struct {
	Channel      string          `json:"channel"`
	FeePct       decimal.Decimal `json:"fee_pct"`
	FixedFee     decimal.Decimal `json:"fixed_fee"`
	NetRevenue   decimal.Decimal `json:"net_revenue"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	NetMarginPct decimal.Decimal `json:"net_margin_pct"`
}

// RecommendationDTO one advisory message.
type RecommendationDTO struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Priority       string   `json:"priority"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ActionItems    []string `json:"action_items"`
	ExpectedImpact string   `json:"expected_impact"`
	Difficulty     string   `json:"difficulty"`
}

// VariationInsightDTO cost and profitability of one specific variation.
type VariationInsightDTO struct {
	Variation     VariationResponse `json:"variation"`
	CostBasis     CostBasisDTO      `json:"cost_basis"`
	Profitability ProfitabilityDTO  `json:"profitability"`
}

// ProductInsightDTO is the full derived view of one product: cost basis,
// profitability, per-channel metrics, per-variation detail and sorted
// recommendations. Everything is recomputed per request, nothing stored.
type ProductInsightDTO struct {
	Product         ProductResponse       `json:"product"`
	BOMItemCount    int                   `json:"bom_item_count"`
	VariationCount  int                   `json:"variation_count"`
	CostBasis       CostBasisDTO          `json:"cost_basis"`
	AverageCost     decimal.Decimal       `json:"average_cost"`
	Profitability   ProfitabilityDTO      `json:"profitability"`
	Channels        []ChannelMetricsDTO   `json:"channels"`
	Variations      []VariationInsightDTO `json:"variations"`
	Recommendations []RecommendationDTO   `json:"recommendations"`
}

// ProductCostSummaryDTO list-view row: average cost and headline margin.
type ProductCostSummaryDTO struct {
	Product         ProductResponse `json:"product"`
	VariationCount  int             `json:"variation_count"`
	AverageCost     decimal.Decimal `json:"average_cost"`
	ProfitMarginPct decimal.Decimal `json:"profit_margin_pct"`
}
