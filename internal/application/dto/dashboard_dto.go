package dto

import "github.com/shopspring/decimal"

// TopProductDTO one row of the dashboard's top-products widget.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	UnitsSold    decimal.Decimal `json:"units_sold"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
}

// ChannelSalesDTO revenue per sales channel for the current month.
type ChannelSalesDTO struct {
	Channel   string          `json:"channel"`
	SaleCount int             `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO the landing-page summary: today, month-to-date,
// top products, channel mix and the low-stock alert count.
type DashboardSummaryDTO struct {
	TodayRevenue  decimal.Decimal   `json:"today_revenue"`
	TodayMargin   decimal.Decimal   `json:"today_margin"`
	MonthRevenue  decimal.Decimal   `json:"month_revenue"`
	MonthMargin   decimal.Decimal   `json:"month_margin"`
	TopProducts   []TopProductDTO   `json:"top_products"`
	ChannelSales  []ChannelSalesDTO `json:"channel_sales"`
	LowStockCount int               `json:"low_stock_count"`
	DateLabel     string            `json:"date_label"`
}
