package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult is one row of the top-products-by-margin query.
type TopProductResult struct {
	ProductID    string
	SKU          string
	Name         string
	UnitsSold    decimal.Decimal
	GrossRevenue decimal.Decimal
	TotalCOGS    decimal.Decimal
	GrossProfit  decimal.Decimal
}

// ChannelSalesResult is aggregated revenue per sales channel.
type ChannelSalesResult struct {
	Channel   string
	SaleCount int
	Revenue   decimal.Decimal
}

// AnalyticsRepository read-only reporting queries for the dashboard.
// COGS is derived from each product's current BOM cost at query time.
type AnalyticsRepository interface {
	GetSalesMetrics(ctx context.Context, businessID string, start, end time.Time) (revenue, cogs decimal.Decimal, err error)
	GetTopProducts(ctx context.Context, businessID string, start, end time.Time, limit int) ([]TopProductResult, error)
	GetSalesByChannel(ctx context.Context, businessID string, start, end time.Time) ([]ChannelSalesResult, error)
	CountLowStockMaterials(ctx context.Context, businessID string) (int, error)
}
