package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// unitCostExpr computes the per-unit cost of a sold item from its current BOM
// lines: base lines plus the sold variation's own lines. Cost is never stored
// on the product row, so the reporting queries derive it the same way the
// costing package does.
const unitCostExpr = `(
	SELECT COALESCE(SUM(b.quantity * b.unit_cost), 0)
	FROM bom_items b
	WHERE b.product_id = si.product_id
	  AND (b.variation_id IS NULL OR b.variation_id = si.variation_id)
)`

// AnalyticsRepo read-only reporting queries for the dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics returns gross revenue and total COGS for the period.
// COALESCE keeps a period without sales at zero instead of NULL.
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	businessID string,
	start, end time.Time,
) (revenue, cogs decimal.Decimal, err error) {
	query := `
	SELECT
	    COALESCE(SUM(si.quantity * si.unit_price), 0)  AS revenue,
	    COALESCE(SUM(si.quantity * ` + unitCostExpr + `), 0) AS cogs
	FROM sales s
	JOIN sale_items si ON si.sale_id = s.id
	WHERE s.business_id = $1
	  AND s.created_at BETWEEN $2 AND $3`

	err = r.pool.QueryRow(ctx, query, businessID, start, end).Scan(&revenue, &cogs)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return revenue, cogs, nil
}

// GetTopProducts returns the `limit` products with the highest gross revenue
// in the period, with units, revenue, COGS and gross profit.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	businessID string,
	start, end time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	query := `
	SELECT
	    p.id                                                  AS product_id,
	    p.sku,
	    p.name,
	    SUM(si.quantity)                                      AS units_sold,
	    SUM(si.quantity * si.unit_price)                      AS gross_revenue,
	    SUM(si.quantity * ` + unitCostExpr + `)               AS total_cogs,
	    SUM(si.quantity * (si.unit_price - ` + unitCostExpr + `)) AS gross_profit
	FROM sale_items si
	JOIN sales    s ON s.id = si.sale_id
	JOIN products p ON p.id = si.product_id
	WHERE s.business_id = $1
	  AND s.created_at BETWEEN $2 AND $3
	GROUP BY p.id, p.sku, p.name
	ORDER BY gross_revenue DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, businessID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(
			&row.ProductID,
			&row.SKU,
			&row.Name,
			&row.UnitsSold,
			&row.GrossRevenue,
			&row.TotalCOGS,
			&row.GrossProfit,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts rows: %w", err)
	}
	if results == nil {
		results = []repository.TopProductResult{}
	}
	return results, nil
}

// GetSalesByChannel aggregates sale count and revenue per channel for the
// period, highest revenue first.
func (r *AnalyticsRepo) GetSalesByChannel(
	ctx context.Context,
	businessID string,
	start, end time.Time,
) ([]repository.ChannelSalesResult, error) {
	const query = `
	SELECT
	    s.channel,
	    COUNT(*)                  AS sale_count,
	    COALESCE(SUM(s.total), 0) AS revenue
	FROM sales s
	WHERE s.business_id = $1
	  AND s.created_at BETWEEN $2 AND $3
	GROUP BY s.channel
	ORDER BY revenue DESC`

	rows, err := r.pool.Query(ctx, query, businessID, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesByChannel: %w", err)
	}
	defer rows.Close()

	var results []repository.ChannelSalesResult
	for rows.Next() {
		var row repository.ChannelSalesResult
		if err := rows.Scan(&row.Channel, &row.SaleCount, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesByChannel scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountLowStockMaterials counts materials at or below their threshold.
func (r *AnalyticsRepo) CountLowStockMaterials(ctx context.Context, businessID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM materials WHERE business_id = $1 AND stock <= min_stock`,
		businessID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountLowStockMaterials: %w", err)
	}
	return count, nil
}
