// Package analytics builds the landing-page financial summary.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // rows in the top-products widget

// DashboardUseCase produces the day and month-to-date summary.
//
// Data source: AnalyticsRepository (read-only queries). It never touches the
// sales tables directly; everything is delegated to the repository.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary builds the DashboardSummaryDTO for the given business.
//
// Four queries run in parallel:
//  1. GetSalesMetrics(today)      → TodayRevenue + TodayMargin
//  2. GetSalesMetrics(month)      → MonthRevenue + MonthMargin
//  3. GetTopProducts(month, 5)    → TopProducts
//  4. GetSalesByChannel(month)    → ChannelSales
//
// The low-stock count runs afterwards; it is a cheap indexed count.
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	businessID string,
) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Today: 00:00:00.000 to 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Current month: the 1st at 00:00 to today at 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type metricsResult struct {
		revenue decimal.Decimal
		cogs    decimal.Decimal
		err     error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}
	type channelResult struct {
		rows []repository.ChannelSalesResult
		err  error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)
	chanCh := make(chan channelResult, 1)

	go func() {
		rev, cogs, err := uc.analyticsRepo.GetSalesMetrics(ctx, businessID, todayStart, todayEnd)
		todayCh <- metricsResult{rev, cogs, err}
	}()
	go func() {
		rev, cogs, err := uc.analyticsRepo.GetSalesMetrics(ctx, businessID, monthStart, monthEnd)
		monthCh <- metricsResult{rev, cogs, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProducts(ctx, businessID, monthStart, monthEnd, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetSalesByChannel(ctx, businessID, monthStart, monthEnd)
		chanCh <- channelResult{rows, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	channels := <-chanCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: today's metrics: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: month metrics: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top products: %w", top.err)
	}
	if channels.err != nil {
		return nil, fmt.Errorf("dashboard: channel sales: %w", channels.err)
	}

	lowStock, err := uc.analyticsRepo.CountLowStockMaterials(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: low stock count: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		TodayRevenue:  today.revenue.Round(2),
		TodayMargin:   today.revenue.Sub(today.cogs).Round(2),
		MonthRevenue:  month.revenue.Round(2),
		MonthMargin:   month.revenue.Sub(month.cogs).Round(2),
		TopProducts:   toTopProductDTOs(top.rows),
		ChannelSales:  toChannelDTOs(channels.rows),
		LowStockCount: lowStock,
		DateLabel:     monthLabel(now),
	}, nil
}

func toTopProductDTOs(rows []repository.TopProductResult) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		marginPct := decimal.Zero
		if r.GrossRevenue.IsPositive() {
			marginPct = r.GrossProfit.Div(r.GrossRevenue).Mul(decimal.NewFromInt(100)).Round(1)
		}
		out = append(out, dto.TopProductDTO{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			Name:         r.Name,
			UnitsSold:    r.UnitsSold,
			GrossRevenue: r.GrossRevenue.Round(2),
			GrossProfit:  r.GrossProfit.Round(2),
			MarginPct:    marginPct,
		})
	}
	return out
}

func toChannelDTOs(rows []repository.ChannelSalesResult) []dto.ChannelSalesDTO {
	out := make([]dto.ChannelSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ChannelSalesDTO{
			Channel:   r.Channel,
			SaleCount: r.SaleCount,
			Revenue:   r.Revenue.Round(2),
		})
	}
	return out
}

// monthLabel returns a human-readable month label, e.g. "Agustus 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
