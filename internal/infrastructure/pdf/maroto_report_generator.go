// Package pdf renders the printable product profitability report.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name  │  Product + SKU + date              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COST: base / variation average / HPP                        │
//	│  PROFITABILITY: margin %, minimal + recommended ROAS         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: channel | fee | net revenue | net profit | margin    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VARIATIONS: name | total cost | margin                      │
//	│  RECOMMENDATIONS: priority + title + description             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/insight"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

var _ insight.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 75}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// idrPrinter groups thousands the Indonesian way: 1500000 → "1.500.000".
var idrPrinter = message.NewPrinter(language.Indonesian)

// MarotoReportGenerator implements insight.ReportPDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInsightPDF renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateInsightPDF(
	_ context.Context,
	business *entity.Business,
	in *dto.ProductInsightDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Profitabilitas Produk", true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(costRow(in))
	m.AddRows(profitabilityRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(channelHeaderRow())
	for _, r := range channelRows(in.Channels) {
		m.AddRows(r)
	}

	if len(in.Variations) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("DETAIL VARIASI"))
		for _, r := range variationRows(in.Variations) {
			m.AddRows(r)
		}
	}

	if len(in.Recommendations) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("REKOMENDASI"))
		for _, r := range recommendationRows(in.Recommendations) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business name (left), product + SKU + date (right).
func headerRow(business *entity.Business, in *dto.ProductInsightDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Laporan Profitabilitas Produk", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(in.Product.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("SKU: "+in.Product.SKU, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// costRow: the derived cost basis block.
func costRow(in *dto.ProductInsightDTO) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("STRUKTUR BIAYA (HPP)", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Biaya dasar: %s   |   HPP rata-rata: %s   |   Komponen BOM: %d   |   Variasi: %d",
				rupiah(in.CostBasis.BaseCost),
				rupiah(in.AverageCost),
				in.BOMItemCount,
				in.VariationCount,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// profitabilityRow: margin and the two ROAS thresholds.
func profitabilityRow(in *dto.ProductInsightDTO) core.Row {
	p := in.Profitability
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROFITABILITAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Harga jual: %s   |   Margin: %s%%   |   ROAS minimal: %s   |   ROAS disarankan: %s",
				rupiah(p.SellingPrice),
				p.ProfitMarginPct.StringFixed(1),
				p.MinimalROAS.StringFixed(2),
				p.RecommendedROAS.StringFixed(2),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func channelHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Kanal", 2, align.Left),
		h("Biaya kanal", 3, align.Right),
		h("Pendapatan bersih", 3, align.Right),
		h("Laba bersih", 2, align.Right),
		h("Margin", 2, align.Right),
	)
}

func channelRows(channels []dto.ChannelMetricsDTO) []core.Row {
	result := make([]core.Row, 0, len(channels))
	for _, c := range channels {
		fee := c.FeePct.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
		if c.FixedFee.IsPositive() {
			fee += " + " + rupiah(c.FixedFee)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(c.Channel, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(fee, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(rupiah(c.NetRevenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(rupiah(c.NetProfit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(c.NetMarginPct.StringFixed(1)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func variationRows(variations []dto.VariationInsightDTO) []core.Row {
	result := make([]core.Row, 0, len(variations))
	for _, v := range variations {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(v.Variation.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(rupiah(v.CostBasis.TotalCost), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(v.Profitability.ProfitMarginPct.StringFixed(1)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func recommendationRows(recs []dto.RecommendationDTO) []core.Row {
	var result []core.Row
	for _, r := range recs {
		result = append(result, row.New(11).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("[%s] %s", r.Priority, r.Title), props.Text{
					Style: fontstyle.Bold, Size: 8, Top: 1,
				}),
				text.New(r.Description, props.Text{Size: 7.5, Top: 6, Color: colorGray}),
			),
		))
	}
	return result
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// rupiah formats an amount as "Rp 1.500.000" with Indonesian grouping.
func rupiah(v decimal.Decimal) string {
	return idrPrinter.Sprintf("Rp %d", v.Round(0).IntPart())
}
