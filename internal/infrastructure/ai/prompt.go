package ai

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
)

// buildInsightPrompt flattens the computed insight into the user message sent
// to the model. Only derived numbers and the already-generated recommendations
// go in; the model has nothing else to work from.
func buildInsightPrompt(in *dto.ProductInsightDTO) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Produk: %s (SKU %s)\n", in.Product.Name, in.Product.SKU)
	fmt.Fprintf(&b, "Harga jual: Rp %s\n", in.Profitability.SellingPrice.StringFixed(0))
	fmt.Fprintf(&b, "HPP rata-rata: Rp %s\n", in.AverageCost.StringFixed(0))
	fmt.Fprintf(&b, "Margin: %s%%\n", in.Profitability.ProfitMarginPct.StringFixed(1))
	fmt.Fprintf(&b, "ROAS minimal: %s, ROAS disarankan: %s\n",
		in.Profitability.MinimalROAS.StringFixed(2),
		in.Profitability.RecommendedROAS.StringFixed(2))
	fmt.Fprintf(&b, "Jumlah komponen BOM: %d, jumlah variasi: %d\n", in.BOMItemCount, in.VariationCount)

	for _, c := range in.Channels {
		fmt.Fprintf(&b, "Kanal %s: biaya %s%%", c.Channel,
			c.FeePct.Mul(decimal.NewFromInt(100)).StringFixed(1))
		if c.FixedFee.IsPositive() {
			fmt.Fprintf(&b, " + Rp %s", c.FixedFee.StringFixed(0))
		}
		fmt.Fprintf(&b, ", laba bersih Rp %s, margin bersih %s%%\n",
			c.NetProfit.StringFixed(0), c.NetMarginPct.StringFixed(1))
	}

	if len(in.Recommendations) > 0 {
		b.WriteString("Rekomendasi yang sudah dihitung:\n")
		for _, r := range in.Recommendations {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", r.Priority, r.Title, r.Description)
		}
	}

	return b.String()
}
