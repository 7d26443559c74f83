package costing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// FeeModel describes what a marketplace keeps per sale.
// FeePct is a fraction (0.075 = 7.5%); FixedFee is an absolute IDR amount
// per order, zero for percentage-only channels.
type FeeModel struct {
	Channel  string
	FeePct   decimal.Decimal
	FixedFee decimal.Decimal
}

// Default schedule. Shopee charges a percentage plus a fixed order fee,
// TikTok Shop a percentage only. Overridable via CHANNEL_* config.
var defaultFees = map[string]FeeModel{
	entity.ChannelShopee: {
		Channel:  entity.ChannelShopee,
		FeePct:   decimal.NewFromFloat(0.075),
		FixedFee: decimal.NewFromInt(1250),
	},
	entity.ChannelTikTok: {
		Channel:  entity.ChannelTikTok,
		FeePct:   decimal.NewFromFloat(0.08),
		FixedFee: decimal.Zero,
	},
}

// DefaultFeeSchedule returns a copy of the built-in fee schedule.
func DefaultFeeSchedule() map[string]FeeModel {
	out := make(map[string]FeeModel, len(defaultFees))
	for k, v := range defaultFees {
		out[k] = v
	}
	return out
}

// FeeForChannel returns the fee model for a channel, or a zero-fee model for
// unknown channels (e.g. direct sales keep the full price).
func FeeForChannel(channel string) FeeModel {
	key := strings.ToLower(strings.TrimSpace(channel))
	if fee, ok := defaultFees[key]; ok {
		return fee
	}
	return FeeModel{Channel: key}
}
