package costing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// Recommendation categories.
const (
	CategoryPricing     = "pricing"
	CategoryAdvertising = "advertising"
	CategoryMarketing   = "marketing"
	CategoryInventory   = "inventory"
)

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Implementation difficulties.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Recommendation is one advisory message produced by the rule engine.
// The ID is derived from (product, rule), so identical inputs always yield
// an identical set.
type Recommendation struct {
	ID             string
	Category       string
	Priority       string
	Title          string
	Description    string
	ActionItems    []string
	ExpectedImpact string
	Difficulty     string
}

// Signals are the inputs the rule engine evaluates. Channel metrics are keyed
// by channel code and may be absent (a channel the product is not sold on
// simply fires no rule).
type Signals struct {
	ProductID      string
	Metrics        ProfitabilityMetrics
	VariationCount int
	BOMItemCount   int
	Channels       map[string]ChannelMetrics
}

// Margin thresholds from the advisory rule table (percent).
var (
	marginLow      = decimal.NewFromInt(20)
	marginHealthy  = decimal.NewFromInt(30)
	channelReady   = decimal.NewFromInt(15)
	shopeeOptimize = decimal.NewFromInt(10)
	tiktokMarginal = decimal.NewFromInt(8)
)

// rule couples a stable name with its firing condition and message template.
// Rules are independent: several may fire for the same product.
type rule struct {
	name    string
	matches func(Signals) bool
	build   func(Signals) Recommendation
}

// Fixed evaluation order. Generate returns recommendations in this order;
// sorting by priority is up to the caller.
var rules = []rule{
	{
		name: "raise-price-or-cut-cost",
		matches: func(s Signals) bool {
			return s.Metrics.ProfitMarginPct.LessThan(marginLow)
		},
		build: func(s Signals) Recommendation {
			return Recommendation{
				Category: CategoryPricing,
				Priority: PriorityHigh,
				Title:    "Margin below 20%: review price or material cost",
				Description: fmt.Sprintf(
					"Profit margin is %s%%. At this level advertising cannot pay for itself; raise the selling price or renegotiate material costs before spending on ads.",
					s.Metrics.ProfitMarginPct.Round(1)),
				ActionItems: []string{
					"Compare the selling price against similar listings on your channels",
					"Review the BOM for materials with cheaper substitutes",
					"Consider a smaller package or bundle to lift the price point",
				},
				ExpectedImpact: "Restores room for ad spend and discounts",
				Difficulty:     DifficultyMedium,
			}
		},
	},
	{
		name: "scale-ads",
		matches: func(s Signals) bool {
			return s.Metrics.ProfitMarginPct.GreaterThanOrEqual(marginHealthy)
		},
		build: func(s Signals) Recommendation {
			return Recommendation{
				Category: CategoryAdvertising,
				Priority: PriorityHigh,
				Title:    "Healthy margin: scale advertising",
				Description: fmt.Sprintf(
					"Profit margin is %s%%, enough to absorb ad costs. Scale campaigns while keeping ROAS at or above %s.",
					s.Metrics.ProfitMarginPct.Round(1),
					s.Metrics.RecommendedROAS.Round(2)),
				ActionItems: []string{
					fmt.Sprintf("Set the campaign ROAS target to %s", s.Metrics.RecommendedROAS.Round(2)),
					"Increase budget on the best-performing ad sets first",
					"Watch margin weekly as ad spend grows",
				},
				ExpectedImpact: "Higher sales volume at a protected margin",
				Difficulty:     DifficultyEasy,
			}
		},
	},
	{
		name: "test-ads",
		matches: func(s Signals) bool {
			return s.Metrics.ProfitMarginPct.GreaterThanOrEqual(marginLow) &&
				s.Metrics.ProfitMarginPct.LessThan(marginHealthy)
		},
		build: func(s Signals) Recommendation {
			return Recommendation{
				Category: CategoryAdvertising,
				Priority: PriorityMedium,
				Title:    "Moderate margin: advertise with a test budget",
				Description: fmt.Sprintf(
					"Profit margin is %s%%. Advertising can work, but only with tight targets: start small and keep ROAS at %s or better.",
					s.Metrics.ProfitMarginPct.Round(1),
					s.Metrics.RecommendedROAS.Round(2)),
				ActionItems: []string{
					"Run a small daily-budget campaign for two weeks",
					fmt.Sprintf("Pause any ad set that falls below ROAS %s", s.Metrics.MinimalROAS.Round(2)),
				},
				ExpectedImpact: "Finds profitable audiences without burning margin",
				Difficulty:     DifficultyEasy,
			}
		},
	},
	{
		name: "promote-variations",
		matches: func(s Signals) bool {
			return s.VariationCount > 0
		},
		build: func(s Signals) Recommendation {
			return Recommendation{
				Category: CategoryMarketing,
				Priority: PriorityMedium,
				Title:    "Use your variations as selling points",
				Description: fmt.Sprintf(
					"This product has %d variation(s). Listings that surface options (colors, sizes, bundles) convert better than single-option listings.",
					s.VariationCount),
				ActionItems: []string{
					"Photograph every variation for the listing gallery",
					"Name variations by benefit, not internal code",
					"Feature the best-margin variation first",
				},
				ExpectedImpact: "Better conversion from the same traffic",
				Difficulty:     DifficultyEasy,
			}
		},
	},
	{
		name: "establish-bom",
		matches: func(s Signals) bool {
			return s.BOMItemCount == 0
		},
		build: func(s Signals) Recommendation {
			return Recommendation{
				Category: CategoryInventory,
				Priority: PriorityHigh,
				Title:    "No bill of materials: cost is unknown",
				Description: "This product has no BOM, so its cost basis and every margin figure " +
					"on this page assume zero cost. Record the materials per unit to get real numbers.",
				ActionItems: []string{
					"List the materials and quantities used for one unit",
					"Add them as BOM items so costs roll up automatically",
				},
				ExpectedImpact: "Accurate margin and ROAS figures",
				Difficulty:     DifficultyEasy,
			}
		},
	},
	{
		name: "shopee-ready",
		matches: func(s Signals) bool {
			m, ok := s.Channels[entity.ChannelShopee]
			return ok && m.NetMarginPct.GreaterThanOrEqual(channelReady)
		},
		build: func(s Signals) Recommendation {
			m := s.Channels[entity.ChannelShopee]
			return Recommendation{
				Category: CategoryAdvertising,
				Priority: PriorityHigh,
				Title:    "Ready for Shopee Ads",
				Description: fmt.Sprintf(
					"Net margin on Shopee after fees is %s%%. The product can sustain paid acquisition on this channel.",
					m.NetMarginPct.Round(1)),
				ActionItems: []string{
					"Enable Shopee Ads on this listing",
					"Start with keyword ads on your category's top searches",
				},
				ExpectedImpact: "Paid growth on Shopee without losing money per order",
				Difficulty:     DifficultyEasy,
			}
		},
	},
	{
		name: "shopee-optimize-price",
		matches: func(s Signals) bool {
			m, ok := s.Channels[entity.ChannelShopee]
			return ok && m.NetMarginPct.GreaterThanOrEqual(shopeeOptimize) &&
				m.NetMarginPct.LessThan(channelReady)
		},
		build: func(s Signals) Recommendation {
			m := s.Channels[entity.ChannelShopee]
			return Recommendation{
				Category: CategoryPricing,
				Priority: PriorityMedium,
				Title:    "Shopee margin is thin: optimize the price first",
				Description: fmt.Sprintf(
					"Net margin on Shopee after fees is %s%%, below the 15%% needed for ads. A small price adjustment closes the gap.",
					m.NetMarginPct.Round(1)),
				ActionItems: []string{
					"Raise the Shopee price slightly or trim free-shipping subsidies",
					"Re-check net margin after the change before enabling ads",
				},
				ExpectedImpact: "Unlocks profitable Shopee advertising",
				Difficulty:     DifficultyEasy,
			}
		},
	},
	{
		name: "shopee-unprofitable",
		matches: func(s Signals) bool {
			m, ok := s.Channels[entity.ChannelShopee]
			return ok && m.NetMarginPct.LessThan(shopeeOptimize)
		},
		build: func(s Signals) Recommendation {
			m := s.Channels[entity.ChannelShopee]
			return Recommendation{
				Category: CategoryPricing,
				Priority: PriorityHigh,
				Title:    "Not profitable on Shopee at the current price",
				Description: fmt.Sprintf(
					"Net margin on Shopee after fees is %s%%. Fees are eating the profit; fix cost or price before selling more on this channel.",
					m.NetMarginPct.Round(1)),
				ActionItems: []string{
					"Recalculate the minimum viable Shopee price from the cost basis",
					"Reduce material cost or move volume to a cheaper channel",
				},
				ExpectedImpact: "Stops per-order losses on Shopee",
				Difficulty:     DifficultyMedium,
			}
		},
	},
	{
		name: "tiktok-ready",
		matches: func(s Signals) bool {
			m, ok := s.Channels[entity.ChannelTikTok]
			return ok && m.NetMarginPct.GreaterThanOrEqual(channelReady)
		},
		build: func(s Signals) Recommendation {
			m := s.Channels[entity.ChannelTikTok]
			return Recommendation{
				Category: CategoryAdvertising,
				Priority: PriorityHigh,
				Title:    "Ready for TikTok Shop ads",
				Description: fmt.Sprintf(
					"Net margin on TikTok Shop after fees is %s%%. The product can sustain paid traffic from TikTok campaigns.",
					m.NetMarginPct.Round(1)),
				ActionItems: []string{
					"Promote the listing with Shop Ads or a live-selling slot",
					"Pair ads with short videos showing the product in use",
				},
				ExpectedImpact: "Profitable reach on TikTok Shop",
				Difficulty:     DifficultyMedium,
			}
		},
	},
	{
		name: "tiktok-organic-first",
		matches: func(s Signals) bool {
			m, ok := s.Channels[entity.ChannelTikTok]
			return ok && m.NetMarginPct.GreaterThanOrEqual(tiktokMarginal) &&
				m.NetMarginPct.LessThan(channelReady)
		},
		build: func(s Signals) Recommendation {
			m := s.Channels[entity.ChannelTikTok]
			return Recommendation{
				Category: CategoryMarketing,
				Priority: PriorityMedium,
				Title:    "TikTok margin is marginal: grow with organic content first",
				Description: fmt.Sprintf(
					"Net margin on TikTok Shop after fees is %s%%, too thin for paid traffic. Organic short videos cost nothing but production time.",
					m.NetMarginPct.Round(1)),
				ActionItems: []string{
					"Post 2–3 short videos per week featuring this product",
					"Revisit paid ads once net margin reaches 15%",
				},
				ExpectedImpact: "Sales growth without ad spend the margin cannot cover",
				Difficulty:     DifficultyMedium,
			}
		},
	},
}

// Generate evaluates the rule table against the signals and returns one
// recommendation per fired rule, in evaluation order. Pure and idempotent:
// identical signals yield an identical list.
func Generate(sig Signals) []Recommendation {
	recs := make([]Recommendation, 0, len(rules))
	for _, r := range rules {
		if !r.matches(sig) {
			continue
		}
		rec := r.build(sig)
		rec.ID = sig.ProductID + ":" + r.name
		recs = append(recs, rec)
	}
	return recs
}

var priorityRank = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// SortByPriority orders recommendations high → medium → low, keeping the
// evaluation order within the same priority.
func SortByPriority(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
	})
}
