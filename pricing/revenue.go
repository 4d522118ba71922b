/*
Package pricing provides the built-in revenue and bonus strategies.

PURPOSE:
  The analytics engine treats revenue and bonus computation as injected
  strategies. This package ships the defaults plus a few alternatives so
  callers can re-price a report without touching the engine.

REVENUE STRATEGIES:
  SimpleRevenue:  sale_price x quantity x (1 - discount/100), discount
                  clamped to [0,100] (default)
  GrossRevenue:   sale_price x quantity, discount ignored

BONUS STRATEGIES (bonus.go):
  RankBonus:  Profit-rank tiering (default via DefaultRankBonus)
  FlatBonus:  Fixed percentage of profit regardless of rank
  NoBonus:    Always zero

NUMERIC POLICY:
  Strategies own the defensive coercion of their own inputs: quantity and
  sale_price coerce to 0 when non-finite, discount clamps to [0,100] with
  non-finite treated as 0. The engine never pre-cleans strategy inputs.

SEE ALSO:
  - analytics/types.go: Strategy interfaces
  - factory/options.go: Selecting strategies from JSON by name
*/
package pricing

import "github.com/warp/sales-analytics/analytics"

// =============================================================================
// SIMPLE REVENUE (default)
// =============================================================================

// SimpleRevenue is the default revenue strategy: discounted sale price times
// quantity. The product record is not consulted.
type SimpleRevenue struct{}

var _ analytics.RevenueStrategy = SimpleRevenue{}

func (SimpleRevenue) ItemRevenue(item analytics.ReceiptItem, _ *analytics.Product) float64 {
	quantity := analytics.FiniteOr(item.Quantity, 0)
	salePrice := analytics.FiniteOr(item.SalePrice, 0)
	discount := clampDiscount(item.Discount)

	return salePrice * quantity * (1 - discount/100)
}

// =============================================================================
// GROSS REVENUE
// =============================================================================

// GrossRevenue values every item at full sale price, ignoring discounts.
// Useful for comparing discounted vs list-price performance.
type GrossRevenue struct{}

var _ analytics.RevenueStrategy = GrossRevenue{}

func (GrossRevenue) ItemRevenue(item analytics.ReceiptItem, _ *analytics.Product) float64 {
	return analytics.FiniteOr(item.SalePrice, 0) * analytics.FiniteOr(item.Quantity, 0)
}

// clampDiscount normalizes a discount percentage: non-finite -> 0, then
// clamped to [0,100].
func clampDiscount(d float64) float64 {
	d = analytics.FiniteOr(d, 0)
	if d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}
