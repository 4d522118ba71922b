/*
rank.go - Finalization: profit rounding, ranking, bonus, top products

PURPOSE:
  Runs once, after the accumulation pass, in four linear steps:
  1. Round every accumulator's profit to two decimals
  2. Stable-sort accumulators by profit descending (ties keep input order)
  3. Invoke the injected bonus strategy with each seller's final rank
  4. Derive each seller's top-10 products by cumulative quantity

  The bonus strategy sees the rounded profit - rounding precedes ranking so
  the rank a strategy is told matches the profit it reads.

SEE ALSO:
  - analyze.go: Projection of finalized accumulators into report rows
*/
package analytics

import "sort"

const topProductsLimit = 10

// finalize ranks the accumulators and assigns bonus and top products.
// The arena's stats slice is reordered in place.
func finalize(arena *sellerArena, bonus BonusStrategy) {
	stats := arena.stats

	for i := range stats {
		stats[i].Profit = Round2(stats[i].Profit)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})

	total := len(stats)
	for i := range stats {
		stats[i].Bonus = bonus.RankBonus(i, total, &stats[i])
		stats[i].TopProducts = topProducts(&stats[i])
	}
}

// topProducts converts the seller's quantity map into pairs, sorts by
// quantity descending with ties broken by first occurrence, and truncates.
func topProducts(s *SellerStats) []ProductQuantity {
	pairs := make([]ProductQuantity, 0, len(s.skuOrder))
	for _, sku := range s.skuOrder {
		pairs = append(pairs, ProductQuantity{SKU: sku, Quantity: s.ProductsSold[sku]})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Quantity > pairs[j].Quantity
	})

	if len(pairs) > topProductsLimit {
		pairs = pairs[:topProductsLimit]
	}
	return pairs
}
