/*
bonus.go - Rank-dependent bonus strategies

PURPOSE:
  Implements the bonus side of the strategy seam. The default RankBonus pays
  a percentage of final profit depending on where the seller landed in the
  profit-descending ranking.

TIERING (defaults):
  rank 0         -> 15% of profit
  ranks 1 and 2  -> 10%
  last rank      -> 0%
  everyone else  -> 5%

  The rank-0 branch is evaluated before the last-rank branch, so a
  single-seller report pays the top tier, not zero. The last-rank branch is
  evaluated before the runner-up tiers, so with two sellers the runner-up is
  paid nothing.

SEE ALSO:
  - revenue.go: Package overview
  - analytics/rank.go: Where strategies are invoked
*/
package pricing

import (
	"math"

	"github.com/warp/sales-analytics/analytics"
)

// =============================================================================
// RANK BONUS (default)
// =============================================================================

// RankBonus pays a rank-dependent percentage of the seller's final profit.
// Percentages are fractions (0.15 = 15%). The last-ranked seller always
// receives zero unless it is also rank zero.
type RankBonus struct {
	TopPercent      float64 // rank 0
	RunnerUpPercent float64 // ranks 1 and 2
	MidPercent      float64 // every other non-last rank
}

// DefaultRankBonus returns the standard 15/10/5 tiering.
func DefaultRankBonus() RankBonus {
	return RankBonus{TopPercent: 0.15, RunnerUpPercent: 0.10, MidPercent: 0.05}
}

var _ analytics.BonusStrategy = RankBonus{}

func (b RankBonus) RankBonus(index, total int, seller *analytics.SellerStats) float64 {
	if seller == nil || total <= 0 {
		return 0
	}
	profit := seller.Profit
	if math.IsNaN(profit) || math.IsInf(profit, 0) {
		return 0
	}

	// The last-rank check runs before the runner-up tiers so that in a
	// two-seller report the runner-up is also the last rank and earns
	// nothing. Rank 0 wins over last rank when there is a single seller.
	var percent float64
	switch {
	case index == 0:
		percent = b.TopPercent
	case index == total-1:
		percent = 0
	case index == 1 || index == 2:
		percent = b.RunnerUpPercent
	default:
		percent = b.MidPercent
	}

	return analytics.Round2(profit * percent)
}

// =============================================================================
// FLAT BONUS
// =============================================================================

// FlatBonus pays the same percentage of profit to every seller.
type FlatBonus struct {
	Percent float64
}

var _ analytics.BonusStrategy = FlatBonus{}

func (b FlatBonus) RankBonus(_, total int, seller *analytics.SellerStats) float64 {
	if seller == nil || total <= 0 {
		return 0
	}
	profit := seller.Profit
	if math.IsNaN(profit) || math.IsInf(profit, 0) {
		return 0
	}
	return analytics.Round2(profit * b.Percent)
}

// =============================================================================
// NO BONUS
// =============================================================================

// NoBonus disables bonuses entirely.
type NoBonus struct{}

var _ analytics.BonusStrategy = NoBonus{}

func (NoBonus) RankBonus(int, int, *analytics.SellerStats) float64 { return 0 }
