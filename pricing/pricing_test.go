package pricing_test

import (
	"math"
	"testing"

	"github.com/warp/sales-analytics/analytics"
	"github.com/warp/sales-analytics/pricing"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func item(quantity, salePrice, discount float64) analytics.ReceiptItem {
	return analytics.ReceiptItem{SKU: "sku", Quantity: quantity, SalePrice: salePrice, Discount: discount}
}

func seller(profit float64) *analytics.SellerStats {
	return &analytics.SellerStats{ID: "s", Profit: profit}
}

// =============================================================================
// SIMPLE REVENUE
// =============================================================================

func TestSimpleRevenue_DiscountClamping(t *testing.T) {
	// Effective discount must be min(100, max(0, finite(d) ? d : 0)).
	tests := []struct {
		name     string
		discount float64
		want     float64 // for quantity 2, sale price 10
	}{
		{"no discount", 0, 20},
		{"half off", 50, 10},
		{"full discount", 100, 0},
		{"negative clamps to zero", -30, 20},
		{"over 100 clamps to 100", 150, 0},
		{"NaN treated as zero", math.NaN(), 20},
		{"positive infinity treated as zero", math.Inf(1), 20},
		{"negative infinity treated as zero", math.Inf(-1), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.SimpleRevenue{}.ItemRevenue(item(2, 10, tt.discount), nil)
			if got != tt.want {
				t.Errorf("discount %v: expected revenue %v, got %v", tt.discount, tt.want, got)
			}
		})
	}
}

func TestSimpleRevenue_CoercesQuantityAndPrice(t *testing.T) {
	if got := (pricing.SimpleRevenue{}).ItemRevenue(item(math.NaN(), 10, 0), nil); got != 0 {
		t.Errorf("NaN quantity: expected 0, got %v", got)
	}
	if got := (pricing.SimpleRevenue{}).ItemRevenue(item(2, math.Inf(1), 0), nil); got != 0 {
		t.Errorf("infinite sale price: expected 0, got %v", got)
	}
}

func TestSimpleRevenue_NonNegativeForValidInputs(t *testing.T) {
	// For quantity >= 0 and sale_price >= 0 the result is never negative,
	// whatever the discount.
	for _, quantity := range []float64{0, 1, 7.5} {
		for _, price := range []float64{0, 0.01, 99.99} {
			for _, discount := range []float64{-50, 0, 33, 100, 400, math.NaN()} {
				got := pricing.SimpleRevenue{}.ItemRevenue(item(quantity, price, discount), nil)
				if got < 0 {
					t.Errorf("q=%v p=%v d=%v: negative revenue %v", quantity, price, discount, got)
				}
			}
		}
	}
}

func TestGrossRevenue_IgnoresDiscount(t *testing.T) {
	got := pricing.GrossRevenue{}.ItemRevenue(item(3, 10, 90), nil)
	if got != 30 {
		t.Errorf("expected 30, got %v", got)
	}
}

// =============================================================================
// RANK BONUS
// =============================================================================

func TestRankBonus_Tiering(t *testing.T) {
	// GIVEN: Five sellers already ranked by profit descending
	// WHEN: Applying the default tiering to each index
	// THEN: 15% / 10% / 10% / 5% / 0

	bonus := pricing.DefaultRankBonus()
	profit := 200.0
	want := []float64{30, 20, 20, 10, 0}

	for i, expected := range want {
		got := bonus.RankBonus(i, 5, seller(profit))
		if got != expected {
			t.Errorf("index %d: expected bonus %v, got %v", i, expected, got)
		}
	}
}

func TestRankBonus_LastRankBeatsRunnerUpTier(t *testing.T) {
	// GIVEN: Small reports where a runner-up index is also the last rank
	// WHEN: Applying the default tiering
	// THEN: The last-rank rule wins and pays nothing

	bonus := pricing.DefaultRankBonus()

	// Two sellers: index 1 is both runner-up and last.
	if got := bonus.RankBonus(0, 2, seller(40)); got != 6 {
		t.Errorf("top of two: expected 6, got %v", got)
	}
	if got := bonus.RankBonus(1, 2, seller(10)); got != 0 {
		t.Errorf("last of two: expected 0, got %v", got)
	}

	// Three sellers: index 1 is a paid runner-up, index 2 is last.
	if got := bonus.RankBonus(1, 3, seller(100)); got != 10 {
		t.Errorf("runner-up of three: expected 10, got %v", got)
	}
	if got := bonus.RankBonus(2, 3, seller(100)); got != 0 {
		t.Errorf("last of three: expected 0, got %v", got)
	}
}

func TestRankBonus_SingleSellerGetsTopTier(t *testing.T) {
	// A lone seller is both rank 0 and last rank; the rank-0 rule wins.
	got := pricing.DefaultRankBonus().RankBonus(0, 1, seller(100))
	if got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
}

func TestRankBonus_GuardsDegenerateInputs(t *testing.T) {
	bonus := pricing.DefaultRankBonus()

	if got := bonus.RankBonus(0, 0, seller(100)); got != 0 {
		t.Errorf("total 0: expected 0, got %v", got)
	}
	if got := bonus.RankBonus(0, -1, seller(100)); got != 0 {
		t.Errorf("negative total: expected 0, got %v", got)
	}
	if got := bonus.RankBonus(0, 3, seller(math.NaN())); got != 0 {
		t.Errorf("NaN profit: expected 0, got %v", got)
	}
	if got := bonus.RankBonus(0, 3, seller(math.Inf(1))); got != 0 {
		t.Errorf("infinite profit: expected 0, got %v", got)
	}
	if got := bonus.RankBonus(0, 3, nil); got != 0 {
		t.Errorf("nil seller: expected 0, got %v", got)
	}
}

func TestRankBonus_RoundsToTwoDecimals(t *testing.T) {
	// 33.333 * 0.15 = 4.99995 -> 5.00
	got := pricing.DefaultRankBonus().RankBonus(0, 4, seller(33.333))
	if got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

// =============================================================================
// FLAT / NO BONUS
// =============================================================================

func TestFlatBonus_SamePercentEveryRank(t *testing.T) {
	bonus := pricing.FlatBonus{Percent: 0.10}
	for _, index := range []int{0, 1, 4} {
		if got := bonus.RankBonus(index, 5, seller(50)); got != 5 {
			t.Errorf("index %d: expected 5, got %v", index, got)
		}
	}
}

func TestNoBonus_AlwaysZero(t *testing.T) {
	if got := (pricing.NoBonus{}).RankBonus(0, 1, seller(1000)); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}
