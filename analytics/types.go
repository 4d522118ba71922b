/*
Package analytics provides the sales performance aggregation engine.

PURPOSE:
  This package contains the core types and algorithms for turning three raw
  collections - sellers, products, and purchase receipts - into a ranked
  per-seller performance report with computed revenue, profit, bonus, and
  top-sold products.

KEY CONCEPTS IN THIS FILE (types.go):
  - Dataset: The three input collections, decoded once at the boundary
  - SellerStats: Mutable per-seller accumulator owned by the engine
  - ReportRow: Immutable output projection of a finalized accumulator
  - RevenueStrategy / BonusStrategy: Injected computation strategies

DESIGN PRINCIPLES:
  1. Typed boundary: Inputs are decoded into structs once; the pipeline never
     re-checks shapes downstream
  2. Defensive numerics: Non-finite values are coerced to zero at every
     numeric boundary, never propagated
  3. Determinism: Stable sorts everywhere; ties resolve by input order
  4. Pluggability: Revenue and bonus calculations are single-method
     interfaces supplied by the caller

USAGE:
  rows, err := analytics.Analyze(&analytics.Dataset{...}, analytics.Options{
      CalculateRevenue: pricing.SimpleRevenue{},
      CalculateBonus:   pricing.DefaultRankBonus(),
  })

SEE ALSO:
  - analyze.go: Pipeline entry point
  - accumulate.go: The receipt folding pass
  - rank.go: Sorting, bonus assignment, top-product derivation
  - pricing/: Strategy implementations
*/
package analytics

// =============================================================================
// INPUT COLLECTIONS
// =============================================================================

// Seller is a read-only input record. Identity is ID.
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Product is a read-only input record. Identity is SKU. PurchasePrice is the
// unit cost; non-finite values are treated as zero.
type Product struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
}

// ReceiptItem is one product line within a receipt.
type ReceiptItem struct {
	SKU       string  `json:"sku"`
	Quantity  float64 `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"`
}

// Receipt is one purchase transaction attributed to a seller.
type Receipt struct {
	SellerID    string        `json:"seller_id"`
	TotalAmount float64       `json:"total_amount"`
	Items       []ReceiptItem `json:"items"`
}

// Dataset bundles the three raw collections the engine consumes.
type Dataset struct {
	Sellers         []Seller  `json:"sellers"`
	Products        []Product `json:"products"`
	PurchaseRecords []Receipt `json:"purchase_records"`
}

// =============================================================================
// STRATEGIES
// =============================================================================

// RevenueStrategy computes the monetary revenue for a single receipt item.
// product is nil when the item's sku has no matching product record; that is
// a valid case, not an error. The engine treats the result opaquely.
type RevenueStrategy interface {
	ItemRevenue(item ReceiptItem, product *Product) float64
}

// RevenueFunc adapts a plain function to RevenueStrategy.
type RevenueFunc func(item ReceiptItem, product *Product) float64

func (f RevenueFunc) ItemRevenue(item ReceiptItem, product *Product) float64 {
	return f(item, product)
}

// BonusStrategy computes a seller's bonus from its final rank. index is the
// seller's position in the profit-descending ordering, total the number of
// ranked sellers. Invoked exactly once per seller during finalization.
type BonusStrategy interface {
	RankBonus(index, total int, seller *SellerStats) float64
}

// BonusFunc adapts a plain function to BonusStrategy.
type BonusFunc func(index, total int, seller *SellerStats) float64

func (f BonusFunc) RankBonus(index, total int, seller *SellerStats) float64 {
	return f(index, total, seller)
}

// Options carries the two required computation strategies.
type Options struct {
	CalculateRevenue RevenueStrategy
	CalculateBonus   BonusStrategy
}

// =============================================================================
// ACCUMULATOR - Mutable per-seller running totals
// =============================================================================

// SellerStats is the per-seller accumulator. It is created by the indexing
// stage, mutated only during the single accumulation pass, and finalized
// exactly once before projection into a ReportRow.
//
// Revenue accumulates receipt-level totals while Profit is built from
// item-level revenue minus cost. The two are sourced independently and may
// diverge; that asymmetry is part of the contract.
type SellerStats struct {
	ID         string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int

	// ProductsSold maps sku to cumulative quantity. skuOrder records first
	// occurrence so quantity ties in TopProducts resolve deterministically.
	ProductsSold map[string]float64
	skuOrder     []string

	Bonus       float64
	TopProducts []ProductQuantity
}

// ProductQuantity is one entry of a seller's top-products list.
type ProductQuantity struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// addQuantity accumulates quantity for a sku, tracking first occurrence.
func (s *SellerStats) addQuantity(sku string, quantity float64) {
	if _, seen := s.ProductsSold[sku]; !seen {
		s.skuOrder = append(s.skuOrder, sku)
	}
	s.ProductsSold[sku] += quantity
}

// =============================================================================
// OUTPUT
// =============================================================================

// ReportRow is one finalized line of the ranked report.
type ReportRow struct {
	SellerID    string            `json:"seller_id"`
	Name        string            `json:"name"`
	Revenue     float64           `json:"revenue"`
	Profit      float64           `json:"profit"`
	SalesCount  int               `json:"sales_count"`
	TopProducts []ProductQuantity `json:"top_products"`
	Bonus       float64           `json:"bonus"`
}
