/*
index.go - Lookup structure construction

PURPOSE:
  Builds the two lookup structures the accumulation pass needs:
  - A dense, input-ordered arena of seller accumulators plus an id -> arena
    index map for O(1) receipt attribution
  - A sku -> product map for O(1) cost lookup

The arena layout (slice of values, map of indexes) keeps iteration order
deterministic and avoids aliasing a map of pointers.

SEE ALSO:
  - accumulate.go: Consumes both indexes
*/
package analytics

import "strings"

// sellerArena holds the accumulators in seller input order together with the
// id lookup built over them.
type sellerArena struct {
	stats []SellerStats
	index map[string]int
}

// at returns the accumulator for a seller id, or nil when the id is unknown.
func (a *sellerArena) at(sellerID string) *SellerStats {
	i, ok := a.index[sellerID]
	if !ok {
		return nil
	}
	return &a.stats[i]
}

// indexSellers creates one fresh accumulator per seller with a non-empty id,
// preserving input order. Sellers without an id are skipped silently. On a
// duplicated id the later seller wins the lookup slot; both keep their arena
// entry so report cardinality still follows the input.
func indexSellers(sellers []Seller) *sellerArena {
	arena := &sellerArena{
		stats: make([]SellerStats, 0, len(sellers)),
		index: make(map[string]int, len(sellers)),
	}

	for _, s := range sellers {
		if s.ID == "" {
			continue
		}
		arena.stats = append(arena.stats, SellerStats{
			ID:           s.ID,
			Name:         joinName(s.FirstName, s.LastName),
			ProductsSold: make(map[string]float64),
		})
		arena.index[s.ID] = len(arena.stats) - 1
	}

	return arena
}

// indexProducts maps sku to product record, skipping entries without a sku.
// Last write wins on duplicate skus.
func indexProducts(products []Product) map[string]Product {
	index := make(map[string]Product, len(products))
	for _, p := range products {
		if p.SKU == "" {
			continue
		}
		index[p.SKU] = p
	}
	return index
}

// joinName concatenates first and last name with a space, omitting empty
// parts.
func joinName(first, last string) string {
	parts := make([]string, 0, 2)
	if first != "" {
		parts = append(parts, first)
	}
	if last != "" {
		parts = append(parts, last)
	}
	return strings.Join(parts, " ")
}
