/*
analyze.go - Pipeline entry point

PURPOSE:
  Wires the four stages together: validate -> index -> accumulate ->
  finalize, then projects the finalized accumulators into report rows.

FAILURE SEMANTICS:
  The only error Analyze returns is a *ValidationError, raised before any
  accumulation starts. Once validation passes the call always produces a
  complete, consistent report: malformed entries downstream are skipped or
  coerced, never fatal.

CONCURRENCY:
  Analyze is a pure function of its inputs. It holds no state across calls
  and is safe for concurrent use as long as the injected strategies are.

SEE ALSO:
  - validate.go, index.go, accumulate.go, rank.go: The stages
*/
package analytics

// Analyze aggregates the dataset into a ranked per-seller report using the
// injected revenue and bonus strategies. Rows are ordered by profit
// descending, ties by seller input order.
func Analyze(data *Dataset, opts Options) ([]ReportRow, error) {
	if err := validate(data, opts); err != nil {
		return nil, err
	}

	arena := indexSellers(data.Sellers)
	productIndex := indexProducts(data.Products)

	accumulate(arena, productIndex, data.PurchaseRecords, opts.CalculateRevenue)
	finalize(arena, opts.CalculateBonus)

	rows := make([]ReportRow, len(arena.stats))
	for i := range arena.stats {
		rows[i] = project(&arena.stats[i])
	}
	return rows, nil
}

// project emits the output row for a finalized accumulator. Monetary fields
// are rounded at emission; an empty display name falls back to the seller id.
func project(s *SellerStats) ReportRow {
	name := s.Name
	if name == "" {
		name = s.ID
	}

	top := s.TopProducts
	if top == nil {
		top = []ProductQuantity{}
	}

	return ReportRow{
		SellerID:    s.ID,
		Name:        name,
		Revenue:     Round2(s.Revenue),
		Profit:      Round2(s.Profit),
		SalesCount:  s.SalesCount,
		TopProducts: top,
		Bonus:       Round2(s.Bonus),
	}
}
