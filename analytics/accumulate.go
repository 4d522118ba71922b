/*
accumulate.go - The receipt folding pass

PURPOSE:
  Folds every receipt and every line item into the matching seller's
  accumulator. This is the hot loop of the engine.

ATTRIBUTION RULES:
  - Receipts without a seller_id, or whose seller_id matches no accumulator,
    are skipped silently. They must be complete no-ops.
  - Items without a sku are skipped silently.
  - An item whose sku has no product record is still processed: the revenue
    strategy receives a nil product and unit cost is zero.

NUMERIC ASYMMETRY (intentional, do not "fix"):
  Seller revenue sums receipt-level total_amount. Seller profit sums
  item-level strategy revenue minus item cost. The two are independent
  sources and are allowed to disagree.

SEE ALSO:
  - index.go: Builds the structures consumed here
  - rank.go: Runs after the fold completes
*/
package analytics

// accumulate folds purchase records into the seller arena, invoking the
// injected revenue strategy once per attributed item. Nothing here can fail;
// malformed entries are absorbed.
func accumulate(arena *sellerArena, productIndex map[string]Product, receipts []Receipt, revenue RevenueStrategy) {
	for _, receipt := range receipts {
		if receipt.SellerID == "" {
			continue
		}
		stat := arena.at(receipt.SellerID)
		if stat == nil {
			continue
		}

		stat.SalesCount++
		stat.Revenue += FiniteOr(receipt.TotalAmount, 0)

		for _, item := range receipt.Items {
			if item.SKU == "" {
				continue
			}

			var product *Product
			if p, ok := productIndex[item.SKU]; ok {
				product = &p
			}

			itemRevenue := revenue.ItemRevenue(item, product)

			quantity := FiniteOr(item.Quantity, 0)
			unitCost := 0.0
			if product != nil {
				unitCost = FiniteOr(product.PurchasePrice, 0)
			}
			cost := unitCost * quantity

			stat.Profit += itemRevenue - cost
			stat.addQuantity(item.SKU, quantity)
		}
	}
}
