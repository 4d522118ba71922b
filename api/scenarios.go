/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:
  Provides pre-built datasets that populate the store with realistic data
  for demos and manual testing. Each scenario seeds sellers, products, and
  purchase receipts that exercise specific engine behaviors.

AVAILABLE SCENARIOS:
  small-team:    Two sellers, one product - matches the worked example in
                 the engine's documentation
  storefront:    Five sellers with mixed discounts, an unknown seller
                 receipt, and an unpriced sku
  long-tail:     One seller with more than ten distinct skus to exercise
                 top-product truncation

HOW SCENARIOS WORK:
  1. Build the dataset in Go
  2. SaveDataset replaces whatever the store held
  3. GET /api/report shows the resulting ranking

NOTE:
  Scenarios replace the stored dataset. Only use in development/demo
  environments.

SEE ALSO:
  - handlers.go: Response helpers
  - store/sqlite: SaveDataset
*/
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/sales-analytics/analytics"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "small-team",
		Name:        "Small Team",
		Description: "Two sellers, one product, one receipt each",
	},
	{
		ID:          "storefront",
		Name:        "Storefront",
		Description: "Five sellers, mixed discounts, one unknown seller and one unpriced sku",
	},
	{
		ID:          "long-tail",
		Name:        "Long Tail",
		Description: "One seller with twelve distinct skus (top-products truncates to ten)",
	},
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the available demo scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario seeds the store with the named scenario's dataset.
// POST /api/scenarios/{id}
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, err := scenarioDataset(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Unknown scenario", err)
		return
	}

	if err := h.Store.SaveDataset(r.Context(), data); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed scenario", err)
		return
	}

	h.setScenario(id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario": id})
}

func scenarioDataset(id string) (*analytics.Dataset, error) {
	switch id {
	case "small-team":
		return smallTeamDataset(), nil
	case "storefront":
		return storefrontDataset(), nil
	case "long-tail":
		return longTailDataset(), nil
	default:
		return nil, fmt.Errorf("no scenario with id %q", id)
	}
}

// =============================================================================
// DATASET BUILDERS
// =============================================================================

func smallTeamDataset() *analytics.Dataset {
	return &analytics.Dataset{
		Sellers: []analytics.Seller{
			{ID: "S1", FirstName: "A"},
			{ID: "S2", FirstName: "B"},
		},
		Products: []analytics.Product{
			{SKU: "P1", PurchasePrice: 10},
		},
		PurchaseRecords: []analytics.Receipt{
			{
				SellerID:    "S1",
				TotalAmount: 100,
				Items: []analytics.ReceiptItem{
					{SKU: "P1", Quantity: 5, SalePrice: 20, Discount: 10},
				},
			},
			{
				SellerID:    "S2",
				TotalAmount: 50,
				Items: []analytics.ReceiptItem{
					{SKU: "P1", Quantity: 1, SalePrice: 20, Discount: 0},
				},
			},
		},
	}
}

func storefrontDataset() *analytics.Dataset {
	return &analytics.Dataset{
		Sellers: []analytics.Seller{
			{ID: "emp-1", FirstName: "Ada", LastName: "Okoye"},
			{ID: "emp-2", FirstName: "Bruno", LastName: "Diaz"},
			{ID: "emp-3", FirstName: "Chen", LastName: "Wei"},
			{ID: "emp-4", FirstName: "Dara", LastName: "Lind"},
			{ID: "emp-5", FirstName: "Eli", LastName: "North"},
		},
		Products: []analytics.Product{
			{SKU: "espresso-machine", PurchasePrice: 180},
			{SKU: "grinder", PurchasePrice: 45},
			{SKU: "kettle", PurchasePrice: 22},
			{SKU: "scale", PurchasePrice: 12},
		},
		PurchaseRecords: []analytics.Receipt{
			{SellerID: "emp-1", TotalAmount: 640, Items: []analytics.ReceiptItem{
				{SKU: "espresso-machine", Quantity: 2, SalePrice: 290, Discount: 5},
				{SKU: "scale", Quantity: 3, SalePrice: 25},
			}},
			{SellerID: "emp-2", TotalAmount: 310, Items: []analytics.ReceiptItem{
				{SKU: "grinder", Quantity: 4, SalePrice: 75, Discount: 15},
			}},
			{SellerID: "emp-3", TotalAmount: 95, Items: []analytics.ReceiptItem{
				{SKU: "kettle", Quantity: 2, SalePrice: 40},
				// No product record for this sku; cost falls back to zero.
				{SKU: "gift-card", Quantity: 1, SalePrice: 15},
			}},
			{SellerID: "emp-4", TotalAmount: 150, Items: []analytics.ReceiptItem{
				{SKU: "scale", Quantity: 6, SalePrice: 25, Discount: 50},
			}},
			{SellerID: "emp-5", TotalAmount: 75, Items: []analytics.ReceiptItem{
				{SKU: "kettle", Quantity: 2, SalePrice: 38, Discount: 120},
			}},
			// Unknown seller: must not affect any accumulator.
			{SellerID: "emp-999", TotalAmount: 9999, Items: []analytics.ReceiptItem{
				{SKU: "espresso-machine", Quantity: 10, SalePrice: 300},
			}},
		},
	}
}

func longTailDataset() *analytics.Dataset {
	products := make([]analytics.Product, 0, 12)
	items := make([]analytics.ReceiptItem, 0, 12)
	for i := 1; i <= 12; i++ {
		sku := fmt.Sprintf("sku-%02d", i)
		products = append(products, analytics.Product{SKU: sku, PurchasePrice: 5})
		items = append(items, analytics.ReceiptItem{
			SKU:       sku,
			Quantity:  float64(i),
			SalePrice: 9,
		})
	}

	return &analytics.Dataset{
		Sellers: []analytics.Seller{
			{ID: "solo", FirstName: "Sol", LastName: "Ovechkin"},
		},
		Products: products,
		PurchaseRecords: []analytics.Receipt{
			{SellerID: "solo", TotalAmount: 700, Items: items},
		},
	}
}
