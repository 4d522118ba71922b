package factory_test

import (
	"testing"

	"github.com/warp/sales-analytics/factory"
	"github.com/warp/sales-analytics/pricing"
)

// =============================================================================
// OPTIONS PARSING
// =============================================================================

func TestParseOptions_EmptySelectsDefaults(t *testing.T) {
	for _, jsonStr := range []string{"", "{}"} {
		opts, err := factory.ParseOptions(jsonStr)
		if err != nil {
			t.Fatalf("ParseOptions(%q) failed: %v", jsonStr, err)
		}
		if _, ok := opts.CalculateRevenue.(pricing.SimpleRevenue); !ok {
			t.Errorf("%q: expected SimpleRevenue default, got %T", jsonStr, opts.CalculateRevenue)
		}
		bonus, ok := opts.CalculateBonus.(pricing.RankBonus)
		if !ok {
			t.Fatalf("%q: expected RankBonus default, got %T", jsonStr, opts.CalculateBonus)
		}
		if bonus.TopPercent != 0.15 {
			t.Errorf("%q: expected default top percent 0.15, got %v", jsonStr, bonus.TopPercent)
		}
	}
}

func TestParseOptions_SelectsStrategiesByType(t *testing.T) {
	opts, err := factory.ParseOptions(`{
		"revenue": {"type": "gross"},
		"bonus": {"type": "flat", "percent": 0.2}
	}`)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}

	if _, ok := opts.CalculateRevenue.(pricing.GrossRevenue); !ok {
		t.Errorf("expected GrossRevenue, got %T", opts.CalculateRevenue)
	}
	flat, ok := opts.CalculateBonus.(pricing.FlatBonus)
	if !ok {
		t.Fatalf("expected FlatBonus, got %T", opts.CalculateBonus)
	}
	if flat.Percent != 0.2 {
		t.Errorf("expected percent 0.2, got %v", flat.Percent)
	}
}

func TestParseOptions_RankTierOverrides(t *testing.T) {
	opts, err := factory.ParseOptions(`{
		"bonus": {"type": "rank", "top_percent": 0.25, "mid_percent": 0.02}
	}`)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}

	bonus := opts.CalculateBonus.(pricing.RankBonus)
	if bonus.TopPercent != 0.25 {
		t.Errorf("expected top percent 0.25, got %v", bonus.TopPercent)
	}
	if bonus.RunnerUpPercent != 0.10 {
		t.Errorf("unset tier should keep default 0.10, got %v", bonus.RunnerUpPercent)
	}
	if bonus.MidPercent != 0.02 {
		t.Errorf("expected mid percent 0.02, got %v", bonus.MidPercent)
	}
}

func TestParseOptions_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		jsonStr string
	}{
		{"malformed JSON", `{"revenue":`},
		{"unknown revenue type", `{"revenue": {"type": "cosmic"}}`},
		{"unknown bonus type", `{"bonus": {"type": "lottery"}}`},
		{"flat bonus without percent", `{"bonus": {"type": "flat"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := factory.ParseOptions(tt.jsonStr); err == nil {
				t.Errorf("expected error for %q", tt.jsonStr)
			}
		})
	}
}

// =============================================================================
// DATASET PARSING
// =============================================================================

func TestParseDataset(t *testing.T) {
	data, err := factory.ParseDataset([]byte(`{
		"sellers": [{"id": "S1", "first_name": "A", "last_name": "B"}],
		"products": [{"sku": "P1", "purchase_price": 10}],
		"purchase_records": [{
			"seller_id": "S1",
			"total_amount": 100,
			"items": [{"sku": "P1", "quantity": 5, "sale_price": 20, "discount": 10}]
		}]
	}`))
	if err != nil {
		t.Fatalf("ParseDataset failed: %v", err)
	}

	if len(data.Sellers) != 1 || data.Sellers[0].ID != "S1" {
		t.Errorf("unexpected sellers: %+v", data.Sellers)
	}
	if len(data.Products) != 1 || data.Products[0].PurchasePrice != 10 {
		t.Errorf("unexpected products: %+v", data.Products)
	}
	if len(data.PurchaseRecords) != 1 || len(data.PurchaseRecords[0].Items) != 1 {
		t.Fatalf("unexpected purchase records: %+v", data.PurchaseRecords)
	}
	if data.PurchaseRecords[0].Items[0].Discount != 10 {
		t.Errorf("unexpected item: %+v", data.PurchaseRecords[0].Items[0])
	}
}

func TestParseDataset_Malformed(t *testing.T) {
	if _, err := factory.ParseDataset([]byte(`{"sellers": "nope"}`)); err == nil {
		t.Error("expected error for malformed dataset")
	}
}
