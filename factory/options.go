/*
Package factory provides JSON to Go analysis configuration conversion.

PURPOSE:
  Converts JSON strategy selections into analytics.Options. This enables
  re-pricing a report without code changes - an operator picks strategies in
  JSON, and the factory creates the proper Go objects.

WHY JSON?
  - Non-developers can switch pricing models
  - Easy integration with the HTTP API (options travel in the request body)
  - Version control for analysis configurations

JSON SCHEMA:
  {
    "revenue": {"type": "simple"},
    "bonus": {
      "type": "rank",
      "top_percent": 0.15,
      "runner_up_percent": 0.10,
      "mid_percent": 0.05
    }
  }

STRATEGY TYPES:
  revenue: "simple" (default), "gross"
  bonus:   "rank" (default), "flat" (requires "percent"), "none"

DEFAULTS:
  An absent or empty section falls back to the default strategy, so "{}" is
  a valid configuration meaning "standard analysis".

USAGE:
  opts, err := factory.ParseOptions(jsonStr)
  rows, err := analytics.Analyze(data, opts)

SEE ALSO:
  - pricing/: The strategies selected here
  - dataset.go: JSON dataset decoding
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/sales-analytics/analytics"
	"github.com/warp/sales-analytics/pricing"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// OptionsJSON is the JSON representation of an analysis configuration.
type OptionsJSON struct {
	Revenue *RevenueJSON `json:"revenue,omitempty"`
	Bonus   *BonusJSON   `json:"bonus,omitempty"`
}

// RevenueJSON selects a revenue strategy.
type RevenueJSON struct {
	Type string `json:"type"`
}

// BonusJSON selects a bonus strategy and its parameters.
type BonusJSON struct {
	Type            string   `json:"type"`
	TopPercent      *float64 `json:"top_percent,omitempty"`
	RunnerUpPercent *float64 `json:"runner_up_percent,omitempty"`
	MidPercent      *float64 `json:"mid_percent,omitempty"`
	Percent         *float64 `json:"percent,omitempty"` // for "flat"
}

// =============================================================================
// PARSING
// =============================================================================

// DefaultOptions returns the standard analysis configuration: simple
// discounted revenue and the 15/10/5 rank bonus.
func DefaultOptions() analytics.Options {
	return analytics.Options{
		CalculateRevenue: pricing.SimpleRevenue{},
		CalculateBonus:   pricing.DefaultRankBonus(),
	}
}

// ParseOptions converts a JSON configuration into analytics.Options.
// An empty string selects the defaults.
func ParseOptions(jsonStr string) (analytics.Options, error) {
	if jsonStr == "" {
		return DefaultOptions(), nil
	}

	var oj OptionsJSON
	if err := json.Unmarshal([]byte(jsonStr), &oj); err != nil {
		return analytics.Options{}, fmt.Errorf("invalid options JSON: %w", err)
	}
	return BuildOptions(&oj)
}

// BuildOptions converts decoded JSON into analytics.Options. A nil config or
// nil section selects the default strategy for that seam.
func BuildOptions(oj *OptionsJSON) (analytics.Options, error) {
	opts := DefaultOptions()
	if oj == nil {
		return opts, nil
	}

	if oj.Revenue != nil {
		strategy, err := buildRevenue(oj.Revenue)
		if err != nil {
			return analytics.Options{}, err
		}
		opts.CalculateRevenue = strategy
	}

	if oj.Bonus != nil {
		strategy, err := buildBonus(oj.Bonus)
		if err != nil {
			return analytics.Options{}, err
		}
		opts.CalculateBonus = strategy
	}

	return opts, nil
}

func buildRevenue(rj *RevenueJSON) (analytics.RevenueStrategy, error) {
	switch rj.Type {
	case "", "simple":
		return pricing.SimpleRevenue{}, nil
	case "gross":
		return pricing.GrossRevenue{}, nil
	default:
		return nil, fmt.Errorf("unknown revenue strategy type: %q", rj.Type)
	}
}

func buildBonus(bj *BonusJSON) (analytics.BonusStrategy, error) {
	switch bj.Type {
	case "", "rank":
		bonus := pricing.DefaultRankBonus()
		if bj.TopPercent != nil {
			bonus.TopPercent = *bj.TopPercent
		}
		if bj.RunnerUpPercent != nil {
			bonus.RunnerUpPercent = *bj.RunnerUpPercent
		}
		if bj.MidPercent != nil {
			bonus.MidPercent = *bj.MidPercent
		}
		return bonus, nil
	case "flat":
		if bj.Percent == nil {
			return nil, fmt.Errorf("flat bonus strategy requires \"percent\"")
		}
		return pricing.FlatBonus{Percent: *bj.Percent}, nil
	case "none":
		return pricing.NoBonus{}, nil
	default:
		return nil, fmt.Errorf("unknown bonus strategy type: %q", bj.Type)
	}
}
