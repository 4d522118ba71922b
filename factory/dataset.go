/*
dataset.go - JSON dataset decoding

PURPOSE:
  Decodes the raw input dataset (sellers, products, purchase_records) from
  JSON. Decoding is shape-level only: deep validation of the collections is
  the engine's job, and malformed entries inside them are the engine's
  skip-and-continue territory.

SEE ALSO:
  - options.go: Package overview
  - store/sqlite: The database-backed dataset source
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/warp/sales-analytics/analytics"
)

// ParseDataset decodes a JSON dataset document.
func ParseDataset(raw []byte) (*analytics.Dataset, error) {
	var data analytics.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid dataset JSON: %w", err)
	}
	return &data, nil
}

// ReadDatasetFile loads and decodes a JSON dataset from disk.
func ReadDatasetFile(path string) (*analytics.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return ParseDataset(raw)
}
