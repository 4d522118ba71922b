/*
main.go - One-shot report CLI

PURPOSE:
  Loads a dataset from a JSON file or a SQLite store, runs the analysis, and
  prints the ranked report as JSON to stdout. This is the file/CLI flavor of
  the loader/presenter pair around the engine.

FLAGS:
  -input    Path to a JSON dataset file
  -db       Path to a SQLite dataset store (alternative to -input)
  -options  Optional path to a strategy configuration JSON file

EXAMPLES:
  ./report -input testdata/sales.json
  ./report -db sales.db -options options.json
*/
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/warp/sales-analytics/analytics"
	"github.com/warp/sales-analytics/factory"
	"github.com/warp/sales-analytics/store/sqlite"
)

func main() {
	input := flag.String("input", "", "JSON dataset file")
	dbPath := flag.String("db", "", "SQLite dataset store")
	optionsPath := flag.String("options", "", "strategy configuration JSON file")
	flag.Parse()

	data, err := loadDataset(*input, *dbPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	opts := factory.DefaultOptions()
	if *optionsPath != "" {
		raw, err := os.ReadFile(*optionsPath)
		if err != nil {
			log.Fatalf("Failed to read options: %v", err)
		}
		opts, err = factory.ParseOptions(string(raw))
		if err != nil {
			log.Fatalf("Failed to parse options: %v", err)
		}
	}

	rows, err := analytics.Analyze(data, opts)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
}

func loadDataset(input, dbPath string) (*analytics.Dataset, error) {
	switch {
	case input != "":
		return factory.ReadDatasetFile(input)
	case dbPath != "":
		store, err := sqlite.New(dbPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadDataset(context.Background())
	default:
		flag.Usage()
		os.Exit(2)
		return nil, nil
	}
}
