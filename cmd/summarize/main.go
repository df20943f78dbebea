// Command summarize aggregates a BAAM transaction export into summary
// JSON on stdout, without running the API server.
//
// Usage:
//
//	summarize -transactions statement.json [-categories categories.json] [-pretty]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"baamview/internal/loader"
	"baamview/internal/logger"
	"baamview/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()
	log := logger.Get()

	txPath := flag.String("transactions", "", "path to the transaction export (required)")
	catPath := flag.String("categories", "", "path to the category-mapping export (optional)")
	pretty := flag.Bool("pretty", false, "indent the output JSON")
	flag.Parse()

	if *txPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: summarize -transactions statement.json [-categories categories.json] [-pretty]")
		os.Exit(1)
	}

	txData, err := os.ReadFile(*txPath)
	if err != nil {
		log.Fatalf("reading transaction file: %v", err)
	}
	txs, err := loader.ParseTransactionFile(txData)
	if err != nil {
		log.Fatalf("parsing transaction file: %v", err)
	}

	var table *services.CategoryTable
	if *catPath != "" {
		catData, err := os.ReadFile(*catPath)
		if err != nil {
			log.Fatalf("reading category file: %v", err)
		}
		records, err := loader.ParseCategoryFile(catData)
		if err != nil {
			log.Fatalf("parsing category file: %v", err)
		}
		table = services.BuildCategoryTable(records)
	}

	summary, err := services.NewAggregationService().Summarize(txs, table)
	if err != nil {
		log.Fatalf("aggregating: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(summary); err != nil {
		log.Fatalf("encoding summary: %v", err)
	}
}
