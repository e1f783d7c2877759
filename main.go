package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"bio-scraper/pkg/config"
	"bio-scraper/pkg/logging"
	"bio-scraper/pkg/parser"
	"bio-scraper/pkg/report"
	"bio-scraper/pkg/scraper"
	"bio-scraper/pkg/worker"
)

func main() {
	cfg := config.LoadOrDefault()

	inPath := flag.String("in", "bio_urls.csv", "input CSV with URL and Target Name columns")
	outPath := flag.String("out", "attorney_bio_scrape_results.csv", "output CSV path")
	workers := flag.Int("workers", cfg.Workers, "worker pool size")
	timeout := flag.Int("timeout", cfg.TimeoutSeconds, "request timeout in seconds")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rows, err := parser.NewCSVParser().ParseFile(*inPath)
	if err != nil {
		// Input validation is the one fatal condition, reported before any
		// fetch is attempted.
		logger.Fatal("input validation failed", zap.String("file", *inPath), zap.Error(err))
	}
	logger.Info("loaded input rows", zap.Int("rows", len(rows)))

	mgr := worker.NewManager(*workers, scraper.New(time.Duration(*timeout)*time.Second), logger, nil)
	results := mgr.Process(context.Background(), rows)
	worker.SortByIndex(results)

	out, err := os.Create(*outPath)
	if err != nil {
		logger.Fatal("failed to create output file", zap.String("file", *outPath), zap.Error(err))
	}
	defer out.Close()

	if err := report.WriteCSV(out, worker.Records(results)); err != nil {
		logger.Fatal("failed to write results", zap.Error(err))
	}

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
		}
	}
	logger.Info("scrape complete",
		zap.String("file", *outPath),
		zap.Int("rows", len(results)),
		zap.Int("failures", failures))
}
