// gnpthreshold compares the empirical 50% crossover of random-graph property
// curves against their asymptotic thresholds. It reads the simulator's
// sectioned results file, prints a comparison table, and draws one chart per
// property plus a combined figure.
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/gnpthreshold/compileinfo"
)

const (
	DefaultInput  = "experiment_results.csv"
	DefaultOutDir = "."
)

func main() {
	cfg := Config{}

	flag.StringVar(&cfg.Input, "input", DefaultInput, "Results file written by the simulator. May be local, ~/, or gs://bucket/path, and may be gzip, bzip2, xz, zlib or zip compressed.")
	flag.StringVar(&cfg.OutDir, "outdir", DefaultOutDir, "Directory that receives the PNG charts.")
	flag.BoolVar(&cfg.NoPlot, "noplot", false, "Skip drawing charts.")
	flag.StringVar(&cfg.CSV, "csv", "", "Optional path for a CSV copy of the comparison table.")
	flag.BoolVar(&cfg.Summary, "summary", false, "Print a per-property summary of the empirical/theoretical ratios.")
	flag.BoolVar(&cfg.Histogram, "histogram", false, "Print a histogram of the empirical/theoretical ratios to stderr.")
	flag.StringVar(&cfg.LogLevel, "log_level", "info", "One of: debug, info, warn, error.")
	flag.Parse()

	logger := NewLogger(cfg.LogLevel, os.Stderr)
	compileinfo.Log(logger)

	ctx := context.Background()

	var client *storage.Client
	if strings.HasPrefix(cfg.Input, "gs://") {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("Could not create a Google Storage client")
		}
		defer client.Close()
	}

	if err := run(ctx, cfg, client, os.Stdout, os.Stderr, logger); err != nil {
		logger.Fatal().Err(err).Str("input", cfg.Input).Msg("Threshold comparison failed")
	}
}
