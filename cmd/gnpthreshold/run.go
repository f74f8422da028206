package main

import (
	"context"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/gnpthreshold"
	"github.com/carbocation/gnpthreshold/comparison"
	"github.com/carbocation/gnpthreshold/plot"
	"github.com/carbocation/gnpthreshold/results"
	"github.com/carbocation/gnpthreshold/threshold"
	"github.com/carbocation/pfx"
	"github.com/rs/zerolog"
)

// Config holds the command line settings.
type Config struct {
	Input     string
	OutDir    string
	NoPlot    bool
	CSV       string
	Summary   bool
	Histogram bool
	LogLevel  string
}

const histogramBins = 10

func run(ctx context.Context, cfg Config, client *storage.Client, stdout, stderr io.Writer, logger zerolog.Logger) error {
	model, err := load(ctx, cfg.Input, client, logger)
	if err != nil {
		return err
	}

	properties := threshold.Properties()
	rows := comparison.Build(model, properties)

	for _, property := range model.Properties() {
		if _, err := threshold.Lookup(property); err != nil {
			logger.Warn().Err(err).Msg("Property will be parsed but not compared")
		}
	}

	if !cfg.NoPlot {
		out, err := plot.WriteAll(cfg.OutDir, model, properties)
		if err != nil {
			return err
		}
		for _, property := range out.Skipped {
			logger.Warn().Str("property", property).Msg("No data; drew an empty panel and no chart")
		}
		logger.Info().Strs("plots", out.Written).Msg("Plots saved")
	}

	if err := comparison.Write(stdout, rows); err != nil {
		return pfx.Err(err)
	}

	if cfg.Summary {
		if err := comparison.WriteSummary(stdout, comparison.Summarize(rows)); err != nil {
			return pfx.Err(err)
		}
	}

	if cfg.Histogram {
		if err := comparison.WriteRatioHistogram(stderr, rows, histogramBins); err != nil {
			return pfx.Err(err)
		}
	}

	if cfg.CSV != "" {
		if err := writeCSV(cfg.CSV, rows); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.CSV).Int("rows", len(rows)).Msg("Comparison CSV saved")
	}

	return nil
}

// load reads and parses the whole input before anything is computed from it.
func load(ctx context.Context, input string, client *storage.Client, logger zerolog.Logger) (results.RecordModel, error) {
	rdr, err := gnpthreshold.Open(ctx, input, client)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()

	model, stats, err := results.Parse(rdr)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("input", input).
		Int("series", len(model)).
		Int("samples", stats.Samples).
		Int("headers", stats.Headers).
		Msg("Parsed results")

	if stats.Dropped() > 0 {
		logger.Debug().
			Int("orphans", stats.Orphans).
			Int("malformed", stats.Malformed).
			Msg("Skipped lines that could not be attributed to a series")
	}

	return model, nil
}

func writeCSV(path string, rows []comparison.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := comparison.WriteCSV(f, rows); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return f.Close()
}
