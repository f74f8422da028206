package comparison

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/guregu/null.v3"
)

// Summary describes how far the empirical thresholds of one property sit
// from theory across all of its graph sizes.
type Summary struct {
	Property string
	Rows     int

	// Defined is the number of rows with a valid ratio; the statistics
	// below are computed over those ratios only.
	Defined int

	MeanRatio   null.Float
	SDRatio     null.Float
	MedianRatio null.Float
}

// Summarize groups rows by property, preserving the order in which each
// property first appears.
func Summarize(rows []Row) []Summary {
	order := make([]string, 0)
	ratios := make(map[string][]float64)
	counts := make(map[string]int)

	for _, v := range rows {
		if _, seen := counts[v.Property]; !seen {
			order = append(order, v.Property)
		}
		counts[v.Property]++
		if v.Ratio.Valid {
			ratios[v.Property] = append(ratios[v.Property], v.Ratio.Float64)
		}
	}

	out := make([]Summary, 0, len(order))
	for _, property := range order {
		out = append(out, summarizeRatios(property, counts[property], ratios[property]))
	}

	return out
}

func summarizeRatios(property string, rows int, ratios []float64) Summary {
	s := Summary{Property: property, Rows: rows, Defined: len(ratios)}
	if len(ratios) == 0 {
		return s
	}

	m, sd := stat.MeanStdDev(ratios, nil)
	s.MeanRatio = null.FloatFrom(m)

	// The sample SD needs at least two observations
	if len(ratios) > 1 {
		s.SDRatio = null.FloatFrom(sd)
	}

	if median, err := stats.Median(ratios); err == nil {
		s.MedianRatio = null.FloatFrom(median)
	}

	return s
}

// WriteSummary prints one line per property with the ratio statistics.
func WriteSummary(w io.Writer, summaries []Summary) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "\n=== Ratio Summary (empirical / theoretical) ===\n\n")
	fmt.Fprintf(out, "%-20s %-6s %-8s %-10s %-10s %-10s\n", "Property", "Rows", "Defined", "Mean", "SD", "Median")
	fmt.Fprintln(out, "----------------------------------------------------------------------")

	for _, v := range summaries {
		fmt.Fprintf(out, "%-20s %-6d %-8d %-10s %-10s %-10s\n",
			v.Property,
			v.Rows,
			v.Defined,
			formatFloat(v.MeanRatio, 3),
			formatFloat(v.SDRatio, 3),
			formatFloat(v.MedianRatio, 3),
		)
	}

	return out.Flush()
}

// WriteRatioHistogram draws a unicode histogram of every defined ratio in
// rows. Nothing is written when no ratio is defined.
func WriteRatioHistogram(w io.Writer, rows []Row, bins int) error {
	ratios := make([]float64, 0, len(rows))
	for _, v := range rows {
		if v.Ratio.Valid {
			ratios = append(ratios, v.Ratio.Float64)
		}
	}

	if len(ratios) == 0 {
		return nil
	}

	hist := histogram.Hist(bins, ratios)

	return histogram.Fprint(w, hist, histogram.Linear(40))
}
