package comparison

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// Undefined is printed in place of a missing value.
const Undefined = "undefined"

func formatFloat(f null.Float, decimals int) string {
	if !f.Valid {
		return Undefined
	}

	return strconv.FormatFloat(f.Float64, 'f', decimals, 64)
}

// Write prints the rows as a fixed-width table: theoretical thresholds to 6
// decimals, empirical thresholds to 4 and ratios to 3.
func Write(w io.Writer, rows []Row) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "\n=== Threshold Comparison ===\n\n")
	fmt.Fprintf(out, "%-20s %-6s %-18s %-18s %-10s\n", "Property", "n", "Theoretical p*", "Experimental p50", "Ratio")
	fmt.Fprintln(out, strings.Repeat("-", 80))

	for _, v := range rows {
		fmt.Fprintf(out, "%-20s %-6d %-18s %-18s %-10s\n",
			v.Property,
			v.N,
			formatFloat(v.Theoretical, 6),
			formatFloat(v.Empirical, 4),
			formatFloat(v.Ratio, 3),
		)
	}

	return out.Flush()
}

type csvRow struct {
	Property    string `csv:"property"`
	N           int    `csv:"n"`
	Theoretical string `csv:"theoretical_threshold"`
	Empirical   string `csv:"empirical_threshold"`
	Ratio       string `csv:"ratio"`
}

// WriteCSV writes the rows, with a header, as comma-delimited text using the
// same precision as Write.
func WriteCSV(w io.Writer, rows []Row) error {
	out := make([]csvRow, 0, len(rows))
	for _, v := range rows {
		out = append(out, csvRow{
			Property:    v.Property,
			N:           v.N,
			Theoretical: formatFloat(v.Theoretical, 6),
			Empirical:   formatFloat(v.Empirical, 4),
			Ratio:       formatFloat(v.Ratio, 3),
		})
	}

	return gocsv.Marshal(out, w)
}
