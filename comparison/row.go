package comparison

import (
	"github.com/carbocation/gnpthreshold/results"
	"github.com/carbocation/gnpthreshold/threshold"
	"gopkg.in/guregu/null.v3"
)

// Row compares the empirical and theoretical thresholds of one curve. Any
// field may be invalid ("undefined").
type Row struct {
	Property    string
	N           int
	Theoretical null.Float
	Empirical   null.Float
	Ratio       null.Float
}

// Build produces one Row for every graph size present in model for each of
// properties, in the given property order and ascending size within each
// property. Properties absent from the model contribute no rows.
func Build(model results.RecordModel, properties []string) []Row {
	out := make([]Row, 0, len(model))

	for _, property := range properties {
		for _, n := range model.Sizes(property) {
			out = append(out, NewRow(property, n, model.Series(results.SeriesKey{Property: property, N: n})))
		}
	}

	return out
}

// NewRow computes the comparison for a single series.
func NewRow(property string, n int, series results.Series) Row {
	row := Row{
		Property:    property,
		N:           n,
		Theoretical: threshold.Theoretical(property, n),
		Empirical:   threshold.Empirical(series),
	}

	if row.Theoretical.Valid && row.Empirical.Valid && row.Theoretical.Float64 > 0 {
		row.Ratio = null.FloatFrom(row.Empirical.Float64 / row.Theoretical.Float64)
	}

	return row
}
