package results

import "sort"

// Sample is one (edge probability, observed probability) point produced by
// the simulator.
type Sample struct {
	P           float64
	Probability float64
}

// SeriesKey identifies one empirical curve: a graph property measured at a
// fixed number of vertices.
type SeriesKey struct {
	Property string
	N        int
}

// Series holds the samples for one SeriesKey in input file order.
type Series []Sample

// PValues returns the edge probabilities of the series, in order.
func (s Series) PValues() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		out = append(out, v.P)
	}

	return out
}

// Probabilities returns the observed probabilities of the series, in order.
func (s Series) Probabilities() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		out = append(out, v.Probability)
	}

	return out
}

// RecordModel maps each curve to its samples. Every key present has at least
// one sample. It is built once by Parse and only read afterwards.
type RecordModel map[SeriesKey]Series

// Series returns the samples recorded for key, or nil.
func (m RecordModel) Series(key SeriesKey) Series {
	return m[key]
}

// Properties returns the distinct property names in the model, sorted.
func (m RecordModel) Properties() []string {
	seen := make(map[string]struct{})
	for k := range m {
		seen[k.Property] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Sizes returns the graph sizes recorded for property in ascending order.
func (m RecordModel) Sizes(property string) []int {
	out := make([]int, 0)
	for k := range m {
		if k.Property == property {
			out = append(out, k.N)
		}
	}
	sort.Ints(out)

	return out
}

// Samples is the total number of samples across every series.
func (m RecordModel) Samples() int {
	total := 0
	for _, v := range m {
		total += len(v)
	}

	return total
}

// Equal reports whether both models hold the same keys with identical series.
func (m RecordModel) Equal(other RecordModel) bool {
	if len(m) != len(other) {
		return false
	}

	for k, series := range m {
		otherSeries, exists := other[k]
		if !exists || len(series) != len(otherSeries) {
			return false
		}
		for i := range series {
			if series[i] != otherSeries[i] {
				return false
			}
		}
	}

	return true
}
