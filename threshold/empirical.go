package threshold

import (
	"github.com/carbocation/gnpthreshold/results"
	"gopkg.in/guregu/null.v3"
)

// Crossover is the observed probability that marks the empirical threshold.
const Crossover = 0.5

// Empirical returns the edge probability of the first sample, in file order,
// whose observed probability is at least Crossover. Later samples are never
// consulted, so a curve that dips back below the crossover keeps its first
// crossing. The result is invalid when no sample reaches the crossover.
func Empirical(series results.Series) null.Float {
	for _, sample := range series {
		if sample.Probability >= Crossover {
			return null.FloatFrom(sample.P)
		}
	}

	return null.Float{}
}
