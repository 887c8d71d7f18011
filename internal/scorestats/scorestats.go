// Package scorestats computes summary statistics over the triangular score
// table produced by internal/pairwise: a single aggregate report over a
// whole run's worth of results instead of one pair at a time.
package scorestats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/h2co3/swpara/internal/dihedral"
	"github.com/h2co3/swpara/internal/pairwise"
)

// Summary reports aggregate statistics over every score produced by a run,
// flattening the triangular table into a single distribution.
type Summary struct {
	Count    int
	Min      dihedral.Score
	Max      dihedral.Score
	Mean     float64
	Variance float64
	StdDev   float64
	Median   float64
	P90      float64
}

// FromResults computes a Summary over every score in results. It returns an
// error if results contains no scores at all (an all-pairs run over fewer
// than two sequences).
func FromResults(results pairwise.Results) (*Summary, error) {
	values := make([]float64, 0)
	for _, row := range results {
		for _, s := range row {
			values = append(values, float64(s))
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("scorestats: no scores to summarize")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, variance := stat.MeanVariance(values, nil)

	minScore := dihedral.Score(sorted[0])
	maxScore := dihedral.Score(sorted[len(sorted)-1])

	return &Summary{
		Count:    len(values),
		Min:      minScore,
		Max:      maxScore,
		Mean:     mean,
		Variance: variance,
		StdDev:   stat.StdDev(values, nil),
		Median:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:      stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}, nil
}

func (s *Summary) String() string {
	return fmt.Sprintf(`Summary {
  count: %d
  range: %d - %d
  mean: %.2f
  stddev: %.2f
  median: %.2f
  p90: %.2f
}`, s.Count, s.Min, s.Max, s.Mean, s.StdDev, s.Median, s.P90)
}
