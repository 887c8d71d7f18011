// Package swpara provides a high-level API over the windowed local
// alignment engine: reading a sequence container, scoring one pair or all
// pairs, summarizing a run's score distribution, and writing the result
// container back out.
//
// Example usage:
//
//	set, err := swpara.ReadSequenceSet(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results := swpara.AllPairs(set, swpara.ScoringParams{ScoringOffset: 100, GapPenalty: -10})
//	fmt.Println(results)
package swpara

import (
	"fmt"
	"io"

	"github.com/h2co3/swpara/internal/align"
	"github.com/h2co3/swpara/internal/container"
	"github.com/h2co3/swpara/internal/dihedral"
	"github.com/h2co3/swpara/internal/pairwise"
	"github.com/h2co3/swpara/internal/scorestats"
)

// Re-export types for convenience.
type (
	Dihedral      = dihedral.Dihedral
	Score         = dihedral.Score
	ScoringParams = dihedral.ScoringParams
	SequenceSet   = dihedral.SequenceSet
	Results       = pairwise.Results
	ScoreSummary  = scorestats.Summary
)

// MaxSeqLen is the maximum supported length of a single sequence.
const MaxSeqLen = dihedral.MaxSeqLen

// NewSequenceSet validates and constructs a SequenceSet from a length table
// and a flat buffer of dihedral pairs.
func NewSequenceSet(lengths []int16, buffer []Dihedral) (*SequenceSet, error) {
	return dihedral.New(lengths, buffer)
}

// AlignOne computes the local-alignment score between two dihedral
// sequences.
func AlignOne(ver, hor []Dihedral, params ScoringParams) Score {
	return align.AlignOne(ver, hor, params, true)
}

// AllPairs computes the score of every pair of sequences in set,
// sequentially.
func AllPairs(set *SequenceSet, params ScoringParams) Results {
	return pairwise.AllPairs(set, params)
}

// AllPairsParallel computes the score of every pair of sequences in set,
// partitioned across numWorkers goroutines. numWorkers <= 0 selects
// runtime.GOMAXPROCS(0).
func AllPairsParallel(set *SequenceSet, params ScoringParams, numWorkers int) Results {
	return pairwise.AllPairsParallel(set, params, numWorkers)
}

// Summarize computes aggregate statistics over every score in results.
func Summarize(results Results) (*ScoreSummary, error) {
	return scorestats.FromResults(results)
}

// ReadSequenceSet decodes the input container format from r.
func ReadSequenceSet(r io.Reader) (*SequenceSet, error) {
	return container.ReadSequenceSet(r)
}

// WriteScores encodes the output container format to w: the sequence count
// n, the triangular score table, and trailing sector padding.
func WriteScores(w io.Writer, n int, scores Results) (int, error) {
	return container.WriteScores(w, n, scores)
}

// ReadScores decodes an output container previously written by WriteScores.
func ReadScores(r io.Reader) (n int, scores Results, err error) {
	return container.ReadScores(r)
}

// Version returns the swpara library version.
func Version() string {
	return "1.0.0"
}

// Info returns information about swpara.
func Info() string {
	return fmt.Sprintf(`swpara v%s - Windowed Local Alignment Library

A software implementation of a windowed, antidiagonal, all-pairs local
alignment engine over protein backbone dihedral-angle sequences.

Features:
  - Squared-Euclidean dihedral similarity scoring with modular angle arithmetic
  - Windowed antidiagonal Smith-Waterman-style local alignment (no traceback)
  - All-pairs triangular driver, sequential or worker-partitioned
  - Binary sequence and score container formats
  - Score distribution summaries
`, Version())
}
