// Package pairwise implements the all-pairs triangular scoring driver: given
// a set of N sequences, it computes the local-alignment score of every
// unordered pair exactly once, in the row-major order of §6.2's output
// container.
package pairwise

import (
	"github.com/h2co3/swpara/internal/align"
	"github.com/h2co3/swpara/internal/dihedral"
)

// Results is the triangular score table produced by AllPairs /
// AllPairsParallel: Results[i] holds the scores for pairs (i, i+1), (i,
// i+2), ..., (i, N-1), in that order. Results has N-1 entries for a set of
// N sequences (the last sequence never owns a row, since it only ever
// appears as a horizontal partner).
type Results [][]dihedral.Score

// AllPairs computes the score of every pair of sequences in set under the
// given scoring parameters, sequentially.
//
// For each vertical sequence i, the horizontal sequences i+1..N-1 are
// scored against it in order; the first comparison in each row passes
// shouldLoadVer=true to AlignOne and the rest pass false, mirroring the
// hardware driver's should_read_ver_stream flag even though this software
// engine does not need it to behave correctly (see align.AlignOne).
func AllPairs(set *dihedral.SequenceSet, params dihedral.ScoringParams) Results {
	n := set.N()
	if n < 2 {
		return nil
	}

	offsets := set.Offsets()
	results := make(Results, n-1)
	for i := 0; i < n-1; i++ {
		ver := seqAt(set, offsets, i)
		row := make([]dihedral.Score, n-1-i)
		for k, j := 0, i+1; j < n; k, j = k+1, j+1 {
			row[k] = align.AlignOne(ver, seqAt(set, offsets, j), params, k == 0)
		}
		results[i] = row
	}
	return results
}

// seqAt returns the k-th sequence of set as a slice into its shared buffer,
// using a length-table offset precomputed once via set.Offsets() rather
// than recomputing a prefix sum per call the way set.At does. The inner
// pairwise loop calls this O(n) times per row, so the one-time offsets
// computation keeps an all-pairs run O(n^2) in slicing cost instead of O(n^3).
func seqAt(set *dihedral.SequenceSet, offsets []int, k int) []dihedral.Dihedral {
	return set.Buffer[offsets[k]:offsets[k+1]]
}
