package pairwise

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h2co3/swpara/internal/dihedral"
)

func buildSet(t *testing.T, lengths []int16, buf []dihedral.Dihedral) *dihedral.SequenceSet {
	t.Helper()
	set, err := dihedral.New(lengths, buf)
	require.NoError(t, err)
	return set
}

func TestAllPairsScenarios(t *testing.T) {
	t.Run("T4 triangle", func(t *testing.T) {
		set := buildSet(t, []int16{2, 2, 2}, []dihedral.Dihedral{
			{0, 0}, {0, 0},
			{0, 0}, {0, 0},
			{32767, 32767}, {32767, 32767},
		})
		params := dihedral.ScoringParams{ScoringOffset: 100, GapPenalty: -50}
		got := AllPairs(set, params)
		require.Len(t, got, 2)
		assert.Equal(t, []dihedral.Score{200, 0}, got[0])
		assert.Equal(t, []dihedral.Score{0}, got[1])
	})

	t.Run("T5 empty middle sequence", func(t *testing.T) {
		set := buildSet(t, []int16{2, 0, 2}, []dihedral.Dihedral{
			{5, 5}, {5, 5},
			{5, 5}, {5, 5},
		})
		params := dihedral.ScoringParams{ScoringOffset: 1000, GapPenalty: -1}
		got := AllPairs(set, params)
		require.Len(t, got, 2)
		assert.Equal(t, []dihedral.Score{0, 2000}, got[0])
		assert.Equal(t, []dihedral.Score{0}, got[1])
	})
}

func TestAllPairsEdgeCases(t *testing.T) {
	t.Run("fewer than two sequences yields no rows", func(t *testing.T) {
		set := buildSet(t, []int16{3}, []dihedral.Dihedral{{1, 1}, {2, 2}, {3, 3}})
		params := dihedral.ScoringParams{ScoringOffset: 10, GapPenalty: -1}
		assert.Nil(t, AllPairs(set, params))
		assert.Nil(t, AllPairsParallel(set, params, 4))
	})
}

func randomSet(t *testing.T, r *rand.Rand, n int) *dihedral.SequenceSet {
	t.Helper()
	lengths := make([]int16, n)
	var buf []dihedral.Dihedral
	for i := range lengths {
		l := int16(r.Intn(20))
		lengths[i] = l
		for k := int16(0); k < l; k++ {
			buf = append(buf, dihedral.Dihedral{
				Phi: int16(r.Intn(65536) - 32768),
				Psi: int16(r.Intn(65536) - 32768),
			})
		}
	}
	return buildSet(t, lengths, buf)
}

func TestAllPairsParallelMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	params := dihedral.ScoringParams{ScoringOffset: 200, GapPenalty: -75}

	for trial := 0; trial < 10; trial++ {
		set := randomSet(t, r, 5+r.Intn(10))

		want := AllPairs(set, params)
		for _, workers := range []int{1, 2, 3, 8} {
			got := AllPairsParallel(set, params, workers)
			assert.Equal(t, want, got, "workers=%d", workers)
		}
	}
}
