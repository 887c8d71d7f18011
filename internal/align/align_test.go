package align

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/h2co3/swpara/internal/dihedral"
)

func d(phi, psi int16) dihedral.Dihedral {
	return dihedral.Dihedral{Phi: phi, Psi: psi}
}

func TestAlignOneScenarios(t *testing.T) {
	t.Run("T1 identical singletons", func(t *testing.T) {
		ver := []dihedral.Dihedral{d(0, 0)}
		hor := []dihedral.Dihedral{d(0, 0)}
		params := dihedral.ScoringParams{ScoringOffset: 100, GapPenalty: -10}
		assert.Equal(t, dihedral.Score(100), AlignOne(ver, hor, params, true))
	})

	t.Run("T2 identical short sequences", func(t *testing.T) {
		ver := []dihedral.Dihedral{d(10, 20), d(30, 40), d(50, 60)}
		hor := []dihedral.Dihedral{d(10, 20), d(30, 40), d(50, 60)}
		params := dihedral.ScoringParams{ScoringOffset: 10000, GapPenalty: -1000}
		assert.Equal(t, dihedral.Score(30000), AlignOne(ver, hor, params, true))
	})

	t.Run("T3 orthogonal angles", func(t *testing.T) {
		ver := []dihedral.Dihedral{d(0, 0), d(0, 0)}
		hor := []dihedral.Dihedral{d(16384, 16384), d(16384, 16384)}
		params := dihedral.ScoringParams{ScoringOffset: 0, GapPenalty: -1}
		assert.Equal(t, dihedral.Score(0), AlignOne(ver, hor, params, true))
	})

	t.Run("T4 triangle", func(t *testing.T) {
		params := dihedral.ScoringParams{ScoringOffset: 100, GapPenalty: -50}
		s0 := []dihedral.Dihedral{d(0, 0), d(0, 0)}
		s1 := []dihedral.Dihedral{d(0, 0), d(0, 0)}
		s2 := []dihedral.Dihedral{d(32767, 32767), d(32767, 32767)}

		assert.Equal(t, dihedral.Score(200), AlignOne(s0, s1, params, true))
		assert.Equal(t, dihedral.Score(0), AlignOne(s0, s2, params, true))
		assert.Equal(t, dihedral.Score(0), AlignOne(s1, s2, params, true))
	})

	t.Run("T5 empty middle sequence", func(t *testing.T) {
		params := dihedral.ScoringParams{ScoringOffset: 1000, GapPenalty: -1}
		s0 := []dihedral.Dihedral{d(5, 5), d(5, 5)}
		var s1 []dihedral.Dihedral
		s2 := []dihedral.Dihedral{d(5, 5), d(5, 5)}

		assert.Equal(t, dihedral.Score(0), AlignOne(s0, s1, params, true))
		assert.Equal(t, dihedral.Score(2000), AlignOne(s0, s2, params, true))
		assert.Equal(t, dihedral.Score(0), AlignOne(s1, s2, params, true))
	})

	t.Run("T6 asymmetric lengths exceeding one tile", func(t *testing.T) {
		ver := make([]dihedral.Dihedral, 17)
		for i := range ver {
			ver[i] = d(int16(i*100), int16(i*100))
		}
		hor := ver[7:10]
		params := dihedral.ScoringParams{ScoringOffset: 500, GapPenalty: -100}
		assert.Equal(t, dihedral.Score(1500), AlignOne(ver, hor, params, true))
	})
}

func TestAlignOneProperties(t *testing.T) {
	randSeq := func(r *rand.Rand, n int) []dihedral.Dihedral {
		out := make([]dihedral.Dihedral, n)
		for i := range out {
			out[i] = d(int16(r.Intn(65536)-32768), int16(r.Intn(65536)-32768))
		}
		return out
	}

	t.Run("non-negativity", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		params := dihedral.ScoringParams{ScoringOffset: -500, GapPenalty: -1000}
		for i := 0; i < 20; i++ {
			ver := randSeq(r, 1+r.Intn(40))
			hor := randSeq(r, 1+r.Intn(40))
			assert.GreaterOrEqual(t, int32(AlignOne(ver, hor, params, true)), int32(0))
		}
	})

	t.Run("symmetry", func(t *testing.T) {
		r := rand.New(rand.NewSource(2))
		params := dihedral.ScoringParams{ScoringOffset: 100, GapPenalty: -50}
		for i := 0; i < 20; i++ {
			a := randSeq(r, 1+r.Intn(40))
			b := randSeq(r, 1+r.Intn(40))
			assert.Equal(t, AlignOne(a, b, params, true), AlignOne(b, a, params, true))
		}
	})

	t.Run("reflexivity lower bound", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		params := dihedral.ScoringParams{ScoringOffset: 17, GapPenalty: -5}
		for i := 0; i < 20; i++ {
			s := randSeq(r, 1+r.Intn(40))
			got := AlignOne(s, s, params, true)
			assert.GreaterOrEqual(t, int32(got), int32(len(s))*params.ScoringOffset)
		}
	})

	t.Run("empty sequence yields zero", func(t *testing.T) {
		params := dihedral.ScoringParams{ScoringOffset: 100, GapPenalty: -5}
		nonEmpty := []dihedral.Dihedral{d(1, 1), d(2, 2)}
		assert.Equal(t, dihedral.Score(0), AlignOne(nil, nonEmpty, params, true))
		assert.Equal(t, dihedral.Score(0), AlignOne(nonEmpty, nil, params, true))
		assert.Equal(t, dihedral.Score(0), AlignOne(nil, nil, params, true))
	})

	t.Run("monotonicity in offset", func(t *testing.T) {
		r := rand.New(rand.NewSource(4))
		for i := 0; i < 20; i++ {
			ver := randSeq(r, 1+r.Intn(30))
			hor := randSeq(r, 1+r.Intn(30))
			offset := int32(r.Intn(2000) - 1000)
			delta := int32(r.Intn(500))
			gap := int32(-r.Intn(500))

			low := AlignOne(ver, hor, dihedral.ScoringParams{ScoringOffset: offset, GapPenalty: gap}, true)
			high := AlignOne(ver, hor, dihedral.ScoringParams{ScoringOffset: offset + delta, GapPenalty: gap}, true)
			assert.GreaterOrEqual(t, int32(high), int32(low))
		}
	})

	t.Run("gap floor bounds the score by shorter-sequence all-match", func(t *testing.T) {
		r := rand.New(rand.NewSource(5))
		const offset = 1000
		for i := 0; i < 20; i++ {
			ver := randSeq(r, 1+r.Intn(30))
			hor := randSeq(r, 1+r.Intn(30))
			shorter := len(ver)
			if len(hor) < shorter {
				shorter = len(hor)
			}
			params := dihedral.ScoringParams{ScoringOffset: offset, GapPenalty: -2000000000}
			got := AlignOne(ver, hor, params, true)
			assert.LessOrEqual(t, int32(got), int32(shorter)*int32(offset))
		}
	})

	t.Run("windowed engine matches textbook reference", func(t *testing.T) {
		r := rand.New(rand.NewSource(6))
		for i := 0; i < 50; i++ {
			ver := randSeq(r, r.Intn(65))
			hor := randSeq(r, r.Intn(65))
			offset := int32(r.Intn(4000) - 2000)
			gap := -int32(r.Intn(4000))
			params := dihedral.ScoringParams{ScoringOffset: offset, GapPenalty: gap}

			want := reference(ver, hor, params)
			got := AlignOne(ver, hor, params, true)
			assert.Equal(t, want, got, "ver=%v hor=%v params=%v", ver, hor, params)
		}
	})

	t.Run("windowed engine matches textbook reference across a tile boundary", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			ver := randSeq(r, 10+r.Intn(40))
			hor := randSeq(r, WinCols-2+r.Intn(6)) // straddles the WinCols boundary
			params := dihedral.ScoringParams{ScoringOffset: 50, GapPenalty: -20}

			want := reference(ver, hor, params)
			got := AlignOne(ver, hor, params, true)
			assert.Equal(t, want, got)
		}
	})
}
