package align

import "github.com/h2co3/swpara/internal/dihedral"

// reference computes the same local-alignment score as AlignOne using a
// direct, unwindowed O(len(ver)*len(hor))-time, O(len(hor))-space textbook
// recurrence. It exists only so tests can check AlignOne for equivalence on
// small inputs; production code should always call AlignOne.
func reference(ver, hor []dihedral.Dihedral, params dihedral.ScoringParams) dihedral.Score {
	m := len(ver)
	n := len(hor)
	if m == 0 || n == 0 {
		return 0
	}

	prev := make([]int32, n+1)
	cur := make([]int32, n+1)
	var maxScore int32

	for i := 1; i <= m; i++ {
		cur[0] = 0
		for j := 1; j <= n; j++ {
			sim := dihedral.Similarity(ver[i-1], hor[j-1], params.ScoringOffset)

			score := prev[j-1] + sim
			if v := cur[j-1] + params.GapPenalty; v > score {
				score = v
			}
			if v := prev[j] + params.GapPenalty; v > score {
				score = v
			}
			if score < 0 {
				score = 0
			}
			cur[j] = score
			if score > maxScore {
				maxScore = score
			}
		}
		prev, cur = cur, prev
	}

	return dihedral.Score(maxScore)
}
