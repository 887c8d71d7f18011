// Package align implements the single-pair local-alignment engine: the
// windowed, antidiagonal-sweep traversal over tiles of the dynamic
// programming matrix, and (for testing only) a textbook reference
// implementation used to check the windowed engine for equivalence.
package align

import "github.com/h2co3/swpara/internal/dihedral"

// WinRows and WinCols are the reference tile dimensions: the vertical
// window height (equal to MaxSeqLen, so a single vertical tile always
// covers an entire input sequence) and the horizontal window width that the
// engine slides across the horizontal sequence, tile by tile.
const (
	WinRows = dihedral.MaxSeqLen
	WinCols = 16
)

func init() {
	if WinRows <= 0 || WinRows&(WinRows-1) != 0 {
		panic("align: WinRows must be a power of two")
	}
	if WinCols < 2 {
		panic("align: WinCols must be at least 2, for horizontal propagation to work correctly")
	}
	if WinRows <= WinCols {
		panic("align: window must be taller than it is wide")
	}
}

// tile is the per-invocation working set of the windowed aligner: a
// resident copy of the vertical sequence, the current horizontal tile, the
// two most recently completed antidiagonals (plus one scratch buffer for
// the diagonal under construction), and the horizontal propagation column
// carried from tile to tile.
//
// Exactly one tile exists per AlignOne call and is owned exclusively by
// that call — see internal/pairwise for how the all-pairs driver keeps one
// tile per worker when parallelized.
type tile struct {
	seqVer [WinRows]dihedral.Dihedral
	seqHor [WinCols]dihedral.Dihedral

	// diagOld and diagNew are the two most recently completed antidiagonals
	// of the tile, indexed by column offset. diagCur accumulates the
	// diagonal currently being swept; at the end of each diagonal pass the
	// three are rotated (diagOld <- diagNew <- diagCur) so that diagOld and
	// diagNew are never mutated while a diagonal is being read from them —
	// the software counterpart of the reference hardware's read-before-
	// overwrite register staging, without needing to replicate its
	// cycle-by-cycle timing.
	diagOld [WinCols]int32
	diagNew [WinCols]int32
	diagCur [WinCols]int32

	// horProp holds the rightmost-column score of each row of the previous
	// horizontal tile, seeded as 0 for the first tile (h == 0).
	horProp [WinRows]int32

	maxScore int32
}

func (t *tile) verAt(r int) dihedral.Dihedral {
	if r < 0 || r >= WinRows {
		return dihedral.Dihedral{}
	}
	return t.seqVer[r]
}

// AlignOne computes the local-alignment maximum score between vertical
// sequence ver and horizontal sequence hor under the given scoring
// parameters, using the windowed antidiagonal traversal: H is swept
// left-to-right in WinCols-wide tiles, and within each tile cells are
// visited in antidiagonal order so that every cell's three dependencies
// have already been produced, in the two most recently completed
// antidiagonals of the tile or in the rightmost column of the tile
// immediately to the left.
//
// shouldLoadVer mirrors the hardware driver's should_read_ver_stream flag,
// by which a caller iterating many horizontal sequences against one fixed
// vertical sequence can avoid re-streaming the vertical buffer for every
// pair in the row. This software implementation always has the full
// vertical slice available as a plain Go slice and reloads it into the
// tile on every call regardless of the flag's value — the spec explicitly
// permits this ("a pure-software implementation MAY ignore it and reload
// unconditionally (semantically equivalent)"). The parameter is accepted
// so the call site can still express caller intent (see
// internal/pairwise.AllPairs).
func AlignOne(ver, hor []dihedral.Dihedral, params dihedral.ScoringParams, shouldLoadVer bool) dihedral.Score {
	_ = shouldLoadVer

	m := len(ver)
	n := len(hor)
	if m == 0 || n == 0 {
		return 0
	}
	if m > WinRows {
		panic("align: vertical sequence exceeds WinRows")
	}

	t := &tile{}
	copy(t.seqVer[:], ver)

	numTiles := (n + WinCols - 1) / WinCols
	lastDiag := m + WinCols - 1 // outer diagonal loop terminates once i reaches this

	for h := 0; h < numTiles; h++ {
		start := h * WinCols
		tileLen := WinCols
		if start+tileLen > n {
			tileLen = n - start
		}

		for c := 0; c < WinCols; c++ {
			if c < tileLen {
				t.seqHor[c] = hor[start+c]
			} else {
				t.seqHor[c] = dihedral.Dihedral{}
			}
		}

		t.diagOld = [WinCols]int32{}
		t.diagNew = [WinCols]int32{}

		for i := 0; i < lastDiag; i++ {
			for c := 0; c < WinCols; c++ {
				r := i - c

				// Top neighbor (r-1, c) never crosses a tile boundary: it
				// always comes from the diagonal completed one step ago,
				// same column.
				var topN int32
				if r >= 1 {
					topN = t.diagNew[c]
				}

				// Left neighbor (r, c-1) and diag neighbor (r-1, c-1) cross
				// into the previous tile's rightmost column when c == 0;
				// otherwise they come from within this tile's own two most
				// recently completed diagonals. Rows at or past m are masked
				// and read 0 here, since horProp only holds rows of ver.
				var leftN, diagN int32
				if c == 0 {
					if h > 0 && r < m {
						leftN = t.horProp[r]
						if r >= 1 {
							diagN = t.horProp[r-1]
						}
					}
				} else {
					if r >= 0 {
						leftN = t.diagNew[c-1]
					}
					if r >= 1 {
						diagN = t.diagOld[c-1]
					}
				}

				sim := dihedral.Similarity(t.verAt(r), t.seqHor[c], params.ScoringOffset)

				cur := diagN + sim
				if v := leftN + params.GapPenalty; v > cur {
					cur = v
				}
				if v := topN + params.GapPenalty; v > cur {
					cur = v
				}
				if cur < 0 {
					cur = 0
				}

				inBounds := r >= 0 && r < m

				if inBounds && c < tileLen && cur > t.maxScore {
					t.maxScore = cur
				}
				if inBounds && c == WinCols-1 {
					t.horProp[r] = cur
				}

				t.diagCur[c] = cur
			}

			t.diagOld, t.diagNew = t.diagNew, t.diagCur
		}
	}

	return dihedral.Score(t.maxScore)
}
