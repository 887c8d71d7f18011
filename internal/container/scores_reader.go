package container

import (
	"encoding/binary"
	"io"

	"github.com/h2co3/swpara/internal/dihedral"
	"github.com/h2co3/swpara/internal/pairwise"
)

// ReadScores decodes a §6.2 output container: the sequence count n and the
// triangular score table. Trailing sector padding, if any, is left unread
// and is not an error — callers that know the exact payload size (as
// derived from n) never need to consume it.
func ReadScores(r io.Reader) (n int, scores pairwise.Results, err error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, nil, wrapReadErr("reading sequence count", err)
	}
	count := int(binary.LittleEndian.Uint32(hdr[:]))

	if count < 2 {
		return count, nil, nil
	}

	results := make(pairwise.Results, count-1)
	for i := 0; i < count-1; i++ {
		rowLen := count - 1 - i
		raw := make([]byte, 4*rowLen)
		if _, err := io.ReadFull(r, raw); err != nil {
			return 0, nil, wrapReadErr("reading score group", err)
		}
		row := make([]dihedral.Score, rowLen)
		for k := range row {
			row[k] = dihedral.Score(int32(binary.LittleEndian.Uint32(raw[4*k:])))
		}
		results[i] = row
	}

	return count, results, nil
}
