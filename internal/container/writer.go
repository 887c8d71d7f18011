package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/h2co3/swpara/internal/pairwise"
)

// WriteScores encodes the §6.2 output container to w: a u32 sequence count
// n, followed by one score group per row of scores (row i holds the scores
// for pairs (i, i+1) .. (i, n-1)), followed by zero padding up to the next
// SectorSize boundary.
//
// It returns the number of bytes written even when it returns an error, so
// a caller can report that a prefix of the intended payload was committed
// (see the output I/O failure case in the error handling design).
func WriteScores(w io.Writer, n int, scores pairwise.Results) (int, error) {
	written := 0

	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(n))
	if _, err := w.Write(hdr[:]); err != nil {
		return written, fmt.Errorf("container: writing sequence count: %w", err)
	}
	written += len(hdr)

	for _, row := range scores {
		buf := make([]byte, 4*len(row))
		for k, s := range row {
			binary.LittleEndian.PutUint32(buf[4*k:], uint32(int32(s)))
		}
		if _, err := w.Write(buf); err != nil {
			return written, fmt.Errorf("container: writing score group: %w", err)
		}
		written += len(buf)
	}

	if pad := paddingFor(written); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return written, fmt.Errorf("container: writing sector padding: %w", err)
		}
		written += pad
	}

	return written, nil
}

// paddingFor returns the number of zero bytes needed to round payloadLen up
// to the next multiple of SectorSize.
func paddingFor(payloadLen int) int {
	rem := payloadLen % SectorSize
	if rem == 0 {
		return 0
	}
	return SectorSize - rem
}
