package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/h2co3/swpara/internal/dihedral"
)

// ReadSequenceSet decodes the §6.1 input container from r: a u32 sequence
// count, an i16 length table, and the flat concatenation of all sequences'
// dihedral pairs.
//
// A file too short for its own declared counts is reported as a
// MalformedInputError rather than a generic I/O error, since the failure is
// about the declared counts being inconsistent with the data actually
// present, not about the medium itself failing.
func ReadSequenceSet(r io.Reader) (*dihedral.SequenceSet, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, wrapReadErr("reading sequence count", err)
	}
	n := binary.LittleEndian.Uint32(hdr[:])

	lengths := make([]int16, n)
	if n > 0 {
		raw := make([]byte, 2*int(n))
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, wrapReadErr("reading sequence lengths", err)
		}
		for i := range lengths {
			lengths[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
			if lengths[i] < 0 {
				return nil, &dihedral.NegativeLengthError{Index: i, Length: int(lengths[i])}
			}
			if int(lengths[i]) > dihedral.MaxSeqLen {
				return nil, &dihedral.SequenceTooLongError{Index: i, Length: int(lengths[i])}
			}
		}
	}

	total := 0
	for _, l := range lengths {
		total += int(l)
	}

	buffer := make([]dihedral.Dihedral, total)
	if total > 0 {
		raw := make([]byte, 4*total)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, wrapReadErr("reading dihedral data", err)
		}
		for i := range buffer {
			off := 4 * i
			buffer[i] = dihedral.Dihedral{
				Phi: int16(binary.LittleEndian.Uint16(raw[off:])),
				Psi: int16(binary.LittleEndian.Uint16(raw[off+2:])),
			}
		}
	}

	return dihedral.New(lengths, buffer)
}

// wrapReadErr classifies a short read against a declared-but-absent count as
// malformed input, and anything else (a disk error, a reset connection) as
// a genuine I/O failure.
func wrapReadErr(what string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &MalformedInputError{Reason: fmt.Sprintf("%s: file is shorter than its declared counts require", what)}
	}
	return fmt.Errorf("container: %s: %w", what, err)
}
