// Package container implements the binary input and output file formats:
// reading a flat little-endian sequence set from an io.Reader, and writing
// the triangular score table to an io.Writer, padded to a sector boundary.
package container

import "fmt"

// SectorSize is the reference output padding boundary: the total payload
// size (header plus all score groups) is rounded up to a multiple of this
// many bytes before the writer stops.
const SectorSize = 512

// MalformedInputError is returned when an input container's declared counts
// are inconsistent with the bytes actually available: a file shorter than
// the header promises. A negative or over-long declared sequence length is
// reported as a dihedral.NegativeLengthError or dihedral.SequenceTooLongError
// instead.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input container: %s", e.Reason)
}

func (e *MalformedInputError) IsSequenceError() {}
