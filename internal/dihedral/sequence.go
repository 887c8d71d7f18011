package dihedral

// MaxSeqLen is the maximum supported length of a single sequence, and also
// the reference vertical window height (WinRows) used by the windowed
// aligner. It must be a power of two.
const MaxSeqLen = 512

// SequenceSet is a flat, read-only collection of N dihedral-angle sequences:
// a length table plus the concatenation of all sequences' angle pairs in one
// buffer. It is the in-memory counterpart of the §6.1 input container.
type SequenceSet struct {
	Lengths []int16
	Buffer  []Dihedral
}

// N returns the number of sequences in the set.
func (s *SequenceSet) N() int {
	return len(s.Lengths)
}

// New validates and constructs a SequenceSet from a length table and a flat
// buffer of dihedral pairs.
//
// Validation enforces the invariants of the data model: lengths must be
// non-negative and within MaxSeqLen, and the sum of lengths must equal the
// number of elements supplied in buffer.
func New(lengths []int16, buffer []Dihedral) (*SequenceSet, error) {
	total := 0
	for i, l := range lengths {
		if l < 0 {
			return nil, &NegativeLengthError{Index: i, Length: int(l)}
		}
		if int(l) > MaxSeqLen {
			return nil, &SequenceTooLongError{Index: i, Length: int(l)}
		}
		total += int(l)
	}

	if total != len(buffer) {
		return nil, &BufferSizeMismatchError{Expected: total, Actual: len(buffer)}
	}

	return &SequenceSet{Lengths: lengths, Buffer: buffer}, nil
}

// At returns the k-th sequence as a slice into the shared buffer. The
// returned slice must be treated as read-only: it aliases SequenceSet.Buffer.
func (s *SequenceSet) At(k int) []Dihedral {
	start := 0
	for i := 0; i < k; i++ {
		start += int(s.Lengths[i])
	}
	return s.Buffer[start : start+int(s.Lengths[k])]
}

// Offsets returns the start offset, in elements, of each sequence within
// Buffer, plus one trailing entry equal to len(Buffer). This lets callers
// slice out every sequence with a single pass instead of recomputing
// prefix sums per call (as At does).
func (s *SequenceSet) Offsets() []int {
	offsets := make([]int, len(s.Lengths)+1)
	for i, l := range s.Lengths {
		offsets[i+1] = offsets[i] + int(l)
	}
	return offsets
}
