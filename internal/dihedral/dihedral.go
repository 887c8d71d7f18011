// Package dihedral provides the core data types for dihedral-angle backbone
// sequences and the squared-Euclidean similarity measure used to score them.
//
// A Dihedral is a (phi, psi) pair of backbone torsion angles, discretized
// into a signed 16-bit domain. Differences between angles wrap modulo 2^16,
// so the scoring primitive always measures the shorter arc between two
// angles rather than their raw signed difference.
package dihedral

import "fmt"

// Dihedral is an ordered pair of backbone torsion angles.
//
// The values are interpreted modulo 2^16: callers may discretize phi/psi
// however they like, as long as the result fits a signed 16-bit integer.
type Dihedral struct {
	Phi int16
	Psi int16
}

// Score is the type of a local-alignment score. Scores produced by this
// package are always non-negative.
type Score int32

// ScoringParams bundles the two free parameters of the alignment recurrence.
//
// GapPenalty is added to a neighboring cell's score when the recurrence
// crosses a gap edge; it is typically negative. The squared dihedral
// distance is subtracted from ScoringOffset to turn a distance into a
// similarity; ScoringOffset is typically positive.
type ScoringParams struct {
	ScoringOffset int32
	GapPenalty    int32
}

// angleDiff returns the shorter-arc signed difference between two angles
// reinterpreted through the full 16-bit modular domain.
func angleDiff(a, b int16) int32 {
	diff := int16(uint16(a) - uint16(b))
	d := int32(diff)
	if d < 0 {
		d = -d
	}
	return d
}

// Similarity computes the dihedral similarity score between two backbone
// angle pairs under the given scoring offset.
//
//	Δφ = |sign_extend_16(uint16(aφ) - uint16(bφ))|
//	Δψ = |sign_extend_16(uint16(aψ) - uint16(bψ))|
//	score = offset - (Δφ² + Δψ²)
//
// All intermediate arithmetic is carried out in (at least) 32-bit signed
// width so that the -32768 reinterpretation edge case cannot overflow before
// being negated.
func Similarity(a, b Dihedral, offset int32) int32 {
	dphi := angleDiff(a.Phi, b.Phi)
	dpsi := angleDiff(a.Psi, b.Psi)
	return offset - (dphi*dphi + dpsi*dpsi)
}

func (d Dihedral) String() string {
	return fmt.Sprintf("(%d, %d)", d.Phi, d.Psi)
}

func (p ScoringParams) String() string {
	return fmt.Sprintf("ScoringParams { offset: %d, gap: %d }", p.ScoringOffset, p.GapPenalty)
}
