package bound

import (
	"math"

	"github.com/Jij-Inc/ommx-sub001/atol"
)

// Kind classifies a decision variable and constrains which Bound values are
// admissible for it (spec.md §3 "Kind").
type Kind uint8

const (
	// Continuous places no additional constraint on Bound.
	Continuous Kind = iota
	// Binary requires Bound to reduce to exactly [0,1].
	Binary
	// Integer requires Bound's endpoints to be snapped to the integer lattice.
	Integer
	// SemiInteger requires a feasible set of {0} union [ceil(lower), floor(upper)].
	SemiInteger
	// SemiContinuous requires a feasible set of {0} union [lower, upper].
	SemiContinuous
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "Continuous"
	case Binary:
		return "Binary"
	case Integer:
		return "Integer"
	case SemiInteger:
		return "SemiInteger"
	case SemiContinuous:
		return "SemiContinuous"
	default:
		return "Unknown"
	}
}

// IsSemi reports whether the kind carries the "{0} union [l,u]" feasible-set
// shape (SemiInteger or SemiContinuous).
func (k Kind) IsSemi() bool {
	return k == SemiInteger || k == SemiContinuous
}

// IsIntegral reports whether values of this kind must lie on the integer
// lattice (Binary, Integer, SemiInteger).
func (k Kind) IsIntegral() bool {
	return k == Binary || k == Integer || k == SemiInteger
}

// ConsistentBound adjusts b to satisfy the constraints Kind imposes,
// returning ErrKindBoundMismatch (wrapped in *Error) when no adjustment can
// make it consistent.
//
//   - Binary:          b must reduce to exactly [0,1].
//   - Integer:         endpoints are snapped inward (ceil lower, floor upper).
//   - SemiInteger:     like Integer, plus the feasible set always includes 0.
//   - SemiContinuous:  feasible set always includes 0, bound itself untouched.
//   - Continuous:      returned unchanged.
func ConsistentBound(k Kind, b Bound, tol atol.ATol) (Bound, error) {
	switch k {
	case Continuous:
		return b, nil
	case Binary:
		inter, err := b.Intersection(OfBinary())
		if err != nil {
			return Bound{}, &Error{Kind: k, Bound: b, Err: ErrKindBoundMismatch}
		}
		if inter != OfBinary() {
			return Bound{}, &Error{Kind: k, Bound: b, Err: ErrKindBoundMismatch}
		}
		return OfBinary(), nil
	case Integer, SemiInteger:
		lo, hi := math.Ceil(b.lower-tol.Float64()), math.Floor(b.upper+tol.Float64())
		if lo > hi {
			return Bound{}, &Error{Kind: k, Bound: b, Err: ErrKindBoundMismatch}
		}
		snapped, err := New(lo, hi)
		if err != nil {
			return Bound{}, &Error{Kind: k, Bound: b, Err: err}
		}
		return snapped, nil
	case SemiContinuous:
		return b, nil
	default:
		return Bound{}, &Error{Kind: k, Bound: b, Err: ErrKindBoundMismatch}
	}
}

// FeasibleValue reports whether v is feasible for kind k under bound b within
// tolerance tol: v must satisfy b.Contains(v), and for the integral kinds
// (Binary, Integer, SemiInteger) v must also lie within tol of an integer;
// for the Semi* kinds, v=0 is always feasible in addition to the interval.
func FeasibleValue(k Kind, b Bound, v float64, tol atol.ATol) bool {
	if k.IsSemi() && math.Abs(v) <= tol.Float64() {
		return true
	}
	if !b.Contains(v, tol) {
		return false
	}
	if k.IsIntegral() {
		nearest := math.Round(v)
		if math.Abs(v-nearest) > tol.Float64() {
			return false
		}
	}
	return true
}
