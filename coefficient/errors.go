// Package coefficient provides the two scalar numeric primitives of the
// algebra: Coefficient (finite, non-zero) and Offset (finite, zero allowed).
//
// Both types reject NaN and ±Inf at construction so that every downstream
// arithmetic operation (PolynomialBase, Function, Bound) can assume finite
// inputs without re-checking. The validation and sentinel-error style
// mirrors github.com/katalvlaran/lvlath's matrix package: one var block of
// sentinels per package, a payload-carrying error type for the cases a bare
// sentinel can't describe, and errors.Is-friendly wrapping.
package coefficient

import (
	"errors"
	"fmt"
)

// Kind classifies why a value was rejected by TryFrom.
type Kind uint8

const (
	// KindZero marks a value that is exactly zero (only Coefficient rejects this).
	KindZero Kind = iota
	// KindInfinite marks a value that is +Inf or -Inf.
	KindInfinite
	// KindNaN marks a value that is NaN.
	KindNaN
)

func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindInfinite:
		return "infinite"
	case KindNaN:
		return "NaN"
	default:
		return "unknown"
	}
}

// ErrInvalidCoefficient is the sentinel all *Error values returned by this
// package wrap, so callers can branch with a single errors.Is check.
var ErrInvalidCoefficient = errors.New("coefficient: invalid value")

// Error reports why a raw float64 could not become a Coefficient or Offset.
type Error struct {
	Kind  Kind
	Value float64
	// For is either "Coefficient" or "Offset"; it names which constructor
	// rejected the value.
	For string
}

func (e *Error) Error() string {
	return fmt.Sprintf("coefficient: invalid %s (%g): %s", e.For, e.Value, e.Kind)
}

// Unwrap lets errors.Is(err, ErrInvalidCoefficient) succeed for any *Error.
func (e *Error) Unwrap() error { return ErrInvalidCoefficient }
