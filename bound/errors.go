// Package bound implements the closed interval [lower, upper] used to
// constrain decision variables, plus the Kind enum and the
// kind-vs-bound consistency rules spec.md §3–§4.2 describes.
//
// The error shape follows github.com/katalvlaran/lvlath/matrix: a sentinel
// per failure class, and a payload-carrying *Error for the cases (like an
// inconsistent (Kind, Bound) pair) a bare sentinel can't describe on its
// own — the parse layer needs that payload to build its traceback.
package bound

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentBound indicates lower > upper, lower == +Inf, upper == -Inf,
	// or either endpoint is NaN.
	ErrInconsistentBound = errors.New("bound: lower/upper inconsistent")

	// ErrDisjoint is returned by Intersection when two bounds share no point.
	ErrDisjoint = errors.New("bound: intervals are disjoint")

	// ErrKindBoundMismatch indicates a bound cannot be made consistent with
	// the requested Kind (e.g. Binary with bound [5,9]).
	ErrKindBoundMismatch = errors.New("bound: incompatible with kind")
)

// Error carries the (Kind, Bound) pair that failed validation, matching the
// concrete scenario in spec.md §8.6 ("a parse error ... describing the
// inconsistent (kind, bound) pair").
type Error struct {
	Kind  Kind
	Bound Bound
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("bound: kind %s incompatible with bound %s: %v", e.Kind, e.Bound, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
