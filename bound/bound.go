package bound

import (
	"fmt"
	"math"

	"github.com/Jij-Inc/ommx-sub001/atol"
)

// Bound is the closed interval [lower, upper] with lower <= upper, lower !=
// +Inf, upper != -Inf, and neither endpoint NaN.
type Bound struct {
	lower, upper float64
}

// New validates (lower, upper) and constructs a Bound.
func New(lower, upper float64) (Bound, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Bound{}, fmt.Errorf("%w: NaN endpoint", ErrInconsistentBound)
	}
	if lower == math.Inf(1) {
		return Bound{}, fmt.Errorf("%w: lower == +Inf", ErrInconsistentBound)
	}
	if upper == math.Inf(-1) {
		return Bound{}, fmt.Errorf("%w: upper == -Inf", ErrInconsistentBound)
	}
	if lower > upper {
		return Bound{}, fmt.Errorf("%w: lower %g > upper %g", ErrInconsistentBound, lower, upper)
	}
	return Bound{lower: lower, upper: upper}, nil
}

// MustNew is New but panics on error.
func MustNew(lower, upper float64) Bound {
	b, err := New(lower, upper)
	if err != nil {
		panic(err)
	}
	return b
}

// Default is the unconstrained bound (-Inf, +Inf).
func Default() Bound { return Bound{lower: math.Inf(-1), upper: math.Inf(1)} }

// OfBinary is [0, 1].
func OfBinary() Bound { return Bound{lower: 0, upper: 1} }

// Positive is [0, +Inf).
func Positive() Bound { return Bound{lower: 0, upper: math.Inf(1)} }

// Negative is (-Inf, 0].
func Negative() Bound { return Bound{lower: math.Inf(-1), upper: 0} }

// Lower returns the lower endpoint.
func (b Bound) Lower() float64 { return b.lower }

// Upper returns the upper endpoint.
func (b Bound) Upper() float64 { return b.upper }

// Width returns upper - lower (may be +Inf).
func (b Bound) Width() float64 { return b.upper - b.lower }

// Contains reports whether v lies in [lower-atol, upper+atol].
func (b Bound) Contains(v float64, tol atol.ATol) bool {
	a := tol.Float64()
	return v >= b.lower-a && v <= b.upper+a
}

// Intersection returns the overlap of b and other, or ErrDisjoint if they
// share no point.
func (b Bound) Intersection(other Bound) (Bound, error) {
	lower := math.Max(b.lower, other.lower)
	upper := math.Min(b.upper, other.upper)
	if lower > upper {
		return Bound{}, ErrDisjoint
	}
	return Bound{lower: lower, upper: upper}, nil
}

// Add returns the Minkowski sum [a+c, b+d] for b=[a,b], other=[c,d].
func (b Bound) Add(other Bound) Bound {
	return Bound{lower: b.lower + other.lower, upper: b.upper + other.upper}
}

// MulScalar returns the bound scaled by c, flipping endpoints when c < 0.
func (b Bound) MulScalar(c float64) Bound {
	x, y := b.lower*c, b.upper*c
	if x > y {
		x, y = y, x
	}
	return Bound{lower: x, upper: y}
}

// Pow returns the bound raised to the n-th power, accounting for the sign of
// n and whether 0 lies in the interval.
//
// n == 0 always yields the degenerate bound [1,1] (0^0 is taken as 1, the
// polynomial-algebra convention for a constant monomial of degree 0).
func (b Bound) Pow(n int) Bound {
	if n == 0 {
		return Bound{lower: 1, upper: 1}
	}
	if n < 0 {
		// Only defined away from zero; callers of Pow with negative n are
		// expected to have already excluded 0 from the interval.
		inv := Bound{lower: 1 / b.upper, upper: 1 / b.lower}
		return inv.Pow(-n)
	}
	pow := func(x float64) float64 { return math.Pow(x, float64(n)) }
	if n%2 == 1 {
		// Odd power: monotone, endpoints map directly.
		return Bound{lower: pow(b.lower), upper: pow(b.upper)}
	}
	// Even power: if 0 is in range the minimum is 0, else it's the smaller
	// of the two endpoint magnitudes.
	lo, hi := pow(b.lower), pow(b.upper)
	maxv := math.Max(lo, hi)
	if b.lower <= 0 && b.upper >= 0 {
		return Bound{lower: 0, upper: maxv}
	}
	return Bound{lower: math.Min(lo, hi), upper: maxv}
}

// NearestToZero returns the point of the interval closest to zero.
func (b Bound) NearestToZero() float64 {
	switch {
	case b.lower > 0:
		return b.lower
	case b.upper < 0:
		return b.upper
	default:
		return 0
	}
}

// String renders the bound as "[lower, upper]".
func (b Bound) String() string {
	return fmt.Sprintf("[%s, %s]", formatEndpoint(b.lower), formatEndpoint(b.upper))
}

func formatEndpoint(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%g", v)
}
