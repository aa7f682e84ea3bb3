package coefficient

import "math"

// Coefficient is a finite, non-zero real number. It is the value attached to
// every monomial in a polynomial: a term with a zero coefficient is not
// representable and must instead be absent from the term map.
type Coefficient struct {
	v float64
}

// TryFrom validates x and wraps it as a Coefficient. It fails on NaN,
// +/-Inf, and exact zero.
func TryFrom(x float64) (Coefficient, error) {
	switch {
	case math.IsNaN(x):
		return Coefficient{}, &Error{Kind: KindNaN, Value: x, For: "Coefficient"}
	case math.IsInf(x, 0):
		return Coefficient{}, &Error{Kind: KindInfinite, Value: x, For: "Coefficient"}
	case x == 0:
		return Coefficient{}, &Error{Kind: KindZero, Value: x, For: "Coefficient"}
	default:
		return Coefficient{v: x}, nil
	}
}

// MustFrom is TryFrom but panics on error; reserved for literal constants
// known at compile time to be valid (tests, well-known weights).
func MustFrom(x float64) Coefficient {
	c, err := TryFrom(x)
	if err != nil {
		panic(err)
	}
	return c
}

// Float64 returns the underlying value.
func (c Coefficient) Float64() float64 { return c.v }

// Abs returns |c| as a Coefficient; never fails since |c| is finite and
// non-zero whenever c is.
func (c Coefficient) Abs() Coefficient {
	if c.v < 0 {
		return Coefficient{v: -c.v}
	}
	return c
}

// Neg returns -c; total, since negating a finite non-zero value stays finite
// and non-zero.
func (c Coefficient) Neg() Coefficient { return Coefficient{v: -c.v} }

// Mul returns c*other; total (finite*finite is finite, non-zero*non-zero is
// non-zero, so the float64 product is always a valid Coefficient value -
// except for underflow to zero on values at the edge of float64 range,
// which we treat as exact cancellation, matching Add's contract).
func (c Coefficient) Mul(other Coefficient) (Coefficient, bool) {
	p := c.v * other.v
	if p == 0 {
		return Coefficient{}, false
	}
	return Coefficient{v: p}, true
}

// Add returns c+other. The bool result is false exactly when the sum cancels
// to exact zero; a false result is not an error, it signals that the caller
// must drop the corresponding term.
func (c Coefficient) Add(other Coefficient) (Coefficient, bool) {
	s := c.v + other.v
	if s == 0 {
		return Coefficient{}, false
	}
	return Coefficient{v: s}, true
}

// Sub returns c-other; same cancellation contract as Add.
func (c Coefficient) Sub(other Coefficient) (Coefficient, bool) {
	return c.Add(other.Neg())
}

// Cmp orders Coefficient by numeric value: -1, 0, or 1.
func (c Coefficient) Cmp(other Coefficient) int {
	switch {
	case c.v < other.v:
		return -1
	case c.v > other.v:
		return 1
	default:
		return 0
	}
}

// Offset is a finite real number used for constant terms, where collapse to
// zero must remain representable (unlike Coefficient, zero is valid).
type Offset struct {
	v float64
}

// OffsetTryFrom validates x and wraps it as an Offset. It fails only on NaN or
// +/-Inf.
func OffsetTryFrom(x float64) (Offset, error) {
	switch {
	case math.IsNaN(x):
		return Offset{}, &Error{Kind: KindNaN, Value: x, For: "Offset"}
	case math.IsInf(x, 0):
		return Offset{}, &Error{Kind: KindInfinite, Value: x, For: "Offset"}
	default:
		return Offset{v: x}, nil
	}
}

// Zero is the additive identity Offset.
func Zero() Offset { return Offset{} }

// Float64 returns the underlying value.
func (o Offset) Float64() float64 { return o.v }

// IsZero reports whether the offset is exactly zero.
func (o Offset) IsZero() bool { return o.v == 0 }

// Add returns o+other; always finite since both operands are finite.
func (o Offset) Add(other Offset) Offset { return Offset{v: o.v + other.v} }

// Neg returns -o.
func (o Offset) Neg() Offset { return Offset{v: -o.v} }
