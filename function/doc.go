// Package function implements Function, the sum type {Zero, Constant,
// Linear, Quadratic, Polynomial} used throughout the module wherever an
// expression's exact degree isn't known in advance: an objective, a
// constraint body, a substituted decision variable's value.
//
// Function follows the discriminator-struct shape used elsewhere in this
// module (bound.Kind, coefficient.Kind) rather than an interface with
// dynamic dispatch: its zero value is Zero, the additive identity and
// multiplicative annihilator, and arithmetic results are narrowed to the
// smallest variant that represents them exactly, except that a result built
// in the Polynomial variant is narrowed only to Zero or Constant (see
// FromPolynomial).
package function

import "github.com/Jij-Inc/ommx-sub001/polynomial"

// Kind discriminates which variant a Function currently holds.
type Kind uint8

const (
	// Zero is the additive identity and multiplicative annihilator.
	Zero Kind = iota
	Constant
	LinearKind
	QuadraticKind
	PolynomialKind
)

func (k Kind) String() string {
	switch k {
	case Zero:
		return "Zero"
	case Constant:
		return "Constant"
	case LinearKind:
		return "Linear"
	case QuadraticKind:
		return "Quadratic"
	case PolynomialKind:
		return "Polynomial"
	default:
		return "Unknown"
	}
}

// Function is the tagged union described above. Its zero value is the Zero
// variant.
type Function struct {
	kind     Kind
	constant float64
	linear   polynomial.Linear
	quad     polynomial.Quadratic
	poly     polynomial.Polynomial
}
