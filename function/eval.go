package function

import "github.com/Jij-Inc/ommx-sub001/ids"

// Degree returns f's total degree (0 for Zero and Constant).
func (f Function) Degree() int {
	switch f.kind {
	case Zero, Constant:
		return 0
	case LinearKind:
		return f.linear.Degree()
	case QuadraticKind:
		return f.quad.Degree()
	default:
		return f.poly.Degree()
	}
}

// Evaluate computes f's value against a fully-bound state. ok is false if
// any referenced variable is absent from state.
func (f Function) Evaluate(state map[ids.VariableID]float64) (value float64, ok bool) {
	switch f.kind {
	case Zero:
		return 0, true
	case Constant:
		return f.constant, true
	case LinearKind:
		return f.linear.Evaluate(state)
	case QuadraticKind:
		return f.quad.Evaluate(state)
	default:
		return f.poly.Evaluate(state)
	}
}

// PartialEvaluate substitutes the variables present in state, returning a
// Function over the remaining, unbound variables.
func (f Function) PartialEvaluate(state map[ids.VariableID]float64) Function {
	switch f.kind {
	case Zero, Constant:
		return f
	case LinearKind:
		return FromLinear(f.linear.PartialEvaluate(state))
	case QuadraticKind:
		return FromQuadratic(f.quad.PartialEvaluate(state))
	default:
		return FromPolynomial(f.poly.PartialEvaluate(state))
	}
}

// AbsDiffEq reports whether a and b are equal up to atol: Sub(a, b)'s
// largest absolute coefficient (or constant) must not exceed atol.
func AbsDiffEq(a, b Function, atol float64) bool {
	diff := Sub(a, b)
	switch diff.kind {
	case Zero:
		return true
	case Constant:
		abs := diff.constant
		if abs < 0 {
			abs = -abs
		}
		return abs <= atol
	case LinearKind:
		return diff.linear.MaxCoefficientAbs() <= atol
	case QuadraticKind:
		return diff.quad.MaxCoefficientAbs() <= atol
	default:
		return diff.poly.MaxCoefficientAbs() <= atol
	}
}
