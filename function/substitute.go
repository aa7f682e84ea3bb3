package function

import (
	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
)

func one() Function { return Function{kind: Constant, constant: 1} }

// pow returns replacement raised to the k-th power (k >= 0); pow(_, 0) is
// the constant Function 1, matching the degree-0 constant-monomial
// convention used throughout this module.
func pow(replacement Function, k int) Function {
	if k <= 0 {
		return one()
	}
	result := replacement
	for i := 1; i < k; i++ {
		result = Mul(result, replacement)
	}
	return result
}

// Substitute replaces every occurrence of the variable assigned with
// replacement, degree-promoting as needed: a monomial's power-k factor of
// assigned becomes replacement^k, multiplied back into the monomial's
// remaining (unsubstituted) factors.
func (f Function) Substitute(assigned ids.VariableID, replacement Function) Function {
	switch f.kind {
	case Zero, Constant:
		return f
	case LinearKind:
		return substituteLinear(f.linear, assigned, replacement)
	case QuadraticKind:
		return substituteQuadratic(f.quad, assigned, replacement)
	default:
		return substitutePolynomial(f.poly, assigned, replacement)
	}
}

func substituteLinear(l polynomial.Linear, assigned ids.VariableID, replacement Function) Function {
	result := Function{}
	l.Each(func(m monomial.LinearMonomial, c coefficient.Coefficient) {
		power := m.PowerOf(assigned)
		residual := m.WithoutID(assigned)
		term := FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(residual, c))
		if power > 0 {
			term = Mul(term, pow(replacement, power))
		}
		result = Add(result, term)
	})
	return result
}

func substituteQuadratic(q polynomial.Quadratic, assigned ids.VariableID, replacement Function) Function {
	result := Function{}
	q.Each(func(m monomial.QuadraticMonomial, c coefficient.Coefficient) {
		power := m.PowerOf(assigned)
		residual := m.WithoutID(assigned)
		term := FromQuadratic(polynomial.New[monomial.QuadraticMonomial]().AddTerm(residual, c))
		if power > 0 {
			term = Mul(term, pow(replacement, power))
		}
		result = Add(result, term)
	})
	return result
}

func substitutePolynomial(p polynomial.Polynomial, assigned ids.VariableID, replacement Function) Function {
	result := Function{}
	p.Each(func(m monomial.MonomialDyn, c coefficient.Coefficient) {
		power := m.PowerOf(assigned)
		residual := m.WithoutID(assigned)
		term := FromPolynomial(polynomial.New[monomial.MonomialDyn]().AddTerm(residual, c))
		if power > 0 {
			term = Mul(term, pow(replacement, power))
		}
		result = Add(result, term)
	})
	return result
}
