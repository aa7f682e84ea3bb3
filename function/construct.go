package function

import (
	"errors"

	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
)

// FromConstant validates x and returns the Zero variant for an exact zero,
// or the Constant variant otherwise. It fails on NaN or +/-Inf.
func FromConstant(x float64) (Function, error) {
	c, err := coefficient.TryFrom(x)
	if err != nil {
		var ce *coefficient.Error
		if errors.As(err, &ce) && ce.Kind == coefficient.KindZero {
			return Function{}, nil
		}
		return Function{}, err
	}
	return Function{kind: Constant, constant: c.Float64()}, nil
}

// fromConstantValue builds a Zero/Constant Function from a value already
// known to be finite (derived from validated Coefficient/Offset arithmetic),
// skipping redundant re-validation.
func fromConstantValue(x float64) Function {
	if x == 0 {
		return Function{}
	}
	return Function{kind: Constant, constant: x}
}

func mustOffset(x float64) coefficient.Offset {
	o, err := coefficient.OffsetTryFrom(x)
	if err != nil {
		panic(err)
	}
	return o
}

// FromLinear wraps l, narrowing to Constant or Zero if l has no linear term.
func FromLinear(l polynomial.Linear) Function {
	if l.NumTerms() == 0 {
		return Function{}
	}
	if l.Degree() == 0 {
		var constant monomial.LinearMonomial
		c, _ := l.Get(constant)
		return fromConstantValue(c.Float64())
	}
	return Function{kind: LinearKind, linear: l}
}

// FromQuadratic wraps q, narrowing to Linear, Constant, or Zero if q has no
// quadratic term.
func FromQuadratic(q polynomial.Quadratic) Function {
	if q.NumTerms() == 0 {
		return Function{}
	}
	switch q.Degree() {
	case 0:
		var constant monomial.QuadraticMonomial
		c, _ := q.Get(constant)
		return fromConstantValue(c.Float64())
	case 1:
		lin := polynomial.New[monomial.LinearMonomial]()
		q.Each(func(m monomial.QuadraticMonomial, c coefficient.Coefficient) {
			if id, ok := m.LinearID(); ok {
				lin = lin.AddTerm(monomial.Variable(id), c)
				return
			}
			lin = lin.AddOffset(mustOffset(c.Float64()))
		})
		return FromLinear(lin)
	default:
		return Function{kind: QuadraticKind, quad: q}
	}
}

// FromPolynomial wraps p, narrowing to Constant or Zero if p has degree 0.
// It does not narrow a degree-1 or degree-2 Dyn polynomial down to Linear or
// Quadratic; keeping the wider Polynomial variant is within the narrowest-
// representation invariant's allowance for implementations to keep a wider
// variant than strictly necessary.
func FromPolynomial(p polynomial.Polynomial) Function {
	if p.NumTerms() == 0 {
		return Function{}
	}
	if p.Degree() == 0 {
		var constant monomial.MonomialDyn
		c, _ := p.Get(constant)
		return fromConstantValue(c.Float64())
	}
	return Function{kind: PolynomialKind, poly: p}
}
