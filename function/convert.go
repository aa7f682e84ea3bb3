package function

import (
	"sort"

	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
)

// Kind reports which variant f currently holds.
func (f Function) Kind() Kind { return f.kind }

// AsConstant returns f's value and true if f is Zero or Constant.
func (f Function) AsConstant() (float64, bool) {
	switch f.kind {
	case Zero:
		return 0, true
	case Constant:
		return f.constant, true
	default:
		return 0, false
	}
}

// AsLinear returns f represented as a Linear polynomial and true, provided
// f holds the Zero, Constant, or Linear variant; a Quadratic or Polynomial
// variant returns false whatever its degree.
func (f Function) AsLinear() (polynomial.Linear, bool) {
	if f.kind > LinearKind {
		return polynomial.Linear{}, false
	}
	return f.toLinearPoly(), true
}

// AsQuadratic returns f represented as a Quadratic polynomial and true,
// provided f does not hold the Polynomial variant; a Polynomial variant
// returns false whatever its degree.
func (f Function) AsQuadratic() (polynomial.Quadratic, bool) {
	if f.kind > QuadraticKind {
		return polynomial.Quadratic{}, false
	}
	return f.toQuadraticPoly(), true
}

// AsPolynomial returns f represented as an arbitrary-degree Polynomial.
func (f Function) AsPolynomial() polynomial.Polynomial {
	return f.toPolynomialPoly()
}

func (f Function) toLinearPoly() polynomial.Linear {
	switch f.kind {
	case Zero:
		return polynomial.New[monomial.LinearMonomial]()
	case Constant:
		return polynomial.New[monomial.LinearMonomial]().AddOffset(mustOffset(f.constant))
	case LinearKind:
		return f.linear
	default:
		panic("function: toLinearPoly called on a Function of degree > 1")
	}
}

func (f Function) toQuadraticPoly() polynomial.Quadratic {
	switch f.kind {
	case QuadraticKind:
		return f.quad
	case LinearKind:
		out := polynomial.New[monomial.QuadraticMonomial]()
		f.linear.Each(func(m monomial.LinearMonomial, c coefficient.Coefficient) {
			out = out.AddTerm(monomial.FromLinearMonomial(m), c)
		})
		return out
	default:
		return polynomial.New[monomial.QuadraticMonomial]().AddOffset(constantOffset(f))
	}
}

func (f Function) toPolynomialPoly() polynomial.Polynomial {
	switch f.kind {
	case PolynomialKind:
		return f.poly
	case QuadraticKind:
		out := polynomial.New[monomial.MonomialDyn]()
		f.quad.Each(func(m monomial.QuadraticMonomial, c coefficient.Coefficient) {
			out = out.AddTerm(monomial.FromQuadratic(m), c)
		})
		return out
	case LinearKind:
		out := polynomial.New[monomial.MonomialDyn]()
		f.linear.Each(func(m monomial.LinearMonomial, c coefficient.Coefficient) {
			out = out.AddTerm(monomial.FromLinear(m), c)
		})
		return out
	default:
		return polynomial.New[monomial.MonomialDyn]().AddOffset(constantOffset(f))
	}
}

// constantOffset returns f's Zero/Constant value as an Offset, for use when
// promoting a scalar Function up into a higher-degree polynomial container.
func constantOffset(f Function) coefficient.Offset {
	v, _ := f.AsConstant()
	return mustOffset(v)
}

// RequiredIDs returns the distinct variable IDs f reads, sorted ascending.
func (f Function) RequiredIDs() []ids.VariableID {
	seen := make(map[ids.VariableID]struct{})
	switch f.kind {
	case Zero, Constant:
		return nil
	case LinearKind:
		f.linear.Each(func(m monomial.LinearMonomial, _ coefficient.Coefficient) {
			for _, id := range m.RequiredIDs() {
				seen[id] = struct{}{}
			}
		})
	case QuadraticKind:
		f.quad.Each(func(m monomial.QuadraticMonomial, _ coefficient.Coefficient) {
			for _, id := range m.RequiredIDs() {
				seen[id] = struct{}{}
			}
		})
	default:
		f.poly.Each(func(m monomial.MonomialDyn, _ coefficient.Coefficient) {
			for _, id := range m.RequiredIDs() {
				seen[id] = struct{}{}
			}
		})
	}
	if len(seen) == 0 {
		return nil
	}
	out := make(ids.VariableIDs, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Sort(out)
	return out
}
