package polynomial

import (
	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
)

// PolynomialBase is an unordered map from a monomial kind M to its non-zero
// Coefficient. The zero value is the zero polynomial (no terms); it is ready
// to use without calling New.
type PolynomialBase[M monomial.Monomial[M]] struct {
	terms map[M]coefficient.Coefficient
}

// New returns the zero polynomial for monomial kind M.
func New[M monomial.Monomial[M]]() PolynomialBase[M] {
	return PolynomialBase[M]{terms: make(map[M]coefficient.Coefficient)}
}

// FromTerms builds a polynomial from a caller-supplied term map, copying it
// defensively so later mutation of the argument cannot alias the result.
// Coefficients are already guaranteed non-zero by their type, so no
// canonicalization beyond the copy is required.
func FromTerms[M monomial.Monomial[M]](terms map[M]coefficient.Coefficient) PolynomialBase[M] {
	out := New[M]()
	for m, c := range terms {
		out.terms[m] = c
	}
	return out
}

func (p PolynomialBase[M]) clone() PolynomialBase[M] {
	out := make(map[M]coefficient.Coefficient, len(p.terms))
	for m, c := range p.terms {
		out[m] = c
	}
	return PolynomialBase[M]{terms: out}
}

// addRaw combines delta into the coefficient stored at m, dropping the entry
// on exact cancellation and skipping insertion of an exact-zero delta into an
// absent entry. It is the single place that preserves the "no zero
// coefficients" canonical-form invariant.
func (p PolynomialBase[M]) addRaw(m M, delta float64) PolynomialBase[M] {
	out := p.clone()
	if existing, ok := out.terms[m]; ok {
		sum := existing.Float64() + delta
		if sum == 0 {
			delete(out.terms, m)
		} else {
			out.terms[m] = coefficient.MustFrom(sum)
		}
		return out
	}
	if delta != 0 {
		out.terms[m] = coefficient.MustFrom(delta)
	}
	return out
}

// NumTerms returns the number of non-zero terms.
func (p PolynomialBase[M]) NumTerms() int { return len(p.terms) }

// Degree returns the maximum monomial degree among the terms, or 0 for the
// zero polynomial.
func (p PolynomialBase[M]) Degree() int {
	max := 0
	for m := range p.terms {
		if d := m.Degree(); d > max {
			max = d
		}
	}
	return max
}

// Get returns the coefficient of monomial m, or (zero-value, false) if m is
// not a term.
func (p PolynomialBase[M]) Get(m M) (coefficient.Coefficient, bool) {
	c, ok := p.terms[m]
	return c, ok
}

// Contains reports whether m has a non-zero coefficient in this polynomial.
func (p PolynomialBase[M]) Contains(m M) bool {
	_, ok := p.terms[m]
	return ok
}

// Keys returns the polynomial's monomials in unspecified order.
func (p PolynomialBase[M]) Keys() []M {
	out := make([]M, 0, len(p.terms))
	for m := range p.terms {
		out = append(out, m)
	}
	return out
}

// Values returns the polynomial's coefficients in unspecified order,
// aligned index-for-index with Keys.
func (p PolynomialBase[M]) Values() []coefficient.Coefficient {
	out := make([]coefficient.Coefficient, 0, len(p.terms))
	for _, c := range p.terms {
		out = append(out, c)
	}
	return out
}

// Each calls fn once per term in unspecified order.
func (p PolynomialBase[M]) Each(fn func(m M, c coefficient.Coefficient)) {
	for m, c := range p.terms {
		fn(m, c)
	}
}

// AddTerm inserts m with coefficient c, combining with any existing entry;
// the resulting term is dropped if the combination cancels exactly to zero.
func (p PolynomialBase[M]) AddTerm(m M, c coefficient.Coefficient) PolynomialBase[M] {
	return p.addRaw(m, c.Float64())
}

// AddOffset adds o to the constant term (the monomial kind's zero value).
func (p PolynomialBase[M]) AddOffset(o coefficient.Offset) PolynomialBase[M] {
	var constant M
	return p.addRaw(constant, o.Float64())
}

// Add returns p+other, term-wise. The smaller operand is folded into the
// larger for performance.
func (p PolynomialBase[M]) Add(other PolynomialBase[M]) PolynomialBase[M] {
	big, small := p, other
	if len(small.terms) > len(big.terms) {
		big, small = small, big
	}
	out := big.clone()
	for m, c := range small.terms {
		out = out.addRaw(m, c.Float64())
	}
	return out
}

// Sub returns p-other, term-wise.
func (p PolynomialBase[M]) Sub(other PolynomialBase[M]) PolynomialBase[M] {
	out := p.clone()
	for m, c := range other.terms {
		out = out.addRaw(m, -c.Float64())
	}
	return out
}

// Neg returns -p: every coefficient negated.
func (p PolynomialBase[M]) Neg() PolynomialBase[M] {
	out := New[M]()
	for m, c := range p.terms {
		out.terms[m] = c.Neg()
	}
	return out
}

// ScaleCoefficient returns p*c: every coefficient multiplied by c. A term
// whose product underflows to exact zero is dropped rather than treated as
// an error, matching Coefficient.Mul's cancellation contract.
func (p PolynomialBase[M]) ScaleCoefficient(c coefficient.Coefficient) PolynomialBase[M] {
	out := New[M]()
	for m, existing := range p.terms {
		if prod, ok := existing.Mul(c); ok {
			out.terms[m] = prod
		}
	}
	return out
}

// MaxCoefficientAbs returns the largest |coefficient| among the terms, or 0
// for the zero polynomial.
func (p PolynomialBase[M]) MaxCoefficientAbs() float64 {
	max := 0.0
	for _, c := range p.terms {
		if a := c.Abs().Float64(); a > max {
			max = a
		}
	}
	return max
}

// AbsDiffEq reports whether p and other are equal up to atol: the maximum
// absolute coefficient of their difference must not exceed atol.
func (p PolynomialBase[M]) AbsDiffEq(other PolynomialBase[M], atol float64) bool {
	return p.Sub(other).MaxCoefficientAbs() <= atol
}

// Evaluate computes the total value of p against a fully-bound state. ok is
// false if any term references a variable absent from state.
func (p PolynomialBase[M]) Evaluate(state map[ids.VariableID]float64) (value float64, ok bool) {
	total := 0.0
	for m, c := range p.terms {
		v, bound := m.Value(state)
		if !bound {
			return 0, false
		}
		total += c.Float64() * v
	}
	return total, true
}

// PartialEvaluate substitutes the variables present in state and returns the
// residual polynomial over the remaining, unbound variables; bound factors
// fold into the constant term and into any residual monomial they leave
// behind.
func (p PolynomialBase[M]) PartialEvaluate(state map[ids.VariableID]float64) PolynomialBase[M] {
	out := New[M]()
	for m, c := range p.terms {
		factor, residual, changed := m.Split(state)
		if !changed {
			out = out.addRaw(m, c.Float64())
			continue
		}
		out = out.addRaw(residual, c.Float64()*factor)
	}
	return out
}

// String implements the canonical display format shared across monomial
// kinds: descending degree, lexicographic by monomial text within a degree,
// a coefficient of 1 elided, -1 printed as a bare "-", and "0" for the zero
// polynomial.
func (p PolynomialBase[M]) String() string {
	terms := make([]displayTerm, 0, len(p.terms))
	for m, c := range p.terms {
		terms = append(terms, displayTerm{degree: m.Degree(), key: m.String(), coeff: c.Float64()})
	}
	return renderTerms(terms)
}
