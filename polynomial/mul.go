package polynomial

import "github.com/Jij-Inc/ommx-sub001/monomial"

// MulLinearLinear computes the product of two Linear polynomials, promoting
// to Quadratic (spec: "Linear*Linear -> Quadratic").
func MulLinearLinear(a, b Linear) Quadratic {
	out := New[monomial.QuadraticMonomial]()
	for ma, ca := range a.terms {
		for mb, cb := range b.terms {
			prod, ok := ca.Mul(cb)
			if !ok {
				continue
			}
			out = out.addRaw(monomial.MulLinearLinear(ma, mb), prod.Float64())
		}
	}
	return out
}

// MulQuadraticLinear computes the product of a Quadratic and a Linear
// polynomial, promoting to Polynomial (degree can reach 3).
func MulQuadraticLinear(a Quadratic, b Linear) Polynomial {
	out := New[monomial.MonomialDyn]()
	for ma, ca := range a.terms {
		for mb, cb := range b.terms {
			prod, ok := ca.Mul(cb)
			if !ok {
				continue
			}
			out = out.addRaw(monomial.MulQuadraticLinear(ma, mb), prod.Float64())
		}
	}
	return out
}

// MulLinearQuadratic is the commuted form of MulQuadraticLinear.
func MulLinearQuadratic(a Linear, b Quadratic) Polynomial {
	return MulQuadraticLinear(b, a)
}

// MulQuadraticQuadratic computes the product of two Quadratic polynomials,
// promoting to Polynomial (degree can reach 4).
func MulQuadraticQuadratic(a, b Quadratic) Polynomial {
	out := New[monomial.MonomialDyn]()
	for ma, ca := range a.terms {
		for mb, cb := range b.terms {
			prod, ok := ca.Mul(cb)
			if !ok {
				continue
			}
			out = out.addRaw(monomial.MulQuadraticQuadratic(ma, mb), prod.Float64())
		}
	}
	return out
}

// MulPolynomial computes the product of two arbitrary-degree polynomials.
func MulPolynomial(a, b Polynomial) Polynomial {
	out := New[monomial.MonomialDyn]()
	for ma, ca := range a.terms {
		for mb, cb := range b.terms {
			prod, ok := ca.Mul(cb)
			if !ok {
				continue
			}
			out = out.addRaw(monomial.MulDyn(ma, mb), prod.Float64())
		}
	}
	return out
}

// MulLinearPolynomial multiplies a Linear polynomial into a Polynomial.
func MulLinearPolynomial(a Linear, b Polynomial) Polynomial {
	out := New[monomial.MonomialDyn]()
	for ma, ca := range a.terms {
		for mb, cb := range b.terms {
			prod, ok := ca.Mul(cb)
			if !ok {
				continue
			}
			out = out.addRaw(monomial.MulLinearDyn(ma, mb), prod.Float64())
		}
	}
	return out
}

// MulPolynomialLinear is the commuted form of MulLinearPolynomial.
func MulPolynomialLinear(a Polynomial, b Linear) Polynomial {
	return MulLinearPolynomial(b, a)
}

// MulQuadraticPolynomial multiplies a Quadratic polynomial into a Polynomial.
func MulQuadraticPolynomial(a Quadratic, b Polynomial) Polynomial {
	out := New[monomial.MonomialDyn]()
	for ma, ca := range a.terms {
		for mb, cb := range b.terms {
			prod, ok := ca.Mul(cb)
			if !ok {
				continue
			}
			out = out.addRaw(monomial.MulQuadraticDyn(ma, mb), prod.Float64())
		}
	}
	return out
}

// MulPolynomialQuadratic is the commuted form of MulQuadraticPolynomial.
func MulPolynomialQuadratic(a Polynomial, b Quadratic) Polynomial {
	return MulQuadraticPolynomial(b, a)
}
