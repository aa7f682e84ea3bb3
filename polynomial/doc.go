// Package polynomial implements the generic algebraic container that backs
// every degree of objective and constraint expression in this module:
// PolynomialBase[M] is an unordered map from a monomial kind M to a non-zero
// Coefficient, with the three concrete instantiations Linear, Quadratic, and
// Polynomial (arbitrary degree, keyed by monomial.MonomialDyn).
//
// PolynomialBase values are immutable: every arithmetic method returns a new
// value rather than mutating the receiver, so callers never need to guard
// against aliased map state leaking between two polynomials that happen to
// share history.
package polynomial

import "github.com/Jij-Inc/ommx-sub001/monomial"

// Linear is a polynomial over LinearMonomial (degree <= 1).
type Linear = PolynomialBase[monomial.LinearMonomial]

// Quadratic is a polynomial over QuadraticMonomial (degree <= 2).
type Quadratic = PolynomialBase[monomial.QuadraticMonomial]

// Polynomial is a polynomial of arbitrary degree, keyed by MonomialDyn.
type Polynomial = PolynomialBase[monomial.MonomialDyn]
