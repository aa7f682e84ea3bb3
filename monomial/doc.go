// Package monomial defines the three canonical monomial keys used by
// polynomial.PolynomialBase: LinearMonomial, QuadraticMonomial, and
// MonomialDyn (arbitrary degree).
//
// Each type is a plain, comparable Go value usable as a map key, satisfying
// the generic Monomial[Self] constraint so that polynomial.PolynomialBase[M]
// can be written once and specialized per kind without runtime dispatch
// (spec.md §9, "No dynamic dispatch for arithmetic"). The self-referential
// generic constraint (Monomial[Self any] where Self's own methods return
// Self) mirrors the Polynomial[S, T, P]/Term[S, T] generic interfaces used
// by go-corset's pkg/util/poly package in the retrieval pack, adapted from
// three type parameters down to one since ommxcore does not need corset's
// separate "variable" type parameter.
//
// Default() of every monomial type is the constant monomial (empty
// product), matching spec.md §3's invariant for Default::default().
package monomial
