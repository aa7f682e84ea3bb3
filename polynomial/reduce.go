package polynomial

import (
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
)

// ReduceBinaryPowersLinear is always a no-op: LinearMonomial cannot
// represent a repeated factor x^k (k>=2) in the first place.
func ReduceBinaryPowersLinear(p Linear, _ map[ids.VariableID]struct{}) (Linear, bool) {
	return p, false
}

// ReduceBinaryPowersQuadratic collapses every x*x pair term (Pair(x, x), the
// only repeated factor a QuadraticMonomial can hold) with x in binaryIDs
// down to the single-variable term x, since binary variables satisfy
// x^2 == x. It reports whether any term changed.
func ReduceBinaryPowersQuadratic(p Quadratic, binaryIDs map[ids.VariableID]struct{}) (Quadratic, bool) {
	out := New[monomial.QuadraticMonomial]()
	changedAny := false
	for m, c := range p.terms {
		if a, b, ok := m.PairIDs(); ok && a == b {
			if _, isBinary := binaryIDs[a]; isBinary {
				m = monomial.LinearQuadratic(a)
				changedAny = true
			}
		}
		out = out.addRaw(m, c.Float64())
	}
	if !changedAny {
		return p, false
	}
	return out, true
}

// ReduceBinaryPowersPolynomial collapses every term's repeated binary-variable
// factors (x^k, k>=2, for x in binaryIDs) down to a single factor, since
// binary variables satisfy x^2 == x. It reports whether any term changed.
func ReduceBinaryPowersPolynomial(p Polynomial, binaryIDs map[ids.VariableID]struct{}) (Polynomial, bool) {
	out := New[monomial.MonomialDyn]()
	changedAny := false
	for m, c := range p.terms {
		reduced, changed := m.ReduceBinaryPowers(binaryIDs)
		if changed {
			changedAny = true
		}
		out = out.addRaw(reduced, c.Float64())
	}
	if !changedAny {
		return p, false
	}
	return out, true
}
