package monomial

import "github.com/Jij-Inc/ommx-sub001/ids"

// ReduceBinaryPowers collapses every run of a binary variable's repeated
// factors (x^k, k>=2) down to a single factor (x), since binary variables
// satisfy x^2 == x. It reports whether the monomial actually changed.
//
// LinearMonomial cannot represent x^k for k>=2 at all, and QuadraticMonomial's
// only repeated factor is Pair(x, x), which
// polynomial.ReduceBinaryPowersQuadratic collapses directly; only
// MonomialDyn needs the general algorithm, defined here.
func (m MonomialDyn) ReduceBinaryPowers(binaryIDs map[ids.VariableID]struct{}) (MonomialDyn, bool) {
	ms := m.multiset()
	if len(ms) == 0 {
		return m, false
	}
	out := make([]ids.VariableID, 0, len(ms))
	changed := false
	i := 0
	for i < len(ms) {
		j := i + 1
		for j < len(ms) && ms[j] == ms[i] {
			j++
		}
		run := j - i
		if _, isBinary := binaryIDs[ms[i]]; isBinary && run >= 2 {
			out = append(out, ms[i])
			changed = true
		} else {
			for k := 0; k < run; k++ {
				out = append(out, ms[i])
			}
		}
		i = j
	}
	if !changed {
		return m, false
	}
	return encodeDyn(out), true
}
