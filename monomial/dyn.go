package monomial

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"

	"github.com/Jij-Inc/ommx-sub001/ids"
)

// MonomialDyn represents a product of variables of arbitrary degree, e.g.
// x1*x2^3. It is backed by a canonical string encoding (sorted ascending
// multiset of 8-byte big-endian variable IDs) so that it remains a plain,
// comparable map key while supporting unbounded degree — Go generics require
// map keys to be `comparable`, which rules out a []VariableID field
// directly. The zero value ("") is the constant monomial.
type MonomialDyn string

const idWidth = 8

// Dyn builds the canonical MonomialDyn for the given multiset of variable
// IDs (duplicates represent powers, e.g. Dyn(v1, v1, v2) == v1^2*v2).
func Dyn(varIDs ...ids.VariableID) MonomialDyn {
	sorted := append([]ids.VariableID(nil), varIDs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return encodeDyn(sorted)
}

func encodeDyn(sorted []ids.VariableID) MonomialDyn {
	if len(sorted) == 0 {
		return ""
	}
	buf := make([]byte, idWidth*len(sorted))
	for i, id := range sorted {
		binary.BigEndian.PutUint64(buf[i*idWidth:], uint64(id))
	}
	return MonomialDyn(buf)
}

// multiset decodes the canonical encoding back into a sorted slice,
// preserving multiplicity.
func (m MonomialDyn) multiset() []ids.VariableID {
	n := len(m) / idWidth
	if n == 0 {
		return nil
	}
	out := make([]ids.VariableID, n)
	for i := 0; i < n; i++ {
		out[i] = ids.VariableID(binary.BigEndian.Uint64([]byte(m[i*idWidth : (i+1)*idWidth])))
	}
	return out
}

// Degree implements Monomial: the total multiset size.
func (m MonomialDyn) Degree() int { return len(m) / idWidth }

// RequiredIDs implements Monomial: the distinct variable IDs, deduplicated.
func (m MonomialDyn) RequiredIDs() []ids.VariableID {
	ms := m.multiset()
	if len(ms) == 0 {
		return nil
	}
	out := make([]ids.VariableID, 0, len(ms))
	for i, id := range ms {
		if i == 0 || id != ms[i-1] {
			out = append(out, id)
		}
	}
	return out
}

// Value implements Monomial.
func (m MonomialDyn) Value(state map[ids.VariableID]float64) (float64, bool) {
	result := 1.0
	for _, id := range m.multiset() {
		v, ok := state[id]
		if !ok {
			return 0, false
		}
		result *= v
	}
	return result, true
}

// Split implements Monomial.
func (m MonomialDyn) Split(state map[ids.VariableID]float64) (float64, MonomialDyn, bool) {
	ms := m.multiset()
	boundFactor := 1.0
	residual := make([]ids.VariableID, 0, len(ms))
	changed := false
	for _, id := range ms {
		if v, ok := state[id]; ok {
			boundFactor *= v
			changed = true
			continue
		}
		residual = append(residual, id)
	}
	if !changed {
		return 1, m, false
	}
	return boundFactor, encodeDyn(residual), true
}

// PowerOf returns the exponent (multiplicity) of id within m.
func (m MonomialDyn) PowerOf(id ids.VariableID) int {
	count := 0
	for _, v := range m.multiset() {
		if v == id {
			count++
		}
	}
	return count
}

// WithoutID returns m with every occurrence of id removed.
func (m MonomialDyn) WithoutID(id ids.VariableID) MonomialDyn {
	ms := m.multiset()
	out := make([]ids.VariableID, 0, len(ms))
	for _, v := range ms {
		if v != id {
			out = append(out, v)
		}
	}
	return encodeDyn(out)
}

// String implements Monomial.
func (m MonomialDyn) String() string {
	ms := m.multiset()
	if len(ms) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(ms))
	i := 0
	for i < len(ms) {
		j := i + 1
		for j < len(ms) && ms[j] == ms[i] {
			j++
		}
		power := j - i
		if power == 1 {
			parts = append(parts, ms[i].String())
		} else {
			parts = append(parts, ms[i].String()+"^"+strconv.Itoa(power))
		}
		i = j
	}
	return strings.Join(parts, "*")
}

// FromLinear converts a LinearMonomial into its Dyn representation.
func FromLinear(m LinearMonomial) MonomialDyn {
	if id, ok := m.VariableID(); ok {
		return Dyn(id)
	}
	return ""
}

// FromQuadratic converts a QuadraticMonomial into its Dyn representation.
func FromQuadratic(m QuadraticMonomial) MonomialDyn {
	if id1, id2, ok := m.PairIDs(); ok {
		return Dyn(id1, id2)
	}
	if id, ok := m.LinearID(); ok {
		return Dyn(id)
	}
	return ""
}
