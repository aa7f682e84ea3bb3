package monomial

import "github.com/Jij-Inc/ommx-sub001/ids"

type quadraticKind uint8

const (
	qConstant quadraticKind = iota
	qLinear
	qPair
)

// QuadraticMonomial is the constant monomial, a single variable, or an
// (unordered, canonically id1<=id2) pair of variables. Its zero value is
// the constant monomial.
type QuadraticMonomial struct {
	kind quadraticKind
	a, b ids.VariableID
}

// ConstantQuadratic returns the constant monomial.
func ConstantQuadratic() QuadraticMonomial { return QuadraticMonomial{} }

// LinearQuadratic returns the monomial for a single variable.
func LinearQuadratic(id ids.VariableID) QuadraticMonomial {
	return QuadraticMonomial{kind: qLinear, a: id}
}

// Pair returns the monomial id1*id2, canonicalizing so id1<=id2; if
// id1==id2 this represents id^2.
func Pair(id1, id2 ids.VariableID) QuadraticMonomial {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return QuadraticMonomial{kind: qPair, a: id1, b: id2}
}

// FromLinearMonomial converts a LinearMonomial into its QuadraticMonomial
// representation (degree-preserving promotion).
func FromLinearMonomial(m LinearMonomial) QuadraticMonomial {
	if id, ok := m.VariableID(); ok {
		return LinearQuadratic(id)
	}
	return ConstantQuadratic()
}

// IsConstant, IsLinear and IsPair report which of the three shapes this
// monomial has.
func (m QuadraticMonomial) IsConstant() bool { return m.kind == qConstant }
func (m QuadraticMonomial) IsLinear() bool   { return m.kind == qLinear }
func (m QuadraticMonomial) IsPair() bool     { return m.kind == qPair }

// LinearID returns the variable for a single-variable monomial.
func (m QuadraticMonomial) LinearID() (ids.VariableID, bool) {
	if m.kind != qLinear {
		return 0, false
	}
	return m.a, true
}

// PairIDs returns the two variables (id1<=id2) for a pair monomial.
func (m QuadraticMonomial) PairIDs() (ids.VariableID, ids.VariableID, bool) {
	if m.kind != qPair {
		return 0, 0, false
	}
	return m.a, m.b, true
}

// Degree implements Monomial.
func (m QuadraticMonomial) Degree() int {
	switch m.kind {
	case qConstant:
		return 0
	case qLinear:
		return 1
	default:
		return 2
	}
}

// RequiredIDs implements Monomial.
func (m QuadraticMonomial) RequiredIDs() []ids.VariableID {
	switch m.kind {
	case qConstant:
		return nil
	case qLinear:
		return []ids.VariableID{m.a}
	default:
		if m.a == m.b {
			return []ids.VariableID{m.a}
		}
		return []ids.VariableID{m.a, m.b}
	}
}

// Value implements Monomial.
func (m QuadraticMonomial) Value(state map[ids.VariableID]float64) (float64, bool) {
	switch m.kind {
	case qConstant:
		return 1, true
	case qLinear:
		v, ok := state[m.a]
		return v, ok
	default:
		va, ok := state[m.a]
		if !ok {
			return 0, false
		}
		vb, ok := state[m.b]
		if !ok {
			return 0, false
		}
		return va * vb, true
	}
}

// Split implements Monomial.
func (m QuadraticMonomial) Split(state map[ids.VariableID]float64) (float64, QuadraticMonomial, bool) {
	switch m.kind {
	case qConstant:
		return 1, m, false
	case qLinear:
		v, ok := state[m.a]
		if !ok {
			return 1, m, false
		}
		return v, ConstantQuadratic(), true
	default:
		va, okA := state[m.a]
		vb, okB := state[m.b]
		switch {
		case okA && okB:
			return va * vb, ConstantQuadratic(), true
		case okA:
			return va, LinearQuadratic(m.b), true
		case okB:
			return vb, LinearQuadratic(m.a), true
		default:
			return 1, m, false
		}
	}
}

// PowerOf returns the exponent of id within m (0, 1, or 2).
func (m QuadraticMonomial) PowerOf(id ids.VariableID) int {
	switch m.kind {
	case qLinear:
		if m.a == id {
			return 1
		}
	case qPair:
		count := 0
		if m.a == id {
			count++
		}
		if m.b == id {
			count++
		}
		return count
	}
	return 0
}

// WithoutID returns m with every occurrence of id removed.
func (m QuadraticMonomial) WithoutID(id ids.VariableID) QuadraticMonomial {
	switch m.kind {
	case qLinear:
		if m.a == id {
			return ConstantQuadratic()
		}
	case qPair:
		switch {
		case m.a == id && m.b == id:
			return ConstantQuadratic()
		case m.a == id:
			return LinearQuadratic(m.b)
		case m.b == id:
			return LinearQuadratic(m.a)
		}
	}
	return m
}

// String implements Monomial.
func (m QuadraticMonomial) String() string {
	switch m.kind {
	case qConstant:
		return "1"
	case qLinear:
		return m.a.String()
	default:
		if m.a == m.b {
			return m.a.String() + "^2"
		}
		return m.a.String() + "*" + m.b.String()
	}
}
