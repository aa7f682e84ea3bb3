package monomial

import "github.com/Jij-Inc/ommx-sub001/ids"

// LinearMonomial is either the constant monomial or a single variable.
// Its zero value is the constant monomial, satisfying the
// Default::default() invariant.
type LinearMonomial struct {
	id    ids.VariableID
	isVar bool
}

// ConstantLinear returns the constant monomial (degree 0).
func ConstantLinear() LinearMonomial { return LinearMonomial{} }

// Variable returns the monomial consisting of the single variable id.
func Variable(id ids.VariableID) LinearMonomial {
	return LinearMonomial{id: id, isVar: true}
}

// IsConstant reports whether this is the constant monomial.
func (m LinearMonomial) IsConstant() bool { return !m.isVar }

// VariableID returns the variable this monomial represents and true, or
// (0, false) for the constant monomial.
func (m LinearMonomial) VariableID() (ids.VariableID, bool) { return m.id, m.isVar }

// Degree implements Monomial.
func (m LinearMonomial) Degree() int {
	if m.isVar {
		return 1
	}
	return 0
}

// RequiredIDs implements Monomial.
func (m LinearMonomial) RequiredIDs() []ids.VariableID {
	if !m.isVar {
		return nil
	}
	return []ids.VariableID{m.id}
}

// Value implements Monomial.
func (m LinearMonomial) Value(state map[ids.VariableID]float64) (float64, bool) {
	if !m.isVar {
		return 1, true
	}
	v, ok := state[m.id]
	return v, ok
}

// Split implements Monomial.
func (m LinearMonomial) Split(state map[ids.VariableID]float64) (float64, LinearMonomial, bool) {
	if !m.isVar {
		return 1, m, false
	}
	v, ok := state[m.id]
	if !ok {
		return 1, m, false
	}
	return v, ConstantLinear(), true
}

// PowerOf returns the exponent of id within m: 1 if m is exactly the
// variable id, 0 otherwise.
func (m LinearMonomial) PowerOf(id ids.VariableID) int {
	if m.isVar && m.id == id {
		return 1
	}
	return 0
}

// WithoutID returns m with every occurrence of id removed.
func (m LinearMonomial) WithoutID(id ids.VariableID) LinearMonomial {
	if m.isVar && m.id == id {
		return ConstantLinear()
	}
	return m
}

// String implements Monomial.
func (m LinearMonomial) String() string {
	if !m.isVar {
		return "1"
	}
	return m.id.String()
}
