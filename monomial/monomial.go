package monomial

import "github.com/Jij-Inc/ommx-sub001/ids"

// Monomial is the constraint every monomial key type (LinearMonomial,
// QuadraticMonomial, MonomialDyn) satisfies. Self appears in its own method
// signatures (Split returns Self) so that generic code written against
// M Monomial[M] can manipulate concrete monomials without a type switch.
type Monomial[Self any] interface {
	comparable

	// Degree returns the total degree of the monomial (0 for the constant).
	Degree() int

	// RequiredIDs returns the distinct variable IDs this monomial reads,
	// sorted ascending. It is nil for the constant monomial.
	RequiredIDs() []ids.VariableID

	// Value evaluates the monomial (excluding its coefficient) against
	// state. ok is false if any required ID is missing from state.
	Value(state map[ids.VariableID]float64) (value float64, ok bool)

	// Split partitions the monomial against the variables bound in state:
	// boundFactor is the product of the assigned factors (with
	// multiplicity), residual is a monomial over the remaining, unbound
	// variables, and changed reports whether any factor was actually
	// bound (false means residual == the receiver and boundFactor == 1).
	Split(state map[ids.VariableID]float64) (boundFactor float64, residual Self, changed bool)

	// String renders the monomial using sorted variable IDs, e.g. "v1*v2".
	String() string
}
