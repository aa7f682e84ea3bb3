// Package decision implements DecisionVariable: an ID, a Kind/Bound pair
// validated for mutual consistency, and an optional substituted value that
// the evaluator should use in place of a State lookup.
//
// Construction follows the same validate-eagerly discipline as bound.New and
// coefficient.TryFrom: there is no way to build a DecisionVariable whose
// bound disagrees with its kind, or whose substituted value falls outside
// that bound.
package decision

import (
	"errors"
	"fmt"

	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// ErrInfeasibleSubstitutedValue indicates a substituted value falls outside
// the variable's bound, or off the integer lattice for an integral kind.
var ErrInfeasibleSubstitutedValue = errors.New("decision: substituted value infeasible for kind/bound")

// Error reports a failed substitution or construction, carrying the
// variable's identity and the value that was rejected.
type Error struct {
	ID    ids.VariableID
	Kind  bound.Kind
	Bound bound.Bound
	Value float64
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("decision: variable %s value %g infeasible for kind %s bound %s: %v", e.ID, e.Value, e.Kind, e.Bound, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
