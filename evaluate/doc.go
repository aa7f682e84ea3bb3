// Package evaluate implements the C11 evaluator primitives: total
// evaluation of a Function, DecisionVariable, or Constraint against a State,
// partial evaluation that binds a subset of variables, and the Samples/
// Sampled[T] machinery that lets a multi-sample evaluation share work across
// samples that happen to carry an identical State.
//
// Instance- and SampleSet-level aggregation (populating a State from
// dependency chains, producing a Solution or SampleSet with feasibility
// verdicts) layers on top of these primitives in the instance and solution
// packages, to avoid a package-import cycle between evaluate and instance.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/Jij-Inc/ommx-sub001/ids"
)

// State maps a decision variable to the real value it takes for one
// evaluation.
type State map[ids.VariableID]float64

var (
	// ErrMissingVariable indicates a Function's required variable is absent
	// from the State it's being evaluated against.
	ErrMissingVariable = errors.New("evaluate: required variable missing from state")

	// ErrMissingDecisionValue indicates a DecisionVariable has neither a
	// State entry nor a substituted value to fall back on.
	ErrMissingDecisionValue = errors.New("evaluate: decision variable has neither a state value nor a substituted value")

	// ErrNonFiniteState indicates a partial-evaluation State contains NaN or
	// +/-Inf.
	ErrNonFiniteState = errors.New("evaluate: state contains a non-finite value")
)

// Error reports which variable triggered an evaluation failure.
type Error struct {
	ID  ids.VariableID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("evaluate: variable %s: %v", e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
