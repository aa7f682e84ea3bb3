// Package instance implements the C12 Instance aggregate: decision
// variables, constraints (active and removed), an objective Function, an
// optimization sense, constraint hints, and a dependency chain of
// substituted-out variables — plus the lifecycle operations spec.md assigns
// to it (adding variables, relaxing/restoring constraints, clipping bounds,
// flipping sense, and logarithmic binary encoding of a bounded integer).
package instance

import (
	"errors"
	"fmt"

	"github.com/Jij-Inc/ommx-sub001/ids"
)

var (
	// ErrDuplicateVariableID indicates two decision variables were supplied
	// with the same ID.
	ErrDuplicateVariableID = errors.New("instance: duplicate decision variable ID")

	// ErrDuplicateConstraintID indicates two constraints (active, removed,
	// or one of each) were supplied with the same ID.
	ErrDuplicateConstraintID = errors.New("instance: duplicate constraint ID")

	// ErrUndefinedVariableID indicates a reference (objective, constraint,
	// dependency, or hint) names a variable ID absent from decision_variables.
	ErrUndefinedVariableID = errors.New("instance: reference to undefined variable ID")

	// ErrUndefinedConstraintID indicates relax/restore/a hint names a
	// constraint ID absent from the instance.
	ErrUndefinedConstraintID = errors.New("instance: reference to undefined constraint ID")

	// ErrDependencyStillInUse indicates a decision_variable_dependency LHS
	// still appears in the objective or an active constraint after a
	// substitution that was supposed to remove it.
	ErrDependencyStillInUse = errors.New("instance: dependency variable still referenced by objective or an active constraint")

	// ErrNoFeasibleInteger indicates LogEncode was asked to encode a variable
	// whose bound admits no integer point.
	ErrNoFeasibleInteger = errors.New("instance: bound admits no feasible integer")

	// ErrNonFiniteBound indicates LogEncode was asked to encode a variable
	// with an unbounded (+/-Inf) endpoint.
	ErrNonFiniteBound = errors.New("instance: log-encoding requires a finite bound")

	// ErrNotInteger indicates LogEncode was asked to encode a non-Integer
	// decision variable.
	ErrNotInteger = errors.New("instance: log-encoding requires an Integer decision variable")

	// ErrUnknownVariable indicates LogEncode was asked to encode a variable
	// ID absent from the instance.
	ErrUnknownVariable = errors.New("instance: log-encoding target variable is unknown")

	// ErrMissingParameters indicates WithParameters was called without a
	// value for every ParameterID the ParametricInstance declares.
	ErrMissingParameters = errors.New("instance: missing parameter bindings")
)

// Error carries the ID most directly responsible for a validation failure.
type Error struct {
	ID  ids.VariableID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("instance: variable %s: %v", e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ConstraintIDError carries the constraint ID responsible for a validation
// failure.
type ConstraintIDError struct {
	ID  ids.ConstraintID
	Err error
}

func (e *ConstraintIDError) Error() string {
	return fmt.Sprintf("instance: constraint %s: %v", e.ID, e.Err)
}

func (e *ConstraintIDError) Unwrap() error { return e.Err }

// ParameterError carries the full sorted list of missing parameter IDs from
// a failed WithParameters call.
type ParameterError struct {
	IDs []ids.ParameterID
	Err error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("instance: %v: %v", e.Err, e.IDs)
}

func (e *ParameterError) Unwrap() error { return e.Err }

// Sense discriminates an Instance's optimization direction.
type Sense uint8

const (
	// Minimize seeks the smallest feasible objective value.
	Minimize Sense = iota
	// Maximize seeks the largest feasible objective value.
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

// Optimality is a pass-through solver-reported status attached to a Solution.
type Optimality uint8

const (
	OptimalityUnspecified Optimality = iota
	OptimalityOptimal
	OptimalityInfeasible
	OptimalityUnbounded
)

func (o Optimality) String() string {
	switch o {
	case OptimalityOptimal:
		return "Optimal"
	case OptimalityInfeasible:
		return "Infeasible"
	case OptimalityUnbounded:
		return "Unbounded"
	default:
		return "Unspecified"
	}
}

// Relaxation is a pass-through solver-reported relaxation kind attached to a
// Solution.
type Relaxation uint8

const (
	RelaxationUnspecified Relaxation = iota
	RelaxationLPRelaxed
)

func (r Relaxation) String() string {
	if r == RelaxationLPRelaxed {
		return "LpRelaxed"
	}
	return "Unspecified"
}

// Media-type constants identifying the artifact-layer blob kinds that wrap
// this package's model types (§6b). The core never reads or writes these
// itself; they exist as a single source of truth for external collaborators.
const (
	MediaTypeInstance           = "application/org.ommx.v1.instance"
	MediaTypeSolution           = "application/org.ommx.v1.solution"
	MediaTypeSampleSet          = "application/org.ommx.v1.sample-set"
	MediaTypeParametricInstance = "application/org.ommx.v1.parametric-instance"
)
