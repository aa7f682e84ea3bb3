package evaluate

import (
	"math"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// EvaluatedDecisionVariable pairs a resolved value with whether it respects
// the variable's own kind and bound. Per spec, this is informational: a
// kind/bound violation here does not abort evaluation.
type EvaluatedDecisionVariable struct {
	ID       ids.VariableID
	Kind     bound.Kind
	Bound    bound.Bound
	Value    float64
	Feasible bool
}

// EvaluatedConstraint pairs a constraint's evaluated function value with its
// feasibility verdict under that constraint's equality.
type EvaluatedConstraint struct {
	ID       ids.ConstraintID
	Equality constraint.Equality
	Value    float64
	Feasible bool
}

// FunctionValue evaluates f against state, returning *Error wrapping
// ErrMissingVariable (naming the first required ID absent from state) if
// state does not fully cover f's required variables.
func FunctionValue(f function.Function, state State) (float64, error) {
	v, ok := f.Evaluate(state)
	if ok {
		return v, nil
	}
	return 0, &Error{ID: firstMissing(f.RequiredIDs(), state), Err: ErrMissingVariable}
}

func firstMissing(required []ids.VariableID, state State) ids.VariableID {
	for _, id := range required {
		if _, ok := state[id]; !ok {
			return id
		}
	}
	return 0
}

// DecisionVariableValue resolves d's value from state (falling back to its
// substituted value) and reports whether that value is feasible for d's own
// kind and bound. It errors only when neither source provides a value.
func DecisionVariableValue(d decision.DecisionVariable, state State, tol atol.ATol) (EvaluatedDecisionVariable, error) {
	v, ok := d.Value(state)
	if !ok {
		return EvaluatedDecisionVariable{}, &Error{ID: d.ID(), Err: ErrMissingDecisionValue}
	}
	return EvaluatedDecisionVariable{
		ID:       d.ID(),
		Kind:     d.Kind(),
		Bound:    d.Bound(),
		Value:    v,
		Feasible: bound.FeasibleValue(d.Kind(), d.Bound(), v, tol),
	}, nil
}

// ConstraintValue evaluates c's function against state and reports whether
// the resulting value satisfies c's equality within tol.
func ConstraintValue(c constraint.Constraint, state State, tol atol.ATol) (EvaluatedConstraint, error) {
	v, err := FunctionValue(c.Function(), state)
	if err != nil {
		return EvaluatedConstraint{}, err
	}
	return EvaluatedConstraint{
		ID:       c.ID(),
		Equality: c.Equality(),
		Value:    v,
		Feasible: c.Feasible(v, tol),
	}, nil
}

// PartialEvaluateFunction binds the variables present in state into f,
// rejecting a state that carries a NaN or infinite value.
func PartialEvaluateFunction(f function.Function, state State) (function.Function, error) {
	for _, v := range state {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return function.Function{}, ErrNonFiniteState
		}
	}
	return f.PartialEvaluate(state), nil
}
