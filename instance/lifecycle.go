package instance

import (
	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// NewDecisionVariable allocates a fresh VariableID (one past the current
// maximum, or 0 if the instance has none), validates a DecisionVariable for
// it via decision.New, and returns the instance with that variable added
// alongside the variable's ID.
func (i Instance) NewDecisionVariable(kind bound.Kind, b bound.Bound, substitutedValue *float64, tol atol.ATol, opts ...decision.Option) (Instance, ids.VariableID, error) {
	var next ids.VariableID
	for id := range i.decisionVariables {
		if id+1 > next {
			next = id + 1
		}
	}
	dv, err := decision.New(next, kind, b, substitutedValue, tol, opts...)
	if err != nil {
		return Instance{}, 0, err
	}
	out := i.clone()
	out.decisionVariables[next] = dv
	return out, next, nil
}

// Relax moves the active constraint id into the removed pool with the given
// reason and parameters. The constraint's ID and function are untouched.
func (i Instance) Relax(id ids.ConstraintID, reason string, parameters map[string]string) (Instance, error) {
	c, ok := i.constraints[id]
	if !ok {
		return Instance{}, &ConstraintIDError{ID: id, Err: ErrUndefinedConstraintID}
	}
	out := i.clone()
	delete(out.constraints, id)
	out.removedConstraints[id] = constraint.Remove(c, reason, parameters)
	return out, nil
}

// Restore moves the removed constraint id back into the active pool,
// discarding its removal reason and parameters. It is the exact inverse of
// Relax: the constraint's ID and function are bit-identical afterward.
func (i Instance) Restore(id ids.ConstraintID) (Instance, error) {
	rc, ok := i.removedConstraints[id]
	if !ok {
		return Instance{}, &ConstraintIDError{ID: id, Err: ErrUndefinedConstraintID}
	}
	out := i.clone()
	delete(out.removedConstraints, id)
	out.constraints[id] = rc.Constraint
	return out, nil
}

// ClipBounds intersects the bound of each named variable with the given new
// bound, validating the full batch out-of-place before committing any of it:
// if any ID is undefined or any resulting bound is empty, it returns the
// zero Instance with the error, and i itself is left unmodified.
func (i Instance) ClipBounds(updates map[ids.VariableID]bound.Bound, tol atol.ATol) (Instance, error) {
	clipped := make(map[ids.VariableID]decision.DecisionVariable, len(updates))
	for id, newBound := range updates {
		dv, ok := i.decisionVariables[id]
		if !ok {
			return Instance{}, &Error{ID: id, Err: ErrUndefinedVariableID}
		}
		next, err := dv.ClipBound(newBound, tol)
		if err != nil {
			return Instance{}, err
		}
		clipped[id] = next
	}
	out := i.clone()
	for id, dv := range clipped {
		out.decisionVariables[id] = dv
	}
	return out, nil
}

// AsMinimizationProblem returns i with sense forced to Minimize, negating
// the objective if the sense flips, and whether a change occurred. It is
// idempotent.
func (i Instance) AsMinimizationProblem() (Instance, bool) {
	if i.sense == Minimize {
		return i, false
	}
	out := i.clone()
	out.sense = Minimize
	out.objective = i.objective.Neg()
	return out, true
}

// AsMaximizationProblem returns i with sense forced to Maximize, negating
// the objective if the sense flips, and whether a change occurred. It is
// idempotent.
func (i Instance) AsMaximizationProblem() (Instance, bool) {
	if i.sense == Maximize {
		return i, false
	}
	out := i.clone()
	out.sense = Maximize
	out.objective = i.objective.Neg()
	return out, true
}
