package instance

import (
	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// PopulatedState returns a State covering every decision variable in i: for
// each ID, the value in given wins if present, otherwise the variable's own
// substituted_value, otherwise the value obtained by evaluating its
// decision_variable_dependency entry in topological order against values
// already resolved. If any decision variable has no given value, no
// substituted value, and no dependency entry (or its dependency's required
// IDs are not themselves resolvable), PopulatedState errors.
func (i Instance) PopulatedState(given evaluate.State) (evaluate.State, error) {
	state := make(evaluate.State, len(i.decisionVariables))
	for id, v := range given {
		state[id] = v
	}
	for id, dv := range i.decisionVariables {
		if _, ok := state[id]; ok {
			continue
		}
		if v, ok := dv.SubstitutedValue(); ok {
			state[id] = v
		}
	}
	for _, entry := range i.dependency.SortedIter() {
		if _, ok := state[entry.ID]; ok {
			continue
		}
		v, err := evaluate.FunctionValue(entry.Function, state)
		if err != nil {
			return nil, err
		}
		state[entry.ID] = v
	}
	for id := range i.decisionVariables {
		if _, ok := state[id]; !ok {
			return nil, &Error{ID: id, Err: evaluate.ErrMissingDecisionValue}
		}
	}
	return state, nil
}

// PartialEvaluate binds the variables named in state into the objective,
// every active and removed constraint, and decision_variable_dependency,
// and marks the corresponding DecisionVariables as substituted (validated
// against their kind and bound as decision.DecisionVariable.Substitute
// does). The result is built entirely out-of-place: on any error, the zero
// Instance is returned with the error, and i itself is left unmodified.
func (i Instance) PartialEvaluate(state evaluate.State, tol atol.ATol) (Instance, error) {
	newObjective, err := evaluate.PartialEvaluateFunction(i.objective, state)
	if err != nil {
		return Instance{}, err
	}

	newConstraints := make(map[ids.ConstraintID]constraint.Constraint, len(i.constraints))
	for id, c := range i.constraints {
		f, err := evaluate.PartialEvaluateFunction(c.Function(), state)
		if err != nil {
			return Instance{}, err
		}
		newConstraints[id] = c.WithFunction(f)
	}

	newRemoved := make(map[ids.ConstraintID]constraint.RemovedConstraint, len(i.removedConstraints))
	for id, rc := range i.removedConstraints {
		f, err := evaluate.PartialEvaluateFunction(rc.Function(), state)
		if err != nil {
			return Instance{}, err
		}
		newRemoved[id] = constraint.Remove(rc.Constraint.WithFunction(f), rc.Reason(), rc.Parameters())
	}

	entries := make([]assign.Entry, 0, i.dependency.Len())
	for _, e := range i.dependency.SortedIter() {
		f, err := evaluate.PartialEvaluateFunction(e.Function, state)
		if err != nil {
			return Instance{}, err
		}
		entries = append(entries, assign.Entry{ID: e.ID, Function: f})
	}
	newDependency, err := assign.New(entries)
	if err != nil {
		return Instance{}, err
	}

	newDVs := make(map[ids.VariableID]decision.DecisionVariable, len(i.decisionVariables))
	for id, dv := range i.decisionVariables {
		v, ok := state[id]
		if !ok {
			newDVs[id] = dv
			continue
		}
		substituted, err := dv.Substitute(v, tol)
		if err != nil {
			return Instance{}, err
		}
		newDVs[id] = substituted
	}

	out := i.clone()
	out.decisionVariables = newDVs
	out.objective = newObjective
	out.constraints = newConstraints
	out.removedConstraints = newRemoved
	out.dependency = newDependency
	return out, nil
}
