package instance

import (
	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/substitute"
)

// SubstituteOne replaces every occurrence of assigned in the objective,
// every active and removed constraint, and every existing dependency RHS
// with replacement, then records assigned -> replacement as a new (or
// updated) dependency entry and rebuilds the dependency chain through
// assign.New so acyclicity is re-verified from scratch. assigned must
// already be a known decision variable; it is not removed from
// decision_variables.
//
// The Instance is built entirely out-of-place: if the rebuilt dependency
// chain turns out cyclic, the zero Instance is returned alongside the
// error, and i itself is left unmodified.
func (i Instance) SubstituteOne(assigned ids.VariableID, replacement function.Function) (Instance, error) {
	if _, ok := i.decisionVariables[assigned]; !ok {
		return Instance{}, &Error{ID: assigned, Err: ErrUndefinedVariableID}
	}

	newConstraints := make(map[ids.ConstraintID]constraint.Constraint, len(i.constraints))
	for id, c := range i.constraints {
		newConstraints[id] = substitute.OneInConstraint(c, assigned, replacement)
	}
	newRemoved := make(map[ids.ConstraintID]constraint.RemovedConstraint, len(i.removedConstraints))
	for id, rc := range i.removedConstraints {
		substituted := substitute.OneInConstraint(rc.Constraint, assigned, replacement)
		newRemoved[id] = constraint.Remove(substituted, rc.Reason(), rc.Parameters())
	}

	entries := make([]assign.Entry, 0, i.dependency.Len()+1)
	for _, e := range i.dependency.SortedIter() {
		if e.ID == assigned {
			continue
		}
		entries = append(entries, assign.Entry{ID: e.ID, Function: substitute.OneInFunction(e.Function, assigned, replacement)})
	}
	entries = append(entries, assign.Entry{ID: assigned, Function: replacement})

	newDependency, err := assign.New(entries)
	if err != nil {
		return Instance{}, err
	}

	out := i.clone()
	out.objective = substitute.OneInFunction(i.objective, assigned, replacement)
	out.constraints = newConstraints
	out.removedConstraints = newRemoved
	out.dependency = newDependency
	return out, nil
}

// SubstituteAcyclic applies every assignment in acyclic to i, in topological
// order, as a sequence of SubstituteOne calls.
func (i Instance) SubstituteAcyclic(acyclic assign.AcyclicAssignments) (Instance, error) {
	out := i
	for _, entry := range acyclic.SortedIter() {
		next, err := out.SubstituteOne(entry.ID, entry.Function)
		if err != nil {
			return Instance{}, err
		}
		out = next
	}
	return out, nil
}
