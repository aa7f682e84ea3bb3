package instance

import (
	"sort"

	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// Instance aggregates a full mathematical-programming problem: decision
// variables, an objective, active and removed constraints, constraint
// hints, and a dependency chain of variables that have been substituted out
// but not deleted.
type Instance struct {
	decisionVariables  map[ids.VariableID]decision.DecisionVariable
	objective          function.Function
	sense              Sense
	constraints        map[ids.ConstraintID]constraint.Constraint
	removedConstraints map[ids.ConstraintID]constraint.RemovedConstraint
	hints              constraint.Hints
	dependency         assign.AcyclicAssignments
	description        string
	metadata           map[string]string
}

// Option configures optional Instance metadata at construction.
type Option func(*Instance)

// WithDescription attaches a free-text description.
func WithDescription(description string) Option {
	return func(i *Instance) { i.description = description }
}

// WithMetadataEntry attaches an arbitrary key/value annotation.
func WithMetadataEntry(key, value string) Option {
	return func(i *Instance) {
		if i.metadata == nil {
			i.metadata = make(map[string]string)
		}
		i.metadata[key] = value
	}
}

// New validates and builds an Instance. decisionVariables and constraints
// must each carry unique IDs; every variable ID referenced transitively by
// objective, any constraint, or dependency must be present in
// decisionVariables; hints must reference only IDs present in the result.
func New(
	objective function.Function,
	sense Sense,
	decisionVariables []decision.DecisionVariable,
	constraints []constraint.Constraint,
	dependency assign.AcyclicAssignments,
	hints constraint.Hints,
	opts ...Option,
) (Instance, error) {
	dvs := make(map[ids.VariableID]decision.DecisionVariable, len(decisionVariables))
	for _, dv := range decisionVariables {
		if _, dup := dvs[dv.ID()]; dup {
			return Instance{}, &Error{ID: dv.ID(), Err: ErrDuplicateVariableID}
		}
		dvs[dv.ID()] = dv
	}

	cs := make(map[ids.ConstraintID]constraint.Constraint, len(constraints))
	for _, c := range constraints {
		if _, dup := cs[c.ID()]; dup {
			return Instance{}, &ConstraintIDError{ID: c.ID(), Err: ErrDuplicateConstraintID}
		}
		cs[c.ID()] = c
	}

	inst := Instance{
		decisionVariables:  dvs,
		objective:          objective,
		sense:              sense,
		constraints:        cs,
		removedConstraints: make(map[ids.ConstraintID]constraint.RemovedConstraint),
		hints:              hints,
		dependency:         dependency,
	}
	for _, opt := range opts {
		opt(&inst)
	}

	if err := inst.validateReferences(); err != nil {
		return Instance{}, err
	}
	return inst, nil
}

func (i Instance) validateReferences() error {
	requireDefined := func(required []ids.VariableID) error {
		for _, id := range required {
			if _, ok := i.decisionVariables[id]; !ok {
				return &Error{ID: id, Err: ErrUndefinedVariableID}
			}
		}
		return nil
	}

	if err := requireDefined(i.objective.RequiredIDs()); err != nil {
		return err
	}
	for _, c := range i.constraints {
		if err := requireDefined(c.Function().RequiredIDs()); err != nil {
			return err
		}
	}
	for _, rc := range i.removedConstraints {
		if err := requireDefined(rc.Function().RequiredIDs()); err != nil {
			return err
		}
	}
	for _, entry := range i.dependency.SortedIter() {
		if _, ok := i.decisionVariables[entry.ID]; !ok {
			return &Error{ID: entry.ID, Err: ErrUndefinedVariableID}
		}
		if err := requireDefined(entry.Function.RequiredIDs()); err != nil {
			return err
		}
	}

	for _, hint := range i.hints.OneHot {
		if _, ok := i.constraints[hint.ConstraintID]; !ok {
			return &ConstraintIDError{ID: hint.ConstraintID, Err: ErrUndefinedConstraintID}
		}
		for _, v := range hint.Variables {
			if _, ok := i.decisionVariables[v]; !ok {
				return &Error{ID: v, Err: ErrUndefinedVariableID}
			}
		}
	}
	for _, hint := range i.hints.SOS1 {
		if hint.HasConstraint {
			if _, ok := i.constraints[hint.ConstraintID]; !ok {
				return &ConstraintIDError{ID: hint.ConstraintID, Err: ErrUndefinedConstraintID}
			}
		}
		for _, v := range hint.Variables {
			if _, ok := i.decisionVariables[v]; !ok {
				return &Error{ID: v, Err: ErrUndefinedVariableID}
			}
		}
	}
	return nil
}

// Objective returns the instance's objective function.
func (i Instance) Objective() function.Function { return i.objective }

// Sense returns the instance's optimization direction.
func (i Instance) Sense() Sense { return i.sense }

// DecisionVariable returns the decision variable with the given ID.
func (i Instance) DecisionVariable(id ids.VariableID) (decision.DecisionVariable, bool) {
	dv, ok := i.decisionVariables[id]
	return dv, ok
}

// DecisionVariables returns every decision variable, sorted by ID.
func (i Instance) DecisionVariables() []decision.DecisionVariable {
	out := make([]decision.DecisionVariable, 0, len(i.decisionVariables))
	for _, dv := range i.sortedVariableIDs() {
		out = append(out, i.decisionVariables[dv])
	}
	return out
}

func (i Instance) sortedVariableIDs() ids.VariableIDs {
	out := make(ids.VariableIDs, 0, len(i.decisionVariables))
	for id := range i.decisionVariables {
		out = append(out, id)
	}
	sort.Sort(out)
	return out
}

// Constraint returns the active constraint with the given ID.
func (i Instance) Constraint(id ids.ConstraintID) (constraint.Constraint, bool) {
	c, ok := i.constraints[id]
	return c, ok
}

// Constraints returns every active constraint, sorted by ID.
func (i Instance) Constraints() []constraint.Constraint {
	out := make([]constraint.Constraint, 0, len(i.constraints))
	for _, id := range i.sortedConstraintIDs(i.constraints) {
		out = append(out, i.constraints[id])
	}
	return out
}

// RemovedConstraints returns every removed constraint, sorted by ID.
func (i Instance) RemovedConstraints() []constraint.RemovedConstraint {
	out := make([]constraint.RemovedConstraint, 0, len(i.removedConstraints))
	for _, id := range i.sortedConstraintIDsRemoved() {
		out = append(out, i.removedConstraints[id])
	}
	return out
}

func (i Instance) sortedConstraintIDs(m map[ids.ConstraintID]constraint.Constraint) ids.ConstraintIDs {
	out := make(ids.ConstraintIDs, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Sort(out)
	return out
}

func (i Instance) sortedConstraintIDsRemoved() ids.ConstraintIDs {
	out := make(ids.ConstraintIDs, 0, len(i.removedConstraints))
	for id := range i.removedConstraints {
		out = append(out, id)
	}
	sort.Sort(out)
	return out
}

// Hints returns the instance's constraint hints.
func (i Instance) Hints() constraint.Hints { return i.hints }

// Dependency returns the instance's decision-variable dependency chain.
func (i Instance) Dependency() assign.AcyclicAssignments { return i.dependency }

// Description returns the instance's description, which may be empty.
func (i Instance) Description() string { return i.description }

// Metadata returns a defensive copy of the instance's metadata.
func (i Instance) Metadata() map[string]string {
	out := make(map[string]string, len(i.metadata))
	for k, v := range i.metadata {
		out[k] = v
	}
	return out
}

func (i Instance) clone() Instance {
	out := i
	out.decisionVariables = make(map[ids.VariableID]decision.DecisionVariable, len(i.decisionVariables))
	for k, v := range i.decisionVariables {
		out.decisionVariables[k] = v
	}
	out.constraints = make(map[ids.ConstraintID]constraint.Constraint, len(i.constraints))
	for k, v := range i.constraints {
		out.constraints[k] = v
	}
	out.removedConstraints = make(map[ids.ConstraintID]constraint.RemovedConstraint, len(i.removedConstraints))
	for k, v := range i.removedConstraints {
		out.removedConstraints[k] = v
	}
	if i.metadata != nil {
		out.metadata = make(map[string]string, len(i.metadata))
		for k, v := range i.metadata {
			out.metadata[k] = v
		}
	}
	return out
}
