package solution

import (
	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/instance"
)

// Solution is the result of evaluating an Instance against a fully or
// partially given State: the objective value, the full resolved State, a
// per-variable and per-constraint evaluated breakdown, and feasibility
// flags against the active constraint set and against every constraint
// (active and removed).
//
// Per spec, Feasible() reports feasibility against every constraint
// (the historical "feasible_unrelaxed"); FeasibleRelaxed() reports
// feasibility against the active set only. There is no separate
// "feasible_unrelaxed" accessor — Feasible() is that flag under its
// current name.
type Solution struct {
	objectiveValue       float64
	state                evaluate.State
	decisionVariables    map[ids.VariableID]evaluate.EvaluatedDecisionVariable
	evaluatedConstraints map[ids.ConstraintID]evaluate.EvaluatedConstraint
	sense                instance.Sense
	optimality           instance.Optimality
	relaxation           instance.Relaxation
	feasible             bool
	feasibleRelaxed      bool
}

// Option configures optional, externally-reported Solution metadata (the
// fields a solver reports rather than ones this package computes).
type Option func(*Solution)

// WithOptimality attaches a solver-reported optimality status.
func WithOptimality(o instance.Optimality) Option {
	return func(s *Solution) { s.optimality = o }
}

// WithRelaxation attaches a solver-reported relaxation status.
func WithRelaxation(r instance.Relaxation) Option {
	return func(s *Solution) { s.relaxation = r }
}

// Evaluate populates a State from given (per instance.Instance.PopulatedState),
// then evaluates inst's objective and every active and removed constraint
// against it, producing a Solution.
func Evaluate(inst instance.Instance, given evaluate.State, tol atol.ATol, opts ...Option) (Solution, error) {
	state, err := inst.PopulatedState(given)
	if err != nil {
		return Solution{}, err
	}

	objectiveValue, err := evaluate.FunctionValue(inst.Objective(), state)
	if err != nil {
		return Solution{}, err
	}

	dvs := make(map[ids.VariableID]evaluate.EvaluatedDecisionVariable, len(inst.DecisionVariables()))
	for _, dv := range inst.DecisionVariables() {
		ev, err := evaluate.DecisionVariableValue(dv, state, tol)
		if err != nil {
			return Solution{}, err
		}
		dvs[dv.ID()] = ev
	}

	ecs := make(map[ids.ConstraintID]evaluate.EvaluatedConstraint, len(inst.Constraints())+len(inst.RemovedConstraints()))
	feasibleRelaxed := true
	for _, c := range inst.Constraints() {
		ev, err := evaluate.ConstraintValue(c, state, tol)
		if err != nil {
			return Solution{}, err
		}
		ecs[c.ID()] = ev
		if !ev.Feasible {
			feasibleRelaxed = false
		}
	}

	feasible := feasibleRelaxed
	for _, rc := range inst.RemovedConstraints() {
		ev, err := evaluate.ConstraintValue(rc.Constraint, state, tol)
		if err != nil {
			return Solution{}, err
		}
		ecs[rc.ID()] = ev
		if !ev.Feasible {
			feasible = false
		}
	}

	sol := Solution{
		objectiveValue:       objectiveValue,
		state:                state,
		decisionVariables:    dvs,
		evaluatedConstraints: ecs,
		sense:                inst.Sense(),
		feasible:             feasible,
		feasibleRelaxed:      feasibleRelaxed,
	}
	for _, opt := range opts {
		opt(&sol)
	}
	return sol, nil
}

// ObjectiveValue returns the evaluated objective value.
func (s Solution) ObjectiveValue() float64 { return s.objectiveValue }

// State returns the fully-resolved raw ID->value map.
func (s Solution) State() evaluate.State { return s.state }

// DecisionVariable returns the evaluated decision variable for id.
func (s Solution) DecisionVariable(id ids.VariableID) (evaluate.EvaluatedDecisionVariable, bool) {
	dv, ok := s.decisionVariables[id]
	return dv, ok
}

// DecisionVariables returns every evaluated decision variable, keyed by ID.
func (s Solution) DecisionVariables() map[ids.VariableID]evaluate.EvaluatedDecisionVariable {
	return s.decisionVariables
}

// EvaluatedConstraint returns the evaluated constraint for id (active or
// removed).
func (s Solution) EvaluatedConstraint(id ids.ConstraintID) (evaluate.EvaluatedConstraint, bool) {
	c, ok := s.evaluatedConstraints[id]
	return c, ok
}

// EvaluatedConstraints returns every evaluated constraint (active and
// removed), keyed by ID.
func (s Solution) EvaluatedConstraints() map[ids.ConstraintID]evaluate.EvaluatedConstraint {
	return s.evaluatedConstraints
}

// Sense returns the originating instance's optimization direction.
func (s Solution) Sense() instance.Sense { return s.sense }

// Optimality returns the solver-reported optimality status, if any was
// attached via WithOptimality.
func (s Solution) Optimality() instance.Optimality { return s.optimality }

// Relaxation returns the solver-reported relaxation status, if any was
// attached via WithRelaxation.
func (s Solution) Relaxation() instance.Relaxation { return s.relaxation }

// Feasible reports whether every constraint, active and removed, is
// satisfied within tolerance.
func (s Solution) Feasible() bool { return s.feasible }

// FeasibleRelaxed reports whether every active constraint is satisfied
// within tolerance, ignoring removed constraints.
func (s Solution) FeasibleRelaxed() bool { return s.feasibleRelaxed }
