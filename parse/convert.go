package parse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/instance"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
	"github.com/Jij-Inc/ommx-sub001/v1"
)

func convertKind(k v1.Kind) (bound.Kind, error) {
	switch k {
	case v1.KindContinuous:
		return bound.Continuous, nil
	case v1.KindInteger:
		return bound.Integer, nil
	case v1.KindBinary:
		return bound.Binary, nil
	case v1.KindSemiContinuous:
		return bound.SemiContinuous, nil
	case v1.KindSemiInteger:
		return bound.SemiInteger, nil
	default:
		return 0, ErrUnspecifiedEnum
	}
}

func convertEquality(e v1.Equality) (constraint.Equality, error) {
	switch e {
	case v1.EqualityEqualToZero:
		return constraint.EqualToZero, nil
	case v1.EqualityLessThanOrEqualToZero:
		return constraint.LessThanOrEqualToZero, nil
	default:
		return 0, ErrUnspecifiedEnum
	}
}

func convertSense(s v1.Sense) (instance.Sense, error) {
	switch s {
	case v1.SenseMinimize:
		return instance.Minimize, nil
	case v1.SenseMaximize:
		return instance.Maximize, nil
	default:
		return 0, ErrUnspecifiedEnum
	}
}

func convertOptimality(o v1.Optimality) instance.Optimality {
	switch o {
	case v1.OptimalityOptimal:
		return instance.OptimalityOptimal
	case v1.OptimalityInfeasible:
		return instance.OptimalityInfeasible
	case v1.OptimalityUnbounded:
		return instance.OptimalityUnbounded
	default:
		return instance.OptimalityUnspecified
	}
}

func convertRelaxation(r v1.Relaxation) instance.Relaxation {
	if r == v1.RelaxationLPRelaxed {
		return instance.RelaxationLPRelaxed
	}
	return instance.RelaxationUnspecified
}

func joinSubscripts(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(x, 10)
	}
	return strings.Join(parts, ",")
}

// ParseFunction converts a wire Function into the core algebraic Function,
// narrowing to the tightest representation the way function.FromLinear /
// FromQuadratic / FromPolynomial already do. An all-unset oneof is
// ErrUnsupportedV1Function.
func ParseFunction(f *v1.Function) (function.Function, error) {
	switch {
	case f == nil:
		return function.Function{}, ErrMissingField
	case f.Constant != nil:
		fn, err := function.FromConstant(*f.Constant)
		if err != nil {
			return function.Function{}, err
		}
		return fn, nil
	case f.Linear != nil:
		return parseLinear(f.Linear)
	case f.Quadratic != nil:
		return parseQuadratic(f.Quadratic)
	case f.Polynomial != nil:
		return parsePolynomial(f.Polynomial)
	default:
		return function.Function{}, ErrUnsupportedV1Function
	}
}

func parseLinear(l *v1.Linear) (function.Function, error) {
	p := polynomial.New[monomial.LinearMonomial]()
	for _, t := range l.Terms {
		c, err := coefficient.TryFrom(t.Coefficient)
		if err != nil {
			return function.Function{}, err
		}
		p = p.AddTerm(monomial.Variable(ids.VariableID(t.ID)), c)
	}
	if l.Constant != 0 {
		off, err := coefficient.OffsetTryFrom(l.Constant)
		if err != nil {
			return function.Function{}, err
		}
		p = p.AddOffset(off)
	}
	return function.FromLinear(p), nil
}

func parseQuadratic(q *v1.Quadratic) (function.Function, error) {
	p := polynomial.New[monomial.QuadraticMonomial]()
	for _, t := range q.Terms {
		c, err := coefficient.TryFrom(t.Coefficient)
		if err != nil {
			return function.Function{}, err
		}
		p = p.AddTerm(monomial.Pair(ids.VariableID(t.RowID), ids.VariableID(t.ColumnID)), c)
	}
	if q.Linear != nil {
		for _, t := range q.Linear.Terms {
			c, err := coefficient.TryFrom(t.Coefficient)
			if err != nil {
				return function.Function{}, err
			}
			p = p.AddTerm(monomial.LinearQuadratic(ids.VariableID(t.ID)), c)
		}
		if q.Linear.Constant != 0 {
			off, err := coefficient.OffsetTryFrom(q.Linear.Constant)
			if err != nil {
				return function.Function{}, err
			}
			p = p.AddOffset(off)
		}
	}
	return function.FromQuadratic(p), nil
}

func parsePolynomial(poly *v1.Polynomial) (function.Function, error) {
	p := polynomial.New[monomial.MonomialDyn]()
	for _, m := range poly.Terms {
		c, err := coefficient.TryFrom(m.Coefficient)
		if err != nil {
			return function.Function{}, err
		}
		varIDs := make([]ids.VariableID, len(m.IDs))
		for i, id := range m.IDs {
			varIDs[i] = ids.VariableID(id)
		}
		p = p.AddTerm(monomial.Dyn(varIDs...), c)
	}
	return function.FromPolynomial(p), nil
}

func decisionVariableOptions(name, description string, subscripts []int64, parameters map[string]string) []decision.Option {
	var opts []decision.Option
	if name != "" {
		opts = append(opts, decision.WithName(name))
	}
	if description != "" {
		opts = append(opts, decision.WithDescription(description))
	}
	if len(subscripts) > 0 {
		opts = append(opts, decision.WithMetadataEntry("subscripts", joinSubscripts(subscripts)))
	}
	for _, k := range sortedKeys(parameters) {
		opts = append(opts, decision.WithMetadataEntry(k, parameters[k]))
	}
	return opts
}

func constraintOptions(name, description string, subscripts []int64, parameters map[string]string) []constraint.Option {
	var opts []constraint.Option
	if name != "" {
		opts = append(opts, constraint.WithName(name))
	}
	if description != "" {
		opts = append(opts, constraint.WithDescription(description))
	}
	if len(subscripts) > 0 {
		opts = append(opts, constraint.WithMetadataEntry("subscripts", joinSubscripts(subscripts)))
	}
	for _, k := range sortedKeys(parameters) {
		opts = append(opts, constraint.WithMetadataEntry(k, parameters[k]))
	}
	return opts
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParseDecisionVariable converts a wire DecisionVariable into the core type,
// validating its bound against its kind and its substituted value against
// that bound.
func ParseDecisionVariable(dv *v1.DecisionVariable, tol atol.ATol) (decision.DecisionVariable, error) {
	if dv.Bound == nil {
		return decision.DecisionVariable{}, traceback(ErrMissingField, "ommx.v1.DecisionVariable", "bound")
	}
	kind, err := convertKind(dv.Kind)
	if err != nil {
		return decision.DecisionVariable{}, traceback(err, "ommx.v1.DecisionVariable", "kind")
	}
	b, err := bound.New(dv.Bound.Lower, dv.Bound.Upper)
	if err != nil {
		return decision.DecisionVariable{}, traceback(err, "ommx.v1.DecisionVariable", "bound")
	}
	opts := decisionVariableOptions(dv.Name, dv.Description, dv.Subscripts, dv.Parameters)
	built, err := decision.New(ids.VariableID(dv.ID), kind, b, dv.SubstitutedValue, tol, opts...)
	if err != nil {
		return decision.DecisionVariable{}, traceback(err, "ommx.v1.DecisionVariable", "substituted_value")
	}
	return built, nil
}

// ParseConstraint converts a wire Constraint into the core type.
func ParseConstraint(c *v1.Constraint) (constraint.Constraint, error) {
	if c.Function == nil {
		return constraint.Constraint{}, traceback(ErrMissingField, "ommx.v1.Constraint", "function")
	}
	fn, err := ParseFunction(c.Function)
	if err != nil {
		return constraint.Constraint{}, traceback(err, "ommx.v1.Constraint", "function")
	}
	eq, err := convertEquality(c.Equality)
	if err != nil {
		return constraint.Constraint{}, traceback(err, "ommx.v1.Constraint", "equality")
	}
	opts := constraintOptions(c.Name, c.Description, c.Subscripts, c.Parameters)
	return constraint.New(ids.ConstraintID(c.ID), fn, eq, opts...), nil
}

// ParseRemovedConstraint converts a wire RemovedConstraint into the core type.
func ParseRemovedConstraint(rc *v1.RemovedConstraint) (constraint.RemovedConstraint, error) {
	if rc.Constraint == nil {
		return constraint.RemovedConstraint{}, traceback(ErrMissingField, "ommx.v1.RemovedConstraint", "constraint")
	}
	c, err := ParseConstraint(rc.Constraint)
	if err != nil {
		return constraint.RemovedConstraint{}, traceback(err, "ommx.v1.RemovedConstraint", "constraint")
	}
	return constraint.Remove(c, rc.RemovedReason, rc.RemovedReasonParameters), nil
}

// ParseInstance decodes and validates raw into an instance.Instance.
func ParseInstance(raw []byte) (instance.Instance, error) {
	wire, err := InstanceFromBytes(raw)
	if err != nil {
		return instance.Instance{}, err
	}
	return ConvertInstance(wire)
}

// ConvertInstance validates an already-decoded wire Instance into the core
// type, using the process-wide default ATol for every decision variable's
// consistency check.
func ConvertInstance(wire *v1.Instance) (instance.Instance, error) {
	tol := atol.Default()

	sense, err := convertSense(wire.Sense)
	if err != nil {
		return instance.Instance{}, traceback(err, "ommx.v1.Instance", "sense")
	}

	seenVar := make(map[ids.VariableID]bool, len(wire.DecisionVariables))
	dvs := make([]decision.DecisionVariable, 0, len(wire.DecisionVariables))
	for i, raw := range wire.DecisionVariables {
		field := fmt.Sprintf("decision_variables[%d]", i)
		dv, err := ParseDecisionVariable(raw, tol)
		if err != nil {
			return instance.Instance{}, traceback(err, "ommx.v1.Instance", field)
		}
		if seenVar[dv.ID()] {
			return instance.Instance{}, traceback(&VariableIDError{ID: uint64(dv.ID()), Err: ErrDuplicatedVariableID}, "ommx.v1.Instance", field)
		}
		seenVar[dv.ID()] = true
		dvs = append(dvs, dv)
	}

	if wire.Objective == nil {
		return instance.Instance{}, traceback(ErrMissingField, "ommx.v1.Instance", "objective")
	}
	objective, err := ParseFunction(wire.Objective)
	if err != nil {
		return instance.Instance{}, traceback(err, "ommx.v1.Instance", "objective")
	}

	seenConstraint := make(map[ids.ConstraintID]bool, len(wire.Constraints)+len(wire.RemovedConstraints))
	constraints := make([]constraint.Constraint, 0, len(wire.Constraints))
	for i, raw := range wire.Constraints {
		field := fmt.Sprintf("constraints[%d]", i)
		c, err := ParseConstraint(raw)
		if err != nil {
			return instance.Instance{}, traceback(err, "ommx.v1.Instance", field)
		}
		if seenConstraint[c.ID()] {
			return instance.Instance{}, traceback(&ConstraintIDError{ID: uint64(c.ID()), Err: ErrDuplicatedConstraintID}, "ommx.v1.Instance", field)
		}
		seenConstraint[c.ID()] = true
		constraints = append(constraints, c)
	}

	removed := make([]constraint.RemovedConstraint, 0, len(wire.RemovedConstraints))
	for i, raw := range wire.RemovedConstraints {
		field := fmt.Sprintf("removed_constraints[%d]", i)
		rc, err := ParseRemovedConstraint(raw)
		if err != nil {
			return instance.Instance{}, traceback(err, "ommx.v1.Instance", field)
		}
		if seenConstraint[rc.ID()] {
			return instance.Instance{}, traceback(&ConstraintIDError{ID: uint64(rc.ID()), Err: ErrDuplicatedConstraintID}, "ommx.v1.Instance", field)
		}
		seenConstraint[rc.ID()] = true
		removed = append(removed, rc)
	}

	dependency, err := assign.New(nil)
	if err != nil {
		return instance.Instance{}, traceback(err, "ommx.v1.Instance", "decision_variable_dependency")
	}

	opts := []instance.Option{}
	if wire.Description != "" {
		opts = append(opts, instance.WithDescription(wire.Description))
	}

	built, err := instance.New(objective, sense, dvs, constraints, dependency, constraint.Hints{}, opts...)
	if err != nil {
		return instance.Instance{}, traceback(err, "ommx.v1.Instance", "*")
	}
	for _, rc := range removed {
		built, err = reattachRemoved(built, rc)
		if err != nil {
			return instance.Instance{}, traceback(err, "ommx.v1.Instance", "removed_constraints")
		}
	}
	return built, nil
}

// reattachRemoved re-derives the instance with rc restored to its removed
// set: since instance.New never accepts removed constraints directly, a
// parsed removed constraint is added by relaxing a same-shaped active
// constraint added purely to carry it, then handing validation to Relax.
//
// Because instance.New validates every active constraint's references
// against decision_variables, and a RemovedConstraint's references must
// hold the same guarantee, rc's underlying Constraint is folded in as an
// active constraint first and then immediately relaxed with its recorded
// reason and parameters.
func reattachRemoved(base instance.Instance, rc constraint.RemovedConstraint) (instance.Instance, error) {
	constraints := append(base.Constraints(), rc.Constraint)
	dependency := base.Dependency()
	withActive, err := instance.New(base.Objective(), base.Sense(), base.DecisionVariables(), constraints, dependency, base.Hints(), instance.WithDescription(base.Description()))
	if err != nil {
		return instance.Instance{}, err
	}
	return withActive.Relax(rc.ID(), rc.Reason(), rc.Parameters())
}

// ParseParametricInstance decodes and validates raw into an
// instance.ParametricInstance.
func ParseParametricInstance(raw []byte) (instance.ParametricInstance, error) {
	wire, err := ParametricInstanceFromBytes(raw)
	if err != nil {
		return instance.ParametricInstance{}, err
	}
	if wire.Instance == nil {
		return instance.ParametricInstance{}, traceback(ErrMissingField, "ommx.v1.ParametricInstance", "instance")
	}
	base, err := ConvertInstance(wire.Instance)
	if err != nil {
		return instance.ParametricInstance{}, traceback(err, "ommx.v1.ParametricInstance", "instance")
	}

	parameters := make([]instance.Parameter, 0, len(wire.Parameters))
	placeholders := make(map[ids.ParameterID]ids.VariableID, len(wire.Parameters))
	for i, p := range wire.Parameters {
		field := fmt.Sprintf("parameters[%d]", i)
		if p.Bound == nil {
			return instance.ParametricInstance{}, traceback(ErrMissingField, "ommx.v1.ParametricInstance", field)
		}
		b, err := bound.New(p.Bound.Lower, p.Bound.Upper)
		if err != nil {
			return instance.ParametricInstance{}, traceback(err, "ommx.v1.ParametricInstance", field)
		}
		var opts []instance.ParameterOption
		if p.Description != "" {
			opts = append(opts, instance.WithParameterDescription(p.Description))
		}
		param := instance.NewParameter(ids.ParameterID(p.ID), p.Name, b, opts...)
		parameters = append(parameters, param)
		placeholders[ids.ParameterID(p.ID)] = ids.VariableID(p.ID)
	}

	pi, err := instance.NewParametricInstance(base, parameters, placeholders)
	if err != nil {
		return instance.ParametricInstance{}, traceback(err, "ommx.v1.ParametricInstance", "parameters")
	}
	return pi, nil
}

// ParseState decodes a wire State into an evaluate.State.
func ParseState(raw []byte) (evaluate.State, error) {
	wire, err := StateFromBytes(raw)
	if err != nil {
		return nil, err
	}
	out := make(evaluate.State, len(wire.Entries))
	for id, v := range wire.Entries {
		out[ids.VariableID(id)] = v
	}
	return out, nil
}

// ParseSamples decodes a wire Samples into an evaluate.Samples, rejecting a
// sample ID that appears in more than one entry.
func ParseSamples(raw []byte) (evaluate.Samples, error) {
	wire, err := SamplesFromBytes(raw)
	if err != nil {
		return evaluate.Samples{}, err
	}
	entries := make(map[ids.SampleID]evaluate.State)
	for i, e := range wire.Entries {
		field := fmt.Sprintf("entries[%d]", i)
		if e.State == nil {
			return evaluate.Samples{}, traceback(ErrMissingField, "ommx.v1.Samples", field)
		}
		state := make(evaluate.State, len(e.State.Entries))
		for id, v := range e.State.Entries {
			state[ids.VariableID(id)] = v
		}
		for _, rawID := range e.IDs {
			sampleID := ids.SampleID(rawID)
			if _, dup := entries[sampleID]; dup {
				return evaluate.Samples{}, traceback(&SampleIDError{ID: rawID, Err: ErrDuplicatedSampleID}, "ommx.v1.Samples", field)
			}
			entries[sampleID] = state
		}
	}
	return evaluate.NewSamples(entries), nil
}

// ParseSolution decodes a wire Solution into an evaluate.State plus the
// solver-reported status, for the caller to combine with an Instance via
// solution.Evaluate.
func ParseSolution(raw []byte) (evaluate.State, instance.Optimality, instance.Relaxation, error) {
	wire, err := SolutionFromBytes(raw)
	if err != nil {
		return nil, 0, 0, err
	}
	if wire.State == nil {
		return nil, 0, 0, traceback(ErrMissingField, "ommx.v1.Solution", "state")
	}
	state := make(evaluate.State, len(wire.State.Entries))
	for id, v := range wire.State.Entries {
		state[ids.VariableID(id)] = v
	}
	return state, convertOptimality(wire.Optimality), convertRelaxation(wire.Relaxation), nil
}
