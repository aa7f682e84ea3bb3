package solution_test

import (
	"errors"
	"testing"

	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/instance"
	"github.com/Jij-Inc/ommx-sub001/solution"
	"github.com/stretchr/testify/require"
)

// subscriptedInstance builds an instance with two decision variables both
// named "x", distinguished by a "subscripts" metadata entry, plus one
// constraint similarly named and subscripted.
func subscriptedInstance(t *testing.T) (instance.Instance, []decision.DecisionVariable, []constraint.Constraint) {
	t.Helper()
	tol := atol.MustNew(1e-6)

	x0 := ids.VariableID(0)
	x1 := ids.VariableID(1)
	dv0, err := decision.New(x0, bound.Continuous, bound.Default(), nil, tol, decision.WithName("x"), decision.WithMetadataEntry("subscripts", "0"))
	require.NoError(t, err)
	dv1, err := decision.New(x1, bound.Continuous, bound.Default(), nil, tol, decision.WithName("x"), decision.WithMetadataEntry("subscripts", "1"))
	require.NoError(t, err)

	c0 := constraint.LessThanOrEqualToZeroConstraint(ids.ConstraintID(0), linearFn(x0, 1), constraint.WithName("cap"), constraint.WithMetadataEntry("subscripts", "0"))
	c1 := constraint.LessThanOrEqualToZeroConstraint(ids.ConstraintID(1), linearFn(x1, 1), constraint.WithName("cap"), constraint.WithMetadataEntry("subscripts", "1"))

	dependency, err := assign.New(nil)
	require.NoError(t, err)

	inst, err := instance.New(linearFn(x0, 1), instance.Minimize, []decision.DecisionVariable{dv0, dv1}, []constraint.Constraint{c0, c1}, dependency, constraint.Hints{})
	require.NoError(t, err)

	return inst, []decision.DecisionVariable{dv0, dv1}, []constraint.Constraint{c0, c1}
}

func TestExtractDecisionVariablesKeysBySubscript(t *testing.T) {
	t.Parallel()

	inst, variables, _ := subscriptedInstance(t)
	tol := atol.MustNew(1e-6)
	sol, err := solution.Evaluate(inst, evaluate.State{0: -3, 1: -7}, tol)
	require.NoError(t, err)

	extracted, err := solution.ExtractDecisionVariables(sol, variables, "x")
	require.NoError(t, err)
	require.Len(t, extracted, 2)
	require.Equal(t, -3.0, extracted["0"].Value)
	require.Equal(t, -7.0, extracted["1"].Value)
}

func TestExtractConstraintsKeysBySubscript(t *testing.T) {
	t.Parallel()

	inst, _, constraints := subscriptedInstance(t)
	tol := atol.MustNew(1e-6)
	sol, err := solution.Evaluate(inst, evaluate.State{0: -3, 1: -7}, tol)
	require.NoError(t, err)

	extracted, err := solution.ExtractConstraints(sol, constraints, "cap")
	require.NoError(t, err)
	require.Len(t, extracted, 2)
	require.Equal(t, -3.0, extracted["0"].Value)
	require.Equal(t, -7.0, extracted["1"].Value)
}

func TestExtractDecisionVariablesRejectsParameterizedEntries(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	x0 := ids.VariableID(0)
	dv, err := decision.New(x0, bound.Continuous, bound.Default(), nil, tol, decision.WithName("x"), decision.WithMetadataEntry("subscripts", "0"), decision.WithMetadataEntry("unit", "kg"))
	require.NoError(t, err)

	dependency, err := assign.New(nil)
	require.NoError(t, err)
	inst, err := instance.New(linearFn(x0, 1), instance.Minimize, []decision.DecisionVariable{dv}, nil, dependency, constraint.Hints{})
	require.NoError(t, err)

	sol, err := solution.Evaluate(inst, evaluate.State{0: 1}, tol)
	require.NoError(t, err)

	_, err = solution.ExtractDecisionVariables(sol, []decision.DecisionVariable{dv}, "x")
	require.Error(t, err)
	require.True(t, errors.Is(err, solution.ErrWithParameters))
}

func TestExtractDecisionVariablesRejectsDuplicateSubscripts(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	x0, x1 := ids.VariableID(0), ids.VariableID(1)
	dv0, err := decision.New(x0, bound.Continuous, bound.Default(), nil, tol, decision.WithName("x"), decision.WithMetadataEntry("subscripts", "0"))
	require.NoError(t, err)
	dv1, err := decision.New(x1, bound.Continuous, bound.Default(), nil, tol, decision.WithName("x"), decision.WithMetadataEntry("subscripts", "0"))
	require.NoError(t, err)

	dependency, err := assign.New(nil)
	require.NoError(t, err)
	inst, err := instance.New(linearFn(x0, 1), instance.Minimize, []decision.DecisionVariable{dv0, dv1}, nil, dependency, constraint.Hints{})
	require.NoError(t, err)

	sol, err := solution.Evaluate(inst, evaluate.State{0: 1, 1: 2}, tol)
	require.NoError(t, err)

	_, err = solution.ExtractDecisionVariables(sol, []decision.DecisionVariable{dv0, dv1}, "x")
	require.Error(t, err)
	require.True(t, errors.Is(err, solution.ErrDuplicateSubscript))
}
