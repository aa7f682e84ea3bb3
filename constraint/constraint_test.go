package constraint_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/logicalmemory"
	"github.com/stretchr/testify/require"
)

func TestEqualToZeroFeasibilityIsStrict(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	f, _ := function.FromConstant(0)
	c := constraint.EqualToZeroConstraint(ids.ConstraintID(1), f)

	require.True(t, c.Feasible(0, tol))
	require.False(t, c.Feasible(1e-6, tol), "exactly at atol must not be feasible for EqualToZero")
	require.True(t, c.Feasible(1e-7, tol))
}

func TestLessThanOrEqualToZeroFeasibilityIsStrict(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	f, _ := function.FromConstant(0)
	c := constraint.LessThanOrEqualToZeroConstraint(ids.ConstraintID(1), f)

	require.False(t, c.Feasible(1e-6, tol), "exactly at atol must not be feasible for LessThanOrEqualToZero")
	require.True(t, c.Feasible(-1, tol))
	require.False(t, c.Feasible(1e-5, tol))
}

func TestRemoveCarriesReasonAndParameters(t *testing.T) {
	t.Parallel()

	f, _ := function.FromConstant(0)
	c := constraint.EqualToZeroConstraint(ids.ConstraintID(1), f)
	removed := constraint.Remove(c, "redundant", map[string]string{"pass": "presolve"})

	require.Equal(t, "redundant", removed.Reason())
	require.Equal(t, "presolve", removed.Parameters()["pass"])
	require.Equal(t, ids.ConstraintID(1), removed.ID())
}

func TestLogicalMemoryReportsFunctionAndRemovalMetadata(t *testing.T) {
	t.Parallel()

	f, _ := function.FromConstant(5)
	c := constraint.EqualToZeroConstraint(ids.ConstraintID(1), f, constraint.WithName("c1"))
	removed := constraint.Remove(c, "redundant", map[string]string{"pass": "presolve"})

	folded := logicalmemory.ToFolded("RemovedConstraint", removed)
	require.Contains(t, folded, "RemovedConstraint;constraint;function;Constant")
	require.Contains(t, folded, "RemovedConstraint;constraint;name")
	require.Contains(t, folded, "RemovedConstraint;removed_reason")
	require.Contains(t, folded, "RemovedConstraint;removed_reason_parameters")
}

func TestNewOneHotRejectsDuplicateVariable(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	_, err := constraint.NewOneHot(ids.ConstraintID(1), []ids.VariableID{v1, v1})
	require.ErrorIs(t, err, constraint.ErrNonUniqueVariableID)
}

func TestNewSOS1AcceptsUniqueVariables(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	hint, err := constraint.NewSOS1(ids.ConstraintID(1), true, []ids.VariableID{v1, v2}, 1e6, true)
	require.NoError(t, err)
	require.Len(t, hint.Variables, 2)
	require.True(t, hint.BigMIsDefined)
}
