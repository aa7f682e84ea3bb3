package assign_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
	"github.com/stretchr/testify/require"
)

func linearFn(id ids.VariableID, coeff float64) function.Function {
	return function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(id), coefficient.MustFrom(coeff)))
}

func TestNewRejectsDuplicateAssignment(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	_, err := assign.New([]assign.Entry{
		{ID: v1, Function: linearFn(v2, 1)},
		{ID: v1, Function: linearFn(v2, 2)},
	})
	require.ErrorIs(t, err, assign.ErrDuplicateAssignment)
}

func TestNewRejectsSelfLoop(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	_, err := assign.New([]assign.Entry{
		{ID: v1, Function: linearFn(v1, 1)},
	})
	require.ErrorIs(t, err, assign.ErrRecursiveAssignment)
}

func TestNewRejectsCycle(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	_, err := assign.New([]assign.Entry{
		{ID: v1, Function: linearFn(v2, 1)},
		{ID: v2, Function: linearFn(v1, 1)},
	})
	require.ErrorIs(t, err, assign.ErrCyclicAssignment)
}

func TestSortedIterOrdersDependenciesFirst(t *testing.T) {
	t.Parallel()

	v1, v2, v3 := ids.VariableID(1), ids.VariableID(2), ids.VariableID(3)
	// v1 := v2 + 1 (v1 requires v2); v2 := v3 + 1 (v2 requires v3); v3 is a leaf.
	a, err := assign.New([]assign.Entry{
		{ID: v1, Function: linearFn(v2, 1)},
		{ID: v2, Function: linearFn(v3, 1)},
	})
	require.NoError(t, err)

	order := a.SortedIter()
	require.Len(t, order, 2)
	require.Equal(t, v2, order[0].ID, "v2 (required by v1) must precede v1")
	require.Equal(t, v1, order[1].ID)
}

func TestGetReturnsAssignedFunction(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	a, err := assign.New([]assign.Entry{{ID: v1, Function: linearFn(v2, 3)}})
	require.NoError(t, err)

	f, ok := a.Get(v1)
	require.True(t, ok)
	value, ok := f.Evaluate(map[ids.VariableID]float64{v2: 2})
	require.True(t, ok)
	require.Equal(t, 6.0, value)

	_, ok = a.Get(v2)
	require.False(t, ok)
}
