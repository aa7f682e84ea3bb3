package substitute_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/assign"
	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
	"github.com/Jij-Inc/ommx-sub001/substitute"
	"github.com/stretchr/testify/require"
)

func linearFn(id ids.VariableID, coeff float64) function.Function {
	return function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(id), coefficient.MustFrom(coeff)))
}

func TestOneInConstraintReplacesVariable(t *testing.T) {
	t.Parallel()

	x, z := ids.VariableID(1), ids.VariableID(2)
	c := constraint.EqualToZeroConstraint(ids.ConstraintID(1), linearFn(x, 2))

	replaced := substitute.OneInConstraint(c, x, linearFn(z, 1))
	require.NotContains(t, replaced.Function().RequiredIDs(), x)
	require.Contains(t, replaced.Function().RequiredIDs(), z)
}

func TestAcyclicInFunctionComposesChain(t *testing.T) {
	t.Parallel()

	x, y, z := ids.VariableID(1), ids.VariableID(2), ids.VariableID(3)
	// x := y, y := z
	acyclic, err := assign.New([]assign.Entry{
		{ID: x, Function: linearFn(y, 1)},
		{ID: y, Function: linearFn(z, 1)},
	})
	require.NoError(t, err)

	f := linearFn(x, 3) // f = 3x
	result := substitute.AcyclicInFunction(f, acyclic)

	require.NotContains(t, result.RequiredIDs(), x)
	require.NotContains(t, result.RequiredIDs(), y)
	require.Contains(t, result.RequiredIDs(), z)

	value, ok := result.Evaluate(map[ids.VariableID]float64{z: 4})
	require.True(t, ok)
	require.Equal(t, 12.0, value)
}
