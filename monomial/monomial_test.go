package monomial_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/stretchr/testify/require"
)

func TestLinearDefaultIsConstant(t *testing.T) {
	t.Parallel()

	var zero monomial.LinearMonomial
	require.True(t, zero.IsConstant())
	require.Equal(t, 0, zero.Degree())
}

func TestQuadraticDefaultIsConstant(t *testing.T) {
	t.Parallel()

	var zero monomial.QuadraticMonomial
	require.True(t, zero.IsConstant())
}

func TestDynDefaultIsConstant(t *testing.T) {
	t.Parallel()

	var zero monomial.MonomialDyn
	require.Equal(t, 0, zero.Degree())
	require.Nil(t, zero.RequiredIDs())
}

func TestPairCanonicalizesOrder(t *testing.T) {
	t.Parallel()

	a, b := ids.VariableID(5), ids.VariableID(1)
	m1 := monomial.Pair(a, b)
	m2 := monomial.Pair(b, a)
	require.Equal(t, m1, m2)
}

func TestDynValueWithMultiplicity(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	m := monomial.Dyn(v1, v1, v2) // v1^2 * v2
	val, ok := m.Value(map[ids.VariableID]float64{v1: 3, v2: 5})
	require.True(t, ok)
	require.Equal(t, 45.0, val) // 3*3*5
}

func TestDynSplitPartial(t *testing.T) {
	t.Parallel()

	v1, v2, v3 := ids.VariableID(1), ids.VariableID(2), ids.VariableID(3)
	m := monomial.Dyn(v1, v2, v3)
	factor, residual, changed := m.Split(map[ids.VariableID]float64{v2: 4})
	require.True(t, changed)
	require.Equal(t, 4.0, factor)
	require.Equal(t, monomial.Dyn(v1, v3), residual)
}

func TestMulLinearLinearToQuadratic(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	q := monomial.MulLinearLinear(monomial.Variable(v1), monomial.Variable(v2))
	a, b, ok := q.PairIDs()
	require.True(t, ok)
	require.Equal(t, v1, a)
	require.Equal(t, v2, b)
}

func TestMulQuadraticLinearToDyn(t *testing.T) {
	t.Parallel()

	v1, v2, v3 := ids.VariableID(1), ids.VariableID(2), ids.VariableID(3)
	q := monomial.Pair(v1, v2)
	d := monomial.MulQuadraticLinear(q, monomial.Variable(v3))
	require.Equal(t, 3, d.Degree())
	require.Equal(t, monomial.Dyn(v1, v2, v3), d)
}

func TestReduceBinaryPowersCollapses(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	m := monomial.Dyn(v1, v1, v1, v2)
	binary := map[ids.VariableID]struct{}{v1: {}}
	reduced, changed := m.ReduceBinaryPowers(binary)
	require.True(t, changed)
	require.Equal(t, monomial.Dyn(v1, v2), reduced)
}

func TestReduceBinaryPowersNoOpWhenNotBinary(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	m := monomial.Dyn(v1, v1)
	reduced, changed := m.ReduceBinaryPowers(map[ids.VariableID]struct{}{})
	require.False(t, changed)
	require.Equal(t, m, reduced)
}
