package function_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsZeroVariant(t *testing.T) {
	t.Parallel()

	var f function.Function
	require.Equal(t, function.Zero, f.Kind())
	require.Equal(t, "0", f.String())
}

func TestFromConstantZeroCollapses(t *testing.T) {
	t.Parallel()

	f, err := function.FromConstant(0)
	require.NoError(t, err)
	require.Equal(t, function.Zero, f.Kind())
}

func TestFromConstantRejectsNaN(t *testing.T) {
	t.Parallel()

	_, err := function.FromConstant(nan())
	require.Error(t, err)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestAddPromotesToWiderVariant(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	constant, err := function.FromConstant(2)
	require.NoError(t, err)

	lin := function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(3)))
	require.Equal(t, function.LinearKind, lin.Kind())

	sum := function.Add(constant, lin)
	require.Equal(t, function.LinearKind, sum.Kind())

	value, ok := sum.Evaluate(map[ids.VariableID]float64{v1: 1})
	require.True(t, ok)
	require.Equal(t, 5.0, value)
}

func TestAddConstantsCollapsingToZero(t *testing.T) {
	t.Parallel()

	a, _ := function.FromConstant(3)
	b, _ := function.FromConstant(-3)
	sum := function.Add(a, b)
	require.Equal(t, function.Zero, sum.Kind())
}

func TestMulZeroAnnihilates(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	lin := function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(1)))
	var zero function.Function
	require.Equal(t, function.Zero, function.Mul(lin, zero).Kind())
}

func TestMulLinearLinearPromotesToQuadratic(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	a := function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(2)))
	b := function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v2), coefficient.MustFrom(3)))

	product := function.Mul(a, b)
	require.Equal(t, function.QuadraticKind, product.Kind())
	require.Equal(t, 2, product.Degree())
}

func TestMulQuadraticLinearPromotesToPolynomial(t *testing.T) {
	t.Parallel()

	v1, v2, v3 := ids.VariableID(1), ids.VariableID(2), ids.VariableID(3)
	quad := function.FromQuadratic(polynomial.New[monomial.QuadraticMonomial]().AddTerm(monomial.Pair(v1, v2), coefficient.MustFrom(1)))
	lin := function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v3), coefficient.MustFrom(1)))

	product := function.Mul(quad, lin)
	require.Equal(t, function.PolynomialKind, product.Kind())
	require.Equal(t, 3, product.Degree())
}

func TestPartialEvaluateNarrowsDegree(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	quad := function.FromQuadratic(polynomial.New[monomial.QuadraticMonomial]().AddTerm(monomial.Pair(v1, v2), coefficient.MustFrom(2)))

	residual := quad.PartialEvaluate(map[ids.VariableID]float64{v1: 5})
	require.Equal(t, function.LinearKind, residual.Kind())

	value, ok := residual.Evaluate(map[ids.VariableID]float64{v2: 3})
	require.True(t, ok)
	require.Equal(t, 30.0, value)
}

func TestAbsDiffEqWithinTolerance(t *testing.T) {
	t.Parallel()

	a, _ := function.FromConstant(1.0)
	b, _ := function.FromConstant(1.0 + 1e-9)
	require.True(t, function.AbsDiffEq(a, b, 1e-6))
	require.False(t, function.AbsDiffEq(a, b, 1e-12))
}

func TestRequiredIDsDeduplicatesAndSorts(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(5), ids.VariableID(1)
	quad := function.FromQuadratic(polynomial.New[monomial.QuadraticMonomial]().
		AddTerm(monomial.Pair(v1, v2), coefficient.MustFrom(1)).
		AddTerm(monomial.LinearQuadratic(v2), coefficient.MustFrom(1)))

	got := quad.RequiredIDs()
	require.Equal(t, []ids.VariableID{v2, v1}, got)
}

func TestSubstituteExpandsReplacementIntoProductTerm(t *testing.T) {
	t.Parallel()

	x, y, z := ids.VariableID(1), ids.VariableID(2), ids.VariableID(3)
	// f = x*y
	xy := function.FromQuadratic(polynomial.New[monomial.QuadraticMonomial]().AddTerm(monomial.Pair(x, y), coefficient.MustFrom(1)))
	// replacement: x := z + 1
	replacement := function.FromLinear(polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(z), coefficient.MustFrom(1))).
		AddOffset(mustOffset(1))

	result := xy.Substitute(x, replacement)
	// expect (z+1)*y = z*y + y, evaluated at z=2, y=3 -> (2+1)*3 = 9
	value, ok := result.Evaluate(map[ids.VariableID]float64{z: 2, y: 3})
	require.True(t, ok)
	require.Equal(t, 9.0, value)
	require.NotContains(t, result.RequiredIDs(), x)
}

func mustOffset(x float64) coefficient.Offset {
	o, err := coefficient.OffsetTryFrom(x)
	if err != nil {
		panic(err)
	}
	return o
}
