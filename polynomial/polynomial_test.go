package polynomial_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var p polynomial.Linear
	require.Equal(t, 0, p.NumTerms())
	require.Equal(t, 0, p.Degree())
	require.Equal(t, "0", p.String())
}

func TestAddTermAndCancellation(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	p := polynomial.New[monomial.LinearMonomial]()
	p = p.AddTerm(monomial.Variable(v1), coefficient.MustFrom(2))
	require.Equal(t, 1, p.NumTerms())

	p = p.AddTerm(monomial.Variable(v1), coefficient.MustFrom(-2))
	require.Equal(t, 0, p.NumTerms(), "exact cancellation must drop the term")
}

func TestAddIsCommutativeAndImmutable(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	a := polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(1))
	b := polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v2), coefficient.MustFrom(3))

	sum := a.Add(b)
	require.Equal(t, 2, sum.NumTerms())
	// originals unaffected
	require.Equal(t, 1, a.NumTerms())
	require.Equal(t, 1, b.NumTerms())

	c1, ok := sum.Get(monomial.Variable(v1))
	require.True(t, ok)
	require.Equal(t, 1.0, c1.Float64())
}

func TestSubProducesZeroPolynomial(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	a := polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(5))
	diff := a.Sub(a)
	require.Equal(t, 0, diff.NumTerms())
	require.True(t, diff.AbsDiffEq(polynomial.New[monomial.LinearMonomial](), 1e-9))
}

func TestAddOffsetUsesConstantMonomial(t *testing.T) {
	t.Parallel()

	p := polynomial.New[monomial.LinearMonomial]().AddOffset(mustOffset(3))
	var constant monomial.LinearMonomial
	c, ok := p.Get(constant)
	require.True(t, ok)
	require.Equal(t, 3.0, c.Float64())
}

func mustOffset(x float64) coefficient.Offset {
	o, err := coefficient.OffsetTryFrom(x)
	if err != nil {
		panic(err)
	}
	return o
}

func TestDegreeReflectsHighestMonomial(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	p := polynomial.New[monomial.QuadraticMonomial]().
		AddTerm(monomial.LinearQuadratic(v1), coefficient.MustFrom(1)).
		AddTerm(monomial.Pair(v1, v2), coefficient.MustFrom(1))
	require.Equal(t, 2, p.Degree())
}

func TestScaleCoefficientMultipliesEachTerm(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	p := polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(2))
	scaled := p.ScaleCoefficient(coefficient.MustFrom(3))
	c, ok := scaled.Get(monomial.Variable(v1))
	require.True(t, ok)
	require.Equal(t, 6.0, c.Float64())
}

func TestEvaluateRequiresFullyBoundState(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	p := polynomial.New[monomial.LinearMonomial]().
		AddTerm(monomial.Variable(v1), coefficient.MustFrom(2)).
		AddTerm(monomial.Variable(v2), coefficient.MustFrom(3)).
		AddOffset(mustOffset(1))

	_, ok := p.Evaluate(map[ids.VariableID]float64{v1: 1})
	require.False(t, ok)

	total, ok := p.Evaluate(map[ids.VariableID]float64{v1: 1, v2: 2})
	require.True(t, ok)
	require.Equal(t, 2*1.0+3*2.0+1.0, total)
}

func TestPartialEvaluateFoldsBoundFactors(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	p := polynomial.New[monomial.QuadraticMonomial]().AddTerm(monomial.Pair(v1, v2), coefficient.MustFrom(2))

	residual := p.PartialEvaluate(map[ids.VariableID]float64{v1: 5})
	c, ok := residual.Get(monomial.LinearQuadratic(v2))
	require.True(t, ok)
	require.Equal(t, 10.0, c.Float64())
}

func TestMulLinearLinearPromotesToQuadratic(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	a := polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(2))
	b := polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v2), coefficient.MustFrom(3))

	q := polynomial.MulLinearLinear(a, b)
	c, ok := q.Get(monomial.Pair(v1, v2))
	require.True(t, ok)
	require.Equal(t, 6.0, c.Float64())
}

func TestMulQuadraticQuadraticPromotesToPolynomial(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	a := polynomial.New[monomial.QuadraticMonomial]().AddTerm(monomial.LinearQuadratic(v1), coefficient.MustFrom(1))
	b := polynomial.New[monomial.QuadraticMonomial]().AddTerm(monomial.Pair(v1, v2), coefficient.MustFrom(1))

	p := polynomial.MulQuadraticQuadratic(a, b)
	require.Equal(t, 3, p.Degree())
}

func TestReduceBinaryPowersPolynomial(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	p := polynomial.New[monomial.MonomialDyn]().AddTerm(monomial.Dyn(v1, v1, v2), coefficient.MustFrom(4))

	reduced, changed := polynomial.ReduceBinaryPowersPolynomial(p, map[ids.VariableID]struct{}{v1: {}})
	require.True(t, changed)
	c, ok := reduced.Get(monomial.Dyn(v1, v2))
	require.True(t, ok)
	require.Equal(t, 4.0, c.Float64())
}

func TestReduceBinaryPowersLinearIsNoOp(t *testing.T) {
	t.Parallel()

	v1 := ids.VariableID(1)
	p := polynomial.New[monomial.LinearMonomial]().AddTerm(monomial.Variable(v1), coefficient.MustFrom(1))
	reduced, changed := polynomial.ReduceBinaryPowersLinear(p, map[ids.VariableID]struct{}{v1: {}})
	require.False(t, changed)
	require.Equal(t, p, reduced)
}

func TestStringCanonicalForm(t *testing.T) {
	t.Parallel()

	v1, v2 := ids.VariableID(1), ids.VariableID(2)
	p := polynomial.New[monomial.QuadraticMonomial]().
		AddTerm(monomial.Pair(v1, v2), coefficient.MustFrom(1)).
		AddTerm(monomial.LinearQuadratic(v1), coefficient.MustFrom(-1)).
		AddOffset(mustOffset(5))

	require.Equal(t, "v1*v2 - v1 + 5", p.String())
}
