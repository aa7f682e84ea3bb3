package bound_test

import (
	"math"
	"testing"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInconsistent(t *testing.T) {
	t.Parallel()

	cases := [][2]float64{
		{5, 1},
		{math.Inf(1), math.Inf(1)},
		{math.Inf(-1), math.Inf(-1)},
		{math.NaN(), 1},
		{0, math.NaN()},
	}
	for _, c := range cases {
		_, err := bound.New(c[0], c[1])
		require.Errorf(t, err, "expected error for [%v, %v]", c[0], c[1])
	}
}

func TestContainsWithTolerance(t *testing.T) {
	t.Parallel()

	b := bound.MustNew(0, 10)
	tol := atol.MustNew(1e-6)
	require.True(t, b.Contains(0, tol))
	require.True(t, b.Contains(10, tol))
	require.True(t, b.Contains(-1e-7, tol))
	require.False(t, b.Contains(-1, tol))
}

func TestIntersectionDisjoint(t *testing.T) {
	t.Parallel()

	a := bound.MustNew(0, 1)
	b := bound.MustNew(2, 3)
	_, err := a.Intersection(b)
	require.ErrorIs(t, err, bound.ErrDisjoint)
}

func TestIntersectionOverlap(t *testing.T) {
	t.Parallel()

	a := bound.MustNew(0, 5)
	b := bound.MustNew(3, 10)
	got, err := a.Intersection(b)
	require.NoError(t, err)
	require.Equal(t, bound.MustNew(3, 5), got)
}

func TestPowEvenIncludesZero(t *testing.T) {
	t.Parallel()

	b := bound.MustNew(-3, 2)
	got := b.Pow(2)
	require.Equal(t, 0.0, got.Lower())
	require.Equal(t, 9.0, got.Upper())
}

func TestPowOdd(t *testing.T) {
	t.Parallel()

	b := bound.MustNew(-3, 2)
	got := b.Pow(3)
	require.Equal(t, -27.0, got.Lower())
	require.Equal(t, 8.0, got.Upper())
}

func TestMulScalarFlipsOnNegative(t *testing.T) {
	t.Parallel()

	b := bound.MustNew(1, 4)
	got := b.MulScalar(-2)
	require.Equal(t, -8.0, got.Lower())
	require.Equal(t, -2.0, got.Upper())
}

func TestConsistentBoundBinary(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	got, err := bound.ConsistentBound(bound.Binary, bound.MustNew(0, 1), tol)
	require.NoError(t, err)
	require.Equal(t, bound.OfBinary(), got)

	_, err = bound.ConsistentBound(bound.Binary, bound.MustNew(0, 5), tol)
	require.Error(t, err)
	var berr *bound.Error
	require.ErrorAs(t, err, &berr)
	require.Equal(t, bound.Binary, berr.Kind)
}

func TestConsistentBoundIntegerRejectsEmptySnappedRange(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	got, err := bound.ConsistentBound(bound.Integer, bound.MustNew(1.1, 1.9), tol)
	// ceil(1.1)=2, floor(1.9)=1 -> empty range -> error, matching spec.md §8.6
	require.Error(t, err)
	_ = got
}

func TestFeasibleValueSemiContinuous(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	b := bound.MustNew(5, 10)
	require.True(t, bound.FeasibleValue(bound.SemiContinuous, b, 0, tol))
	require.True(t, bound.FeasibleValue(bound.SemiContinuous, b, 7, tol))
	require.False(t, bound.FeasibleValue(bound.SemiContinuous, b, 2, tol))
}
