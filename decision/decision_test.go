package decision_test

import (
	"errors"
	"testing"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/stretchr/testify/require"
)

func TestNewSnapsIntegerBound(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	dv, err := decision.New(ids.VariableID(1), bound.Integer, bound.MustNew(0.2, 3.8), nil, tol)
	require.NoError(t, err)
	require.Equal(t, 1.0, dv.Bound().Lower())
	require.Equal(t, 3.0, dv.Bound().Upper())
}

func TestNewRejectsInconsistentIntegerBound(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	_, err := decision.New(ids.VariableID(1), bound.Integer, bound.MustNew(1.1, 1.9), nil, tol)
	require.Error(t, err)
	var be *bound.Error
	require.True(t, errors.As(err, &be))
	require.ErrorIs(t, err, bound.ErrKindBoundMismatch)
}

func TestNewRejectsInfeasibleSubstitutedValue(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	v := 5.0
	_, err := decision.New(ids.VariableID(1), bound.Binary, bound.OfBinary(), &v, tol)
	require.ErrorIs(t, err, decision.ErrInfeasibleSubstitutedValue)
}

func TestSubstituteOverwritesValue(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	dv, err := decision.New(ids.VariableID(1), bound.Continuous, bound.MustNew(0, 10), nil, tol)
	require.NoError(t, err)

	dv, err = dv.Substitute(4.2, tol)
	require.NoError(t, err)
	v, ok := dv.SubstitutedValue()
	require.True(t, ok)
	require.Equal(t, 4.2, v)
}

func TestClipBoundIntersects(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	dv, err := decision.New(ids.VariableID(1), bound.Continuous, bound.MustNew(0, 10), nil, tol)
	require.NoError(t, err)

	dv, err = dv.ClipBound(bound.MustNew(3, 7), tol)
	require.NoError(t, err)
	require.Equal(t, 3.0, dv.Bound().Lower())
	require.Equal(t, 7.0, dv.Bound().Upper())
}

func TestClipBoundErrorsOnDisjoint(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	dv, err := decision.New(ids.VariableID(1), bound.Continuous, bound.MustNew(0, 1), nil, tol)
	require.NoError(t, err)

	_, err = dv.ClipBound(bound.MustNew(5, 6), tol)
	require.ErrorIs(t, err, bound.ErrDisjoint)
}

func TestValueFallsBackToSubstituted(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	v := 2.5
	dv, err := decision.New(ids.VariableID(1), bound.Continuous, bound.Default(), &v, tol)
	require.NoError(t, err)

	got, ok := dv.Value(map[ids.VariableID]float64{})
	require.True(t, ok)
	require.Equal(t, 2.5, got)

	got, ok = dv.Value(map[ids.VariableID]float64{1: 9})
	require.True(t, ok)
	require.Equal(t, 9.0, got)
}

func TestWithNameOption(t *testing.T) {
	t.Parallel()

	tol := atol.MustNew(1e-6)
	dv, err := decision.New(ids.VariableID(1), bound.Continuous, bound.Default(), nil, tol, decision.WithName("x"))
	require.NoError(t, err)
	require.Equal(t, "x", dv.Name())
}
