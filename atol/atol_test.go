package atol_test

import (
	"math"
	"testing"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositive(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := atol.New(x)
		require.Errorf(t, err, "expected error for %v", x)
	}
}

func TestNewAcceptsPositiveFinite(t *testing.T) {
	t.Parallel()

	a, err := atol.New(1e-3)
	require.NoError(t, err)
	require.Equal(t, 1e-3, a.Float64())
}

func TestSetDefaultLastWriterWins(t *testing.T) {
	// Not t.Parallel(): mutates process-wide state and must restore it.
	original := atol.Default()
	t.Cleanup(func() { _ = atol.SetDefault(original.Float64()) })

	require.NoError(t, atol.SetDefault(0.01))
	require.Equal(t, 0.01, atol.Default().Float64())

	require.NoError(t, atol.SetDefault(0.02))
	require.Equal(t, 0.02, atol.Default().Float64())
}

func TestSetDefaultRejectsInvalid(t *testing.T) {
	original := atol.Default()
	t.Cleanup(func() { _ = atol.SetDefault(original.Float64()) })

	err := atol.SetDefault(-1)
	require.Error(t, err)
	require.Equal(t, original.Float64(), atol.Default().Float64())
}
