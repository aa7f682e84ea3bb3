package coefficient_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/stretchr/testify/require"
)

func TestTryFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		x       float64
		wantErr bool
		wantKnd coefficient.Kind
	}{
		{"positive", 2.5, false, 0},
		{"negative", -3, false, 0},
		{"zero", 0, true, coefficient.KindZero},
		{"nan", math.NaN(), true, coefficient.KindNaN},
		{"inf", math.Inf(1), true, coefficient.KindInfinite},
		{"neg-inf", math.Inf(-1), true, coefficient.KindInfinite},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, err := coefficient.TryFrom(tc.x)
			if !tc.wantErr {
				require.NoError(t, err)
				require.Equal(t, tc.x, c.Float64())
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, coefficient.ErrInvalidCoefficient))
			var cerr *coefficient.Error
			require.True(t, errors.As(err, &cerr))
			require.Equal(t, tc.wantKnd, cerr.Kind)
		})
	}
}

func TestAddCancelsToNone(t *testing.T) {
	t.Parallel()

	a := coefficient.MustFrom(3)
	b := coefficient.MustFrom(-3)
	_, ok := a.Add(b)
	require.False(t, ok, "exact cancellation must report ok=false, not an error")
}

func TestAddAssociativity(t *testing.T) {
	t.Parallel()

	a := coefficient.MustFrom(1.5)
	b := coefficient.MustFrom(2.5)
	c := coefficient.MustFrom(-0.5)

	ab, ok := a.Add(b)
	require.True(t, ok)
	abc, ok := ab.Add(c)
	require.True(t, ok)

	bc, ok := b.Add(c)
	require.True(t, ok)
	abc2, ok := a.Add(bc)
	require.True(t, ok)

	require.InDelta(t, abc.Float64(), abc2.Float64(), 1e-12)
}

func TestOffsetAllowsZero(t *testing.T) {
	t.Parallel()

	o, err := coefficient.OffsetTryFrom(0)
	require.NoError(t, err)
	require.True(t, o.IsZero())
}

func TestOffsetRejectsNonFinite(t *testing.T) {
	t.Parallel()

	_, err := coefficient.OffsetTryFrom(math.NaN())
	require.Error(t, err)
	_, err = coefficient.OffsetTryFrom(math.Inf(-1))
	require.Error(t, err)
}
