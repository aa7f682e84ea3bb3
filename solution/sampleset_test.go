package solution_test

import (
	"testing"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/internal/testutil"
	"github.com/Jij-Inc/ommx-sub001/solution"
	"github.com/stretchr/testify/require"
)

func TestSampleSetSelectsMinimalFeasibleSampleAndTieBreaksByID(t *testing.T) {
	t.Parallel()

	inst, x, _ := boxInstance(t)
	tol := atol.MustNew(1e-6)

	samples := evaluate.NewSamples(map[ids.SampleID]evaluate.State{
		0: {x: 4},  // feasible, objective 4
		1: {x: 15}, // infeasible
		2: {x: 2},  // feasible, objective 2 (best)
		3: {x: 2},  // ties sample 2 on State and objective; smaller ID wins
	})

	set, err := solution.EvaluateSamples(inst, samples, tol)
	require.NoError(t, err)

	bestID, best, found := set.BestFeasible()
	require.True(t, found)
	require.Equal(t, ids.SampleID(2), bestID)
	require.Equal(t, 2.0, best.ObjectiveValue())

	// BestFeasibleUnrelaxed is an alias of BestFeasible.
	aliasID, alias, aliasFound := set.BestFeasibleUnrelaxed()
	require.True(t, aliasFound)
	require.Equal(t, bestID, aliasID)
	require.Equal(t, best.ObjectiveValue(), alias.ObjectiveValue())
}

func TestSampleSetBestFeasibleRelaxedIgnoresRemovedConstraintViolations(t *testing.T) {
	t.Parallel()

	inst, x, cID := boxInstance(t)
	tol := atol.MustNew(1e-6)

	relaxed, err := inst.Relax(cID, "testing", nil)
	require.NoError(t, err)

	samples := evaluate.NewSamples(map[ids.SampleID]evaluate.State{
		0: {x: 15},
	})

	set, err := solution.EvaluateSamples(relaxed, samples, tol)
	require.NoError(t, err)

	_, _, found := set.BestFeasible()
	require.False(t, found)

	bestID, best, found := set.BestFeasibleRelaxed()
	require.True(t, found)
	require.Equal(t, ids.SampleID(0), bestID)
	require.Equal(t, 15.0, best.ObjectiveValue())
}

func TestSampleSetReturnsNotFoundWhenNoSampleIsFeasible(t *testing.T) {
	t.Parallel()

	inst, x, _ := boxInstance(t)
	tol := atol.MustNew(1e-6)

	samples := evaluate.NewSamples(map[ids.SampleID]evaluate.State{
		0: {x: 11},
		1: {x: 12},
	})

	set, err := solution.EvaluateSamples(inst, samples, tol)
	require.NoError(t, err)

	_, _, found := set.BestFeasible()
	require.False(t, found)
}

func TestSampleSetEvaluationIsDeterministic(t *testing.T) {
	t.Parallel()

	inst, x, _ := boxInstance(t)
	tol := atol.MustNew(1e-6)
	samples := evaluate.NewSamples(map[ids.SampleID]evaluate.State{
		0: {x: 4},
		1: {x: 15},
	})

	first, err := solution.EvaluateSamples(inst, samples, tol)
	require.NoError(t, err)
	second, err := solution.EvaluateSamples(inst, samples, tol)
	require.NoError(t, err)

	require.Empty(t, testutil.DiffSampleSets(first, second))
}
