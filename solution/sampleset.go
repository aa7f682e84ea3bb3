package solution

import (
	"sort"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/instance"
)

// SampleSet is the result of evaluating an Instance against every State in
// a Samples grouping: one Solution per SampleID, sharing work across
// SampleIDs whose State happens to be identical.
type SampleSet struct {
	sense     instance.Sense
	solutions evaluate.Sampled[Solution]
}

// EvaluateSamples evaluates inst against every State in samples, fanning
// shared-State evaluation out across the SampleIDs that share it.
func EvaluateSamples(inst instance.Instance, samples evaluate.Samples, tol atol.ATol) (SampleSet, error) {
	solutions, err := evaluate.EvaluateSamples(samples, func(state evaluate.State) (Solution, error) {
		return Evaluate(inst, state, tol)
	})
	if err != nil {
		return SampleSet{}, err
	}
	return SampleSet{sense: inst.Sense(), solutions: solutions}, nil
}

// Solution returns the evaluated Solution for sample id.
func (ss SampleSet) Solution(id ids.SampleID) (Solution, bool) {
	s, ok := ss.solutions[id]
	return s, ok
}

// Solutions returns every sample's Solution, keyed by SampleID.
func (ss SampleSet) Solutions() evaluate.Sampled[Solution] { return ss.solutions }

// BestFeasible returns the sample with the best (minimal for Minimize,
// maximal for Maximize) objective value among samples whose Feasible() is
// true, ties broken by the smallest SampleID. found is false if no sample
// is feasible.
func (ss SampleSet) BestFeasible() (id ids.SampleID, sol Solution, found bool) {
	return ss.bestAmong(Solution.Feasible)
}

// BestFeasibleUnrelaxed is an alias of BestFeasible, matching the historical
// name for the same selection.
func (ss SampleSet) BestFeasibleUnrelaxed() (id ids.SampleID, sol Solution, found bool) {
	return ss.BestFeasible()
}

// BestFeasibleRelaxed is BestFeasible restricted to FeasibleRelaxed().
func (ss SampleSet) BestFeasibleRelaxed() (id ids.SampleID, sol Solution, found bool) {
	return ss.bestAmong(Solution.FeasibleRelaxed)
}

func (ss SampleSet) bestAmong(feasible func(Solution) bool) (ids.SampleID, Solution, bool) {
	ordered := make(ids.SampleIDs, 0, len(ss.solutions))
	for id := range ss.solutions {
		ordered = append(ordered, id)
	}
	sort.Sort(ordered)

	var bestID ids.SampleID
	var best Solution
	found := false
	for _, id := range ordered {
		sol := ss.solutions[id]
		if !feasible(sol) {
			continue
		}
		if !found {
			bestID, best, found = id, sol, true
			continue
		}
		isBetter := sol.ObjectiveValue() < best.ObjectiveValue()
		if ss.sense == instance.Maximize {
			isBetter = sol.ObjectiveValue() > best.ObjectiveValue()
		}
		if isBetter {
			bestID, best = id, sol
		}
	}
	return bestID, best, found
}
