// Package testutil holds go-cmp-based snapshot helpers for asserting
// equality of evaluated Solution and SampleSet values in tests, since both
// carry unexported state and neither is meant to be compared field-by-field
// by callers.
package testutil

import (
	"sort"

	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/instance"
	"github.com/Jij-Inc/ommx-sub001/solution"
	"github.com/google/go-cmp/cmp"
)

// SolutionSnapshot is the exported, comparable projection of a Solution used
// for diffing in tests.
type SolutionSnapshot struct {
	ObjectiveValue  float64
	Sense           instance.Sense
	Optimality      instance.Optimality
	Relaxation      instance.Relaxation
	Feasible        bool
	FeasibleRelaxed bool
	State           evaluate.State
}

// SnapshotSolution projects sol's observable fields into a SolutionSnapshot.
func SnapshotSolution(sol solution.Solution) SolutionSnapshot {
	return SolutionSnapshot{
		ObjectiveValue:  sol.ObjectiveValue(),
		Sense:           sol.Sense(),
		Optimality:      sol.Optimality(),
		Relaxation:      sol.Relaxation(),
		Feasible:        sol.Feasible(),
		FeasibleRelaxed: sol.FeasibleRelaxed(),
		State:           sol.State(),
	}
}

// DiffSolutions reports the go-cmp diff between two Solutions' snapshots, or
// "" if they are equal.
func DiffSolutions(got, want solution.Solution) string {
	return cmp.Diff(SnapshotSolution(want), SnapshotSolution(got))
}

// SampleSetSnapshot is the exported projection of a SampleSet: each sample's
// SolutionSnapshot, keyed by SampleID.
type SampleSetSnapshot map[ids.SampleID]SolutionSnapshot

// SnapshotSampleSet projects every sample in ss into a SampleSetSnapshot.
func SnapshotSampleSet(ss solution.SampleSet) SampleSetSnapshot {
	out := make(SampleSetSnapshot, len(ss.Solutions()))
	for id, sol := range ss.Solutions() {
		out[id] = SnapshotSolution(sol)
	}
	return out
}

// DiffSampleSets reports the go-cmp diff between two SampleSets' snapshots,
// or "" if they are equal. Sample IDs are compared as a map, so order never
// affects the result.
func DiffSampleSets(got, want solution.SampleSet) string {
	return cmp.Diff(SnapshotSampleSet(want), SnapshotSampleSet(got))
}

// SortedSampleIDs returns ids in ascending order, useful for deterministic
// iteration when reporting a diff's context.
func SortedSampleIDs(ss solution.SampleSet) []ids.SampleID {
	out := make([]ids.SampleID, 0, len(ss.Solutions()))
	for id := range ss.Solutions() {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
