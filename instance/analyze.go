package instance

import (
	"math"

	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/constraint"
)

// Analysis is a read-only O(variables+constraints) snapshot of an Instance's
// shape: variable kinds, how each variable's bound classifies (fixed,
// ranged, or free), and constraint counts by equality type. It allocates
// only its own result; it never mutates the Instance it summarizes.
type Analysis struct {
	VariableCount              int
	KindCounts                 map[bound.Kind]int
	FixedBoundCount            int
	RangedBoundCount           int
	FreeBoundCount             int
	ConstraintCount            int
	RemovedConstraintCount     int
	EqualToZeroCount           int
	LessThanOrEqualToZeroCount int
}

// Analyze produces an Analysis of i in a single pass over its decision
// variables and a single pass over its active constraints.
func Analyze(i Instance) Analysis {
	a := Analysis{KindCounts: make(map[bound.Kind]int)}

	for _, dv := range i.decisionVariables {
		a.VariableCount++
		a.KindCounts[dv.Kind()]++

		b := dv.Bound()
		switch {
		case math.IsInf(b.Lower(), -1) || math.IsInf(b.Upper(), 1):
			a.FreeBoundCount++
		case b.Lower() == b.Upper():
			a.FixedBoundCount++
		default:
			a.RangedBoundCount++
		}
	}

	for _, c := range i.constraints {
		a.ConstraintCount++
		if c.Equality() == constraint.EqualToZero {
			a.EqualToZeroCount++
		} else {
			a.LessThanOrEqualToZeroCount++
		}
	}
	a.RemovedConstraintCount = len(i.removedConstraints)

	return a
}
