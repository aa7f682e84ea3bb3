package constraint

import "github.com/Jij-Inc/ommx-sub001/ids"

// OneHotHint records that exactly one of Variables is expected to be 1 (and
// the rest 0) for feasibility, typically annotating a backing constraint of
// the form sum(Variables) - 1 == 0.
type OneHotHint struct {
	ConstraintID ids.ConstraintID
	Variables    ids.VariableIDs
}

// NewOneHot validates that variables contains no duplicate ID and builds a
// OneHotHint, copying the slice defensively.
func NewOneHot(constraintID ids.ConstraintID, variables []ids.VariableID) (OneHotHint, error) {
	if err := checkUnique(variables); err != nil {
		return OneHotHint{}, err
	}
	return OneHotHint{ConstraintID: constraintID, Variables: append(ids.VariableIDs(nil), variables...)}, nil
}

// SOS1Hint records a "special ordered set of type 1" annotation: at most one
// of Variables may be non-zero. BigM is the solver-facing big-M threshold
// used to linearize the disjunction, when known.
type SOS1Hint struct {
	ConstraintID  ids.ConstraintID
	HasConstraint bool
	Variables     ids.VariableIDs
	BigM          float64
	BigMIsDefined bool
}

// NewSOS1 validates that variables contains no duplicate ID and builds a
// SOS1Hint. constraintID/hasConstraint identify a backing constraint, if
// one exists; bigM/bigMDefined record the solver-facing linearization
// threshold, if the producer supplied one.
func NewSOS1(constraintID ids.ConstraintID, hasConstraint bool, variables []ids.VariableID, bigM float64, bigMDefined bool) (SOS1Hint, error) {
	if err := checkUnique(variables); err != nil {
		return SOS1Hint{}, err
	}
	return SOS1Hint{
		ConstraintID:  constraintID,
		HasConstraint: hasConstraint,
		Variables:     append(ids.VariableIDs(nil), variables...),
		BigM:          bigM,
		BigMIsDefined: bigMDefined,
	}, nil
}

// Hints is the C8 ConstraintHints collection attached to an Instance.
type Hints struct {
	OneHot []OneHotHint
	SOS1   []SOS1Hint
}
