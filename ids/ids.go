package ids

import "fmt"

// VariableID identifies a decision variable within an Instance.
type VariableID uint64

// String renders the ID in the "v<n>" form used in error messages and
// canonical polynomial display.
func (id VariableID) String() string {
	return fmt.Sprintf("v%d", uint64(id))
}

// ConstraintID identifies a constraint (active or removed) within an
// Instance.
type ConstraintID uint64

// String renders the ID in the "c<n>" form used in error messages.
func (id ConstraintID) String() string {
	return fmt.Sprintf("c%d", uint64(id))
}

// SampleID identifies one assignment within a SampleSet.
type SampleID uint64

// String renders the ID in the "s<n>" form used in error messages.
func (id SampleID) String() string {
	return fmt.Sprintf("s%d", uint64(id))
}

// ParameterID identifies a parameter slot within a ParametricInstance.
type ParameterID uint64

// String renders the ID in the "p<n>" form used in error messages.
func (id ParameterID) String() string {
	return fmt.Sprintf("p%d", uint64(id))
}

// VariableIDs is a sortable slice of VariableID, used by callers that need a
// deterministic iteration order over a set of variables (display, wire
// encoding, canonical monomial keys).
type VariableIDs []VariableID

func (ids VariableIDs) Len() int           { return len(ids) }
func (ids VariableIDs) Less(i, j int) bool { return ids[i] < ids[j] }
func (ids VariableIDs) Swap(i, j int)      { ids[i], ids[j] = ids[j], ids[i] }

// SampleIDs is a sortable slice of SampleID, used to make Samples grouping
// deterministic with respect to its output regardless of input map order.
type SampleIDs []SampleID

func (ids SampleIDs) Len() int           { return len(ids) }
func (ids SampleIDs) Less(i, j int) bool { return ids[i] < ids[j] }
func (ids SampleIDs) Swap(i, j int)      { ids[i], ids[j] = ids[j], ids[i] }

// ConstraintIDs is a sortable slice of ConstraintID, used by callers that
// need deterministic iteration over a map keyed by ConstraintID.
type ConstraintIDs []ConstraintID

func (ids ConstraintIDs) Len() int           { return len(ids) }
func (ids ConstraintIDs) Less(i, j int) bool { return ids[i] < ids[j] }
func (ids ConstraintIDs) Swap(i, j int)      { ids[i], ids[j] = ids[j], ids[i] }

// ParameterIDs is a sortable slice of ParameterID, used by callers that need
// deterministic iteration over a map keyed by ParameterID.
type ParameterIDs []ParameterID

func (ids ParameterIDs) Len() int           { return len(ids) }
func (ids ParameterIDs) Less(i, j int) bool { return ids[i] < ids[j] }
func (ids ParameterIDs) Swap(i, j int)      { ids[i], ids[j] = ids[j], ids[i] }
