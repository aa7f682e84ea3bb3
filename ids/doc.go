// Package ids defines the strongly-typed 64-bit identifiers used throughout
// ommxcore: VariableID, ConstraintID, SampleID, and ParameterID.
//
// Each is a distinct Go type over uint64 so that a VariableID can never be
// passed where a ConstraintID is expected, even though both are plain
// integers on the wire. Uniqueness of any given ID within a collection is an
// invariant of the containing collection (an Instance's variable and
// constraint maps, a Samples grouping, ...),
// not of this package: ids themselves carry no state.
package ids
