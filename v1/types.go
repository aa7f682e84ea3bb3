// Package v1 defines the wire message shapes of the OMMX binary format:
// plain, protobuf-generated-looking structs mirroring the org.ommx.v1
// schema, with fixed tag numbers preserved so that existing `.ommx` blobs
// round-trip. This package holds data only; encoding and decoding against
// the tag numbers below lives in package parse, the only consumer.
package v1

// Equality mirrors the org.ommx.v1.Equality proto enum. The zero value,
// EqualityUnspecified, is invalid on the wire.
type Equality int32

const (
	EqualityUnspecified           Equality = 0
	EqualityEqualToZero           Equality = 1
	EqualityLessThanOrEqualToZero Equality = 2
)

// Sense mirrors org.ommx.v1.Instance.Sense. The zero value, SenseUnspecified,
// is invalid on the wire.
type Sense int32

const (
	SenseUnspecified Sense = 0
	SenseMinimize    Sense = 1
	SenseMaximize    Sense = 2
)

// Kind mirrors org.ommx.v1.DecisionVariable.Kind. The zero value,
// KindUnspecified, is invalid on the wire.
type Kind int32

const (
	KindUnspecified     Kind = 0
	KindContinuous      Kind = 1
	KindInteger         Kind = 2
	KindBinary          Kind = 3
	KindSemiContinuous  Kind = 4
	KindSemiInteger     Kind = 5
)

// Optimality mirrors org.ommx.v1.Solution.Optimality.
type Optimality int32

const (
	OptimalityUnspecified Optimality = 0
	OptimalityOptimal     Optimality = 1
	OptimalityInfeasible  Optimality = 2
	OptimalityUnbounded   Optimality = 3
)

// Relaxation mirrors org.ommx.v1.Solution.Relaxation.
type Relaxation int32

const (
	RelaxationUnspecified Relaxation = 0
	RelaxationLPRelaxed   Relaxation = 1
)

// Bound is a (lower, upper) pair. Field 1 is lower, field 2 is upper.
type Bound struct {
	Lower float64
	Upper float64
}

// LinearTerm is one (variable ID, coefficient) pair. Field 1 is ID, field 2
// is Coefficient.
type LinearTerm struct {
	ID          uint64
	Coefficient float64
}

// Linear is a degree-<=1 polynomial: a term list plus a constant. Field 1 is
// Terms, field 2 is Constant.
type Linear struct {
	Terms    []LinearTerm
	Constant float64
}

// QuadraticTerm is one (row, column, coefficient) entry of a quadratic form.
// Field 1 is RowID, field 2 is ColumnID, field 3 is Coefficient.
type QuadraticTerm struct {
	RowID       uint64
	ColumnID    uint64
	Coefficient float64
}

// Quadratic is a degree-<=2 polynomial: a quadratic term list plus an
// optional linear remainder. Field 1 is Terms, field 2 is Linear.
type Quadratic struct {
	Terms  []QuadraticTerm
	Linear *Linear
}

// Monomial is one arbitrary-degree term: a multiset of variable IDs (a
// repeated power) plus a coefficient. Field 1 is IDs, field 2 is
// Coefficient.
type Monomial struct {
	IDs         []uint64
	Coefficient float64
}

// Polynomial is an arbitrary-degree polynomial: an unordered Monomial list.
// Field 1 is Terms.
type Polynomial struct {
	Terms []Monomial
}

// Function is the oneof{Constant, Linear, Quadratic, Polynomial} sum type.
// At most one field is set; all unset is the UnsupportedV1Function case.
// Field numbers 1-4 correspond to Constant, Linear, Quadratic, Polynomial.
type Function struct {
	Constant   *float64
	Linear     *Linear
	Quadratic  *Quadratic
	Polynomial *Polynomial
}

// DecisionVariable is one wire decision variable. Subscripts and Parameters
// are the structured form of what the core model flattens into metadata:
// Subscripts is an index tuple, Parameters is free-form key/value
// annotation distinct from the subscript tuple. Field numbers: 1 ID,
// 2 Kind, 3 Bound, 4 SubstitutedValue, 5 Name, 6 Description,
// 7 Subscripts, 8 Parameters.
type DecisionVariable struct {
	ID               uint64
	Kind             Kind
	Bound            *Bound
	SubstitutedValue *float64
	Name             string
	Description      string
	Subscripts       []int64
	Parameters       map[string]string
}

// Constraint is one wire constraint. Field numbers: 1 ID, 2 Function,
// 3 Equality, 4 Name, 5 Description, 6 Subscripts, 7 Parameters.
type Constraint struct {
	ID          uint64
	Function    *Function
	Equality    Equality
	Name        string
	Description string
	Subscripts  []int64
	Parameters  map[string]string
}

// RemovedConstraint is a Constraint taken out of the active set, with the
// reason recorded. Field numbers: 1 Constraint, 2 RemovedReason,
// 3 RemovedReasonParameters.
type RemovedConstraint struct {
	Constraint              *Constraint
	RemovedReason            string
	RemovedReasonParameters map[string]string
}

// Instance is the top-level wire message for a mathematical-programming
// problem. Field numbers: 1 DecisionVariables, 2 Objective, 3 Constraints,
// 4 RemovedConstraints, 5 Sense, 6 Description.
type Instance struct {
	DecisionVariables  []*DecisionVariable
	Objective          *Function
	Constraints        []*Constraint
	RemovedConstraints []*RemovedConstraint
	Sense              Sense
	Description        string
}

// Parameter is one wire parameter slot of a ParametricInstance. Field
// numbers: 1 ID, 2 Name, 3 Bound, 4 Description.
type Parameter struct {
	ID          uint64
	Name        string
	Bound       *Bound
	Description string
}

// ParametricInstance augments an Instance with a parameter table. Field
// numbers: 1 Instance, 2 Parameters.
type ParametricInstance struct {
	Instance   *Instance
	Parameters []*Parameter
}

// State is a sparse variable ID -> value assignment. Field 1 is Entries.
type State struct {
	Entries map[uint64]float64
}

// SamplesEntry groups a State with every SampleID that shares it. Field 1
// is State, field 2 is IDs.
type SamplesEntry struct {
	State *State
	IDs   []uint64
}

// Samples is a sparse grouping of sample IDs by shared State. Field 1 is
// Entries; parsers must reject duplicated sample IDs across entries.
type Samples struct {
	Entries []SamplesEntry
}

// Solution is a solver-reported State plus optimality/relaxation status.
// Field numbers: 1 State, 2 Optimality, 3 Relaxation.
type Solution struct {
	State      *State
	Optimality Optimality
	Relaxation Relaxation
}
