package constraint

import (
	"math"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// Equality discriminates a Constraint's comparison against zero.
type Equality uint8

const (
	// EqualToZero requires |function(state)| < atol for feasibility.
	EqualToZero Equality = iota
	// LessThanOrEqualToZero requires function(state) < atol for feasibility.
	LessThanOrEqualToZero
)

func (e Equality) String() string {
	if e == LessThanOrEqualToZero {
		return "<=0"
	}
	return "=0"
}

// Constraint is (id, function, equality, metadata). Metadata is free-form:
// construction does not validate it against anything in the function.
type Constraint struct {
	id          ids.ConstraintID
	f           function.Function
	equality    Equality
	name        string
	description string
	metadata    map[string]string
}

// Option configures optional Constraint metadata at construction.
type Option func(*Constraint)

// WithName attaches a display name.
func WithName(name string) Option { return func(c *Constraint) { c.name = name } }

// WithDescription attaches a free-text description.
func WithDescription(description string) Option {
	return func(c *Constraint) { c.description = description }
}

// WithMetadataEntry attaches an arbitrary key/value annotation.
func WithMetadataEntry(key, value string) Option {
	return func(c *Constraint) {
		if c.metadata == nil {
			c.metadata = make(map[string]string)
		}
		c.metadata[key] = value
	}
}

// New builds a Constraint with an arbitrary equality.
func New(id ids.ConstraintID, f function.Function, equality Equality, opts ...Option) Constraint {
	c := Constraint{id: id, f: f, equality: equality}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// EqualToZeroConstraint builds a Constraint of the form f(x) = 0.
func EqualToZeroConstraint(id ids.ConstraintID, f function.Function, opts ...Option) Constraint {
	return New(id, f, EqualToZero, opts...)
}

// LessThanOrEqualToZeroConstraint builds a Constraint of the form f(x) <= 0.
func LessThanOrEqualToZeroConstraint(id ids.ConstraintID, f function.Function, opts ...Option) Constraint {
	return New(id, f, LessThanOrEqualToZero, opts...)
}

// ID returns the constraint's identity.
func (c Constraint) ID() ids.ConstraintID { return c.id }

// Function returns the constraint's body.
func (c Constraint) Function() function.Function { return c.f }

// Equality returns the constraint's comparison type.
func (c Constraint) Equality() Equality { return c.equality }

// Name returns the constraint's display name, which may be empty.
func (c Constraint) Name() string { return c.name }

// Description returns the constraint's description, which may be empty.
func (c Constraint) Description() string { return c.description }

// Metadata returns a defensive copy of the constraint's metadata.
func (c Constraint) Metadata() map[string]string {
	out := make(map[string]string, len(c.metadata))
	for k, v := range c.metadata {
		out[k] = v
	}
	return out
}

// WithFunction returns a copy of c with its function replaced, used by the
// substitute package to rewrite a constraint's body in place.
func (c Constraint) WithFunction(f function.Function) Constraint {
	c.f = f
	return c
}

// Feasible reports whether value (the constraint's evaluated function value)
// satisfies this constraint's equality within tol: |value| < atol for
// EqualToZero, value < atol for LessThanOrEqualToZero. Both are strict at
// the tolerance boundary; a value sitting exactly at atol is infeasible
// either way.
func (c Constraint) Feasible(value float64, tol atol.ATol) bool {
	a := tol.Float64()
	if c.equality == LessThanOrEqualToZero {
		return value < a
	}
	return math.Abs(value) < a
}

// RemovedConstraint is a Constraint set aside from the active set, along
// with a human-readable reason and a free parameter bag (e.g. which
// presolve pass removed it and why).
type RemovedConstraint struct {
	Constraint
	reason     string
	parameters map[string]string
}

// Remove wraps c as a RemovedConstraint with the given reason and
// parameters, copying the parameter map defensively.
func Remove(c Constraint, reason string, parameters map[string]string) RemovedConstraint {
	params := make(map[string]string, len(parameters))
	for k, v := range parameters {
		params[k] = v
	}
	return RemovedConstraint{Constraint: c, reason: reason, parameters: params}
}

// Reason returns the human-readable removal reason.
func (r RemovedConstraint) Reason() string { return r.reason }

// Parameters returns a defensive copy of the removal's parameter bag.
func (r RemovedConstraint) Parameters() map[string]string {
	out := make(map[string]string, len(r.parameters))
	for k, v := range r.parameters {
		out[k] = v
	}
	return out
}
