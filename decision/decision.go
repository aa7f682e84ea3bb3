package decision

import (
	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// DecisionVariable is an ID paired with a kind-consistent Bound, an optional
// substituted value, and free-form metadata.
type DecisionVariable struct {
	id          ids.VariableID
	kind        bound.Kind
	bnd         bound.Bound
	substituted *float64
	name        string
	description string
	metadata    map[string]string
}

// Option configures optional DecisionVariable metadata at construction.
type Option func(*DecisionVariable)

// WithName attaches a display name.
func WithName(name string) Option {
	return func(d *DecisionVariable) { d.name = name }
}

// WithDescription attaches a free-text description.
func WithDescription(description string) Option {
	return func(d *DecisionVariable) { d.description = description }
}

// WithMetadataEntry attaches an arbitrary key/value annotation.
func WithMetadataEntry(key, value string) Option {
	return func(d *DecisionVariable) {
		if d.metadata == nil {
			d.metadata = make(map[string]string)
		}
		d.metadata[key] = value
	}
}

// New validates bound against kind (bound.ConsistentBound) and, if
// substitutedValue is non-nil, validates it against the resulting bound
// before constructing the DecisionVariable.
func New(id ids.VariableID, kind bound.Kind, b bound.Bound, substitutedValue *float64, tol atol.ATol, opts ...Option) (DecisionVariable, error) {
	consistent, err := bound.ConsistentBound(kind, b, tol)
	if err != nil {
		return DecisionVariable{}, err
	}
	dv := DecisionVariable{id: id, kind: kind, bnd: consistent}
	for _, opt := range opts {
		opt(&dv)
	}
	if substitutedValue != nil {
		if !bound.FeasibleValue(kind, consistent, *substitutedValue, tol) {
			return DecisionVariable{}, &Error{ID: id, Kind: kind, Bound: consistent, Value: *substitutedValue, Err: ErrInfeasibleSubstitutedValue}
		}
		v := *substitutedValue
		dv.substituted = &v
	}
	return dv, nil
}

func (d DecisionVariable) clone() DecisionVariable {
	out := d
	if d.substituted != nil {
		v := *d.substituted
		out.substituted = &v
	}
	if d.metadata != nil {
		out.metadata = make(map[string]string, len(d.metadata))
		for k, v := range d.metadata {
			out.metadata[k] = v
		}
	}
	return out
}

// ID returns the variable's identity.
func (d DecisionVariable) ID() ids.VariableID { return d.id }

// Kind returns the variable's kind.
func (d DecisionVariable) Kind() bound.Kind { return d.kind }

// Bound returns the variable's kind-consistent bound.
func (d DecisionVariable) Bound() bound.Bound { return d.bnd }

// SubstitutedValue returns the variable's substituted value, if any.
func (d DecisionVariable) SubstitutedValue() (float64, bool) {
	if d.substituted == nil {
		return 0, false
	}
	return *d.substituted, true
}

// Name returns the variable's display name, which may be empty.
func (d DecisionVariable) Name() string { return d.name }

// Description returns the variable's description, which may be empty.
func (d DecisionVariable) Description() string { return d.description }

// Metadata returns a defensive copy of the variable's metadata annotations.
func (d DecisionVariable) Metadata() map[string]string {
	out := make(map[string]string, len(d.metadata))
	for k, v := range d.metadata {
		out[k] = v
	}
	return out
}

// Substitute sets or overwrites the substituted value after validating it
// against the variable's kind and bound.
func (d DecisionVariable) Substitute(value float64, tol atol.ATol) (DecisionVariable, error) {
	if !bound.FeasibleValue(d.kind, d.bnd, value, tol) {
		return DecisionVariable{}, &Error{ID: d.id, Kind: d.kind, Bound: d.bnd, Value: value, Err: ErrInfeasibleSubstitutedValue}
	}
	out := d.clone()
	v := value
	out.substituted = &v
	return out, nil
}

// ClipBound replaces the variable's bound with bound ∩ newBound, re-checking
// kind consistency on the narrowed interval.
func (d DecisionVariable) ClipBound(newBound bound.Bound, tol atol.ATol) (DecisionVariable, error) {
	intersected, err := d.bnd.Intersection(newBound)
	if err != nil {
		return DecisionVariable{}, err
	}
	consistent, err := bound.ConsistentBound(d.kind, intersected, tol)
	if err != nil {
		return DecisionVariable{}, err
	}
	out := d.clone()
	out.bnd = consistent
	return out, nil
}

// Value resolves the variable's value for evaluation: state[id] if present,
// otherwise the substituted value, otherwise (0, false).
func (d DecisionVariable) Value(state map[ids.VariableID]float64) (float64, bool) {
	if v, ok := state[d.id]; ok {
		return v, true
	}
	if d.substituted != nil {
		return *d.substituted, true
	}
	return 0, false
}
