package instance

import (
	"sort"

	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
)

// Parameter names a bindable slot in a ParametricInstance: a display name, a
// declared bound, and free-form metadata. WithParameters does not check
// bound values against the declared bound.
type Parameter struct {
	id          ids.ParameterID
	name        string
	bnd         bound.Bound
	description string
	metadata    map[string]string
}

// ParameterOption configures optional Parameter metadata at construction.
type ParameterOption func(*Parameter)

// WithParameterDescription attaches a free-text description.
func WithParameterDescription(description string) ParameterOption {
	return func(p *Parameter) { p.description = description }
}

// WithParameterMetadataEntry attaches an arbitrary key/value annotation.
func WithParameterMetadataEntry(key, value string) ParameterOption {
	return func(p *Parameter) {
		if p.metadata == nil {
			p.metadata = make(map[string]string)
		}
		p.metadata[key] = value
	}
}

// NewParameter builds a Parameter.
func NewParameter(id ids.ParameterID, name string, b bound.Bound, opts ...ParameterOption) Parameter {
	p := Parameter{id: id, name: name, bnd: b}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// ID returns the parameter's identity.
func (p Parameter) ID() ids.ParameterID { return p.id }

// Name returns the parameter's display name.
func (p Parameter) Name() string { return p.name }

// Bound returns the parameter's declared bound.
func (p Parameter) Bound() bound.Bound { return p.bnd }

// Description returns the parameter's description, which may be empty.
func (p Parameter) Description() string { return p.description }

// ParametricInstance is an Instance whose decision_variables include
// placeholder variables standing in for named Parameters not yet bound to a
// concrete number.
type ParametricInstance struct {
	Instance
	parameters   map[ids.ParameterID]Parameter
	placeholders map[ids.ParameterID]ids.VariableID
}

// NewParametricInstance builds a ParametricInstance, validating that every
// placeholder names a variable present in base's decision_variables and
// that parameters and placeholders share exactly the same key set.
func NewParametricInstance(base Instance, parameters []Parameter, placeholders map[ids.ParameterID]ids.VariableID) (ParametricInstance, error) {
	paramsByID := make(map[ids.ParameterID]Parameter, len(parameters))
	for _, p := range parameters {
		paramsByID[p.ID()] = p
	}
	for id, varID := range placeholders {
		if _, ok := paramsByID[id]; !ok {
			return ParametricInstance{}, &ParameterError{IDs: []ids.ParameterID{id}, Err: ErrMissingParameters}
		}
		if _, ok := base.decisionVariables[varID]; !ok {
			return ParametricInstance{}, &Error{ID: varID, Err: ErrUndefinedVariableID}
		}
	}
	for id := range paramsByID {
		if _, ok := placeholders[id]; !ok {
			return ParametricInstance{}, &ParameterError{IDs: []ids.ParameterID{id}, Err: ErrMissingParameters}
		}
	}
	return ParametricInstance{Instance: base, parameters: paramsByID, placeholders: placeholders}, nil
}

// Parameters returns every declared Parameter, sorted by ID.
func (p ParametricInstance) Parameters() []Parameter {
	ordered := make(ids.ParameterIDs, 0, len(p.parameters))
	for id := range p.parameters {
		ordered = append(ordered, id)
	}
	sort.Sort(ordered)
	out := make([]Parameter, 0, len(ordered))
	for _, id := range ordered {
		out = append(out, p.parameters[id])
	}
	return out
}

// WithParameters binds every declared parameter to a concrete value,
// substituting each placeholder decision variable by that constant, and
// returns the resulting plain Instance. It fails with the full sorted list
// of missing parameter IDs if values does not cover every declared
// parameter.
func (p ParametricInstance) WithParameters(values map[ids.ParameterID]float64) (Instance, error) {
	ordered := make(ids.ParameterIDs, 0, len(p.parameters))
	for id := range p.parameters {
		ordered = append(ordered, id)
	}
	sort.Sort(ordered)

	var missing []ids.ParameterID
	for _, id := range ordered {
		if _, ok := values[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return Instance{}, &ParameterError{IDs: missing, Err: ErrMissingParameters}
	}

	out := p.Instance
	for _, id := range ordered {
		constFn, err := function.FromConstant(values[id])
		if err != nil {
			return Instance{}, err
		}
		next, err := out.SubstituteOne(p.placeholders[id], constFn)
		if err != nil {
			return Instance{}, err
		}
		out = next
	}
	return out, nil
}
