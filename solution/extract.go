package solution

import (
	"strconv"
	"strings"

	"github.com/Jij-Inc/ommx-sub001/constraint"
	"github.com/Jij-Inc/ommx-sub001/decision"
)

// Extracted pairs a subscript tuple with the value it indexed, returned by
// ExtractDecisionVariables and ExtractConstraints.
type Extracted struct {
	Subscripts []int64
	Value      float64
}

// subscriptsMetadataKey is the metadata key whose value, a comma-separated
// list of integers, names an entity's subscript tuple. Any other metadata
// key marks the entity as parameterized, which named extraction refuses.
const subscriptsMetadataKey = "subscripts"

func parseSubscripts(metadata map[string]string) (subscripts []int64, hasParameters bool, err error) {
	for key := range metadata {
		if key != subscriptsMetadataKey {
			hasParameters = true
		}
	}
	raw, ok := metadata[subscriptsMetadataKey]
	if !ok || raw == "" {
		return nil, hasParameters, nil
	}
	parts := strings.Split(raw, ",")
	subscripts = make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, hasParameters, err
		}
		subscripts = append(subscripts, v)
	}
	return subscripts, hasParameters, nil
}

func subscriptKey(subscripts []int64) string {
	parts := make([]string, len(subscripts))
	for i, v := range subscripts {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, "/")
}

// ExtractDecisionVariables returns the evaluated value of every decision
// variable named name in sol, keyed by the canonical form of its subscript
// tuple (decoded from its "subscripts" metadata entry). It reports
// ErrWithParameters if a matching variable carries any other metadata key,
// and ErrDuplicateSubscript if two matching variables share a subscript
// tuple.
func ExtractDecisionVariables(sol Solution, variables []decision.DecisionVariable, name string) (map[string]Extracted, error) {
	out := make(map[string]Extracted)
	for _, dv := range variables {
		if dv.Name() != name {
			continue
		}
		subscripts, hasParameters, err := parseSubscripts(dv.Metadata())
		if err != nil {
			return nil, &ExtractError{Name: name, ID: dv.ID().String(), Err: err}
		}
		if hasParameters {
			return nil, &ExtractError{Name: name, ID: dv.ID().String(), Err: ErrWithParameters}
		}
		key := subscriptKey(subscripts)
		if _, duplicate := out[key]; duplicate {
			return nil, &ExtractError{Name: name, ID: dv.ID().String(), Err: ErrDuplicateSubscript}
		}
		ev, ok := sol.DecisionVariable(dv.ID())
		if !ok {
			continue
		}
		out[key] = Extracted{Subscripts: subscripts, Value: ev.Value}
	}
	return out, nil
}

// ExtractConstraints is the Constraint analogue of ExtractDecisionVariables.
func ExtractConstraints(sol Solution, constraints []constraint.Constraint, name string) (map[string]Extracted, error) {
	out := make(map[string]Extracted)
	for _, c := range constraints {
		if c.Name() != name {
			continue
		}
		subscripts, hasParameters, err := parseSubscripts(c.Metadata())
		if err != nil {
			return nil, &ExtractError{Name: name, ID: c.ID().String(), Err: err}
		}
		if hasParameters {
			return nil, &ExtractError{Name: name, ID: c.ID().String(), Err: ErrWithParameters}
		}
		key := subscriptKey(subscripts)
		if _, duplicate := out[key]; duplicate {
			return nil, &ExtractError{Name: name, ID: c.ID().String(), Err: ErrDuplicateSubscript}
		}
		ev, ok := sol.EvaluatedConstraint(c.ID())
		if !ok {
			continue
		}
		out[key] = Extracted{Subscripts: subscripts, Value: ev.Value}
	}
	return out, nil
}
