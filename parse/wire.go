package parse

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/Jij-Inc/ommx-sub001/v1"
)

// This file implements the Protocol-Buffers-compatible binary encoding for
// every v1 wire message, field-by-field, against the tag numbers documented
// on each struct in package v1. It uses the same low-level
// google.golang.org/protobuf/encoding/protowire primitives protoc-generated
// code itself calls into, without requiring a .proto-driven codegen step.

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendDoubleField(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendStringField(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// forEachField walks the top-level fields of a message payload, invoking fn
// once per (number, type, raw-field-bytes) triple.
func forEachField(data []byte, fn func(num protowire.Number, typ protowire.Type, raw []byte) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return &DecodeError{Err: protowire.ParseError(n)}
		}
		data = data[n:]
		m := protowire.ConsumeFieldValue(num, typ, data)
		if m < 0 {
			return &DecodeError{Err: protowire.ParseError(m)}
		}
		raw := data[:m]
		data = data[m:]
		if err := fn(num, typ, raw); err != nil {
			return err
		}
	}
	return nil
}

func consumeVarintValue(raw []byte) (uint64, error) {
	v, n := protowire.ConsumeVarint(raw)
	if n < 0 {
		return 0, &DecodeError{Err: protowire.ParseError(n)}
	}
	return v, nil
}

func consumeDoubleValue(raw []byte) (float64, error) {
	v, n := protowire.ConsumeFixed64(raw)
	if n < 0 {
		return 0, &DecodeError{Err: protowire.ParseError(n)}
	}
	return math.Float64frombits(v), nil
}

func consumeBytesValue(raw []byte) ([]byte, error) {
	v, n := protowire.ConsumeBytes(raw)
	if n < 0 {
		return nil, &DecodeError{Err: protowire.ParseError(n)}
	}
	return v, nil
}

func consumeStringValue(raw []byte) (string, error) {
	v, n := protowire.ConsumeString(raw)
	if n < 0 {
		return "", &DecodeError{Err: protowire.ParseError(n)}
	}
	return v, nil
}

// --- Bound ---

func encodeBound(b *v1.Bound) []byte {
	if b == nil {
		return nil
	}
	var out []byte
	out = appendDoubleField(out, 1, b.Lower)
	out = appendDoubleField(out, 2, b.Upper)
	return out
}

func decodeBound(data []byte) (*v1.Bound, error) {
	out := &v1.Bound{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.Lower = v
		case 2:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.Upper = v
		}
		return nil
	})
	return out, err
}

// --- Linear ---

func encodeLinearTerm(t v1.LinearTerm) []byte {
	var out []byte
	out = appendVarintField(out, 1, t.ID)
	out = appendDoubleField(out, 2, t.Coefficient)
	return out
}

func decodeLinearTerm(data []byte) (v1.LinearTerm, error) {
	var out v1.LinearTerm
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.ID = v
		case 2:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.Coefficient = v
		}
		return nil
	})
	return out, err
}

func encodeLinear(l *v1.Linear) []byte {
	if l == nil {
		return nil
	}
	var out []byte
	for _, t := range l.Terms {
		out = appendBytesField(out, 1, encodeLinearTerm(t))
	}
	out = appendDoubleField(out, 2, l.Constant)
	return out
}

func decodeLinear(data []byte) (*v1.Linear, error) {
	out := &v1.Linear{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			term, err := decodeLinearTerm(payload)
			if err != nil {
				return err
			}
			out.Terms = append(out.Terms, term)
		case 2:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.Constant = v
		}
		return nil
	})
	return out, err
}

// --- Quadratic ---

func encodeQuadraticTerm(t v1.QuadraticTerm) []byte {
	var out []byte
	out = appendVarintField(out, 1, t.RowID)
	out = appendVarintField(out, 2, t.ColumnID)
	out = appendDoubleField(out, 3, t.Coefficient)
	return out
}

func decodeQuadraticTerm(data []byte) (v1.QuadraticTerm, error) {
	var out v1.QuadraticTerm
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.RowID = v
		case 2:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.ColumnID = v
		case 3:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.Coefficient = v
		}
		return nil
	})
	return out, err
}

func encodeQuadratic(q *v1.Quadratic) []byte {
	if q == nil {
		return nil
	}
	var out []byte
	for _, t := range q.Terms {
		out = appendBytesField(out, 1, encodeQuadraticTerm(t))
	}
	if q.Linear != nil {
		out = appendBytesField(out, 2, encodeLinear(q.Linear))
	}
	return out
}

func decodeQuadratic(data []byte) (*v1.Quadratic, error) {
	out := &v1.Quadratic{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			term, err := decodeQuadraticTerm(payload)
			if err != nil {
				return err
			}
			out.Terms = append(out.Terms, term)
		case 2:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			lin, err := decodeLinear(payload)
			if err != nil {
				return err
			}
			out.Linear = lin
		}
		return nil
	})
	return out, err
}

// --- Polynomial ---

func encodeMonomial(m v1.Monomial) []byte {
	var out []byte
	for _, id := range m.IDs {
		out = appendVarintField(out, 1, id)
	}
	out = appendDoubleField(out, 2, m.Coefficient)
	return out
}

func decodeMonomial(data []byte) (v1.Monomial, error) {
	var out v1.Monomial
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.IDs = append(out.IDs, v)
		case 2:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.Coefficient = v
		}
		return nil
	})
	return out, err
}

func encodePolynomial(p *v1.Polynomial) []byte {
	if p == nil {
		return nil
	}
	var out []byte
	for _, m := range p.Terms {
		out = appendBytesField(out, 1, encodeMonomial(m))
	}
	return out
}

func decodePolynomial(data []byte) (*v1.Polynomial, error) {
	out := &v1.Polynomial{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			m, err := decodeMonomial(payload)
			if err != nil {
				return err
			}
			out.Terms = append(out.Terms, m)
		}
		return nil
	})
	return out, err
}

// --- Function ---

func encodeFunction(f *v1.Function) []byte {
	if f == nil {
		return nil
	}
	var out []byte
	switch {
	case f.Constant != nil:
		out = appendDoubleField(out, 1, *f.Constant)
	case f.Linear != nil:
		out = appendBytesField(out, 2, encodeLinear(f.Linear))
	case f.Quadratic != nil:
		out = appendBytesField(out, 3, encodeQuadratic(f.Quadratic))
	case f.Polynomial != nil:
		out = appendBytesField(out, 4, encodePolynomial(f.Polynomial))
	}
	return out
}

func decodeFunction(data []byte) (*v1.Function, error) {
	out := &v1.Function{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.Constant = &v
		case 2:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			lin, err := decodeLinear(payload)
			if err != nil {
				return err
			}
			out.Linear = lin
		case 3:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			quad, err := decodeQuadratic(payload)
			if err != nil {
				return err
			}
			out.Quadratic = quad
		case 4:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			poly, err := decodePolynomial(payload)
			if err != nil {
				return err
			}
			out.Polynomial = poly
		}
		return nil
	})
	return out, err
}

// --- string/string map, used by DecisionVariable/Constraint/RemovedConstraint parameters ---

func encodeStringMap(num protowire.Number, m map[string]string) []byte {
	var out []byte
	for k, v := range m {
		var entry []byte
		entry = appendStringField(entry, 1, k)
		entry = appendStringField(entry, 2, v)
		out = appendBytesField(out, num, entry)
	}
	return out
}

func decodeStringMapEntry(data []byte) (string, string, error) {
	var key, value string
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			key = v
		case 2:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			value = v
		}
		return nil
	})
	return key, value, err
}

// --- DecisionVariable ---

func encodeDecisionVariable(dv *v1.DecisionVariable) []byte {
	var out []byte
	out = appendVarintField(out, 1, dv.ID)
	out = appendVarintField(out, 2, uint64(dv.Kind))
	if dv.Bound != nil {
		out = appendBytesField(out, 3, encodeBound(dv.Bound))
	}
	if dv.SubstitutedValue != nil {
		out = appendDoubleField(out, 4, *dv.SubstitutedValue)
	}
	out = appendStringField(out, 5, dv.Name)
	out = appendStringField(out, 6, dv.Description)
	for _, s := range dv.Subscripts {
		out = appendVarintField(out, 7, protowire.EncodeZigZag(s))
	}
	out = append(out, encodeStringMap(8, dv.Parameters)...)
	return out
}

func decodeDecisionVariable(data []byte) (*v1.DecisionVariable, error) {
	out := &v1.DecisionVariable{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.ID = v
		case 2:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.Kind = v1.Kind(v)
		case 3:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			b, err := decodeBound(payload)
			if err != nil {
				return err
			}
			out.Bound = b
		case 4:
			v, err := consumeDoubleValue(raw)
			if err != nil {
				return err
			}
			out.SubstitutedValue = &v
		case 5:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.Name = v
		case 6:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.Description = v
		case 7:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.Subscripts = append(out.Subscripts, protowire.DecodeZigZag(v))
		case 8:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			k, v, err := decodeStringMapEntry(payload)
			if err != nil {
				return err
			}
			if out.Parameters == nil {
				out.Parameters = make(map[string]string)
			}
			out.Parameters[k] = v
		}
		return nil
	})
	return out, err
}

// --- Constraint ---

func encodeConstraint(c *v1.Constraint) []byte {
	var out []byte
	out = appendVarintField(out, 1, c.ID)
	if c.Function != nil {
		out = appendBytesField(out, 2, encodeFunction(c.Function))
	}
	out = appendVarintField(out, 3, uint64(c.Equality))
	out = appendStringField(out, 4, c.Name)
	out = appendStringField(out, 5, c.Description)
	for _, s := range c.Subscripts {
		out = appendVarintField(out, 6, protowire.EncodeZigZag(s))
	}
	out = append(out, encodeStringMap(7, c.Parameters)...)
	return out
}

func decodeConstraint(data []byte) (*v1.Constraint, error) {
	out := &v1.Constraint{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.ID = v
		case 2:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			f, err := decodeFunction(payload)
			if err != nil {
				return err
			}
			out.Function = f
		case 3:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.Equality = v1.Equality(v)
		case 4:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.Name = v
		case 5:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.Description = v
		case 6:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.Subscripts = append(out.Subscripts, protowire.DecodeZigZag(v))
		case 7:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			k, v, err := decodeStringMapEntry(payload)
			if err != nil {
				return err
			}
			if out.Parameters == nil {
				out.Parameters = make(map[string]string)
			}
			out.Parameters[k] = v
		}
		return nil
	})
	return out, err
}

// --- RemovedConstraint ---

func encodeRemovedConstraint(rc *v1.RemovedConstraint) []byte {
	var out []byte
	if rc.Constraint != nil {
		out = appendBytesField(out, 1, encodeConstraint(rc.Constraint))
	}
	out = appendStringField(out, 2, rc.RemovedReason)
	out = append(out, encodeStringMap(3, rc.RemovedReasonParameters)...)
	return out
}

func decodeRemovedConstraint(data []byte) (*v1.RemovedConstraint, error) {
	out := &v1.RemovedConstraint{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			c, err := decodeConstraint(payload)
			if err != nil {
				return err
			}
			out.Constraint = c
		case 2:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.RemovedReason = v
		case 3:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			k, v, err := decodeStringMapEntry(payload)
			if err != nil {
				return err
			}
			if out.RemovedReasonParameters == nil {
				out.RemovedReasonParameters = make(map[string]string)
			}
			out.RemovedReasonParameters[k] = v
		}
		return nil
	})
	return out, err
}

// --- Instance ---

func encodeInstance(inst *v1.Instance) []byte {
	var out []byte
	for _, dv := range inst.DecisionVariables {
		out = appendBytesField(out, 1, encodeDecisionVariable(dv))
	}
	if inst.Objective != nil {
		out = appendBytesField(out, 2, encodeFunction(inst.Objective))
	}
	for _, c := range inst.Constraints {
		out = appendBytesField(out, 3, encodeConstraint(c))
	}
	for _, rc := range inst.RemovedConstraints {
		out = appendBytesField(out, 4, encodeRemovedConstraint(rc))
	}
	out = appendVarintField(out, 5, uint64(inst.Sense))
	out = appendStringField(out, 6, inst.Description)
	return out
}

func decodeInstance(data []byte) (*v1.Instance, error) {
	out := &v1.Instance{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			dv, err := decodeDecisionVariable(payload)
			if err != nil {
				return err
			}
			out.DecisionVariables = append(out.DecisionVariables, dv)
		case 2:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			f, err := decodeFunction(payload)
			if err != nil {
				return err
			}
			out.Objective = f
		case 3:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			c, err := decodeConstraint(payload)
			if err != nil {
				return err
			}
			out.Constraints = append(out.Constraints, c)
		case 4:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			rc, err := decodeRemovedConstraint(payload)
			if err != nil {
				return err
			}
			out.RemovedConstraints = append(out.RemovedConstraints, rc)
		case 5:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.Sense = v1.Sense(v)
		case 6:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.Description = v
		}
		return nil
	})
	return out, err
}

// InstanceToBytes encodes inst using the Protocol-Buffers-compatible
// encoding described by the tag numbers on v1.Instance and its fields.
func InstanceToBytes(inst *v1.Instance) []byte { return encodeInstance(inst) }

// InstanceFromBytes decodes an Instance previously produced by
// InstanceToBytes (or a compatible producer).
func InstanceFromBytes(data []byte) (*v1.Instance, error) { return decodeInstance(data) }

// --- Parameter / ParametricInstance ---

func encodeParameter(p *v1.Parameter) []byte {
	var out []byte
	out = appendVarintField(out, 1, p.ID)
	out = appendStringField(out, 2, p.Name)
	if p.Bound != nil {
		out = appendBytesField(out, 3, encodeBound(p.Bound))
	}
	out = appendStringField(out, 4, p.Description)
	return out
}

func decodeParameter(data []byte) (*v1.Parameter, error) {
	out := &v1.Parameter{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.ID = v
		case 2:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.Name = v
		case 3:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			b, err := decodeBound(payload)
			if err != nil {
				return err
			}
			out.Bound = b
		case 4:
			v, err := consumeStringValue(raw)
			if err != nil {
				return err
			}
			out.Description = v
		}
		return nil
	})
	return out, err
}

// ParametricInstanceToBytes encodes pi.
func ParametricInstanceToBytes(pi *v1.ParametricInstance) []byte {
	var out []byte
	if pi.Instance != nil {
		out = appendBytesField(out, 1, encodeInstance(pi.Instance))
	}
	for _, p := range pi.Parameters {
		out = appendBytesField(out, 2, encodeParameter(p))
	}
	return out
}

// ParametricInstanceFromBytes decodes a ParametricInstance.
func ParametricInstanceFromBytes(data []byte) (*v1.ParametricInstance, error) {
	out := &v1.ParametricInstance{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			inst, err := decodeInstance(payload)
			if err != nil {
				return err
			}
			out.Instance = inst
		case 2:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			p, err := decodeParameter(payload)
			if err != nil {
				return err
			}
			out.Parameters = append(out.Parameters, p)
		}
		return nil
	})
	return out, err
}

// --- State ---

func encodeState(s *v1.State) []byte {
	var out []byte
	for id, v := range s.Entries {
		var entry []byte
		entry = appendVarintField(entry, 1, id)
		entry = appendDoubleField(entry, 2, v)
		out = appendBytesField(out, 1, entry)
	}
	return out
}

func decodeState(data []byte) (*v1.State, error) {
	out := &v1.State{Entries: make(map[uint64]float64)}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		if num != 1 {
			return nil
		}
		payload, err := consumeBytesValue(raw)
		if err != nil {
			return err
		}
		var id uint64
		var v float64
		entryErr := forEachField(payload, func(num protowire.Number, typ protowire.Type, raw []byte) error {
			switch num {
			case 1:
				x, err := consumeVarintValue(raw)
				if err != nil {
					return err
				}
				id = x
			case 2:
				x, err := consumeDoubleValue(raw)
				if err != nil {
					return err
				}
				v = x
			}
			return nil
		})
		if entryErr != nil {
			return entryErr
		}
		out.Entries[id] = v
		return nil
	})
	return out, err
}

// StateToBytes encodes s.
func StateToBytes(s *v1.State) []byte { return encodeState(s) }

// StateFromBytes decodes a State.
func StateFromBytes(data []byte) (*v1.State, error) { return decodeState(data) }

// --- Samples ---

func encodeSamplesEntry(e v1.SamplesEntry) []byte {
	var out []byte
	if e.State != nil {
		out = appendBytesField(out, 1, encodeState(e.State))
	}
	for _, id := range e.IDs {
		out = appendVarintField(out, 2, id)
	}
	return out
}

func decodeSamplesEntry(data []byte) (v1.SamplesEntry, error) {
	var out v1.SamplesEntry
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			s, err := decodeState(payload)
			if err != nil {
				return err
			}
			out.State = s
		case 2:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.IDs = append(out.IDs, v)
		}
		return nil
	})
	return out, err
}

// SamplesToBytes encodes s.
func SamplesToBytes(s *v1.Samples) []byte {
	var out []byte
	for _, e := range s.Entries {
		out = appendBytesField(out, 1, encodeSamplesEntry(e))
	}
	return out
}

// SamplesFromBytes decodes a Samples.
func SamplesFromBytes(data []byte) (*v1.Samples, error) {
	out := &v1.Samples{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		if num != 1 {
			return nil
		}
		payload, err := consumeBytesValue(raw)
		if err != nil {
			return err
		}
		e, err := decodeSamplesEntry(payload)
		if err != nil {
			return err
		}
		out.Entries = append(out.Entries, e)
		return nil
	})
	return out, err
}

// --- Solution ---

// SolutionToBytes encodes sol.
func SolutionToBytes(sol *v1.Solution) []byte {
	var out []byte
	if sol.State != nil {
		out = appendBytesField(out, 1, encodeState(sol.State))
	}
	out = appendVarintField(out, 2, uint64(sol.Optimality))
	out = appendVarintField(out, 3, uint64(sol.Relaxation))
	return out
}

// SolutionFromBytes decodes a Solution.
func SolutionFromBytes(data []byte) (*v1.Solution, error) {
	out := &v1.Solution{}
	err := forEachField(data, func(num protowire.Number, typ protowire.Type, raw []byte) error {
		switch num {
		case 1:
			payload, err := consumeBytesValue(raw)
			if err != nil {
				return err
			}
			s, err := decodeState(payload)
			if err != nil {
				return err
			}
			out.State = s
		case 2:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.Optimality = v1.Optimality(v)
		case 3:
			v, err := consumeVarintValue(raw)
			if err != nil {
				return err
			}
			out.Relaxation = v1.Relaxation(v)
		}
		return nil
	})
	return out, err
}
