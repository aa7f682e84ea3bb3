package parse_test

import (
	"errors"
	"testing"

	"github.com/Jij-Inc/ommx-sub001/evaluate"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/instance"
	"github.com/Jij-Inc/ommx-sub001/parse"
	"github.com/Jij-Inc/ommx-sub001/v1"
	"github.com/stretchr/testify/require"
)

func wireLinearInstance() *v1.Instance {
	return &v1.Instance{
		Sense: v1.SenseMinimize,
		DecisionVariables: []*v1.DecisionVariable{
			{ID: 0, Kind: v1.KindContinuous, Bound: &v1.Bound{Lower: 0, Upper: 10}, Name: "x"},
		},
		Objective: &v1.Function{Linear: &v1.Linear{
			Terms: []v1.LinearTerm{{ID: 0, Coefficient: 1}},
		}},
		Constraints: []*v1.Constraint{
			{
				ID:       0,
				Equality: v1.EqualityLessThanOrEqualToZero,
				Function: &v1.Function{Linear: &v1.Linear{
					Terms:    []v1.LinearTerm{{ID: 0, Coefficient: 1}},
					Constant: -5,
				}},
			},
		},
		Description: "box",
	}
}

func TestInstanceRoundTripsThroughWireBytes(t *testing.T) {
	t.Parallel()

	wire := wireLinearInstance()
	data := parse.InstanceToBytes(wire)

	decoded, err := parse.InstanceFromBytes(data)
	require.NoError(t, err)
	require.Equal(t, wire.Sense, decoded.Sense)
	require.Equal(t, wire.Description, decoded.Description)
	require.Len(t, decoded.DecisionVariables, 1)
	require.Equal(t, uint64(0), decoded.DecisionVariables[0].ID)
	require.Equal(t, 10.0, decoded.DecisionVariables[0].Bound.Upper)
	require.NotNil(t, decoded.Objective.Linear)
	require.Len(t, decoded.Constraints, 1)
}

func TestConvertInstanceBuildsEvaluableInstance(t *testing.T) {
	t.Parallel()

	wire := wireLinearInstance()
	inst, err := parse.ConvertInstance(wire)
	require.NoError(t, err)
	require.Equal(t, instance.Minimize, inst.Sense())

	state := evaluate.State{ids.VariableID(0): 3}
	populated, err := inst.PopulatedState(state)
	require.NoError(t, err)
	require.Equal(t, 3.0, populated[ids.VariableID(0)])
}

func TestConvertInstanceRejectsUnspecifiedSense(t *testing.T) {
	t.Parallel()

	wire := wireLinearInstance()
	wire.Sense = v1.SenseUnspecified

	_, err := parse.ConvertInstance(wire)
	require.Error(t, err)
	require.True(t, errors.Is(err, parse.ErrUnspecifiedEnum))

	var te *parse.TracebackError
	require.True(t, errors.As(err, &te))
	require.NotEmpty(t, te.Frames)

	want := "Traceback for OMMX Message parse error:\n" +
		"└─ommx.v1.Instance[sense]\n" +
		"parse: enum left at UNSPECIFIED"
	require.Equal(t, want, te.Error())
}

func TestConvertInstanceRejectsUnsetFunctionOneof(t *testing.T) {
	t.Parallel()

	wire := wireLinearInstance()
	wire.Objective = &v1.Function{}

	_, err := parse.ConvertInstance(wire)
	require.Error(t, err)
	require.True(t, errors.Is(err, parse.ErrUnsupportedV1Function))
}

func TestConvertInstanceRejectsDuplicateVariableID(t *testing.T) {
	t.Parallel()

	wire := wireLinearInstance()
	wire.DecisionVariables = append(wire.DecisionVariables, &v1.DecisionVariable{
		ID: 0, Kind: v1.KindContinuous, Bound: &v1.Bound{Lower: 0, Upper: 1},
	})

	_, err := parse.ConvertInstance(wire)
	require.Error(t, err)
	require.True(t, errors.Is(err, parse.ErrDuplicatedVariableID))
}

func TestParseSamplesRejectsDuplicateSampleID(t *testing.T) {
	t.Parallel()

	wire := &v1.Samples{
		Entries: []v1.SamplesEntry{
			{State: &v1.State{Entries: map[uint64]float64{0: 1}}, IDs: []uint64{0}},
			{State: &v1.State{Entries: map[uint64]float64{0: 2}}, IDs: []uint64{0}},
		},
	}
	data := parse.SamplesToBytes(wire)

	_, err := parse.ParseSamples(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, parse.ErrDuplicatedSampleID))
}

func TestParseSamplesGroupsSharedState(t *testing.T) {
	t.Parallel()

	wire := &v1.Samples{
		Entries: []v1.SamplesEntry{
			{State: &v1.State{Entries: map[uint64]float64{0: 1}}, IDs: []uint64{0, 1}},
			{State: &v1.State{Entries: map[uint64]float64{0: 2}}, IDs: []uint64{2}},
		},
	}
	data := parse.SamplesToBytes(wire)

	samples, err := parse.ParseSamples(data)
	require.NoError(t, err)
	require.Equal(t, 3, samples.Len())
}

func TestStateRoundTripsThroughWireBytes(t *testing.T) {
	t.Parallel()

	wire := &v1.State{Entries: map[uint64]float64{0: 1.5, 1: -2.5}}
	data := parse.StateToBytes(wire)

	decoded, err := parse.StateFromBytes(data)
	require.NoError(t, err)
	require.Equal(t, wire.Entries, decoded.Entries)
}
