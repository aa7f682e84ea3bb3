package evaluate

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Jij-Inc/ommx-sub001/ids"
)

// Samples groups a set of SampleIDs by the State each one carries, so that a
// multi-sample evaluation can evaluate each distinct State once and fan the
// result back out to every SampleID that shares it. Grouping is by exact
// value (bitwise float equality over every assigned variable); two states
// that are merely atol-close are not merged.
type Samples struct {
	groups []sampleGroup
}

type sampleGroup struct {
	state State
	ids   []ids.SampleID
}

// NewSamples groups entries by shared State. The resulting Samples is
// independent of entries' (map) iteration order: per-SampleID results are
// always the same regardless of how groups were discovered, though the
// groups themselves are not ordered by any contract.
func NewSamples(entries map[ids.SampleID]State) Samples {
	byKey := make(map[string]*sampleGroup, len(entries))
	order := make([]string, 0, len(entries))

	sampleIDs := make(ids.SampleIDs, 0, len(entries))
	for id := range entries {
		sampleIDs = append(sampleIDs, id)
	}
	sort.Sort(sampleIDs)

	for _, id := range sampleIDs {
		state := entries[id]
		key := canonicalStateKey(state)
		g, ok := byKey[key]
		if !ok {
			g = &sampleGroup{state: state}
			byKey[key] = g
			order = append(order, key)
		}
		g.ids = append(g.ids, id)
	}

	groups := make([]sampleGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	return Samples{groups: groups}
}

// Len returns the number of SampleIDs across all groups.
func (s Samples) Len() int {
	n := 0
	for _, g := range s.groups {
		n += len(g.ids)
	}
	return n
}

func canonicalStateKey(state State) string {
	varIDs := make(ids.VariableIDs, 0, len(state))
	for id := range state {
		varIDs = append(varIDs, id)
	}
	sort.Sort(varIDs)

	var b strings.Builder
	for _, id := range varIDs {
		b.WriteString(strconv.FormatUint(uint64(id), 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(math.Float64bits(state[id]), 16))
		b.WriteByte(';')
	}
	return b.String()
}

// Sampled holds one T per SampleID, the fan-out result of evaluating a
// Samples grouping.
type Sampled[T any] map[ids.SampleID]T

// EvaluateSamples runs evalFn once per distinct State in samples and fans
// the result out to every SampleID sharing that State. It returns the first
// error encountered, if any.
func EvaluateSamples[T any](samples Samples, evalFn func(State) (T, error)) (Sampled[T], error) {
	out := make(Sampled[T], samples.Len())
	for _, g := range samples.groups {
		v, err := evalFn(g.state)
		if err != nil {
			return nil, err
		}
		for _, id := range g.ids {
			out[id] = v
		}
	}
	return out, nil
}
