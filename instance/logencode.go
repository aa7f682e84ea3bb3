package instance

import (
	"fmt"
	"math"

	"github.com/Jij-Inc/ommx-sub001/atol"
	"github.com/Jij-Inc/ommx-sub001/bound"
	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/decision"
	"github.com/Jij-Inc/ommx-sub001/function"
	"github.com/Jij-Inc/ommx-sub001/ids"
	"github.com/Jij-Inc/ommx-sub001/monomial"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
)

// logEncodeName is the display name every bit variable LogEncode allocates
// shares; subscriptsMetadataKey mirrors solution.ExtractDecisionVariables'
// own metadata convention so the bits it produces are extractable by name.
const (
	logEncodeName         = "ommx.log_encode"
	subscriptsMetadataKey = "subscripts"
)

// LogEncode replaces an Integer decision variable with a logarithmic-size
// set of fresh Binary decision variables, returning the updated Instance
// and the linear expression (ℓ + Σ cᵢ·bᵢ) that was substituted in place of
// id.
//
//   - The variable must be Integer with a finite bound [lower, upper].
//   - ℓ = ⌈lower⌉, u = ⌊upper⌋, Δ = u - ℓ.
//   - Δ < 0: no integer point is feasible, ErrNoFeasibleInteger.
//   - Δ = 0: id is forced to ℓ; substitute the constant and return it.
//   - Otherwise allocate n = ⌈log2(Δ+1)⌉ fresh Binary variables with
//     coefficients 2^0, ..., 2^(n-2), Δ-2^(n-1)+1 (the last coefficient
//     reduced so the maximum attainable sum is exactly Δ), substitute id by
//     ℓ + Σ cᵢ·bᵢ.
func (i Instance) LogEncode(id ids.VariableID, tol atol.ATol) (Instance, function.Function, error) {
	dv, ok := i.decisionVariables[id]
	if !ok {
		return Instance{}, function.Function{}, &Error{ID: id, Err: ErrUnknownVariable}
	}
	if dv.Kind() != bound.Integer {
		return Instance{}, function.Function{}, &Error{ID: id, Err: ErrNotInteger}
	}

	b := dv.Bound()
	lower, upper := b.Lower(), b.Upper()
	if math.IsInf(lower, -1) || math.IsInf(upper, 1) {
		return Instance{}, function.Function{}, &Error{ID: id, Err: ErrNonFiniteBound}
	}

	l := math.Ceil(lower)
	u := math.Floor(upper)
	delta := u - l
	if delta < 0 {
		return Instance{}, function.Function{}, &Error{ID: id, Err: ErrNoFeasibleInteger}
	}

	if delta == 0 {
		replacement, err := function.FromConstant(l)
		if err != nil {
			return Instance{}, function.Function{}, err
		}
		out, err := i.SubstituteOne(id, replacement)
		if err != nil {
			return Instance{}, function.Function{}, err
		}
		return out, replacement, nil
	}

	n := int(math.Ceil(math.Log2(delta + 1)))
	out := i
	lin := polynomial.New[monomial.LinearMonomial]()
	for k := 0; k < n; k++ {
		coeff := math.Pow(2, float64(k))
		if k == n-1 {
			coeff = delta - math.Pow(2, float64(n-1)) + 1
		}
		var err error
		var bitID ids.VariableID
		out, bitID, err = out.NewDecisionVariable(bound.Binary, bound.OfBinary(), nil, tol,
			decision.WithName(logEncodeName),
			decision.WithMetadataEntry(subscriptsMetadataKey, fmt.Sprintf("%d,%d", uint64(id), k)),
		)
		if err != nil {
			return Instance{}, function.Function{}, err
		}
		lin = lin.AddTerm(monomial.Variable(bitID), coefficient.MustFrom(coeff))
	}

	replacement := function.FromLinear(lin).AddOffset(offsetOf(l))
	out, err := out.SubstituteOne(id, replacement)
	if err != nil {
		return Instance{}, function.Function{}, err
	}
	return out, replacement, nil
}

func offsetOf(x float64) coefficient.Offset {
	o, err := coefficient.OffsetTryFrom(x)
	if err != nil {
		panic(err)
	}
	return o
}
