package function

import "strconv"

// String renders f using the same canonical form as PolynomialBase.String:
// descending degree, lexicographic within a degree, elided unit
// coefficients, and "0" for Zero.
func (f Function) String() string {
	switch f.kind {
	case Zero:
		return "0"
	case Constant:
		return strconv.FormatFloat(f.constant, 'g', -1, 64)
	case LinearKind:
		return f.linear.String()
	case QuadraticKind:
		return f.quad.String()
	default:
		return f.poly.String()
	}
}
