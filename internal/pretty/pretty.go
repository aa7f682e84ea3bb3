// Package pretty holds canonical, order-insensitive display helpers shared
// by the polynomial and function packages, so the two packages render terms
// identically (descending degree, lexicographic within degree, elided unit
// coefficients).
package pretty

import (
	"sort"
	"strconv"
	"strings"
)

// Term is one monomial/coefficient pair ready for canonical rendering.
type Term struct {
	Degree  int
	Key     string // sorted, stable rendering of the monomial's variable IDs
	Display string // the monomial's own String() text, e.g. "v1*v2"
	Coeff   float64
}

// Polynomial renders terms in descending degree, lexicographic by Key within
// a degree, eliding a coefficient of 1 (or -1, printed as a bare "-"), and
// printing "0" for an empty term list.
func Polynomial(terms []Term) string {
	if len(terms) == 0 {
		return "0"
	}
	sorted := append([]Term(nil), terms...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Degree != sorted[j].Degree {
			return sorted[i].Degree > sorted[j].Degree
		}
		return sorted[i].Key < sorted[j].Key
	})

	var b strings.Builder
	for i, t := range sorted {
		sign, mag := "+", t.Coeff
		if mag < 0 {
			sign, mag = "-", -mag
		}
		if i == 0 {
			if sign == "-" {
				b.WriteString("-")
			}
		} else {
			b.WriteString(" ")
			b.WriteString(sign)
			b.WriteString(" ")
		}
		switch {
		case t.Degree == 0:
			b.WriteString(formatFloat(mag))
		case mag == 1:
			b.WriteString(t.Display)
		default:
			b.WriteString(formatFloat(mag))
			b.WriteString("*")
			b.WriteString(t.Display)
		}
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
