package polynomial

import "github.com/Jij-Inc/ommx-sub001/internal/pretty"

type displayTerm struct {
	degree int
	key    string
	coeff  float64
}

func renderTerms(terms []displayTerm) string {
	pt := make([]pretty.Term, len(terms))
	for i, t := range terms {
		pt[i] = pretty.Term{Degree: t.degree, Key: t.key, Display: t.key, Coeff: t.coeff}
	}
	return pretty.Polynomial(pt)
}
