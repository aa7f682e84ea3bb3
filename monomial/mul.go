package monomial

// MulLinearLinear computes the product of two LinearMonomials, promoting to
// QuadraticMonomial (spec.md §4.3: "Linear*Linear -> Quadratic").
func MulLinearLinear(a, b LinearMonomial) QuadraticMonomial {
	ida, aIsVar := a.VariableID()
	idb, bIsVar := b.VariableID()
	switch {
	case !aIsVar && !bIsVar:
		return ConstantQuadratic()
	case aIsVar && !bIsVar:
		return LinearQuadratic(ida)
	case !aIsVar && bIsVar:
		return LinearQuadratic(idb)
	default:
		return Pair(ida, idb)
	}
}

// MulQuadraticLinear computes the product of a QuadraticMonomial and a
// LinearMonomial, promoting to MonomialDyn (degree can reach 3).
func MulQuadraticLinear(a QuadraticMonomial, b LinearMonomial) MonomialDyn {
	left := FromQuadratic(a)
	right := FromLinear(b)
	return mulDyn(left, right)
}

// MulLinearQuadratic is the commuted form of MulQuadraticLinear.
func MulLinearQuadratic(a LinearMonomial, b QuadraticMonomial) MonomialDyn {
	return MulQuadraticLinear(b, a)
}

// MulQuadraticQuadratic computes the product of two QuadraticMonomials,
// promoting to MonomialDyn (degree can reach 4).
func MulQuadraticQuadratic(a, b QuadraticMonomial) MonomialDyn {
	return mulDyn(FromQuadratic(a), FromQuadratic(b))
}

// MulDyn computes the product of two arbitrary-degree monomials.
func MulDyn(a, b MonomialDyn) MonomialDyn { return mulDyn(a, b) }

// MulLinearDyn multiplies a LinearMonomial into a MonomialDyn.
func MulLinearDyn(a LinearMonomial, b MonomialDyn) MonomialDyn {
	return mulDyn(FromLinear(a), b)
}

// MulQuadraticDyn multiplies a QuadraticMonomial into a MonomialDyn.
func MulQuadraticDyn(a QuadraticMonomial, b MonomialDyn) MonomialDyn {
	return mulDyn(FromQuadratic(a), b)
}

func mulDyn(a, b MonomialDyn) MonomialDyn {
	combined := append(append([]byte(nil), []byte(a)...), []byte(b)...)
	m := MonomialDyn(combined)
	return Dyn(m.multiset()...)
}
