package function

import (
	"github.com/Jij-Inc/ommx-sub001/coefficient"
	"github.com/Jij-Inc/ommx-sub001/polynomial"
)

func maxKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

func (f Function) constantValue() float64 {
	v, _ := f.AsConstant()
	return v
}

// Add returns a+b, promoting to the wider operand's variant.
func Add(a, b Function) Function {
	switch maxKind(a.kind, b.kind) {
	case Zero, Constant:
		return fromConstantValue(a.constantValue() + b.constantValue())
	case LinearKind:
		return FromLinear(a.toLinearPoly().Add(b.toLinearPoly()))
	case QuadraticKind:
		return FromQuadratic(a.toQuadraticPoly().Add(b.toQuadraticPoly()))
	default:
		return FromPolynomial(a.toPolynomialPoly().Add(b.toPolynomialPoly()))
	}
}

// Sub returns a-b, promoting to the wider operand's variant.
func Sub(a, b Function) Function {
	switch maxKind(a.kind, b.kind) {
	case Zero, Constant:
		return fromConstantValue(a.constantValue() - b.constantValue())
	case LinearKind:
		return FromLinear(a.toLinearPoly().Sub(b.toLinearPoly()))
	case QuadraticKind:
		return FromQuadratic(a.toQuadraticPoly().Sub(b.toQuadraticPoly()))
	default:
		return FromPolynomial(a.toPolynomialPoly().Sub(b.toPolynomialPoly()))
	}
}

// Neg returns -f.
func (f Function) Neg() Function {
	switch f.kind {
	case Zero:
		return f
	case Constant:
		return fromConstantValue(-f.constant)
	case LinearKind:
		return FromLinear(f.linear.Neg())
	case QuadraticKind:
		return FromQuadratic(f.quad.Neg())
	default:
		return FromPolynomial(f.poly.Neg())
	}
}

// ScaleCoefficient returns f*c, every coefficient multiplied by c.
func (f Function) ScaleCoefficient(c coefficient.Coefficient) Function {
	switch f.kind {
	case Zero:
		return f
	case Constant:
		return fromConstantValue(f.constant * c.Float64())
	case LinearKind:
		return FromLinear(f.linear.ScaleCoefficient(c))
	case QuadraticKind:
		return FromQuadratic(f.quad.ScaleCoefficient(c))
	default:
		return FromPolynomial(f.poly.ScaleCoefficient(c))
	}
}

// AddOffset returns f+o, adding to the constant term.
func (f Function) AddOffset(o coefficient.Offset) Function {
	switch f.kind {
	case Zero:
		return fromConstantValue(o.Float64())
	case Constant:
		return fromConstantValue(f.constant + o.Float64())
	case LinearKind:
		return FromLinear(f.linear.AddOffset(o))
	case QuadraticKind:
		return FromQuadratic(f.quad.AddOffset(o))
	default:
		return FromPolynomial(f.poly.AddOffset(o))
	}
}

// Mul returns a*b. Zero annihilates; Constant*Constant multiplies; Constant*X
// scales X; otherwise the product's degree is the sum of the operands'
// degrees, promoting the monomial kind the way the monomial and polynomial
// packages' Mul* helpers do (Linear*Linear -> Quadratic, Quadratic*Linear ->
// Polynomial, and so on).
func Mul(a, b Function) Function {
	if a.kind == Zero || b.kind == Zero {
		return Function{}
	}
	if a.kind == Constant && b.kind == Constant {
		return fromConstantValue(a.constant * b.constant)
	}
	if a.kind == Constant {
		return b.ScaleCoefficient(coefficient.MustFrom(a.constant))
	}
	if b.kind == Constant {
		return a.ScaleCoefficient(coefficient.MustFrom(b.constant))
	}
	switch {
	case a.kind == LinearKind && b.kind == LinearKind:
		return FromQuadratic(polynomial.MulLinearLinear(a.linear, b.linear))
	case a.kind == LinearKind && b.kind == QuadraticKind:
		return FromPolynomial(polynomial.MulLinearQuadratic(a.linear, b.quad))
	case a.kind == QuadraticKind && b.kind == LinearKind:
		return FromPolynomial(polynomial.MulQuadraticLinear(a.quad, b.linear))
	case a.kind == QuadraticKind && b.kind == QuadraticKind:
		return FromPolynomial(polynomial.MulQuadraticQuadratic(a.quad, b.quad))
	case a.kind == LinearKind && b.kind == PolynomialKind:
		return FromPolynomial(polynomial.MulLinearPolynomial(a.linear, b.poly))
	case a.kind == PolynomialKind && b.kind == LinearKind:
		return FromPolynomial(polynomial.MulPolynomialLinear(a.poly, b.linear))
	case a.kind == QuadraticKind && b.kind == PolynomialKind:
		return FromPolynomial(polynomial.MulQuadraticPolynomial(a.quad, b.poly))
	case a.kind == PolynomialKind && b.kind == QuadraticKind:
		return FromPolynomial(polynomial.MulPolynomialQuadratic(a.poly, b.quad))
	default:
		return FromPolynomial(polynomial.MulPolynomial(a.poly, b.poly))
	}
}
