// Package univariate provides a one-main-variable view over
// mvpoly.Polynomial, plus a dense exact-rational specialization used by
// the Sturm and root-isolation layers.
package univariate

import (
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

// Polynomial is an mvpoly.Polynomial viewed as univariate in MainVar,
// with coefficients that may involve other variables.
type Polynomial struct {
	mainVar variable.Variable
	poly    mvpoly.Polynomial
}

// New wraps p as a univariate polynomial in v.
func New(v variable.Variable, p mvpoly.Polynomial) Polynomial {
	return Polynomial{mainVar: v, poly: p}
}

// MainVar returns the designated main variable.
func (u Polynomial) MainVar() variable.Variable { return u.mainVar }

// Underlying returns the backing mvpoly.Polynomial.
func (u Polynomial) Underlying() mvpoly.Polynomial { return u.poly }

// IsZero reports whether u is the zero polynomial.
func (u Polynomial) IsZero() bool { return u.poly.IsZero() }

// Degree returns the degree of u in its main variable.
func (u Polynomial) Degree() int { return u.poly.DegreeIn(u.mainVar) }

// LDegree returns the lowest degree in the main variable with a nonzero
// coefficient.
func (u Polynomial) LDegree() int { return u.poly.LDegreeIn(u.mainVar) }

// Coeff returns the coefficient of MainVar()^degree, a Polynomial in
// the remaining variables.
func (u Polynomial) Coeff(degree int) mvpoly.Polynomial {
	return u.poly.CoeffIn(u.mainVar, degree)
}

// LCoeff returns Coeff(Degree()).
func (u Polynomial) LCoeff() mvpoly.Polynomial { return u.poly.LCoeffIn(u.mainVar) }

// TCoeff returns Coeff(LDegree()).
func (u Polynomial) TCoeff() mvpoly.Polynomial { return u.poly.TCoeffIn(u.mainVar) }

// Coeffs returns the coefficients indexed 0..Degree() ascending.
func (u Polynomial) Coeffs() []mvpoly.Polynomial { return u.poly.CoeffsIn(u.mainVar) }

// Diff returns the derivative of u in its main variable.
func (u Polynomial) Diff() Polynomial {
	return Polynomial{mainVar: u.mainVar, poly: u.poly.Diff(u.mainVar)}
}

// Prem returns the pseudo-remainder of u by o. Panics if the operands
// have different main variables.
func (u Polynomial) Prem(o Polynomial) Polynomial {
	u.checkSameMainVar(o)
	return Polynomial{mainVar: u.mainVar, poly: u.poly.Prem(o.poly, u.mainVar)}
}

// Quo returns the pseudo-quotient of u by o.
func (u Polynomial) Quo(o Polynomial) Polynomial {
	u.checkSameMainVar(o)
	return Polynomial{mainVar: u.mainVar, poly: u.poly.Quo(o.poly, u.mainVar)}
}

// Resultant returns the resultant of u and o in the main variable.
func (u Polynomial) Resultant(o Polynomial) mvpoly.Polynomial {
	u.checkSameMainVar(o)
	return mvpoly.Resultant(u.poly, o.poly, u.mainVar)
}

// GCD returns a GCD of u and o in the main variable.
func (u Polynomial) GCD(o Polynomial) Polynomial {
	u.checkSameMainVar(o)
	return Polynomial{mainVar: u.mainVar, poly: mvpoly.GCD(u.poly, o.poly, u.mainVar)}
}

// SquareFreePart returns u / gcd(u, u') in the main variable.
func (u Polynomial) SquareFreePart() Polynomial {
	return Polynomial{mainVar: u.mainVar, poly: u.poly.SquareFreePartIn(u.mainVar)}
}

// PrincipalSubresultantCoefficients returns the principal subresultant
// coefficients of u and o in the main variable.
func (u Polynomial) PrincipalSubresultantCoefficients(o Polynomial) []mvpoly.Polynomial {
	u.checkSameMainVar(o)
	return mvpoly.PrincipalSubresultantCoefficients(u.poly, o.poly, u.mainVar)
}

// Subs substitutes val for the main variable.
func (u Polynomial) Subs(val mvpoly.Polynomial) mvpoly.Polynomial {
	return u.poly.Subs(u.mainVar, val)
}

// Content returns the content of u.
func (u Polynomial) Content() rational.Rational { return u.poly.Content() }

// PrimitivePart returns u / u.Content().
func (u Polynomial) PrimitivePart() Polynomial {
	return Polynomial{mainVar: u.mainVar, poly: u.poly.PrimitivePart()}
}

// IsPolynomialIn reports whether u is a polynomial in v.
func (u Polynomial) IsPolynomialIn(v variable.Variable) bool { return u.poly.IsPolynomialIn(v) }

// IsRationalPolynomialIn reports whether u, viewed as univariate in v,
// has purely rational coefficients.
func (u Polynomial) IsRationalPolynomialIn(v variable.Variable) bool {
	return u.poly.IsRationalPolynomialIn(v)
}

func (u Polynomial) checkSameMainVar(o Polynomial) {
	if !u.mainVar.Equal(o.mainVar) {
		panic("univariate: operands have different main variables")
	}
}
