package mvpoly

import "github.com/real-cad/cad/rational"

// Term is a monomial with a rational coefficient.
type Term struct {
	Coeff rational.Rational
	Mono  Monomial
}

// ZeroTerm is the zero term.
var ZeroTerm = Term{Coeff: rational.Zero, Mono: One}

// IsZero reports whether t has a zero coefficient.
func (t Term) IsZero() bool { return t.Coeff.IsZero() }

// Divides reports whether t's monomial divides o's monomial.
func (t Term) Divides(o Term) bool { return t.Mono.Divides(o.Mono) }

// Divide returns o/t as a Term. Panics if t does not divide o.
func (t Term) Divide(o Term) Term {
	return Term{Coeff: o.Coeff.Quo(t.Coeff), Mono: t.Mono.Divide(o.Mono)}
}

// Mul returns t*o.
func (t Term) Mul(o Term) Term {
	return Term{Coeff: t.Coeff.Mul(o.Coeff), Mono: t.Mono.Mul(o.Mono)}
}

// Neg returns -t.
func (t Term) Neg() Term { return Term{Coeff: t.Coeff.Neg(), Mono: t.Mono} }

// LCMOver returns (lcm(t.Mono, o.Mono) / t.Mono) with coefficient
// 1/t.Coeff, the factor that turns t into the lcm term in an
// S-polynomial.
func (t Term) LCMOver(o Term) Term {
	l := t.Mono.LCM(o.Mono)
	return Term{Coeff: rational.One.Quo(t.Coeff), Mono: t.Mono.Divide(l)}
}
