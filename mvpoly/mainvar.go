package mvpoly

import (
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

// DegreeIn returns the degree of p viewed as univariate in v with
// coefficients in the remaining variables. Returns 0 if v does not
// appear in p.
func (p Polynomial) DegreeIn(v variable.Variable) int {
	d := 0
	for _, t := range p.terms {
		if e := t.Mono.ExpOf(v); e > d {
			d = e
		}
	}
	return d
}

// LDegreeIn returns the lowest degree in v among p's terms. Returns 0
// for the zero polynomial.
func (p Polynomial) LDegreeIn(v variable.Variable) int {
	if p.IsZero() {
		return 0
	}
	d := p.terms[0].Mono.ExpOf(v)
	for _, t := range p.terms[1:] {
		if e := t.Mono.ExpOf(v); e < d {
			d = e
		}
	}
	return d
}

// CoeffIn returns the coefficient of v^degree when p is viewed as
// univariate in v, as a Polynomial in the remaining variables.
func (p Polynomial) CoeffIn(v variable.Variable, degree int) Polynomial {
	var terms []Term
	for _, t := range p.terms {
		if t.Mono.ExpOf(v) != degree {
			continue
		}
		rest := make(map[variable.Variable]int)
		for _, ve := range t.Mono.exps {
			if !ve.v.Equal(v) {
				rest[ve.v] = ve.e
			}
		}
		terms = append(terms, Term{Coeff: t.Coeff, Mono: NewMonomial(rest)})
	}
	return FromTerms(p.order, terms...)
}

// LCoeffIn returns CoeffIn(v, DegreeIn(v)).
func (p Polynomial) LCoeffIn(v variable.Variable) Polynomial {
	return p.CoeffIn(v, p.DegreeIn(v))
}

// TCoeffIn returns CoeffIn(v, LDegreeIn(v)).
func (p Polynomial) TCoeffIn(v variable.Variable) Polynomial {
	return p.CoeffIn(v, p.LDegreeIn(v))
}

// CoeffsIn returns the coefficients of p viewed as univariate in v,
// indexed by degree from 0 to DegreeIn(v) inclusive.
func (p Polynomial) CoeffsIn(v variable.Variable) []Polynomial {
	d := p.DegreeIn(v)
	out := make([]Polynomial, d+1)
	for i := 0; i <= d; i++ {
		out[i] = Zero(p.order)
	}
	for _, t := range p.terms {
		e := t.Mono.ExpOf(v)
		rest := make(map[variable.Variable]int)
		for _, ve := range t.Mono.exps {
			if !ve.v.Equal(v) {
				rest[ve.v] = ve.e
			}
		}
		out[e] = out[e].Add(FromTerms(p.order, Term{Coeff: t.Coeff, Mono: NewMonomial(rest)}))
	}
	return out
}

// FromCoeffsIn builds a Polynomial in v from a coefficient list indexed
// by degree in v, ascending.
func FromCoeffsIn(order Order, v variable.Variable, coeffs []Polynomial) Polynomial {
	result := Zero(order)
	for d, c := range coeffs {
		if c.IsZero() {
			continue
		}
		result = result.Add(c.MulTerm(Term{Coeff: rational.One, Mono: VarMonomial(v, d)}))
	}
	return result
}
