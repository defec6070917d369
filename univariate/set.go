package univariate

import "github.com/real-cad/cad/rational"

// Set is a collection of Polynomials sharing the same main variable,
// keyed by structural equality.
type Set struct {
	polys []Polynomial
}

// NewSet builds a Set from polys.
func NewSet(polys ...Polynomial) Set {
	return Set{polys: append([]Polynomial{}, polys...)}
}

// Polys returns the set's members; the returned slice must not be
// mutated.
func (s Set) Polys() []Polynomial { return s.polys }

// Len returns the number of members.
func (s Set) Len() int { return len(s.polys) }

// RemoveConstants returns a Set with every constant member dropped.
func (s Set) RemoveConstants() Set {
	var out []Polynomial
	for _, p := range s.polys {
		if p.Degree() > 0 {
			out = append(out, p)
		}
	}
	return Set{polys: out}
}

// MakePrimitive returns a Set with every member replaced by its
// primitive part.
func (s Set) MakePrimitive() Set {
	out := make([]Polynomial, len(s.polys))
	for i, p := range s.polys {
		out[i] = p.PrimitivePart()
	}
	return Set{polys: out}
}

// Unite returns the union of s and o, skipping members of o already
// structurally present in s.
func (s Set) Unite(o Set) Set {
	out := append([]Polynomial{}, s.polys...)
	for _, p := range o.polys {
		if !containsPoly(out, p) {
			out = append(out, p)
		}
	}
	return Set{polys: out}
}

func containsPoly(haystack []Polynomial, p Polynomial) bool {
	for _, q := range haystack {
		if q.mainVar.Equal(p.mainVar) && q.poly.Equal(p.poly) {
			return true
		}
	}
	return false
}

// IsOnlyRational reports whether every member has purely rational
// coefficients in its main variable.
func (s Set) IsOnlyRational() bool {
	for _, p := range s.polys {
		if !p.poly.IsRationalPolynomialIn(p.mainVar) {
			return false
		}
	}
	return true
}

// ToRational converts every member to a RationalPolynomial. Panics if
// IsOnlyRational does not hold; callers should check first.
func (s Set) ToRational() []*RationalPolynomial {
	if !s.IsOnlyRational() {
		panic("univariate: Set.ToRational: set contains non-rational members")
	}
	out := make([]*RationalPolynomial, len(s.polys))
	for i, p := range s.polys {
		out[i] = polyToRational(p)
	}
	return out
}

func polyToRational(p Polynomial) *RationalPolynomial {
	deg := p.Degree()
	out := make([]rational.Rational, deg+1)
	for d := 0; d <= deg; d++ {
		c, ok := p.Coeff(d).AsConstant()
		if !ok {
			panic("univariate: Set.ToRational: non-constant coefficient")
		}
		out[d] = c
	}
	rp, _ := NewRationalPolynomial(out)
	return rp
}
