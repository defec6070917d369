// Package mvpoly implements sparse multivariate polynomials over the
// rationals: sorted term sets under a monomial order, a main-variable
// view with polynomial coefficients, pseudo-division, resultants and
// subresultants.
package mvpoly

import (
	"math/big"
	"sort"

	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

// Polynomial is an ordered set of terms under a chosen monomial order.
// The zero value is the zero polynomial under Lex.
type Polynomial struct {
	terms []Term // sorted strictly decreasing under order, no zero coeffs
	order Order
}

// Zero returns the zero polynomial under order.
func Zero(order Order) Polynomial {
	return Polynomial{order: order}
}

// FromTerms builds a Polynomial from terms, combining like monomials and
// dropping zero coefficients.
func FromTerms(order Order, terms ...Term) Polynomial {
	byMono := make(map[string]Term)
	var keysInOrder []string
	key := func(m Monomial) string {
		s := make([]byte, 0, 8*len(m.exps))
		for _, ve := range m.exps {
			s = append(s, byte(ve.v.ID()>>24), byte(ve.v.ID()>>16), byte(ve.v.ID()>>8), byte(ve.v.ID()))
			s = append(s, byte(ve.e>>24), byte(ve.e>>16), byte(ve.e>>8), byte(ve.e))
		}
		return string(s)
	}
	for _, t := range terms {
		k := key(t.Mono)
		if existing, ok := byMono[k]; ok {
			byMono[k] = Term{Coeff: existing.Coeff.Add(t.Coeff), Mono: t.Mono}
		} else {
			byMono[k] = t
			keysInOrder = append(keysInOrder, k)
		}
	}
	out := make([]Term, 0, len(keysInOrder))
	for _, k := range keysInOrder {
		t := byMono[k]
		if !t.IsZero() {
			out = append(out, t)
		}
	}
	p := Polynomial{terms: out, order: order}
	p.sortTerms()
	return p
}

// FromRational returns the constant polynomial r under order.
func FromRational(order Order, r rational.Rational) Polynomial {
	if r.IsZero() {
		return Zero(order)
	}
	return FromTerms(order, Term{Coeff: r, Mono: One})
}

// FromVariable returns the degree-1 polynomial v under order.
func FromVariable(order Order, v variable.Variable) Polynomial {
	return FromTerms(order, Term{Coeff: rational.One, Mono: VarMonomial(v, 1)})
}

func (p *Polynomial) sortTerms() {
	sort.Slice(p.terms, func(i, j int) bool {
		return compare(p.terms[i].Mono, p.terms[j].Mono, p.order) > 0
	})
}

// Order returns p's monomial order.
func (p Polynomial) Order() Order { return p.order }

// WithOrder returns a copy of p re-sorted under a different order. The
// term set is unchanged; only the canonical enumeration order changes.
func (p Polynomial) WithOrder(order Order) Polynomial {
	terms := make([]Term, len(p.terms))
	copy(terms, p.terms)
	q := Polynomial{terms: terms, order: order}
	q.sortTerms()
	return q
}

// Terms returns p's terms in canonical (decreasing) order. The returned
// slice must not be mutated.
func (p Polynomial) Terms() []Term { return p.terms }

// IsZero reports whether p has no terms.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// IsConstant reports whether p is a (possibly zero) constant.
func (p Polynomial) IsConstant() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].Mono.IsOne())
}

// AsConstant returns p's value as a Rational and true, if p IsConstant.
func (p Polynomial) AsConstant() (rational.Rational, bool) {
	if len(p.terms) == 0 {
		return rational.Zero, true
	}
	if len(p.terms) == 1 && p.terms[0].Mono.IsOne() {
		return p.terms[0].Coeff, true
	}
	return rational.Zero, false
}

// LeadingTerm returns p's leading term under its order. Panics on the
// zero polynomial.
func (p Polynomial) LeadingTerm() Term {
	if p.IsZero() {
		panic("mvpoly: LeadingTerm of zero polynomial")
	}
	return p.terms[0]
}

// LeadingMonomial returns the monomial of p's leading term.
func (p Polynomial) LeadingMonomial() Monomial { return p.LeadingTerm().Mono }

// LeadingCoeff returns the coefficient of p's leading term.
func (p Polynomial) LeadingCoeff() rational.Rational { return p.LeadingTerm().Coeff }

// TruncateLeadingTerm returns p - lt(p).
func (p Polynomial) TruncateLeadingTerm() Polynomial {
	if p.IsZero() {
		return p
	}
	terms := make([]Term, len(p.terms)-1)
	copy(terms, p.terms[1:])
	return Polynomial{terms: terms, order: p.order}
}

// Vars returns the set of variables appearing in p, in variable order.
func (p Polynomial) Vars() variable.List {
	seen := make(map[variable.Variable]bool)
	var out variable.List
	for _, t := range p.terms {
		for _, ve := range t.Mono.exps {
			if !seen[ve.v] {
				seen[ve.v] = true
				out = append(out, ve.v)
			}
		}
	}
	return out.Sorted()
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = t.Neg()
	}
	return Polynomial{terms: terms, order: p.order}
}

// Add returns p+o.
func (p Polynomial) Add(o Polynomial) Polynomial {
	return FromTerms(p.order, append(append([]Term{}, p.terms...), o.terms...)...)
}

// Sub returns p-o.
func (p Polynomial) Sub(o Polynomial) Polynomial { return p.Add(o.Neg()) }

// Scale returns r*p.
func (p Polynomial) Scale(r rational.Rational) Polynomial {
	if r.IsZero() {
		return Zero(p.order)
	}
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Term{Coeff: t.Coeff.Mul(r), Mono: t.Mono}
	}
	return Polynomial{terms: terms, order: p.order}
}

// MulTerm returns t*p.
func (p Polynomial) MulTerm(t Term) Polynomial {
	if t.IsZero() {
		return Zero(p.order)
	}
	terms := make([]Term, len(p.terms))
	for i, pt := range p.terms {
		terms[i] = pt.Mul(t)
	}
	return FromTerms(p.order, terms...)
}

// Mul returns p*o.
func (p Polynomial) Mul(o Polynomial) Polynomial {
	terms := make([]Term, 0, len(p.terms)*len(o.terms))
	for _, a := range p.terms {
		for _, b := range o.terms {
			terms = append(terms, a.Mul(b))
		}
	}
	return FromTerms(p.order, terms...)
}

// Normalize returns p scaled so its leading coefficient is 1. Returns
// p unchanged if p.IsZero().
func (p Polynomial) Normalize() Polynomial {
	if p.IsZero() {
		return p
	}
	return p.Scale(p.LeadingCoeff().Inv())
}

// Equal reports structural equality: same terms, regardless of the
// order used to store them.
func (p Polynomial) Equal(o Polynomial) bool {
	if len(p.terms) != len(o.terms) {
		return false
	}
	op := p.WithOrder(GrLex)
	oo := o.WithOrder(GrLex)
	for i := range op.terms {
		if !op.terms[i].Coeff.Equal(oo.terms[i].Coeff) || !op.terms[i].Mono.Equal(oo.terms[i].Mono) {
			return false
		}
	}
	return true
}

// Eval evaluates p at a full rational assignment. Panics if a variable
// of p is missing from assignment.
func (p Polynomial) Eval(assignment map[variable.Variable]rational.Rational) rational.Rational {
	total := rational.Zero
	for _, t := range p.terms {
		v := t.Coeff
		for _, ve := range t.Mono.exps {
			val, ok := assignment[ve.v]
			if !ok {
				panic("mvpoly: Eval: assignment missing variable " + ve.v.Name())
			}
			v = v.Mul(val.Pow(ve.e))
		}
		total = total.Add(v)
	}
	return total
}

// Diff returns the formal partial derivative of p with respect to v.
func (p Polynomial) Diff(v variable.Variable) Polynomial {
	var terms []Term
	for _, t := range p.terms {
		e := t.Mono.ExpOf(v)
		if e == 0 {
			continue
		}
		exps := make(map[variable.Variable]int)
		for _, ve := range t.Mono.exps {
			if ve.v.Equal(v) {
				if ve.e > 1 {
					exps[ve.v] = ve.e - 1
				}
			} else {
				exps[ve.v] = ve.e
			}
		}
		terms = append(terms, Term{Coeff: t.Coeff.Mul(rational.FromInt64(int64(e))), Mono: NewMonomial(exps)})
	}
	return FromTerms(p.order, terms...)
}

// Subs returns p with every occurrence of v replaced by the polynomial
// val.
func (p Polynomial) Subs(v variable.Variable, val Polynomial) Polynomial {
	result := Zero(p.order)
	for _, t := range p.terms {
		e := t.Mono.ExpOf(v)
		rest := make(map[variable.Variable]int)
		for _, ve := range t.Mono.exps {
			if !ve.v.Equal(v) {
				rest[ve.v] = ve.e
			}
		}
		restPoly := FromTerms(p.order, Term{Coeff: t.Coeff, Mono: NewMonomial(rest)})
		term := restPoly
		for i := 0; i < e; i++ {
			term = term.Mul(val)
		}
		result = result.Add(term)
	}
	return result
}

// SubsRational substitutes a rational value for v.
func (p Polynomial) SubsRational(v variable.Variable, val rational.Rational) Polynomial {
	return p.Subs(v, FromRational(p.order, val))
}

// Expand is the identity: Polynomial is always maintained in fully
// expanded form.
func (p Polynomial) Expand() Polynomial { return p }

// IsPolynomialIn reports whether p is a polynomial in v, which is always
// true for this representation (it has no rational-function / division
// nodes to make v appear in a denominator).
func (p Polynomial) IsPolynomialIn(v variable.Variable) bool { return true }

// IsRationalPolynomialIn reports whether p, viewed as a polynomial in v,
// has only rational-number coefficients, i.e. no variable other than v
// appears in p.
func (p Polynomial) IsRationalPolynomialIn(v variable.Variable) bool {
	for _, w := range p.Vars() {
		if !w.Equal(v) {
			return false
		}
	}
	return true
}

// Content returns the rational content of p: the positive rational c
// such that p/c has coprime integer-valued coefficients. Returns
// rational.One for the zero polynomial.
func (p Polynomial) Content() rational.Rational {
	if p.IsZero() {
		return rational.One
	}
	den := rational.One
	for _, t := range p.terms {
		den = rational.LCM(den, rational.FromBigInts(t.Coeff.Denom(), big.NewInt(1)))
	}
	g := rational.Zero
	for _, t := range p.terms {
		scaled := t.Coeff.Mul(den) // integer-valued
		scaledInt := rational.FromBigInts(scaled.Num(), big.NewInt(1))
		if g.IsZero() {
			g = scaledInt.Abs()
		} else {
			g = rational.GCD(g, scaledInt.Abs())
		}
	}
	if g.IsZero() {
		return rational.One
	}
	return g.Quo(den)
}

// PrimitivePart returns p / p.Content().
func (p Polynomial) PrimitivePart() Polynomial {
	if p.IsZero() {
		return p
	}
	c := p.Content()
	if p.LeadingCoeff().Sign() < 0 {
		c = c.Neg()
	}
	return p.Scale(c.Inv())
}
