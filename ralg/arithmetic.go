package ralg

import (
	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/interval"
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/sturm"
	"github.com/real-cad/cad/univariate"
	"github.com/real-cad/cad/variable"
)

// toMvpoly builds the sparse polynomial of p in variable v.
func toMvpoly(p *univariate.RationalPolynomial, v variable.Variable) mvpoly.Polynomial {
	terms := make([]mvpoly.Term, 0, p.Degree()+1)
	for i := 0; i <= p.Degree(); i++ {
		c := p.CoeffAtDegree(i)
		if c.IsZero() {
			continue
		}
		terms = append(terms, mvpoly.Term{Coeff: c, Mono: mvpoly.VarMonomial(v, i)})
	}
	return mvpoly.FromTerms(mvpoly.Lex, terms...)
}

// reversedHomogenize builds y^deg(p) * p(x/y).
func reversedHomogenize(p *univariate.RationalPolynomial, x, y variable.Variable) mvpoly.Polynomial {
	n := p.Degree()
	terms := make([]mvpoly.Term, 0, n+1)
	for i := 0; i <= n; i++ {
		c := p.CoeffAtDegree(i)
		if c.IsZero() {
			continue
		}
		mono := mvpoly.VarMonomial(x, i).Mul(mvpoly.VarMonomial(y, n-i))
		terms = append(terms, mvpoly.Term{Coeff: c, Mono: mono})
	}
	return mvpoly.FromTerms(mvpoly.Lex, terms...)
}

// fromMvpolyInX converts a polynomial depending only on x back into a
// dense RationalPolynomial.
func fromMvpolyInX(p mvpoly.Polynomial, x variable.Variable) (*univariate.RationalPolynomial, error) {
	if p.IsZero() {
		return nil, caderr.New(caderr.InvalidPolynomial, "ralg: resultant construction collapsed to zero")
	}
	deg := p.DegreeIn(x)
	coeffs := make([]rational.Rational, deg+1)
	for i := 0; i <= deg; i++ {
		c := p.CoeffIn(x, i)
		v, ok := c.AsConstant()
		if !ok {
			return nil, caderr.New(caderr.InvalidPolynomial, "ralg: resultant elimination left a non-constant coefficient")
		}
		coeffs[i] = v
	}
	return univariate.NewRationalPolynomial(coeffs)
}

// combine runs the resultant-elimination pattern shared by Add and Mul.
// buildCombined produces the bivariate polynomial to eliminate y from
// against o's defining polynomial in y; newInterval combines the
// operands' intervals into a starting interval, refined until it
// isolates exactly one root of the resultant.
func combine(n, o *Number, newInterval func(a, b interval.OpenInterval) interval.OpenInterval, buildCombined func(x, y variable.Variable) mvpoly.Polynomial) (Number, error) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")
	y := ctx.Intern("y")
	qy := toMvpoly(o.poly, y)
	combined := buildCombined(x, y)
	resultXY := mvpoly.Resultant(combined, qy, y)
	rp, err := fromMvpolyInX(resultXY, x)
	if err != nil {
		return Number{}, err
	}
	rp = rp.SquareFreePart().PrimitivePart()
	if rp.Degree() == 1 {
		a := rp.CoeffAtDegree(1)
		b := rp.CoeffAtDegree(0)
		return FromRational(b.Neg().Quo(a)), nil
	}
	seq := sturm.StandardSturmSequence(rp)
	// Read intervalOf, not the interval field: a refinement step may
	// collapse an operand to numeric.
	i := newInterval(n.intervalOf(), o.intervalOf())
	for seq.SignVariations(i.Left)-seq.SignVariations(i.Right) > 1 {
		n.Refine()
		o.Refine()
		i = newInterval(n.intervalOf(), o.intervalOf())
	}
	if i.Left.Equal(i.Right) {
		// Both operands collapsed; the degenerate interval is the exact
		// result.
		return FromRational(i.Left), nil
	}
	i = normalizeInterval(rp, seq, i)
	if i.IsZero() {
		return Zero, nil
	}
	return Number{poly: rp, interval: i, seq: seq}, nil
}

// Add returns n + o via res_y(p(x-y), q(y)).
func (n Number) Add(o Number) (Number, error) {
	if n.IsNumeric() && o.IsNumeric() {
		return FromRational(n.value.Add(*o.value)), nil
	}
	an, ao := widenToInterval(n), widenToInterval(o)
	return combine(&an, &ao,
		func(a, b interval.OpenInterval) interval.OpenInterval { return a.Add(b) },
		func(x, y variable.Variable) mvpoly.Polynomial {
			px := toMvpoly(an.poly, x)
			xMinusY := mvpoly.FromVariable(mvpoly.Lex, x).Sub(mvpoly.FromVariable(mvpoly.Lex, y))
			return px.Subs(x, xMinusY)
		})
}

// Neg returns -n.
func (n Number) Neg() Number {
	if n.IsNumeric() {
		return FromRational(n.value.Neg())
	}
	coeffs := make([]rational.Rational, n.poly.Degree()+1)
	for i := range coeffs {
		c := n.poly.CoeffAtDegree(i)
		if i%2 == 1 {
			c = c.Neg()
		}
		coeffs[i] = c
	}
	p, _ := univariate.NewRationalPolynomial(coeffs)
	return Number{poly: p, interval: n.interval.Neg(), seq: sturm.StandardSturmSequence(p)}
}

// Mul returns n * o via res_y(y^deg(p) p(x/y), q(y)).
func (n Number) Mul(o Number) (Number, error) {
	if n.IsNumeric() && o.IsNumeric() {
		return FromRational(n.value.Mul(*o.value)), nil
	}
	if n.Sign() == 0 || o.Sign() == 0 {
		return Zero, nil
	}
	an, ao := widenToInterval(n), widenToInterval(o)
	return combine(&an, &ao,
		func(a, b interval.OpenInterval) interval.OpenInterval { return a.Mul(b) },
		func(x, y variable.Variable) mvpoly.Polynomial {
			return reversedHomogenize(an.poly, x, y)
		})
}

// Inverse returns 1/n. Errors if n is zero.
func (n Number) Inverse() (Number, error) {
	if n.Sign() == 0 {
		return Number{}, caderr.New(caderr.DivisionByZero, "ralg: Inverse: zero has no inverse")
	}
	if n.IsNumeric() {
		return FromRational(n.value.Inv()), nil
	}
	// A bound sitting exactly on zero cannot be inverted; refine it
	// away first.
	m := n
	for !m.IsNumeric() && (m.interval.Left.IsZero() || m.interval.Right.IsZero()) {
		m.Refine()
	}
	if m.IsNumeric() {
		return FromRational(m.value.Inv()), nil
	}
	deg := m.poly.Degree()
	coeffs := make([]rational.Rational, deg+1)
	for i := 0; i <= deg; i++ {
		coeffs[deg-i] = m.poly.CoeffAtDegree(i)
	}
	p, err := univariate.NewRationalPolynomial(coeffs)
	if err != nil {
		return Number{}, err
	}
	p = p.PrimitivePart()
	lo, hi := m.interval.Left.Inv(), m.interval.Right.Inv()
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return Number{poly: p, interval: interval.New(lo, hi), seq: sturm.StandardSturmSequence(p)}, nil
}

// Pow returns n^e for e >= 0 by repeated multiplication.
func (n Number) Pow(e int) (Number, error) {
	if e < 0 {
		return Number{}, caderr.New(caderr.InvalidPolynomial, "ralg: Pow: negative exponent")
	}
	if e == 0 {
		return FromRational(rational.One), nil
	}
	result := n
	for i := 1; i < e; i++ {
		next, err := result.Mul(n)
		if err != nil {
			return Number{}, err
		}
		result = next
	}
	return result, nil
}

// widenToInterval turns a numeric Number into an equivalent interval
// representation over the linear polynomial (x - value), so the
// resultant construction can treat every operand uniformly.
func widenToInterval(n Number) Number {
	if !n.IsNumeric() {
		return n
	}
	v := *n.value
	p, _ := univariate.NewRationalPolynomial([]rational.Rational{v.Neg(), rational.One})
	return Number{poly: p, interval: interval.New(v.Sub(rational.One), v.Add(rational.One)), seq: sturm.StandardSturmSequence(p)}
}

// Equal reports whether n and o are the same real algebraic number.
// Disjoint intervals decide immediately; otherwise each side refines
// avoiding the other's sample value until one collapses or the
// intervals separate. Past the round budget the sign of n - o decides.
//
// Comparison refines its operand copies; the inputs are not mutated.
func (n Number) Equal(o Number) (bool, error) {
	if n.IsNumeric() && o.IsNumeric() {
		return n.value.Equal(*o.value), nil
	}
	ni, oi := n.intervalOf(), o.intervalOf()
	if ni.Right.Cmp(oi.Left) <= 0 || oi.Right.Cmp(ni.Left) <= 0 {
		return false, nil
	}
	an, ao := n, o
	const maxRounds = 256
	for round := 0; round < maxRounds; round++ {
		if an.IsNumeric() && ao.IsNumeric() {
			return an.value.Equal(*ao.value), nil
		}
		x, y := ao.SampleValue(), an.SampleValue()
		if !an.IsNumeric() && an.RefineAvoiding(x) {
			if ao.IsNumeric() {
				return ao.value.Equal(*an.value), nil
			}
			return ao.RefineAvoiding(*an.value), nil
		}
		if !ao.IsNumeric() && ao.RefineAvoiding(y) {
			if an.IsNumeric() {
				return an.value.Equal(*ao.value), nil
			}
			return an.RefineAvoiding(*ao.value), nil
		}
		if an.intervalOf().Right.Cmp(ao.intervalOf().Left) <= 0 || ao.intervalOf().Right.Cmp(an.intervalOf().Left) <= 0 {
			return false, nil
		}
	}
	diff, err := n.Add(o.Neg())
	if err != nil {
		return false, err
	}
	return diff.Sign() == 0, nil
}

// intervalOf returns n's isolating interval, or the degenerate point
// interval at its exact value. The degenerate form lets a refined
// interval operand separate from a numeric one.
func (n Number) intervalOf() interval.OpenInterval {
	if n.IsNumeric() {
		return interval.OpenInterval{Left: *n.value, Right: *n.value}
	}
	return n.interval
}

// Less reports whether n < o, by refine-avoiding rounds followed by
// direct interval-bound comparison. Panics if distinct numbers fail to
// separate within the refinement budget.
func (n Number) Less(o Number) (bool, error) {
	if n.IsNumeric() && o.IsNumeric() {
		return n.value.Cmp(*o.value) < 0, nil
	}
	eq, err := n.Equal(o)
	if err != nil {
		return false, err
	}
	if eq {
		return false, nil
	}
	an, ao := n, o
	const maxIterations = 10000
	for i := 0; i < maxIterations; i++ {
		if an.intervalOf().Right.Cmp(ao.intervalOf().Left) <= 0 {
			return true, nil
		}
		if ao.intervalOf().Right.Cmp(an.intervalOf().Left) <= 0 {
			return false, nil
		}
		x, y := ao.SampleValue(), an.SampleValue()
		if !an.IsNumeric() {
			an.RefineAvoiding(x)
		}
		if !ao.IsNumeric() {
			ao.RefineAvoiding(y)
		}
	}
	caderr.Invariant("ralg: Less: intervals failed to separate after %d refinements", maxIterations)
	return false, nil
}
