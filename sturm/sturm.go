// Package sturm implements Sturm sequences over exact rational
// univariate polynomials.
package sturm

import (
	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/univariate"
)

// Sequence is a Sturm chain: p0, p1, then p(i+1) = -rem(p(i-1), p(i))
// until a constant or zero polynomial is reached.
type Sequence struct {
	chain []*univariate.RationalPolynomial
}

// StandardSturmSequence builds the standard Sturm sequence of
// (p, p').
func StandardSturmSequence(p *univariate.RationalPolynomial) Sequence {
	if p.Degree() == 0 {
		return Sequence{chain: []*univariate.RationalPolynomial{p}}
	}
	return BuildSequence(p, p.Derivative())
}

// BuildSequence builds the generalized Sturm sequence starting from an
// arbitrary pair (p0, p1).
func BuildSequence(p0, p1 *univariate.RationalPolynomial) Sequence {
	if p1.IsZero() {
		return Sequence{chain: []*univariate.RationalPolynomial{p0}}
	}
	chain := []*univariate.RationalPolynomial{p0, p1}
	for {
		last := chain[len(chain)-1]
		if last.Degree() == 0 {
			break
		}
		prev := chain[len(chain)-2]
		_, rem := prev.EuclideanDiv(last)
		chain = append(chain, rem.Scale(rational.FromInt64(-1)))
	}
	return Sequence{chain: chain}
}

// Len returns the number of polynomials in the sequence.
func (s Sequence) Len() int { return len(s.chain) }

// At returns the i'th polynomial in the sequence.
func (s Sequence) At(i int) *univariate.RationalPolynomial { return s.chain[i] }

// SignVariations returns the number of sign changes, ignoring zeros,
// across the sequence evaluated at x.
func (s Sequence) SignVariations(x rational.Rational) int {
	variations := 0
	prevSign := 0
	for _, p := range s.chain {
		sign := p.At(x).Sign()
		if sign == 0 {
			continue
		}
		if prevSign != 0 && sign != prevSign {
			variations++
		}
		prevSign = sign
	}
	return variations
}

// RootCount returns the number of distinct real roots of the
// generating polynomial in (a, b]. Panics if a > b.
func (s Sequence) RootCount(a, b rational.Rational) int {
	if a.Cmp(b) > 0 {
		caderr.Invariant("sturm: RootCount: invalid interval (%s, %s]", a.String(), b.String())
	}
	if s.Len() == 1 {
		return 0
	}
	return s.SignVariations(a) - s.SignVariations(b)
}

// RootCountInterval counts roots of p itself in (a, b].
func RootCountInterval(p *univariate.RationalPolynomial, a, b rational.Rational) int {
	return StandardSturmSequence(p).RootCount(a, b)
}

// CauchyBound returns a bound B such that every real root x of p
// satisfies |x| < B. Panics for constant p.
func CauchyBound(p *univariate.RationalPolynomial) rational.Rational {
	if p.Degree() == 0 {
		caderr.Invariant("sturm: CauchyBound: constant polynomial")
	}
	lcRecip := rational.One.Quo(p.LeadCoeff())
	maxAbs := p.CoeffAtDegree(0).Mul(lcRecip).Abs()
	for i := 1; i < p.Degree(); i++ {
		v := p.CoeffAtDegree(i).Mul(lcRecip).Abs()
		if v.Cmp(maxAbs) > 0 {
			maxAbs = v
		}
	}
	return rational.One.Add(maxAbs)
}
