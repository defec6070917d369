// Package ralg implements real algebraic numbers: a value is either an
// exact rational or a square-free defining polynomial together with an
// isolating interval and its Sturm sequence.
package ralg

import (
	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/interval"
	"github.com/real-cad/cad/isolate"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/sturm"
	"github.com/real-cad/cad/univariate"
)

// Number is a real algebraic number. A nil value field marks the
// interval representation.
type Number struct {
	value       *rational.Rational
	poly        *univariate.RationalPolynomial
	interval    interval.OpenInterval
	seq         sturm.Sequence
	refinements int
}

// FromRational returns the real algebraic number equal to r.
func FromRational(r rational.Rational) Number {
	v := r
	return Number{value: &v}
}

// Zero is the real algebraic number 0.
var Zero = FromRational(rational.Zero)

// IsNumeric reports whether n has an exact rational representation.
func (n Number) IsNumeric() bool { return n.value != nil }

// RationalValue returns n's exact value and true, if IsNumeric.
func (n Number) RationalValue() (rational.Rational, bool) {
	if n.value == nil {
		return rational.Zero, false
	}
	return *n.value, true
}

// DefiningPolynomial returns n's defining polynomial, or nil if n is
// numeric.
func (n Number) DefiningPolynomial() *univariate.RationalPolynomial {
	return n.poly
}

// Interval returns n's isolating interval. For a numeric n this is
// ]v-1, v+1[ around its exact value v.
func (n Number) Interval() interval.OpenInterval {
	if n.IsNumeric() {
		return interval.AroundInt(*n.value)
	}
	return n.interval
}

// FromIsolation constructs a real algebraic number from a defining
// polynomial and an interval isolating exactly one of its roots. The
// polynomial is square-freed, the interval is normalized away from
// zero, and a linear polynomial or a zero root collapses to the exact
// rational.
func FromIsolation(p *univariate.RationalPolynomial, i interval.OpenInterval) (Number, error) {
	if p.Degree() == 0 {
		return Number{}, caderr.New(caderr.InvalidPolynomial, "ralg: FromIsolation: constant polynomial has no root")
	}
	pp := p.SquareFreePart().PrimitivePart()
	seq := sturm.StandardSturmSequence(pp)
	ni := normalizeInterval(pp, seq, i)
	if pp.Degree() == 1 {
		a := pp.CoeffAtDegree(1)
		b := pp.CoeffAtDegree(0)
		v := b.Neg().Quo(a)
		return FromRational(v), nil
	}
	if ni.IsZero() {
		return FromRational(rational.Zero), nil
	}
	return Number{poly: pp, interval: ni, seq: seq}, nil
}

// fromRoot adapts an isolated root without re-normalizing; isolation
// already splits intervals around zero.
func fromRoot(r isolate.Root) Number {
	if r.IsNumeric() {
		return FromRational(*r.Rational)
	}
	return Number{poly: r.Poly, interval: r.Interval, seq: r.Seq}
}

// FromRoot converts an isolated root into a real algebraic number.
func FromRoot(r isolate.Root) Number { return fromRoot(r) }

// NthRoot returns the principal real n'th root of r: the nonnegative
// root for even n (requiring r >= 0), the unique real root for odd n.
func NthRoot(r rational.Rational, n int) (Number, error) {
	if n <= 0 {
		return Number{}, caderr.New(caderr.InvalidPolynomial, "ralg: NthRoot: degree must be positive, got %d", n)
	}
	if n%2 == 0 && r.Sign() < 0 {
		return Number{}, caderr.New(caderr.InvalidPolynomial, "ralg: NthRoot: even root of negative number")
	}
	coeffs := make([]rational.Rational, n+1)
	coeffs[0] = r.Neg()
	coeffs[n] = rational.One
	p, err := univariate.NewRationalPolynomial(coeffs)
	if err != nil {
		return Number{}, err
	}
	roots := isolate.RealRoots(p, isolate.DefaultStrategy)
	var candidates []isolate.Root
	for _, root := range roots {
		if n%2 == 0 && !rootIsNonnegative(root) {
			continue
		}
		candidates = append(candidates, root)
	}
	if len(candidates) == 0 {
		return Number{}, caderr.New(caderr.InvalidPolynomial, "ralg: NthRoot: no qualifying real root found")
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if rootApprox(c).Cmp(rootApprox(best)) < 0 {
			best = c
		}
	}
	return fromRoot(best), nil
}

func rootIsNonnegative(r isolate.Root) bool {
	if r.IsNumeric() {
		return r.Rational.Sign() >= 0
	}
	return r.Interval.Left.Sign() >= 0
}

func rootApprox(r isolate.Root) rational.Rational {
	if r.IsNumeric() {
		return *r.Rational
	}
	return r.Interval.Midpoint()
}

// normalizeInterval shifts i off zero unless the isolated root is zero
// itself. No nonzero root of p lies within 1/(1+maximumNorm(p)) of
// zero.
func normalizeInterval(p *univariate.RationalPolynomial, seq sturm.Sequence, i interval.OpenInterval) interval.OpenInterval {
	if !i.Contains(rational.Zero) && !i.IsZero() {
		return i
	}
	a := rational.One.Quo(rational.One.Add(maximumNorm(p)))
	if seq.SignVariations(i.Left) > seq.SignVariations(a.Neg()) {
		return interval.New(i.Left, a.Neg())
	}
	if seq.SignVariations(a) > seq.SignVariations(i.Right) {
		return interval.New(a, i.Right)
	}
	// Neither half holds the root; the root is zero.
	return interval.New(rational.Zero, rational.Zero)
}

// maximumNorm returns the largest absolute value among p's
// coefficients.
func maximumNorm(p *univariate.RationalPolynomial) rational.Rational {
	max := p.CoeffAtDegree(0).Abs()
	for i := 1; i <= p.Degree(); i++ {
		v := p.CoeffAtDegree(i).Abs()
		if v.Cmp(max) > 0 {
			max = v
		}
	}
	return max
}

// Sign returns -1, 0 or 1.
func (n Number) Sign() int {
	if n.IsNumeric() {
		return n.value.Sign()
	}
	if n.interval.IsZero() {
		return 0
	}
	if n.interval.Left.Sign() < 0 {
		return -1
	}
	return 1
}

// SignOf returns the sign of q evaluated at n, using the generalized
// Sturm sequence of (p, p'*q) for an interval-represented n.
func (n Number) SignOf(q *univariate.RationalPolynomial) int {
	if n.IsNumeric() {
		return q.At(*n.value).Sign()
	}
	gseq := sturm.BuildSequence(n.poly, n.poly.Derivative().Mul(q))
	return gseq.SignVariations(n.interval.Left) - gseq.SignVariations(n.interval.Right)
}

// ApproximateValue returns n's exact value if numeric, else the
// midpoint of its isolating interval.
func (n Number) ApproximateValue() rational.Rational {
	if n.IsNumeric() {
		return *n.value
	}
	return n.interval.Midpoint()
}

// SampleValue returns a rational with a small representation taken
// from n's isolating interval.
func (n Number) SampleValue() rational.Rational {
	if n.IsNumeric() {
		return *n.value
	}
	return n.interval.Sample()
}

// RefinementCount returns the number of refinement steps so far.
func (n Number) RefinementCount() int { return n.refinements }

// Refine halves n's isolating interval at a sample pivot, collapsing to
// numeric when the pivot is an exact root. A no-op for numeric n.
func (n *Number) Refine() {
	if n.IsNumeric() {
		return
	}
	pivot := n.interval.Sample()
	if n.poly.At(pivot).IsZero() {
		n.value = &pivot
		n.refinements++
		return
	}
	leftVar := n.seq.SignVariations(n.interval.Left)
	pivotVar := n.seq.SignVariations(pivot)
	if leftVar > pivotVar {
		n.interval = interval.New(n.interval.Left, pivot)
	} else {
		n.interval = interval.New(pivot, n.interval.Right)
	}
	n.refinements++
}

// RefineTo refines n until its isolating interval has width <= eps.
func (n *Number) RefineTo(eps rational.Rational) {
	for !n.IsNumeric() && n.interval.Right.Sub(n.interval.Left).Cmp(eps) > 0 {
		n.Refine()
	}
}

// RefineAvoiding refines n's interval until it no longer meets x,
// returning true if x turns out to be n's exact value.
func (n *Number) RefineAvoiding(x rational.Rational) bool {
	if n.IsNumeric() {
		return n.value.Equal(x)
	}
	if !n.interval.Meets(x) {
		return false
	}
	if n.interval.Contains(x) {
		// The closure holds exactly one root, so a root strictly inside
		// is the number itself.
		if n.poly.At(x).IsZero() {
			n.value = &x
			return true
		}
		leftVar := n.seq.SignVariations(n.interval.Left)
		xVar := n.seq.SignVariations(x)
		if leftVar > xVar {
			n.interval = interval.New(n.interval.Left, x)
		} else {
			n.interval = interval.New(x, n.interval.Right)
		}
		n.refinements++
	}
	// x now sits on a bound. The root lies strictly inside, so x is not the
	// number; nudge the touching bound inward until the interval clears
	// x. Candidates are sampled against the current opposite bound so
	// the touching side strictly shrinks each pass.
	xIsRoot := n.poly.At(x).IsZero()
	isLeft := n.interval.Left.Equal(x)
	for {
		var candidate rational.Rational
		if isLeft {
			candidate = interval.New(x, n.interval.Right).SampleFast()
		} else {
			candidate = interval.New(n.interval.Left, x).SampleFast()
		}
		if n.poly.At(candidate).IsZero() {
			n.value = &candidate
			return false
		}
		xVar := n.seq.SignVariations(x)
		candVar := n.seq.SignVariations(candidate)
		stillTouches := false
		if isLeft {
			if xVar > candVar {
				// Root in (x, candidate).
				n.interval = interval.New(x, candidate)
				stillTouches = true
			} else {
				n.interval = interval.New(candidate, n.interval.Right)
			}
		} else {
			inCount := candVar - xVar
			if xIsRoot {
				// The half-open count includes x itself.
				inCount--
			}
			if inCount > 0 {
				// Root in (candidate, x).
				n.interval = interval.New(candidate, x)
				stillTouches = true
			} else {
				n.interval = interval.New(n.interval.Left, candidate)
			}
		}
		n.refinements++
		if !stillTouches {
			return false
		}
	}
}
