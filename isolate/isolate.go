// Package isolate implements real-root isolation for univariate
// polynomials: a recursive divide and conquer that counts roots in a
// candidate interval with Sturm's theorem and stops dissecting once an
// interval holds exactly one root.
package isolate

import (
	"sort"

	"github.com/real-cad/cad/interval"
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/sturm"
	"github.com/real-cad/cad/univariate"
	"github.com/real-cad/cad/variable"
)

// Strategy selects the pivoting rule used while dissecting a candidate
// interval. The strategies differ only in how the split point is
// chosen.
type Strategy int

const (
	Simple Strategy = iota
	Generic
	BinarySample
	TernarySample
	TernaryNewton
)

// DefaultStrategy is TernarySample.
const DefaultStrategy = TernarySample

// Root is either an exact rational root (Rational != nil) or an
// isolating-interval root with the Sturm sequence certifying it.
type Root struct {
	Rational *rational.Rational
	Poly     *univariate.RationalPolynomial
	Interval interval.OpenInterval
	Seq      sturm.Sequence
}

// IsNumeric reports whether this root was isolated exactly as a
// rational number.
func (r Root) IsNumeric() bool { return r.Rational != nil }

// RealRoots isolates every real root of p, in strictly ascending order.
func RealRoots(p *univariate.RationalPolynomial, strategy Strategy) []Root {
	var roots []Root
	if p.Degree() == 0 {
		return roots
	}

	zeroRoot := p.CoeffAtDegree(0).IsZero()
	q := p
	if zeroRoot {
		q = stripZeroRoot(p)
	}
	if q.Degree() == 0 {
		if zeroRoot {
			zero := rational.Zero
			roots = append(roots, Root{Rational: &zero})
		}
		return roots
	}
	// A repeated factor adds no roots and corrupts sign variation counts
	// at the repeated root.
	q = q.SquareFreePart()

	seq := sturm.StandardSturmSequence(q)
	bound := sturm.CauchyBound(q)
	l, r := bound.Neg(), bound

	searchRealRoots(q, seq, interval.New(l, rational.Zero), &roots, strategy)
	searchRealRoots(q, seq, interval.New(rational.Zero, r), &roots, strategy)

	if zeroRoot {
		zero := rational.Zero
		roots = append(roots, Root{Rational: &zero})
	}
	sortRoots(roots)
	return roots
}

// sortRoots orders roots ascending. Isolating intervals are pairwise
// disjoint and free of roots at their bounds, so bound comparison
// separates every pair.
func sortRoots(roots []Root) {
	sort.Slice(roots, func(i, j int) bool { return rootLess(roots[i], roots[j]) })
}

func rootLess(a, b Root) bool {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		return a.Rational.Less(*b.Rational)
	case a.IsNumeric():
		return a.Rational.Cmp(b.Interval.Left) <= 0
	case b.IsNumeric():
		return a.Interval.Right.Cmp(*b.Rational) <= 0
	default:
		return a.Interval.Left.Less(b.Interval.Left)
	}
}

// stripZeroRoot returns p divided by its lowest power of x.
func stripZeroRoot(p *univariate.RationalPolynomial) *univariate.RationalPolynomial {
	shift := 0
	for shift <= p.Degree() && p.CoeffAtDegree(shift).IsZero() {
		shift++
	}
	coeffs := make([]rational.Rational, p.Degree()-shift+1)
	for i := range coeffs {
		coeffs[i] = p.CoeffAtDegree(i + shift)
	}
	out, _ := univariate.NewRationalPolynomial(coeffs)
	return out
}

// searchRealRoots recursively dissects i, appending every root of p
// found strictly inside it.
func searchRealRoots(p *univariate.RationalPolynomial, seq sturm.Sequence, i interval.OpenInterval, roots *[]Root, strategy Strategy) {
	rootCount := openRootCount(p, seq, i)
	if rootCount <= 0 {
		return
	}

	pivot := choosePivot(p, i, strategy)
	middleIsRoot := p.At(pivot).IsZero()
	if middleIsRoot {
		r := pivot
		*roots = append(*roots, Root{Rational: &r})
	}

	if rootCount == 1 {
		if middleIsRoot {
			return
		}
		*roots = append(*roots, isolatedRoot(p, seq, i))
		return
	}

	searchRealRoots(p, seq, interval.New(i.Left, pivot), roots, strategy)
	searchRealRoots(p, seq, interval.New(pivot, i.Right), roots, strategy)
}

// openRootCount returns the number of distinct roots of p strictly
// inside i: the sign variation difference counts the half-open
// (Left, Right], so a right-bound root is subtracted. Bounds can be
// roots because recursion splits at pivots.
func openRootCount(p *univariate.RationalPolynomial, seq sturm.Sequence, i interval.OpenInterval) int {
	n := seq.SignVariations(i.Left) - seq.SignVariations(i.Right)
	if p.At(i.Right).IsZero() {
		n--
	}
	return n
}

// isolatedRoot emits the single root inside i, first shrinking away any
// bound that is itself a root of p. The closure of an emitted interval
// must hold exactly one root. A rational root is emitted as its exact
// value; an irrational root keeps the shrunk interval.
func isolatedRoot(p *univariate.RationalPolynomial, seq sturm.Sequence, i interval.OpenInterval) Root {
	for p.At(i.Left).IsZero() || p.At(i.Right).IsZero() {
		m := i.Midpoint()
		if p.At(m).IsZero() {
			return Root{Rational: &m}
		}
		if openRootCount(p, seq, interval.New(i.Left, m)) == 1 {
			i = interval.New(i.Left, m)
		} else {
			i = interval.New(m, i.Right)
		}
	}
	// A rational root a/b has b dividing the leading coefficient L of p's
	// integer form, so it is the multiple of 1/L nearest the midpoint of
	// any enclosing interval narrower than 1/L.
	lc := p.PrimitivePart().LeadCoeff()
	j := i
	for j.Right.Sub(j.Left).Cmp(lc.Inv()) >= 0 {
		m := j.Midpoint()
		if p.At(m).IsZero() || openRootCount(p, seq, interval.New(j.Left, m)) == 1 {
			j = interval.New(j.Left, m)
		} else {
			j = interval.New(m, j.Right)
		}
	}
	if c := j.Midpoint().Mul(lc).Add(rational.FromFrac(1, 2)).Floor().Quo(lc); j.Meets(c) && p.At(c).IsZero() {
		return Root{Rational: &c}
	}
	return Root{Poly: p, Interval: i, Seq: seq}
}

// CommonRealRoots returns the real roots shared by every polynomial in
// ps: isolate the lowest-degree member, keep the roots at which every
// other member vanishes.
func CommonRealRoots(ps []*univariate.RationalPolynomial, strategy Strategy) []Root {
	if len(ps) == 0 {
		return nil
	}
	smallest := ps[0]
	for _, p := range ps[1:] {
		if p.Degree() < smallest.Degree() {
			smallest = p
		}
	}
	candidates := RealRoots(smallest, strategy)
	var common []Root
	for _, root := range candidates {
		isRootOfAll := true
		for _, p := range ps {
			if !vanishesAt(p, root) {
				isRootOfAll = false
				break
			}
		}
		if isRootOfAll {
			common = append(common, root)
		}
	}
	return common
}

// vanishesAt reports whether p is exactly zero at the root r
// identifies, via the generalized Sturm sequence of
// (r.Poly, r.Poly'*p). An interval-overlap test would false-positive
// when p has a distinct root inside the same interval.
func vanishesAt(p *univariate.RationalPolynomial, r Root) bool {
	if r.IsNumeric() {
		return p.At(*r.Rational).IsZero()
	}
	gseq := sturm.BuildSequence(r.Poly, r.Poly.Derivative().Mul(p))
	return gseq.SignVariations(r.Interval.Left)-gseq.SignVariations(r.Interval.Right) == 0
}

// AlgebraicPoint names one coordinate of an evaluation point by its
// defining polynomial in Var and an isolating interval.
type AlgebraicPoint struct {
	Var       variable.Variable
	Poly      mvpoly.Polynomial
	Isolation interval.OpenInterval
}

// RealRootsEval isolates the real roots of p evaluated at the given
// algebraic point: each evaluation variable is eliminated via a
// resultant against its defining polynomial, then the remaining
// univariate polynomial is isolated.
func RealRootsEval(p univariate.Polynomial, assignment []AlgebraicPoint, strategy Strategy) []Root {
	current := p.Underlying()
	for _, ap := range assignment {
		current = mvpoly.Resultant(ap.Poly, current, ap.Var)
	}
	rp, err := univariate.NewRationalFromExpr(p.MainVar(), current)
	if err != nil {
		panic("isolate: RealRootsEval: resultant elimination left non-rational coefficients")
	}
	return RealRoots(rp, strategy)
}
