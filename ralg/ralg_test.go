package ralg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/real-cad/cad/interval"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/univariate"
)

func rr(n int64) rational.Rational { return rational.FromInt64(n) }

func mustPoly(t *testing.T, coeffs []rational.Rational) *univariate.RationalPolynomial {
	p, err := univariate.NewRationalPolynomial(coeffs)
	require.NoError(t, err)
	return p
}

// sqrt2 returns the positive root of x^2 - 2 in interval representation.
func sqrt2(t *testing.T) Number {
	p := mustPoly(t, []rational.Rational{rr(-2), rr(0), rr(1)})
	n, err := FromIsolation(p, interval.New(rr(0), rr(2)))
	require.NoError(t, err)
	require.False(t, n.IsNumeric())
	return n
}

func TestFromRationalIsNumeric(t *testing.T) {
	n := FromRational(rr(3))
	assert.True(t, n.IsNumeric())
	v, ok := n.RationalValue()
	assert.True(t, ok)
	assert.True(t, v.Equal(rr(3)))
}

func TestFromIsolationCollapsesLinearToNumeric(t *testing.T) {
	// 2x - 4 = 0 => x = 2, exactly rational despite being given as an
	// interval root.
	p := mustPoly(t, []rational.Rational{rr(-4), rr(2)})
	n, err := FromIsolation(p, interval.New(rr(0), rr(10)))
	require.NoError(t, err)
	assert.True(t, n.IsNumeric())
	v, _ := n.RationalValue()
	assert.True(t, v.Equal(rr(2)))
}

func TestFromIsolationRejectsConstant(t *testing.T) {
	p := mustPoly(t, []rational.Rational{rr(5)})
	_, err := FromIsolation(p, interval.New(rr(-1), rr(1)))
	assert.Error(t, err)
}

func TestSqrt2Sign(t *testing.T) {
	n := sqrt2(t)
	assert.Equal(t, 1, n.Sign())
}

func TestSqrt2ApproximateValueWithinInterval(t *testing.T) {
	n := sqrt2(t)
	v := n.ApproximateValue()
	assert.True(t, v.Cmp(rr(0)) > 0)
	assert.True(t, v.Cmp(rr(2)) < 0)
}

func TestRefineShrinksInterval(t *testing.T) {
	n := sqrt2(t)
	before := n.interval.Right.Sub(n.interval.Left)
	n.Refine()
	after := n.interval.Right.Sub(n.interval.Left)
	assert.True(t, after.Cmp(before) < 0)
}

func TestRefineToNarrowsBelowEpsilon(t *testing.T) {
	n := sqrt2(t)
	eps := rational.FromFrac(1, 100)
	n.RefineTo(eps)
	if !n.IsNumeric() {
		width := n.interval.Right.Sub(n.interval.Left)
		assert.True(t, width.Cmp(eps) <= 0)
	}
}

func TestSignOfPolynomialAtSqrt2(t *testing.T) {
	n := sqrt2(t)
	// x - 1: positive at sqrt(2) ~ 1.414
	q := mustPoly(t, []rational.Rational{rr(-1), rr(1)})
	assert.Equal(t, 1, n.SignOf(q))
	// x - 2: negative at sqrt(2)
	q2 := mustPoly(t, []rational.Rational{rr(-2), rr(1)})
	assert.Equal(t, -1, n.SignOf(q2))
}

func TestNthRootSquareOfTwo(t *testing.T) {
	n, err := NthRoot(rr(2), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Sign())
	v := n.ApproximateValue()
	assert.True(t, v.Cmp(rr(1)) > 0)
	assert.True(t, v.Cmp(rr(2)) < 0)
}

func TestNthRootEvenNegativeErrors(t *testing.T) {
	_, err := NthRoot(rr(-4), 2)
	assert.Error(t, err)
}

func TestNthRootOddNegative(t *testing.T) {
	// cube root of -8 is -2, exactly rational.
	n, err := NthRoot(rr(-8), 3)
	require.NoError(t, err)
	require.True(t, n.IsNumeric())
	v, _ := n.RationalValue()
	assert.True(t, v.Equal(rr(-2)))
}

func TestAddTwoRationals(t *testing.T) {
	a := FromRational(rr(2))
	b := FromRational(rr(3))
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.IsNumeric())
	v, _ := sum.RationalValue()
	assert.True(t, v.Equal(rr(5)))
}

func TestMulSqrt2BySelfIsTwo(t *testing.T) {
	n := sqrt2(t)
	prod, err := n.Mul(n)
	require.NoError(t, err)
	// the product's isolating interval must contain exactly 2.
	if prod.IsNumeric() {
		v, _ := prod.RationalValue()
		assert.True(t, v.Equal(rr(2)))
	} else {
		assert.True(t, prod.interval.Contains(rr(2)))
	}
}

func TestNegSqrt2IsNegative(t *testing.T) {
	n := sqrt2(t)
	neg := n.Neg()
	assert.Equal(t, -1, neg.Sign())
}

func TestInverseOfTwo(t *testing.T) {
	n := FromRational(rr(2))
	inv, err := n.Inverse()
	require.NoError(t, err)
	v, _ := inv.RationalValue()
	assert.True(t, v.Equal(rational.FromFrac(1, 2)))
}

func TestInverseOfZeroErrors(t *testing.T) {
	_, err := Zero.Inverse()
	assert.Error(t, err)
}

func TestPowSquaresSqrt2(t *testing.T) {
	n := sqrt2(t)
	sq, err := n.Pow(2)
	require.NoError(t, err)
	if sq.IsNumeric() {
		v, _ := sq.RationalValue()
		assert.True(t, v.Equal(rr(2)))
	} else {
		assert.True(t, sq.interval.Contains(rr(2)))
	}
}

func TestEqualRationals(t *testing.T) {
	a := FromRational(rr(7))
	b := FromRational(rr(7))
	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEqualSqrt2AgainstItself(t *testing.T) {
	a := sqrt2(t)
	b := sqrt2(t)
	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEqualSqrt2AgainstDifferentDefiningPolynomial(t *testing.T) {
	// (x^2-2)(x-5) isolates the same sqrt(2) root as x^2-2 but via a
	// different, higher-degree defining polynomial: Equal must still
	// recognize the shared root via refine_avoiding rather than
	// requiring identical polynomials.
	a := sqrt2(t)
	xMinus5 := mustPoly(t, []rational.Rational{rr(-5), rr(1)})
	xSqMinus2 := mustPoly(t, []rational.Rational{rr(-2), rr(0), rr(1)})
	product := xSqMinus2.Mul(xMinus5)
	b, err := FromIsolation(product, interval.New(rr(1), rr(2)))
	require.NoError(t, err)
	require.False(t, b.IsNumeric())

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEqualSqrt2NotEqualNegSqrt2(t *testing.T) {
	a := sqrt2(t)
	b := sqrt2(t).Neg()
	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestLessSqrt2AndThree(t *testing.T) {
	a := sqrt2(t)
	b := FromRational(rr(3))
	less, err := a.Less(b)
	require.NoError(t, err)
	assert.True(t, less)
	less2, err := b.Less(a)
	require.NoError(t, err)
	assert.False(t, less2)
}

func TestAddSqrt2AndNegSqrt2IsZero(t *testing.T) {
	a := sqrt2(t)
	b := sqrt2(t).Neg()
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Sign())
}

func TestMulSignIsNormalized(t *testing.T) {
	// -sqrt(2) * -sqrt(2) = 2 > 0: the product's interval must not be
	// left straddling zero, or Sign would read the wrong bound.
	n := sqrt2(t).Neg()
	prod, err := n.Mul(n)
	require.NoError(t, err)
	assert.Equal(t, 1, prod.Sign())
}

func TestLessIntervalAgainstOutsideRational(t *testing.T) {
	// 0 sits outside sqrt(2)'s isolating interval but well inside any
	// padded surrogate around it; the comparison must still separate.
	a := sqrt2(t)
	zero := FromRational(rr(0))
	less, err := zero.Less(a)
	require.NoError(t, err)
	assert.True(t, less)
	less2, err := a.Less(zero)
	require.NoError(t, err)
	assert.False(t, less2)
}

func TestInverseOfSqrt2(t *testing.T) {
	n := sqrt2(t)
	inv, err := n.Inverse()
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Sign())
	// 1/sqrt(2) squares back to 1/2.
	sq, err := inv.Mul(inv)
	require.NoError(t, err)
	half := mustPoly(t, []rational.Rational{rational.FromFrac(-1, 2), rr(1)}) // x - 1/2
	assert.Equal(t, 0, sq.SignOf(half))
}

func TestLessRationals(t *testing.T) {
	a := FromRational(rr(2))
	b := FromRational(rr(3))
	less, err := a.Less(b)
	require.NoError(t, err)
	assert.True(t, less)
	less2, err := b.Less(a)
	require.NoError(t, err)
	assert.False(t, less2)
}

func TestRefineAvoidingNumericExactMatch(t *testing.T) {
	n := FromRational(rr(4))
	assert.True(t, n.RefineAvoiding(rr(4)))
	assert.False(t, n.RefineAvoiding(rr(5)))
}

// TestRefineAvoidingIntervalLeftBoundTouching avoids the left bound of
// a number's own isolating interval (sqrt(2) over (1,2)): the interval
// only shrinks toward 1, so resampling against a stale far bound would
// spin forever here.
func TestRefineAvoidingIntervalLeftBoundTouching(t *testing.T) {
	p := mustPoly(t, []rational.Rational{rr(-2), rr(0), rr(1)}) // x^2 - 2
	n, err := FromIsolation(p, interval.New(rr(1), rr(2)))
	require.NoError(t, err)
	require.False(t, n.IsNumeric())
	require.True(t, n.interval.Left.Equal(rr(1)))

	result := n.RefineAvoiding(rr(1))

	assert.False(t, result)
	assert.False(t, n.interval.Meets(rr(1)))
	assert.Equal(t, 1, n.Sign())
	assert.True(t, n.interval.Left.Cmp(rr(1)) > 0)
}

// TestRefineAvoidingIntervalRightBoundTouching covers the mirrored
// isLeft == false branch: avoiding the right bound of (−2,−1), which
// isolates −sqrt(2).
func TestRefineAvoidingIntervalRightBoundTouching(t *testing.T) {
	p := mustPoly(t, []rational.Rational{rr(-2), rr(0), rr(1)}) // x^2 - 2
	n, err := FromIsolation(p, interval.New(rr(-2), rr(-1)))
	require.NoError(t, err)
	require.False(t, n.IsNumeric())
	require.True(t, n.interval.Right.Equal(rr(-1)))

	result := n.RefineAvoiding(rr(-1))

	assert.False(t, result)
	assert.False(t, n.interval.Meets(rr(-1)))
	assert.Equal(t, -1, n.Sign())
	assert.True(t, n.interval.Right.Cmp(rr(-1)) < 0)
}
