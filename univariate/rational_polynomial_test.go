package univariate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

func rr(n int64) rational.Rational { return rational.FromInt64(n) }

func TestRationalPolynomialConstructorRejectsEmpty(t *testing.T) {
	_, err := NewRationalPolynomial(nil)
	require.Error(t, err)
}

func TestNewRationalFromExprRejectsForeignVariables(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")
	y := ctx.Intern("y")

	ok := mvpoly.FromTerms(mvpoly.GrLex,
		mvpoly.Term{Coeff: rational.FromInt64(2), Mono: mvpoly.VarMonomial(x, 2)},
		mvpoly.Term{Coeff: rational.FromInt64(-1), Mono: mvpoly.One})
	rp, err := NewRationalFromExpr(x, ok)
	require.NoError(t, err)
	assert.Equal(t, 2, rp.Degree())
	assert.True(t, rp.At(rational.FromInt64(1)).Equal(rational.FromInt64(1)))

	bad := mvpoly.FromTerms(mvpoly.GrLex,
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.NewMonomial(map[variable.Variable]int{x: 1, y: 1})})
	_, err = NewRationalFromExpr(x, bad)
	require.Error(t, err)
}

func TestRationalPolynomialAtHorner(t *testing.T) {
	// p = 1 + 2x + 3x^2, p(2) = 1+4+12 = 17
	p, err := NewRationalPolynomial([]rational.Rational{rr(1), rr(2), rr(3)})
	require.NoError(t, err)
	assert.True(t, p.At(rr(2)).Equal(rr(17)))
}

func TestRationalPolynomialDerivative(t *testing.T) {
	// d/dx (x^3) = 3x^2
	p, _ := NewRationalPolynomial([]rational.Rational{rr(0), rr(0), rr(0), rr(1)})
	d := p.Derivative()
	assert.Equal(t, 2, d.Degree())
	assert.True(t, d.CoeffAtDegree(2).Equal(rr(3)))
}

func TestRationalPolynomialEuclideanDiv(t *testing.T) {
	// (x^2 - 1) / (x - 1) = x + 1, remainder 0
	num, _ := NewRationalPolynomial([]rational.Rational{rr(-1), rr(0), rr(1)})
	den, _ := NewRationalPolynomial([]rational.Rational{rr(-1), rr(1)})
	quo, rem := num.EuclideanDiv(den)
	assert.True(t, rem.IsZero())
	want, _ := NewRationalPolynomial([]rational.Rational{rr(1), rr(1)})
	assert.True(t, quo.Equal(want))
}

func TestRationalPolynomialEuclideanDivWithRemainder(t *testing.T) {
	// (x^2 + 1) / (x - 1): quo = x+1, rem = 2
	num, _ := NewRationalPolynomial([]rational.Rational{rr(1), rr(0), rr(1)})
	den, _ := NewRationalPolynomial([]rational.Rational{rr(-1), rr(1)})
	quo, rem := num.EuclideanDiv(den)
	wantQ, _ := NewRationalPolynomial([]rational.Rational{rr(1), rr(1)})
	assert.True(t, quo.Equal(wantQ))
	assert.True(t, rem.Degree() == 0)
	assert.True(t, rem.CoeffAtDegree(0).Equal(rr(2)))
}

func TestRationalPolynomialContentPrimitivePart(t *testing.T) {
	// 4 + 6x = 2(2+3x)
	p, _ := NewRationalPolynomial([]rational.Rational{rr(4), rr(6)})
	assert.True(t, p.Content().Equal(rr(2)))
	pp := p.PrimitivePart()
	want, _ := NewRationalPolynomial([]rational.Rational{rr(2), rr(3)})
	assert.True(t, pp.Equal(want))
}

func TestRationalPolynomialGCD(t *testing.T) {
	// gcd((x-1)(x-2), (x-2)(x-3)) = x - 2, monic
	a, _ := NewRationalPolynomial([]rational.Rational{rr(2), rr(-3), rr(1)})
	b, _ := NewRationalPolynomial([]rational.Rational{rr(6), rr(-5), rr(1)})
	g := a.GCD(b)
	want, _ := NewRationalPolynomial([]rational.Rational{rr(-2), rr(1)})
	assert.True(t, g.Equal(want))
}

func TestRationalPolynomialSquareFreePart(t *testing.T) {
	// (x-1)^2 (x+1) = x^3 - x^2 - x + 1: separable part (x-1)(x+1), up
	// to normalization.
	p, _ := NewRationalPolynomial([]rational.Rational{rr(1), rr(-1), rr(-1), rr(1)})
	sf := p.SquareFreePart()
	assert.Equal(t, 2, sf.Degree())
	assert.True(t, sf.At(rr(1)).IsZero())
	assert.True(t, sf.At(rr(-1)).IsZero())
	assert.False(t, sf.At(rr(0)).IsZero())
}

func TestRationalPolynomialMulAndShift(t *testing.T) {
	// (x+1)(x-1) = x^2 - 1
	a, _ := NewRationalPolynomial([]rational.Rational{rr(1), rr(1)})
	b, _ := NewRationalPolynomial([]rational.Rational{rr(-1), rr(1)})
	prod := a.Mul(b)
	want, _ := NewRationalPolynomial([]rational.Rational{rr(-1), rr(0), rr(1)})
	assert.True(t, prod.Equal(want))

	shifted := a.ShiftRight(2)
	wantShift, _ := NewRationalPolynomial([]rational.Rational{rr(0), rr(0), rr(1), rr(1)})
	assert.True(t, shifted.Equal(wantShift))
}
