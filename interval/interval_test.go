package interval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

func ri(n int64) rational.Rational { return rational.FromInt64(n) }

func TestContainsAndMeets(t *testing.T) {
	i := New(ri(1), ri(3))
	assert.True(t, i.Contains(ri(2)))
	assert.False(t, i.Contains(ri(1)))
	assert.True(t, i.Meets(ri(1)))
	assert.True(t, i.Meets(ri(3)))
}

func TestIntersection(t *testing.T) {
	a := New(ri(0), ri(5))
	b := New(ri(3), ri(10))
	got := a.Intersection(b)
	assert.True(t, got.Equal(New(ri(3), ri(5))))

	disjoint := New(ri(100), ri(200))
	assert.True(t, a.Intersection(disjoint).IsZero())
}

func TestMulCornerHull(t *testing.T) {
	a := New(ri(-2), ri(3))
	b := New(ri(-1), ri(4))
	got := a.Mul(b)
	// corners: -2*-1=2, -2*4=-8, 3*-1=-3, 3*4=12 -> [-8, 12]
	assert.True(t, got.Equal(New(ri(-8), ri(12))))
}

func TestDivRejectsZeroContainingDivisor(t *testing.T) {
	a := New(ri(1), ri(2))
	zeroStraddling := New(ri(-1), ri(1))
	_, err := a.Div(zeroStraddling)
	require.Error(t, err)
}

func TestSampleWithinBounds(t *testing.T) {
	testCases := []OpenInterval{
		New(rational.FromFrac(1, 3), rational.FromFrac(1, 2)),
		New(ri(-5), ri(-1)),
		New(ri(2), ri(7)),
		New(rational.FromFrac(1, 10), rational.FromFrac(3, 10)),
	}
	for _, iv := range testCases {
		s := iv.Sample()
		assert.True(t, iv.Left.Less(s) && s.Less(iv.Right), "sample %s not in (%s, %s)", s, iv.Left, iv.Right)

		// denominator bound: denom(s) <= d*(d+1) where d = denom(l)*denom(r)
		d := new(big.Int).Mul(iv.Left.Denom(), iv.Right.Denom())
		bound := new(big.Int).Mul(d, new(big.Int).Add(d, big.NewInt(1)))
		assert.True(t, s.Denom().Cmp(bound) <= 0, "sample %s denominator exceeds bound %s", s, bound)
	}
}

func TestSampleZeroStraddling(t *testing.T) {
	iv := New(ri(-1), ri(1))
	assert.True(t, iv.Sample().IsZero())
}

func TestSampleFastFallsBackToMidpointForHugeBounds(t *testing.T) {
	huge := rational.FromBigInts(new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil), big.NewInt(1))
	iv := New(huge, huge.Add(ri(2)))
	s := iv.SampleFast()
	assert.True(t, s.Equal(iv.Midpoint()))
}

func TestEvaluateHorner(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	// p = x^2 + 1, x in [1, 2] => p in [2, 5]
	p := mvpoly.FromTerms(mvpoly.GrLex, mvpoly.Term{Coeff: rational.One, Mono: mvpoly.VarMonomial(x, 2)}, mvpoly.Term{Coeff: rational.One, Mono: mvpoly.One})
	got := Evaluate(p, map[variable.Variable]OpenInterval{x: New(ri(1), ri(2))})
	assert.True(t, got.Left.Equal(ri(2)))
	assert.True(t, got.Right.Equal(ri(5)))
}
