package univariate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

func TestPolynomialDegreeAndCoeffsDelegateToMvpoly(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")
	y := ctx.Intern("y")

	// p = y*x^2 + x + 1, main var x
	p := mvpoly.FromTerms(mvpoly.GrLex,
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.NewMonomial(map[variable.Variable]int{x: 2, y: 1})},
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.VarMonomial(x, 1)},
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.One},
	)
	u := New(x, p)
	assert.Equal(t, 2, u.Degree())
	lc, ok := u.LCoeff().AsConstant()
	assert.False(t, ok) // leading coeff is "y", not a constant
	_ = lc
	assert.True(t, u.LCoeff().Equal(mvpoly.FromVariable(mvpoly.GrLex, y)))
}

func TestPolynomialResultantSharedRoot(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	a := mvpoly.FromTerms(mvpoly.GrLex, mvpoly.Term{Coeff: rational.One, Mono: mvpoly.VarMonomial(x, 1)}, mvpoly.Term{Coeff: rational.FromInt64(-1), Mono: mvpoly.One})
	b := a // same polynomial: shares every root with itself
	ua, ub := New(x, a), New(x, b)
	res := ua.Resultant(ub)
	v, ok := res.AsConstant()
	require.True(t, ok)
	assert.True(t, v.IsZero())
}

func TestPolynomialSquareFreePart(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	// (x-1)^2 = x^2 - 2x + 1, square-free part should be x - 1 up to a unit.
	sq := mvpoly.FromTerms(mvpoly.GrLex,
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.VarMonomial(x, 2)},
		mvpoly.Term{Coeff: rational.FromInt64(-2), Mono: mvpoly.VarMonomial(x, 1)},
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.One},
	)
	u := New(x, sq)
	sf := u.SquareFreePart()
	assert.Equal(t, 1, sf.Degree())
}
