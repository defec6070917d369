package mvpoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

func r(n int64) rational.Rational { return rational.FromInt64(n) }

func TestPolynomialAddMul(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	// p = x^2 + 1, q = x - 1
	p := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 2)}, Term{Coeff: r(1), Mono: One})
	q := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 1)}, Term{Coeff: r(-1), Mono: One})

	testCases := []struct {
		name string
		got  Polynomial
		want map[int]int64 // degree -> coeff
	}{
		{"sum", p.Add(q), map[int]int64{2: 1, 1: 1, 0: 0}},
		{"product", p.Mul(q), map[int]int64{3: 1, 2: -1, 1: 1, 0: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for deg, want := range tc.want {
				coeff := tc.got.CoeffIn(x, deg)
				c, ok := coeff.AsConstant()
				require.True(t, ok)
				assert.True(t, c.Equal(r(want)), "degree %d: want %d got %s", deg, want, c.String())
			}
		})
	}
}

func TestLeadingTermGrLexVsLex(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")
	y := ctx.Intern("y")

	// x*y^2 vs x^2 : grlex picks x*y^2 (total degree 3 > 2), lex picks x^2.
	t1 := Term{Coeff: r(1), Mono: NewMonomial(map[variable.Variable]int{x: 1, y: 2})}
	t2 := Term{Coeff: r(1), Mono: NewMonomial(map[variable.Variable]int{x: 2})}

	grlex := FromTerms(GrLex, t1, t2)
	assert.True(t, grlex.LeadingMonomial().Equal(t1.Mono))

	lex := FromTerms(Lex, t1, t2)
	assert.True(t, lex.LeadingMonomial().Equal(t2.Mono))
}

func TestGrevLexOrdersEqualDegreeMonomials(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")
	y := ctx.Intern("y")

	// at equal total degree grevlex ranks x^2 > x*y > y^2: the monomial
	// with the smaller exponent in the last (largest) variable wins.
	xx := NewMonomial(map[variable.Variable]int{x: 2})
	xy := NewMonomial(map[variable.Variable]int{x: 1, y: 1})
	yy := NewMonomial(map[variable.Variable]int{y: 2})

	p := FromTerms(GrevLex,
		Term{Coeff: r(1), Mono: yy},
		Term{Coeff: r(1), Mono: xx},
		Term{Coeff: r(1), Mono: xy},
	)
	terms := p.Terms()
	require.Len(t, terms, 3)
	assert.True(t, terms[0].Mono.Equal(xx))
	assert.True(t, terms[1].Mono.Equal(xy))
	assert.True(t, terms[2].Mono.Equal(yy))
}

func TestDivideExact(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	// (x^2 - 1) / (x - 1) = x + 1, remainder 0.
	num := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 2)}, Term{Coeff: r(-1), Mono: One})
	den := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 1)}, Term{Coeff: r(-1), Mono: One})

	quo, rem := num.Divide([]Polynomial{den})
	assert.True(t, rem.IsZero())
	expectQuo := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 1)}, Term{Coeff: r(1), Mono: One})
	assert.True(t, quo[0].Equal(expectQuo))
}

func TestSPolynomialCancelsLeadingTerms(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")
	y := ctx.Intern("y")

	// f = x*y - 1, g = y^2 - 1 --> classic Groebner textbook example.
	f := FromTerms(GrLex, Term{Coeff: r(1), Mono: NewMonomial(map[variable.Variable]int{x: 1, y: 1})}, Term{Coeff: r(-1), Mono: One})
	g := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(y, 2)}, Term{Coeff: r(-1), Mono: One})

	s := SPolynomial(f, g)
	// S(f,g) = y*(f) - x*(g) = y(xy-1) - x(y^2-1) = xy^2-y -xy^2+x = x - y
	want := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 1)}, Term{Coeff: r(-1), Mono: VarMonomial(y, 1)})
	assert.True(t, s.Equal(want))
}

func TestContentPrimitivePart(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	// 4x^2 + 6 = 2*(2x^2+3)
	p := FromTerms(GrLex, Term{Coeff: r(4), Mono: VarMonomial(x, 2)}, Term{Coeff: r(6), Mono: One})
	c := p.Content()
	assert.True(t, c.Equal(r(2)))

	pp := p.PrimitivePart()
	want := FromTerms(GrLex, Term{Coeff: r(2), Mono: VarMonomial(x, 2)}, Term{Coeff: r(3), Mono: One})
	assert.True(t, pp.Equal(want))
}

func TestResultantOfLinearFactors(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	// resultant_x(x-1, x-2) = (1-2) up to sign convention = -1 or 1;
	// check magnitude only, and that resultant of a common-root pair is 0.
	a := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 1)}, Term{Coeff: r(-1), Mono: One})
	b := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 1)}, Term{Coeff: r(-2), Mono: One})
	res := Resultant(a, b, x)
	c, ok := res.AsConstant()
	require.True(t, ok)
	assert.True(t, c.Abs().Equal(r(1)))

	// shared root at x=1
	c2 := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 1)}, Term{Coeff: r(-1), Mono: One})
	res2 := Resultant(a, c2, x)
	v2, ok := res2.AsConstant()
	require.True(t, ok)
	assert.True(t, v2.IsZero())
}

func TestDiff(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	// d/dx (x^3) = 3x^2
	p := FromTerms(GrLex, Term{Coeff: r(1), Mono: VarMonomial(x, 3)})
	d := p.Diff(x)
	want := FromTerms(GrLex, Term{Coeff: r(3), Mono: VarMonomial(x, 2)})
	assert.True(t, d.Equal(want))
}
