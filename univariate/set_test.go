package univariate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

func TestSetRemoveConstants(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	constant := New(x, mvpoly.FromRational(mvpoly.GrLex, rational.FromInt64(5)))
	linear := New(x, mvpoly.FromVariable(mvpoly.GrLex, x))

	s := NewSet(constant, linear).RemoveConstants()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Polys()[0].Degree())
}

func TestSetUniteDedups(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")

	p := New(x, mvpoly.FromVariable(mvpoly.GrLex, x))
	q := New(x, mvpoly.FromVariable(mvpoly.GrLex, x)) // structurally equal to p
	r := New(x, mvpoly.FromRational(mvpoly.GrLex, rational.FromInt64(7)))

	s1 := NewSet(p)
	s2 := NewSet(q, r)
	united := s1.Unite(s2)
	assert.Equal(t, 2, united.Len())
}

func TestSetIsOnlyRationalAndToRational(t *testing.T) {
	ctx := variable.NewContext()
	x := ctx.Intern("x")
	y := ctx.Intern("y")

	rationalOne := New(x, mvpoly.FromTerms(mvpoly.GrLex,
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.VarMonomial(x, 2)},
		mvpoly.Term{Coeff: rational.FromInt64(3), Mono: mvpoly.One}))
	assert.True(t, NewSet(rationalOne).IsOnlyRational())

	mixed := New(x, mvpoly.FromTerms(mvpoly.GrLex,
		mvpoly.Term{Coeff: rational.One, Mono: mvpoly.NewMonomial(map[variable.Variable]int{x: 1, y: 1})}))
	assert.False(t, NewSet(mixed).IsOnlyRational())

	out := NewSet(rationalOne).ToRational()
	assert.Len(t, out, 1)
	assert.True(t, out[0].At(rational.FromInt64(1)).Equal(rational.FromInt64(4)))
}
