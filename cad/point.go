package cad

import (
	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/ralg"
	"github.com/real-cad/cad/variable"
)

// Point is a real algebraic point, one ralg.Number per coordinate in
// the order of the CAD's variable list.
type Point struct {
	components []ralg.Number
}

// Dim returns the number of coordinates.
func (r Point) Dim() int { return len(r.components) }

// At returns r's i'th coordinate.
func (r Point) At(i int) ralg.Number { return r.components[i] }

// evaluateSign evaluates the sign of p at r's first len(vars)
// coordinates, accumulating the value through real-algebraic
// arithmetic term by term.
func evaluateSign(p mvpoly.Polynomial, vars variable.List, r Point) (int, error) {
	if len(vars) > r.Dim() {
		return 0, caderr.New(caderr.AssignmentIncomplete, "cad: evaluateSign: constraint needs %d coordinates, point has %d", len(vars), r.Dim())
	}
	acc := ralg.Zero
	for _, t := range p.Terms() {
		term := ralg.FromRational(t.Coeff)
		for _, v := range t.Mono.Vars() {
			exp := t.Mono.ExpOf(v)
			if exp == 0 {
				continue
			}
			idx := vars.IndexOf(v)
			if idx < 0 {
				return 0, caderr.New(caderr.VariableMismatch, "cad: evaluateSign: polynomial mentions variable %s not in the constraint's variable list", v.Name())
			}
			base := r.At(idx)
			pw, err := base.Pow(exp)
			if err != nil {
				return 0, err
			}
			term, err = term.Mul(pw)
			if err != nil {
				return 0, err
			}
		}
		var err error
		acc, err = acc.Add(term)
		if err != nil {
			return 0, err
		}
	}
	return acc.Sign(), nil
}
