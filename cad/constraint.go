package cad

import (
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/variable"
)

// Constraint is a sign condition on a polynomial: the sign of
// Polynomial at a point equals Sign, or differs from it when Negated.
type Constraint struct {
	Polynomial mvpoly.Polynomial
	Sign       int // -1, 0, or 1
	Variables  variable.List
	Negated    bool
}

// NewConstraint builds a Constraint. p must not mention any variable
// outside vars.
func NewConstraint(p mvpoly.Polynomial, sign int, vars variable.List, negated bool) Constraint {
	return Constraint{Polynomial: p, Sign: sign, Variables: vars, Negated: negated}
}

// SatisfiedBy reports whether r satisfies c.
func (c Constraint) SatisfiedBy(r Point) (bool, error) {
	sign, err := evaluateSign(c.Polynomial, c.Variables, r)
	if err != nil {
		return false, err
	}
	matches := sign == c.Sign
	if c.Negated {
		return !matches, nil
	}
	return matches, nil
}

// satisfiesAll reports whether r satisfies every constraint in cs.
func satisfiesAll(r Point, cs []Constraint) (bool, error) {
	for _, c := range cs {
		ok, err := c.SatisfiedBy(r)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
