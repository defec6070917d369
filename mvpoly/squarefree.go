package mvpoly

import "github.com/real-cad/cad/variable"

// SquareFreePartIn returns the primitive part of p / gcd(p, dp/dv) with
// respect to v.
func (p Polynomial) SquareFreePartIn(v variable.Variable) Polynomial {
	if p.IsZero() || p.DegreeIn(v) == 0 {
		return p
	}
	g := GCD(p, p.Diff(v), v)
	if g.IsConstant() {
		return p.PrimitivePart()
	}
	q, _, _ := p.PseudoDivide(g, v)
	return q.PrimitivePart()
}
