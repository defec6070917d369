// Package groebner implements Buchberger's algorithm for computing a
// reduced Groebner basis: a pair queue drives S-polynomial construction
// and reduction, with a short circuit to the basis {1} when a remainder
// reduces to a nonzero constant.
package groebner

import "github.com/real-cad/cad/mvpoly"

type pair struct{ i, j int }

// Groebner computes a Groebner basis of the ideal generated by a set of
// multivariate polynomials.
type Groebner struct {
	ideal   []mvpoly.Polynomial
	basis   []mvpoly.Polynomial
	pairs   []pair
	reduced bool
}

// New builds a Groebner object from the given generators, enqueuing
// every unordered pair.
func New(polys ...mvpoly.Polynomial) *Groebner {
	g := &Groebner{
		ideal: append([]mvpoly.Polynomial{}, polys...),
		basis: append([]mvpoly.Polynomial{}, polys...),
	}
	g.fillPairs()
	return g
}

func (g *Groebner) fillPairs() {
	for i := range g.basis {
		for j := i + 1; j < len(g.basis); j++ {
			g.pairs = append(g.pairs, pair{i, j})
		}
	}
}

// AddPolynomial appends p to the basis and enqueues pairs against p
// only.
func (g *Groebner) AddPolynomial(p mvpoly.Polynomial) {
	newIdx := len(g.basis)
	for i := 0; i < newIdx; i++ {
		g.pairs = append(g.pairs, pair{i, newIdx})
	}
	g.basis = append(g.basis, p)
	g.ideal = append(g.ideal, p)
	g.reduced = false
}

// Solve runs Buchberger's algorithm to exhaustion: pop a pair, reduce
// its S-polynomial modulo the basis, append a nonzero remainder. A
// constant remainder collapses the basis to {1} and stops.
func (g *Groebner) Solve() {
	for len(g.pairs) > 0 {
		p := g.pairs[0]
		g.pairs = g.pairs[1:]

		s := mvpoly.SPolynomial(g.basis[p.i], g.basis[p.j])
		rem := s.Remainder(g.basis)
		if rem.IsZero() {
			continue
		}
		if rem.IsConstant() {
			g.basis = []mvpoly.Polynomial{rem.Normalize()}
			g.pairs = nil
			g.reduced = true
			return
		}
		g.AddPolynomial(rem)
	}
}

// Reduce minimises then fully reduces the basis: drop members whose
// leading monomial is divisible by another's, then replace each
// remaining member by its remainder modulo the others, normalised to a
// unit leading coefficient.
func (g *Groebner) Reduce() {
	if g.reduced {
		return
	}
	solved := len(g.pairs) == 0

	minimized := make([]mvpoly.Polynomial, 0, len(g.basis))
	for i, p := range g.basis {
		divisible := false
		for j, q := range g.basis {
			if i == j {
				continue
			}
			if q.LeadingTerm().Divides(p.LeadingTerm()) {
				// Equal leading monomials divide each other; keep the
				// earlier member.
				if j > i && q.LeadingMonomial().Equal(p.LeadingMonomial()) {
					continue
				}
				divisible = true
				break
			}
		}
		if !divisible {
			minimized = append(minimized, p)
		}
	}

	reducedBasis := make([]mvpoly.Polynomial, 0, len(minimized))
	for i, p := range minimized {
		others := append(append([]mvpoly.Polynomial{}, minimized[:i]...), minimized[i+1:]...)
		reducedBasis = append(reducedBasis, p.Remainder(others).Normalize())
	}
	g.basis = reducedBasis

	if solved {
		g.reduced = true
	} else {
		g.pairs = nil
		g.fillPairs()
	}
}

// Basis returns a copy of the current basis.
func (g *Groebner) Basis() []mvpoly.Polynomial {
	return append([]mvpoly.Polynomial{}, g.basis...)
}

// IsConstant reports whether the basis has collapsed to {1}.
func (g *Groebner) IsConstant() bool {
	return len(g.basis) == 1 && g.basis[0].IsConstant()
}

// IsEmpty reports whether the ideal has no generators.
func (g *Groebner) IsEmpty() bool { return len(g.ideal) == 0 }

// Size returns the number of polynomials currently in the basis.
func (g *Groebner) Size() int { return len(g.basis) }

// IsReduced reports whether Reduce has produced the final reduced
// basis.
func (g *Groebner) IsReduced() bool { return g.reduced }

// IsSolved reports whether the pair queue is empty.
func (g *Groebner) IsSolved() bool { return len(g.pairs) == 0 }

// HasBeenReduced reports whether the current basis differs from the
// original generating set.
func (g *Groebner) HasBeenReduced() bool {
	if len(g.ideal) != len(g.basis) {
		return true
	}
	for i := range g.ideal {
		if !g.ideal[i].Equal(g.basis[i]) {
			return true
		}
	}
	return false
}

// NormalForm reduces p modulo the current basis.
func (g *Groebner) NormalForm(p mvpoly.Polynomial) mvpoly.Polynomial {
	return p.Remainder(g.basis)
}

// Simplify computes the reduced Groebner basis of polys and replaces
// each input by its normal form whenever that form is nonzero and no
// larger in total degree.
func Simplify(polys []mvpoly.Polynomial) []mvpoly.Polynomial {
	if len(polys) == 0 {
		return nil
	}
	g := New(polys...)
	g.Solve()
	g.Reduce()
	out := make([]mvpoly.Polynomial, len(polys))
	for i, p := range polys {
		nf := g.NormalForm(p)
		if !nf.IsZero() && totalDegree(nf) <= totalDegree(p) {
			out[i] = nf
		} else {
			out[i] = p
		}
	}
	return out
}

func totalDegree(p mvpoly.Polynomial) int {
	max := 0
	for _, t := range p.Terms() {
		if t.Mono.Degree() > max {
			max = t.Mono.Degree()
		}
	}
	return max
}
