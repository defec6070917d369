package cad

import (
	"github.com/real-cad/cad/groebner"
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/univariate"
	"github.com/real-cad/cad/variable"
)

// Truncation returns {p, p-lt(p), p-lt(p)-lt(p-lt(p)), ...} down to a
// constant, where the leading term is taken degree-wise in the main
// variable.
func Truncation(p univariate.Polynomial) []univariate.Polynomial {
	out := []univariate.Polynomial{p}
	cur := p
	for cur.Degree() > 0 {
		coeffs := cur.Coeffs()[:cur.Degree()]
		next := mvpoly.FromCoeffsIn(cur.Underlying().Order(), cur.MainVar(), coeffs)
		cur = univariate.New(cur.MainVar(), next)
		out = append(out, cur)
	}
	return out
}

// TruncationSet applies Truncation to every member of P.
func TruncationSet(P []univariate.Polynomial) []univariate.Polynomial {
	var out []univariate.Polynomial
	for _, p := range P {
		out = append(out, Truncation(p)...)
	}
	return out
}

// asNewVar reinterprets m as a univariate polynomial in nextVar.
func asNewVar(m mvpoly.Polynomial, nextVar variable.Variable) univariate.Polynomial {
	return univariate.New(nextVar, m)
}

// Elimination appends p's single-polynomial projection factors to
// eliminated: the leading coefficient of every truncation, and the
// principal subresultant coefficients of each truncation against its
// derivative.
func Elimination(p univariate.Polynomial, nextVar variable.Variable, eliminated *[]univariate.Polynomial) {
	for _, t := range Truncation(p) {
		*eliminated = append(*eliminated, asNewVar(t.LCoeff(), nextVar))
		td := t.Diff()
		if td.IsZero() {
			continue
		}
		for _, sc := range t.PrincipalSubresultantCoefficients(td) {
			*eliminated = append(*eliminated, asNewVar(sc, nextVar))
		}
	}
}

// EliminationPair appends the projection factors of the pair (p, q):
// the principal subresultant coefficients of every truncation of p
// against q.
func EliminationPair(p, q univariate.Polynomial, nextVar variable.Variable, eliminated *[]univariate.Polynomial) {
	for _, t := range Truncation(p) {
		for _, sc := range t.PrincipalSubresultantCoefficients(q) {
			*eliminated = append(*eliminated, asNewVar(sc, nextVar))
		}
	}
}

// EliminationSet projects P into nextVar: all single-polynomial and
// pairwise elimination factors, united with duplicates removed, made
// primitive and stripped of constants. SimplifyBySquarefreeing replaces
// every member by its square-free part.
func EliminationSet(P []univariate.Polynomial, nextVar variable.Variable, settings Settings) []univariate.Polynomial {
	if len(P) == 0 {
		return nil
	}
	var single, pairwise []univariate.Polynomial
	for _, p := range P {
		Elimination(p, nextVar, &single)
	}
	for i := 0; i < len(P); i++ {
		for j := i + 1; j < len(P); j++ {
			EliminationPair(P[i], P[j], nextVar, &pairwise)
		}
	}
	set := univariate.NewSet().Unite(univariate.NewSet(single...)).Unite(univariate.NewSet(pairwise...))
	set = set.RemoveConstants().MakePrimitive()
	out := set.Polys()
	if settings.SimplifyBySquarefreeing {
		for i, p := range out {
			out[i] = p.SquareFreePart()
		}
		out = univariate.NewSet().Unite(univariate.NewSet(out...)).MakePrimitive().Polys()
	}
	return applyOrdering(out, settings.Ordering)
}

// applyOrdering stably reorders an elimination set per the Ordering
// setting.
func applyOrdering(polys []univariate.Polynomial, ordering Ordering) []univariate.Polynomial {
	if ordering == NoPreference || len(polys) < 2 {
		return polys
	}
	priority := func(p univariate.Polynomial) int {
		d := p.Degree()
		switch ordering {
		case LowDegreeFirst:
			return d
		case OddDegreeFirst:
			if d%2 == 1 {
				return 0
			}
			return 1
		case EvenDegreeFirst:
			if d%2 == 0 {
				return 0
			}
			return 1
		default:
			return 0
		}
	}
	out := make([]univariate.Polynomial, len(polys))
	copy(out, polys)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && priority(out[j]) < priority(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// simplifyEquationalByGroebner replaces every equational constraint
// polynomial in level0 by its reduced Groebner normal form when that
// form does not increase the degree in the main variable.
func simplifyEquationalByGroebner(level0 []univariate.Polynomial, constraints []Constraint) []univariate.Polynomial {
	var equational []mvpoly.Polynomial
	for _, c := range constraints {
		if c.Sign == 0 && !c.Negated {
			equational = append(equational, c.Polynomial)
		}
	}
	if len(equational) == 0 {
		return level0
	}
	simplified := groebner.Simplify(equational)
	out := make([]univariate.Polynomial, len(level0))
	copy(out, level0)
	for i, p := range out {
		for j, eq := range equational {
			if p.Underlying().Equal(eq) && j < len(simplified) {
				cand := simplified[j]
				if cand.DegreeIn(p.MainVar()) <= p.Underlying().DegreeIn(p.MainVar()) {
					out[i] = univariate.New(p.MainVar(), cand)
				}
			}
		}
	}
	return out
}
