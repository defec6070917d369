package cad

import (
	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/isolate"
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/ralg"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/univariate"
	"github.com/real-cad/cad/variable"
)

// CAD is a cylindrical algebraic decomposition under construction: an
// ordered variable list, one elimination set per level, a sample tree
// shared across checks, and the settings controlling projection and
// lifting.
//
// Lifting positions and per-level sample lists are not persisted across
// liftCheck calls; each call seeds them from the elimination set and
// the node's current children.
type CAD struct {
	Variables       variable.List
	eliminationSets [][]univariate.Polynomial
	root            *node
	isComplete      bool
	settings        Settings
}

// NewCAD builds a CAD over polys in the given variable order, running
// the full projection eagerly. constraints, if non-nil, supplies the
// equational constraints simplified when SimplifyByGroebner is set.
func NewCAD(polys []mvpoly.Polynomial, vars variable.List, constraints []Constraint, settings Settings) (*CAD, error) {
	if len(vars) == 0 {
		return nil, caderr.New(caderr.InvalidPolynomial, "cad: NewCAD: at least one variable is required")
	}
	settings = settings.normalize()
	dim := len(vars)

	level0 := make([]univariate.Polynomial, len(polys))
	for i, p := range polys {
		level0[i] = univariate.New(vars[0], p)
	}
	if settings.SimplifyByGroebner {
		level0 = simplifyEquationalByGroebner(level0, constraints)
	}

	sets := make([][]univariate.Polynomial, dim)
	sets[0] = level0
	for i := 1; i < dim; i++ {
		sets[i] = EliminationSet(sets[i-1], vars[i], settings)
	}

	if settings.SimplifyByRootCounting {
		sets[dim-1] = dropEvenDegreeRootless(sets[dim-1], settings.IsolationStrategy)
	}

	c := &CAD{
		Variables:       vars,
		eliminationSets: sets,
		root:            newRoot(),
		settings:        settings,
	}
	if len(sets[dim-1]) == 0 {
		c.isComplete = true
	}
	return c, nil
}

// dropEvenDegreeRootless removes every even-degree member of the
// univariate base level with no real roots.
func dropEvenDegreeRootless(baseLevel []univariate.Polynomial, strategy isolate.Strategy) []univariate.Polynomial {
	set := univariate.NewSet(baseLevel...)
	if !set.IsOnlyRational() {
		return baseLevel
	}
	rps := set.ToRational()
	var out []univariate.Polynomial
	for i, p := range baseLevel {
		if p.Degree()%2 == 0 && len(isolate.RealRoots(rps[i], strategy)) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Check walks the current complete leaves of the sample tree for a
// satisfying sample, then lifts from the root until a witness is found
// or the search is exhausted.
func (c *CAD) Check(constraints []Constraint) (Point, bool, error) {
	dim := len(c.Variables)
	var leaves []Point
	c.root.leaves(nil, &leaves)
	for _, p := range leaves {
		if p.Dim() != dim {
			continue
		}
		ok, err := satisfiesAll(p, constraints)
		if err != nil {
			return Point{}, false, err
		}
		if ok {
			return p, true, nil
		}
	}
	if c.isComplete {
		return Point{}, false, nil
	}
	return c.liftCheck(c.root, nil, dim, nil, constraints)
}

// Complete exhausts lifting by checking a constraint no point can
// satisfy.
func (c *CAD) Complete() error {
	never := Constraint{
		Polynomial: mvpoly.FromRational(mvpoly.Lex, rational.One),
		Sign:       0,
		Variables:  c.Variables,
		Negated:    false,
	}
	_, _, err := c.Check([]Constraint{never})
	return err
}

// Samples returns every complete sample point currently in the tree.
func (c *CAD) Samples() []Point {
	dim := len(c.Variables)
	var leaves []Point
	c.root.leaves(nil, &leaves)
	out := leaves[:0]
	for _, p := range leaves {
		if p.Dim() == dim {
			out = append(out, p)
		}
	}
	return out
}

// IsComplete reports whether lifting has been exhausted: the flag is
// set when a Check or Complete call finishes lifting without a witness
// or when the top elimination level is empty, and only NewCAD and
// AddPolynomials recompute it.
func (c *CAD) IsComplete() bool { return c.isComplete }

// liftCheck performs lifting at one level: level counts down from the
// full dimension to 0, partial holds the components already fixed,
// most recently lifted first, and liftedVars names their variables in
// the same order. Phase 1 produces samples from the next lifting
// position, phase 2 consumes them, recursing one level down per sample.
func (c *CAD) liftCheck(nd *node, partial []ralg.Number, level int, liftedVars variable.List, constraints []Constraint) (Point, bool, error) {
	if level == 0 {
		pt := Point{components: append([]ralg.Number(nil), partial...)}
		ok, err := satisfiesAll(pt, constraints)
		if err != nil {
			return Point{}, false, err
		}
		if ok {
			return pt, true, nil
		}
		return Point{}, false, nil
	}
	level--
	newLiftedVars := variable.Prepend(c.Variables[level], liftedVars)

	list := &SampleList{}
	for _, ch := range nd.children {
		if err := list.Insert(ch.value, ch.isRoot); err != nil {
			return Point{}, false, err
		}
	}
	positions := make([]int, len(c.eliminationSets[level]))
	for i := range positions {
		positions[i] = i
	}

	computeMore := true
outer:
	for {
		// Phase 1: sample production.
		for computeMore || list.Empty() ||
			(c.settings.PreferNumericSamples && list.EmptyNumeric()) ||
			(c.settings.PreferSamplesByIsRoot && c.settings.PreferNonRootSamples && list.EmptyNonroot()) ||
			(c.settings.PreferSamplesByIsRoot && !c.settings.PreferNonRootSamples && list.EmptyRoot()) {
			computeMore = false
			if len(positions) == 0 {
				break
			}
			p := c.eliminationSets[level][positions[0]]
			if err := c.produceSamplesForLevel(nd, p, partial, liftedVars, list); err != nil {
				return Point{}, false, err
			}
			positions = positions[1:]
			if c.settings.PreferSamplesByIsRoot || c.settings.PreferNumericSamples {
				list.Simplify()
			}
		}

		// Phase 2: sample consumption.
		for !list.Empty() {
			var (
				val    ralg.Number
				isRoot bool
				ok     bool
			)
			switch {
			case c.settings.PreferNumericSamples:
				if list.EmptyNumeric() && len(positions) > 0 {
					computeMore = true
					continue outer
				}
				val, isRoot, ok = list.NextNumeric()
			case c.settings.PreferSamplesByIsRoot && c.settings.PreferNonRootSamples:
				if list.EmptyNonroot() && len(positions) > 0 {
					computeMore = true
					continue outer
				}
				val, isRoot, ok = list.NextNonroot()
			case c.settings.PreferSamplesByIsRoot:
				if list.EmptyRoot() && len(positions) > 0 {
					computeMore = true
					continue outer
				}
				val, isRoot, ok = list.NextRoot()
			default:
				val, isRoot, ok = list.Next()
			}
			if !ok {
				// Preferred bucket drained with no lifting position left
				// to refill it; take any remaining sample.
				val, isRoot, ok = list.Next()
			}
			if !ok {
				break
			}

			child, err := nd.findOrInsertChild(val)
			if err != nil {
				return Point{}, false, err
			}
			if isRoot {
				child.isRoot = true
			}

			extended := make([]ralg.Number, 0, len(partial)+1)
			extended = append(extended, val)
			extended = append(extended, partial...)

			pt, found, err := c.liftCheck(child, extended, level, newLiftedVars, constraints)
			if err != nil {
				return Point{}, false, err
			}
			if found {
				return pt, true, nil
			}
			if err := list.popEqual(val); err != nil {
				return Point{}, false, err
			}
		}
		if len(positions) == 0 {
			break
		}
	}

	if len(partial) == 0 {
		c.isComplete = true
	}
	return Point{}, false, nil
}

// produceSamplesForLevel isolates the real roots of p at the partial
// assignment and inserts the resulting samples, roots plus separating
// intermediate samples, into list and into the tree as children of nd.
func (c *CAD) produceSamplesForLevel(nd *node, p univariate.Polynomial, partial []ralg.Number, liftedVars variable.List, list *SampleList) error {
	roots, err := c.isolateAt(p, partial, liftedVars)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		if list.Empty() {
			if err := list.Insert(ralg.Zero, false); err != nil {
				return err
			}
			if _, err := nd.findOrInsertChild(ralg.Zero); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		n := ralg.FromRoot(r)
		added, err := list.InsertRootWithSeparators(n)
		if err != nil {
			return err
		}
		for _, a := range added {
			child, err := nd.findOrInsertChild(a.Value)
			if err != nil {
				return err
			}
			if a.IsRoot {
				child.isRoot = true
			}
		}
	}
	return nil
}

// isolateAt isolates the real roots of p at partial, substituting
// numeric components directly and eliminating interval-represented
// components through resultants.
func (c *CAD) isolateAt(p univariate.Polynomial, partial []ralg.Number, liftedVars variable.List) ([]isolate.Root, error) {
	current := p.Underlying()
	var irAssignment []isolate.AlgebraicPoint
	for i, v := range liftedVars {
		val := partial[i]
		if rv, ok := val.RationalValue(); ok {
			current = current.SubsRational(v, rv)
			continue
		}
		irAssignment = append(irAssignment, isolate.AlgebraicPoint{
			Var:       v,
			Poly:      rationalPolyAsMvpoly(val.DefiningPolynomial(), v),
			Isolation: val.Interval(),
		})
	}
	u := univariate.New(p.MainVar(), current)
	if len(irAssignment) == 0 {
		rp, err := univariate.NewRationalFromExpr(p.MainVar(), current)
		if err != nil {
			caderr.Invariant("cad: isolateAt: substitution left non-rational coefficients in %s", p.MainVar().Name())
		}
		return isolate.RealRoots(rp, c.settings.IsolationStrategy), nil
	}
	return isolate.RealRootsEval(u, irAssignment, c.settings.IsolationStrategy), nil
}

func rationalPolyAsMvpoly(p *univariate.RationalPolynomial, v variable.Variable) mvpoly.Polynomial {
	terms := make([]mvpoly.Term, 0, p.Degree()+1)
	for i := 0; i <= p.Degree(); i++ {
		c := p.CoeffAtDegree(i)
		if c.IsZero() {
			continue
		}
		terms = append(terms, mvpoly.Term{Coeff: c, Mono: mvpoly.VarMonomial(v, i)})
	}
	return mvpoly.FromTerms(mvpoly.Lex, terms...)
}

// AddPolynomials merges new polynomials into the CAD's input,
// prepending any new variables to the front of the variable order and
// reprojecting from level 0 up. The sample tree is kept when the
// dimension is unchanged.
func (c *CAD) AddPolynomials(newPolys []mvpoly.Polynomial, newVars variable.List, constraints []Constraint) error {
	merged := mergeVariables(newVars, c.Variables)
	dimGrew := len(merged) != len(c.Variables)
	settings := c.settings

	level0 := make([]univariate.Polynomial, 0, len(c.eliminationSets[0])+len(newPolys))
	for _, p := range c.eliminationSets[0] {
		level0 = append(level0, univariate.New(merged[0], p.Underlying()))
	}
	for _, p := range newPolys {
		level0 = append(level0, univariate.New(merged[0], p))
	}
	if settings.SimplifyByGroebner {
		level0 = simplifyEquationalByGroebner(level0, constraints)
	}

	sets := make([][]univariate.Polynomial, len(merged))
	sets[0] = level0
	for i := 1; i < len(merged); i++ {
		sets[i] = EliminationSet(sets[i-1], merged[i], settings)
	}
	if settings.SimplifyByRootCounting {
		sets[len(merged)-1] = dropEvenDegreeRootless(sets[len(merged)-1], settings.IsolationStrategy)
	}

	c.Variables = merged
	c.eliminationSets = sets
	c.isComplete = len(sets[len(merged)-1]) == 0
	if dimGrew {
		// New variables change every sample's dimension.
		c.root = newRoot()
	}
	return nil
}

// mergeVariables prepends any variable of fresh not already present in
// existing, preserving both lists' internal order.
func mergeVariables(fresh, existing variable.List) variable.List {
	out := append(variable.List{}, existing...)
	for i := len(fresh) - 1; i >= 0; i-- {
		if !out.Contains(fresh[i]) {
			out = variable.Prepend(fresh[i], out)
		}
	}
	return out
}
