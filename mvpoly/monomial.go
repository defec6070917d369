package mvpoly

import "github.com/real-cad/cad/variable"

type varExp struct {
	v variable.Variable
	e int
}

// Monomial is a sparse exponent vector, sorted by variable index,
// carrying its cached total degree.
type Monomial struct {
	exps   []varExp // sorted by v.ID() ascending, e > 0 for every entry
	degree int
}

// One is the empty monomial (degree 0, no variables).
var One = Monomial{}

// NewMonomial builds a Monomial from a variable-to-exponent map. Zero
// exponents are dropped; negative exponents panic (monomials here are
// always polynomial, never Laurent).
func NewMonomial(exps map[variable.Variable]int) Monomial {
	m := Monomial{}
	for v, e := range exps {
		if e < 0 {
			panic("mvpoly: negative monomial exponent")
		}
		if e == 0 {
			continue
		}
		m.exps = append(m.exps, varExp{v, e})
		m.degree += e
	}
	sortVarExps(m.exps)
	return m
}

func sortVarExps(exps []varExp) {
	for i := 1; i < len(exps); i++ {
		for j := i; j > 0 && exps[j].v.Less(exps[j-1].v); j-- {
			exps[j], exps[j-1] = exps[j-1], exps[j]
		}
	}
}

// VarMonomial returns the monomial v^e.
func VarMonomial(v variable.Variable, e int) Monomial {
	if e == 0 {
		return One
	}
	return NewMonomial(map[variable.Variable]int{v: e})
}

// Degree returns the total degree of m.
func (m Monomial) Degree() int { return m.degree }

// ExpOf returns the exponent of v in m (0 if v does not appear).
func (m Monomial) ExpOf(v variable.Variable) int {
	for _, ve := range m.exps {
		if ve.v.Equal(v) {
			return ve.e
		}
	}
	return 0
}

// Vars returns the variables appearing in m, in variable order.
func (m Monomial) Vars() variable.List {
	out := make(variable.List, len(m.exps))
	for i, ve := range m.exps {
		out[i] = ve.v
	}
	return out
}

// IsOne reports whether m is the empty monomial.
func (m Monomial) IsOne() bool { return len(m.exps) == 0 }

// Equal reports structural equality of two monomials.
func (m Monomial) Equal(o Monomial) bool {
	if len(m.exps) != len(o.exps) {
		return false
	}
	for i := range m.exps {
		if m.exps[i] != o.exps[i] {
			return false
		}
	}
	return true
}

// Mul returns m*o.
func (m Monomial) Mul(o Monomial) Monomial {
	exps := make(map[variable.Variable]int, len(m.exps)+len(o.exps))
	for _, ve := range m.exps {
		exps[ve.v] += ve.e
	}
	for _, ve := range o.exps {
		exps[ve.v] += ve.e
	}
	return NewMonomial(exps)
}

// Divides reports whether m divides o (every exponent of m is <= the
// corresponding exponent of o).
func (m Monomial) Divides(o Monomial) bool {
	for _, ve := range m.exps {
		if o.ExpOf(ve.v) < ve.e {
			return false
		}
	}
	return true
}

// Divide returns o/m. Panics if m does not divide o.
func (m Monomial) Divide(o Monomial) Monomial {
	if !m.Divides(o) {
		panic("mvpoly: monomial does not divide")
	}
	exps := make(map[variable.Variable]int)
	for _, ve := range o.exps {
		exps[ve.v] = ve.e
	}
	for _, ve := range m.exps {
		exps[ve.v] -= ve.e
	}
	return NewMonomial(exps)
}

// LCM returns the least common multiple of m and o (the componentwise max
// of exponents).
func (m Monomial) LCM(o Monomial) Monomial {
	exps := make(map[variable.Variable]int)
	for _, ve := range m.exps {
		exps[ve.v] = ve.e
	}
	for _, ve := range o.exps {
		if cur, ok := exps[ve.v]; !ok || ve.e > cur {
			exps[ve.v] = ve.e
		}
	}
	return NewMonomial(exps)
}
