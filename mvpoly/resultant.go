package mvpoly

import (
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

// PseudoDivide divides a by b, both viewed as univariate polynomials in v
// with coefficients in the remaining variables, returning quo, rem and
// the scaling exponent e such that:
//
//	lcoeff(b,v)^e * a = quo*b + rem,  deg(rem,v) < deg(b,v)
//
// Coefficients form a ring, not a field, so exact division by
// lcoeff(b,v) is not generally available.
func (a Polynomial) PseudoDivide(b Polynomial, v variable.Variable) (quo, rem Polynomial, e int) {
	if b.IsZero() {
		panic("mvpoly: PseudoDivide: zero divisor")
	}
	db := b.DegreeIn(v)
	lcB := b.LCoeffIn(v)
	r := a
	q := Zero(a.order)
	for {
		dr := r.DegreeIn(v)
		if r.IsZero() || dr < db {
			break
		}
		lcR := r.LCoeffIn(v)
		shift := VarMonomial(v, dr-db)
		r = r.MulPoly(lcB).Sub(b.MulPoly(lcR).MulMono(shift))
		q = q.MulPoly(lcB).Add(lcR.MulMono(shift))
		e++
	}
	return q, r, e
}

// MulPoly multiplies p by a coefficient-ring element c.
func (p Polynomial) MulPoly(c Polynomial) Polynomial { return p.Mul(c) }

// MulMono multiplies p by a single monomial (coefficient 1).
func (p Polynomial) MulMono(m Monomial) Polynomial {
	return p.MulTerm(Term{Coeff: rational.One, Mono: m})
}

// Prem returns the pseudo-remainder of a divided by b in variable v.
func (a Polynomial) Prem(b Polynomial, v variable.Variable) Polynomial {
	_, r, _ := a.PseudoDivide(b, v)
	return r
}

// Quo returns the pseudo-quotient of a divided by b in variable v.
func (a Polynomial) Quo(b Polynomial, v variable.Variable) Polynomial {
	q, _, _ := a.PseudoDivide(b, v)
	return q
}

// Resultant computes the resultant of a and b with respect to v, via
// fraction-free Bareiss elimination on the Sylvester matrix. The
// determinant lives in the coefficient ring of a, b.
func Resultant(a, b Polynomial, v variable.Variable) Polynomial {
	if a.IsZero() || b.IsZero() {
		return Zero(a.order)
	}
	da, db := a.DegreeIn(v), b.DegreeIn(v)
	if da == 0 && db == 0 {
		return FromRational(a.order, rational.One)
	}
	n := da + db
	mat := sylvesterMatrix(a, b, v, da, db, n)
	return bareissDeterminant(mat, a.order)
}

// sylvesterMatrix builds the (da+db)x(da+db) Sylvester matrix of a, b in
// v: db rows of a's coefficients (shifted), da rows of b's coefficients.
func sylvesterMatrix(a, b Polynomial, v variable.Variable, da, db, n int) [][]Polynomial {
	ac := a.CoeffsIn(v) // ascending, index 0..da
	bc := b.CoeffsIn(v) // ascending, index 0..db
	mat := make([][]Polynomial, n)
	for i := range mat {
		mat[i] = make([]Polynomial, n)
		for j := range mat[i] {
			mat[i][j] = Zero(a.order)
		}
	}
	for r := 0; r < db; r++ {
		for k := 0; k <= da; k++ {
			col := r + (da - k)
			if col >= 0 && col < n {
				mat[r][col] = ac[k]
			}
		}
	}
	for r := 0; r < da; r++ {
		for k := 0; k <= db; k++ {
			col := r + (db - k)
			if col >= 0 && col < n {
				mat[db+r][col] = bc[k]
			}
		}
	}
	return mat
}

// bareissDeterminant computes det(mat) using fraction-free Gaussian
// elimination over the ring of Polynomial values. The Bareiss invariant
// makes every division by the previous pivot exact.
func bareissDeterminant(mat [][]Polynomial, order Order) Polynomial {
	n := len(mat)
	m := make([][]Polynomial, n)
	for i := range mat {
		m[i] = append([]Polynomial{}, mat[i]...)
	}
	prevPivot := FromRational(order, rational.One)
	sign := 1
	for k := 0; k < n-1; k++ {
		if m[k][k].IsZero() {
			swapped := false
			for r := k + 1; r < n; r++ {
				if !m[r][k].IsZero() {
					m[k], m[r] = m[r], m[k]
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return Zero(order)
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := m[i][j].Mul(m[k][k]).Sub(m[i][k].Mul(m[k][j]))
				if c, ok := prevPivot.AsConstant(); ok && c.Equal(rational.One) {
					m[i][j] = num
					continue
				}
				quo, rem := num.Divide([]Polynomial{prevPivot})
				if !rem.IsZero() {
					// Inexact division; keep the numerator.
					m[i][j] = num
					continue
				}
				m[i][j] = quo[0]
			}
		}
		prevPivot = m[k][k]
	}
	det := m[n-1][n-1]
	if sign < 0 {
		det = det.Neg()
	}
	return det
}

// GCD returns a greatest common divisor of a and b with respect to v,
// via a primitive pseudo-remainder sequence. The result is defined up
// to a unit; callers needing a canonical associate should take
// PrimitivePart.
func GCD(a, b Polynomial, v variable.Variable) Polynomial {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	x, y := a, b
	if x.DegreeIn(v) < y.DegreeIn(v) {
		x, y = y, x
	}
	for !y.IsZero() && y.DegreeIn(v) > 0 {
		r := x.Prem(y, v)
		if r.IsZero() {
			return y.PrimitivePart()
		}
		x, y = y, r.PrimitivePart()
	}
	if y.IsZero() {
		return x.PrimitivePart()
	}
	// y is a nonzero constant in v: the polynomials are coprime in v.
	return FromRational(a.order, rational.One)
}
