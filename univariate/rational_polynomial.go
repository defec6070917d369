package univariate

import (
	"math/big"

	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

// RationalPolynomial is a univariate polynomial with exact rational
// coefficients, stored as a dense slice ordered increasingly by degree.
type RationalPolynomial struct {
	coeffs []rational.Rational // coeffs[i] is the coefficient of x^i; no trailing zero except for the zero polynomial itself ([]rational.Rational{0})
}

// NewRationalPolynomial builds a RationalPolynomial from coeffs ordered
// increasingly by degree, stripping trailing zero coefficients. Errors
// if coeffs is empty.
func NewRationalPolynomial(coeffs []rational.Rational) (*RationalPolynomial, error) {
	if len(coeffs) == 0 {
		return nil, caderr.New(caderr.InvalidPolynomial, "cannot create polynomial with no coefficients")
	}
	return &RationalPolynomial{coeffs: stripTrailingZeroes(coeffs)}, nil
}

// NewRationalFromExpr views p as univariate in v and converts it to a
// RationalPolynomial. Returns a *caderr.Error of kind InvalidPolynomial
// when a coefficient involves a variable other than v.
func NewRationalFromExpr(v variable.Variable, p mvpoly.Polynomial) (*RationalPolynomial, error) {
	if !p.IsRationalPolynomialIn(v) {
		return nil, caderr.New(caderr.InvalidPolynomial, "polynomial has non-rational coefficients in %s", v.Name())
	}
	return polyToRational(New(v, p)), nil
}

// FromRational returns a RationalPolynomial from constructing non-error
// constant polynomial for a single rational value.
func FromRational(r rational.Rational) *RationalPolynomial {
	return &RationalPolynomial{coeffs: []rational.Rational{r}}
}

func stripTrailingZeroes(coeffs []rational.Rational) []rational.Rational {
	last := len(coeffs) - 1
	for last > 0 && coeffs[last].IsZero() {
		last--
	}
	out := make([]rational.Rational, last+1)
	copy(out, coeffs[:last+1])
	return out
}

// NumCoeffs returns the number of stored coefficients (Degree()+1).
func (rp *RationalPolynomial) NumCoeffs() int {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	return len(rp.coeffs)
}

// Degree returns the degree of rp.
func (rp *RationalPolynomial) Degree() int {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	return len(rp.coeffs) - 1
}

// CoeffAtDegree returns the coefficient of x^n, or zero if n exceeds
// Degree().
func (rp *RationalPolynomial) CoeffAtDegree(n int) rational.Rational {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	if n < 0 || n >= len(rp.coeffs) {
		return rational.Zero
	}
	return rp.coeffs[n]
}

// LeadCoeff returns the coefficient of the highest-degree term.
func (rp *RationalPolynomial) LeadCoeff() rational.Rational {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	return rp.coeffs[len(rp.coeffs)-1]
}

// IsZero reports whether rp is the zero polynomial.
func (rp *RationalPolynomial) IsZero() bool {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	return rp.Degree() == 0 && rp.coeffs[0].IsZero()
}

// At evaluates rp at x using Horner's method.
func (rp *RationalPolynomial) At(x rational.Rational) rational.Rational {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	out := rp.coeffs[len(rp.coeffs)-1]
	for i := len(rp.coeffs) - 2; i >= 0; i-- {
		out = out.Mul(x).Add(rp.coeffs[i])
	}
	return out
}

// Derivative returns d/dx rp; does not modify rp.
func (rp *RationalPolynomial) Derivative() *RationalPolynomial {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	if rp.Degree() == 0 {
		deriv, _ := NewRationalPolynomial([]rational.Rational{rational.Zero})
		return deriv
	}
	n := len(rp.coeffs) - 1
	out := make([]rational.Rational, n)
	for i := 0; i < n; i++ {
		out[i] = rp.coeffs[i+1].Mul(rational.FromInt64(int64(i + 1)))
	}
	deriv, _ := NewRationalPolynomial(out)
	return deriv
}

// ShiftRight returns rp * x^offset.
func (rp *RationalPolynomial) ShiftRight(offset int) *RationalPolynomial {
	if rp == nil {
		panic("received nil *RationalPolynomial")
	}
	if offset < 0 {
		panic("invalid offset")
	}
	shifted := make([]rational.Rational, rp.NumCoeffs()+offset)
	for i := range shifted {
		shifted[i] = rational.Zero
	}
	copy(shifted[offset:], rp.coeffs)
	out, _ := NewRationalPolynomial(shifted)
	return out
}

// Equal reports whether rp1 and rp2 have identical coefficients.
func (rp1 *RationalPolynomial) Equal(rp2 *RationalPolynomial) bool {
	if rp1 == nil || rp2 == nil {
		panic("received nil *RationalPolynomial")
	}
	if rp1.NumCoeffs() != rp2.NumCoeffs() {
		return false
	}
	for i := range rp1.coeffs {
		if !rp1.coeffs[i].Equal(rp2.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns rp1 + rp2.
func (rp1 *RationalPolynomial) Add(rp2 *RationalPolynomial) *RationalPolynomial {
	n := rp1.NumCoeffs()
	if rp2.NumCoeffs() > n {
		n = rp2.NumCoeffs()
	}
	out := make([]rational.Rational, n)
	for i := 0; i < n; i++ {
		out[i] = rp1.CoeffAtDegree(i).Add(rp2.CoeffAtDegree(i))
	}
	res, _ := NewRationalPolynomial(out)
	return res
}

// Sub returns rp1 - rp2.
func (rp1 *RationalPolynomial) Sub(rp2 *RationalPolynomial) *RationalPolynomial {
	return rp1.Add(rp2.Scale(rational.FromInt64(-1)))
}

// Scale returns c * rp.
func (rp *RationalPolynomial) Scale(c rational.Rational) *RationalPolynomial {
	out := make([]rational.Rational, rp.NumCoeffs())
	for i, co := range rp.coeffs {
		out[i] = co.Mul(c)
	}
	res, _ := NewRationalPolynomial(out)
	return res
}

// Mul returns rp1 * rp2.
func (rp1 *RationalPolynomial) Mul(rp2 *RationalPolynomial) *RationalPolynomial {
	out := make([]rational.Rational, rp1.NumCoeffs()+rp2.NumCoeffs()-1)
	for i := range out {
		out[i] = rational.Zero
	}
	for i, a := range rp1.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range rp2.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	res, _ := NewRationalPolynomial(out)
	return res
}

// EuclideanDiv returns the quotient and remainder of rp1 / rp2 by
// exact field division. Panics if rp2 is the zero polynomial.
func (rp1 *RationalPolynomial) EuclideanDiv(rp2 *RationalPolynomial) (quo, rem *RationalPolynomial) {
	if rp2.IsZero() {
		caderr.Invariant("RationalPolynomial: EuclideanDiv by zero polynomial")
	}
	r := make([]rational.Rational, rp1.NumCoeffs())
	copy(r, rp1.coeffs)
	db := rp2.Degree()
	lc := rp2.LeadCoeff()
	qcoeffs := make([]rational.Rational, 0)
	degR := len(r) - 1
	for degR >= db {
		for degR > 0 && r[degR].IsZero() {
			degR--
		}
		if degR < db {
			break
		}
		c := r[degR].Quo(lc)
		shift := degR - db
		for len(qcoeffs) <= shift {
			qcoeffs = append(qcoeffs, rational.Zero)
		}
		qcoeffs[shift] = c
		for i := 0; i <= db; i++ {
			r[shift+i] = r[shift+i].Sub(c.Mul(rp2.coeffs[i]))
		}
		degR--
	}
	if len(qcoeffs) == 0 {
		qcoeffs = []rational.Rational{rational.Zero}
	}
	quo, _ = NewRationalPolynomial(qcoeffs)
	rem, _ = NewRationalPolynomial(r)
	return quo, rem
}

// Quo returns the quotient of rp1 / rp2.
func (rp1 *RationalPolynomial) Quo(rp2 *RationalPolynomial) *RationalPolynomial {
	q, _ := rp1.EuclideanDiv(rp2)
	return q
}

// Rem returns the remainder of rp1 / rp2.
func (rp1 *RationalPolynomial) Rem(rp2 *RationalPolynomial) *RationalPolynomial {
	_, r := rp1.EuclideanDiv(rp2)
	return r
}

// Content returns the rational content of rp.
func (rp *RationalPolynomial) Content() rational.Rational {
	den := rational.One
	for _, c := range rp.coeffs {
		den = rational.LCM(den, rational.FromBigInts(c.Denom(), big.NewInt(1)))
	}
	g := rational.Zero
	any := false
	for _, c := range rp.coeffs {
		scaled := c.Mul(den)
		if scaled.IsZero() {
			continue
		}
		v := rational.FromBigInts(scaled.Num(), big.NewInt(1)).Abs()
		if !any {
			g = v
			any = true
		} else {
			g = rational.GCD(g, v)
		}
	}
	if !any {
		return rational.One
	}
	return g.Quo(den)
}

// PrimitivePart returns rp / rp.Content().
func (rp *RationalPolynomial) PrimitivePart() *RationalPolynomial {
	c := rp.Content()
	if rp.LeadCoeff().Sign() < 0 {
		c = c.Neg()
	}
	return rp.Scale(c.Inv())
}

// GCD returns the monic greatest common divisor of rp1 and rp2 by the
// Euclidean algorithm. Returns the zero polynomial only when both
// inputs are zero.
func (rp1 *RationalPolynomial) GCD(rp2 *RationalPolynomial) *RationalPolynomial {
	a, b := rp1, rp2
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	if a.IsZero() {
		return a
	}
	return a.Scale(a.LeadCoeff().Inv())
}

// SquareFreePart returns rp / gcd(rp, rp'): the separable polynomial
// with the same roots as rp, each simple.
func (rp *RationalPolynomial) SquareFreePart() *RationalPolynomial {
	if rp.Degree() <= 1 {
		return rp
	}
	g := rp.GCD(rp.Derivative())
	if g.Degree() == 0 {
		return rp
	}
	return rp.Quo(g)
}

// IsOnlyRational always reports true: RationalPolynomial carries no
// other-variable coefficients by construction.
func (rp *RationalPolynomial) IsOnlyRational() bool { return true }
