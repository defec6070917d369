// Package interval implements open rational interval arithmetic,
// including smallest-representation sampling.
package interval

import (
	"math/big"

	"github.com/real-cad/cad/caderr"
	"github.com/real-cad/cad/mvpoly"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/variable"
)

// MaxFastSampleBound bounds the numerator and denominator magnitudes
// below which SampleFast runs the exact Sample search instead of
// falling back to Midpoint.
const MaxFastSampleBound = 1<<15 - 1

// OpenInterval is the open interval ]Left, Right[ over the rationals.
// The zero value is the degenerate interval ]0, 0[.
type OpenInterval struct {
	Left, Right rational.Rational
}

// New constructs ]l, r[. Panics if l > r.
func New(l, r rational.Rational) OpenInterval {
	if l.Cmp(r) > 0 {
		caderr.Invariant("interval: left bound %s exceeds right bound %s", l.String(), r.String())
	}
	return OpenInterval{Left: l, Right: r}
}

// AroundInt returns ]n-1, n+1[.
func AroundInt(n rational.Rational) OpenInterval {
	return OpenInterval{Left: n.Sub(rational.One), Right: n.Add(rational.One)}
}

// Zero is the degenerate interval ]0, 0[.
var Zero = OpenInterval{Left: rational.Zero, Right: rational.Zero}

// IsZero reports whether both bounds are zero.
func (i OpenInterval) IsZero() bool { return i.Left.IsZero() && i.Right.IsZero() }

// IsNormalized reports whether the interval does not straddle zero.
func (i OpenInterval) IsNormalized() bool {
	return i.Left.Sign() > 0 || i.Right.Sign() < 0 || i.IsZero()
}

// Contains reports whether n lies strictly inside i, or n == 0 and i is
// the zero interval.
func (i OpenInterval) Contains(n rational.Rational) bool {
	if i.Left.Less(n) && n.Less(i.Right) {
		return true
	}
	return n.IsZero() && i.IsZero()
}

// ContainsInterval reports whether o is a subset of i.
func (i OpenInterval) ContainsInterval(o OpenInterval) bool {
	return i.Left.LessEq(o.Left) && i.Right.Cmp(o.Right) >= 0
}

// Meets reports whether n lies within the closed interval
// [Left, Right].
func (i OpenInterval) Meets(n rational.Rational) bool {
	return i.Left.LessEq(n) && n.LessEq(i.Right)
}

// Intersection returns the intersection of i and o, or the zero
// interval if they do not meet.
func (i OpenInterval) Intersection(o OpenInterval) OpenInterval {
	if i.Right.Less(o.Left) || o.Right.Less(i.Left) {
		return Zero
	}
	if i.Left.LessEq(o.Left) && i.Right.Cmp(o.Right) >= 0 {
		return o
	}
	if i.Left.Cmp(o.Left) >= 0 && i.Right.LessEq(o.Right) {
		return i
	}
	if i.Left.LessEq(o.Left) && i.Right.LessEq(o.Right) {
		return New(o.Left, i.Right)
	}
	return New(i.Left, o.Right)
}

// Midpoint returns (Left+Right)/2.
func (i OpenInterval) Midpoint() rational.Rational {
	return i.Left.Add(i.Right).Quo(rational.FromInt64(2))
}

// Abs returns the interval of absolute values of i's members.
func (i OpenInterval) Abs() OpenInterval {
	l, r := i.Left.Abs(), i.Right.Abs()
	if i.Left.IsZero() || i.Right.IsZero() || i.Left.Sign() == i.Right.Sign() {
		return New(rational.Min(l, r), rational.Max(l, r))
	}
	return New(rational.Zero, rational.Max(l, r))
}

// Neg returns -i.
func (i OpenInterval) Neg() OpenInterval {
	return New(i.Right.Neg(), i.Left.Neg())
}

// Add returns i+o.
func (i OpenInterval) Add(o OpenInterval) OpenInterval {
	return New(i.Left.Add(o.Left), i.Right.Add(o.Right))
}

// Sub returns i-o.
func (i OpenInterval) Sub(o OpenInterval) OpenInterval {
	return i.Add(o.Neg())
}

// Mul returns i*o, the hull of the four corner products.
func (i OpenInterval) Mul(o OpenInterval) OpenInterval {
	p1 := i.Left.Mul(o.Left)
	p2 := i.Left.Mul(o.Right)
	p3 := i.Right.Mul(o.Left)
	p4 := i.Right.Mul(o.Right)
	min := rational.Min(rational.Min(p1, p2), rational.Min(p3, p4))
	max := rational.Max(rational.Max(p1, p2), rational.Max(p3, p4))
	return New(min, max)
}

// Div returns i/o. Errors if o contains zero.
func (i OpenInterval) Div(o OpenInterval) (OpenInterval, error) {
	if o.Contains(rational.Zero) {
		return Zero, caderr.New(caderr.DivisionByZero, "interval divisor contains zero")
	}
	inv := OpenInterval{Left: rational.One.Quo(o.Right), Right: rational.One.Quo(o.Left)}
	return i.Mul(inv), nil
}

// Pow returns i^e for a non-negative integer exponent.
func (i OpenInterval) Pow(e int) OpenInterval {
	if e == 0 {
		return New(rational.One, rational.One)
	}
	if e%2 == 1 || i.Left.Sign() >= 0 {
		return New(i.Left.Pow(e), i.Right.Pow(e))
	}
	if i.Right.Sign() < 0 {
		return New(i.Right.Pow(e), i.Left.Pow(e))
	}
	return New(rational.Zero, rational.Max(i.Left.Pow(e), i.Right.Pow(e)))
}

// Equal reports whether i and o have identical bounds.
func (i OpenInterval) Equal(o OpenInterval) bool {
	return i.Left.Equal(o.Left) && i.Right.Equal(o.Right)
}

// Less compares left bounds.
func (i OpenInterval) Less(o OpenInterval) bool { return i.Left.LessEq(o.Left) }

// Greater compares right bounds.
func (i OpenInterval) Greater(o OpenInterval) bool { return i.Right.Cmp(o.Right) >= 0 }

// Sample returns a rational within i having the smallest exact
// representation.
func (i OpenInterval) Sample() rational.Rational {
	l, r := i.Left, i.Right
	straddlesZero := (l.Sign() < 0 && r.Sign() > 0) || (l.IsZero() && r.IsZero())
	if straddlesZero {
		return rational.Zero
	}
	d := r.Sub(l)
	if d.Cmp(rational.One) > 0 {
		switch {
		case r.Sign() < 0:
			if r.IsInteger() {
				return r.Sub(rational.One)
			}
			return r.Floor()
		case l.Sign() > 0:
			if l.IsInteger() {
				return l.Add(rational.One)
			}
			return l.Ceil()
		case r.IsZero():
			return rational.FromInt64(-1)
		case l.IsZero():
			return rational.One
		default:
			return rational.Zero
		}
	}
	if d.IsInteger() {
		if d.Equal(rational.One) && !l.IsInteger() {
			return l.Ceil()
		}
		step := rational.One
		if d.Equal(rational.One) {
			step = rational.FromFrac(1, 2)
		}
		return l.Add(step)
	}
	return findSample(l.Num(), l.Denom(), r.Num(), r.Denom())
}

// SampleFast returns Sample when every bound is small, else Midpoint.
func (i OpenInterval) SampleFast() rational.Rational {
	bound := big.NewInt(MaxFastSampleBound)
	small := func(n *big.Int) bool { return new(big.Int).Abs(n).Cmp(bound) < 0 }
	if small(i.Left.Num()) && small(i.Right.Num()) && small(i.Left.Denom()) && small(i.Right.Denom()) {
		return i.Sample()
	}
	return i.Midpoint()
}

// findSample scans candidate denominators k = 1, 2, ... for an integer
// numerator strictly between the scaled bounds whose reduced fraction
// has denominator exactly k, alternating between the low and high ends
// of the admissible range.
func findSample(numL, denL, numR, denR *big.Int) rational.Rational {
	one := big.NewInt(1)
	denLR := new(big.Int).Div(new(big.Int).Mul(denL, denR), new(big.Int).GCD(nil, nil, denL, denR))
	k := big.NewInt(1)
	for {
		gcdK := new(big.Int).GCD(nil, nil, k, denLR)
		lcmK := new(big.Int).Div(new(big.Int).Mul(k, denLR), gcdK)
		lN := new(big.Int).Mul(numL, new(big.Int).Div(lcmK, denL))
		rN := new(big.Int).Mul(numR, new(big.Int).Div(lcmK, denR))

		i := new(big.Int).Add(lN, one)
		j := new(big.Int).Sub(rN, one)
		for i.Cmp(j) <= 0 {
			if den := reducedDenom(i, lcmK); den.Cmp(k) == 0 {
				return rational.FromBigInts(i, lcmK)
			}
			if j.Cmp(i) != 0 {
				if den := reducedDenom(j, lcmK); den.Cmp(k) == 0 {
					return rational.FromBigInts(j, lcmK)
				}
				j.Sub(j, one)
			}
			i.Add(i, one)
		}
		k.Add(k, one)
	}
}

// reducedDenom returns the denominator of num/den in lowest terms.
func reducedDenom(num, den *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Div(den, g)
}

// Evaluate bounds p over a box of intervals using Horner's method
// variable by variable. Every variable of p must have an entry in
// assignment.
func Evaluate(p mvpoly.Polynomial, assignment map[variable.Variable]OpenInterval) OpenInterval {
	vars := p.Vars()
	if len(vars) == 0 {
		c, _ := p.AsConstant()
		return New(c, c)
	}
	return evaluateVars(p, vars, assignment)
}

func evaluateVars(p mvpoly.Polynomial, vars variable.List, assignment map[variable.Variable]OpenInterval) OpenInterval {
	v := vars[0]
	i, ok := assignment[v]
	if !ok {
		caderr.Invariant("interval: Evaluate: assignment missing variable %s", v.Name())
	}
	rest := vars.Tail()
	result := Zero
	for d := p.DegreeIn(v); d >= 0; d-- {
		coeff := p.CoeffIn(v, d)
		var coeffI OpenInterval
		if len(rest) == 0 {
			c, ok := coeff.AsConstant()
			if !ok {
				caderr.Invariant("interval: Evaluate: coefficient not constant after peeling all variables")
			}
			coeffI = New(c, c)
		} else {
			coeffI = evaluateVars(coeff, rest, assignment)
		}
		result = coeffI.Add(result.Mul(i))
	}
	return result
}
