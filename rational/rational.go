// Package rational provides exact arbitrary-precision rational arithmetic.
//
// Rational wraps math/big.Rat with the small, total-order-friendly method
// set the rest of this module builds on: every other package (intervals,
// polynomials, real algebraic numbers) treats these values as exact and
// never falls back to floating point.
package rational

import (
	"fmt"
	"math/big"
)

// Rational is an exact ratio of arbitrary-precision integers.
type Rational struct {
	r *big.Rat
}

// Zero is the rational number 0.
var Zero = FromInt64(0)

// One is the rational number 1.
var One = FromInt64(1)

// FromInt64 returns the rational number n/1.
func FromInt64(n int64) Rational {
	return Rational{big.NewRat(n, 1)}
}

// FromFrac returns the rational number num/den.
//
// Panics if den is zero.
func FromFrac(num, den int64) Rational {
	if den == 0 {
		panic("rational: FromFrac: zero denominator")
	}
	return Rational{big.NewRat(num, den)}
}

// FromBigInts returns the rational number num/den.
func FromBigInts(num, den *big.Int) Rational {
	r := new(big.Rat).SetFrac(num, den)
	return Rational{r}
}

// FromBigRat wraps an existing *big.Rat. The caller must not mutate r
// afterwards; Rational values are treated as immutable everywhere else in
// this module.
func FromBigRat(r *big.Rat) Rational {
	return Rational{new(big.Rat).Set(r)}
}

func (a Rational) ensure() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// BigRat returns a copy of the underlying *big.Rat.
func (a Rational) BigRat() *big.Rat {
	return new(big.Rat).Set(a.ensure())
}

// Num returns the numerator of a in lowest terms.
func (a Rational) Num() *big.Int { return a.ensure().Num() }

// Denom returns the denominator of a in lowest terms (always positive).
func (a Rational) Denom() *big.Int { return a.ensure().Denom() }

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return Rational{new(big.Rat).Add(a.ensure(), b.ensure())}
}

// Sub returns a - b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{new(big.Rat).Sub(a.ensure(), b.ensure())}
}

// Mul returns a * b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{new(big.Rat).Mul(a.ensure(), b.ensure())}
}

// Quo returns a / b.
//
// Panics if b is zero; callers at the API boundary should check IsZero
// first and surface caderr.ErrDivisionByZero instead.
func (a Rational) Quo(b Rational) Rational {
	if b.IsZero() {
		panic("rational: division by zero")
	}
	return Rational{new(big.Rat).Quo(a.ensure(), b.ensure())}
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	return Rational{new(big.Rat).Neg(a.ensure())}
}

// Abs returns |a|.
func (a Rational) Abs() Rational {
	return Rational{new(big.Rat).Abs(a.ensure())}
}

// Inv returns 1/a. Panics if a is zero.
func (a Rational) Inv() Rational {
	if a.IsZero() {
		panic("rational: inverse of zero")
	}
	return Rational{new(big.Rat).Inv(a.ensure())}
}

// Pow returns a^n for an integer exponent n (n may be negative if a != 0).
func (a Rational) Pow(n int) Rational {
	if n == 0 {
		return One
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := One
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		return result.Inv()
	}
	return result
}

// Cmp returns -1, 0, or +1 as a is <, ==, > b.
func (a Rational) Cmp(b Rational) int {
	return a.ensure().Cmp(b.ensure())
}

// Less reports whether a < b.
func (a Rational) Less(b Rational) bool { return a.Cmp(b) < 0 }

// LessEq reports whether a <= b.
func (a Rational) LessEq(b Rational) bool { return a.Cmp(b) <= 0 }

// Equal reports whether a == b.
func (a Rational) Equal(b Rational) bool { return a.Cmp(b) == 0 }

// Sign returns -1, 0 or +1 according to the sign of a.
func (a Rational) Sign() int { return a.ensure().Sign() }

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool { return a.Sign() == 0 }

// IsInteger reports whether a has denominator 1.
func (a Rational) IsInteger() bool {
	return a.ensure().IsInt()
}

// Floor returns the greatest integer <= a, as a Rational.
func (a Rational) Floor() Rational {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(a.Num(), a.Denom(), m) // Euclidean division, denom > 0
	return FromBigInts(q, big.NewInt(1))
}

// Ceil returns the least integer >= a, as a Rational.
func (a Rational) Ceil() Rational {
	f := a.Floor()
	if f.Equal(a) {
		return f
	}
	return f.Add(One)
}

// Min returns the smaller of a, b.
func Min(a, b Rational) Rational {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the larger of a, b.
func Max(a, b Rational) Rational {
	if a.Less(b) {
		return b
	}
	return a
}

// GCD returns the non-negative greatest common divisor of the numerators of
// a and b once both are scaled to share a denominator, i.e. the GCD
// appropriate for integer-valued rationals (a, b must be integers).
//
// Panics if a or b is not an integer.
func GCD(a, b Rational) Rational {
	if !a.IsInteger() || !b.IsInteger() {
		panic("rational: GCD: non-integer operand")
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.Num()), new(big.Int).Abs(b.Num()))
	return FromBigInts(g, big.NewInt(1))
}

// LCM returns the least common multiple of two integer-valued rationals.
func LCM(a, b Rational) Rational {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	g := GCD(a, b)
	return a.Quo(g).Mul(b).Abs()
}

// String renders a in "num/den" form, or "num" when the denominator is 1.
func (a Rational) String() string {
	if a.IsInteger() {
		return a.Num().String()
	}
	return fmt.Sprintf("%s/%s", a.Num().String(), a.Denom().String())
}
