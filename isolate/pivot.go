package isolate

import (
	"github.com/real-cad/cad/interval"
	"github.com/real-cad/cad/rational"
	"github.com/real-cad/cad/univariate"
)

// choosePivot returns the next split point inside i according to
// strategy.
func choosePivot(p *univariate.RationalPolynomial, i interval.OpenInterval, strategy Strategy) rational.Rational {
	switch strategy {
	case Simple, Generic:
		return i.Midpoint()
	case BinarySample:
		return i.Sample()
	case TernarySample:
		return i.Sample()
	case TernaryNewton:
		return newtonPivot(p, i)
	default:
		return i.Midpoint()
	}
}

// newtonPivot takes one Newton step from the midpoint, falling back to
// the sample point when the step leaves i or the derivative vanishes.
func newtonPivot(p *univariate.RationalPolynomial, i interval.OpenInterval) rational.Rational {
	mid := i.Midpoint()
	deriv := p.Derivative()
	dv := deriv.At(mid)
	if dv.IsZero() {
		return i.Sample()
	}
	next := mid.Sub(p.At(mid).Quo(dv))
	if i.Left.Less(next) && next.Less(i.Right) {
		return next
	}
	return i.Sample()
}
