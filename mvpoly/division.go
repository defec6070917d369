package mvpoly

// Divide performs multivariate division of p by the ordered list
// divisors, returning the per-divisor quotients and a remainder whose
// leading term is not divisible by any divisor's leading term. Every
// divisor must be nonzero.
func (p Polynomial) Divide(divisors []Polynomial) (quotients []Polynomial, remainder Polynomial) {
	for _, d := range divisors {
		if d.IsZero() {
			panic("mvpoly: Divide: zero divisor")
		}
	}
	quotients = make([]Polynomial, len(divisors))
	for i := range quotients {
		quotients[i] = Zero(p.order)
	}
	remainder = Zero(p.order)

	cur := p
	for !cur.IsZero() {
		divided := false
		for i, d := range divisors {
			if d.LeadingTerm().Divides(cur.LeadingTerm()) {
				factor := d.LeadingTerm().Divide(cur.LeadingTerm())
				quotients[i] = quotients[i].Add(FromTerms(p.order, factor))
				cur = cur.Sub(d.MulTerm(factor))
				divided = true
				break
			}
		}
		if !divided {
			lt := cur.LeadingTerm()
			remainder = remainder.Add(FromTerms(p.order, lt))
			cur = cur.TruncateLeadingTerm()
		}
	}
	return quotients, remainder
}

// Remainder returns only the remainder of Divide.
func (p Polynomial) Remainder(divisors []Polynomial) Polynomial {
	_, r := p.Divide(divisors)
	return r
}

// SPolynomial returns the S-polynomial of f and g:
//
//	(lcm(lm(f),lm(g))/lt(f))·(f − lt(f)) − (lcm(lm(f),lm(g))/lt(g))·(g − lt(g))
//
// Both f and g must be nonzero.
func SPolynomial(f, g Polynomial) Polynomial {
	ltf, ltg := f.LeadingTerm(), g.LeadingTerm()
	facF := ltf.LCMOver(ltg)
	facG := ltg.LCMOver(ltf)
	left := f.TruncateLeadingTerm().MulTerm(facF)
	right := g.TruncateLeadingTerm().MulTerm(facG)
	return left.Sub(right)
}
