package mvpoly

import "github.com/real-cad/cad/variable"

// SubresultantPRS returns the pseudo-remainder sequence of a, b in v:
// R0=a, R1=b, and each subsequent Ri = prem(R(i-2), R(i-1)), stopping
// once a remainder is zero or constant in v. Each Ri (i>=2) is an
// associate of the subresultant of a, b whose degree in v matches
// deg(Ri,v).
func SubresultantPRS(a, b Polynomial, v variable.Variable) []Polynomial {
	seq := []Polynomial{a, b}
	if a.IsZero() || b.IsZero() {
		return seq
	}
	prev2, prev1 := a, b
	for {
		if prev1.IsZero() || prev1.DegreeIn(v) == 0 {
			break
		}
		r := prev2.Prem(prev1, v)
		if r.IsZero() {
			break
		}
		seq = append(seq, r)
		prev2, prev1 = prev1, r
	}
	return seq
}

// PrincipalSubresultantCoefficients returns the leading coefficients in
// v of every polynomial in the pseudo-remainder sequence of a, b from b
// onward. Each entry is a Polynomial in the variables other than v.
func PrincipalSubresultantCoefficients(a, b Polynomial, v variable.Variable) []Polynomial {
	seq := SubresultantPRS(a, b, v)
	out := make([]Polynomial, 0, len(seq)-1)
	for _, r := range seq[1:] {
		if r.IsZero() {
			continue
		}
		out = append(out, r.LCoeffIn(v))
	}
	return out
}
