package geometry

import "math/big"

// Poly is a univariate polynomial over the rationals. Coefficients are
// stored in ascending exponent order with no trailing zero (the zero
// polynomial is an empty slice). Exact big.Rat arithmetic throughout;
// squarefreeness must be decided over Q, not numerically.
type Poly struct {
	coeffs []*big.Rat
}

// PolyFromInts builds a polynomial from integer coefficients given in
// descending exponent order [a_m, ..., a_0], the convention used by
// hyperelliptic constraint files.
func PolyFromInts(desc []int) Poly {
	n := len(desc)
	coeffs := make([]*big.Rat, n)
	for i, c := range desc {
		coeffs[n-1-i] = big.NewRat(int64(c), 1)
	}
	return Poly{coeffs: coeffs}.trim()
}

// trim drops leading zero coefficients so Degree is well defined.
func (p Poly) trim() Poly {
	i := len(p.coeffs)
	for i > 0 && p.coeffs[i-1].Sign() == 0 {
		i--
	}
	return Poly{coeffs: p.coeffs[:i]}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.coeffs) == 0 }

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.coeffs) - 1 }

// Derivative returns the formal derivative p'.
func (p Poly) Derivative() Poly {
	if p.Degree() < 1 {
		return Poly{}
	}
	coeffs := make([]*big.Rat, p.Degree())
	for i := 1; i <= p.Degree(); i++ {
		coeffs[i-1] = new(big.Rat).Mul(p.coeffs[i], big.NewRat(int64(i), 1))
	}
	return Poly{coeffs: coeffs}.trim()
}

// mod returns the remainder of p divided by q (q non-zero), by exact
// synthetic division.
func (p Poly) mod(q Poly) Poly {
	rem := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		rem[i] = new(big.Rat).Set(c)
	}
	r := Poly{coeffs: rem}.trim()
	qLead := q.coeffs[q.Degree()]
	for r.Degree() >= q.Degree() {
		shift := r.Degree() - q.Degree()
		factor := new(big.Rat).Quo(r.coeffs[r.Degree()], qLead)
		for i := 0; i <= q.Degree(); i++ {
			prod := new(big.Rat).Mul(factor, q.coeffs[i])
			r.coeffs[shift+i].Sub(r.coeffs[shift+i], prod)
		}
		r = r.trim()
	}
	return r
}

// GCD returns the monic greatest common divisor of p and q via the
// Euclidean algorithm over Q.
func GCD(p, q Poly) Poly {
	a, b := p, q
	for !b.IsZero() {
		a, b = b, a.mod(b)
	}
	return a.monic()
}

// monic scales p so its leading coefficient is 1.
func (p Poly) monic() Poly {
	if p.IsZero() {
		return p
	}
	lead := p.coeffs[p.Degree()]
	coeffs := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Rat).Quo(c, lead)
	}
	return Poly{coeffs: coeffs}
}

// IsSquarefree reports whether p has no repeated roots, i.e. whether
// gcd(p, p') is a nonzero constant. The zero polynomial is not
// squarefree; nonzero constants are.
func (p Poly) IsSquarefree() bool {
	if p.IsZero() {
		return false
	}
	if p.Degree() == 0 {
		return true
	}
	return GCD(p, p.Derivative()).Degree() == 0
}
