package geometry

// CechP1Result compares the two-chart Cech computation of h^0/h^1 for
// O(d) on P^1 against the closed-form values. Used as a correctness
// oracle only; the cohomology engine never calls it on the hot path.
type CechP1Result struct {
	Degree   int
	H0Cech   int
	H1Cech   int
	H0Closed int
	H1Closed int
	Match    bool
}

// CechP1 recomputes h^0 and h^1 of O(d) on P^1 from the standard open
// cover U_0 = {z != 0}, U_1 = {w != 0}, by counting Laurent monomials
// x^k (x = w/z) compatible with the transition rule g_01 = (w/z)^d.
//
// A global section is a pair of polynomial sections agreeing on the
// overlap, which pins the exponent window 0 <= k <= d. A Cech 1-cocycle
// modulo coboundaries is a Laurent monomial reachable from neither
// chart, i.e. d < k < 0 shifted by the twist: d+1 <= k <= -1.
//
// Reference: Stacks Project tag 01DW.
func CechP1(degree int) CechP1Result {
	h0 := 0
	for k := 0; k <= degree; k++ {
		h0++
	}

	h1 := 0
	for k := degree + 1; k <= -1; k++ {
		h1++
	}

	h0Closed := H0(P1{}, degree)
	h1Closed, _ := H1(P1{}, degree) // closed form on P1, never errors

	return CechP1Result{
		Degree:   degree,
		H0Cech:   h0,
		H1Cech:   h1,
		H0Closed: h0Closed,
		H1Closed: h1Closed,
		Match:    h0 == h0Closed && h1 == h1Closed,
	}
}
