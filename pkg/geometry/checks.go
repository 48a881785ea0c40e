package geometry

// RiemannRochResult carries both sides of the Riemann-Roch identity
// h^0 - h^1 = d + 1 - g for one curve and degree.
type RiemannRochResult struct {
	H0        int
	H1        int
	Genus     int
	Degree    int
	Left      int // h^0 - h^1
	Right     int // d + 1 - g
	Satisfied bool
}

// RiemannRoch evaluates the Riemann-Roch identity for a line bundle of
// the given degree. The check itself is pure; the returned error covers
// only the h^1 derivation guard. A result with Satisfied == false is a
// fatal internal-consistency condition for the caller to escalate.
func RiemannRoch(c Curve, degree int) (RiemannRochResult, error) {
	h0 := H0(c, degree)
	h1, err := H1(c, degree)
	if err != nil {
		return RiemannRochResult{}, err
	}
	g := c.Genus()
	left := h0 - h1
	right := degree + 1 - g
	return RiemannRochResult{
		H0:        h0,
		H1:        h1,
		Genus:     g,
		Degree:    degree,
		Left:      left,
		Right:     right,
		Satisfied: left == right,
	}, nil
}

// SerreDualityResult carries both sides of the Serre duality identity
// h^1(L) = h^0(K - L) for one curve and degree.
type SerreDualityResult struct {
	Degree          int
	CanonicalDegree int
	DualDegree      int // deg K - deg L
	H1              int // h^1(L)
	H0Dual          int // h^0 at the dual degree
	Satisfied       bool
}

// SerreDuality evaluates h^1 at the given degree against h^0 at the
// dual degree deg K - degree.
func SerreDuality(c Curve, degree int) (SerreDualityResult, error) {
	h1, err := H1(c, degree)
	if err != nil {
		return SerreDualityResult{}, err
	}
	k := c.CanonicalDegree()
	dual := k - degree
	h0Dual := H0(c, dual)
	return SerreDualityResult{
		Degree:          degree,
		CanonicalDegree: k,
		DualDegree:      dual,
		H1:              h1,
		H0Dual:          h0Dual,
		Satisfied:       h1 == h0Dual,
	}, nil
}
