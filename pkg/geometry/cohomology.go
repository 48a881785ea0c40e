package geometry

import "github.com/mesh-intelligence/moduli/pkg/types"

// H0 returns h^0(L) for a line bundle L of the given degree on the
// curve, by closed-form dispatch per family.
//
//   - P1: h^0(O(d)) = max(d+1, 0).
//   - Elliptic (genus 1): d > 0 gives d, d = 0 gives 1, d < 0 gives 0.
//   - Hyperelliptic and PlaneCurve (genus g): case split on d against
//     2g-2. The structure sheaf (d = 0) and the canonical bundle
//     (d = 2g-2) are special-cased so Riemann-Roch and Serre duality
//     hold at every degree; interior degrees use the non-special
//     convention h^0 = max(d+1-g, 0).
func H0(c Curve, degree int) int {
	switch c.(type) {
	case P1:
		return maxInt(degree+1, 0)
	case Elliptic:
		switch {
		case degree > 0:
			return degree
		case degree == 0:
			return 1
		default:
			return 0
		}
	default:
		return genericH0(c.Genus(), degree)
	}
}

// H1 returns h^1(L) for a line bundle L of the given degree. For P1 and
// Elliptic this is closed form; for the general-genus families it is
// derived from H0 by Riemann-Roch, h^1 = h^0 - d - 1 + g, which is
// non-negative by construction. A negative derivation is an engine bug
// and is returned as an InternalConsistencyError.
func H1(c Curve, degree int) (int, error) {
	switch c.(type) {
	case P1:
		return maxInt(-degree-1, 0), nil
	case Elliptic:
		switch {
		case degree > 0:
			return 0, nil
		case degree == 0:
			// h^1(O) = g = 1 on a genus-1 curve.
			return 1, nil
		default:
			return -degree, nil
		}
	default:
		g := c.Genus()
		h1 := genericH0(g, degree) - degree - 1 + g
		if h1 < 0 {
			return 0, &types.InternalConsistencyError{
				Check:  "h1_nonnegative",
				Family: c.FamilyType(),
				Degree: degree,
				Left:   h1,
				Right:  0,
			}
		}
		return h1, nil
	}
}

// genericH0 is the general-genus case split. K = 2g-2 denotes the
// canonical degree.
func genericH0(g, d int) int {
	k := 2*g - 2
	switch {
	case d == k:
		// Canonical bundle: h^0(K) = g.
		return g
	case d == 0:
		// Structure sheaf: h^0(O) = 1.
		return 1
	case d < 0:
		return 0
	case d > k:
		// Non-special range: h^1 = 0, so Riemann-Roch gives h^0 exactly.
		return d + 1 - g
	default:
		// 0 < d < 2g-2, assumed non-special.
		return maxInt(d+1-g, 0)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
