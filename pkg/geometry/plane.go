package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// monomial holds the exponents of x, y, z in one term of a plane curve.
type monomial struct {
	X, Y, Z int
}

// parseMonomial parses a monomial key such as "x^3", "y", or "x^1*y^2"
// into its exponent triple. Unknown variables and malformed exponents
// are configuration errors surfaced at curve construction.
func parseMonomial(s string) (monomial, error) {
	var m monomial
	if s == "" {
		return m, fmt.Errorf("empty monomial")
	}
	for _, factor := range strings.Split(s, "*") {
		name, expStr, hasExp := strings.Cut(factor, "^")
		exp := 1
		if hasExp {
			v, err := strconv.Atoi(expStr)
			if err != nil || v < 0 {
				return m, fmt.Errorf("bad exponent in monomial %q", s)
			}
			exp = v
		}
		switch name {
		case "x":
			m.X += exp
		case "y":
			m.Y += exp
		case "z":
			m.Z += exp
		default:
			return m, fmt.Errorf("unknown variable %q in monomial %q", name, s)
		}
	}
	return m, nil
}

// ParsePlaneCoefficients validates a monomial coefficient map against
// the declared curve degree: every key must parse and every monomial
// must be homogeneous of that degree.
func ParsePlaneCoefficients(degree int, coeffs map[string]int) error {
	for key := range coeffs {
		m, err := parseMonomial(key)
		if err != nil {
			return err
		}
		if m.X+m.Y+m.Z != degree {
			return fmt.Errorf("monomial %q has degree %d, curve has degree %d",
				key, m.X+m.Y+m.Z, degree)
		}
	}
	return nil
}

// coordinatePoints are [1:0:0], [0:1:0], [0:0:1] as variable indices.
var coordinatePoints = [3]int{0, 1, 2}

// planeSmoothAtCoordinatePoints applies the Jacobian criterion at the
// three coordinate points of P^2, with exact integer arithmetic.
//
// This is a partial smoothness test: a curve singular at a coordinate
// point is always caught, the zero polynomial and unparseable maps are
// rejected, but a singularity away from the coordinate points is not
// detected. The full resultant-based elimination over Q is deliberately
// not implemented; the choice is recorded in DESIGN.md.
func planeSmoothAtCoordinatePoints(p PlaneCurve) bool {
	if len(p.Coefficients) == 0 {
		return false
	}

	type term struct {
		m monomial
		c int
	}
	terms := make([]term, 0, len(p.Coefficients))
	allZero := true
	for key, c := range p.Coefficients {
		m, err := parseMonomial(key)
		if err != nil || m.X+m.Y+m.Z != p.Degree {
			return false
		}
		if c != 0 {
			allZero = false
		}
		terms = append(terms, term{m: m, c: c})
	}
	if allZero {
		return false
	}

	// exponents returns the exponent of variable v in m.
	exponents := func(m monomial, v int) int {
		switch v {
		case 0:
			return m.X
		case 1:
			return m.Y
		default:
			return m.Z
		}
	}

	// partialAt evaluates dF/dx_v at the coordinate point where x_pt = 1
	// and the other two variables vanish. Only the monomial whose
	// exponents are concentrated on x_pt after differentiation survives.
	partialAt := func(v, pt int) int {
		total := 0
		for _, t := range terms {
			ev := exponents(t.m, v)
			if ev == 0 {
				continue
			}
			// After d/dx_v the exponent of x_v drops by one; the value at
			// the coordinate point is nonzero only if every variable other
			// than x_pt then has exponent zero.
			nonPtSum := 0
			for w := 0; w < 3; w++ {
				e := exponents(t.m, w)
				if w == v {
					e--
				}
				if w != pt {
					nonPtSum += e
				}
			}
			if nonPtSum == 0 {
				total += ev * t.c
			}
		}
		return total
	}

	for _, pt := range coordinatePoints {
		singular := true
		for v := 0; v < 3; v++ {
			if partialAt(v, pt) != 0 {
				singular = false
				break
			}
		}
		if singular {
			return false
		}
	}
	return true
}
