package geometry

import "github.com/mesh-intelligence/moduli/pkg/types"

// Curve is the common capability set of the four supported families.
// The variant set is closed: every implementation lives in this package
// and the cohomology engine dispatches exhaustively over them.
//
// Genus, smoothness, and canonical degree are derived from the stored
// parameters, never stored themselves. CanonicalDegree always equals
// 2*Genus() - 2.
type Curve interface {
	// FamilyType returns the family tag (types.FamilyP1, ...).
	FamilyType() string

	// Genus returns the genus, a non-negative integer.
	Genus() int

	// IsSmooth reports whether the curve is smooth. Decided exactly;
	// see the per-family rules.
	IsSmooth() bool

	// CanonicalDegree returns deg K = 2g - 2.
	CanonicalDegree() int

	// Data returns the stored parameters for serialization into an
	// InvariantRecord. The curve itself is never mutated.
	Data() types.CurveData
}

// LineBundle is a degree together with a non-owning reference to the
// curve it lives on.
type LineBundle struct {
	Curve  Curve
	Degree int
}

// P1 is the projective line. Genus 0, canonical bundle O(-2), smooth by
// definition. Line bundle degrees live on LineBundle, not on the curve.
type P1 struct{}

func (P1) FamilyType() string    { return types.FamilyP1 }
func (P1) Genus() int            { return 0 }
func (P1) IsSmooth() bool        { return true }
func (P1) CanonicalDegree() int  { return -2 }
func (P1) Data() types.CurveData { return types.CurveData{} }

// Elliptic is the curve y^2 = x^3 + ax + b. Genus 1, canonical degree 0.
type Elliptic struct {
	A int
	B int
}

func (Elliptic) FamilyType() string   { return types.FamilyElliptic }
func (Elliptic) Genus() int           { return 1 }
func (Elliptic) CanonicalDegree() int { return 0 }

// Discriminant returns delta = -16(4a^3 + 27b^2), computed in int64.
func (e Elliptic) Discriminant() int64 {
	a, b := int64(e.A), int64(e.B)
	return -16 * (4*a*a*a + 27*b*b)
}

// IsSmooth reports delta != 0.
func (e Elliptic) IsSmooth() bool { return e.Discriminant() != 0 }

func (e Elliptic) Data() types.CurveData {
	a, b := e.A, e.B
	disc := e.Discriminant()
	return types.CurveData{A: &a, B: &b, Discriminant: &disc}
}

// Hyperelliptic is the curve y^2 = f(x), with the coefficients of f
// stored in descending exponent order [a_m, ..., a_0].
type Hyperelliptic struct {
	Coefficients []int
}

func (Hyperelliptic) FamilyType() string { return types.FamilyHyperelliptic }

// PolyDegree returns m = deg f as implied by the coefficient slice.
func (h Hyperelliptic) PolyDegree() int { return len(h.Coefficients) - 1 }

// Genus returns floor((m-1)/2) for m = deg f.
func (h Hyperelliptic) Genus() int { return (h.PolyDegree() - 1) / 2 }

func (h Hyperelliptic) CanonicalDegree() int { return 2*h.Genus() - 2 }

// IsSmooth reports whether f is squarefree, decided exactly over Q.
// This is the affine-chart criterion; smoothness at infinity depends on
// the parity of deg f and is part of the standard model.
func (h Hyperelliptic) IsSmooth() bool {
	return PolyFromInts(h.Coefficients).IsSquarefree()
}

func (h Hyperelliptic) Data() types.CurveData {
	coeffs := make([]int, len(h.Coefficients))
	copy(coeffs, h.Coefficients)
	return types.CurveData{Coefficients: coeffs}
}

// PlaneCurve is a plane projective curve F(x,y,z) = 0 of the given
// degree, with a sparse coefficient map over monomial strings such as
// "x^3" or "x^1*y^2".
type PlaneCurve struct {
	Degree       int
	Coefficients map[string]int
}

func (PlaneCurve) FamilyType() string { return types.FamilyPlaneCurve }

// Genus returns (d-1)(d-2)/2, the genus of a smooth plane curve of
// degree d.
func (p PlaneCurve) Genus() int { return (p.Degree - 1) * (p.Degree - 2) / 2 }

func (p PlaneCurve) CanonicalDegree() int { return 2*p.Genus() - 2 }

// IsSmooth applies the Jacobian criterion at the three coordinate
// points. See plane.go for the exact test and its documented scope.
func (p PlaneCurve) IsSmooth() bool { return planeSmoothAtCoordinatePoints(p) }

func (p PlaneCurve) Data() types.CurveData {
	d := p.Degree
	coeffs := make(map[string]int, len(p.Coefficients))
	for k, v := range p.Coefficients {
		coeffs[k] = v
	}
	return types.CurveData{Degree: &d, PlaneCoefficients: coeffs}
}
