package types

// CurveData carries the stored parameters of one sampled curve. Exactly
// the fields for the record's family are populated; the rest stay at
// their zero values and are omitted from JSON.
type CurveData struct {
	Degree            *int           `json:"degree,omitempty"`             // P1 twist / PlaneCurve degree
	A                 *int           `json:"a,omitempty"`                  // Elliptic coefficient
	B                 *int           `json:"b,omitempty"`                  // Elliptic coefficient
	Discriminant      *int64         `json:"discriminant,omitempty"`       // Elliptic only
	Coefficients      []int          `json:"coefficients,omitempty"`       // Hyperelliptic f, high degree first
	PlaneCoefficients map[string]int `json:"plane_coefficients,omitempty"` // PlaneCurve monomial map
}

// InvariantRecord is one sampled curve's stored parameters plus its
// computed invariants and provenance. Created once per sampled curve,
// immutable thereafter.
type InvariantRecord struct {
	CurveIndex       int            `json:"curve_index"`
	FamilyType       string         `json:"family_type"`
	Curve            CurveData      `json:"curve"`
	LineBundleDegree int            `json:"line_bundle_degree"`
	Genus            int            `json:"genus"`
	CanonicalDegree  int            `json:"canonical_degree"`
	IsSmooth         bool           `json:"is_smooth"`
	Invariants       map[string]int `json:"invariants"`
	SamplingStrategy string         `json:"sampling_strategy"`
	Seed             int64          `json:"seed"`
}

// CheckFailure records a failed consistency check for one record. Both
// sides of the failed identity are carried so the failure can be
// diagnosed without re-running.
type CheckFailure struct {
	CurveIndex int    `json:"curve_index"`
	Check      string `json:"check"`
	Degree     int    `json:"degree"`
	Left       int    `json:"left"`
	Right      int    `json:"right"`
}

// InvariantStats summarizes one numeric invariant across a family.
type InvariantStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
}

// FamilySummary aggregates a sequence of InvariantRecord. Failures is
// empty in a correct run; a non-empty list indicates an engine bug.
type FamilySummary struct {
	TotalCurves    int                       `json:"total_curves"`
	SmoothCurves   int                       `json:"smooth_curves"`
	SmoothFraction float64                   `json:"smooth_fraction"`
	GenusMin       int                       `json:"genus_min"`
	GenusMax       int                       `json:"genus_max"`
	Invariants     map[string]InvariantStats `json:"invariants,omitempty"`
	Failures       []CheckFailure            `json:"failures,omitempty"`
}
