// Package invariants drives the curve model, the cohomology engine, and
// the consistency validator over a sampled family, producing per-curve
// records and summary statistics.
package invariants

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/mesh-intelligence/moduli/pkg/geometry"
	"github.com/mesh-intelligence/moduli/pkg/sampling"
	"github.com/mesh-intelligence/moduli/pkg/types"
)

// Compute maps each requested invariant name to its value for a line
// bundle of the given degree on the curve. degK is an alias of
// canonical_deg. An unknown name is a configuration error.
func Compute(c geometry.Curve, names []string, degree int) (map[string]int, error) {
	out := make(map[string]int, len(names))
	for _, name := range names {
		switch name {
		case types.InvariantGenus:
			out[name] = c.Genus()
		case types.InvariantCanonicalDeg, types.InvariantDegK:
			out[name] = c.CanonicalDegree()
		case types.InvariantH0:
			out[name] = geometry.H0(c, degree)
		case types.InvariantH1:
			h1, err := geometry.H1(c, degree)
			if err != nil {
				return nil, err
			}
			out[name] = h1
		default:
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownInvariant, name)
		}
	}
	return out, nil
}

// Records turns an ordered sample sequence into immutable
// InvariantRecords, tagging each with its sampling provenance.
func Records(samples []sampling.Sample, params types.FamilyParams) ([]types.InvariantRecord, error) {
	records := make([]types.InvariantRecord, len(samples))
	for i, s := range samples {
		values, err := Compute(s.Curve, params.Invariants.Compute, s.Degree)
		if err != nil {
			return nil, err
		}
		records[i] = types.InvariantRecord{
			CurveIndex:       i,
			FamilyType:       s.Curve.FamilyType(),
			Curve:            s.Curve.Data(),
			LineBundleDegree: s.Degree,
			Genus:            s.Curve.Genus(),
			CanonicalDegree:  s.Curve.CanonicalDegree(),
			IsSmooth:         s.Curve.IsSmooth(),
			Invariants:       values,
			SamplingStrategy: params.Sampling.Strategy,
			Seed:             params.Sampling.Seed,
		}
	}
	return records, nil
}

// Summarize aggregates a record sequence into a FamilySummary: counts,
// smooth fraction, genus bounds, per-invariant min/max/mean, and the
// consistency failures collected by ValidateConsistency.
func Summarize(records []types.InvariantRecord) types.FamilySummary {
	summary := types.FamilySummary{TotalCurves: len(records)}
	if len(records) == 0 {
		return summary
	}

	summary.GenusMin = records[0].Genus
	summary.GenusMax = records[0].Genus
	for _, r := range records {
		if r.IsSmooth {
			summary.SmoothCurves++
		}
		if r.Genus < summary.GenusMin {
			summary.GenusMin = r.Genus
		}
		if r.Genus > summary.GenusMax {
			summary.GenusMax = r.Genus
		}
	}
	summary.SmoothFraction = float64(summary.SmoothCurves) / float64(len(records))

	// Per-invariant stats over whichever names the records carry.
	values := make(map[string][]float64)
	mins := make(map[string]int)
	maxs := make(map[string]int)
	for _, r := range records {
		for name, v := range r.Invariants {
			if _, seen := values[name]; !seen {
				mins[name], maxs[name] = v, v
			}
			values[name] = append(values[name], float64(v))
			if v < mins[name] {
				mins[name] = v
			}
			if v > maxs[name] {
				maxs[name] = v
			}
		}
	}
	if len(values) > 0 {
		summary.Invariants = make(map[string]types.InvariantStats, len(values))
		for name, vs := range values {
			summary.Invariants[name] = types.InvariantStats{
				Min:  mins[name],
				Max:  maxs[name],
				Mean: stat.Mean(vs, nil),
			}
		}
	}

	summary.Failures = ValidateConsistency(records)
	return summary
}

// ValidateConsistency re-runs the Riemann-Roch and Serre duality checks
// on every record and collects failures. An empty result is a pass; any
// entry indicates an engine bug (the identities are theorems), and the
// caller must treat it as fatal.
func ValidateConsistency(records []types.InvariantRecord) []types.CheckFailure {
	var failures []types.CheckFailure
	for _, r := range records {
		c, err := curveFromRecord(r)
		if err != nil {
			failures = append(failures, types.CheckFailure{
				CurveIndex: r.CurveIndex,
				Check:      "reconstruct",
				Degree:     r.LineBundleDegree,
			})
			continue
		}

		rr, err := geometry.RiemannRoch(c, r.LineBundleDegree)
		if err != nil || !rr.Satisfied {
			failures = append(failures, types.CheckFailure{
				CurveIndex: r.CurveIndex,
				Check:      "riemann_roch",
				Degree:     r.LineBundleDegree,
				Left:       rr.Left,
				Right:      rr.Right,
			})
		}

		sd, err := geometry.SerreDuality(c, r.LineBundleDegree)
		if err != nil || !sd.Satisfied {
			failures = append(failures, types.CheckFailure{
				CurveIndex: r.CurveIndex,
				Check:      "serre_duality",
				Degree:     r.LineBundleDegree,
				Left:       sd.H1,
				Right:      sd.H0Dual,
			})
		}
	}
	return failures
}

// curveFromRecord rebuilds the curve variant from a record's stored
// parameters so consistency can be validated on previously persisted
// families.
func curveFromRecord(r types.InvariantRecord) (geometry.Curve, error) {
	switch r.FamilyType {
	case types.FamilyP1:
		return geometry.P1{}, nil
	case types.FamilyElliptic:
		if r.Curve.A == nil || r.Curve.B == nil {
			return nil, fmt.Errorf("elliptic record missing coefficients")
		}
		return geometry.Elliptic{A: *r.Curve.A, B: *r.Curve.B}, nil
	case types.FamilyHyperelliptic:
		if len(r.Curve.Coefficients) == 0 {
			return nil, fmt.Errorf("hyperelliptic record missing coefficients")
		}
		return geometry.Hyperelliptic{Coefficients: r.Curve.Coefficients}, nil
	case types.FamilyPlaneCurve:
		if r.Curve.Degree == nil {
			return nil, fmt.Errorf("plane curve record missing degree")
		}
		return geometry.PlaneCurve{Degree: *r.Curve.Degree, Coefficients: r.Curve.PlaneCoefficients}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFamily, r.FamilyType)
	}
}
