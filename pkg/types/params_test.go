package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validP1Params() FamilyParams {
	return FamilyParams{
		FamilyType:  FamilyP1,
		Constraints: Constraints{DegreeRange: &Range{Min: -5, Max: 5}},
		Sampling:    Sampling{Strategy: StrategyGrid, NSamplesDefault: 10, Seed: 42},
		Invariants:  Invariants{Compute: []string{InvariantGenus, InvariantH0, InvariantH1}},
	}
}

func validEllipticParams() FamilyParams {
	return FamilyParams{
		FamilyType: FamilyElliptic,
		Constraints: Constraints{
			CoefficientRanges: map[string]Range{
				"a": {Min: -3, Max: 3},
				"b": {Min: -3, Max: 3},
			},
			SmoothnessCheck: true,
		},
		Sampling:   Sampling{Strategy: StrategyRandom, NSamplesDefault: 20, Seed: 7},
		Invariants: Invariants{Compute: []string{InvariantGenus, InvariantH0, InvariantH1, InvariantDegK}},
	}
}

func TestValidateAcceptsAllFamilies(t *testing.T) {
	hyper := FamilyParams{
		FamilyType: FamilyHyperelliptic,
		Constraints: Constraints{
			Genus:             intPtr(2),
			CoefficientRanges: map[string]Range{"a5": {Min: 1, Max: 2}},
			SmoothnessCheck:   true,
		},
		Sampling:   Sampling{Strategy: StrategyLHS, NSamplesDefault: 5, Seed: 1},
		Invariants: Invariants{Compute: []string{InvariantGenus}},
	}
	plane := FamilyParams{
		FamilyType: FamilyPlaneCurve,
		Constraints: Constraints{
			Degree:            intPtr(3),
			CoefficientRanges: map[string]Range{"x^3": {Min: -1, Max: 1}},
		},
		Sampling:   Sampling{Strategy: StrategyGrid, NSamplesDefault: 5, Seed: 1},
		Invariants: Invariants{Compute: []string{InvariantCanonicalDeg}},
	}

	for _, params := range []FamilyParams{validP1Params(), validEllipticParams(), hyper, plane} {
		assert.NoError(t, params.Validate(), params.FamilyType)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FamilyParams)
		wantErr error
	}{
		{
			name:    "unknown family",
			mutate:  func(p *FamilyParams) { p.FamilyType = "K3Surface" },
			wantErr: ErrUnknownFamily,
		},
		{
			name:    "P1 missing degree_range",
			mutate:  func(p *FamilyParams) { p.Constraints.DegreeRange = nil },
			wantErr: ErrMissingConstraint,
		},
		{
			name:    "P1 with genus constraint",
			mutate:  func(p *FamilyParams) { p.Constraints.Genus = intPtr(0) },
			wantErr: ErrExtraConstraint,
		},
		{
			name:    "P1 with coefficient ranges",
			mutate:  func(p *FamilyParams) { p.Constraints.CoefficientRanges = map[string]Range{"a": {0, 1}} },
			wantErr: ErrExtraConstraint,
		},
		{
			name:    "inverted range",
			mutate:  func(p *FamilyParams) { p.Constraints.DegreeRange = &Range{Min: 5, Max: -5} },
			wantErr: ErrInvalidRange,
		},
		{
			name:    "unknown strategy",
			mutate:  func(p *FamilyParams) { p.Sampling.Strategy = "sobol" },
			wantErr: ErrUnknownStrategy,
		},
		{
			name:    "non-positive sample count",
			mutate:  func(p *FamilyParams) { p.Sampling.NSamplesDefault = 0 },
			wantErr: ErrInvalidSampling,
		},
		{
			name:    "empty invariant list",
			mutate:  func(p *FamilyParams) { p.Invariants.Compute = nil },
			wantErr: ErrInvalidSampling,
		},
		{
			name:    "unknown invariant",
			mutate:  func(p *FamilyParams) { p.Invariants.Compute = []string{"euler_characteristic"} },
			wantErr: ErrUnknownInvariant,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validP1Params()
			tt.mutate(&params)
			err := params.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateEllipticRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FamilyParams)
		wantErr error
	}{
		{
			name:    "missing b range",
			mutate:  func(p *FamilyParams) { delete(p.Constraints.CoefficientRanges, "b") },
			wantErr: ErrMissingConstraint,
		},
		{
			name:    "degree_range not allowed",
			mutate:  func(p *FamilyParams) { p.Constraints.DegreeRange = &Range{Min: 0, Max: 1} },
			wantErr: ErrExtraConstraint,
		},
		{
			name:    "genus other than 1",
			mutate:  func(p *FamilyParams) { p.Constraints.Genus = intPtr(2) },
			wantErr: ErrExtraConstraint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validEllipticParams()
			tt.mutate(&params)
			err := params.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateHyperellipticGenusBound(t *testing.T) {
	params := FamilyParams{
		FamilyType: FamilyHyperelliptic,
		Constraints: Constraints{
			Genus:             intPtr(0),
			CoefficientRanges: map[string]Range{},
		},
		Sampling:   Sampling{Strategy: StrategyGrid, NSamplesDefault: 5},
		Invariants: Invariants{Compute: []string{InvariantGenus}},
	}
	assert.ErrorIs(t, params.Validate(), ErrInvalidRange)
}

func TestValidatePlaneCurveDegreeBound(t *testing.T) {
	params := FamilyParams{
		FamilyType: FamilyPlaneCurve,
		Constraints: Constraints{
			Degree:            intPtr(0),
			CoefficientRanges: map[string]Range{},
		},
		Sampling:   Sampling{Strategy: StrategyGrid, NSamplesDefault: 5},
		Invariants: Invariants{Compute: []string{InvariantGenus}},
	}
	assert.ErrorIs(t, params.Validate(), ErrInvalidRange)
}

func TestRangeJSON(t *testing.T) {
	var r Range
	require.NoError(t, json.Unmarshal([]byte(`[-3, 3]`), &r))
	assert.Equal(t, Range{Min: -3, Max: 3}, r)
	assert.Equal(t, 7, r.Width())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `[-3, 3]`, string(out))

	err = json.Unmarshal([]byte(`[1, 2, 3]`), &r)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestParamsJSONRoundTrip(t *testing.T) {
	raw := `{
		"family_type": "Elliptic",
		"constraints": {
			"coefficient_ranges": {"a": [-3, 3], "b": [-3, 3]},
			"smoothness_check": true
		},
		"sampling": {"strategy": "random", "n_samples_default": 20, "seed": 7},
		"invariants": {"compute": ["genus", "h0", "h1"]}
	}`
	var params FamilyParams
	require.NoError(t, json.Unmarshal([]byte(raw), &params))
	require.NoError(t, params.Validate())
	assert.Equal(t, FamilyElliptic, params.FamilyType)
	assert.Equal(t, Range{Min: -3, Max: 3}, params.Constraints.CoefficientRanges["a"])
	assert.True(t, params.Constraints.SmoothnessCheck)
	assert.Equal(t, int64(7), params.Sampling.Seed)
}
