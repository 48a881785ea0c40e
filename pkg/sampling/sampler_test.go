package sampling

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/moduli/pkg/types"
)

func intPtr(v int) *int { return &v }

func p1Params(strategy string, n int) types.FamilyParams {
	return types.FamilyParams{
		FamilyType:  types.FamilyP1,
		Constraints: types.Constraints{DegreeRange: &types.Range{Min: -2, Max: 2}},
		Sampling:    types.Sampling{Strategy: strategy, NSamplesDefault: n, Seed: 42},
		Invariants:  types.Invariants{Compute: []string{types.InvariantGenus, types.InvariantH0, types.InvariantH1}},
	}
}

func ellipticParams(strategy string, n int, smooth bool) types.FamilyParams {
	return types.FamilyParams{
		FamilyType: types.FamilyElliptic,
		Constraints: types.Constraints{
			CoefficientRanges: map[string]types.Range{
				"a": {Min: -5, Max: 5},
				"b": {Min: -5, Max: 5},
			},
			SmoothnessCheck: smooth,
		},
		Sampling:   types.Sampling{Strategy: strategy, NSamplesDefault: n, Seed: 42},
		Invariants: types.Invariants{Compute: []string{types.InvariantGenus, types.InvariantH0, types.InvariantH1}},
	}
}

func tuplesOf(samples []Sample) [][]int {
	out := make([][]int, len(samples))
	for i, s := range samples {
		out[i] = s.Tuple
	}
	return out
}

func TestGridIsSeedIndependent(t *testing.T) {
	params := p1Params(types.StrategyGrid, 5)

	a := New(params, rand.New(rand.NewSource(1)))
	b := New(params, rand.New(rand.NewSource(99)))

	sa, err := a.SampleFamily(0)
	require.NoError(t, err)
	sb, err := b.SampleFamily(0)
	require.NoError(t, err)

	assert.Equal(t, tuplesOf(sa), tuplesOf(sb))
	assert.Equal(t, [][]int{{-2}, {-1}, {0}, {1}, {2}}, tuplesOf(sa))
}

func TestGridTruncatesToRequestedCount(t *testing.T) {
	sampler := NewSeeded(p1Params(types.StrategyGrid, 5))
	samples, err := sampler.SampleFamily(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-2}, {-1}, {0}}, tuplesOf(samples))
}

func TestP1DegreeIsTheSampledCoordinate(t *testing.T) {
	sampler := NewSeeded(p1Params(types.StrategyGrid, 5))
	samples, err := sampler.SampleFamily(0)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Equal(t, s.Tuple[0], s.Degree)
		assert.Equal(t, types.FamilyP1, s.Curve.FamilyType())
	}
}

func TestRandomIsReproducible(t *testing.T) {
	params := ellipticParams(types.StrategyRandom, 10, false)

	a, err := New(params, rand.New(rand.NewSource(42))).SampleFamily(0)
	require.NoError(t, err)
	b, err := New(params, rand.New(rand.NewSource(42))).SampleFamily(0)
	require.NoError(t, err)
	c, err := New(params, rand.New(rand.NewSource(43))).SampleFamily(0)
	require.NoError(t, err)

	assert.Equal(t, tuplesOf(a), tuplesOf(b))
	assert.NotEqual(t, tuplesOf(a), tuplesOf(c))
}

func TestLHSIsReproducible(t *testing.T) {
	params := ellipticParams(types.StrategyLHS, 10, false)

	a, err := New(params, rand.New(rand.NewSource(42))).SampleFamily(0)
	require.NoError(t, err)
	b, err := New(params, rand.New(rand.NewSource(42))).SampleFamily(0)
	require.NoError(t, err)

	assert.Equal(t, tuplesOf(a), tuplesOf(b))
}

func TestSmoothnessFilterRejectsSingularCurves(t *testing.T) {
	params := ellipticParams(types.StrategyGrid, 200, true)
	samples, err := New(params, rand.New(rand.NewSource(1))).SampleFamily(0)
	require.NoError(t, err)
	require.NotEmpty(t, samples)
	for _, s := range samples {
		assert.True(t, s.Curve.IsSmooth())
	}
	// (0,0) sits inside the grid range and must have been skipped.
	for _, tuple := range tuplesOf(samples) {
		assert.NotEqual(t, []int{0, 0}, tuple)
	}
}

func TestGridShortfallIsNotAnError(t *testing.T) {
	// Every curve with a=b=0 is singular, so a 1x1 grid over the origin
	// yields nothing. Grid exhaustion is expected, not exceptional.
	params := ellipticParams(types.StrategyGrid, 3, true)
	params.Constraints.CoefficientRanges = map[string]types.Range{
		"a": {Min: 0, Max: 0},
		"b": {Min: 0, Max: 0},
	}
	samples, err := NewSeeded(params).SampleFamily(0)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestRandomExhaustionReturnsPartialWithError(t *testing.T) {
	params := ellipticParams(types.StrategyRandom, 3, true)
	params.Constraints.CoefficientRanges = map[string]types.Range{
		"a": {Min: 0, Max: 0},
		"b": {Min: 0, Max: 0},
	}
	sampler := NewSeeded(params)
	samples, err := sampler.SampleFamily(0)
	assert.Empty(t, samples)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrSamplingExhausted))
	var exhaustion *types.ExhaustionError
	require.True(t, errors.As(err, &exhaustion))
	assert.Equal(t, 3, exhaustion.Requested)
	assert.Equal(t, 0, exhaustion.Produced)
	assert.Equal(t, 3*DefaultMaxAttempts, exhaustion.Attempts)
}

func TestHyperellipticLeadingCoefficientNeverZero(t *testing.T) {
	params := types.FamilyParams{
		FamilyType: types.FamilyHyperelliptic,
		Constraints: types.Constraints{
			Genus: intPtr(1),
			CoefficientRanges: map[string]types.Range{
				"a3": {Min: -1, Max: 1},
				"a2": {Min: 0, Max: 0},
				"a1": {Min: 0, Max: 0},
				"a0": {Min: 0, Max: 0},
			},
		},
		Sampling:   types.Sampling{Strategy: types.StrategyGrid, NSamplesDefault: 10, Seed: 1},
		Invariants: types.Invariants{Compute: []string{types.InvariantGenus}},
	}
	samples, err := NewSeeded(params).SampleFamily(0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-1, 0, 0, 0}, {1, 0, 0, 0}}, tuplesOf(samples))
	for _, s := range samples {
		assert.Equal(t, 1, s.Curve.Genus())
	}
}

func TestDimensionsOrder(t *testing.T) {
	elliptic := NewSeeded(ellipticParams(types.StrategyGrid, 1, false))
	dims, err := elliptic.Dimensions()
	require.NoError(t, err)
	require.Len(t, dims, 2)
	assert.Equal(t, "a", dims[0].Name)
	assert.Equal(t, "b", dims[1].Name)

	hyper := types.FamilyParams{
		FamilyType: types.FamilyHyperelliptic,
		Constraints: types.Constraints{
			Genus:             intPtr(2),
			CoefficientRanges: map[string]types.Range{},
		},
		Sampling:   types.Sampling{Strategy: types.StrategyGrid, NSamplesDefault: 1, Seed: 1},
		Invariants: types.Invariants{Compute: []string{types.InvariantGenus}},
	}
	dims, err = NewSeeded(hyper).Dimensions()
	require.NoError(t, err)
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"a5", "a4", "a3", "a2", "a1", "a0"}, names)
}

func TestDefaultCoefficientRange(t *testing.T) {
	params := types.FamilyParams{
		FamilyType: types.FamilyHyperelliptic,
		Constraints: types.Constraints{
			Genus:             intPtr(1),
			CoefficientRanges: map[string]types.Range{"a3": {Min: 1, Max: 1}},
		},
		Sampling:   types.Sampling{Strategy: types.StrategyGrid, NSamplesDefault: 1, Seed: 1},
		Invariants: types.Invariants{Compute: []string{types.InvariantGenus}},
	}
	dims, err := NewSeeded(params).Dimensions()
	require.NoError(t, err)
	// Unlisted coefficients fall back to [-2, 2].
	assert.Equal(t, Dimension{Name: "a2", Min: -2, Max: 2}, dims[1])
}

func TestUnknownStrategyErrors(t *testing.T) {
	params := p1Params("sobol", 5)
	_, err := NewSeeded(params).SampleFamily(0)
	assert.ErrorIs(t, err, types.ErrUnknownStrategy)
}

func TestPlaneMonomials(t *testing.T) {
	assert.Equal(t,
		[]string{"x^3", "y^3", "z^3", "x^1*y^2", "x^1*z^2", "y^1*z^2"},
		planeMonomials(3))
	assert.Equal(t,
		[]string{"x^2", "y^2", "z^2", "x^1*y^1", "x^1*z^1", "y^1*z^1"},
		planeMonomials(2))
	assert.Equal(t, []string{"x^1", "y^1", "z^1"}, planeMonomials(1))
}

func TestPlaneCurveSampling(t *testing.T) {
	params := types.FamilyParams{
		FamilyType: types.FamilyPlaneCurve,
		Constraints: types.Constraints{
			Degree: intPtr(3),
			CoefficientRanges: map[string]types.Range{
				"x^3": {Min: 1, Max: 1},
				"y^3": {Min: 1, Max: 1},
				"z^3": {Min: 1, Max: 1},
			},
			SmoothnessCheck: true,
		},
		Sampling:   types.Sampling{Strategy: types.StrategyGrid, NSamplesDefault: 5, Seed: 1},
		Invariants: types.Invariants{Compute: []string{types.InvariantGenus}},
	}
	samples, err := NewSeeded(params).SampleFamily(0)
	require.NoError(t, err)
	require.NotEmpty(t, samples)
	for _, s := range samples {
		assert.Equal(t, 1, s.Curve.Genus())
		assert.True(t, s.Curve.IsSmooth())
	}
}
