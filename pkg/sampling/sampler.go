package sampling

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mesh-intelligence/moduli/pkg/geometry"
	"github.com/mesh-intelligence/moduli/pkg/types"
)

// DefaultMaxAttempts bounds rejection sampling: the global draw budget
// for the random strategy is n*DefaultMaxAttempts, and each LHS point
// gets DefaultMaxAttempts re-draws within its stratum.
const DefaultMaxAttempts = 100

// defaultCoeffRange applies to coefficients not listed in
// coefficient_ranges for the hyperelliptic and plane curve families.
var defaultCoeffRange = types.Range{Min: -2, Max: 2}

// Sample is one produced curve together with the raw parameter tuple it
// was built from and the line bundle degree its invariants are
// evaluated at. For P1 the sampled coordinate is the bundle degree;
// other families use the configured invariants.line_bundle_degree.
type Sample struct {
	Curve  geometry.Curve
	Tuple  []int
	Degree int
}

// Sampler draws curve families per a validated FamilyParams. The random
// state is supplied by the caller and owned by this sampler alone;
// nothing here touches process-global randomness.
type Sampler struct {
	params types.FamilyParams
	rng    *rand.Rand

	// MaxAttempts is the per-point (LHS) and per-sample-average (random)
	// rejection budget. Defaults to DefaultMaxAttempts.
	MaxAttempts int
}

// New creates a Sampler over validated params with an explicit random
// state. Two samplers with independent *rand.Rand values are safe to
// run concurrently.
func New(params types.FamilyParams, rng *rand.Rand) *Sampler {
	return &Sampler{params: params, rng: rng, MaxAttempts: DefaultMaxAttempts}
}

// NewSeeded creates a Sampler whose random state is seeded from the
// configuration's own seed.
func NewSeeded(params types.FamilyParams) *Sampler {
	return New(params, rand.New(rand.NewSource(params.Sampling.Seed)))
}

// SampleFamily produces an ordered sequence of up to n samples for the
// configured family. n <= 0 means the configured default count.
//
// Grid output is seed-independent and deterministic. Random and LHS are
// reproducible bit-for-bit for a given seed. When rejection sampling
// exhausts its attempt budget the partial sequence is returned together
// with a *types.ExhaustionError carrying the exact counts; the sequence
// is never silently padded or duplicated.
func (s *Sampler) SampleFamily(n int) ([]Sample, error) {
	if n <= 0 {
		n = s.params.Sampling.NSamplesDefault
	}

	dims, build, err := s.familyModel()
	if err != nil {
		return nil, err
	}

	accept := func(tuple []int) bool {
		return s.acceptTuple(build, tuple)
	}

	var tuples [][]int
	var attempts int
	switch s.params.Sampling.Strategy {
	case types.StrategyGrid:
		tuples = gridTuples(dims, n, accept)
	case types.StrategyRandom:
		tuples, attempts = randomTuples(s.rng, dims, n, n*s.MaxAttempts, accept)
	case types.StrategyLHS:
		tuples, attempts = lhsTuples(s.rng, dims, n, s.MaxAttempts, accept)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownStrategy, s.params.Sampling.Strategy)
	}

	samples := make([]Sample, len(tuples))
	for i, t := range tuples {
		samples[i] = Sample{
			Curve:  build(t),
			Tuple:  t,
			Degree: s.lineBundleDegree(t),
		}
	}

	if s.params.Sampling.Strategy != types.StrategyGrid && len(samples) < n {
		return samples, &types.ExhaustionError{
			Requested: n,
			Produced:  len(samples),
			Attempts:  attempts,
		}
	}
	return samples, nil
}

// Dimensions exposes the declared dimension order for the configured
// family, which also fixes grid ordering and tuple layout.
func (s *Sampler) Dimensions() ([]Dimension, error) {
	dims, _, err := s.familyModel()
	return dims, err
}

// acceptTuple applies the family predicate: structural constraints
// always, smoothness only when the configuration asks for it.
func (s *Sampler) acceptTuple(build func([]int) geometry.Curve, tuple []int) bool {
	if s.params.FamilyType == types.FamilyHyperelliptic && tuple[0] == 0 {
		// A vanishing leading coefficient drops deg f and changes the
		// genus away from the configured target.
		return false
	}
	if !s.params.Constraints.SmoothnessCheck {
		return true
	}
	return build(tuple).IsSmooth()
}

// lineBundleDegree returns the degree at which h0/h1 are evaluated for
// a sample.
func (s *Sampler) lineBundleDegree(tuple []int) int {
	if s.params.FamilyType == types.FamilyP1 {
		return tuple[0]
	}
	return s.params.Invariants.LineBundleDegree
}

// familyModel maps the validated constraints to the dimension list and
// the tuple-to-curve constructor for the configured family.
func (s *Sampler) familyModel() ([]Dimension, func([]int) geometry.Curve, error) {
	c := s.params.Constraints
	switch s.params.FamilyType {
	case types.FamilyP1:
		dims := []Dimension{{Name: "degree", Min: c.DegreeRange.Min, Max: c.DegreeRange.Max}}
		build := func(_ []int) geometry.Curve { return geometry.P1{} }
		return dims, build, nil

	case types.FamilyElliptic:
		ra, rb := c.CoefficientRanges["a"], c.CoefficientRanges["b"]
		dims := []Dimension{
			{Name: "a", Min: ra.Min, Max: ra.Max},
			{Name: "b", Min: rb.Min, Max: rb.Max},
		}
		build := func(t []int) geometry.Curve { return geometry.Elliptic{A: t[0], B: t[1]} }
		return dims, build, nil

	case types.FamilyHyperelliptic:
		// deg f = 2g+1 for target genus g; dimensions run from the
		// leading coefficient down to the constant term, matching the
		// stored coefficient order.
		m := 2*(*c.Genus) + 1
		dims := make([]Dimension, m+1)
		for i := 0; i <= m; i++ {
			exp := m - i
			r, ok := c.CoefficientRanges[fmt.Sprintf("a%d", exp)]
			if !ok {
				r = defaultCoeffRange
			}
			dims[i] = Dimension{Name: fmt.Sprintf("a%d", exp), Min: r.Min, Max: r.Max}
		}
		build := func(t []int) geometry.Curve {
			coeffs := make([]int, len(t))
			copy(coeffs, t)
			return geometry.Hyperelliptic{Coefficients: coeffs}
		}
		return dims, build, nil

	case types.FamilyPlaneCurve:
		monomials := planeMonomials(*c.Degree)
		dims := make([]Dimension, len(monomials))
		for i, mono := range monomials {
			r, ok := c.CoefficientRanges[mono]
			if !ok {
				r = defaultCoeffRange
			}
			dims[i] = Dimension{Name: mono, Min: r.Min, Max: r.Max}
		}
		degree := *c.Degree
		build := func(t []int) geometry.Curve {
			coeffs := make(map[string]int, len(monomials))
			for i, mono := range monomials {
				coeffs[mono] = t[i]
			}
			return geometry.PlaneCurve{Degree: degree, Coefficients: coeffs}
		}
		return dims, build, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", types.ErrUnknownFamily, s.params.FamilyType)
	}
}

// planeMonomials returns the standard monomial basis sampled for a
// plane curve of degree d: the three pure powers, then the mixed terms
// x^i*y^j, x^i*z^j, y^i*z^j for i+j = d with i <= j, in ascending i.
// The order is fixed so grid output and tuple layout are stable.
func planeMonomials(d int) []string {
	monomials := []string{
		fmt.Sprintf("x^%d", d),
		fmt.Sprintf("y^%d", d),
		fmt.Sprintf("z^%d", d),
	}
	var mixed []string
	for i := 1; i < d; i++ {
		j := d - i
		if i > j {
			break
		}
		mixed = append(mixed,
			fmt.Sprintf("x^%d*y^%d", i, j),
			fmt.Sprintf("x^%d*z^%d", i, j),
			fmt.Sprintf("y^%d*z^%d", i, j),
		)
	}
	sort.Strings(mixed)
	return append(monomials, mixed...)
}
