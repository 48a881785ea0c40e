package types

import (
	"encoding/json"
	"fmt"
)

// Family tags for the four supported curve families.
const (
	FamilyP1            = "P1"
	FamilyElliptic      = "Elliptic"
	FamilyHyperelliptic = "Hyperelliptic"
	FamilyPlaneCurve    = "PlaneCurve"
)

// Sampling strategy tags.
const (
	StrategyGrid   = "grid"
	StrategyRandom = "random"
	StrategyLHS    = "lhs"
)

// Invariant names accepted in the invariants.compute list. DegK is an
// alias of canonical_deg and resolves to the same value.
const (
	InvariantGenus        = "genus"
	InvariantH0           = "h0"
	InvariantH1           = "h1"
	InvariantCanonicalDeg = "canonical_deg"
	InvariantDegK         = "degK"
)

// validInvariants is the set of recognized invariant names.
var validInvariants = map[string]bool{
	InvariantGenus:        true,
	InvariantH0:           true,
	InvariantH1:           true,
	InvariantCanonicalDeg: true,
	InvariantDegK:         true,
}

// validStrategies is the set of recognized sampling strategy tags.
var validStrategies = map[string]bool{
	StrategyGrid:   true,
	StrategyRandom: true,
	StrategyLHS:    true,
}

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// Width returns the number of integers in the range.
func (r Range) Width() int { return r.Max - r.Min + 1 }

// UnmarshalJSON accepts the two-element array form used in parameter
// files, e.g. "a": [-3, 3].
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: expected [min, max], got %d elements", ErrInvalidRange, len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// MarshalJSON writes the range back in array form.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Min, r.Max})
}

// Constraints carries the family-specific constraint set. Which fields
// must be present and which must be absent depends on the family tag;
// Validate on FamilyParams enforces the pairing.
type Constraints struct {
	Genus             *int             `json:"genus,omitempty"`              // Hyperelliptic target genus
	Degree            *int             `json:"degree,omitempty"`             // PlaneCurve degree
	DegreeRange       *Range           `json:"degree_range,omitempty"`       // P1 line bundle degree range
	CoefficientRanges map[string]Range `json:"coefficient_ranges,omitempty"` // Elliptic/Hyperelliptic/PlaneCurve
	SmoothnessCheck   bool             `json:"smoothness_check"`
}

// Sampling selects the strategy, sample count, and seed.
type Sampling struct {
	Strategy        string `json:"strategy"`
	NSamplesDefault int    `json:"n_samples_default"`
	Seed            int64  `json:"seed"`
}

// Invariants lists the invariant names to compute per curve, and the
// line bundle degree at which h0/h1 are evaluated for families other
// than P1 (P1 uses each sampled degree).
type Invariants struct {
	Compute          []string `json:"compute"`
	LineBundleDegree int      `json:"line_bundle_degree,omitempty"`
}

// FamilyParams is the complete, immutable configuration for one sampling
// run. It is constructed once from the external parameter file and never
// mutated by the core.
type FamilyParams struct {
	FamilyType  string      `json:"family_type"`
	Constraints Constraints `json:"constraints"`
	Sampling    Sampling    `json:"sampling"`
	Invariants  Invariants  `json:"invariants"`
}

// Validate checks the parameter set before any sampling starts. All
// violations are configuration errors: the constraint set must contain
// exactly the fields its family requires, every range must satisfy
// min <= max, the strategy and invariant names must be recognized, and
// the sample count must be positive.
func (p *FamilyParams) Validate() error {
	if err := p.validateFamily(); err != nil {
		return err
	}
	if err := p.validateSampling(); err != nil {
		return err
	}
	return p.validateInvariants()
}

func (p *FamilyParams) validateFamily() error {
	c := p.Constraints
	switch p.FamilyType {
	case FamilyP1:
		if c.DegreeRange == nil {
			return fmt.Errorf("%w: P1 requires degree_range", ErrMissingConstraint)
		}
		if c.Genus != nil {
			return fmt.Errorf("%w: P1 has fixed genus 0", ErrExtraConstraint)
		}
		if c.Degree != nil || c.CoefficientRanges != nil {
			return fmt.Errorf("%w: P1 takes only degree_range", ErrExtraConstraint)
		}
		return validateRange("degree_range", *c.DegreeRange)

	case FamilyElliptic:
		if c.CoefficientRanges == nil {
			return fmt.Errorf("%w: Elliptic requires coefficient_ranges", ErrMissingConstraint)
		}
		if c.Genus != nil && *c.Genus != 1 {
			return fmt.Errorf("%w: Elliptic curves have genus 1", ErrExtraConstraint)
		}
		if c.Degree != nil || c.DegreeRange != nil {
			return fmt.Errorf("%w: Elliptic takes only coefficient_ranges", ErrExtraConstraint)
		}
		for _, name := range []string{"a", "b"} {
			r, ok := c.CoefficientRanges[name]
			if !ok {
				return fmt.Errorf("%w: Elliptic coefficient_ranges requires %q", ErrMissingConstraint, name)
			}
			if err := validateRange(name, r); err != nil {
				return err
			}
		}
		return nil

	case FamilyHyperelliptic:
		if c.Genus == nil {
			return fmt.Errorf("%w: Hyperelliptic requires genus", ErrMissingConstraint)
		}
		if *c.Genus < 1 {
			return fmt.Errorf("%w: Hyperelliptic genus must be at least 1", ErrInvalidRange)
		}
		if c.CoefficientRanges == nil {
			return fmt.Errorf("%w: Hyperelliptic requires coefficient_ranges", ErrMissingConstraint)
		}
		if c.Degree != nil || c.DegreeRange != nil {
			return fmt.Errorf("%w: Hyperelliptic takes genus and coefficient_ranges", ErrExtraConstraint)
		}
		for name, r := range c.CoefficientRanges {
			if err := validateRange(name, r); err != nil {
				return err
			}
		}
		return nil

	case FamilyPlaneCurve:
		if c.Degree == nil {
			return fmt.Errorf("%w: PlaneCurve requires degree", ErrMissingConstraint)
		}
		if *c.Degree < 1 {
			return fmt.Errorf("%w: PlaneCurve degree must be at least 1", ErrInvalidRange)
		}
		if c.CoefficientRanges == nil {
			return fmt.Errorf("%w: PlaneCurve requires coefficient_ranges", ErrMissingConstraint)
		}
		if c.Genus != nil || c.DegreeRange != nil {
			return fmt.Errorf("%w: PlaneCurve takes degree and coefficient_ranges", ErrExtraConstraint)
		}
		for name, r := range c.CoefficientRanges {
			if err := validateRange(name, r); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFamily, p.FamilyType)
	}
}

func (p *FamilyParams) validateSampling() error {
	if !validStrategies[p.Sampling.Strategy] {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, p.Sampling.Strategy)
	}
	if p.Sampling.NSamplesDefault < 1 {
		return fmt.Errorf("%w: n_samples_default must be positive", ErrInvalidSampling)
	}
	return nil
}

func (p *FamilyParams) validateInvariants() error {
	if len(p.Invariants.Compute) == 0 {
		return fmt.Errorf("%w: invariants.compute must not be empty", ErrInvalidSampling)
	}
	for _, name := range p.Invariants.Compute {
		if !validInvariants[name] {
			return fmt.Errorf("%w: %q", ErrUnknownInvariant, name)
		}
	}
	return nil
}

func validateRange(name string, r Range) error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: %s has min %d > max %d", ErrInvalidRange, name, r.Min, r.Max)
	}
	return nil
}
