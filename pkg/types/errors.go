package types

import (
	"errors"
	"fmt"
)

// Configuration errors. These indicate malformed input and are fully
// recoverable by the caller fixing the parameter file. They are detected
// during FamilyParams.Validate, before any sampling starts.
var (
	ErrUnknownFamily     = errors.New("unknown family type")
	ErrUnknownStrategy   = errors.New("unknown sampling strategy")
	ErrUnknownInvariant  = errors.New("unknown invariant name")
	ErrMissingConstraint = errors.New("missing required constraint")
	ErrExtraConstraint   = errors.New("constraint not valid for family")
	ErrInvalidRange      = errors.New("invalid range")
	ErrInvalidSampling   = errors.New("invalid sampling configuration")
)

// ErrSamplingExhausted marks a rejection-sampling shortfall. It is the
// errors.Is target for ExhaustionError.
var ErrSamplingExhausted = errors.New("sampling attempt budget exhausted")

// ErrInternalConsistency marks a failed structural identity. It is the
// errors.Is target for InternalConsistencyError.
var ErrInternalConsistency = errors.New("internal consistency check failed")

// ExhaustionError reports that rejection sampling hit its attempt budget
// before producing the requested number of curves. It is non-fatal: the
// sampler still returns the shorter sequence actually produced, and the
// counts here make the discrepancy explicit.
type ExhaustionError struct {
	Requested int // number of samples asked for
	Produced  int // number of samples actually generated
	Attempts  int // total draws consumed, including rejected ones
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("sampling exhausted: produced %d of %d requested samples after %d attempts",
		e.Produced, e.Requested, e.Attempts)
}

// Unwrap lets errors.Is(err, ErrSamplingExhausted) match.
func (e *ExhaustionError) Unwrap() error { return ErrSamplingExhausted }

// InternalConsistencyError reports that a Riemann-Roch or Serre duality
// identity failed on engine-produced data. The identities are theorems,
// so a failure is an engine bug, not a recoverable application error.
// Both sides of the failed equation are carried for diagnosis.
type InternalConsistencyError struct {
	Check  string // "riemann_roch", "serre_duality", or "h1_nonnegative"
	Family string // curve family tag
	Degree int    // line bundle degree under test
	Left   int    // left-hand side of the identity
	Right  int    // right-hand side of the identity
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("%s check failed on %s curve at degree %d: %d != %d",
		e.Check, e.Family, e.Degree, e.Left, e.Right)
}

// Unwrap lets errors.Is(err, ErrInternalConsistency) match.
func (e *InternalConsistencyError) Unwrap() error { return ErrInternalConsistency }
