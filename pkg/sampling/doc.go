// Package sampling generates ordered sequences of curve parameter
// tuples for a configured family, under one of three strategies: grid
// (deterministic Cartesian product), seeded random, or seeded Latin
// hypercube.
//
// Randomness is an explicit, caller-owned *rand.Rand threaded through
// every draw. The package holds no global mutable state, so two
// samplers running concurrently with different seeds never interfere,
// and a given (configuration, seed) pair reproduces its output
// bit-for-bit.
package sampling
