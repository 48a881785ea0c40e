package sampling

import "math/rand"

// Dimension is one sampled coordinate: a named inclusive integer range.
// The declared order of dimensions fixes tuple layout and grid ordering.
type Dimension struct {
	Name string
	Min  int
	Max  int
}

// width returns the number of integers in the dimension's range.
func (d Dimension) width() int { return d.Max - d.Min + 1 }

// gridTuples enumerates the Cartesian product of the dimensions in
// odometer order: the first dimension is most significant and every
// dimension ascends. Tuples accepted by the predicate are collected
// until limit is reached or the product is exhausted. No randomness is
// consumed, so the output is identical for any seed.
func gridTuples(dims []Dimension, limit int, accept func([]int) bool) [][]int {
	if len(dims) == 0 || limit <= 0 {
		return nil
	}

	idx := make([]int, len(dims))
	out := make([][]int, 0, limit)
	for {
		tuple := make([]int, len(dims))
		for i, d := range dims {
			tuple[i] = d.Min + idx[i]
		}
		if accept(tuple) {
			out = append(out, tuple)
			if len(out) == limit {
				return out
			}
		}

		// Advance the odometer, last dimension fastest.
		i := len(dims) - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < dims[i].width() {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
	}
}

// randomTuple draws one coordinate per dimension, independently and
// uniformly over each range.
func randomTuple(rng *rand.Rand, dims []Dimension) []int {
	tuple := make([]int, len(dims))
	for i, d := range dims {
		tuple[i] = d.Min + rng.Intn(d.width())
	}
	return tuple
}

// randomTuples rejection-samples n accepted tuples with a global
// attempt budget. When the budget runs out it returns the shorter
// sequence actually produced together with the attempt count; the
// caller reports the shortfall explicitly.
func randomTuples(rng *rand.Rand, dims []Dimension, n, maxAttempts int, accept func([]int) bool) (tuples [][]int, attempts int) {
	tuples = make([][]int, 0, n)
	for len(tuples) < n && attempts < maxAttempts {
		attempts++
		t := randomTuple(rng, dims)
		if accept(t) {
			tuples = append(tuples, t)
		}
	}
	return tuples, attempts
}

// lhsValue draws one integer from stratum k of n equal-width strata
// over the half-open real interval [min, max+1), uniformly within the
// stratum. The result is clamped into the integer range so boundary
// rounding can never escape it.
func lhsValue(rng *rand.Rand, d Dimension, stratum, n int) int {
	w := float64(d.width()) / float64(n)
	v := float64(d.Min) + (float64(stratum)+rng.Float64())*w
	value := int(v)
	if float64(value) > v { // guard int truncation toward zero for negatives
		value--
	}
	if value < d.Min {
		value = d.Min
	}
	if value > d.Max {
		value = d.Max
	}
	return value
}

// lhsTuples produces up to n tuples by Latin hypercube sampling: each
// dimension is cut into n strata, a per-dimension permutation assigns
// exactly one stratum to each output point, and every draw stays inside
// its assigned stratum. Rejection re-draws within the same strata, so
// marginal coverage is preserved for every point produced. A point that
// exhausts its per-point attempt budget is dropped and counted as a
// shortfall.
func lhsTuples(rng *rand.Rand, dims []Dimension, n, maxAttemptsPerPoint int, accept func([]int) bool) (tuples [][]int, attempts int) {
	perms := make([][]int, len(dims))
	for i := range dims {
		perms[i] = rng.Perm(n)
	}

	tuples = make([][]int, 0, n)
	for point := 0; point < n; point++ {
		for tries := 0; tries < maxAttemptsPerPoint; tries++ {
			attempts++
			tuple := make([]int, len(dims))
			for i, d := range dims {
				tuple[i] = lhsValue(rng, d, perms[i][point], n)
			}
			if accept(tuple) {
				tuples = append(tuples, tuple)
				break
			}
		}
	}
	return tuples, attempts
}
