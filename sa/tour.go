// Package sa - tour utilities.
//
// A tour here is an *open* permutation of length n over {0..n-1}; the cycle
// closes implicitly with the wrap-around edge tour[n-1]→tour[0]. This is the
// only structural invariant in the package: every operator application must
// hand back a permutation, violated at most transiently while a move is being
// constructed and always restored before the accept/reject decision.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors.
//   - O(n) time for every helper; at most one O(n) marker allocation.
package sa

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n. It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// fillPermutationMarkers is the allocation-free engine variant of
// ValidatePermutation: seen is a caller-owned scratch slice of length n,
// reset here before use. Violations map to ErrInvariantViolation because an
// engine-produced candidate that is not a permutation is a defect, not bad
// caller input.
//
// Complexity: O(n) time, O(1) extra space.
func fillPermutationMarkers(perm []int, seen []bool) error {
	n := len(seen)
	if len(perm) != n {
		return ErrInvariantViolation
	}

	var i, v int
	for i = 0; i < n; i++ {
		seen[i] = false
	}
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvariantViolation
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// RandomTour returns a uniformly random permutation of 0..n-1 under the
// given seed (seed==0 ⇒ deterministic default stream). This is exactly the
// initial state the engine starts from for the same seed.
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, seed int64) ([]int, error) {
	if n < minOrder {
		return nil, ErrDimensionMismatch
	}

	return permRange(n, rngFromSeed(seed))
}
