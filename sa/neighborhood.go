// Package sa - neighborhood operators.
//
// Two interchangeable moves produce a candidate tour from the current one:
//
//   - SwapNeighborhood: exchange two distinct positions i≠j, drawn uniformly.
//     O(1) work besides the copy.
//
//   - ReverseNeighborhood (2-opt): reverse the closed sub-range tour[i..j]
//     for a uniform pair i<j. Removes any crossing between the two boundary
//     edges — the classic Euclidean TSP move.
//
// Both moves preserve the permutation invariant and never mutate the input
// tour: the engine still needs the prior state when it rejects a candidate.
package sa

import "math/rand"

// Neighbor returns a fresh candidate tour produced from tour by the selected
// operator. The input is left untouched.
//
// Contract:
//   - tour must be a permutation of {0..len(tour)-1} with length ≥ 2,
//     else ErrDimensionMismatch.
//   - rng may be nil ⇒ deterministic default stream.
//   - Unknown kind ⇒ ErrUnsupportedOperator.
//
// Complexity: O(n) time, O(n) space.
func Neighbor(kind OperatorKind, tour []int, rng *rand.Rand) ([]int, error) {
	n := len(tour)
	if n < minOrder {
		return nil, ErrDimensionMismatch
	}
	if err := ValidatePermutation(tour, n); err != nil {
		return nil, err
	}

	switch kind {
	case SwapNeighborhood, ReverseNeighborhood:
		// ok
	default:
		return nil, ErrUnsupportedOperator
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	out := CopyTour(tour)
	perturbInPlace(kind, out, r)

	return out, nil
}

// perturbInPlace applies one move of the selected kind to tour, in place.
// The engine calls it on its candidate buffer after copying the current
// state; kind is validated upstream.
//
// Complexity: O(1) for swap, O(j−i) for reversal.
func perturbInPlace(kind OperatorKind, tour []int, rng *rand.Rand) {
	i, j := distinctPair(len(tour), rng)

	if kind == SwapNeighborhood {
		tour[i], tour[j] = tour[j], tour[i]

		return
	}

	// 2-opt: reverse the inclusive segment [i..j], i<j by construction.
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}

// distinctPair draws two distinct positions uniformly from [0,n) and returns
// them ordered (i<j). Exactly two rng draws per call, keeping the trajectory
// layout stable across operators.
//
// Complexity: O(1).
func distinctPair(n int, rng *rand.Rand) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	// Shift to skip i: j is now uniform over [0,n)\{i}.
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}

	return i, j
}
