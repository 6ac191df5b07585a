// Package sa - tour cost evaluation.
//
// TourCost computes the total length of the Hamiltonian cycle encoded by an
// open permutation, including the wrap-around edge from the last index back
// to the first. The hot engine loop uses the unchecked cycleCost over a
// prefetched flat weight buffer instead; both agree to the last bit.
//
// Costs are stabilized to 1e-9 absolute precision to avoid cross-platform
// floating-point drift without affecting optimality comparisons.
package sa

import (
	"math"

	"github.com/katalvlaran/annealing/dist"
)

// minOrder is the smallest matrix order that admits a tour.
const minOrder = 2

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the cyclic cost of tour over m:
//
//	sum over i in [0,n) of m.At(tour[i], tour[(i+1) mod n]).
//
// Contract:
//   - m non-nil with Order n ≥ 2.
//   - tour must be a permutation of {0..n-1}, else ErrDimensionMismatch.
//
// Deterministic. Complexity: O(n) time, O(n) space (the permutation check).
func TourCost(m *dist.Dense, tour []int) (float64, error) {
	if m == nil || m.Order() < minOrder {
		return 0, ErrDimensionMismatch
	}
	n := m.Order()
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i < n; i++ {
		// The modulo closes the cycle on the last iteration.
		w, err = m.At(tour[i], tour[(i+1)%n])
		if err != nil {
			// At only fails on OOB; the permutation check rules that out,
			// so map any residual failure to the shape sentinel.
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return round1e9(sum), nil
}

// cycleCost sums the cyclic tour cost over a prefetched flat weight buffer
// w[u*n+v]. No validation: the engine guarantees tour is a permutation.
//
// Complexity: O(n) time, O(1) space.
func cycleCost(w []float64, n int, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += w[tour[i]*n+tour[i+1]]
	}
	sum += w[tour[n-1]*n+tour[0]] // wrap-around edge

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
