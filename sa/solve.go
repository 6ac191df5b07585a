// Package sa - points-to-result entry point.
//
// Solve is the canonical convenience wrapper: it builds the distance matrix
// from raw points and delegates to Minimize. Both stages fail fast with
// sentinel errors before any search work happens.
package sa

import "github.com/katalvlaran/annealing/dist"

// Solve finds a near-optimal closed tour over points using simulated
// annealing.
//
// Contracts:
//   - points must contain n ≥ 2 finite 2-D coordinates (ErrInvalidInput
//     otherwise, surfaced via dist.Build).
//   - opts must pass validation (see Options and Schedule.Validate).
//
// The returned Result.Tour is a permutation of the point indices; its Cost
// includes the wrap-around edge.
//
// Complexity: O(n²) matrix build + O(MaxSteps·n) search.
func Solve(points []dist.Point, opts Options) (Result, error) {
	m, err := dist.Build(points)
	if err != nil {
		return Result{}, err
	}

	return Minimize(m, opts)
}
