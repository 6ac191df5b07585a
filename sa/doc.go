// Package sa provides a Simulated Annealing solver for the TSP.
//
// It searches for a near-optimal Hamiltonian cycle over a dist.Dense matrix:
//
//   - Minimize — the annealing engine on a prepared distance matrix.
//
//   - Complexity: O(steps·n) time, O(n) extra space.
//
//   - Deterministic given Options.Seed.
//
//   - Solve — convenience wrapper: build the matrix from points, then Minimize.
//
//   - Race — independent runs per cooling schedule, executed in parallel.
//
// Two neighborhood operators are available (pairwise swap and 2-opt segment
// reversal) and two cooling schedules (Linear, Exponential). The acceptance
// rule is the Metropolis criterion: improving moves are always taken,
// worsening moves with probability exp(−Δ/T).
//
// The result is stochastic: a near-optimal tour, not a guaranteed optimum.
// Use this package when instance sizes rule out exact solvers and a
// reproducible-given-seed heuristic is acceptable.
package sa
