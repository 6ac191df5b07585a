// Package sa - the annealing engine.
//
// Minimize drives the search loop: a two-state machine (RUNNING→TERMINATED)
// that repeatedly perturbs the current tour, scores the candidate against the
// prefetched distance buffer, and applies the Metropolis criterion under the
// schedule's temperature. The run owns every piece of mutable state — tour
// buffers, RNG, scratch markers — for its whole lifetime; nothing is global.
//
// Design:
//   - Strict sentinels; malformed input fails before the loop starts.
//   - Hot-path discipline: weights prefetched into a flat buffer, candidate
//     and marker slices reused, zero allocations per step.
//   - Exactly one uniform draw per worsening candidate and none for improving
//     ones, so trajectories are byte-identical for a fixed seed.
//
// Complexity: O(n²) setup (weight prefetch), O(n) per step, O(n) extra space.
package sa

import (
	"math"

	"github.com/katalvlaran/annealing/dist"
)

// searchState is the engine's working set. current may be worse than best at
// any point; bestCost is monotonically non-increasing over the run.
type searchState struct {
	cur      []int   // current tour, mutated on every accepted step
	curCost  float64 // cost of cur
	best     []int   // best tour seen so far
	bestCost float64 // cost of best
}

// Minimize runs one simulated-annealing search over the distance matrix m.
//
// Transition per step k = 0,1,2,…:
//  1. T = Schedule.Temperature(k). T ≤ floor (or k = MaxSteps) ⇒ terminate.
//  2. Perturb current into a candidate via the configured operator.
//  3. Δ = cost(candidate) − cost(current).
//  4. Δ < 0 ⇒ accept; else accept with probability exp(−Δ/T) (one uniform
//     draw). exp underflows safely to 0 for large Δ/T — no special casing.
//  5. On acceptance the candidate becomes current; best is updated on strict
//     improvement only, so ties never disturb a reproducible best.
//
// Contract:
//   - m non-nil with Order ≥ 2; Options must pass validation. Violations
//     surface as ErrInvalidInput (or the specific sentinel) before the loop.
//   - A candidate that is not a permutation is a defect: the run aborts with
//     ErrInvariantViolation rather than continuing silently.
//
// Returns the best tour found, its stabilized cyclic cost, and the number of
// executed steps.
func Minimize(m *dist.Dense, opts Options) (Result, error) {
	// Fail-fast validation; no search work before this point succeeds.
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if m == nil || m.Order() < minOrder {
		return Result{}, ErrInvalidInput
	}
	n := m.Order()

	// Prefetch weights into a flat buffer w[u*n+v] to keep method-call
	// indirection out of the step loop (one O(n²) pass at setup).
	w := make([]float64, n*n)
	{
		var (
			i, j int
			x    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				x, err = m.At(i, j)
				if err != nil {
					return Result{}, ErrDimensionMismatch
				}
				w[i*n+j] = x
			}
		}
	}

	// All randomness for this run flows through this one generator.
	rng := rngFromSeed(opts.Seed)

	// Initial state: a uniformly random permutation.
	cur, err := permRange(n, rng)
	if err != nil {
		return Result{}, err
	}
	st := searchState{
		cur:     cur,
		curCost: cycleCost(w, n, cur),
		best:    CopyTour(cur),
	}
	st.bestCost = st.curCost

	maxSteps := opts.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}
	floor := opts.Schedule.Floor

	// Reusable buffers: candidate tour and permutation markers.
	cand := make([]int, n)
	seen := make([]bool, n)

	var (
		k        int
		temp     float64
		candCost float64
		delta    float64
		accepted bool
	)
	for k = 0; k < maxSteps; k++ {
		temp = opts.Schedule.Temperature(k)
		if temp <= floor {
			break // TERMINATED: the schedule reached its floor
		}

		// Candidate = one move away from current; current stays intact
		// until the decision below.
		copy(cand, st.cur)
		perturbInPlace(opts.Operator, cand, rng)

		// Invariant check; a violation here is a defect, fatal to the run.
		if err = fillPermutationMarkers(cand, seen); err != nil {
			return Result{}, err
		}

		candCost = cycleCost(w, n, cand)
		delta = candCost - st.curCost

		// Metropolis criterion.
		accepted = delta < 0
		if !accepted {
			accepted = rng.Float64() < math.Exp(-delta/temp)
		}

		if accepted {
			// Swap buffers instead of copying: cand becomes current, the
			// old current becomes the next scratch candidate.
			st.cur, cand = cand, st.cur
			st.curCost = candCost

			if st.curCost < st.bestCost { // strict improvement only
				copy(st.best, st.cur)
				st.bestCost = st.curCost
			}
		}

		if opts.OnStep != nil {
			opts.OnStep(Step{
				K:           k,
				Temperature: temp,
				Delta:       delta,
				Accepted:    accepted,
				CurrentCost: st.curCost,
				BestCost:    st.bestCost,
			})
		}
	}

	return Result{Tour: st.best, Cost: round1e9(st.bestCost), Steps: k}, nil
}
