// Package sa - parallel schedule comparison.
//
// Annealing runs are embarrassingly parallel: each engine owns its matrix,
// RNG, and state exclusively, so independent runs never contend. Race
// exploits this to compare cooling schedules (say Linear vs Exponential on
// the same instance) in one call.
//
// Determinism is preserved under concurrency: run i derives its seed from
// base.Seed and its slot index via SplitMix64 mixing, so results depend only
// on the inputs, never on goroutine interleaving.
package sa

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/annealing/dist"
)

// Race executes one independent annealing run per schedule, concurrently,
// and returns the results aligned with the schedules slice.
//
// Contracts:
//   - m non-nil with Order ≥ 2; at least one schedule (ErrInvalidInput).
//   - base supplies everything but the schedule (operator, MaxSteps, Seed,
//     OnStep). base.Schedule is ignored; base.OnStep, if set, is shared
//     across runs and must therefore be safe for concurrent use.
//   - Every run gets its own matrix clone: no cross-run sharing at all.
//
// The first failing run cancels the group and its error is returned.
// Cancellation via ctx is checked between runs' setup, not inside a running
// engine (a run is bounded by MaxSteps and its temperature floor).
//
// Complexity: max over runs of O(n² + MaxSteps·n), with len(schedules)
// goroutines.
func Race(ctx context.Context, m *dist.Dense, base Options, schedules []Schedule) ([]Result, error) {
	if m == nil || m.Order() < minOrder || len(schedules) == 0 {
		return nil, ErrInvalidInput
	}

	// Validate every schedule up front: fail fast before spawning work.
	var i int
	for i = 0; i < len(schedules); i++ {
		if err := schedules[i].Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(schedules))
	g, ctx := errgroup.WithContext(ctx)

	for i = 0; i < len(schedules); i++ {
		slot := i // capture the slot; each goroutine writes only results[slot]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			opts := base
			opts.Schedule = schedules[slot]
			// Independent deterministic stream per slot.
			opts.Seed = deriveSeed(base.Seed, uint64(slot))

			res, err := Minimize(m.Clone(), opts)
			if err != nil {
				return err
			}
			results[slot] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// BestOf returns the index of the cheapest result, breaking ties toward the
// lower index for stable reporting. Returns -1 for an empty slice.
//
// Complexity: O(len(results)).
func BestOf(results []Result) int {
	if len(results) == 0 {
		return -1
	}

	var (
		best = 0
		i    int
	)
	for i = 1; i < len(results); i++ {
		if results[i].Cost < results[best].Cost {
			best = i
		}
	}

	return best
}
