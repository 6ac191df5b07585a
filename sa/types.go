package sa

import "errors"

// ErrInvalidInput is returned for malformed caller input detected before the
// search loop starts: nil matrix, n<2, non-positive T₀, α outside (0,1),
// non-positive β or floor, negative MaxSteps.
var ErrInvalidInput = errors.New("sa: invalid input")

// ErrDimensionMismatch is returned when a tour's index set is not exactly
// {0..n-1} for the matrix order n, or when slice lengths disagree.
var ErrDimensionMismatch = errors.New("sa: dimension mismatch")

// ErrInvariantViolation signals a defect: a neighborhood operator produced a
// candidate that is not a valid permutation. Fatal to the run, never
// recovered silently.
var ErrInvariantViolation = errors.New("sa: permutation invariant violated")

// ErrUnsupportedOperator is returned for an unknown OperatorKind.
var ErrUnsupportedOperator = errors.New("sa: unsupported neighborhood operator")

// ErrUnsupportedSchedule is returned for an unknown ScheduleKind.
var ErrUnsupportedSchedule = errors.New("sa: unsupported cooling schedule")

// Result holds the outcome of one annealing run.
type Result struct {
	// Tour is the best permutation of point indices found, length n.
	// The cycle closes implicitly from Tour[n-1] back to Tour[0].
	Tour []int

	// Cost is the total cyclic distance of Tour.
	Cost float64

	// Steps is the number of steps executed before termination
	// (temperature floor or MaxSteps, whichever fired first).
	Steps int
}
