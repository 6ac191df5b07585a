// Package sa - engine configuration.
//
// Options follows the package-wide configuration pattern: a plain struct, a
// DefaultOptions constructor with sensible values, and a standalone validator
// that runs before any search work begins. Validation is strict and returns
// sentinel errors only.
package sa

// OperatorKind selects the neighborhood operator used to produce candidates.
type OperatorKind int

const (
	// ReverseNeighborhood is the 2-opt move: reverse a random closed
	// sub-range tour[i..j]. Removes edge crossings between the boundary
	// edges; the historically stronger move for Euclidean instances.
	ReverseNeighborhood OperatorKind = iota

	// SwapNeighborhood exchanges two distinct random positions.
	SwapNeighborhood
)

// DefaultMaxSteps bounds a run when the schedule never reaches its floor.
const DefaultMaxSteps = 10_000

// Step describes one engine transition, delivered to Options.OnStep.
// Purely observational: mutating nothing through it, the engine's trajectory
// is identical whether or not a hook is installed.
type Step struct {
	// K is the step index, starting at 0.
	K int

	// Temperature is the schedule value T(K) used for this step.
	Temperature float64

	// Delta is cost(candidate) − cost(current) before the decision.
	Delta float64

	// Accepted reports the Metropolis decision for this candidate.
	Accepted bool

	// CurrentCost is the cost of the current tour after the decision.
	CurrentCost float64

	// BestCost is the best cost seen so far, after the decision.
	BestCost float64
}

// Options configures one annealing run.
type Options struct {
	// Schedule is the cooling strategy; must pass Schedule.Validate.
	Schedule Schedule

	// Operator selects the neighborhood move.
	Operator OperatorKind

	// MaxSteps caps the number of steps; 0 ⇒ DefaultMaxSteps.
	MaxSteps int

	// Seed drives the run's RNG. Policy: seed==0 ⇒ fixed deterministic
	// default stream, any other value is used verbatim. Identical seeds
	// (with identical Options) reproduce identical trajectories.
	Seed int64

	// OnStep, when non-nil, is invoked once per executed step.
	OnStep func(Step)
}

// DefaultOptions returns an Options struct initialized with the canonical
// setup: 2-opt neighborhood, exponential cooling T₀=500 α=0.999, the default
// step bound, and the deterministic zero seed.
func DefaultOptions() Options {
	return Options{
		Schedule: NewExponential(500, 0.999),
		Operator: ReverseNeighborhood,
		MaxSteps: DefaultMaxSteps,
	}
}

// validateOptions checks internal consistency of Options without touching
// matrices or tours.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if err := opts.Schedule.Validate(); err != nil {
		return err
	}
	if opts.MaxSteps < 0 {
		return ErrInvalidInput
	}

	switch opts.Operator {
	case ReverseNeighborhood, SwapNeighborhood:
		// ok
	default:
		return ErrUnsupportedOperator
	}

	return nil
}
