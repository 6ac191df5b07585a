// Package sa - cooling schedules.
//
// A schedule maps a step index k to a temperature T(k). The set of schedules
// is deliberately closed (a tagged kind plus a switch) rather than an open
// interface: it stays exhaustively testable and the call site dispatches with
// a plain switch instead of virtual calls.
//
// Both variants are pure and stateless with respect to k: Temperature may be
// queried out of order or re-queried for the same k with identical results,
// which is what makes a fixed seed reproduce a fixed trajectory.
package sa

import "math"

// ScheduleKind selects the cooling strategy.
type ScheduleKind int

const (
	// Exponential cools as T(k) = T₀·αᵏ with 0<α<1.
	Exponential ScheduleKind = iota

	// Linear cools as T(k) = max(floor, T₀ − β·k) with β>0.
	Linear
)

// DefaultTempFloor is the small positive temperature at which a run stops.
// Keeping it strictly positive avoids a division by zero in the acceptance
// rule exp(−Δ/T).
const DefaultTempFloor = 0.001

// Schedule is a cooling strategy: a kind tag plus its parameters.
// The zero value is not usable; construct via NewExponential or NewLinear.
type Schedule struct {
	// Kind selects the decay law.
	Kind ScheduleKind

	// T0 is the initial temperature, strictly positive.
	T0 float64

	// Alpha is the exponential decay factor, 0<α<1 (Exponential only).
	Alpha float64

	// Beta is the linear decay rate per step, strictly positive (Linear only).
	Beta float64

	// Floor is the stopping temperature, strictly positive.
	Floor float64
}

// NewExponential returns the schedule T(k) = t0·alphaᵏ with the default floor.
//
// Complexity: O(1).
func NewExponential(t0, alpha float64) Schedule {
	return Schedule{Kind: Exponential, T0: t0, Alpha: alpha, Floor: DefaultTempFloor}
}

// NewLinear returns the schedule T(k) = max(floor, t0 − beta·k) with the
// default floor.
//
// Complexity: O(1).
func NewLinear(t0, beta float64) Schedule {
	return Schedule{Kind: Linear, T0: t0, Beta: beta, Floor: DefaultTempFloor}
}

// Validate checks the parameter ranges for the selected kind.
//
// Contract:
//   - T0 > 0, finite; Floor > 0, finite.
//   - Exponential: 0 < Alpha < 1.
//   - Linear: Beta > 0, finite.
//
// Returns ErrInvalidInput on a range violation, ErrUnsupportedSchedule for an
// unknown kind.
//
// Complexity: O(1).
func (s Schedule) Validate() error {
	if !(s.T0 > 0) || math.IsInf(s.T0, 0) {
		return ErrInvalidInput
	}
	if !(s.Floor > 0) || math.IsInf(s.Floor, 0) {
		return ErrInvalidInput
	}

	switch s.Kind {
	case Exponential:
		if !(s.Alpha > 0) || !(s.Alpha < 1) {
			return ErrInvalidInput
		}
	case Linear:
		if !(s.Beta > 0) || math.IsInf(s.Beta, 0) {
			return ErrInvalidInput
		}
	default:
		return ErrUnsupportedSchedule
	}

	return nil
}

// Temperature returns T(k) for a non-negative step index k.
// Monotonically non-increasing in k; never below zero. Unknown kinds yield
// the floor (Validate rejects them before any engine loop starts).
//
// Complexity: O(1).
func (s Schedule) Temperature(k int) float64 {
	switch s.Kind {
	case Exponential:
		// α∈(0,1) ⇒ αᵏ decays toward 0; Pow underflows safely to +0.
		return s.T0 * math.Pow(s.Alpha, float64(k))
	case Linear:
		t := s.T0 - s.Beta*float64(k)
		if t < s.Floor {
			return s.Floor
		}

		return t
	default:
		return s.Floor
	}
}
