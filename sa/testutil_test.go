// Package sa_test provides lightweight testing helpers shared across *_test.go
// files in this package. The helpers are intentionally minimal, stdlib-only,
// and deterministic.
package sa_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/annealing/dist"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// tolTiny is the floating tolerance for exact-geometry assertions.
	tolTiny = 1e-6

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// stepsShort bounds quick engine runs that only probe mechanics.
	stepsShort = 500
)

// -----------------------------------------------------------------------------
// Instance generators (deterministic)
// -----------------------------------------------------------------------------

// unitSquare returns the canonical 4-point instance whose optimal tour
// follows the square boundary with cost exactly 4.
func unitSquare() []dist.Point {
	return []dist.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
}

// mustBuild builds a distance matrix or fails the test.
func mustBuild(t *testing.T, pts []dist.Point) *dist.Dense {
	t.Helper()
	m, err := dist.Build(pts)
	if err != nil {
		t.Fatalf("dist.Build failed: %v", err)
	}

	return m
}

// circle returns n points evenly spaced on a circle of radius r; the optimal
// tour visits them in angular order.
func circle(n int, r float64) []dist.Point {
	pts := make([]dist.Point, n)
	var (
		i     int
		theta float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = dist.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustClose asserts |got-want| ≤ tol.
func mustClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("float mismatch: got=%.12f want=%.12f (tol=%.1e)", got, want, tol)
	}
}

// rotate returns tour cyclically shifted left by s positions.
func rotate(tour []int, s int) []int {
	n := len(tour)
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(i+s)%n]
	}

	return out
}

// reversed returns tour in the opposite direction.
func reversed(tour []int) []int {
	n := len(tour)
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[n-1-i]
	}

	return out
}
