// Package dist - point primitives shared by matrix builders and generators.
//
// A Point is a plain immutable value; ownership stays with the caller.
// Validation lives here so that Build and RandomPoints share one notion of
// "well-formed input".
package dist

import "math"

// Point is a 2-D coordinate, indexed 0..n-1 within its input set.
type Point struct {
	X float64
	Y float64
}

// IsFinite reports whether both coordinates are finite (no NaN, no ±Inf).
//
// Complexity: O(1).
func (p Point) IsFinite() bool {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		return false
	}
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return false
	}

	return true
}

// validatePoints enforces the input contract shared by all builders:
// at least two points, every coordinate finite.
//
// Complexity: O(n).
func validatePoints(points []Point) error {
	if len(points) < minPoints {
		return ErrInvalidInput
	}

	var i int
	for i = 0; i < len(points); i++ {
		if !points[i].IsFinite() {
			return ErrInvalidInput
		}
	}

	return nil
}
