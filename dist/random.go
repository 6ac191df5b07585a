// Package dist - deterministic random instance generators.
//
// RandomPoints mirrors the classic benchmarking setup: n cities sampled
// uniformly from the [0,side]×[0,side] square. The RNG is caller-supplied so
// that a fixed seed yields a fixed instance; a nil RNG falls back to the
// package-wide deterministic default stream (same policy as sa's seed==0).
package dist

import "math/rand"

// defaultGenSeed is the fixed seed backing the nil-RNG fallback.
// Arbitrary but stable, to keep reproducible defaults.
const defaultGenSeed int64 = 1

// RandomPoints samples n points uniformly from the [0,side]² square.
//
// Contract:
//   - n ≥ 2 and side > 0 and finite, else ErrInvalidInput.
//   - rng may be nil ⇒ deterministic default stream.
//
// Complexity: O(n) time, O(n) space.
func RandomPoints(n int, side float64, rng *rand.Rand) ([]Point, error) {
	if n < minPoints {
		return nil, ErrInvalidInput
	}
	if !(side > 0) || !(Point{X: side, Y: side}).IsFinite() {
		return nil, ErrInvalidInput
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultGenSeed))
	}

	pts := make([]Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[i] = Point{X: r.Float64() * side, Y: r.Float64() * side}
	}

	return pts, nil
}
