// Package dist - dense Euclidean distance matrix.
//
// Dense stores the n×n distances in a flat row-major slice for cache
// friendliness; entry (i,j) lives at data[i*n+j]. The matrix is built once
// from a point set and is read-only afterwards: the only mutator is private
// to Build, and Clone hands out independent deep copies.
//
// Design:
//   - Strict sentinels on invalid input; no panics, no logging.
//   - Symmetry and zero diagonal hold by construction (upper triangle is
//     computed once and mirrored).
//   - O(n²) time and memory for Build; O(1) reads.
package dist

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// minPoints is the smallest point set that admits a tour.
const minPoints = 2

// ErrInvalidInput indicates a malformed point set: fewer than two points or
// a non-finite coordinate. Surfaced before any matrix memory is allocated.
var ErrInvalidInput = errors.New("dist: invalid point set")

// ErrIndexOutOfBounds indicates a row or column index outside [0..n-1].
var ErrIndexOutOfBounds = errors.New("dist: index out of bounds")

// Dense is a symmetric n×n Euclidean distance matrix with zero diagonal.
type Dense struct {
	n    int       // matrix order (number of points)
	data []float64 // flat backing storage, length == n*n, row-major
}

// Build computes the pairwise Euclidean distance matrix for points.
// Stage 1 (Validate): n≥2 and all coordinates finite, else ErrInvalidInput.
// Stage 2 (Fill): upper triangle via math.Hypot, mirrored to the lower one.
// Stage 3 (Finalize): return the immutable matrix.
//
// Pure function: no side effects, deterministic for a given point set.
//
// Complexity: O(n²) time and memory.
func Build(points []Point) (*Dense, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	var (
		n    = len(points)
		data = make([]float64, n*n)
		i    int
		j    int
		d    float64
	)
	for i = 0; i < n; i++ {
		// Diagonal entries stay at the zero value of the backing slice.
		for j = i + 1; j < n; j++ {
			// math.Hypot is a numerically stable sqrt(dx²+dy²).
			d = math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &Dense{n: n, data: data}, nil
}

// Order returns n, the number of points the matrix was built from.
//
// Complexity: O(1).
func (m *Dense) Order() int {
	return m.n
}

// At retrieves the distance between point i and point j.
// Returns ErrIndexOutOfBounds when either index is outside [0..n-1].
//
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}

	return m.data[i*m.n+j], nil
}

// Clone returns a deep copy of the matrix. Useful when several independent
// runs must not share state (see sa.Race).
//
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// String implements fmt.Stringer for easy debugging; rows are newline
// separated, entries formatted with %.4f.
//
// Complexity: O(n²).
func (m *Dense) String() string {
	var (
		sb strings.Builder
		i  int
		j  int
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.4f", m.data[i*m.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
