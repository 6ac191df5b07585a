// Package dist_test verifies the distance model: Euclidean correctness,
// symmetry, zero diagonal, input fail-fast, and copy independence.
package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealing/dist"
)

// squarePoints is the canonical 4-corner instance used across tests.
func squarePoints() []dist.Point {
	return []dist.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
}

func TestBuild_UnitSquareDistances(t *testing.T) {
	m, err := dist.Build(squarePoints())
	require.NoError(t, err)
	require.Equal(t, 4, m.Order())

	// Adjacent corners are one unit apart; diagonals are √2.
	cases := []struct {
		i, j int
		want float64
	}{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1},
		{0, 2, math.Sqrt2}, {1, 3, math.Sqrt2},
	}
	for _, tc := range cases {
		got, aerr := m.At(tc.i, tc.j)
		require.NoError(t, aerr)
		assert.InDelta(t, tc.want, got, 1e-12, "At(%d,%d)", tc.i, tc.j)
	}
}

func TestBuild_SymmetricWithZeroDiagonal(t *testing.T) {
	pts, err := dist.RandomPoints(30, 1000, nil)
	require.NoError(t, err)

	m, err := dist.Build(pts)
	require.NoError(t, err)

	n := m.Order()
	for i := 0; i < n; i++ {
		d, aerr := m.At(i, i)
		require.NoError(t, aerr)
		assert.Zero(t, d, "diagonal (%d,%d)", i, i)

		for j := i + 1; j < n; j++ {
			ij, e1 := m.At(i, j)
			require.NoError(t, e1)
			ji, e2 := m.At(j, i)
			require.NoError(t, e2)

			assert.Equal(t, ij, ji, "symmetry (%d,%d)", i, j)
			assert.GreaterOrEqual(t, ij, 0.0, "non-negative (%d,%d)", i, j)
			assert.False(t, math.IsNaN(ij) || math.IsInf(ij, 0), "finite (%d,%d)", i, j)
		}
	}
}

func TestBuild_FailsFastOnMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		pts  []dist.Point
	}{
		{"nil", nil},
		{"empty", []dist.Point{}},
		{"single", []dist.Point{{X: 1, Y: 2}}},
		{"NaN x", []dist.Point{{X: math.NaN(), Y: 0}, {X: 1, Y: 1}}},
		{"NaN y", []dist.Point{{X: 0, Y: math.NaN()}, {X: 1, Y: 1}}},
		{"+Inf", []dist.Point{{X: 0, Y: 0}, {X: math.Inf(1), Y: 1}}},
		{"-Inf", []dist.Point{{X: 0, Y: 0}, {X: 1, Y: math.Inf(-1)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := dist.Build(tc.pts)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, dist.ErrInvalidInput)
		})
	}
}

func TestDense_AtBounds(t *testing.T) {
	m, err := dist.Build(squarePoints())
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		_, aerr := m.At(idx[0], idx[1])
		assert.ErrorIs(t, aerr, dist.ErrIndexOutOfBounds, "At(%d,%d)", idx[0], idx[1])
	}
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := dist.Build(squarePoints())
	require.NoError(t, err)

	cp := m.Clone()
	require.Equal(t, m.Order(), cp.Order())

	for i := 0; i < m.Order(); i++ {
		for j := 0; j < m.Order(); j++ {
			a, e1 := m.At(i, j)
			require.NoError(t, e1)
			b, e2 := cp.At(i, j)
			require.NoError(t, e2)
			assert.Equal(t, a, b)
		}
	}
}

func TestPoint_IsFinite(t *testing.T) {
	assert.True(t, dist.Point{X: 1, Y: -2.5}.IsFinite())
	assert.True(t, dist.Point{}.IsFinite())
	assert.False(t, dist.Point{X: math.NaN()}.IsFinite())
	assert.False(t, dist.Point{Y: math.Inf(1)}.IsFinite())
	assert.False(t, dist.Point{X: math.Inf(-1)}.IsFinite())
}

func TestRandomPoints_DeterministicAndBounded(t *testing.T) {
	const (
		n    = 50
		side = 1000.0
	)

	a, err := dist.RandomPoints(n, side, nil)
	require.NoError(t, err)
	require.Len(t, a, n)

	// nil RNG means the fixed default stream: a second call must agree.
	b, err := dist.RandomPoints(n, side, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for i, p := range a {
		assert.True(t, p.IsFinite(), "point %d", i)
		assert.GreaterOrEqual(t, p.X, 0.0, "point %d", i)
		assert.Less(t, p.X, side, "point %d", i)
		assert.GreaterOrEqual(t, p.Y, 0.0, "point %d", i)
		assert.Less(t, p.Y, side, "point %d", i)
	}
}

func TestRandomPoints_RejectsBadArguments(t *testing.T) {
	_, err := dist.RandomPoints(1, 100, nil)
	assert.ErrorIs(t, err, dist.ErrInvalidInput)

	_, err = dist.RandomPoints(10, 0, nil)
	assert.ErrorIs(t, err, dist.ErrInvalidInput)

	_, err = dist.RandomPoints(10, math.Inf(1), nil)
	assert.ErrorIs(t, err, dist.ErrInvalidInput)
}
