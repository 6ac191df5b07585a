// Package dist provides the distance model for the annealing solvers.
//
// It contains two building blocks:
//
//   - Point — an immutable 2-D coordinate supplied by the caller.
//
//   - Dense — a flat, row-major n×n Euclidean distance matrix built once
//     from a point set via Build and read-only thereafter.
//
// Build is a pure function: given n points it produces the symmetric matrix
// with zero diagonal in O(n²) time and space, or fails with ErrInvalidInput
// when n<2 or any coordinate is non-finite. No solver mutates a built matrix;
// callers that need an independent copy use Clone.
//
// Use this package to prepare inputs for sa.Minimize and sa.Solve.
package dist
