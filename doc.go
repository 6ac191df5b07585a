// Package annealing is your in-memory toolkit for solving the Travelling
// Salesperson Problem with Simulated Annealing — from distance matrices to
// cooling schedules and reproducible stochastic search.
//
// 🚀 What is annealing?
//
//	A compact, deterministic-by-seed library that brings together:
//		• Distance model: dense Euclidean matrices built once from 2-D points
//		• Tours: index permutations with cyclic (wrap-around) cost evaluation
//		• Neighborhoods: pairwise swap and 2-opt segment reversal
//		• Cooling: Linear and Exponential schedules with a temperature floor
//		• Engine: the Metropolis acceptance loop with best-so-far tracking
//		• Racing: independent schedule runs in parallel, one RNG stream each
//
// ✨ Why choose annealing?
//
//   - Reproducible – a fixed seed yields a byte-identical trajectory
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go core – no cgo; x/sync only for the optional parallel race
//   - Observable – an OnStep hook exposes every accept/reject decision
//
// Under the hood, everything is organized under two subpackages:
//
//	dist/ — Point, dense distance matrix, deterministic instance generators
//	sa/   — tours, neighborhood operators, cooling schedules, the engine
//
// Quick ASCII example:
//
//	    (0,1)───(1,1)
//	      │       │
//	    (0,0)───(1,0)
//
//	the unit square: its optimal tour visits the corners in order, cost 4.
//
// Dive into the examples/ directory for runnable scenarios, including a
// head-to-head race between Linear and Exponential cooling.
//
//	go get github.com/katalvlaran/annealing
package annealing
