// Package goldgrid solves a classic constrained grid-traversal optimization:
// starting at the top-left cell of a rectangular grid, moving only right or
// down, never crossing a rock, collect as much gold as possible. The path may
// stop at any reachable cell, not just the bottom-right corner.
//
// 🚀 What is goldgrid?
//
//	A small, deterministic library with two solvers for the same contract:
//		• harvest.Exhaustive — brute-force over every directional bit-string,
//		  exponential by design; the correctness oracle for small grids
//		• harvest.DynProg    — O(R·C) dynamic programming over optimal
//		  partial paths; the solver you actually use
//
// ✨ Why choose goldgrid?
//
//   - Minimal API, clear naming — a Grid in, a Path out
//   - Pure Go — no cgo, no hidden deps in the library packages
//   - Both solvers agree on every input; the exhaustive one exists so you
//     can prove it
//
// Everything is organized under three subpackages:
//
//	grid/    — immutable rectangular map of Open/Rock cells with gold values
//	path/    — ordered right/down step sequence with incremental validation
//	harvest/ — the two solvers plus a Solve dispatcher
//
// Quick ASCII example (X = rock, digits = gold):
//
//	0 3
//	5 0
//
// The best monotone path collects 5 by stepping down once.
//
// A demo CLI lives in cmd/goldgrid; see examples/ for a runnable scenario.
//
//	go get github.com/katalvlaran/goldgrid
package goldgrid
