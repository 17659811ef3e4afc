// Package grid provides the immutable data model for goldgrid: a rectangular
// map of cells that are either Open (carrying a non-negative amount of gold)
// or Rock (impassable).
//
// What:
//
//   - Grid wraps a rectangular R×C cell matrix, deep-copied at construction.
//   - Constructors accept cell matrices (New), plain integers (FromValues,
//     negative ⇒ Rock), or text glyphs (Parse).
//   - Accessors expose dimensions, individual cells, bounds checks, and the
//     maximum monotone path length R+C−2 (MaxSteps).
//
// Why:
//
//   - Solvers need a read-only map they can query millions of times without
//     defensive copying; immutability makes a Grid safe to share across
//     repeated or concurrent solver calls.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeGold: an open cell carries negative gold.
//   - ErrBadGlyph: Parse met a rune outside '.', 'X', '0'..'9'.
//
// Complexity: construction O(R×C) time and memory; every accessor O(1).
package grid
