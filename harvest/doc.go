// Package harvest solves the maximum-gold monotone path problem: starting at
// a grid's top-left cell and moving only right or down, collect as much gold
// as possible without crossing a rock. The walk may end at any reachable
// cell, not just the bottom-right corner.
//
// What:
//
//   - Exhaustive — enumerates every directional bit-string of every length up
//     to R+C−2. Exponential by design; the correctness oracle for small grids.
//   - DynProg — one optimal partial path per cell, filled row-major in a
//     single O(R·C) pass; the production solver.
//   - Solve — dispatcher routing to either by the Algorithm option.
//
// Why:
//
//   - Mine planning, rogue-like loot routing, any monotone-lattice collection
//     problem with forbidden cells.
//   - Two independent strategies for one contract make each a test of the
//     other: they must agree on total gold for every input.
//
// Complexity:
//
//   - Exhaustive: O(2^L · L) time, O(L) memory, with L = R+C−2.
//   - DynProg:    O(R·C·L) time, O(R·C·L) memory (each table entry stores a
//     partial path of at most L steps).
//
// Errors:
//
//   - ErrNilGrid: a nil grid was passed.
//   - ErrGridTooLarge: Exhaustive on a grid with R+C−2 ≥ 64.
//   - ErrNoPath: the start cell is a rock, so no walk exists.
//   - ErrUnknownAlgorithm: Solve given an Algorithm it does not route.
//
// Both solvers are stateless, synchronous, and deterministic; a shared Grid
// may serve concurrent invocations as long as each owns its own result.
package harvest
