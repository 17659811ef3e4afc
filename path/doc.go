// Package path models a monotone walk over a grid.Grid: an ordered sequence
// of Right/Down steps anchored at the top-left cell, with the implied
// position and the running gold total maintained incrementally.
//
// What:
//
//   - Path is created with zero steps at (0,0); its gold starts at the start
//     cell's value.
//   - IsStepValid answers, without mutating, whether a step stays in bounds
//     and avoids rocks; AddStep appends a validated step.
//   - Emptiness is a predicate (Empty / the ok result of LastStep), not a
//     sentinel direction — Direction is a closed {Right, Down} enum.
//   - Clone copies a path in O(steps); solvers rely on clones never aliasing
//     the original's step slice.
//
// Why:
//
//   - Both solvers in package harvest grow candidate paths one validated step
//     at a time; keeping position and gold incremental makes each extension
//     O(1) instead of an O(steps) replay.
//
// Errors:
//
//   - ErrNilGrid: constructed over a nil grid.
//   - ErrBlockedStart: the grid's (0,0) cell is a rock.
//   - ErrInvalidStep: AddStep called with a step IsStepValid rejects.
package path
