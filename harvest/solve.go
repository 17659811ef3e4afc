// Package harvest - unified dispatcher for the maximum-gold path solvers.
//
// Design principles:
//   - Deterministic: no randomness anywhere; identical inputs yield identical
//     walks, not just identical gold.
//   - Strict sentinels: only errors from types.go; fmt.Errorf is used solely
//     to wrap a sentinel with positional detail.
//   - Algorithmic clarity: each solver documents its outline, contracts, and
//     complexity.
package harvest

import (
	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/path"
)

// Solve routes to the solver selected by WithAlgorithm (DynProg by default).
//
// Contracts:
//   - g must be non-nil and, for AlgoExhaustive, small enough that
//     R+C−2 < 64.
//   - The returned walk always starts at (0,0); ErrNoPath reports the one
//     infeasible input, a rock on the start cell.
//
// Errors: sentinels from types.go, plus whatever the routed solver returns.
func Solve(g *grid.Grid, opts ...Option) (*path.Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	switch o.Algo {
	case AlgoDynProg:
		return DynProg(g)
	case AlgoExhaustive:
		return Exhaustive(g)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
