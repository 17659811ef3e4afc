// Package harvest defines the algorithm enum, options, and sentinel errors
// for the maximum-gold path solvers.
package harvest

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("harvest: grid is nil")

	// ErrGridTooLarge is returned by Exhaustive when R+C−2 ≥ 64: the
	// enumeration count 2^(R+C−2) would overflow its 64-bit loop bound.
	ErrGridTooLarge = errors.New("harvest: rows+columns-2 must be below 64 for exhaustive enumeration")

	// ErrNoPath is returned when the start cell is a rock: no walk exists,
	// not even the zero-step one.
	ErrNoPath = errors.New("harvest: no feasible path")

	// ErrUnknownAlgorithm is returned when an invalid Algorithm is supplied.
	ErrUnknownAlgorithm = errors.New("harvest: unknown algorithm")
)

// Algorithm selects the solving strategy used by Solve.
type Algorithm int

const (
	// AlgoDynProg selects the O(R·C) dynamic-programming solver (default).
	AlgoDynProg Algorithm = iota
	// AlgoExhaustive selects the exponential bit-string enumeration.
	AlgoExhaustive
)

// String returns a short human-readable algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoDynProg:
		return "dynamic-programming"
	case AlgoExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Option configures Solve via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrUnknownAlgorithm when Solve runs.
type Option func(*Options)

// Options holds dispatcher parameters.
type Options struct {
	// Algo chooses the solving strategy.
	Algo Algorithm

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the dynamic-programming solver selected.
func DefaultOptions() Options {
	return Options{Algo: AlgoDynProg}
}

// WithAlgorithm routes Solve to the given strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		switch a {
		case AlgoDynProg, AlgoExhaustive:
			o.Algo = a
		default:
			o.err = fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
		}
	}
}
