package harvest

import (
	"fmt"

	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/path"
)

// Exhaustive solves the maximum-gold path problem by brute force.
//
// Algorithm Outline:
//  1. Let L = R+C−2, the longest possible walk.
//  2. For every length ℓ from 0 to L inclusive, enumerate every bit-string
//     bits in [0, 2^ℓ): bit k set means "step Right" at step k, clear means
//     "step Down".
//  3. Replay each bit-string from the start cell, silently skipping any step
//     that would leave the grid or land on a rock — a candidate that hits a
//     wall early simply stops growing and still competes as a shorter walk.
//  4. Keep the candidate with strictly greater gold than the best so far;
//     the first candidate replaces the unset best unconditionally. Strict
//     comparison means the earliest-enumerated walk (shorter length first,
//     then smaller bit value) wins ties.
//
// Preconditions: g non-nil (ErrNilGrid); L < 64 so the enumeration count
// fits its loop bound (ErrGridTooLarge); start cell open (ErrNoPath).
//
// Complexity: O(2^L · L) time, O(L) memory — intended only for small grids,
// as a correctness oracle for DynProg.
func Exhaustive(g *grid.Grid) (*path.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	maxSteps := g.MaxSteps()
	if maxSteps >= 64 {
		return nil, fmt.Errorf("%w: %d×%d grid needs %d steps", ErrGridTooLarge, g.Rows(), g.Columns(), maxSteps)
	}
	if g.At(0, 0).Kind == grid.Rock {
		return nil, ErrNoPath
	}

	var best *path.Path
	for length := 0; length <= maxSteps; length++ {
		limit := uint64(1) << uint(length)
		for bits := uint64(0); bits < limit; bits++ {
			candidate, err := path.New(g)
			if err != nil {
				return nil, err
			}
			for k := 0; k < length; k++ {
				dir := path.Down
				if (bits>>uint(k))&1 == 1 {
					dir = path.Right
				}
				// invalid steps are skipped, not fatal: the candidate keeps its prefix
				if candidate.IsStepValid(dir) {
					_ = candidate.AddStep(dir)
				}
			}
			if best == nil || candidate.TotalGold() > best.TotalGold() {
				best = candidate
			}
		}
	}

	return best, nil
}
