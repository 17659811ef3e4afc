package harvest

import (
	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/path"
)

// DynProg solves the maximum-gold path problem by dynamic programming.
//
// Algorithm Outline:
//  1. Allocate an R×C table of optional partial paths; table[i][j] is the
//     best walk reaching (i,j), nil when (i,j) is a rock or unreachable.
//  2. Base case: table[0][0] = the zero-step walk (the start cell must be
//     open; a rock there means no walk exists at all → ErrNoPath).
//  3. Fill row-major, so (i−1,j) and (i,j−1) are already resolved:
//     from-above = clone of table[i−1][j] extended by Down, if present;
//     from-left  = clone of table[i][j−1] extended by Right, if present.
//     Keep the candidate with more gold; ties keep from-above.
//  4. Scan the whole table for the maximum-gold entry — the whole table,
//     not just the bottom-right, because the walk may end anywhere.
//
// Correctness rests on optimal substructure: any maximum-gold walk to (i,j)
// is a maximum-gold walk to one of its two predecessors plus one step.
//
// Preconditions: g non-nil (ErrNilGrid); start cell open (ErrNoPath).
//
// Complexity: O(R·C·L) time and memory with L = R+C−2 (each entry clones a
// walk of at most L steps) — the space/time trade against Exhaustive.
func DynProg(g *grid.Grid) (*path.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.At(0, 0).Kind == grid.Rock {
		return nil, ErrNoPath
	}

	rows, cols := g.Rows(), g.Columns()
	table := make([][]*path.Path, rows)
	for i := range table {
		table[i] = make([]*path.Path, cols)
	}

	// Base case: the zero-step walk. Start cell already verified open.
	start, err := path.New(g)
	if err != nil {
		return nil, err
	}
	table[0][0] = start

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i == 0 && j == 0 {
				continue
			}
			// Rocks stay absent.
			if g.At(i, j).Kind == grid.Rock {
				continue
			}

			var fromAbove, fromLeft *path.Path
			if i > 0 && table[i-1][j] != nil {
				cand := table[i-1][j].Clone()
				if stepErr := cand.AddStep(path.Down); stepErr == nil {
					fromAbove = cand
				}
			}
			if j > 0 && table[i][j-1] != nil {
				cand := table[i][j-1].Clone()
				if stepErr := cand.AddStep(path.Right); stepErr == nil {
					fromLeft = cand
				}
			}

			switch {
			case fromAbove != nil && fromLeft != nil:
				// Strictly more gold wins; ties keep from-above.
				if fromLeft.TotalGold() > fromAbove.TotalGold() {
					table[i][j] = fromLeft
				} else {
					table[i][j] = fromAbove
				}
			case fromAbove != nil:
				table[i][j] = fromAbove
			case fromLeft != nil:
				table[i][j] = fromLeft
			}
		}
	}

	// Post-pass: best over all reachable cells. table[0][0] is always
	// present here, so best never stays nil.
	best := table[0][0]
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if table[i][j] != nil && table[i][j].TotalGold() > best.TotalGold() {
				best = table[i][j]
			}
		}
	}

	return best, nil
}
