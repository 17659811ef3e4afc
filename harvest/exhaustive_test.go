package harvest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goldgrid/grid"
	"github.com/katalvlaran/goldgrid/harvest"
)

// TestExhaustive_NilGrid verifies the nil-grid sentinel.
func TestExhaustive_NilGrid(t *testing.T) {
	_, err := harvest.Exhaustive(nil)
	assert.ErrorIs(t, err, harvest.ErrNilGrid)
}

// TestExhaustive_GridTooLarge verifies the 64-step enumeration bound:
// a 33×33 grid needs 64 steps and must be rejected before any work.
func TestExhaustive_GridTooLarge(t *testing.T) {
	values := make([][]int, 33)
	for r := range values {
		values[r] = make([]int, 33)
	}
	g := mustGrid(t, values)

	_, err := harvest.Exhaustive(g)
	assert.ErrorIs(t, err, harvest.ErrGridTooLarge, "R+C-2 = 64 must be rejected")
}

// TestExhaustive_BlockedStart verifies explicit infeasibility.
func TestExhaustive_BlockedStart(t *testing.T) {
	g := mustGrid(t, [][]int{{-1, 1}, {1, 1}})
	_, err := harvest.Exhaustive(g)
	assert.ErrorIs(t, err, harvest.ErrNoPath, "rock on (0,0) must report ErrNoPath")
}

// TestExhaustive_SingleCell checks the 1×1 boundary: a zero-step walk
// carrying the lone cell's gold.
func TestExhaustive_SingleCell(t *testing.T) {
	g := mustGrid(t, [][]int{{6}})
	p, err := harvest.Exhaustive(g)
	require.NoError(t, err)

	assert.True(t, p.Empty(), "1×1 grid admits only the zero-step walk")
	assert.Equal(t, 6, p.TotalGold())
}

// TestExhaustive_RockWall confirms that a wall isolating the start yields the
// zero-step walk as the optimum.
func TestExhaustive_RockWall(t *testing.T) {
	g := mustGrid(t, [][]int{
		{7, -1, 9},
		{-1, -1, 9},
		{9, 9, 9},
	})
	p, err := harvest.Exhaustive(g)
	require.NoError(t, err)

	assert.True(t, p.Empty(), "walled-in start admits only the zero-step walk")
	assert.Equal(t, 7, p.TotalGold())
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, p.Position())
}

// TestExhaustive_TieBreak verifies that strict-greater comparison keeps the
// earliest-enumerated optimum: on an all-zero grid every walk ties, so the
// length-0 walk (enumerated first) wins.
func TestExhaustive_TieBreak(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
	p, err := harvest.Exhaustive(g)
	require.NoError(t, err)

	assert.True(t, p.Empty(), "first-enumerated candidate must win ties")
	assert.Equal(t, 0, p.TotalGold())
}

// TestExhaustive_PrefersLaterRicherCell: ending anywhere is allowed, so a rich
// interior cell beats pushing on to a poor corner.
func TestExhaustive_PrefersLaterRicherCell(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 3},
		{5, 0},
	})
	p, err := harvest.Exhaustive(g)
	require.NoError(t, err)

	assert.Equal(t, 5, p.TotalGold())
	// The optimum is reached by a single Down step; the equally-golden
	// continuation D,R enumerates later and must not displace it.
	assert.Equal(t, 1, p.Len(), "earliest-enumerated optimum wins")
}
