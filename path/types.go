// Package path defines the step direction enum and sentinel errors for
// monotone grid walks.
package path

import (
	"errors"

	"github.com/katalvlaran/goldgrid/grid"
)

// Sentinel errors for path construction and mutation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to New.
	ErrNilGrid = errors.New("path: grid is nil")
	// ErrBlockedStart is returned when the grid's start cell (0,0) is a rock.
	ErrBlockedStart = errors.New("path: start cell is blocked")
	// ErrInvalidStep is returned by AddStep for a step that leaves the grid
	// or lands on a rock.
	ErrInvalidStep = errors.New("path: step leaves the grid or lands on a rock")
)

// Direction is a single move along a monotone grid walk.
// It is a closed enumeration: exactly Right and Down exist. An empty path is
// detected via Path.Empty or the ok result of Path.LastStep, never via a
// third pseudo-direction.
type Direction uint8

const (
	// Right moves one column rightward.
	Right Direction = iota
	// Down moves one row downward.
	Down
)

// String returns "Right", "Down", or a diagnostic form for invalid values.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Direction(?)"
	}
}

// glyph is the single-rune form used by Path.String: 'R' or 'D'.
func (d Direction) glyph() byte {
	if d == Right {
		return 'R'
	}
	return 'D'
}

// Path is an ordered sequence of steps over a shared, read-only grid.
// The grid must outlive the path. Position and gold are maintained
// incrementally, so TotalGold and Position are O(1).
type Path struct {
	g     *grid.Grid
	steps []Direction
	pos   grid.Coord
	gold  int
}
