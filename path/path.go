package path

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/goldgrid/grid"
)

// New returns the zero-step path anchored at g's start cell (0,0), with gold
// equal to that cell's value.
// Returns ErrNilGrid for a nil grid and ErrBlockedStart if (0,0) is a rock:
// a walk cannot begin on a blocked cell.
// Complexity: O(1).
func New(g *grid.Grid) (*Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start := g.At(0, 0)
	if start.Kind == grid.Rock {
		return nil, ErrBlockedStart
	}

	return &Path{g: g, gold: start.Gold}, nil
}

// destination returns the cell the given step would land on.
func (p *Path) destination(d Direction) grid.Coord {
	next := p.pos
	if d == Right {
		next.Col++
	} else {
		next.Row++
	}

	return next
}

// IsStepValid reports whether taking d from the current position stays within
// the grid and lands on an open cell. Pure query, no mutation.
// Complexity: O(1).
func (p *Path) IsStepValid(d Direction) bool {
	next := p.destination(d)

	return p.g.InBounds(next.Row, next.Col) && p.g.At(next.Row, next.Col).Kind == grid.Open
}

// AddStep appends d to the walk, advances the position, and adds the
// destination cell's gold to the running total.
// Returns ErrInvalidStep (wrapped with position detail) if IsStepValid
// rejects d; the path is left unchanged in that case.
// Complexity: amortized O(1).
func (p *Path) AddStep(d Direction) error {
	if !p.IsStepValid(d) {
		return fmt.Errorf("%w: %s from (%d,%d)", ErrInvalidStep, d, p.pos.Row, p.pos.Col)
	}
	next := p.destination(d)
	p.steps = append(p.steps, d)
	p.pos = next
	p.gold += p.g.At(next.Row, next.Col).Gold

	return nil
}

// TotalGold returns the gold collected along the walk, start cell included.
func (p *Path) TotalGold() int { return p.gold }

// Len returns the number of steps taken.
func (p *Path) Len() int { return len(p.steps) }

// Empty reports whether no step has been taken yet.
func (p *Path) Empty() bool { return len(p.steps) == 0 }

// LastStep returns the most recently appended direction.
// ok is false for the zero-step path.
func (p *Path) LastStep() (d Direction, ok bool) {
	if len(p.steps) == 0 {
		return 0, false
	}

	return p.steps[len(p.steps)-1], true
}

// Position returns the cell the walk currently stands on.
func (p *Path) Position() grid.Coord { return p.pos }

// Steps returns a copy of the step sequence, in order.
func (p *Path) Steps() []Direction {
	out := make([]Direction, len(p.steps))
	copy(out, p.steps)

	return out
}

// Cells returns every cell the walk visits, start cell first, by replaying
// the steps. Complexity: O(steps).
func (p *Path) Cells() []grid.Coord {
	cells := make([]grid.Coord, 0, len(p.steps)+1)
	cur := grid.Coord{}
	cells = append(cells, cur)
	for _, d := range p.steps {
		if d == Right {
			cur.Col++
		} else {
			cur.Row++
		}
		cells = append(cells, cur)
	}

	return cells
}

// Clone returns an independent copy sharing only the read-only grid.
// Mutating the clone never affects the original. Complexity: O(steps).
func (p *Path) Clone() *Path {
	steps := make([]Direction, len(p.steps))
	copy(steps, p.steps)

	return &Path{g: p.g, steps: steps, pos: p.pos, gold: p.gold}
}

// String renders the step sequence as a compact glyph string, e.g. "RDDR".
// The zero-step path renders as "∅".
func (p *Path) String() string {
	if len(p.steps) == 0 {
		return "∅"
	}
	var b strings.Builder
	b.Grow(len(p.steps))
	for _, d := range p.steps {
		b.WriteByte(d.glyph())
	}

	return b.String()
}
