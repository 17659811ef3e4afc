package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular cell matrix.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeGold if any open cell carries negative gold.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]Cell, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		copied[r] = make([]Cell, cols)
		for c, cell := range row {
			if cell.Kind == Open && cell.Gold < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has gold %d", ErrNegativeGold, r, c, cell.Gold)
			}
			if cell.Kind == Rock {
				cell.Gold = 0 // normalize: rocks never carry gold
			}
			copied[r][c] = cell
		}
	}

	return &Grid{rows: rows, cols: cols, cells: copied}, nil
}

// FromValues constructs a Grid from a plain integer matrix:
// a negative value becomes Rock, any other value an Open cell with that gold.
// Shares New's validation and complexity.
func FromValues(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(values))
	for r, row := range values {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			if v < 0 {
				cells[r][c] = Cell{Kind: Rock}
			} else {
				cells[r][c] = Cell{Kind: Open, Gold: v}
			}
		}
	}

	return New(cells)
}

// Parse constructs a Grid from text lines, one rune per cell:
//
//	'.'       — open cell with no gold
//	'X'       — rock
//	'0'..'9'  — open cell with that much gold
//
// Spaces inside a line are ignored, so "0 3" and "03" are the same row.
// Returns ErrBadGlyph (wrapped with position detail) for any other rune.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		compact := strings.ReplaceAll(line, " ", "")
		row := make([]Cell, 0, len(compact))
		for c, g := range compact {
			switch {
			case g == '.':
				row = append(row, Cell{Kind: Open})
			case g == 'X':
				row = append(row, Cell{Kind: Rock})
			case g >= '0' && g <= '9':
				row = append(row, Cell{Kind: Open, Gold: int(g - '0')})
			default:
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrBadGlyph, g, r, c)
			}
		}
		cells[r] = row
	}

	return New(cells)
}

// Rows returns the fixed row count R.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the fixed column count C.
func (g *Grid) Columns() int { return g.cols }

// At returns the cell at (row, col). Bounds are the caller's responsibility;
// pre-validate with InBounds. Complexity: O(1).
func (g *Grid) At(row, col int) Cell {
	return g.cells[row][col]
}

// InBounds reports whether (row, col) lies within the grid. Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// MaxSteps returns the maximum possible monotone path length, R+C−2:
// a path that never leaves the grid takes at most R−1 down and C−1 right steps.
func (g *Grid) MaxSteps() int {
	return g.rows + g.cols - 2
}

// String renders the grid back to Parse's glyph form, one line per row.
// Gold above 9 renders as '+' (String is for inspection, not round-tripping
// arbitrary grids).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r][c]
			switch {
			case cell.Kind == Rock:
				b.WriteByte('X')
			case cell.Gold == 0:
				b.WriteByte('.')
			case cell.Gold <= 9:
				b.WriteByte(byte('0' + cell.Gold))
			default:
				b.WriteByte('+')
			}
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
