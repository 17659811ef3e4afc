// Package grid defines core types and sentinel errors for the goldgrid
// data model.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeGold indicates an open cell with a negative gold value.
	ErrNegativeGold = errors.New("grid: gold values must be non-negative")
	// ErrBadGlyph indicates Parse met a rune it does not recognize.
	ErrBadGlyph = errors.New("grid: unrecognized cell glyph")
)

// Kind discriminates traversable cells from blocked ones.
type Kind uint8

const (
	// Open marks a traversable cell; its Cell carries a gold value.
	Open Kind = iota
	// Rock marks an impassable cell; its gold value is always zero.
	Rock
)

// Cell is a single grid cell: its kind and, for Open cells, the gold stored there.
type Cell struct {
	Kind Kind
	Gold int
}

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// Grid is a fixed R×C map of cells. It is immutable once built: the
// constructor deep-copies its input and all accessors are read-only, so a
// Grid may be shared freely across solver invocations.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}
