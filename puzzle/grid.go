// Package puzzle implements a candidate-propagation solver for
// square grid-placement puzzles (Sudoku).
//
// A Grid holds the board values: 0 for an unknown cell, 1 through
// the side length for a fixed one.  Alongside the grid the solver
// keeps a CandidateSet, one bitmask per cell recording which values
// are still logically possible there.  A fixed collection of rules
// inspects regions of the grid (rows, columns, tiles) and prunes
// candidates; the propagation loop drives the rules to a fixed
// point, committing any cell whose candidate mask has collapsed to
// a single value.
//
// The solver performs logical deduction only.  It does not search,
// and it may converge with cells still unknown; callers can inspect
// the residual candidate masks to see how far deduction got.
package puzzle

/*

Grids

*/

// A Grid is a square board of cell values.  Cells are addressed as
// (x, y) where x is the row and y is the column, both 0-based.  A
// value of 0 means the cell is unknown.
//
// The solver only ever writes resolved values into a grid; once a
// cell is non-zero it is never cleared or changed.
type Grid struct {
	sidelen int
	cells   [][]uint8
}

// NewGrid makes a Grid from a complete slice of rows.  The number
// of rows fixes the side length, which must be an acceptable puzzle
// size (see Regions); every row must have that many cells, and every
// cell value must be 0 or in 1..sidelen.
func NewGrid(rows [][]uint8) (*Grid, error) {
	sidelen := len(rows)
	if _, err := tileLength(sidelen); err != nil {
		return nil, err
	}
	cells := make([][]uint8, sidelen)
	for x, row := range rows {
		if len(row) != sidelen {
			return nil, formatError(RowLengthAttribute, len(row), WrongLengthCondition, sidelen)
		}
		for _, v := range row {
			if v > uint8(sidelen) {
				return nil, rangeError(ValueAttribute, int(v), 0, sidelen)
			}
		}
		cells[x] = append([]uint8(nil), row...)
	}
	return &Grid{sidelen: sidelen, cells: cells}, nil
}

// SideLength returns the number of cells on each side of the grid.
func (g *Grid) SideLength() int {
	return g.sidelen
}

// Cell returns the value at (x, y).  Out-of-range coordinates are a
// caller bug and panic.
func (g *Grid) Cell(x, y int) uint8 {
	return g.cells[x][y]
}

// SetCell writes a value 1..sidelen at (x, y).  Out-of-range
// coordinates are a caller bug and panic.
func (g *Grid) SetCell(x, y int, value uint8) {
	g.cells[x][y] = value
}

// Unknown counts the cells that still have no value.
func (g *Grid) Unknown() (count int) {
	for _, row := range g.cells {
		for _, v := range row {
			if v == 0 {
				count++
			}
		}
	}
	return
}

// Values returns a copy of the grid rows.  The copy does not share
// storage with the grid, so later solving doesn't affect it.
func (g *Grid) Values() [][]uint8 {
	rows := make([][]uint8, g.sidelen)
	for x, row := range g.cells {
		rows[x] = append([]uint8(nil), row...)
	}
	return rows
}

// Copy returns a deep copy of a grid.
func (g *Grid) Copy() *Grid {
	if g == nil {
		return nil
	}
	return &Grid{sidelen: g.sidelen, cells: g.Values()}
}
