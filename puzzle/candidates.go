package puzzle

/*

Candidate sets

*/

import (
	"fmt"
	"math/bits"
)

// cellMask converts a cell value into its candidate bit: value v
// occupies bit v-1.  Values outside 1..9 can't be represented in a
// mask, so they indicate a defective rule and panic.
func cellMask(value uint8) uint16 {
	if value < 1 || value > 9 {
		panic(fmt.Errorf("cellMask: value %d out of range", value))
	}
	return 1 << (value - 1)
}

// maskValue converts a candidate mask back into a cell value.  The
// conversion is only meaningful for a mask with exactly one bit set;
// anything else indicates a defective rule and panics.
func maskValue(mask uint16) uint8 {
	if bits.OnesCount16(mask) != 1 {
		panic(fmt.Errorf("maskValue: mask %#x does not have exactly one candidate", mask))
	}
	return uint8(bits.Len16(mask))
}

// A CandidateSet holds, for every grid cell, the bitmask of values
// still considered possible there.  A fresh set knows nothing: every
// mask has all sidelen value bits set (511 on a 9x9 board).  Rules
// only ever narrow masks; a mask never regains a bit once it's
// cleared.  A mask of 0 marks a cell that needs no further
// propagation (its grid value is already fixed).
type CandidateSet struct {
	sidelen int
	cells   [][]uint16
}

// NewCandidateSet makes a CandidateSet for the given side length
// with every cell's mask full.
func NewCandidateSet(sidelen int) *CandidateSet {
	full := uint16(1)<<sidelen - 1
	cells := make([][]uint16, sidelen)
	for x := range cells {
		cells[x] = make([]uint16, sidelen)
		for y := range cells[x] {
			cells[x][y] = full
		}
	}
	return &CandidateSet{sidelen: sidelen, cells: cells}
}

// Mask returns the raw candidate mask at (x, y).
func (c *CandidateSet) Mask(x, y int) uint16 {
	return c.cells[x][y]
}

// Exclude clears the candidate bit for a value at (x, y).  A no-op
// if the bit is already clear.
func (c *CandidateSet) Exclude(x, y int, value uint8) {
	c.cells[x][y] &^= cellMask(value)
}

// SetExclusive overwrites the mask at (x, y) with exactly the bit
// for the given value, discarding all other candidates.  Used when a
// rule has proved the cell is the only place in some region that can
// hold the value.
func (c *CandidateSet) SetExclusive(x, y int, value uint8) {
	c.cells[x][y] = cellMask(value)
}

// MarkSolved clears the mask at (x, y) entirely, signalling that no
// further propagation is needed for the cell.
func (c *CandidateSet) MarkSolved(x, y int) {
	c.cells[x][y] = 0
}

// Remaining returns the number of values still considered possible
// at (x, y).
func (c *CandidateSet) Remaining(x, y int) int {
	return bits.OnesCount16(c.cells[x][y])
}

// ApplyUniques writes every cell whose mask has collapsed to a
// single candidate into the grid, and reports whether any cell was
// written.  This is the only channel by which candidate conclusions
// become grid facts.
func (c *CandidateSet) ApplyUniques(g *Grid) bool {
	changed := false
	for x := 0; x < c.sidelen; x++ {
		for y := 0; y < c.sidelen; y++ {
			if c.Remaining(x, y) == 1 {
				g.SetCell(x, y, maskValue(c.cells[x][y]))
				changed = true
			}
		}
	}
	return changed
}
