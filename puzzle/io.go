package puzzle

/*

Print and wire forms of grids

*/

import (
	"fmt"
	"strings"
)

// String renders a grid one line per row, each cell as its digit or
// "." for an unknown, every cell followed by a single space.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, v := range row {
			if v == 0 {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// String renders the raw candidate masks, one line per row, each
// mask as three hex digits.  This is a diagnostic dump, not a stable
// format.
func (c *CandidateSet) String() string {
	var sb strings.Builder
	for _, row := range c.cells {
		for _, mask := range row {
			fmt.Fprintf(&sb, "%03x ", mask)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseGrid makes a Grid from a compact string of sidelen^2 cell
// characters in reading order: digits for values, with '.' or '0'
// for unknown cells.  Whitespace and newlines are ignored, so both
// one-line and row-per-line forms parse.  The side length is deduced
// from the content length.
func ParseGrid(s string) (*Grid, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	sidelen, ok := findIntSquareRoot(len(compact))
	if !ok {
		return nil, formatError(GridStringAttribute, len(compact), NonSquareCondition, 0)
	}
	rows := make([][]uint8, sidelen)
	for x := range rows {
		rows[x] = make([]uint8, sidelen)
		for y := range rows[x] {
			ch := compact[x*sidelen+y]
			switch {
			case ch == '.' || ch == '0':
				// unknown, already zero
			case ch >= '1' && ch <= '9':
				rows[x][y] = uint8(ch - '0')
			default:
				return nil, Error{
					Scope:     ArgumentScope,
					Attribute: GridStringAttribute,
					Condition: BadCharacterCondition,
					Values:    ErrorData{string(ch), x*sidelen + y},
				}
			}
		}
	}
	return NewGrid(rows)
}

// Compact returns the grid as a single string of sidelen^2 cell
// characters in reading order, '.' for unknowns.  The inverse of
// ParseGrid.
func (g *Grid) Compact() string {
	var sb strings.Builder
	sb.Grow(g.sidelen * g.sidelen)
	for _, row := range g.cells {
		for _, v := range row {
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}
