package puzzle

/*

Rules

A rule inspects the grid and/or the current candidate state and
narrows the candidate set.  Rules never touch the grid; candidate
conclusions reach the grid only through ApplyUniques.  Every rule is
safe to re-run on every pass: the fixed point the loop reaches does
not depend on rule order, though the number of passes might.

*/

// A Rule prunes or resolves candidates by visiting the current
// (grid, candidate set) pair.  The closed set of implementations is
// ExcludeSolved, UniqueInRegion, and HiddenSingle.
type Rule interface {
	Visit(g *Grid, c *CandidateSet)
}

// ExcludeSolved marks every cell with a fixed grid value as needing
// no further propagation.  It is global, not region-scoped, and it
// is what keeps the candidate set consistent with the grid from one
// pass to the next.
type ExcludeSolved struct{}

// Visit implements Rule.
func (ExcludeSolved) Visit(g *Grid, c *CandidateSet) {
	sidelen := g.SideLength()
	for x := 0; x < sidelen; x++ {
		for y := 0; y < sidelen; y++ {
			if g.Cell(x, y) == 0 {
				continue
			}
			c.MarkSolved(x, y)
		}
	}
}

// UniqueInRegion excludes each solved cell's value as a candidate
// from every other cell in its region: no repeats within a row,
// column, or tile.
type UniqueInRegion struct {
	region *Region
}

// Visit implements Rule.
func (r UniqueInRegion) Visit(g *Grid, c *CandidateSet) {
	for _, cell := range r.region.Cells {
		value := g.Cell(cell.X, cell.Y)
		if value == 0 {
			continue
		}
		for _, other := range r.region.Cells {
			if other == cell {
				continue
			}
			c.Exclude(other.X, other.Y, value)
		}
	}
}

// HiddenSingle resolves values that have exactly one remaining home
// in a region: if a single cell's mask still holds a value's bit,
// that cell must be the value, so its mask is forced to exactly that
// bit and the value is excluded everywhere else in the region.  A
// value with zero or several candidate cells is left alone.
type HiddenSingle struct {
	region *Region
}

// Visit implements Rule.
func (r HiddenSingle) Visit(g *Grid, c *CandidateSet) {
	for value := uint8(1); value <= uint8(g.SideLength()); value++ {
		mask := cellMask(value)
		solo, count := Cell{}, 0
		for _, cell := range r.region.Cells {
			if c.Mask(cell.X, cell.Y)&mask == 0 {
				continue
			}
			count++
			if count > 1 {
				break
			}
			solo = cell
		}
		if count != 1 {
			continue
		}
		for _, cell := range r.region.Cells {
			if cell == solo {
				c.SetExclusive(cell.X, cell.Y, value)
			} else {
				c.Exclude(cell.X, cell.Y, value)
			}
		}
	}
}

// SudokuRules builds the full rule list over a region set: the
// global ExcludeSolved rule first, then a UniqueInRegion per region,
// then a HiddenSingle per region.  Each pair of per-region rules
// shares its region's single coordinate list by pointer.
func SudokuRules(regions []*Region) []Rule {
	rules := make([]Rule, 0, 1+2*len(regions))
	rules = append(rules, ExcludeSolved{})
	for _, region := range regions {
		rules = append(rules, UniqueInRegion{region})
	}
	for _, region := range regions {
		rules = append(rules, HiddenSingle{region})
	}
	return rules
}
