package puzzle

/*

Regions

A region is an ordered set of cell coordinates that must jointly
contain each value exactly once.  Every square geometry has a region
per row and per column, plus one per non-overlapping subtile whose
side is the square root of the puzzle's side length.

*/

import (
	"fmt"
	"sync"
)

// A Cell is a grid coordinate: x is the row, y the column.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// A RegionID names a row, column, or tile.  The index is 1-based.
type RegionID struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// Region IDs implement Stringer.
func (id RegionID) String() string {
	if id.Kind == "" {
		return fmt.Sprintf("<region> %d", id.Index)
	}
	return fmt.Sprintf("%s %d", id.Kind, id.Index)
}

// Region kind constants.  These are human-readable but not
// localized.
const (
	KindRow    = "row"
	KindColumn = "column"
	KindTile   = "tile"
)

// A Region is an immutable ordered list of cell coordinates.  Each
// region is built once per side length and shared by pointer among
// the rules that reference it, so the coordinate list is stored only
// a single time.  Nobody may mutate a Region after construction.
type Region struct {
	ID    RegionID
	Cells []Cell
}

// regionCache memoizes the computed region sets for each side
// length we've encountered, to avoid computing them more than once.
// The solver is single-threaded but servers build one per request,
// so lookups can come from many goroutines at once.
var (
	regionCache = make(map[int][]*Region)
	regionMutex sync.Mutex
)

// findIntSquareRoot finds the integer square root of val, if it
// exists.
func findIntSquareRoot(val int) (int, bool) {
	var i int
	for i = 1; i*i <= val; i++ {
		if i*i == val {
			return i, true
		}
	}
	return i - 1, false
}

// tileLength validates a side length and returns the side of its
// subtiles.  The side length must be a perfect square so the tiles
// tessellate, at least 4 so the puzzle is non-trivial, and at most 9
// because candidate masks carry one bit per numeral 1..9.
func tileLength(sidelen int) (int, error) {
	min, max := 4, 9
	if sidelen < min {
		return 0, formatError(SideLengthAttribute, sidelen, TooSmallCondition, min)
	}
	if sidelen > max {
		return 0, formatError(SideLengthAttribute, sidelen, TooLargeCondition, max)
	}
	tilelen, ok := findIntSquareRoot(sidelen)
	if !ok {
		return 0, formatError(SideLengthAttribute, sidelen, NonSquareCondition, 0)
	}
	return tilelen, nil
}

// computeRegions builds the row, column, and tile regions for the
// given side and tile lengths.
func computeRegions(sidelen, tilelen int) []*Region {
	regions := make([]*Region, 0, 3*sidelen)
	// rows
	for x := 0; x < sidelen; x++ {
		cells := make([]Cell, sidelen)
		for y := 0; y < sidelen; y++ {
			cells[y] = Cell{x, y}
		}
		regions = append(regions, &Region{RegionID{KindRow, x + 1}, cells})
	}
	// columns
	for y := 0; y < sidelen; y++ {
		cells := make([]Cell, sidelen)
		for x := 0; x < sidelen; x++ {
			cells[x] = Cell{x, y}
		}
		regions = append(regions, &Region{RegionID{KindColumn, y + 1}, cells})
	}
	// tiles
	for i := 0; i < sidelen; i++ {
		cells := make([]Cell, sidelen)
		basex, basey := tilelen*(i/tilelen), tilelen*(i%tilelen)
		for tx := 0; tx < tilelen; tx++ {
			for ty := 0; ty < tilelen; ty++ {
				cells[tx*tilelen+ty] = Cell{basex + tx, basey + ty}
			}
		}
		regions = append(regions, &Region{RegionID{KindTile, i + 1}, cells})
	}
	return regions
}

// Regions returns the region set for a square puzzle with the given
// side length.  This computes (first time) and then returns
// (thereafter) the shared set.  Returns an error if the side length
// is not an acceptable puzzle size.
func Regions(sidelen int) ([]*Region, error) {
	tilelen, err := tileLength(sidelen)
	if err != nil {
		return nil, err
	}
	regionMutex.Lock()
	defer regionMutex.Unlock()
	rs, ok := regionCache[sidelen]
	if ok {
		return rs, nil
	}
	rs = computeRegions(sidelen, tilelen)
	regionCache[sidelen] = rs
	return rs, nil
}
