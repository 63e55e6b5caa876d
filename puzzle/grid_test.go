package puzzle

import (
	"reflect"
	"testing"
)

/*

Test values

*/

var (
	emptyRow9      = []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0}
	canonicalRows9 = [][]uint8{
		{0, 0, 0, 0, 8, 0, 0, 0, 0},
		{0, 0, 5, 6, 0, 3, 9, 0, 0},
		{0, 8, 4, 0, 0, 0, 2, 7, 0},
		{0, 3, 0, 1, 0, 0, 0, 5, 0},
		{5, 0, 0, 0, 3, 0, 0, 0, 2},
		{0, 6, 0, 0, 0, 5, 0, 1, 0},
		{0, 1, 9, 0, 0, 0, 5, 6, 0},
		{0, 0, 8, 4, 0, 2, 7, 0, 0},
		{0, 0, 0, 0, 6, 0, 0, 0, 0},
	}
	simpleRows4 = [][]uint8{
		{1, 0, 3, 0},
		{0, 3, 0, 1},
		{3, 0, 1, 0},
		{0, 1, 0, 3},
	}
)

func TestNewGridShapeChecks(t *testing.T) {
	if _, err := NewGrid([][]uint8{{1, 2}, {2, 1}}); err == nil {
		t.Errorf("Creating a 2x2 grid did not fail.")
	} else if err.(Error).Condition != TooSmallCondition {
		t.Errorf("Creating a 2x2 grid gave wrong error: %v", err)
	}
	rows := make([][]uint8, 6)
	for i := range rows {
		rows[i] = make([]uint8, 6)
	}
	if _, err := NewGrid(rows); err == nil {
		t.Errorf("Creating a 6x6 grid did not fail.")
	} else if err.(Error).Condition != NonSquareCondition {
		t.Errorf("Creating a 6x6 grid gave wrong error: %v", err)
	}
	ragged := [][]uint8{
		{1, 0, 3, 0},
		{0, 3, 0},
		{3, 0, 1, 0},
		{0, 1, 0, 3},
	}
	if _, err := NewGrid(ragged); err == nil {
		t.Errorf("Creating a ragged grid did not fail.")
	} else if err.(Error).Attribute != RowLengthAttribute {
		t.Errorf("Creating a ragged grid gave wrong error: %v", err)
	}
	bad := [][]uint8{
		{1, 0, 3, 0},
		{0, 3, 0, 5},
		{3, 0, 1, 0},
		{0, 1, 0, 3},
	}
	if _, err := NewGrid(bad); err == nil {
		t.Errorf("Creating a grid with value 5 at side length 4 did not fail.")
	} else if err.(Error).Attribute != ValueAttribute {
		t.Errorf("Creating a grid with a bad value gave wrong error: %v", err)
	}
}

func TestGridCells(t *testing.T) {
	g, err := NewGrid(simpleRows4)
	if err != nil {
		t.Fatalf("Failed to create test grid: %v", err)
	}
	if g.SideLength() != 4 {
		t.Errorf("Side length is %d (expected 4)", g.SideLength())
	}
	if g.Cell(0, 2) != 3 || g.Cell(0, 1) != 0 {
		t.Errorf("Cell reads are wrong: (0,2)=%d (0,1)=%d", g.Cell(0, 2), g.Cell(0, 1))
	}
	if g.Unknown() != 8 {
		t.Errorf("Unknown count is %d (expected 8)", g.Unknown())
	}
	g.SetCell(0, 1, 2)
	if g.Cell(0, 1) != 2 || g.Unknown() != 7 {
		t.Errorf("SetCell didn't take: (0,1)=%d unknown=%d", g.Cell(0, 1), g.Unknown())
	}
}

func TestGridValuesNoSharing(t *testing.T) {
	g, err := NewGrid(simpleRows4)
	if err != nil {
		t.Fatalf("Failed to create test grid: %v", err)
	}
	vs := g.Values()
	if !reflect.DeepEqual(vs, simpleRows4) {
		t.Errorf("Values returned %v (expected %v)", vs, simpleRows4)
	}
	vs[0][0] = 9
	if g.Cell(0, 0) != 1 {
		t.Errorf("Mutating a Values copy leaked into the grid.")
	}
	c := g.Copy()
	c.SetCell(0, 1, 2)
	if g.Cell(0, 1) != 0 {
		t.Errorf("Mutating a Copy leaked into the source grid.")
	}
}

func TestGridString(t *testing.T) {
	g, err := NewGrid(simpleRows4)
	if err != nil {
		t.Fatalf("Failed to create test grid: %v", err)
	}
	expected := "1 . 3 . \n. 3 . 1 \n3 . 1 . \n. 1 . 3 \n"
	if s := g.String(); s != expected {
		t.Errorf("String gave %q (expected %q)", s, expected)
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	in := "1.3.\n.3.1\n3.1.\n.1.3\n"
	g, err := ParseGrid(in)
	if err != nil {
		t.Fatalf("Failed to parse grid: %v", err)
	}
	if !reflect.DeepEqual(g.Values(), simpleRows4) {
		t.Errorf("Parsed values are %v (expected %v)", g.Values(), simpleRows4)
	}
	if c := g.Compact(); c != "1.3..3.13.1..1.3" {
		t.Errorf("Compact gave %q", c)
	}
	if g2, err := ParseGrid(g.Compact()); err != nil {
		t.Errorf("Failed to reparse compact form: %v", err)
	} else if !reflect.DeepEqual(g2.Values(), g.Values()) {
		t.Errorf("Compact round trip changed values.")
	}
	// '0' is an accepted unknown marker
	if g3, err := ParseGrid("1030" + "0301" + "3010" + "0103"); err != nil {
		t.Errorf("Failed to parse zero-marked grid: %v", err)
	} else if !reflect.DeepEqual(g3.Values(), simpleRows4) {
		t.Errorf("Zero-marked parse gave %v", g3.Values())
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := ParseGrid("1.3..3.13.1..1."); err == nil {
		t.Errorf("Parsing a 15-character grid did not fail.")
	} else if err.(Error).Condition != NonSquareCondition {
		t.Errorf("Parsing a 15-character grid gave wrong error: %v", err)
	}
	if _, err := ParseGrid("1.3..3.13.1..1.x"); err == nil {
		t.Errorf("Parsing a grid with 'x' did not fail.")
	} else if err.(Error).Condition != BadCharacterCondition {
		t.Errorf("Parsing a grid with 'x' gave wrong error: %v", err)
	}
}
