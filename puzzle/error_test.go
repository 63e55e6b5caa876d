package puzzle

import (
	"testing"
)

func TestErrorStrings(t *testing.T) {
	errs := []Error{
		formatError(SideLengthAttribute, 2, TooSmallCondition, 4),
		formatError(SideLengthAttribute, 16, TooLargeCondition, 9),
		formatError(SideLengthAttribute, 6, NonSquareCondition, 0),
		rangeError(ValueAttribute, 12, 0, 9),
		{Message: "canned message"},
	}
	expected := []string{
		"Invalid geometry: Side length (2): Must be at least 4",
		"Invalid geometry: Side length (16): Must be at most 9",
		"Invalid geometry: Side length (6): Not a perfect square",
		"Invalid argument: Value (12): Must be at most 9",
		"canned message",
	}
	for i, err := range errs {
		if s := err.Error(); s != expected[i] {
			t.Errorf("Error case %d gave %q (expected %q)", i+1, s, expected[i])
		}
	}
}
