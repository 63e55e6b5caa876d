package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with the construction of a grid or a
// region set.  It tells the caller "this attribute failed to meet
// this condition" and carries the offending values, so clients can
// produce their own messaging; Error() verbalizes it in English.
//
// The solving engine itself never produces Errors: once a grid
// exists, every engine operation is total, and argument values that
// violate an operation's contract (a defective rule, not bad input)
// panic instead.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error refers to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	GeometryScope
	MaxScope
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	SideLengthAttribute
	RowLengthAttribute
	ValueAttribute
	GridStringAttribute
	MaxAttribute
)

// The ErrorCondition is the predicate that the attribute's value
// failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	TooLargeCondition
	TooSmallCondition
	NonSquareCondition
	WrongLengthCondition
	BadCharacterCondition
	MaxCondition
)

// The ErrorData provides details about the value that failed to
// meet the predicate, followed by the predicate's own parameters
// (such as a limit).  Every item must be JSON-serializable so
// errors can be returned to web clients.
type ErrorData []interface{}

// Error returns an error string for an Error.  If the Error carries
// a pre-canned message, that wins.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case GeometryScope:
		es = "Invalid geometry: "
	default:
		es = "Unknown error: "
	}
	switch e.Attribute {
	case SideLengthAttribute:
		es += "Side length"
	case RowLengthAttribute:
		es += "Row length"
	case ValueAttribute:
		es += "Value"
	case GridStringAttribute:
		es += "Grid string"
	default:
		es += "<Unknown attribute>"
	}
	es += " (" + fmt.Sprint(nextVal()) + "): "
	switch e.Condition {
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case NonSquareCondition:
		es += "Not a perfect square"
	case WrongLengthCondition:
		es += fmt.Sprintf("Must be exactly %v", nextVal())
	case BadCharacterCondition:
		es += fmt.Sprintf("Unexpected character at position %v", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// formatError returns an Error describing a malformed puzzle shape.
func formatError(attr ErrorAttribute, val int, cond ErrorCondition, limit int) Error {
	err := Error{
		Scope:     GeometryScope,
		Attribute: attr,
		Condition: cond,
		Values:    ErrorData{val},
	}
	switch cond {
	case TooSmallCondition, TooLargeCondition, WrongLengthCondition:
		err.Values = append(err.Values, limit)
	}
	return err
}

// rangeError returns an Error that describes an out-of-range
// argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}
