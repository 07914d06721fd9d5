package num

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class wrapped around errors that are not plain value
// conversion failures, such as parse errors and invalid float formats.
var Error = errs.Class("num")

// ConversionReason describes why a value could not be converted.
type ConversionReason int

const (
	TooLarge ConversionReason = iota + 1
	Negative
	NotFinite
	Empty
	InvalidDigit
	PosOverflow
	NegOverflow
)

func (r ConversionReason) String() string {
	switch r {
	case TooLarge:
		return "too large"
	case Negative:
		return "negative"
	case NotFinite:
		return "not finite"
	case Empty:
		return "empty input"
	case InvalidDigit:
		return "invalid digit"
	case PosOverflow:
		return "positive overflow"
	case NegOverflow:
		return "negative overflow"
	default:
		return fmt.Sprintf("ConversionReason(%d)", int(r))
	}
}

// ConversionError is returned when a value does not fit in the destination
// type. From and To name the source and destination types, i.e. "float64"
// and "I128".
type ConversionError struct {
	From   string
	To     string
	Reason ConversionReason
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("num: %s to %s: %s", e.From, e.To, e.Reason)
}

// ParseError is returned, wrapped in the Error class, when a string can not
// be parsed into an integer.
type ParseError struct {
	Input  string
	Radix  int
	Reason ConversionReason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("num: parse %q (base %d): %s", e.Input, e.Radix, e.Reason)
}

func convErr(from, to string, reason ConversionReason) error {
	return &ConversionError{From: from, To: to, Reason: reason}
}

func parseErr(s string, radix int, reason ConversionReason) error {
	return Error.Wrap(&ParseError{Input: s, Radix: radix, Reason: reason})
}
