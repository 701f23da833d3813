package series

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Load when the source path does not exist.
	ErrNotFound = errors.New("source file not found")
	// ErrEmptyData is returned by aggregates over a series with no records.
	ErrEmptyData = errors.New("series has no records")
	// ErrIO wraps write failures during save, export and chart rendering.
	ErrIO = errors.New("write failed")
)

// ParseErrorKind tells a wrong field count apart from a bad value.
type ParseErrorKind int

const (
	FieldCount ParseErrorKind = iota
	Malformed
	Negative
	BadDate
)

func (k ParseErrorKind) String() string {
	switch k {
	case FieldCount:
		return "wrong field count"
	case Malformed:
		return "malformed field"
	case Negative:
		return "negative value"
	case BadDate:
		return "bad date"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError describes one rejected row or field.
// Line is 1-based and counts the header. Column is empty for FieldCount.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Kind   ParseErrorKind
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	if e.Column != "" {
		msg += fmt.Sprintf(" in %s %q", e.Column, e.Value)
	} else if e.Value != "" {
		msg += " (" + e.Value + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
