package flexparse

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *ParseError) by the parse functions.
// Match them with errors.Is.
var (
	// ErrInvalidInput reports data that is not valid UTF-8.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnexpectedToken reports a structurally invalid character, such as
	// a '<' inside an unquoted part of a tag.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnmatchedClosingTag reports a closing tag with no corresponding
	// open element.
	ErrUnmatchedClosingTag = errors.New("unmatched closing tag")

	// ErrUnexpectedEOF reports input that ends inside a tag, comment or
	// raw text element.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrHook reports a hook that returned an error.
	ErrHook = errors.New("hook failed")
)

// A ParseError describes why a parse was aborted. It wraps one of the
// sentinel errors and, where applicable, carries the offending character and
// its position.
type ParseError struct {
	Err error

	// Char is the offending character, or zero when no single character is
	// at fault.
	Char rune

	// Offset is the 1-based character offset into the whitespace-trimmed
	// input, or zero when the error is not positional.
	Offset int

	// Detail is an optional free-text elaboration.
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Offset > 0 {
		if e.Char != 0 {
			msg = fmt.Sprintf("%s %q at offset %d", msg, e.Char, e.Offset)
		} else {
			msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
		}
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
