// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFraming indicates broken block structure: a BEGIN line
	// without a matching END, or BEGIN/END lines whose tags differ.
	ErrMalformedFraming = errors.New("pemcodec: malformed framing")

	// ErrInvalidHeader indicates a line between BEGIN and the body that
	// cannot be classified as a header under the grammar.
	ErrInvalidHeader = errors.New("pemcodec: invalid header line")

	// ErrInvalidBase64 indicates a body that does not decode as base64
	// after whitespace stripping.
	ErrInvalidBase64 = errors.New("pemcodec: invalid base64 body")

	// ErrNotExactlyOne indicates that [Codec.Decode] found zero blocks or
	// more than one block in its input.
	ErrNotExactlyOne = errors.New("pemcodec: input does not contain exactly one PEM block")

	// ErrInvalidEntry indicates an [Entry] that violates the encoding
	// invariants (empty tag, line breaks in headers, colons in keys,
	// whitespace padding that a re-parse would trim away).
	ErrInvalidEntry = errors.New("pemcodec: entry violates encoding invariants")
)

// SyntaxError reports a parse failure at a specific position in the input.
// It wraps one of the package sentinel errors, so callers can classify it
// with [errors.Is] while still seeing the offending line.
type SyntaxError struct {
	// Line is the 1-based line number where the failure was detected,
	// or 0 when no single line is responsible.
	Line int

	// Msg describes the failure.
	Msg string

	// Err is the sentinel error category (e.g. [ErrMalformedFraming]).
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %s", e.Err, e.Line, e.Msg)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Msg)
}

// Unwrap returns the sentinel error category.
func (e *SyntaxError) Unwrap() error { return e.Err }

// syntaxErr builds a *SyntaxError for the given sentinel and line.
func syntaxErr(sentinel error, line int, format string, v ...any) *SyntaxError {
	return &SyntaxError{
		Line: line,
		Msg:  fmt.Sprintf(format, v...),
		Err:  sentinel,
	}
}
