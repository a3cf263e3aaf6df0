// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemcodec

// DefaultWrapWidth is the number of base64 characters placed on each body
// line by the encoder when [Codec.WrapWidth] is zero. 64 is the width used
// by RFC 7468 and by virtually all certificate tooling.
const DefaultWrapWidth = 64

// Codec provides methods to decode and encode PEM blocks.
// It maintains the output formatting configuration; decoding accepts any
// mix of line endings and widths regardless of these settings.
//
// A Codec holds no per-call state. Its methods are pure functions of their
// inputs and the configuration fields, so a single Codec is safe for
// concurrent use by multiple goroutines as long as the fields are not
// mutated while calls are in flight.
type Codec struct {
	// WrapWidth is the base64 line width used by Encode.
	// Zero or negative means DefaultWrapWidth.
	WrapWidth int

	// LineEnding terminates every emitted line. Empty means "\n".
	LineEnding string

	// AllowHeaderContinuation enables RFC 1421 style header folding on
	// decode: a line starting with whitespace directly after a header
	// line is appended to that header's value. Disabled by default,
	// since a folded line is indistinguishable from an indented body
	// line; enable it only for inputs known to fold headers.
	AllowHeaderContinuation bool
}

// New creates a new Codec with default settings: 64-character base64 lines,
// "\n" line endings, and header continuation disabled.
func New() *Codec {
	return &Codec{
		WrapWidth:  DefaultWrapWidth,
		LineEnding: "\n",
	}
}

// wrapWidth returns the effective base64 line width.
func (c *Codec) wrapWidth() int {
	if c.WrapWidth <= 0 {
		return DefaultWrapWidth
	}
	return c.WrapWidth
}

// lineEnding returns the effective output line terminator.
func (c *Codec) lineEnding() string {
	if c.LineEnding == "" {
		return "\n"
	}
	return c.LineEnding
}
