// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemcodec

import (
	"bytes"
	"fmt"
	"strings"
)

// Header is a single "key: value" metadata line appearing between the BEGIN
// delimiter and the base64 body of a block.
type Header struct {
	Key   string
	Value string
}

// Entry is one parsed or constructed PEM block: a tag naming the payload
// type, an ordered header sequence, and the decoded binary contents.
//
// Headers keep their insertion order, and duplicate keys are legal; both are
// preserved across an encode/decode round trip. Contents may be empty.
//
// An Entry is a plain value with no hidden state. Callers may construct and
// mutate one freely before handing it to [Codec.Encode].
type Entry struct {
	// Tag is the label between BEGIN/END (e.g. "CERTIFICATE").
	// It must be non-empty and identical on both delimiter lines.
	Tag string

	// Headers holds the block's metadata lines in order of appearance.
	Headers []Header

	// Contents is the decoded binary payload.
	Contents []byte
}

// Get returns the value of the first header with the given key.
// The second return reports whether such a header exists.
func (e *Entry) Get(key string) (string, bool) {
	for _, h := range e.Headers {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// Append adds a header to the end of the header sequence.
// Duplicate keys are allowed.
func (e *Entry) Append(key, value string) {
	e.Headers = append(e.Headers, Header{Key: key, Value: value})
}

// Set replaces the value of the first header with the given key,
// or appends a new header if the key is not present.
func (e *Entry) Set(key, value string) {
	for i, h := range e.Headers {
		if h.Key == key {
			e.Headers[i].Value = value
			return
		}
	}
	e.Append(key, value)
}

// Remove deletes the first header with the given key, preserving the order
// of the remaining headers. It reports whether a header was removed.
//
// Only the first occurrence is removed; later duplicates stay untouched.
func (e *Entry) Remove(key string) bool {
	for i, h := range e.Headers {
		if h.Key == key {
			e.Headers = append(e.Headers[:i], e.Headers[i+1:]...)
			return true
		}
	}
	return false
}

// Equal reports whether two entries have the same tag, the same headers in
// the same order, and byte-identical contents.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Tag != other.Tag || len(e.Headers) != len(other.Headers) {
		return false
	}
	for i, h := range e.Headers {
		if other.Headers[i] != h {
			return false
		}
	}
	return bytes.Equal(e.Contents, other.Contents)
}

// validate checks the invariants the encoder relies on. A violating entry
// could not be reproduced by a re-parse of its own encoding.
func (e *Entry) validate() error {
	switch {
	case e.Tag == "":
		return fmt.Errorf("%w: empty tag", ErrInvalidEntry)
	case strings.ContainsAny(e.Tag, "-\r\n"):
		return fmt.Errorf("%w: tag %q contains a dash or line break", ErrInvalidEntry, e.Tag)
	}
	for _, h := range e.Headers {
		switch {
		case h.Key == "":
			return fmt.Errorf("%w: empty header key", ErrInvalidEntry)
		case strings.ContainsAny(h.Key, ":\r\n"):
			return fmt.Errorf("%w: header key %q contains a colon or line break", ErrInvalidEntry, h.Key)
		case h.Key != strings.TrimSpace(h.Key):
			return fmt.Errorf("%w: header key %q has surrounding whitespace", ErrInvalidEntry, h.Key)
		case strings.ContainsAny(h.Value, "\r\n"):
			return fmt.Errorf("%w: header value for %q contains a line break", ErrInvalidEntry, h.Key)
		case h.Value != strings.TrimSpace(h.Value):
			return fmt.Errorf("%w: header value for %q has surrounding whitespace", ErrInvalidEntry, h.Key)
		}
	}
	return nil
}
