// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemcodec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/pem-codec/src/internal/helper/textnorm"
)

const (
	beginPrefix = "-----BEGIN "
	endPrefix   = "-----END "
	delimSuffix = "-----"
)

// scanState is the position of the line scan inside the block grammar.
type scanState int

const (
	// stateSeekBegin skips prose until a BEGIN delimiter line.
	stateSeekBegin scanState = iota
	// stateReadHeaders collects "key: value" lines after BEGIN.
	stateReadHeaders
	// stateReadBody accumulates base64 lines until the END delimiter.
	stateReadBody
)

// lineScanner iterates over the lines of an in-memory buffer, treating
// "\r\n" and "\n" as equivalent terminators and permitting a final line
// without one. line holds the current line with the terminator removed;
// num is its 1-based position.
type lineScanner struct {
	rest []byte
	line []byte
	num  int
}

func (s *lineScanner) next() bool {
	if len(s.rest) == 0 {
		return false
	}
	if i := bytes.IndexByte(s.rest, '\n'); i >= 0 {
		s.line, s.rest = s.rest[:i], s.rest[i+1:]
	} else {
		s.line, s.rest = s.rest, nil
	}
	s.line = bytes.TrimSuffix(s.line, []byte("\r"))
	s.num++
	return true
}

// matchDelimiter reports whether a trimmed line is a BEGIN or END delimiter
// with the given prefix, returning the enclosed tag. Tags must be non-empty
// and dash-free; anything else is not a delimiter and falls through to the
// surrounding classification (prose or body).
func matchDelimiter(line []byte, prefix string) (string, bool) {
	if !bytes.HasPrefix(line, []byte(prefix)) || !bytes.HasSuffix(line, []byte(delimSuffix)) {
		return "", false
	}
	tag := string(line[len(prefix) : len(line)-len(delimSuffix)])
	if tag == "" || strings.ContainsRune(tag, '-') {
		return "", false
	}
	return tag, true
}

// isBase64Byte reports whether b belongs to the standard base64 alphabet
// or is a padding character.
func isBase64Byte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '+', b == '/', b == '=':
		return true
	}
	return false
}

// DecodeAll parses every PEM block found in data, in order of appearance.
// Text before, between, and after blocks is ignored, so blocks embedded in
// arbitrary prose (mail, log output) parse cleanly. An input with no blocks
// yields an empty slice and no error.
//
// A structural violation is fatal for the whole call: a BEGIN without a
// matching END, mismatched BEGIN/END tags, or an undecodable body returns
// a [*SyntaxError] and no entries, even if earlier blocks were well-formed.
func (c *Codec) DecodeAll(data []byte) ([]Entry, error) {
	sc := &lineScanner{rest: textnorm.StripBOM(data)}

	var (
		entries   []Entry
		cur       Entry
		body      []byte
		state     = stateSeekBegin
		beginLine int
	)

	for sc.next() {
		trimmed := bytes.TrimSpace(sc.line)

		if state == stateSeekBegin {
			if tag, ok := matchDelimiter(trimmed, beginPrefix); ok {
				cur = Entry{Tag: tag}
				body = body[:0]
				beginLine = sc.num
				state = stateReadHeaders
			}
			continue
		}

		// Inside a block. The END delimiter closes it from either the
		// header or the body section (an entry may have an empty body).
		if tag, ok := matchDelimiter(trimmed, endPrefix); ok {
			if tag != cur.Tag {
				return nil, syntaxErr(ErrMalformedFraming, sc.num,
					"END tag %q does not match BEGIN tag %q", tag, cur.Tag)
			}
			contents, err := decodeBody(body)
			if err != nil {
				return nil, syntaxErr(ErrInvalidBase64, sc.num,
					"block beginning at line %d: %v", beginLine, err)
			}
			cur.Contents = contents
			entries = append(entries, cur)
			state = stateSeekBegin
			continue
		}

		// Blank lines are tolerated in both sections.
		if len(trimmed) == 0 {
			continue
		}

		if state == stateReadHeaders {
			if c.AllowHeaderContinuation && len(cur.Headers) > 0 && isSpaceByte(sc.line[0]) {
				last := &cur.Headers[len(cur.Headers)-1]
				last.Value += " " + string(trimmed)
				continue
			}
			if i := bytes.IndexByte(trimmed, ':'); i >= 0 {
				key := string(bytes.TrimSpace(trimmed[:i]))
				if key == "" {
					return nil, syntaxErr(ErrInvalidHeader, sc.num,
						"header line %q has an empty key", trimmed)
				}
				cur.Append(key, string(bytes.TrimSpace(trimmed[i+1:])))
				continue
			}
			// First non-header line: the body starts here.
			state = stateReadBody
		}

		var err error
		if body, err = appendBodyLine(body, trimmed); err != nil {
			return nil, syntaxErr(ErrInvalidBase64, sc.num, "%v", err)
		}
	}

	if state != stateSeekBegin {
		return nil, syntaxErr(ErrMalformedFraming, beginLine,
			"BEGIN %q has no matching END", cur.Tag)
	}
	return entries, nil
}

// Decode parses data that must contain exactly one PEM block, returning it.
// It fails with [ErrNotExactlyOne] when zero or multiple blocks are present,
// and with the same errors as [Codec.DecodeAll] on malformed input.
func (c *Codec) Decode(data []byte) (*Entry, error) {
	entries, err := c.DecodeAll(data)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNotExactlyOne, len(entries))
	}
	return &entries[0], nil
}

// DecodeAllString is [Codec.DecodeAll] over a string input.
func (c *Codec) DecodeAllString(text string) ([]Entry, error) {
	return c.DecodeAll([]byte(text))
}

// DecodeString is [Codec.Decode] over a string input.
func (c *Codec) DecodeString(text string) (*Entry, error) {
	return c.Decode([]byte(text))
}

// appendBodyLine strips interior whitespace from a trimmed body line and
// appends the remaining characters to body, rejecting anything outside the
// base64 alphabet so the offending line can be reported precisely.
func appendBodyLine(body, line []byte) ([]byte, error) {
	for _, b := range line {
		if isSpaceByte(b) {
			continue
		}
		if !isBase64Byte(b) {
			return body, fmt.Errorf("invalid base64 character %q", b)
		}
		body = append(body, b)
	}
	return body, nil
}

// decodeBody decodes the whitespace-stripped body characters. Alphabet
// violations were rejected line by line; this catches length and padding
// problems that only surface once the body is complete.
func decodeBody(body []byte) ([]byte, error) {
	contents := make([]byte, base64.StdEncoding.DecodedLen(len(body)))
	n, err := base64.StdEncoding.Decode(contents, body)
	if err != nil {
		return nil, err
	}
	return contents[:n], nil
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}
