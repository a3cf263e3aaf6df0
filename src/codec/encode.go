// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemcodec

import (
	"encoding/base64"

	"github.com/H0llyW00dzZ/pem-codec/src/internal/helper/gc"
)

// Encode serializes an entry into canonical wrapped PEM text: the BEGIN
// line, one physical line per stored header, the base64 body hard-wrapped
// at [Codec.WrapWidth] characters, and the END line. Empty contents produce
// zero body lines. Header values are emitted verbatim, never folded.
//
// The entry is validated against the encoding invariants first; a violating
// entry fails with [ErrInvalidEntry] before any output is produced.
func (c *Codec) Encode(e *Entry) ([]byte, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	width := c.wrapWidth()
	eol := c.lineEnding()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(beginPrefix)
	buf.WriteString(e.Tag)
	buf.WriteString(delimSuffix)
	buf.WriteString(eol)

	for _, h := range e.Headers {
		buf.WriteString(h.Key)
		buf.WriteString(": ")
		buf.WriteString(h.Value)
		buf.WriteString(eol)
	}

	if len(e.Contents) > 0 {
		encoded := base64.StdEncoding.EncodeToString(e.Contents)
		for len(encoded) > width {
			buf.WriteString(encoded[:width])
			buf.WriteString(eol)
			encoded = encoded[width:]
		}
		buf.WriteString(encoded)
		buf.WriteString(eol)
	}

	buf.WriteString(endPrefix)
	buf.WriteString(e.Tag)
	buf.WriteString(delimSuffix)
	buf.WriteString(eol)

	// The pooled buffer is reused after Put, so hand back a copy.
	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())
	return out, nil
}

// EncodeToString is [Codec.Encode] returning the block as a string.
func (c *Codec) EncodeToString(e *Entry) (string, error) {
	out, err := c.Encode(e)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeAll serializes multiple entries into concatenated PEM blocks, in
// order. Each block already ends with a line terminator, so no extra
// separator is inserted; the result parses back to the same sequence.
func (c *Codec) EncodeAll(entries []Entry) ([]byte, error) {
	var out []byte

	for i := range entries {
		block, err := c.Encode(&entries[i])
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}

	return out, nil
}
