// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package interchange

import (
	"errors"
	"fmt"
	"strings"

	pemcodec "github.com/H0llyW00dzZ/pem-codec/src/codec"
)

// ErrInvalidRecord indicates a structured record that does not describe a
// well-formed PEM entry (missing tag, malformed headers, schema violation).
var ErrInvalidRecord = errors.New("interchange: invalid entry record")

// HeaderRecord is the record form of one header line.
type HeaderRecord struct {
	Key   string `json:"key" yaml:"key" cbor:"key"`
	Value string `json:"value" yaml:"value" cbor:"value"`
}

// Record is the structured form of a [pemcodec.Entry]. Field order and
// header order match the entry exactly; Contents holds the raw decoded
// payload and is rendered per-format (base64 text in JSON, binary scalar
// in YAML, byte string in CBOR).
type Record struct {
	Tag      string         `json:"tag" yaml:"tag" cbor:"tag"`
	Headers  []HeaderRecord `json:"headers,omitempty" yaml:"headers,omitempty" cbor:"headers,omitempty"`
	Contents []byte         `json:"contents,omitempty" yaml:"contents,omitempty" cbor:"contents,omitempty"`
}

// FromEntry builds the record form of an entry. The entry's header slice
// and contents are copied, so later mutation of either side is safe.
func FromEntry(e *pemcodec.Entry) Record {
	rec := Record{Tag: e.Tag}

	if len(e.Headers) > 0 {
		rec.Headers = make([]HeaderRecord, len(e.Headers))
		for i, h := range e.Headers {
			rec.Headers[i] = HeaderRecord{Key: h.Key, Value: h.Value}
		}
	}
	if len(e.Contents) > 0 {
		rec.Contents = append([]byte(nil), e.Contents...)
	}

	return rec
}

// Entry converts the record back into a [pemcodec.Entry], rejecting records
// that could not have come from a well-formed entry.
func (r *Record) Entry() (*pemcodec.Entry, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	e := &pemcodec.Entry{Tag: r.Tag}
	for _, h := range r.Headers {
		e.Append(h.Key, h.Value)
	}
	if len(r.Contents) > 0 {
		e.Contents = append([]byte(nil), r.Contents...)
	}

	return e, nil
}

// validate mirrors the encoder-side entry invariants so a record round-trips
// through pemcodec without surprises.
func (r *Record) validate() error {
	switch {
	case r.Tag == "":
		return fmt.Errorf("%w: empty tag", ErrInvalidRecord)
	case strings.ContainsAny(r.Tag, "-\r\n"):
		return fmt.Errorf("%w: tag %q contains a dash or line break", ErrInvalidRecord, r.Tag)
	}
	for _, h := range r.Headers {
		switch {
		case h.Key == "":
			return fmt.Errorf("%w: empty header key", ErrInvalidRecord)
		case strings.ContainsAny(h.Key, ":\r\n"):
			return fmt.Errorf("%w: header key %q contains a colon or line break", ErrInvalidRecord, h.Key)
		case h.Key != strings.TrimSpace(h.Key):
			return fmt.Errorf("%w: header key %q has surrounding whitespace", ErrInvalidRecord, h.Key)
		case strings.ContainsAny(h.Value, "\r\n"):
			return fmt.Errorf("%w: header value for %q contains a line break", ErrInvalidRecord, h.Key)
		case h.Value != strings.TrimSpace(h.Value):
			return fmt.Errorf("%w: header value for %q has surrounding whitespace", ErrInvalidRecord, h.Key)
		}
	}
	return nil
}
