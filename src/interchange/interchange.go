// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package interchange

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	pemcodec "github.com/H0llyW00dzZ/pem-codec/src/codec"
	"github.com/H0llyW00dzZ/pem-codec/src/internal/helper/gc"
)

// EncodeJSON serializes an entry as a JSON record.
func EncodeJSON(e *pemcodec.Entry) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(FromEntry(e)); err != nil {
		return nil, fmt.Errorf("interchange: encoding JSON record: %w", err)
	}

	// json.Encoder appends a newline; the record is a single value.
	return bytes.Clone(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// DecodeJSON parses a JSON record into an entry. The document is validated
// against the entry schema first, so structural mistakes (missing tag,
// misspelled fields, non-base64 contents) fail with [ErrInvalidRecord]
// before any unmarshaling happens.
func DecodeJSON(data []byte) (*pemcodec.Entry, error) {
	if err := ValidateJSON(data); err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	return rec.Entry()
}

// EncodeYAML serializes an entry as a YAML record. Contents are emitted as
// a YAML binary scalar (base64 under the !!binary tag).
func EncodeYAML(e *pemcodec.Entry) ([]byte, error) {
	out, err := yaml.Marshal(FromEntry(e))
	if err != nil {
		return nil, fmt.Errorf("interchange: encoding YAML record: %w", err)
	}
	return out, nil
}

// DecodeYAML parses a YAML record into an entry.
func DecodeYAML(data []byte) (*pemcodec.Entry, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return rec.Entry()
}

// EncodeCBOR serializes an entry as a CBOR record. Contents travel as a
// native byte string, so no base64 expansion is paid in binary contexts.
func EncodeCBOR(e *pemcodec.Entry) ([]byte, error) {
	out, err := cbor.Marshal(FromEntry(e))
	if err != nil {
		return nil, fmt.Errorf("interchange: encoding CBOR record: %w", err)
	}
	return out, nil
}

// DecodeCBOR parses a CBOR record into an entry.
func DecodeCBOR(data []byte) (*pemcodec.Entry, error) {
	var rec Record
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return rec.Entry()
}
