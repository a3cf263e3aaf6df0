// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package interchange_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pemcodec "github.com/H0llyW00dzZ/pem-codec/src/codec"
	"github.com/H0llyW00dzZ/pem-codec/src/interchange"
)

// sampleEntry exercises header order, duplicate keys, and binary contents.
func sampleEntry() *pemcodec.Entry {
	return &pemcodec.Entry{
		Tag: "PGP MESSAGE",
		Headers: []pemcodec.Header{
			{Key: "Version", Value: "OpenPGP v2"},
			{Key: "Comment", Value: "first"},
			{Key: "Comment", Value: "second"},
		},
		Contents: []byte{0x00, 0x01, 0xFE, 0xFF, 'h', 'i'},
	}
}

func TestRecordRoundTrips(t *testing.T) {
	tests := []struct {
		name   string
		encode func(e *pemcodec.Entry) ([]byte, error)
		decode func(data []byte) (*pemcodec.Entry, error)
	}{
		{name: "JSON", encode: interchange.EncodeJSON, decode: interchange.DecodeJSON},
		{name: "YAML", encode: interchange.EncodeYAML, decode: interchange.DecodeYAML},
		{name: "CBOR", encode: interchange.EncodeCBOR, decode: interchange.DecodeCBOR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := sampleEntry()

			data, err := tt.encode(original)
			require.NoError(t, err, "encode error")
			require.NotEmpty(t, data)

			back, err := tt.decode(data)
			require.NoError(t, err, "decode error")
			assert.True(t, original.Equal(back), "round trip mismatch:\n%s", data)
		})

		t.Run(tt.name+" Empty Contents", func(t *testing.T) {
			original := &pemcodec.Entry{Tag: "X"}

			data, err := tt.encode(original)
			require.NoError(t, err)

			back, err := tt.decode(data)
			require.NoError(t, err)
			assert.True(t, original.Equal(back))
		})
	}
}

func TestJSONRepresentation(t *testing.T) {
	data, err := interchange.EncodeJSON(sampleEntry())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "PGP MESSAGE", doc["tag"])
	assert.Equal(t, "AAH+/2hp", doc["contents"], "contents must travel as standard base64")

	headers, ok := doc["headers"].([]any)
	require.True(t, ok, "headers must be an array")
	require.Len(t, headers, 3)
	first, ok := headers[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Version", first["key"])
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{name: "Minimal Record", doc: `{"tag":"X"}`, valid: true},
		{
			name:  "Full Record",
			doc:   `{"tag":"DATA","headers":[{"key":"a","value":"1"}],"contents":"aGVsbG8="}`,
			valid: true,
		},
		{name: "Missing Tag", doc: `{"contents":"aGVsbG8="}`, valid: false},
		{name: "Empty Tag", doc: `{"tag":""}`, valid: false},
		{name: "Unknown Field", doc: `{"tag":"X","extra":1}`, valid: false},
		{name: "Header Missing Value", doc: `{"tag":"X","headers":[{"key":"a"}]}`, valid: false},
		{name: "Non Base64 Contents", doc: `{"tag":"X","contents":"not base64!"}`, valid: false},
		{name: "Wrong Headers Shape", doc: `{"tag":"X","headers":{"a":"1"}}`, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := interchange.ValidateJSON([]byte(tt.doc))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, interchange.ErrInvalidRecord)
			}
		})
	}
}

func TestDecodeJSONRejectsInvalidRecords(t *testing.T) {
	entry, err := interchange.DecodeJSON([]byte(`{"headers":[]}`))
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, interchange.ErrInvalidRecord)
}

func TestRecordEntryValidation(t *testing.T) {
	tests := []struct {
		name   string
		record interchange.Record
	}{
		{name: "Empty Tag", record: interchange.Record{}},
		{name: "Dash In Tag", record: interchange.Record{Tag: "A-B"}},
		{name: "Colon In Header Key", record: interchange.Record{Tag: "X", Headers: []interchange.HeaderRecord{{Key: "a:b", Value: "v"}}}},
		{name: "Line Break In Header Value", record: interchange.Record{Tag: "X", Headers: []interchange.HeaderRecord{{Key: "a", Value: "1\n2"}}}},
		{name: "Whitespace Around Header Value", record: interchange.Record{Tag: "X", Headers: []interchange.HeaderRecord{{Key: "a", Value: " padded "}}}},
		{name: "Whitespace Around Header Key", record: interchange.Record{Tag: "X", Headers: []interchange.HeaderRecord{{Key: " a", Value: "v"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := tt.record.Entry()
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, interchange.ErrInvalidRecord)
		})
	}
}

func TestFromEntryCopies(t *testing.T) {
	entry := sampleEntry()
	rec := interchange.FromEntry(entry)

	entry.Contents[0] = 0x99
	entry.Headers[0].Value = "mutated"

	assert.Equal(t, byte(0x00), rec.Contents[0], "record must not alias entry contents")
	assert.Equal(t, "OpenPGP v2", rec.Headers[0].Value, "record must not alias entry headers")
}

func TestPEMToJSONPipeline(t *testing.T) {
	codec := pemcodec.New()
	entry, err := codec.DecodeString("-----BEGIN DATA-----\nVersion: 1\naGVsbG8=\n-----END DATA-----\n")
	require.NoError(t, err)

	data, err := interchange.EncodeJSON(entry)
	require.NoError(t, err)

	back, err := interchange.DecodeJSON(data)
	require.NoError(t, err)

	pemOut, err := codec.EncodeToString(back)
	require.NoError(t, err)
	assert.Equal(t, "-----BEGIN DATA-----\nVersion: 1\naGVsbG8=\n-----END DATA-----\n", pemOut)
}
