// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package interchange converts between [pemcodec.Entry] values and a
// structured record form suitable for embedding PEM-derived data in other
// serialized documents. The record is a plain {tag, headers, contents}
// shape with JSON, [YAML], and [CBOR] representations; contents travel as
// base64 text in JSON, as a binary scalar in YAML, and as a byte string in
// CBOR. Header order and duplicate keys survive every representation.
//
// JSON input is checked against an embedded [JSON Schema] before
// unmarshaling, so malformed records are rejected with a diagnostic rather
// than silently producing a half-filled entry.
//
// [YAML]: https://yaml.org/spec/1.2.2/
// [CBOR]: https://cbor.io
// [JSON Schema]: https://json-schema.org
package interchange
