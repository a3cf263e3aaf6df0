// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package textnorm normalizes raw text buffers ahead of line-oriented
// scanning. PEM inputs frequently arrive from editors and Windows tooling
// with a UTF-8 byte order mark prepended, which would otherwise glue itself
// to the first line and defeat delimiter matching.
package textnorm

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf8BOM is the UTF-8 encoding of U+FEFF.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StripBOM removes a leading UTF-8 byte order mark from data, if present,
// using the [unicode.UTF8BOM] decoder. Input without a BOM is returned
// unchanged and uncopied.
func StripBOM(data []byte) []byte {
	if !bytes.HasPrefix(data, utf8BOM) {
		return data
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		// The transformer only fails on broken multi-byte sequences;
		// the BOM itself is already verified, so drop it manually.
		return data[len(utf8BOM):]
	}
	return out
}
