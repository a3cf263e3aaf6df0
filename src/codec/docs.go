// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemcodec implements a parser and encoder for [PEM]-encoded data:
// base64-encoded binary payloads wrapped between "-----BEGIN <TAG>-----" and
// "-----END <TAG>-----" delimiter lines, optionally preceded by "key: value"
// header lines. The decoded payload is treated as opaque bytes; no
// cryptographic interpretation happens here.
//
// The parser tolerates surrounding prose (blocks embedded in mail or log
// output), both LF and CRLF line endings, blank lines, and per-line
// whitespace. The encoder produces canonical wrapped output with a
// configurable line width and line terminator, and round-trips any
// well-formed [Entry] exactly.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package pemcodec
