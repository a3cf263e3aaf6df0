// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package interchange

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// entrySchemaJSON is the JSON Schema for the record form of an entry.
// The contents pattern matches standard base64 with optional padding,
// which is how encoding/json renders a byte slice.
const entrySchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "PEM entry record",
	"type": "object",
	"required": ["tag"],
	"additionalProperties": false,
	"properties": {
		"tag": {
			"type": "string",
			"minLength": 1
		},
		"headers": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["key", "value"],
				"additionalProperties": false,
				"properties": {
					"key":   {"type": "string", "minLength": 1},
					"value": {"type": "string"}
				}
			}
		},
		"contents": {
			"type": "string",
			"pattern": "^[A-Za-z0-9+/]*={0,2}$"
		}
	}
}`

// entrySchema is compiled once; the schema text is a constant, so failure
// to compile is a programming error.
var entrySchema = func() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(entrySchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("interchange: compiling entry schema: %v", err))
	}
	return schema
}()

// ValidateJSON checks a JSON document against the entry record schema
// without unmarshaling it. A schema violation fails with
// [ErrInvalidRecord], listing every failed constraint.
func ValidateJSON(data []byte) error {
	result, err := entrySchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if result.Valid() {
		return nil
	}

	descs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		descs = append(descs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(descs, "; "))
}
