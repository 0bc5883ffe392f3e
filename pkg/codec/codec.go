/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package codec defines how typed values are turned into request bodies and
// back.  Request templates and fixture loaders share a Serializer so a value
// read from a fixture is encoded exactly as it would be sent.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Serializer converts values to and from a wire representation.
type Serializer interface {
	// ContentType is the media type Marshal produces.
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONOptions tune the JSON serializer.
type JSONOptions struct {
	// DisallowUnknownFields rejects payloads with fields the target type
	// does not declare.
	DisallowUnknownFields bool
	// UseNumber decodes numbers into untyped targets as json.Number.
	UseNumber bool
}

type jsonSerializer struct {
	options JSONOptions
}

// JSON is the default, lenient serializer.
//
//nolint:gochecknoglobals
var JSON Serializer = NewJSON(JSONOptions{})

// NewJSON returns a JSON serializer with the given options.
func NewJSON(options JSONOptions) Serializer {
	return &jsonSerializer{
		options: options,
	}
}

func (s *jsonSerializer) ContentType() string {
	return "application/json"
}

func (s *jsonSerializer) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}

	return data, nil
}

func (s *jsonSerializer) Unmarshal(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	if s.options.DisallowUnknownFields {
		decoder.DisallowUnknownFields()
	}

	if s.options.UseNumber {
		decoder.UseNumber()
	}

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	return nil
}
