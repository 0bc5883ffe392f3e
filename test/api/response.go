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

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/nscaledev/petstore-api-tests/pkg/codec"
	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

// Response is what the service answered, whatever the status code.
type Response struct {
	StatusCode int
	Header     http.Header
	Duration   time.Duration
	TraceID    string
	// Request is the request as it went on the wire.
	Request *http.Request

	body       []byte
	serializer codec.Serializer

	parseOnce sync.Once
	parsed    any
	parseErr  error
}

// Body returns the raw body.  The slice must not be modified.
func (r *Response) Body() []byte {
	return r.body
}

func (r *Response) String() string {
	return string(r.body)
}

// Decode unmarshals the body into v with the template serializer.
func (r *Response) Decode(v any) error {
	if err := r.serializer.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// APIResponse decodes the {code,type,message} envelope the service uses for
// errors and for some successful writes.
func (r *Response) APIResponse() (openapi.APIResponse, error) {
	var out openapi.APIResponse

	if err := r.Decode(&out); err != nil {
		return openapi.APIResponse{}, err
	}

	return out, nil
}

// Field is the result of a path lookup into the body.
type Field struct {
	Path string
	// Present is false when the path does not exist.  A JSON null is
	// present.
	Present bool
	Value   ldvalue.Value

	raw any
}

func (r *Response) tree() (any, error) {
	r.parseOnce.Do(func() {
		decoder := json.NewDecoder(bytes.NewReader(r.body))
		decoder.UseNumber()

		if err := decoder.Decode(&r.parsed); err != nil {
			r.parseErr = fmt.Errorf("%w: %w", ErrBodyNotJSON, err)
		}
	})

	return r.parsed, r.parseErr
}

func walk(node any, path string) (any, bool) {
	if path == "" {
		return node, true
	}

	for _, segment := range strings.Split(path, ".") {
		switch t := node.(type) {
		case map[string]any:
			next, ok := t[segment]
			if !ok {
				return nil, false
			}

			node = next
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(t) {
				return nil, false
			}

			node = t[i]
		default:
			return nil, false
		}
	}

	return node, true
}

func toValue(node any) ldvalue.Value {
	data, err := json.Marshal(node)
	if err != nil {
		return ldvalue.Null()
	}

	return ldvalue.Parse(data)
}

func (r *Response) lookup(path string) (Field, error) {
	root, err := r.tree()
	if err != nil {
		return Field{Path: path}, err
	}

	node, ok := walk(root, path)
	if !ok {
		return Field{Path: path}, nil
	}

	return Field{Path: path, Present: true, Value: toValue(node), raw: node}, nil
}

// Field looks up a dot separated path such as "tags.0.name".  Array
// elements are addressed by index.  A body that is not JSON reports every
// path as absent; use the typed accessors to tell the two apart.
func (r *Response) Field(path string) Field {
	field, _ := r.lookup(path)

	return field
}

// Has reports whether path exists in the body.
func (r *Response) Has(path string) bool {
	return r.Field(path).Present
}

func (r *Response) typed(path string, want ldvalue.ValueType) (Field, error) {
	field, err := r.lookup(path)
	if err != nil {
		return field, err
	}

	if !field.Present {
		return field, &FieldError{Path: path, Want: want.String(), Err: ErrFieldAbsent}
	}

	if field.Value.Type() != want {
		return field, &FieldError{Path: path, Want: want.String(), Got: field.Value.Type().String(), Err: ErrFieldType}
	}

	return field, nil
}

// Str returns the string at path.
func (r *Response) Str(path string) (string, error) {
	field, err := r.typed(path, ldvalue.StringType)
	if err != nil {
		return "", err
	}

	return field.Value.StringValue(), nil
}

// Int64 returns the integer at path without passing through a float, so
// identifiers at the edge of the int64 range survive.
func (r *Response) Int64(path string) (int64, error) {
	field, err := r.typed(path, ldvalue.NumberType)
	if err != nil {
		return 0, err
	}

	number, ok := field.raw.(json.Number)
	if !ok {
		return 0, &FieldError{Path: path, Want: "integer", Got: field.Value.Type().String(), Err: ErrFieldType}
	}

	i, err := number.Int64()
	if err != nil {
		return 0, &FieldError{Path: path, Want: "integer", Got: number.String(), Err: ErrFieldType}
	}

	return i, nil
}

func (r *Response) Int(path string) (int, error) {
	i, err := r.Int64(path)
	if err != nil {
		return 0, err
	}

	return int(i), nil
}

func (r *Response) Bool(path string) (bool, error) {
	field, err := r.typed(path, ldvalue.BoolType)
	if err != nil {
		return false, err
	}

	return field.Value.BoolValue(), nil
}
