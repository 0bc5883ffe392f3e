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
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

const (
	// APIKeyHeader carries the static API key.
	APIKeyHeader = "api_key"

	formContentType = "application/x-www-form-urlencoded"
)

// Request describes one call relative to a template's base URL.
type Request struct {
	Method string
	// Route is the path pattern, e.g. /pet/{petId}.  It labels metrics.
	Route string
	Path  string
	Query url.Values
	// Header is applied after the template defaults, so it wins.
	Header http.Header
	// ContentType overrides the template's default when set.
	ContentType string
	Body        []byte

	// value is encoded with the template serializer at send time.
	value    any
	hasValue bool
}

type RequestOption func(*Request) error

// NewRequest applies opts in order.
func NewRequest(method, route, path string, opts ...RequestOption) (*Request, error) {
	r := &Request{
		Method: method,
		Route:  route,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("building %s %s: %w", method, route, err)
		}
	}

	return r, nil
}

// WithJSONBody sends v encoded by the template serializer.
func WithJSONBody(v any) RequestOption {
	return func(r *Request) error {
		r.value = v
		r.hasValue = true

		return nil
	}
}

// WithRawBody sends body byte for byte.
func WithRawBody(body string) RequestOption {
	return func(r *Request) error {
		r.Body = []byte(body)

		return nil
	}
}

// WithFormBody sends values form encoded.
func WithFormBody(values url.Values) RequestOption {
	return func(r *Request) error {
		r.Body = []byte(values.Encode())
		r.ContentType = formContentType

		return nil
	}
}

func WithQuery(values url.Values) RequestOption {
	return func(r *Request) error {
		for k, vs := range values {
			for _, v := range vs {
				r.Query.Add(k, v)
			}
		}

		return nil
	}
}

func WithHeader(key, value string) RequestOption {
	return func(r *Request) error {
		r.Header.Set(key, value)

		return nil
	}
}

// WithAPIKey sets the api_key header.
func WithAPIKey(key string) RequestOption {
	return WithHeader(APIKeyHeader, key)
}

// WithBearerToken sets an OAuth2 bearer Authorization header.
func WithBearerToken(token string) RequestOption {
	return WithHeader("Authorization", "Bearer "+token)
}

// MultipartField is a plain form field of a multipart body.
type MultipartField struct {
	Name  string
	Value string
}

// MultipartFile is a file part of a multipart body.
type MultipartFile struct {
	Field    string
	Filename string
	Content  []byte
}

// FileFromPath reads a file from disk into a part named field.
func FileFromPath(field, path string) (MultipartFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return MultipartFile{}, fmt.Errorf("reading upload file: %w", err)
	}

	return MultipartFile{
		Field:    field,
		Filename: filepath.Base(path),
		Content:  content,
	}, nil
}

// WithMultipartBody sends fields then files as multipart/form-data.
func WithMultipartBody(fields []MultipartField, files []MultipartFile) RequestOption {
	return func(r *Request) error {
		var buf bytes.Buffer

		writer := multipart.NewWriter(&buf)

		for _, field := range fields {
			if err := writer.WriteField(field.Name, field.Value); err != nil {
				return fmt.Errorf("writing multipart field %s: %w", field.Name, err)
			}
		}

		for _, file := range files {
			part, err := writer.CreateFormFile(file.Field, file.Filename)
			if err != nil {
				return fmt.Errorf("creating multipart file %s: %w", file.Field, err)
			}

			if _, err := io.Copy(part, bytes.NewReader(file.Content)); err != nil {
				return fmt.Errorf("writing multipart file %s: %w", file.Field, err)
			}
		}

		if err := writer.Close(); err != nil {
			return fmt.Errorf("closing multipart body: %w", err)
		}

		r.Body = buf.Bytes()
		r.ContentType = writer.FormDataContentType()

		return nil
	}
}
