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
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidTemplate = errors.New("invalid request template")

	// ErrFieldAbsent means the requested path does not exist in the body.
	ErrFieldAbsent = errors.New("field absent")
	// ErrFieldType means the path exists but holds a different JSON type.
	ErrFieldType = errors.New("field has unexpected type")
	// ErrBodyNotJSON means the response body could not be parsed at all.
	ErrBodyNotJSON = errors.New("response body is not JSON")

	ErrNoRequest = errors.New("response carries no request")
)

// TransportError means no HTTP response was obtained, e.g. the connection
// was refused or timed out.  It is never returned for an HTTP error status.
type TransportError struct {
	Method  string
	URL     string
	TraceID string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed (trace ID: %s): %v", e.Method, e.URL, e.TraceID, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FieldError describes a failed typed lookup into a response body.
type FieldError struct {
	Path string
	Want string
	Got  string
	Err  error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrFieldType) {
		return fmt.Sprintf("field %q: %v: want %s, got %s", e.Path, e.Err, e.Want, e.Got)
	}

	return fmt.Sprintf("field %q: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
