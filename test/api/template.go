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
	"fmt"
	"net/url"
	"strings"

	"github.com/nscaledev/petstore-api-tests/pkg/codec"
)

// RequestTemplate is the configuration shared by every call a client makes.
// It has no setters; copies are as good as the original.
type RequestTemplate struct {
	baseURL     string
	contentType string
	serializer  codec.Serializer
}

type TemplateOption func(*RequestTemplate)

// WithSerializer replaces codec.JSON for typed request and response bodies.
func WithSerializer(s codec.Serializer) TemplateOption {
	return func(t *RequestTemplate) {
		t.serializer = s
	}
}

// NewRequestTemplate checks that baseURL is absolute and defaults an empty
// content type to DefaultContentType.
func NewRequestTemplate(baseURL, contentType string, opts ...TemplateOption) (RequestTemplate, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return RequestTemplate{}, fmt.Errorf("%w: parsing base URL: %w", ErrInvalidTemplate, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return RequestTemplate{}, fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidTemplate, baseURL)
	}

	if contentType == "" {
		contentType = DefaultContentType
	}

	t := RequestTemplate{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		contentType: contentType,
		serializer:  codec.JSON,
	}

	for _, opt := range opts {
		opt(&t)
	}

	if t.serializer == nil {
		return RequestTemplate{}, fmt.Errorf("%w: nil serializer", ErrInvalidTemplate)
	}

	return t, nil
}

// NewRequestTemplateFromConfig builds the template described by config.
func NewRequestTemplateFromConfig(config *TestConfig) (RequestTemplate, error) {
	var opts []TemplateOption

	if config.StrictDecoding {
		opts = append(opts, WithSerializer(codec.NewJSON(codec.JSONOptions{DisallowUnknownFields: true})))
	}

	return NewRequestTemplate(config.BaseURL, config.ContentType, opts...)
}

func (t RequestTemplate) BaseURL() string {
	return t.baseURL
}

func (t RequestTemplate) ContentType() string {
	return t.contentType
}

func (t RequestTemplate) Serializer() codec.Serializer {
	return t.serializer
}
