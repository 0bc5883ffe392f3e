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
	"context"
	"fmt"
	"io"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

// SchemaValidator checks a Response against the status and body schema the
// contract declares for its operation.  It never alters the Response.
type SchemaValidator struct {
	router routers.Router
}

// NewSchemaValidator serves the contract from baseURL, so the same contract
// validates the public service and the in-process fake.
func NewSchemaValidator(baseURL string) (*SchemaValidator, error) {
	doc, err := openapi.Schema()
	if err != nil {
		return nil, err
	}

	doc.Servers = openapi3.Servers{
		&openapi3.Server{URL: baseURL},
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building schema router: %w", err)
	}

	return &SchemaValidator{
		router: router,
	}, nil
}

func (v *SchemaValidator) Validate(ctx context.Context, resp *Response) error {
	if resp.Request == nil {
		return ErrNoRequest
	}

	route, pathParams, err := v.router.FindRoute(resp.Request)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", resp.Request.Method, resp.Request.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    resp.Request,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   io.NopCloser(bytes.NewReader(resp.body)),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("validating %s %s response: %w", resp.Request.Method, route.Path, err)
	}

	return nil
}
