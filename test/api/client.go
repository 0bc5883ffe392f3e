/*
Copyright 2024-2025 the Unikorn Authors.
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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=client.go -destination=mock/doer.go -package=mock

// Doer sends a single HTTP request, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the transport shim shared by every resource client.  It holds
// no per-call state so one instance may be used from many specs at once.
type Client struct {
	template RequestTemplate
	doer     Doer
	timeout  time.Duration
	logger   *RequestLogger
	metrics  *Metrics
}

type ClientOption func(*Client)

// WithDoer replaces the default *http.Client.
func WithDoer(doer Doer) ClientOption {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithTimeout sets the timeout of the default *http.Client.  It has no
// effect when WithDoer is also given.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger *RequestLogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(metrics *Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = metrics
	}
}

func NewClient(template RequestTemplate, opts ...ClientOption) *Client {
	c := &Client{
		template: template,
		timeout:  30 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.doer == nil {
		c.doer = &http.Client{
			Timeout: c.timeout,
		}
	}

	if c.logger == nil {
		c.logger = NewRequestLogger()
	}

	return c
}

func (c *Client) Template() RequestTemplate {
	return c.template
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (c *Client) url(r *Request) string {
	u := c.template.baseURL + r.Path

	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}

	return u
}

// Do issues r exactly once.  Any HTTP status yields a Response and a nil
// error; only encoding and transport failures are returned as errors.
func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	body := r.Body

	if r.hasValue {
		data, err := c.template.serializer.Marshal(r.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s request body: %w", r.Method, r.Route, err)
		}

		body = data
	}

	fullURL := c.url(r)

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	contentType := c.template.contentType
	if r.ContentType != "" {
		contentType = r.ContentType
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	for key, values := range r.Header {
		req.Header[key] = values
	}

	traceID := extractTraceID(traceParent)

	c.logger.logRequest(r, req, body)

	start := time.Now()
	resp, err := c.doer.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.metrics.observe(r.Method, r.Route, "error", duration)
		c.logger.logError(r, duration, traceParent, err, "http request failed")

		return nil, &TransportError{Method: r.Method, URL: fullURL, TraceID: traceID, Err: err}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(r.Method, r.Route, "error", duration)
		c.logger.logError(r, duration, traceParent, err, "reading response body")

		return nil, &TransportError{Method: r.Method, URL: fullURL, TraceID: traceID, Err: fmt.Errorf("reading response body: %w", err)}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Duration:   duration,
		TraceID:    traceID,
		Request:    req,
		body:       respBody,
		serializer: c.template.serializer,
	}

	c.metrics.observe(r.Method, r.Route, strconv.Itoa(resp.StatusCode), duration)
	c.logger.logResponse(r, response, traceParent)

	return response, nil
}

// do builds and issues a request in one step for the resource clients.
func (c *Client) do(ctx context.Context, method, route, path string, opts ...RequestOption) (*Response, error) {
	r, err := NewRequest(method, route, path, opts...)
	if err != nil {
		return nil, err
	}

	return c.Do(ctx, r)
}
