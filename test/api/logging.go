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
	"io"
	"net/http"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alessio/shellescape"
	"github.com/fatih/color"
	"github.com/onsi/ginkgo/v2"
)

// RequestLogger writes one line per event in the form "[METHOD path] ...".
// Transport errors are always written, everything else is opt-in.
type RequestLogger struct {
	out       io.Writer
	requests  bool
	responses bool
	curl      bool

	success     *color.Color
	redirect    *color.Color
	clientError *color.Color
	serverError *color.Color
}

type LoggerOption func(*RequestLogger)

// WithOutput replaces GinkgoWriter.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *RequestLogger) {
		l.out = w
	}
}

func WithRequestLogging(enabled bool) LoggerOption {
	return func(l *RequestLogger) {
		l.requests = enabled
	}
}

func WithResponseLogging(enabled bool) LoggerOption {
	return func(l *RequestLogger) {
		l.responses = enabled
	}
}

// WithCurlLogging writes a curl command line that reproduces each request.
func WithCurlLogging(enabled bool) LoggerOption {
	return func(l *RequestLogger) {
		l.curl = enabled
	}
}

func WithoutColor() LoggerOption {
	return func(l *RequestLogger) {
		for _, c := range []*color.Color{l.success, l.redirect, l.clientError, l.serverError} {
			c.DisableColor()
		}
	}
}

func NewRequestLogger(opts ...LoggerOption) *RequestLogger {
	l := &RequestLogger{
		out:         ginkgo.GinkgoWriter,
		success:     color.New(color.FgGreen),
		redirect:    color.New(color.FgCyan),
		clientError: color.New(color.FgYellow),
		serverError: color.New(color.FgRed, color.Bold),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func NewRequestLoggerFromConfig(config *TestConfig, opts ...LoggerOption) *RequestLogger {
	base := []LoggerOption{
		WithRequestLogging(config.LogRequests),
		WithResponseLogging(config.LogResponses),
		WithCurlLogging(config.LogCurl),
	}

	if config.DisableColorOutput {
		base = append(base, WithoutColor())
	}

	return NewRequestLogger(append(base, opts...)...)
}

func (l *RequestLogger) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

func (l *RequestLogger) status(code int) string {
	c := l.success

	switch {
	case code >= 500:
		c = l.serverError
	case code >= 400:
		c = l.clientError
	case code >= 300:
		c = l.redirect
	}

	return c.Sprint(code)
}

func (l *RequestLogger) logRequest(r *Request, req *http.Request, body []byte) {
	if l.requests {
		l.printf("[%s %s] request content-type=%s traceparent=%s\n", r.Method, r.Path, req.Header.Get("Content-Type"), req.Header.Get("Traceparent"))
	}

	if l.curl {
		l.printf("[%s %s] curl: %s\n", r.Method, r.Path, curlCommand(req, body))
	}
}

func (l *RequestLogger) logResponse(r *Request, resp *Response, traceParent string) {
	if l.requests {
		l.printf("[%s %s] status=%s duration=%s traceparent=%s\n", r.Method, r.Path, l.status(resp.StatusCode), resp.Duration, traceParent)
	}

	if l.responses && len(resp.body) > 0 {
		l.printf("[%s %s] response body: %s\n", r.Method, r.Path, string(resp.body))
	}
}

// logError logs a failed exchange with trace context.
func (l *RequestLogger) logError(r *Request, duration time.Duration, traceParent string, err error, context string) {
	l.printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", r.Method, r.Path, context, duration, traceParent, err)
	l.printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// curlCommand renders req as a shell-safe curl invocation.  Headers are
// sorted so the output is stable.
func curlCommand(req *http.Request, body []byte) string {
	args := []string{"curl", "-X", req.Method}

	keys := make([]string, 0, len(req.Header))
	for key := range req.Header {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		for _, value := range req.Header[key] {
			args = append(args, "-H", shellescape.Quote(key+": "+value))
		}
	}

	binary := len(body) > 0 && !utf8.Valid(body)

	switch {
	case binary:
		args = append(args, "--data-binary", "@-")
	case len(body) > 0:
		args = append(args, "--data-raw", shellescape.Quote(string(body)))
	}

	args = append(args, shellescape.Quote(req.URL.String()))

	if binary {
		args = append(args, fmt.Sprintf("# %d byte body omitted", len(body)))
	}

	return strings.Join(args, " ")
}
