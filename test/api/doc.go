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

// Package api provides the HTTP client used by the pet-store integration
// tests.
//
// # Request Templates
//
// Every resource family (pets, store, users, tags) gets its own Client built
// from an immutable RequestTemplate holding the base URL, the default
// content type and the serializer used for typed bodies.  Operations are
// methods on the resource clients; each one performs exactly one HTTP call
// and returns a Response whatever the status code.  Deciding whether a 400
// or a 404 is the right answer is the test's job, not the client's, so the
// only errors returned are local encoding failures and transport failures.
//
// Authentication variants (API key header, bearer token, form encoded and
// multipart bodies) are separate, explicitly named operations because the
// service defines a different request shape for each.
//
// Inputs are never validated locally.  Negative identifiers and malformed
// usernames are sent as given, the service is the source of truth for what
// is invalid.
//
// # Test-Specific Features
//
// The client includes features tailored for integration testing:
//   - W3C trace context headers on every request for log correlation
//   - Request, response and curl reproduction logging to GinkgoWriter
//   - Per-route request counters and latency histograms
//   - Optional validation of responses against the service contract
//   - Direct access to status codes, headers and typed body fields
package api
