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

package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/nscaledev/petstore-api-tests/pkg/codec"
)

var (
	// ErrScenarioNotFound is returned for a scenario key absent from a document.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrMalformedDocument means the document is not a JSON object keyed by
	// scenario name.
	ErrMalformedDocument = errors.New("fixture document must be a JSON object keyed by scenario name")
)

// ScenarioError names the domain and key of a failed lookup.
type ScenarioError struct {
	Domain string
	Key    string
}

func (e *ScenarioError) Error() string {
	return fmt.Sprintf("%s fixture %q: %v", e.Domain, e.Key, ErrScenarioNotFound)
}

func (e *ScenarioError) Unwrap() error {
	return ErrScenarioNotFound
}

// Document is a parsed fixture file.  It is never written after parsing, so
// any number of goroutines may read from it.
type Document struct {
	domain     string
	entries    map[string]json.RawMessage
	serializer codec.Serializer
}

func parseDocument(domain string, data []byte, serializer codec.Serializer) (*Document, error) {
	var entries map[string]json.RawMessage

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if entries == nil {
		return nil, ErrMalformedDocument
	}

	return &Document{
		domain:     domain,
		entries:    entries,
		serializer: serializer,
	}, nil
}

// Domain is the entity domain the document belongs to, e.g. "orders".
func (d *Document) Domain() string {
	return d.domain
}

// Keys returns the scenario names, sorted.
func (d *Document) Keys() []string {
	return slices.Sorted(maps.Keys(d.entries))
}

func (d *Document) Has(key string) bool {
	_, ok := d.entries[key]

	return ok
}

func (d *Document) lookup(key string) (json.RawMessage, error) {
	entry, ok := d.entries[key]
	if !ok {
		return nil, &ScenarioError{Domain: d.domain, Key: key}
	}

	return entry, nil
}

// Raw returns the scenario exactly as written in the file, whitespace and
// field order included.
func (d *Document) Raw(key string) (string, error) {
	entry, err := d.lookup(key)
	if err != nil {
		return "", err
	}

	return string(entry), nil
}

// Decode converts the scenario into v with the document's serializer.
func (d *Document) Decode(key string, v any) error {
	entry, err := d.lookup(key)
	if err != nil {
		return err
	}

	if err := d.serializer.Unmarshal(entry, v); err != nil {
		return fmt.Errorf("%s fixture %q: %w", d.domain, key, err)
	}

	return nil
}
