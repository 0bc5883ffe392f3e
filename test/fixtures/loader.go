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
	"fmt"
	"io/fs"
	"sync"

	"github.com/nscaledev/petstore-api-tests/pkg/codec"
)

// LoadError means a fixture file could not be read or parsed.  It is
// cached: every later access to the same loader returns it again.
type LoadError struct {
	Domain string
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s fixtures from %s: %v", e.Domain, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Option func(*options)

type options struct {
	serializer codec.Serializer
}

// WithSerializer decodes scenarios with s instead of codec.JSON.
func WithSerializer(s codec.Serializer) Option {
	return func(o *options) {
		o.serializer = s
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		serializer: codec.JSON,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Loader reads one domain's fixture file the first time it is needed and
// keeps the result, success or failure, for the life of the loader.
type Loader struct {
	domain     string
	fsys       fs.FS
	path       string
	serializer codec.Serializer

	once sync.Once
	doc  *Document
	err  error
}

func NewLoader(domain string, fsys fs.FS, path string, opts ...Option) *Loader {
	o := newOptions(opts)

	return &Loader{
		domain:     domain,
		fsys:       fsys,
		path:       path,
		serializer: o.serializer,
	}
}

func (l *Loader) load() {
	data, err := fs.ReadFile(l.fsys, l.path)
	if err != nil {
		l.err = &LoadError{Domain: l.domain, Path: l.path, Err: err}
		return
	}

	doc, err := parseDocument(l.domain, data, l.serializer)
	if err != nil {
		l.err = &LoadError{Domain: l.domain, Path: l.path, Err: err}
		return
	}

	l.doc = doc
}

// Document returns the parsed file, loading it on first use.
func (l *Loader) Document() (*Document, error) {
	l.once.Do(l.load)

	return l.doc, l.err
}

// MustPreload loads the file now and panics if that fails.  Call it before
// specs run in parallel when a broken fixture should abort the whole run.
func (l *Loader) MustPreload() {
	if _, err := l.Document(); err != nil {
		panic(err)
	}
}

// Raw returns a scenario verbatim.
func (l *Loader) Raw(key string) (string, error) {
	doc, err := l.Document()
	if err != nil {
		return "", err
	}

	return doc.Raw(key)
}

// Scenario decodes the named scenario into a fresh T.  Nothing is cached
// beyond the parsed document, so each call returns an independent value.
func Scenario[T any](l *Loader, key string) (T, error) {
	var value T

	doc, err := l.Document()
	if err != nil {
		return value, err
	}

	if err := doc.Decode(key, &value); err != nil {
		return value, err
	}

	return value, nil
}
