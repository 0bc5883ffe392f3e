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

// Package fixtures loads named test scenarios from JSON files, one file per
// entity domain.  Files are bundled with the package; any fs.FS laid out
// the same way can be used instead.
//
// A scenario file is an object whose keys are scenario names:
//
//	{
//	  "testOrder": {"id": 1, "petId": 100, "quantity": 2, "status": "placed"},
//	  "invalidOrder": {"id": -1, "quantity": -5}
//	}
//
// Scenarios are decoded into the pet-store wire types, or returned as raw
// JSON when a test must send a body that typed encoding would reshape.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

//go:embed testdata
var testdata embed.FS

const (
	UsersFile  = "users.json"
	OrdersFile = "orders.json"
	PetsFile   = "pets.json"

	// UploadImageFile and UploadTextFile are payloads for image upload tests.
	UploadImageFile = "test.jpg"
	UploadTextFile  = "invalid.txt"
)

func embedded() fs.FS {
	sub, err := fs.Sub(testdata, "testdata")
	if err != nil {
		panic(err)
	}

	return sub
}

// Users serves user scenarios.
type Users struct {
	loader *Loader
}

func (u *Users) Loader() *Loader {
	return u.loader
}

func (u *Users) TestUser() (openapi.User, error) {
	return Scenario[openapi.User](u.loader, "testUser")
}

func (u *Users) AnotherTestUser() (openapi.User, error) {
	return Scenario[openapi.User](u.loader, "anotherTestUser")
}

func (u *Users) UpdatedUser() (openapi.User, error) {
	return Scenario[openapi.User](u.loader, "updatedUser")
}

// Orders serves order scenarios.
type Orders struct {
	loader *Loader
}

func (o *Orders) Loader() *Loader {
	return o.loader
}

func (o *Orders) TestOrder() (openapi.Order, error) {
	return Scenario[openapi.Order](o.loader, "testOrder")
}

func (o *Orders) UpdatedOrder() (openapi.Order, error) {
	return Scenario[openapi.Order](o.loader, "updatedOrder")
}

func (o *Orders) InvalidOrder() (openapi.Order, error) {
	return Scenario[openapi.Order](o.loader, "invalidOrder")
}

// RawInvalidOrder is the invalid order as written, for sending without a
// typed round trip.
func (o *Orders) RawInvalidOrder() (string, error) {
	return o.loader.Raw("invalidOrder")
}

// Pets serves pet scenarios.  Pet bodies are mostly sent verbatim, so the
// accessors return raw JSON; invalidPet cannot be decoded into a Pet at all.
type Pets struct {
	loader *Loader
}

func (p *Pets) Loader() *Loader {
	return p.loader
}

func (p *Pets) TestPet() (string, error) {
	return p.loader.Raw("testPet")
}

func (p *Pets) UpdatedPet() (string, error) {
	return p.loader.Raw("updatedPet")
}

func (p *Pets) InvalidPet() (string, error) {
	return p.loader.Raw("invalidPet")
}

func (p *Pets) TestPetValue() (openapi.Pet, error) {
	return Scenario[openapi.Pet](p.loader, "testPet")
}

func (p *Pets) UpdatedPetValue() (openapi.Pet, error) {
	return Scenario[openapi.Pet](p.loader, "updatedPet")
}

// Set is the full collection of fixture domains.  Construct one per suite
// and hand it to the specs that need it.
type Set struct {
	Users  *Users
	Orders *Orders
	Pets   *Pets

	files fs.FS
}

// New returns a set backed by the bundled testdata.
func New(opts ...Option) *Set {
	return NewFromFS(embedded(), opts...)
}

// NewFromFS returns a set reading users.json, orders.json and pets.json
// from the root of fsys.
func NewFromFS(fsys fs.FS, opts ...Option) *Set {
	return &Set{
		Users:  &Users{loader: NewLoader("users", fsys, UsersFile, opts...)},
		Orders: &Orders{loader: NewLoader("orders", fsys, OrdersFile, opts...)},
		Pets:   &Pets{loader: NewLoader("pets", fsys, PetsFile, opts...)},
		files:  fsys,
	}
}

// Preload loads every domain and reports all failures together.
func (s *Set) Preload() error {
	var errs []error

	for _, l := range []*Loader{s.Users.loader, s.Orders.loader, s.Pets.loader} {
		if _, err := l.Document(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// File returns a bundled non-JSON payload, such as an upload image.
func (s *Set) File(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.files, name)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file %s: %w", name, err)
	}

	return data, nil
}

//nolint:gochecknoglobals
var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the process-wide set over the bundled testdata.  It is
// created exactly once; prefer New when a suite can pass the set around.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = New()
	})

	return defaultSet
}
