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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sergi/go-diff/diffmatchpatch"
	"k8s.io/utils/ptr"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.Split(uuid.NewString(), "-")[0])
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// GenerateUsername returns a username the service accepts.
func GenerateUsername() string {
	return strings.ReplaceAll(generateRandomName("user"), "-", "_")
}

// GenerateID returns a positive identifier that survives a round trip
// through a float64, which the public service uses internally.
func GenerateID() int64 {
	u := uuid.New()

	return int64(binary.BigEndian.Uint64(u[:8])&(1<<53-1)) | 1
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	pet openapi.Pet
}

// NewPetPayload returns an available pet with a unique id and name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		pet: openapi.Pet{
			Id:        ptr.To(GenerateID()),
			Name:      generateRandomName("pet"),
			PhotoUrls: []string{"https://example.com/photos/test.jpg"},
			Status:    ptr.To(openapi.PetStatusAvailable),
		},
	}
}

func (b *PetPayloadBuilder) WithID(id int64) *PetPayloadBuilder {
	b.pet.Id = ptr.To(id)
	return b
}

func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.pet.Name = name
	return b
}

func (b *PetPayloadBuilder) WithStatus(status openapi.PetStatus) *PetPayloadBuilder {
	b.pet.Status = ptr.To(status)
	return b
}

func (b *PetPayloadBuilder) WithCategory(id int64, name string) *PetPayloadBuilder {
	b.pet.Category = &openapi.Category{Id: ptr.To(id), Name: ptr.To(name)}
	return b
}

// WithTag appends a tag.
func (b *PetPayloadBuilder) WithTag(id int64, name string) *PetPayloadBuilder {
	b.pet.Tags = append(b.pet.Tags, openapi.Tag{Id: ptr.To(id), Name: ptr.To(name)})
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() openapi.Pet {
	return b.pet
}

// NewOrderPayload returns a placed, incomplete order for petID.
func NewOrderPayload(petID int64, quantity int32) openapi.Order {
	return openapi.Order{
		Id:       ptr.To(GenerateID()),
		PetId:    ptr.To(petID),
		Quantity: ptr.To(quantity),
		Status:   ptr.To(openapi.OrderStatusPlaced),
		Complete: ptr.To(false),
	}
}

// CreatePetWithCleanup creates a pet and schedules its deletion.
func CreatePetWithCleanup(ctx context.Context, client *PetClient, pet openapi.Pet) *Response {
	resp, err := client.CreatePet(ctx, pet)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

	petID := ptr.Deref(pet.Id, 0)

	GinkgoWriter.Printf("Created pet with ID: %d\n", petID)

	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up pet: %d\n", petID)

		if _, err := client.DeletePet(ctx, petID); err != nil {
			GinkgoWriter.Printf("Warning: failed to delete pet %d: %v\n", petID, err)
		}
	})

	return resp
}

// PlaceOrderWithCleanup places an order and schedules its deletion.
func PlaceOrderWithCleanup(ctx context.Context, client *StoreClient, order openapi.Order) *Response {
	resp, err := client.PlaceOrder(ctx, order)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

	orderID := ptr.Deref(order.Id, 0)

	GinkgoWriter.Printf("Placed order with ID: %d\n", orderID)

	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up order: %d\n", orderID)

		if _, err := client.DeleteOrder(ctx, orderID); err != nil {
			GinkgoWriter.Printf("Warning: failed to delete order %d: %v\n", orderID, err)
		}
	})

	return resp
}

// CreateUserWithCleanup creates a user and schedules its deletion.
func CreateUserWithCleanup(ctx context.Context, client *UserClient, user openapi.User) *Response {
	resp, err := client.CreateUser(ctx, user)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

	username := ptr.Deref(user.Username, "")

	GinkgoWriter.Printf("Created user: %s\n", username)

	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up user: %s\n", username)

		if _, err := client.DeleteUser(ctx, username); err != nil {
			GinkgoWriter.Printf("Warning: failed to delete user %s: %v\n", username, err)
		}
	})

	return resp
}

// JSONDiff renders the difference between the JSON forms of want and got.
// It returns an empty string when they are equal.
func JSONDiff(want, got any) (string, error) {
	a, err := json.MarshalIndent(want, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling expected value: %w", err)
	}

	b, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling actual value: %w", err)
	}

	if string(a) == string(b) {
		return "", nil
	}

	dmp := diffmatchpatch.New()

	return dmp.DiffPrettyText(dmp.DiffMain(string(a), string(b), false)), nil
}
