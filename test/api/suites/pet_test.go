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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
	"github.com/nscaledev/petstore-api-tests/test/api"
)

var _ = Describe("Pet Management", func() {
	Context("When creating a pet", func() {
		It("should return the pet as stored", func() {
			pet := api.NewPetPayload().
				WithCategory(1, "Dogs").
				WithTag(1, "friendly").
				Build()

			resp := api.CreatePetWithCleanup(ctx, clients.Pets, pet)

			var created openapi.Pet
			Expect(resp.Decode(&created)).To(Succeed())

			diff, err := api.JSONDiff(pet, created)
			Expect(err).NotTo(HaveOccurred())
			Expect(diff).To(BeEmpty(), diff)

			expectValid(resp)
		})
	})

	Context("When updating a pet with form data", func() {
		It("should change the name and status", func() {
			pet := api.NewPetPayload().Build()
			api.CreatePetWithCleanup(ctx, clients.Pets, pet)

			resp, err := clients.Pets.UpdatePetWithForm(ctx, *pet.Id, "renamed", string(openapi.PetStatusPending))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			resp, err = clients.Pets.GetPetByID(ctx, *pet.Id)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			name, err := resp.Str("name")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("renamed"))

			status, err := resp.Str("status")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(string(openapi.PetStatusPending)))
		})
	})

	Context("When finding pets", func() {
		Describe("Given a status filter", func() {
			It("should only return pets in that status", func() {
				pet := api.NewPetPayload().WithStatus(openapi.PetStatusSold).Build()
				api.CreatePetWithCleanup(ctx, clients.Pets, pet)

				resp, err := clients.Pets.FindPetsByStatus(ctx, openapi.PetStatusSold)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

				var pets []openapi.Pet
				Expect(resp.Decode(&pets)).To(Succeed())

				ids := make([]int64, 0, len(pets))
				for _, p := range pets {
					Expect(p.Status).To(Equal(ptr.To(openapi.PetStatusSold)))
					ids = append(ids, ptr.Deref(p.Id, 0))
				}

				Expect(ids).To(ContainElement(*pet.Id))

				expectValid(resp)
			})
		})

		Describe("Given a tag filter", func() {
			It("should return pets carrying the tag", func() {
				tag := api.GenerateTestID()

				pet := api.NewPetPayload().WithTag(api.GenerateID(), tag).Build()
				api.CreatePetWithCleanup(ctx, clients.Pets, pet)

				resp, err := clients.Tags.FindPetsByTags(ctx, tag)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

				id, err := resp.Int64("0.id")
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(*pet.Id))
			})
		})
	})

	Context("When reading a pet that does not exist", func() {
		It("should answer 404", func() {
			resp, err := clients.Pets.GetPetByID(ctx, api.GenerateID())
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusNotFound, "error")).To(Equal("Pet not found"))
		})
	})
})
