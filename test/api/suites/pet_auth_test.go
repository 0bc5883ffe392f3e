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

	"github.com/nscaledev/petstore-api-tests/test/api"
	"github.com/nscaledev/petstore-api-tests/test/fake"
	"github.com/nscaledev/petstore-api-tests/test/fixtures"
)

var _ = Describe("Pet Authentication", func() {
	const petID = fake.SeedPetID

	var image api.Upload

	BeforeEach(func() {
		content, err := data.File(fixtures.UploadImageFile)
		Expect(err).NotTo(HaveOccurred())

		image = api.Upload{Filename: fixtures.UploadImageFile, Content: content}
	})

	Context("When deleting a pet with OAuth2", func() {
		Describe("Given a valid token", func() {
			It("should delete the pet", func() {
				resp, err := clients.Pets.DeletePetWithOAuth(ctx, petID, config.OAuthToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusOK, "unknown")).NotTo(BeEmpty())
				expectCode(resp, http.StatusOK)
			})
		})

		Describe("Given an invalid token", func() {
			It("should answer 401", func() {
				resp, err := clients.Pets.DeletePetWithOAuth(ctx, petID, config.InvalidOAuthToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusUnauthorized, "error")).To(ContainSubstring("Invalid"))
				expectCode(resp, http.StatusUnauthorized)
			})
		})
	})

	Context("When uploading an image with OAuth2", func() {
		Describe("Given a valid token and image", func() {
			It("should accept the upload", func() {
				resp, err := clients.Pets.UploadImageWithOAuth(ctx, petID, "test image", image, config.OAuthToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())
				expectCode(resp, http.StatusOK)

				kind, err := resp.Str("type")
				Expect(err).NotTo(HaveOccurred())
				Expect(kind).NotTo(BeEmpty())

				message, err := resp.Str("message")
				Expect(err).NotTo(HaveOccurred())
				Expect(message).To(ContainSubstring("uploaded"))
			})
		})

		Describe("Given an invalid token", func() {
			It("should answer 401", func() {
				resp, err := clients.Pets.UploadImageWithOAuth(ctx, petID, "test image", image, config.InvalidOAuthToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusUnauthorized, "error")).To(ContainSubstring("Invalid"))
				expectCode(resp, http.StatusUnauthorized)
			})
		})

		Describe("Given a file that is not an image", func() {
			It("should answer 400", func() {
				content, err := data.File(fixtures.UploadTextFile)
				Expect(err).NotTo(HaveOccurred())

				text := api.Upload{Filename: fixtures.UploadTextFile, Content: content}

				resp, err := clients.Pets.UploadImageWithOAuth(ctx, petID, "invalid image", text, config.OAuthToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).NotTo(BeEmpty())
				expectCode(resp, http.StatusBadRequest)
			})
		})
	})

	Context("When reading a pet with an API key", func() {
		Describe("Given a valid key", func() {
			It("should return the pet", func() {
				resp, err := clients.Pets.GetPetByIDWithAPIKey(ctx, petID, config.APIKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

				id, err := resp.Int64("id")
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(BeNumerically(">", 0))

				name, err := resp.Str("name")
				Expect(err).NotTo(HaveOccurred())
				Expect(name).NotTo(BeEmpty())

				expectValid(resp)
			})
		})

		Describe("Given an invalid key", func() {
			It("should answer 401", func() {
				resp, err := clients.Pets.GetPetByIDWithAPIKey(ctx, petID, config.InvalidAPIKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusUnauthorized, "error")).To(ContainSubstring("Invalid"))
				expectCode(resp, http.StatusUnauthorized)
			})
		})
	})

	Context("When writing a pet with OAuth2", func() {
		It("should add a new pet", func() {
			raw, err := data.Pets.TestPet()
			Expect(err).NotTo(HaveOccurred())

			resp, err := clients.Pets.AddPetWithOAuth(ctx, raw, config.OAuthToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			id, err := resp.Int64("id")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))

			name, err := resp.Str("name")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("test pet"))

			expectValid(resp)
		})

		It("should update a pet", func() {
			raw, err := data.Pets.UpdatedPet()
			Expect(err).NotTo(HaveOccurred())

			resp, err := clients.Pets.UpdatePetWithOAuth(ctx, raw, config.OAuthToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			id, err := resp.Int64("id")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))

			name, err := resp.Str("name")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("updated pet"))
		})

		It("should reject a malformed pet", func() {
			raw, err := data.Pets.InvalidPet()
			Expect(err).NotTo(HaveOccurred())

			resp, err := clients.Pets.AddPetWithOAuth(ctx, raw, config.OAuthToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).NotTo(BeEmpty())
			expectCode(resp, http.StatusBadRequest)
		})
	})
})
