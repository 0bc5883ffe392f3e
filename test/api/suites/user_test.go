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

var _ = Describe("User Management", func() {
	const (
		unknownUsername = "nonexistentuser123"
		invalidUsername = "@#$%^"
	)

	var user openapi.User

	BeforeEach(func() {
		var err error

		user, err = data.Users.TestUser()
		Expect(err).NotTo(HaveOccurred())
	})

	Context("When creating users", func() {
		It("should create a single user", func() {
			api.CreateUserWithCleanup(ctx, clients.Users, user)
		})

		DescribeTable("should create users in bulk",
			func(create func([]openapi.User) (*api.Response, error)) {
				another, err := data.Users.AnotherTestUser()
				Expect(err).NotTo(HaveOccurred())

				resp, err := create([]openapi.User{user, another})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

				for _, u := range []openapi.User{user, another} {
					username := ptr.Deref(u.Username, "")

					DeferCleanup(func() {
						_, _ = clients.Users.DeleteUser(ctx, username)
					})
				}
			},
			Entry("as a list", func(users []openapi.User) (*api.Response, error) {
				return clients.Users.CreateUsersWithList(ctx, users)
			}),
			Entry("as an array", func(users []openapi.User) (*api.Response, error) {
				return clients.Users.CreateUsersWithArray(ctx, users)
			}),
		)
	})

	Context("When retrieving a user", func() {
		It("should return the user by username", func() {
			api.CreateUserWithCleanup(ctx, clients.Users, user)

			resp, err := clients.Users.GetUserByUsername(ctx, *user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			var got openapi.User
			Expect(resp.Decode(&got)).To(Succeed())
			Expect(got.Username).To(Equal(user.Username))

			expectValid(resp)
		})

		It("should answer 404 for an unknown user", func() {
			resp, err := clients.Users.GetUserByUsername(ctx, unknownUsername)
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusNotFound, "error")).To(ContainSubstring("not found"))
		})

		It("should answer 400 for an invalid username", func() {
			resp, err := clients.Users.GetUserByUsername(ctx, invalidUsername)
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).To(ContainSubstring("Invalid"))
		})
	})

	Context("When updating a user", func() {
		var updated openapi.User

		BeforeEach(func() {
			var err error

			updated, err = data.Users.UpdatedUser()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should update an existing user", func() {
			api.CreateUserWithCleanup(ctx, clients.Users, user)

			resp, err := clients.Users.UpdateUser(ctx, *user.Username, updated)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())
		})

		It("should answer 404 for an unknown user", func() {
			resp, err := clients.Users.UpdateUser(ctx, unknownUsername, updated)
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusNotFound, "error")).To(ContainSubstring("not found"))
		})

		It("should answer 400 for an invalid username", func() {
			resp, err := clients.Users.UpdateUser(ctx, invalidUsername, updated)
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).To(ContainSubstring("Invalid"))
		})
	})

	Context("When deleting a user", func() {
		It("should delete an existing user", func() {
			resp, err := clients.Users.CreateUser(ctx, user)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			resp, err = clients.Users.DeleteUser(ctx, *user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			resp, err = clients.Users.GetUserByUsername(ctx, *user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("should answer 404 for an unknown user", func() {
			resp, err := clients.Users.DeleteUser(ctx, unknownUsername)
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusNotFound, "error")).To(ContainSubstring("not found"))
		})

		It("should answer 400 for an invalid username", func() {
			resp, err := clients.Users.DeleteUser(ctx, invalidUsername)
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).To(ContainSubstring("Invalid"))
		})
	})

	Context("When logging in", func() {
		It("should return session headers", func() {
			api.CreateUserWithCleanup(ctx, clients.Users, user)

			resp, err := clients.Users.Login(ctx, *user.Username, *user.Password)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			Expect(resp.Header.Get("X-Expires-After")).NotTo(BeEmpty())
			Expect(resp.Header.Get("X-Rate-Limit")).NotTo(BeEmpty())
		})

		It("should answer 400 for invalid credentials", func() {
			resp, err := clients.Users.Login(ctx, invalidUsername, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).To(ContainSubstring("Invalid"))
		})

		It("should log out", func() {
			resp, err := clients.Users.Logout(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())
		})
	})

	Context("When using a generated username", func() {
		It("should round trip the user", func() {
			generated := user
			generated.Username = ptr.To(api.GenerateUsername())

			api.CreateUserWithCleanup(ctx, clients.Users, generated)

			resp, err := clients.Users.GetUserByUsername(ctx, *generated.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

			email, err := resp.Str("email")
			Expect(err).NotTo(HaveOccurred())
			Expect(email).To(Equal(*user.Email))
		})
	})
})
