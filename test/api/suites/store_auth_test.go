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
)

var _ = Describe("Store Authentication", func() {
	Context("When reading the inventory", func() {
		Describe("Given a valid API key", func() {
			It("should return the inventory and advertise the auth headers", func() {
				resp, err := clients.Store.GetInventoryWithAPIKey(ctx, config.InventoryAPIKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())
				Expect(resp.Body()).NotTo(BeEmpty())

				allowed := resp.Header.Get("Access-Control-Allow-Headers")
				Expect(allowed).To(ContainSubstring("Content-Type"))
				Expect(allowed).To(ContainSubstring("api_key"))
				Expect(allowed).To(ContainSubstring("Authorization"))
			})
		})

		Describe("Given an invalid API key", func() {
			It("should answer 401", func() {
				resp, err := clients.Store.GetInventoryWithAPIKey(ctx, config.InvalidAPIKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusUnauthorized, "error")).To(ContainSubstring("Invalid"))
			})
		})

		Describe("Given no credentials", func() {
			It("should return the inventory", func() {
				resp, err := clients.Store.GetInventory(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())
				Expect(resp.Header.Get("Access-Control-Allow-Headers")).To(ContainSubstring("api_key"))
			})
		})
	})
})
