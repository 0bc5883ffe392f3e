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
	"math"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
	"github.com/nscaledev/petstore-api-tests/test/api"
)

var _ = Describe("Store Orders", func() {
	placeTestOrder := func() openapi.Order {
		order, err := data.Orders.TestOrder()
		Expect(err).NotTo(HaveOccurred())

		api.PlaceOrderWithCleanup(ctx, clients.Store, order)

		return order
	}

	Context("When reading the inventory", func() {
		It("should return counts by status", func() {
			resp, err := clients.Store.GetInventory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Body()).NotTo(BeEmpty())

			var inventory openapi.Inventory
			Expect(resp.Decode(&inventory)).To(Succeed())

			expectValid(resp)
		})
	})

	Context("When placing an order", func() {
		Describe("Given a valid order", func() {
			It("should echo the order back", func() {
				order, err := data.Orders.TestOrder()
				Expect(err).NotTo(HaveOccurred())

				resp := api.PlaceOrderWithCleanup(ctx, clients.Store, order)

				var created openapi.Order
				Expect(resp.Decode(&created)).To(Succeed())

				Expect(created.Id).To(Equal(order.Id))
				Expect(created.PetId).To(Equal(order.PetId))
				Expect(created.Quantity).To(Equal(order.Quantity))
				Expect(created.Status).To(Equal(order.Status))
				Expect(created.Complete).To(Equal(order.Complete))

				expectValid(resp)
			})

			It("should accept an order without a ship date", func() {
				order, err := data.Orders.TestOrder()
				Expect(err).NotTo(HaveOccurred())

				order.ShipDate = nil

				resp := api.PlaceOrderWithCleanup(ctx, clients.Store, order)

				var created openapi.Order
				Expect(resp.Decode(&created)).To(Succeed())
				Expect(created.ShipDate).To(BeNil())
			})

			It("should round trip a generated order", func() {
				order := api.NewOrderPayload(api.GenerateID(), 3)

				resp := api.PlaceOrderWithCleanup(ctx, clients.Store, order)

				var created openapi.Order
				Expect(resp.Decode(&created)).To(Succeed())

				diff, err := api.JSONDiff(order, created)
				Expect(err).NotTo(HaveOccurred())
				Expect(diff).To(BeEmpty(), diff)
			})
		})

		Describe("Given invalid order data", func() {
			It("should reject the order", func() {
				raw, err := data.Orders.RawInvalidOrder()
				Expect(err).NotTo(HaveOccurred())

				resp, err := clients.Store.PlaceOrderRaw(ctx, raw)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest), resp.String())
			})
		})
	})

	Context("When retrieving an order", func() {
		Describe("Given the order exists", func() {
			It("should return the order", func() {
				order := placeTestOrder()

				resp, err := clients.Store.GetOrderByID(ctx, *order.Id)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), resp.String())

				var retrieved openapi.Order
				Expect(resp.Decode(&retrieved)).To(Succeed())

				Expect(retrieved.Id).To(Equal(order.Id))
				Expect(retrieved.PetId).To(Equal(order.PetId))
				Expect(retrieved.Quantity).To(Equal(order.Quantity))
				Expect(retrieved.Status).To(Equal(order.Status))
				Expect(retrieved.Complete).To(Equal(order.Complete))

				expectValid(resp)
			})
		})

		Describe("Given the order does not exist", func() {
			DescribeTable("should answer 404",
				func(orderID int64) {
					resp, err := clients.Store.GetOrderByID(ctx, orderID)
					Expect(err).NotTo(HaveOccurred())
					Expect(expectEnvelope(resp, http.StatusNotFound, "error")).To(Equal("Order not found"))
				},
				Entry("for an unused id", int64(999999)),
				Entry("for the largest id", int64(math.MaxInt64)),
			)
		})

		Describe("Given an invalid order id", func() {
			DescribeTable("should answer 400",
				func(orderID int64) {
					resp, err := clients.Store.GetOrderByID(ctx, orderID)
					Expect(err).NotTo(HaveOccurred())
					Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).To(ContainSubstring("Invalid"))
				},
				Entry("for a negative id", int64(-1)),
				Entry("for zero", int64(0)),
			)
		})
	})

	Context("When deleting an order", func() {
		Describe("Given the order exists", func() {
			It("should delete it so a later read answers 404", func() {
				order := placeTestOrder()

				resp, err := clients.Store.DeleteOrder(ctx, *order.Id)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusOK, "unknown")).NotTo(BeEmpty())
				expectCode(resp, http.StatusOK)

				resp, err = clients.Store.GetOrderByID(ctx, *order.Id)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusNotFound, "error")).To(Equal("Order not found"))
			})
		})

		Describe("Given the order does not exist", func() {
			It("should answer 404", func() {
				resp, err := clients.Store.DeleteOrder(ctx, 999999)
				Expect(err).NotTo(HaveOccurred())
				Expect(expectEnvelope(resp, http.StatusNotFound, "error")).To(Equal("Order not found"))
			})
		})

		Describe("Given an invalid order id", func() {
			DescribeTable("should answer 400",
				func(orderID int64) {
					resp, err := clients.Store.DeleteOrder(ctx, orderID)
					Expect(err).NotTo(HaveOccurred())
					Expect(expectEnvelope(resp, http.StatusBadRequest, "error")).To(ContainSubstring("Invalid"))
				},
				Entry("for a negative id", int64(-1)),
				Entry("for zero", int64(0)),
			)
		})
	})
})
