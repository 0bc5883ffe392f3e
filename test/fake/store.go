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

package fake

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"k8s.io/utils/ptr"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

func (s *Server) storeRoutes(r chi.Router) {
	r.Get("/store/inventory", s.getInventory)
	r.Post("/store/order", s.placeOrder)
	r.Get("/store/order/{orderId}", s.getOrder)
	r.Delete("/store/order/{orderId}", s.deleteOrder)
}

func (s *Server) getInventory(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	inventory := openapi.Inventory{}

	for _, pet := range s.pets {
		if pet.Status != nil {
			inventory[string(*pet.Status)]++
		}
	}

	writeJSON(w, http.StatusOK, inventory)
}

// validOrder mirrors the checks the public service applies on placement.
func validOrder(order openapi.Order) bool {
	if order.Id != nil && *order.Id < 0 {
		return false
	}

	if order.PetId != nil && *order.PetId <= 0 {
		return false
	}

	if order.Quantity != nil && *order.Quantity <= 0 {
		return false
	}

	if order.Status != nil && !order.Status.Valid() {
		return false
	}

	return true
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	var order openapi.Order

	if !decode(w, r, &order, "Invalid Order") {
		return
	}

	if !validOrder(order) {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid Order")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if order.Id == nil || *order.Id == 0 {
		order.Id = ptr.To(s.allocateID())
	}

	s.orders[*order.Id] = order

	writeJSON(w, http.StatusOK, order)
}

// orderID answers 400 for anything that is not a positive integer.
func orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(pathParam(r, "orderId"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}

	return id, true
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	order, ok := s.orders[id]
	if !ok {
		writeError(w, http.StatusNotFound, 1, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.orders[id]; !ok {
		writeError(w, http.StatusNotFound, 1, "Order not found")
		return
	}

	delete(s.orders, id)

	writeOK(w, strconv.FormatInt(id, 10))
}
