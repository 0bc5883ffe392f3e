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

// Package openapi holds the wire types of the pet-store API and the
// contract document they are derived from.
package openapi

// PetStatus is the sale status of a pet.
type PetStatus string

const (
	PetStatusAvailable PetStatus = "available"
	PetStatusPending   PetStatus = "pending"
	PetStatusSold      PetStatus = "sold"
)

// OrderStatus is the fulfilment status of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Category groups pets.
type Category struct {
	Id   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Tag labels a pet.
type Tag struct {
	Id   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Pet is a pet for sale.
type Pet struct {
	Id        *int64     `json:"id,omitempty"`
	Category  *Category  `json:"category,omitempty"`
	Name      string     `json:"name"`
	PhotoUrls []string   `json:"photoUrls"`
	Tags      []Tag      `json:"tags,omitempty"`
	Status    *PetStatus `json:"status,omitempty"`
}

// Order is a purchase order for a pet.
type Order struct {
	Id       *int64       `json:"id,omitempty"`
	PetId    *int64       `json:"petId,omitempty"`
	Quantity *int32       `json:"quantity,omitempty"`
	ShipDate *DateTime    `json:"shipDate,omitempty"`
	Status   *OrderStatus `json:"status,omitempty"`
	Complete *bool        `json:"complete,omitempty"`
}

// User is a store customer.
type User struct {
	Id         *int64  `json:"id,omitempty"`
	Username   *string `json:"username,omitempty"`
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	UserStatus *int32  `json:"userStatus,omitempty"`
}

// APIResponse is the envelope the service answers with for operations that
// have no resource to return, and for every error.
type APIResponse struct {
	Code    *int32  `json:"code,omitempty"`
	Type    *string `json:"type,omitempty"`
	Message *string `json:"message,omitempty"`
}

// Inventory maps pet status to the number of pets in it.
type Inventory map[string]int32
