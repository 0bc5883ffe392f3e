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

package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// Route patterns, relative to the base URL.  These must match the service
// contract exactly.
const (
	RoutePet            = "/pet"
	RoutePetByID        = "/pet/{petId}"
	RoutePetUploadImage = "/pet/{petId}/uploadImage"
	RoutePetsByStatus   = "/pet/findByStatus"
	RoutePetsByTags     = "/pet/findByTags"
	RouteInventory      = "/store/inventory"
	RouteOrder          = "/store/order"
	RouteOrderByID      = "/store/order/{orderId}"
	RouteUser           = "/user"
	RouteUsersWithList  = "/user/createWithList"
	RouteUsersWithArray = "/user/createWithArray"
	RouteUserByName     = "/user/{username}"
	RouteLogin          = "/user/login"
	RouteLogout         = "/user/logout"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// pathParam renders a path parameter in simple style.
func pathParam(name string, value any) string {
	s, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return url.PathEscape(fmt.Sprint(value))
	}

	return s
}

// queryParam renders an exploded form style query parameter.
func queryParam(name string, value any) url.Values {
	s, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err == nil {
		if values, err := url.ParseQuery(s); err == nil {
			return values
		}
	}

	values := url.Values{}

	switch t := value.(type) {
	case []string:
		values[name] = t
	default:
		values.Set(name, fmt.Sprint(value))
	}

	return values
}

func expand(route, name, value string) string {
	return strings.Replace(route, "{"+name+"}", value, 1)
}

// Pet endpoints.
func (e *Endpoints) Pet() string {
	return RoutePet
}

func (e *Endpoints) PetByID(petID int64) string {
	return expand(RoutePetByID, "petId", pathParam("petId", petID))
}

func (e *Endpoints) PetUploadImage(petID int64) string {
	return expand(RoutePetUploadImage, "petId", pathParam("petId", petID))
}

func (e *Endpoints) PetsByStatus() string {
	return RoutePetsByStatus
}

func (e *Endpoints) PetsByTags() string {
	return RoutePetsByTags
}

func (e *Endpoints) StatusQuery(statuses ...string) url.Values {
	return queryParam("status", statuses)
}

func (e *Endpoints) TagsQuery(tags ...string) url.Values {
	return queryParam("tags", tags)
}

// Store endpoints.
func (e *Endpoints) Inventory() string {
	return RouteInventory
}

func (e *Endpoints) Order() string {
	return RouteOrder
}

func (e *Endpoints) OrderByID(orderID int64) string {
	return expand(RouteOrderByID, "orderId", pathParam("orderId", orderID))
}

// User endpoints.
func (e *Endpoints) User() string {
	return RouteUser
}

func (e *Endpoints) UsersWithList() string {
	return RouteUsersWithList
}

func (e *Endpoints) UsersWithArray() string {
	return RouteUsersWithArray
}

// UserByName leaves validation to the service, any string is escaped and
// sent.
func (e *Endpoints) UserByName(username string) string {
	return expand(RouteUserByName, "username", pathParam("username", username))
}

func (e *Endpoints) Login() string {
	return RouteLogin
}

func (e *Endpoints) LoginQuery(username, password string) url.Values {
	values := queryParam("username", username)

	for k, vs := range queryParam("password", password) {
		values[k] = vs
	}

	return values
}

func (e *Endpoints) Logout() string {
	return RouteLogout
}

