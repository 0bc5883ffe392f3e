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

package api

import (
	"context"
	"net/http"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

// StoreClient covers inventory and orders.
type StoreClient struct {
	client    *Client
	endpoints *Endpoints
}

func NewStoreClient(client *Client) *StoreClient {
	return &StoreClient{
		client:    client,
		endpoints: NewEndpoints(),
	}
}

func (c *StoreClient) GetInventory(ctx context.Context) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RouteInventory, c.endpoints.Inventory())
}

func (c *StoreClient) GetInventoryWithAPIKey(ctx context.Context, apiKey string) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RouteInventory, c.endpoints.Inventory(), WithAPIKey(apiKey))
}

func (c *StoreClient) GetInventoryWithOAuth(ctx context.Context, token string) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RouteInventory, c.endpoints.Inventory(), WithBearerToken(token))
}

func (c *StoreClient) PlaceOrder(ctx context.Context, order openapi.Order) (*Response, error) {
	return c.client.do(ctx, http.MethodPost, RouteOrder, c.endpoints.Order(), WithJSONBody(order))
}

// PlaceOrderRaw sends order verbatim.
func (c *StoreClient) PlaceOrderRaw(ctx context.Context, order string) (*Response, error) {
	return c.client.do(ctx, http.MethodPost, RouteOrder, c.endpoints.Order(), WithRawBody(order))
}

// GetOrderByID sends orderID as given, including zero and negative values.
func (c *StoreClient) GetOrderByID(ctx context.Context, orderID int64) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RouteOrderByID, c.endpoints.OrderByID(orderID))
}

func (c *StoreClient) DeleteOrder(ctx context.Context, orderID int64) (*Response, error) {
	return c.client.do(ctx, http.MethodDelete, RouteOrderByID, c.endpoints.OrderByID(orderID))
}
