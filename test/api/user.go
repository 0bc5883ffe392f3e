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

type UserClient struct {
	client    *Client
	endpoints *Endpoints
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{
		client:    client,
		endpoints: NewEndpoints(),
	}
}

func (c *UserClient) CreateUser(ctx context.Context, user openapi.User) (*Response, error) {
	return c.client.do(ctx, http.MethodPost, RouteUser, c.endpoints.User(), WithJSONBody(user))
}

func (c *UserClient) CreateUsersWithList(ctx context.Context, users []openapi.User) (*Response, error) {
	return c.client.do(ctx, http.MethodPost, RouteUsersWithList, c.endpoints.UsersWithList(), WithJSONBody(users))
}

func (c *UserClient) CreateUsersWithArray(ctx context.Context, users []openapi.User) (*Response, error) {
	return c.client.do(ctx, http.MethodPost, RouteUsersWithArray, c.endpoints.UsersWithArray(), WithJSONBody(users))
}

func (c *UserClient) GetUserByUsername(ctx context.Context, username string) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RouteUserByName, c.endpoints.UserByName(username))
}

func (c *UserClient) UpdateUser(ctx context.Context, username string, user openapi.User) (*Response, error) {
	return c.client.do(ctx, http.MethodPut, RouteUserByName, c.endpoints.UserByName(username), WithJSONBody(user))
}

func (c *UserClient) DeleteUser(ctx context.Context, username string) (*Response, error) {
	return c.client.do(ctx, http.MethodDelete, RouteUserByName, c.endpoints.UserByName(username))
}

// Login passes the credentials as query parameters.  The session details
// come back in the X-Expires-After and X-Rate-Limit headers.
func (c *UserClient) Login(ctx context.Context, username, password string) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RouteLogin, c.endpoints.Login(), WithQuery(c.endpoints.LoginQuery(username, password)))
}

func (c *UserClient) Logout(ctx context.Context) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RouteLogout, c.endpoints.Logout())
}
