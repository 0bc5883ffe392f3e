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
)

// TagClient covers tag lookups.  Tags have no endpoints of their own, they
// are searched through the pets carrying them.
type TagClient struct {
	client    *Client
	endpoints *Endpoints
}

func NewTagClient(client *Client) *TagClient {
	return &TagClient{
		client:    client,
		endpoints: NewEndpoints(),
	}
}

func (c *TagClient) FindPetsByTags(ctx context.Context, tags ...string) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RoutePetsByTags, c.endpoints.PetsByTags(), WithQuery(c.endpoints.TagsQuery(tags...)))
}
