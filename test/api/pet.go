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
	"net/url"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

// Upload is the image sent as the "file" part of an upload.
type Upload struct {
	Filename string
	Content  []byte
}

// UploadFromPath reads an upload from disk.
func UploadFromPath(path string) (Upload, error) {
	file, err := FileFromPath("file", path)
	if err != nil {
		return Upload{}, err
	}

	return Upload{Filename: file.Filename, Content: file.Content}, nil
}

// PetClient covers the /pet resource family.
type PetClient struct {
	client    *Client
	endpoints *Endpoints
}

func NewPetClient(client *Client) *PetClient {
	return &PetClient{
		client:    client,
		endpoints: NewEndpoints(),
	}
}

func (c *PetClient) GetPetByID(ctx context.Context, petID int64) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RoutePetByID, c.endpoints.PetByID(petID))
}

func (c *PetClient) GetPetByIDWithAPIKey(ctx context.Context, petID int64, apiKey string) (*Response, error) {
	return c.client.do(ctx, http.MethodGet, RoutePetByID, c.endpoints.PetByID(petID), WithAPIKey(apiKey))
}

func (c *PetClient) CreatePet(ctx context.Context, pet openapi.Pet) (*Response, error) {
	return c.client.do(ctx, http.MethodPost, RoutePet, c.endpoints.Pet(), WithJSONBody(pet))
}

func (c *PetClient) UpdatePet(ctx context.Context, pet openapi.Pet) (*Response, error) {
	return c.client.do(ctx, http.MethodPut, RoutePet, c.endpoints.Pet(), WithJSONBody(pet))
}

func (c *PetClient) DeletePet(ctx context.Context, petID int64) (*Response, error) {
	return c.client.do(ctx, http.MethodDelete, RoutePetByID, c.endpoints.PetByID(petID))
}

func (c *PetClient) DeletePetWithAPIKey(ctx context.Context, petID int64, apiKey string) (*Response, error) {
	return c.client.do(ctx, http.MethodDelete, RoutePetByID, c.endpoints.PetByID(petID), WithAPIKey(apiKey))
}

func (c *PetClient) DeletePetWithOAuth(ctx context.Context, petID int64, token string) (*Response, error) {
	return c.client.do(ctx, http.MethodDelete, RoutePetByID, c.endpoints.PetByID(petID), WithBearerToken(token))
}

// FindPetsByStatus sends each status as a repeated status query parameter.
func (c *PetClient) FindPetsByStatus(ctx context.Context, statuses ...openapi.PetStatus) (*Response, error) {
	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = string(status)
	}

	return c.client.do(ctx, http.MethodGet, RoutePetsByStatus, c.endpoints.PetsByStatus(), WithQuery(c.endpoints.StatusQuery(values...)))
}

// UpdatePetWithForm posts name and status form encoded.
func (c *PetClient) UpdatePetWithForm(ctx context.Context, petID int64, name, status string) (*Response, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("status", status)

	return c.client.do(ctx, http.MethodPost, RoutePetByID, c.endpoints.PetByID(petID), WithFormBody(form))
}

// UploadImageWithOAuth posts additionalMetadata and the image as multipart
// form data.
func (c *PetClient) UploadImageWithOAuth(ctx context.Context, petID int64, metadata string, image Upload, token string) (*Response, error) {
	fields := []MultipartField{
		{Name: "additionalMetadata", Value: metadata},
	}

	files := []MultipartFile{
		{Field: "file", Filename: image.Filename, Content: image.Content},
	}

	return c.client.do(ctx, http.MethodPost, RoutePetUploadImage, c.endpoints.PetUploadImage(petID), WithMultipartBody(fields, files), WithBearerToken(token))
}

// AddPetWithOAuth sends pet verbatim, so malformed payloads reach the
// service unchanged.
func (c *PetClient) AddPetWithOAuth(ctx context.Context, pet, token string) (*Response, error) {
	return c.client.do(ctx, http.MethodPost, RoutePet, c.endpoints.Pet(), WithRawBody(pet), WithBearerToken(token))
}

func (c *PetClient) UpdatePetWithOAuth(ctx context.Context, pet, token string) (*Response, error) {
	return c.client.do(ctx, http.MethodPut, RoutePet, c.endpoints.Pet(), WithRawBody(pet), WithBearerToken(token))
}
