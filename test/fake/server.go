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

// Package fake is an in-memory twin of the public pet-store service.  It
// answers with the same paths, status codes and {code,type,message}
// envelopes, so the suites can run without network access.
package fake

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"k8s.io/utils/ptr"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

// BasePath is where the API is mounted, matching the public service.
const BasePath = "/v2"

const (
	// SeedPetID is always present after New and Reset.
	SeedPetID = 1

	allowedHeaders = "Content-Type, api_key, Authorization"
)

type Option func(*Server)

// WithAPIKeys replaces the accepted api_key header values.
func WithAPIKeys(keys ...string) Option {
	return func(s *Server) {
		s.apiKeys = set(keys)
	}
}

// WithOAuthTokens replaces the accepted bearer tokens.
func WithOAuthTokens(tokens ...string) Option {
	return func(s *Server) {
		s.tokens = set(tokens)
	}
}

func set(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}

	return out
}

// Server holds the twin's state.  It is safe for concurrent use.
type Server struct {
	lock   sync.Mutex
	pets   map[int64]openapi.Pet
	orders map[int64]openapi.Order
	users  map[string]openapi.User
	nextID int64

	apiKeys map[string]bool
	tokens  map[string]bool

	router chi.Router
}

func New(opts ...Option) *Server {
	s := &Server{
		apiKeys: set([]string{"special-key", "api-key"}),
		tokens:  set([]string{"test:abc123"}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Reset()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Access-Control-Allow-Origin", "*"))
	r.Use(middleware.SetHeader("Access-Control-Allow-Methods", "GET, POST, DELETE, PUT"))
	r.Use(middleware.SetHeader("Access-Control-Allow-Headers", allowedHeaders))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route(BasePath, func(r chi.Router) {
		r.Use(s.authenticate)
		s.petRoutes(r)
		s.storeRoutes(r)
		s.userRoutes(r)
	})

	s.router = r

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Reset drops everything written since New and reseeds pet 1.
func (s *Server) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.pets = map[int64]openapi.Pet{
		SeedPetID: {
			Id:        ptr.To[int64](SeedPetID),
			Category:  &openapi.Category{Id: ptr.To[int64](1), Name: ptr.To("Dogs")},
			Name:      "doggie",
			PhotoUrls: []string{"https://example.com/photos/doggie.jpg"},
			Tags:      []openapi.Tag{{Id: ptr.To[int64](1), Name: ptr.To("friendly")}},
			Status:    ptr.To(openapi.PetStatusAvailable),
		},
	}
	s.orders = map[int64]openapi.Order{}
	s.users = map[string]openapi.User{}
	s.nextID = 1000
}

// allocateID must be called with the lock held.
func (s *Server) allocateID() int64 {
	s.nextID++

	return s.nextID
}

// authenticate rejects requests carrying credentials it does not know.
// Requests without credentials pass, as they do upstream.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if values := r.Header.Values("api_key"); len(values) > 0 && !s.apiKeys[values[0]] {
			writeError(w, http.StatusUnauthorized, http.StatusUnauthorized, "Invalid API key")
			return
		}

		if header := r.Header.Get("Authorization"); header != "" {
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || !s.tokens[token] {
				writeError(w, http.StatusUnauthorized, http.StatusUnauthorized, "Invalid token")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// pathParam returns the decoded path parameter, falling back to the raw
// value when it is not valid escaping.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)

	value, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError writes the service's envelope.  The envelope code is not
// always the HTTP status, lookups that miss answer 404 with code 1.
func writeError(w http.ResponseWriter, status int, code int32, message string) {
	writeJSON(w, status, openapi.APIResponse{
		Code:    ptr.To(code),
		Type:    ptr.To("error"),
		Message: ptr.To(message),
	})
}

func writeOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, openapi.APIResponse{
		Code:    ptr.To[int32](http.StatusOK),
		Type:    ptr.To("unknown"),
		Message: ptr.To(message),
	})
}

// decode reads a JSON body, 400ing on anything that does not fit v.
func decode(w http.ResponseWriter, r *http.Request, v any, message string) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, message)
		return false
	}

	return true
}
