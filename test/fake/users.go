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
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"k8s.io/utils/ptr"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

const (
	sessionLifetime = time.Hour
	rateLimit       = 5000
)

func (s *Server) userRoutes(r chi.Router) {
	r.Post("/user", s.createUser)
	r.Post("/user/createWithList", s.createUsers)
	r.Post("/user/createWithArray", s.createUsers)
	r.Get("/user/login", s.login)
	r.Get("/user/logout", s.logout)
	r.Get("/user/{username}", s.getUser)
	r.Put("/user/{username}", s.updateUser)
	r.Delete("/user/{username}", s.deleteUser)
}

func username(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := pathParam(r, "username")

	if err := openapi.ValidateUsername(name); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid username supplied")
		return "", false
	}

	return name, true
}

// storeUser must be called with the lock held.
func (s *Server) storeUser(user openapi.User) bool {
	name := ptr.Deref(user.Username, "")

	if openapi.ValidateUsername(name) != nil {
		return false
	}

	if user.Id == nil {
		user.Id = ptr.To(s.allocateID())
	}

	s.users[name] = user

	return true
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var user openapi.User

	if !decode(w, r, &user, "Invalid user") {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.storeUser(user) {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid username supplied")
		return
	}

	writeOK(w, strconv.FormatInt(ptr.Deref(s.users[*user.Username].Id, 0), 10))
}

func (s *Server) createUsers(w http.ResponseWriter, r *http.Request) {
	var users []openapi.User

	if !decode(w, r, &users, "Invalid user list") {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	for _, user := range users {
		if !s.storeUser(user) {
			writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid username supplied")
			return
		}
	}

	writeOK(w, "ok")
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	name, ok := username(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	user, ok := s.users[name]
	if !ok {
		writeError(w, http.StatusNotFound, 1, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	name, ok := username(w, r)
	if !ok {
		return
	}

	var user openapi.User

	if !decode(w, r, &user, "Invalid user") {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.users[name]; !ok {
		writeError(w, http.StatusNotFound, 1, "User not found")
		return
	}

	// The path names the record, the body cannot move it.
	user.Username = ptr.To(name)
	s.users[name] = user

	writeOK(w, strconv.FormatInt(ptr.Deref(user.Id, 0), 10))
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	name, ok := username(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.users[name]; !ok {
		writeError(w, http.StatusNotFound, 1, "User not found")
		return
	}

	delete(s.users, name)

	writeOK(w, name)
}

// login accepts any well formed username with a password, as the public
// service does.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("username")

	if openapi.ValidateUsername(name) != nil || query.Get("password") == "" {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid username/password supplied")
		return
	}

	w.Header().Set("X-Expires-After", time.Now().Add(sessionLifetime).UTC().Format(time.UnixDate))
	w.Header().Set("X-Rate-Limit", strconv.Itoa(rateLimit))

	writeOK(w, fmt.Sprintf("logged in user session:%d", time.Now().UnixNano()))
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	writeOK(w, "ok")
}
