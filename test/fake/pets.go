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
	"cmp"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"k8s.io/utils/ptr"

	"github.com/nscaledev/petstore-api-tests/pkg/openapi"
)

const maxUploadSize = 10 << 20

func (s *Server) petRoutes(r chi.Router) {
	r.Post("/pet", s.addPet)
	r.Put("/pet", s.updatePet)
	r.Get("/pet/findByStatus", s.findPetsByStatus)
	r.Get("/pet/findByTags", s.findPetsByTags)
	r.Get("/pet/{petId}", s.getPet)
	r.Post("/pet/{petId}", s.updatePetWithForm)
	r.Delete("/pet/{petId}", s.deletePet)
	r.Post("/pet/{petId}/uploadImage", s.uploadImage)
}

func petID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(pathParam(r, "petId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}

	return id, true
}

// decodePet rejects bodies that do not fit the Pet shape or carry an
// unknown status.
func decodePet(w http.ResponseWriter, r *http.Request) (openapi.Pet, bool) {
	var pet openapi.Pet

	if !decode(w, r, &pet, "Invalid input") {
		return pet, false
	}

	if pet.Status != nil && !pet.Status.Valid() {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid input")
		return pet, false
	}

	return pet, true
}

func (s *Server) addPet(w http.ResponseWriter, r *http.Request) {
	pet, ok := decodePet(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if pet.Id == nil || *pet.Id == 0 {
		pet.Id = ptr.To(s.allocateID())
	}

	s.pets[*pet.Id] = pet

	writeJSON(w, http.StatusOK, pet)
}

// updatePet upserts, as the public service does.
func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	pet, ok := decodePet(w, r)
	if !ok {
		return
	}

	if pet.Id == nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.pets[*pet.Id] = pet

	writeJSON(w, http.StatusOK, pet)
}

// sortedPets must be called with the lock held.
func (s *Server) sortedPets(keep func(openapi.Pet) bool) []openapi.Pet {
	out := []openapi.Pet{}

	for _, pet := range s.pets {
		if keep(pet) {
			out = append(out, pet)
		}
	}

	slices.SortFunc(out, func(a, b openapi.Pet) int {
		return cmp.Compare(ptr.Deref(a.Id, 0), ptr.Deref(b.Id, 0))
	})

	return out
}

func (s *Server) findPetsByStatus(w http.ResponseWriter, r *http.Request) {
	statuses := r.URL.Query()["status"]

	for _, status := range statuses {
		if !openapi.PetStatus(status).Valid() {
			writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid status value")
			return
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.sortedPets(func(pet openapi.Pet) bool {
		return pet.Status != nil && slices.Contains(statuses, string(*pet.Status))
	}))
}

func (s *Server) findPetsByTags(w http.ResponseWriter, r *http.Request) {
	tags := r.URL.Query()["tags"]

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.sortedPets(func(pet openapi.Pet) bool {
		return slices.ContainsFunc(pet.Tags, func(tag openapi.Tag) bool {
			return tag.Name != nil && slices.Contains(tags, *tag.Name)
		})
	}))
}

func (s *Server) getPet(w http.ResponseWriter, r *http.Request) {
	id, ok := petID(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	pet, ok := s.pets[id]
	if !ok {
		writeError(w, http.StatusNotFound, 1, "Pet not found")
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) updatePetWithForm(w http.ResponseWriter, r *http.Request) {
	id, ok := petID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid input")
		return
	}

	status := r.PostForm.Get("status")
	if status != "" && !openapi.PetStatus(status).Valid() {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid input")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	pet, ok := s.pets[id]
	if !ok {
		writeError(w, http.StatusNotFound, 1, "Pet not found")
		return
	}

	if name := r.PostForm.Get("name"); name != "" {
		pet.Name = name
	}

	if status != "" {
		pet.Status = ptr.To(openapi.PetStatus(status))
	}

	s.pets[id] = pet

	writeOK(w, strconv.FormatInt(id, 10))
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	id, ok := petID(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.pets[id]; !ok {
		writeError(w, http.StatusNotFound, 1, "Pet not found")
		return
	}

	delete(s.pets, id)

	writeOK(w, strconv.FormatInt(id, 10))
}

// uploadImage accepts only payloads that sniff as images.
func (s *Server) uploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := petID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "No file supplied")
		return
	}

	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Unreadable file")
		return
	}

	if !strings.HasPrefix(http.DetectContentType(content), "image/") {
		writeError(w, http.StatusBadRequest, http.StatusBadRequest, "Invalid image format")
		return
	}

	s.lock.Lock()
	_, exists := s.pets[id]
	s.lock.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, 1, "Pet not found")
		return
	}

	writeOK(w, fmt.Sprintf("additionalMetadata: %s\nFile uploaded to ./%s, %d bytes", r.FormValue("additionalMetadata"), header.Filename, len(content)))
}
