/* Copyright 2026 Lectern Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controllers

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/server/app"
	"github.com/lectern/lectern/pkg/server/store"
)

// NewSections creates a new Sections controller
func NewSections(app *app.App) *Sections {
	return &Sections{app: app}
}

// Sections is a controller for the sections resource
type Sections struct {
	app *app.App
}

type createSectionPayload struct {
	Title string `json:"title"`
}

// Create handles POST /sections
func (c *Sections) Create(w http.ResponseWriter, r *http.Request) {
	var payload createSectionPayload
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := c.app.Sections.Create(store.NewSection{Title: payload.Title}); err != nil {
		doError(w, "creating section", err, "failed to create section", http.StatusInternalServerError)
		return
	}

	respondMessage(w, http.StatusCreated, "created")
}

// Index handles GET /sections
func (c *Sections) Index(w http.ResponseWriter, r *http.Request) {
	var filter store.SectionFilter
	if err := parseQuery(r, &filter); err != nil {
		doError(w, "parsing query", err, "invalid query", http.StatusBadRequest)
		return
	}

	rows, err := c.app.Sections.GetMany(&filter)
	if err != nil {
		doError(w, "fetching sections", err, "failed to fetch sections", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// Show handles GET /sections/{id}
func (c *Sections) Show(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	row, err := c.app.Sections.GetOne(&store.SectionFilter{ID: &id})
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, "section not found", http.StatusNotFound)
		return
	} else if err != nil {
		doError(w, "fetching section", err, "failed to fetch section", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, row)
}

// Update handles PUT /sections/{id}
func (c *Sections) Update(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	var patch store.SectionPatch
	if err := parseJSON(r, &patch); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	err = c.app.Sections.UpdateMany(patch, &store.SectionFilter{ID: &id})
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, "section not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNothingToUpdate):
		respondError(w, "nothing to update", http.StatusBadRequest)
	case err != nil:
		doError(w, "updating section", err, "failed to update section", http.StatusInternalServerError)
	default:
		respondMessage(w, http.StatusOK, "updated")
	}
}

// Delete handles DELETE /sections/{id}
func (c *Sections) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	if err := c.app.Sections.DeleteOne(&store.SectionFilter{ID: &id}); err != nil {
		doError(w, "deleting section", err, "failed to delete section", http.StatusInternalServerError)
		return
	}

	respondMessage(w, http.StatusOK, "deleted")
}

// Move handles POST /sections/move
func (c *Sections) Move(w http.ResponseWriter, r *http.Request) {
	var payload swapPayload
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	err := c.app.Sections.Swap(payload.FirstID, payload.SecondID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, "section not found", http.StatusNotFound)
	case err != nil:
		doError(w, "moving section", err, "failed to move section", http.StatusInternalServerError)
	default:
		respondMessage(w, http.StatusOK, "moved")
	}
}
