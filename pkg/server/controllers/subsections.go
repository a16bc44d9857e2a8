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

// NewSubsections creates a new Subsections controller
func NewSubsections(app *app.App) *Subsections {
	return &Subsections{app: app}
}

// Subsections is a controller for the subsections resource
type Subsections struct {
	app *app.App
}

type createSubsectionPayload struct {
	Title     string `json:"title"`
	SectionID uint   `json:"section_id"`
}

// Create handles POST /subsections
func (c *Subsections) Create(w http.ResponseWriter, r *http.Request) {
	var payload createSubsectionPayload
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	form := store.NewSubsection{Title: payload.Title, SectionID: payload.SectionID}
	if err := c.app.Subsections.Create(form); err != nil {
		doError(w, "creating subsection", err, "failed to create subsection", http.StatusInternalServerError)
		return
	}

	respondMessage(w, http.StatusCreated, "created")
}

// Index handles GET /subsections
func (c *Subsections) Index(w http.ResponseWriter, r *http.Request) {
	var filter store.SubsectionFilter
	if err := parseQuery(r, &filter); err != nil {
		doError(w, "parsing query", err, "invalid query", http.StatusBadRequest)
		return
	}

	rows, err := c.app.Subsections.GetMany(&filter)
	if err != nil {
		doError(w, "fetching subsections", err, "failed to fetch subsections", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// Show handles GET /subsections/{id}
func (c *Subsections) Show(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	row, err := c.app.Subsections.GetOne(&store.SubsectionFilter{ID: &id})
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, "subsection not found", http.StatusNotFound)
		return
	} else if err != nil {
		doError(w, "fetching subsection", err, "failed to fetch subsection", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, row)
}

// Update handles PUT /subsections/{id}
func (c *Subsections) Update(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	var patch store.SubsectionPatch
	if err := parseJSON(r, &patch); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	err = c.app.Subsections.UpdateMany(patch, &store.SubsectionFilter{ID: &id})
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, "subsection not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNothingToUpdate):
		respondError(w, "nothing to update", http.StatusBadRequest)
	case err != nil:
		doError(w, "updating subsection", err, "failed to update subsection", http.StatusInternalServerError)
	default:
		respondMessage(w, http.StatusOK, "updated")
	}
}

// Delete handles DELETE /subsections/{id}
func (c *Subsections) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	if err := c.app.Subsections.DeleteOne(&store.SubsectionFilter{ID: &id}); err != nil {
		doError(w, "deleting subsection", err, "failed to delete subsection", http.StatusInternalServerError)
		return
	}

	respondMessage(w, http.StatusOK, "deleted")
}

// Move handles POST /subsections/move
func (c *Subsections) Move(w http.ResponseWriter, r *http.Request) {
	var payload swapPayload
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	err := c.app.Subsections.Swap(payload.FirstID, payload.SecondID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, "subsection not found", http.StatusNotFound)
	case errors.Is(err, store.ErrScopeMismatch):
		respondError(w, "cannot swap subsections from different sections", http.StatusBadRequest)
	case err != nil:
		doError(w, "moving subsection", err, "failed to move subsection", http.StatusInternalServerError)
	default:
		respondMessage(w, http.StatusOK, "moved")
	}
}
