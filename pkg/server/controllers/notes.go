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

// NewNotes creates a new Notes controller
func NewNotes(app *app.App) *Notes {
	return &Notes{app: app}
}

// Notes is a controller for the notes resource
type Notes struct {
	app *app.App
}

// Create handles POST /notes
func (c *Notes) Create(w http.ResponseWriter, r *http.Request) {
	var payload store.NewNote
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := c.app.Notes.Create(payload); err != nil {
		doError(w, "creating note", err, "failed to create note", http.StatusInternalServerError)
		return
	}

	respondMessage(w, http.StatusCreated, "created")
}

// Index handles GET /notes
func (c *Notes) Index(w http.ResponseWriter, r *http.Request) {
	var filter store.NoteFilter
	if err := parseQuery(r, &filter); err != nil {
		doError(w, "parsing query", err, "invalid query", http.StatusBadRequest)
		return
	}

	rows, err := c.app.Notes.GetMany(&filter)
	if err != nil {
		doError(w, "fetching notes", err, "failed to fetch notes", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// Show handles GET /notes/{id}
func (c *Notes) Show(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	row, err := c.app.Notes.GetOne(&store.NoteFilter{ID: &id})
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, "note not found", http.StatusNotFound)
		return
	} else if err != nil {
		doError(w, "fetching note", err, "failed to fetch note", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, row)
}

// Update handles PUT /notes/{id}
func (c *Notes) Update(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	var patch store.NotePatch
	if err := parseJSON(r, &patch); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	err = c.app.Notes.UpdateMany(patch, &store.NoteFilter{ID: &id})
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, "note not found", http.StatusNotFound)
	case errors.Is(err, store.ErrNothingToUpdate):
		respondError(w, "nothing to update", http.StatusBadRequest)
	case err != nil:
		doError(w, "updating note", err, "failed to update note", http.StatusInternalServerError)
	default:
		respondMessage(w, http.StatusOK, "updated")
	}
}

// Delete handles DELETE /notes/{id}
func (c *Notes) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r)
	if err != nil {
		doError(w, "parsing id", err, "invalid id", http.StatusBadRequest)
		return
	}

	if err := c.app.Notes.DeleteOne(&store.NoteFilter{ID: &id}); err != nil {
		doError(w, "deleting note", err, "failed to delete note", http.StatusInternalServerError)
		return
	}

	respondMessage(w, http.StatusOK, "deleted")
}

// Move handles POST /notes/move
func (c *Notes) Move(w http.ResponseWriter, r *http.Request) {
	var payload swapPayload
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	err := c.app.Notes.Swap(payload.FirstID, payload.SecondID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, "note not found", http.StatusNotFound)
	case errors.Is(err, store.ErrScopeMismatch):
		respondError(w, "cannot swap notes from different subsections", http.StatusBadRequest)
	case err != nil:
		doError(w, "moving note", err, "failed to move note", http.StatusInternalServerError)
	default:
		respondMessage(w, http.StatusOK, "moved")
	}
}
