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

	"github.com/lectern/lectern/pkg/server/app"
)

// NewRoot creates a new Root controller
func NewRoot(app *app.App) *Root {
	return &Root{app: app}
}

// Root serves the whole hierarchy in one response
type Root struct {
	app *app.App
}

// Index handles GET /
func (c *Root) Index(w http.ResponseWriter, r *http.Request) {
	tree, err := c.app.Tree()
	if err != nil {
		doError(w, "building tree", err, "failed to load", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, tree)
}
