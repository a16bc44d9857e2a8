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

	"github.com/lectern/lectern/pkg/server/assets"
)

// NewStatic creates a new Static controller
func NewStatic() *Static {
	return &Static{}
}

// Static serves the embedded web pages
type Static struct {
}

// Serve returns a handler serving the named embedded file with the
// given content type.
func (s *Static) Serve(name, contentType string) http.HandlerFunc {
	content := assets.MustGet(name)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(content)
	}
}
