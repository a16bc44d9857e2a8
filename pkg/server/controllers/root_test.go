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
	"testing"

	"github.com/lectern/lectern/pkg/assert"
	"github.com/lectern/lectern/pkg/server/app"
	"github.com/lectern/lectern/pkg/server/testutils"
)

func TestRootIndex(t *testing.T) {
	server, a := newServer(t, false)
	token := setupAdminSession(t, a)

	res := testutils.HTTPDo(t, adminReq(t, server, token, "POST", "/sections", `{"title": "Week 1"}`))
	res.Body.Close()
	res = testutils.HTTPDo(t, adminReq(t, server, token, "POST", "/subsections", `{"title": "Lecture", "section_id": 1}`))
	res.Body.Close()
	res = testutils.HTTPDo(t, adminReq(t, server, token, "POST", "/notes",
		`{"name": "Slides", "url": "https://example.com/a.pdf", "section_id": 1, "subsection_id": 1}`))
	res.Body.Close()
	res = testutils.HTTPDo(t, adminReq(t, server, token, "POST", "/notes",
		`{"name": "Syllabus", "url": "https://example.com/s.pdf", "section_id": 1}`))
	res.Body.Close()

	res = testutils.HTTPDo(t, testutils.MakeReq(server.URL, "GET", "/", ""))
	assert.StatusCodeEquals(t, res.StatusCode, http.StatusOK, "fetching tree")

	var tree app.Tree
	decodeJSON(t, res, &tree)

	assert.Equal(t, len(tree.Sections), 1, "sections in the tree")
	section := tree.Sections[0]
	assert.Equal(t, section.Title, "Week 1", "section title")
	assert.Equal(t, len(section.Subsections), 1, "subsections in the tree")
	assert.Equal(t, section.Subsections[0].Title, "Lecture", "subsection title")
	assert.Equal(t, len(section.Subsections[0].Notes), 1, "notes under the subsection")
	assert.Equal(t, section.Subsections[0].Notes[0].Name, "Slides", "subsection note name")
	assert.Equal(t, len(section.Notes), 1, "notes directly under the section")
	assert.Equal(t, section.Notes[0].Name, "Syllabus", "section note name")
}
