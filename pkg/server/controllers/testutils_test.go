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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/clock"
	"github.com/lectern/lectern/pkg/server/app"
	"github.com/lectern/lectern/pkg/server/testutils"
)

func newServer(t *testing.T, registerOnlyForAdmin bool) (*httptest.Server, *app.App) {
	t.Helper()

	t.Setenv("APP_ENV", "TEST")

	db := testutils.InitMemoryDB(t)
	a := app.New(db, clock.NewMock(), registerOnlyForAdmin)

	handler, err := NewRouter(a, New(a))
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating router"))
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server, a
}

// setupAdminSession creates an admin user and returns a session token
// for it.
func setupAdminSession(t *testing.T, a *app.App) string {
	t.Helper()

	admin := testutils.SetupUser(t, a.DB, "admin", "adminpass", true)
	session, err := a.CreateSession(admin.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating admin session"))
	}

	return session.Token
}

func adminReq(t *testing.T, server *httptest.Server, token, method, path, data string) *http.Request {
	t.Helper()

	req := testutils.MakeReq(server.URL, method, path, data)
	req.Header.Set("Authorization", "Bearer "+token)

	return req
}

func decodeJSON(t *testing.T, res *http.Response, into interface{}) {
	t.Helper()

	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(into); err != nil {
		t.Fatal(errors.Wrap(err, "decoding response body"))
	}
}
