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
	"github.com/lectern/lectern/pkg/server/testutils"
)

func TestRegisterAndLogin(t *testing.T) {
	server, _ := newServer(t, false)

	// register signs the user in immediately
	res := testutils.HTTPDo(t, testutils.MakeReq(server.URL, "POST", "/users/register",
		`{"username": "dobb", "password": "pass1", "is_admin": false}`))
	assert.StatusCodeEquals(t, res.StatusCode, http.StatusCreated, "registering")

	var auth authResult
	decodeJSON(t, res, &auth)
	assert.NotEqual(t, auth.Token, "", "register returns a token")
	assert.Equal(t, auth.User.Username, "dobb", "registered username")
	assert.Equal(t, auth.User.IsAdmin, false, "registered admin flag")

	cookieSet := false
	for _, c := range res.Cookies() {
		if c.Name == "session_token" && c.Value == auth.Token {
			cookieSet = true
		}
	}
	assert.Equal(t, cookieSet, true, "register sets the session cookie")

	t.Run("login", func(t *testing.T) {
		res := testutils.HTTPDo(t, testutils.MakeReq(server.URL, "POST", "/users/login",
			`{"username": "dobb", "password": "pass1"}`))
		assert.StatusCodeEquals(t, res.StatusCode, http.StatusOK, "logging in")

		var auth authResult
		decodeJSON(t, res, &auth)
		assert.NotEqual(t, auth.Token, "", "login returns a token")
	})

	t.Run("login with wrong password", func(t *testing.T) {
		res := testutils.HTTPDo(t, testutils.MakeReq(server.URL, "POST", "/users/login",
			`{"username": "dobb", "password": "wrong"}`))
		res.Body.Close()
		assert.StatusCodeEquals(t, res.StatusCode, http.StatusUnauthorized, "wrong password")
	})

	t.Run("login with unknown user", func(t *testing.T) {
		res := testutils.HTTPDo(t, testutils.MakeReq(server.URL, "POST", "/users/login",
			`{"username": "nobody", "password": "pass1"}`))
		res.Body.Close()
		assert.StatusCodeEquals(t, res.StatusCode, http.StatusNotFound, "unknown user")
	})

	t.Run("duplicate username", func(t *testing.T) {
		res := testutils.HTTPDo(t, testutils.MakeReq(server.URL, "POST", "/users/register",
			`{"username": "dobb", "password": "pass3", "is_admin": false}`))
		res.Body.Close()
		assert.StatusCodeEquals(t, res.StatusCode, http.StatusInternalServerError, "taken username")
	})
}

func TestLogout(t *testing.T) {
	server, a := newServer(t, false)
	admin := testutils.SetupUser(t, a.DB, "admin", "adminpass", true)
	session, err := a.CreateSession(admin.ID)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	res := testutils.HTTPDo(t, adminReq(t, server, session.Token, "POST", "/users/logout", ""))
	res.Body.Close()
	assert.StatusCodeEquals(t, res.StatusCode, http.StatusOK, "logging out")

	// The token no longer opens the admin gate.
	res = testutils.HTTPDo(t, adminReq(t, server, session.Token, "GET", "/users", ""))
	res.Body.Close()
	assert.StatusCodeEquals(t, res.StatusCode, http.StatusForbidden, "token after logout")
}

func TestListUsers(t *testing.T) {
	server, a := newServer(t, false)
	token := setupAdminSession(t, a)
	testutils.SetupUser(t, a.DB, "dobb", "pass1", false)

	res := testutils.HTTPDo(t, adminReq(t, server, token, "GET", "/users", ""))
	assert.StatusCodeEquals(t, res.StatusCode, http.StatusOK, "listing users")

	var users []userResult
	decodeJSON(t, res, &users)
	assert.Equal(t, len(users), 2, "both users appear")

	t.Run("filter by username", func(t *testing.T) {
		res := testutils.HTTPDo(t, adminReq(t, server, token, "GET", "/users?username=dobb", ""))
		var users []userResult
		decodeJSON(t, res, &users)
		assert.Equal(t, len(users), 1, "filtered listing")
		assert.Equal(t, users[0].Username, "dobb", "filtered username")
		assert.Equal(t, users[0].IsAdmin, false, "filtered admin flag")
	})
}

func TestRegisterOnlyForAdmin(t *testing.T) {
	server, a := newServer(t, true)

	res := testutils.HTTPDo(t, testutils.MakeReq(server.URL, "POST", "/users/register",
		`{"username": "dobb", "password": "pass1", "is_admin": false}`))
	res.Body.Close()
	assert.StatusCodeEquals(t, res.StatusCode, http.StatusUnauthorized, "registration without a token")

	token := setupAdminSession(t, a)
	res = testutils.HTTPDo(t, adminReq(t, server, token, "POST", "/users/register",
		`{"username": "dobb", "password": "pass1", "is_admin": false}`))
	res.Body.Close()
	assert.StatusCodeEquals(t, res.StatusCode, http.StatusCreated, "registration by an admin")
}
