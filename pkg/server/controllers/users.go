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
	"github.com/lectern/lectern/pkg/server/database"
	"github.com/lectern/lectern/pkg/server/middleware"
	"github.com/lectern/lectern/pkg/server/store"
)

// NewUsers creates a new Users controller
func NewUsers(app *app.App) *Users {
	return &Users{app: app}
}

// Users is a controller for user accounts and sessions
type Users struct {
	app *app.App
}

type registerPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResult struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// authResult is the auto-login payload returned by register and login
type authResult struct {
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expires_at"`
	User      userResult `json:"user"`
}

func newAuthResult(user database.User, session database.Session) authResult {
	return authResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
		User: userResult{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	}
}

func setSessionCookie(w http.ResponseWriter, session database.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
	})
}

func unsetSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
	})
}

// Register handles POST /users/register
func (c *Users) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	user, session, err := c.app.Register(payload.Username, payload.Password, payload.IsAdmin)
	if err != nil {
		doError(w, "registering user", err, "failed to register user", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session)
	respondJSON(w, http.StatusCreated, newAuthResult(user, session))
}

// Login handles POST /users/login
func (c *Users) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := parseJSON(r, &payload); err != nil {
		doError(w, "parsing payload", err, "invalid payload", http.StatusBadRequest)
		return
	}

	user, session, err := c.app.Login(payload.Username, payload.Password)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, "user not found", http.StatusNotFound)
	case errors.Is(err, app.ErrLoginInvalid):
		respondError(w, "invalid password", http.StatusUnauthorized)
	case err != nil:
		doError(w, "logging in", err, "failed to login", http.StatusInternalServerError)
	default:
		setSessionCookie(w, session)
		respondJSON(w, http.StatusOK, newAuthResult(user, session))
	}
}

// Logout handles POST /users/logout. Logging out without a session is
// not an error.
func (c *Users) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.GetCredential(r); token != "" {
		if err := c.app.DeleteSession(token); err != nil {
			doError(w, "deleting session", err, "failed to logout", http.StatusInternalServerError)
			return
		}
	}

	unsetSessionCookie(w)
	respondMessage(w, http.StatusOK, "logged out")
}

// Index handles GET /users
func (c *Users) Index(w http.ResponseWriter, r *http.Request) {
	var filter store.UserFilter
	if err := parseQuery(r, &filter); err != nil {
		doError(w, "parsing query", err, "invalid query", http.StatusBadRequest)
		return
	}

	rows, err := c.app.Users.GetMany(&filter)
	if err != nil {
		doError(w, "fetching users", err, "failed to fetch users", http.StatusInternalServerError)
		return
	}

	results := make([]userResult, 0, len(rows))
	for _, u := range rows {
		results = append(results, userResult{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin})
	}

	respondJSON(w, http.StatusOK, results)
}
