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

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/server/app"
	mw "github.com/lectern/lectern/pkg/server/middleware"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// NewRoutes returns the route table. Mutations sit behind the admin
// guard; reads are public. Registration is public unless the app is
// configured to keep it admin-only.
func NewRoutes(a *app.App, c *Controllers) []Route {
	ret := []Route{
		{"GET", "/", c.Root.Index, true},
		{"GET", "/health", c.Health.Index, true},

		// web pages
		{"GET", "/login", c.Static.Serve("login.html", "text/html"), true},
		{"GET", "/register", c.Static.Serve("register.html", "text/html"), true},
		{"GET", "/admin", c.Static.Serve("admin.html", "text/html"), true},
		{"GET", "/styles.css", c.Static.Serve("styles.css", "text/css"), true},
		{"GET", "/login.js", c.Static.Serve("login.js", "application/javascript"), true},
		{"GET", "/register.js", c.Static.Serve("register.js", "application/javascript"), true},
		{"GET", "/admin.js", c.Static.Serve("admin.js", "application/javascript"), true},
		{"GET", "/create-user.js", c.Static.Serve("create-user.js", "application/javascript"), true},

		// public reads
		{"GET", "/sections", c.Sections.Index, true},
		{"GET", "/sections/{id}", c.Sections.Show, true},
		{"GET", "/subsections", c.Subsections.Index, true},
		{"GET", "/subsections/{id}", c.Subsections.Show, true},
		{"GET", "/notes", c.Notes.Index, true},
		{"GET", "/notes/{id}", c.Notes.Show, true},

		// sessions
		{"POST", "/users/login", c.Users.Login, true},
		{"POST", "/users/logout", c.Users.Logout, true},

		// admin-gated mutations
		{"GET", "/admin/create-user", mw.Admin(a, c.Static.Serve("create-user.html", "text/html")), true},
		{"POST", "/sections", mw.Admin(a, c.Sections.Create), true},
		{"POST", "/sections/move", mw.Admin(a, c.Sections.Move), true},
		{"PUT", "/sections/{id}", mw.Admin(a, c.Sections.Update), true},
		{"DELETE", "/sections/{id}", mw.Admin(a, c.Sections.Delete), true},
		{"POST", "/subsections", mw.Admin(a, c.Subsections.Create), true},
		{"POST", "/subsections/move", mw.Admin(a, c.Subsections.Move), true},
		{"PUT", "/subsections/{id}", mw.Admin(a, c.Subsections.Update), true},
		{"DELETE", "/subsections/{id}", mw.Admin(a, c.Subsections.Delete), true},
		{"POST", "/notes", mw.Admin(a, c.Notes.Create), true},
		{"POST", "/notes/move", mw.Admin(a, c.Notes.Move), true},
		{"PUT", "/notes/{id}", mw.Admin(a, c.Notes.Update), true},
		{"DELETE", "/notes/{id}", mw.Admin(a, c.Notes.Delete), true},
		{"GET", "/users", mw.Admin(a, c.Users.Index), true},
	}

	register := Route{"POST", "/users/register", c.Users.Register, true}
	if a.RegisterOnlyForAdmin {
		register.Handler = mw.Admin(a, c.Users.Register)
	}
	ret = append(ret, register)

	return ret
}

// NewRouter creates and returns a new router
func NewRouter(a *app.App, c *Controllers) (http.Handler, error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	for _, route := range NewRoutes(a, c) {
		handler := mw.ApplyLimit(route.Handler, route.RateLimit)

		router.
			Handle(route.Pattern, handler).
			Methods(route.Method)
	}

	// Preflight catch-all
	router.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return router, nil
}
