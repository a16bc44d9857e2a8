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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/assert"
	"github.com/lectern/lectern/pkg/clock"
	"github.com/lectern/lectern/pkg/server/app"
	"github.com/lectern/lectern/pkg/server/context"
	"github.com/lectern/lectern/pkg/server/database"
	"github.com/lectern/lectern/pkg/server/testutils"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	db := testutils.InitMemoryDB(t)
	return app.New(db, clock.NewMock(), false)
}

func TestAdminGuard(t *testing.T) {
	a := newTestApp(t)
	admin := testutils.SetupUser(t, a.DB, "ivgap04", "pass2", true)
	plain := testutils.SetupUser(t, a.DB, "dobb", "pass1", false)

	adminSession, err := a.CreateSession(admin.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating session"))
	}
	plainSession, err := a.CreateSession(plain.ID)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating session"))
	}

	var gotUser *database.User
	handler := Admin(a, func(w http.ResponseWriter, r *http.Request) {
		gotUser = context.User(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/sections", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.StatusCodeEquals(t, rec.Code, http.StatusUnauthorized, "missing token")
	})

	t.Run("unknown token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/sections", nil)
		req.Header.Set("Authorization", "Bearer no-such-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.StatusCodeEquals(t, rec.Code, http.StatusForbidden, "unknown token")
	})

	t.Run("non-admin token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/sections", nil)
		req.Header.Set("Authorization", "Bearer "+plainSession.Token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.StatusCodeEquals(t, rec.Code, http.StatusForbidden, "non-admin token")
	})

	t.Run("admin bearer token", func(t *testing.T) {
		gotUser = nil
		req := httptest.NewRequest("POST", "/sections", nil)
		req.Header.Set("Authorization", "Bearer "+adminSession.Token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.StatusCodeEquals(t, rec.Code, http.StatusOK, "admin bearer token")
		if gotUser == nil {
			t.Fatal("expected user in the request context")
		}
		assert.Equal(t, gotUser.ID, admin.ID, "context user")
	})

	t.Run("admin cookie token", func(t *testing.T) {
		gotUser = nil
		req := httptest.NewRequest("POST", "/sections", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: adminSession.Token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.StatusCodeEquals(t, rec.Code, http.StatusOK, "admin cookie token")
		if gotUser == nil {
			t.Fatal("expected user in the request context")
		}
		assert.Equal(t, gotUser.ID, admin.ID, "context user")
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/sections", nil)
		req.Header.Set("Authorization", "Bearer "+plainSession.Token)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: adminSession.Token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.StatusCodeEquals(t, rec.Code, http.StatusForbidden, "header credential takes precedence")
	})
}
