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

// Package middleware provides the admin guard and rate limiting for
// the HTTP layer.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lectern/lectern/pkg/server/app"
	"github.com/lectern/lectern/pkg/server/context"
)

// respondError writes the error payload the rest of the API uses.
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// GetCredential extracts the session token from the request. The
// Authorization header wins; the session_token cookie is the fallback
// for browser clients.
func GetCredential(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	if c, err := r.Cookie("session_token"); err == nil {
		return c.Value
	}

	return ""
}

// Admin guards a handler behind an admin session. A request with no
// token at all is unauthorized; a token that does not resolve to a
// valid admin session is forbidden.
func Admin(a *app.App, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := GetCredential(r)
		if token == "" {
			respondError(w, "missing token", http.StatusUnauthorized)
			return
		}

		user, err := a.AuthenticateByToken(token, true)
		if err != nil {
			respondError(w, "admin access required", http.StatusForbidden)
			return
		}

		ctx := context.WithUser(r.Context(), &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
