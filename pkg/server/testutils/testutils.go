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

// Package testutils provides utilities used in tests
package testutils

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lectern/lectern/pkg/server/crypt"
	"github.com/lectern/lectern/pkg/server/database"
)

// InitMemoryDB creates an in-memory SQLite database with the schema
// initialized. The database name carries a fresh UUID so that parallel
// tests do not share state.
func InitMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}

	if err := database.InitSchema(db); err != nil {
		t.Fatal(errors.Wrap(err, "initializing schema"))
	}

	return db
}

// MustExec fails the test if the given database query has an error
func MustExec(t *testing.T, db *gorm.DB, message string) {
	t.Helper()

	if err := db.Error; err != nil {
		t.Fatalf("%s: %s", message, err.Error())
	}
}

// SetupUser creates and returns a new user for testing purposes. The
// password is stored hashed, as the auth service would store it.
func SetupUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) database.User {
	t.Helper()

	hash, err := crypt.HashPassword(password)
	if err != nil {
		t.Fatal(errors.Wrap(err, "hashing password"))
	}

	user := database.User{
		Username: username,
		Password: hash,
		IsAdmin:  isAdmin,
	}
	MustExec(t, db.Save(&user), "preparing user")

	return user
}

// SetupSession creates and returns a session for the given user,
// expiring at the given time.
func SetupSession(t *testing.T, db *gorm.DB, user database.User, expiresAt time.Time) database.Session {
	t.Helper()

	token, err := crypt.RandomToken(32)
	if err != nil {
		t.Fatal(errors.Wrap(err, "generating token"))
	}

	session := database.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	MustExec(t, db.Save(&session), "preparing session")

	return session
}

// MakeReq builds an HTTP request against the given endpoint
func MakeReq(endpoint, method, path, data string) *http.Request {
	u := fmt.Sprintf("%s%s", endpoint, path)

	req, err := http.NewRequest(method, u, strings.NewReader(data))
	if err != nil {
		panic(errors.Wrap(err, "constructing http request"))
	}
	if data != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

// HTTPDo performs an HTTP request and returns the response
func HTTPDo(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	hc := http.Client{
		// Do not follow redirects; tests assert on the redirect itself.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	res, err := hc.Do(req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "performing http request"))
	}

	return res
}
