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

package app

import (
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lectern/lectern/pkg/server/crypt"
	"github.com/lectern/lectern/pkg/server/database"
	"github.com/lectern/lectern/pkg/server/store"
)

// SessionDuration is how long an issued session token stays valid.
const SessionDuration = 7 * 24 * time.Hour

var (
	// ErrLoginInvalid is an error for an invalid login
	ErrLoginInvalid = errors.New("Wrong password")
	// ErrNotAdmin is an error for a user without the admin capability
	ErrNotAdmin = errors.New("admin access required")
	// ErrSessionInvalid is an error for a session that does not exist or
	// has expired
	ErrSessionInvalid = errors.New("session invalid")
)

// Register creates a user with the hashed password and signs them in
// immediately. A taken username surfaces as the datastore's uniqueness
// violation, not a distinct error kind.
func (a *App) Register(username, password string, isAdmin bool) (database.User, database.Session, error) {
	hash, err := crypt.HashPassword(password)
	if err != nil {
		return database.User{}, database.Session{}, errors.Wrap(err, "hashing password")
	}

	if err := a.Users.Insert(store.NewUser{
		Username: username,
		Password: hash,
		IsAdmin:  isAdmin,
	}); err != nil {
		return database.User{}, database.Session{}, errors.Wrap(err, "inserting user")
	}

	user, err := a.Users.GetOne(&store.UserFilter{Username: &username})
	if err != nil {
		return database.User{}, database.Session{}, errors.Wrap(err, "reading back user")
	}

	session, err := a.CreateSession(user.ID)
	if err != nil {
		return database.User{}, database.Session{}, err
	}

	return user, session, nil
}

// Login checks the credentials and issues a fresh session. A missing
// user fails with store.ErrNotFound, a wrong password with
// ErrLoginInvalid.
func (a *App) Login(username, password string) (database.User, database.Session, error) {
	user, err := a.Users.GetOne(&store.UserFilter{Username: &username})
	if err != nil {
		return database.User{}, database.Session{}, err
	}

	if !crypt.VerifyPassword(password, user.Password) {
		return database.User{}, database.Session{}, ErrLoginInvalid
	}

	session, err := a.CreateSession(user.ID)
	if err != nil {
		return database.User{}, database.Session{}, err
	}

	return user, session, nil
}

// CreateSession returns a new session for the user of the given id
func (a *App) CreateSession(userID uint) (database.Session, error) {
	token, err := crypt.RandomToken(32)
	if err != nil {
		return database.Session{}, errors.Wrap(err, "generating token")
	}

	session := database.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: a.Clock.Now().Add(SessionDuration),
	}
	if err := a.DB.Save(&session).Error; err != nil {
		return database.Session{}, errors.Wrap(err, "saving session")
	}

	return session, nil
}

// AuthenticateByToken resolves the session token to its owning user. An
// expired session is deleted on sight and the check fails as if the
// session never existed. With requireAdmin set, a non-admin user fails
// with ErrNotAdmin.
func (a *App) AuthenticateByToken(token string, requireAdmin bool) (database.User, error) {
	var session database.Session
	err := a.DB.Where("token = ?", token).First(&session).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, ErrSessionInvalid
	} else if err != nil {
		return database.User{}, errors.Wrap(err, "finding session")
	}

	if !session.ExpiresAt.After(a.Clock.Now()) {
		if err := a.DeleteSession(session.Token); err != nil {
			return database.User{}, err
		}
		return database.User{}, ErrSessionInvalid
	}

	var user database.User
	if err := a.DB.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		return database.User{}, errors.Wrap(err, "finding user")
	}

	if requireAdmin && !user.IsAdmin {
		return database.User{}, ErrNotAdmin
	}

	return user, nil
}

// DeleteSession deletes the session that matches the given token
func (a *App) DeleteSession(token string) error {
	if err := a.DB.Where("token = ?", token).Delete(&database.Session{}).Error; err != nil {
		return errors.Wrap(err, "deleting the session")
	}

	return nil
}

// DeleteUserSessions deletes all existing sessions for the given user. It effectively
// invalidates all existing sessions.
func (a *App) DeleteUserSessions(userID uint) error {
	if err := a.DB.Where("user_id = ?", userID).Delete(&database.Session{}).Error; err != nil {
		return errors.Wrap(err, "deleting sessions")
	}

	return nil
}
