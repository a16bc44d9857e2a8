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

// Package app holds the application context wiring the entity stores
// and the auth service to a database connection.
package app

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lectern/lectern/pkg/clock"
	"github.com/lectern/lectern/pkg/server/database"
	"github.com/lectern/lectern/pkg/server/store"
)

var (
	// ErrEmptyDB is an error for missing database connection in the app configuration
	ErrEmptyDB = errors.New("No database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
)

// App is an application context
type App struct {
	DB    *gorm.DB
	Clock clock.Clock

	Sections    *store.Ordered[database.Section]
	Subsections *store.Ordered[database.Subsection]
	Notes       *store.Ordered[database.Note]
	Users       *store.Table[database.User]

	// RegisterOnlyForAdmin moves registration behind the admin guard.
	RegisterOnlyForAdmin bool
}

// New returns an app context backed by the given connection.
func New(db *gorm.DB, c clock.Clock, registerOnlyForAdmin bool) *App {
	return &App{
		DB:                   db,
		Clock:                c,
		Sections:             store.Sections(db),
		Subsections:          store.Subsections(db),
		Notes:                store.Notes(db),
		Users:                store.Users(db),
		RegisterOnlyForAdmin: registerOnlyForAdmin,
	}
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}

	return nil
}
