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

// Package controllers maps HTTP requests to the entity stores and the
// auth service.
package controllers

import (
	"github.com/lectern/lectern/pkg/server/app"
)

// Controllers is a group of controllers
type Controllers struct {
	Root        *Root
	Sections    *Sections
	Subsections *Subsections
	Notes       *Notes
	Users       *Users
	Static      *Static
	Health      *Health
}

// New returns a new group of controllers
func New(app *app.App) *Controllers {
	return &Controllers{
		Root:        NewRoot(app),
		Sections:    NewSections(app),
		Subsections: NewSubsections(app),
		Notes:       NewNotes(app),
		Users:       NewUsers(app),
		Static:      NewStatic(),
		Health:      NewHealth(app),
	}
}
