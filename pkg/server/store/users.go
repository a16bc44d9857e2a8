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

package store

import (
	"gorm.io/gorm"

	"github.com/lectern/lectern/pkg/server/database"
	"github.com/lectern/lectern/pkg/server/query"
)

// Users returns the store backed by the users table. Users carry no
// position; they share only the filter machinery.
func Users(db *gorm.DB) *Table[database.User] {
	return NewTable[database.User](db, "users")
}

// NewUser is the form for inserting a user row. Password is expected to
// already be hashed. A duplicate username surfaces as a constraint
// violation from the datastore.
type NewUser struct {
	Username string
	Password string
	IsAdmin  bool
}

// Columns implements Form
func (f NewUser) Columns() []string {
	return []string{"username", "password", "is_admin"}
}

// Values implements Form
func (f NewUser) Values() []interface{} {
	return []interface{}{f.Username, f.Password, f.IsAdmin}
}

// UserFilter selects users. The password field matches the stored hash
// and is never decoded from a request.
type UserFilter struct {
	ID       *uint   `schema:"id"`
	Username *string `schema:"username"`
	Password *string `schema:"-"`

	Op   query.Combinator `schema:"-"`
	Rows *uint            `schema:"limit"`
}

// Conditions implements Filter
func (f *UserFilter) Conditions() *query.Builder {
	b := &query.Builder{}
	if f.ID != nil {
		b.Eq("id", *f.ID)
	}
	if f.Username != nil {
		b.Eq("username", *f.Username)
	}
	if f.Password != nil {
		b.Eq("password", *f.Password)
	}

	return b
}

// Combinator implements Filter
func (f *UserFilter) Combinator() query.Combinator {
	return f.Op
}

// Limit implements Filter
func (f *UserFilter) Limit() *uint {
	return f.Rows
}

// WithLimit implements Filter
func (f *UserFilter) WithLimit(n uint) Filter {
	c := *f
	c.Rows = &n
	return &c
}
