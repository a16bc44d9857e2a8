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

// Sections returns the ordered store backed by the sections table.
// Sections have no scope key: positions are unique across the table.
func Sections(db *gorm.DB) *Ordered[database.Section] {
	return &Ordered[database.Section]{
		Table:    Table[database.Section]{db: db, name: "sections"},
		position: func(s *database.Section) uint { return s.Position },
		scope:    func(*database.Section) *uint { return nil },
		filterByID: func(id uint) Filter {
			return &SectionFilter{ID: &id}
		},
	}
}

// NewSection is the form for creating a section.
type NewSection struct {
	Title string `json:"title"`
}

// Columns implements Form
func (f NewSection) Columns() []string {
	return []string{"title"}
}

// Values implements Form
func (f NewSection) Values() []interface{} {
	return []interface{}{f.Title}
}

// Scope implements CreateForm. Sections live in a single global scope.
func (f NewSection) Scope() *uint {
	return nil
}

// SectionFilter selects sections. Fields left nil do not participate.
type SectionFilter struct {
	ID       *uint   `schema:"id"`
	Title    *string `schema:"title"`
	Position *uint   `schema:"position"`

	Op   query.Combinator `schema:"-"`
	Rows *uint            `schema:"limit"`
}

// Conditions implements Filter
func (f *SectionFilter) Conditions() *query.Builder {
	b := &query.Builder{}
	if f.ID != nil {
		b.Eq("id", *f.ID)
	}
	if f.Title != nil {
		b.Eq("title", *f.Title)
	}
	if f.Position != nil {
		b.Eq("position", *f.Position)
	}

	return b
}

// Combinator implements Filter
func (f *SectionFilter) Combinator() query.Combinator {
	return f.Op
}

// Limit implements Filter
func (f *SectionFilter) Limit() *uint {
	return f.Rows
}

// WithLimit implements Filter
func (f *SectionFilter) WithLimit(n uint) Filter {
	c := *f
	c.Rows = &n
	return &c
}

// SectionPatch carries the updatable section fields.
type SectionPatch struct {
	Title *string `json:"title"`
}

// Assignments implements Patch
func (p SectionPatch) Assignments() *query.Builder {
	b := &query.Builder{}
	if p.Title != nil {
		b.Eq("title", *p.Title)
	}

	return b
}
