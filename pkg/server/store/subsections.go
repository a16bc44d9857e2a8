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

// Subsections returns the ordered store backed by the subsections
// table. Positions are scoped per owning section.
func Subsections(db *gorm.DB) *Ordered[database.Subsection] {
	return &Ordered[database.Subsection]{
		Table:       Table[database.Subsection]{db: db, name: "subsections"},
		scopeColumn: "section_id",
		position:    func(s *database.Subsection) uint { return s.Position },
		scope: func(s *database.Subsection) *uint {
			v := s.SectionID
			return &v
		},
		filterByID: func(id uint) Filter {
			return &SubsectionFilter{ID: &id}
		},
	}
}

// NewSubsection is the form for creating a subsection.
type NewSubsection struct {
	Title     string `json:"title"`
	SectionID uint   `json:"section_id"`
}

// Columns implements Form
func (f NewSubsection) Columns() []string {
	return []string{"title", "section_id"}
}

// Values implements Form
func (f NewSubsection) Values() []interface{} {
	return []interface{}{f.Title, f.SectionID}
}

// Scope implements CreateForm
func (f NewSubsection) Scope() *uint {
	v := f.SectionID
	return &v
}

// SubsectionFilter selects subsections. Fields left nil do not
// participate.
type SubsectionFilter struct {
	ID        *uint   `schema:"id"`
	Title     *string `schema:"title"`
	Position  *uint   `schema:"position"`
	SectionID *uint   `schema:"section_id"`

	Op   query.Combinator `schema:"-"`
	Rows *uint            `schema:"limit"`
}

// Conditions implements Filter
func (f *SubsectionFilter) Conditions() *query.Builder {
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
	if f.SectionID != nil {
		b.Eq("section_id", *f.SectionID)
	}

	return b
}

// Combinator implements Filter
func (f *SubsectionFilter) Combinator() query.Combinator {
	return f.Op
}

// Limit implements Filter
func (f *SubsectionFilter) Limit() *uint {
	return f.Rows
}

// WithLimit implements Filter
func (f *SubsectionFilter) WithLimit(n uint) Filter {
	c := *f
	c.Rows = &n
	return &c
}

// SubsectionPatch carries the updatable subsection fields.
type SubsectionPatch struct {
	Title     *string `json:"title"`
	SectionID *uint   `json:"section_id"`
	Position  *uint   `json:"position"`
}

// Assignments implements Patch
func (p SubsectionPatch) Assignments() *query.Builder {
	b := &query.Builder{}
	if p.Title != nil {
		b.Eq("title", *p.Title)
	}
	if p.SectionID != nil {
		b.Eq("section_id", *p.SectionID)
	}
	if p.Position != nil {
		b.Eq("position", *p.Position)
	}

	return b
}
