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

// Notes returns the ordered store backed by the notes table. Positions
// are scoped per owning subsection; notes without a subsection draw
// their positions from the table-wide sequence. A note with no
// subsection is scope-compatible with any other note in a swap.
func Notes(db *gorm.DB) *Ordered[database.Note] {
	return &Ordered[database.Note]{
		Table:       Table[database.Note]{db: db, name: "notes"},
		scopeColumn: "subsection_id",
		position:    func(n *database.Note) uint { return n.Position },
		scope:       func(n *database.Note) *uint { return n.SubsectionID },
		filterByID: func(id uint) Filter {
			return &NoteFilter{ID: &id}
		},
	}
}

// NewNote is the form for creating a note. SectionID and SubsectionID
// are both optional; the store does not cross-check that a given
// subsection belongs to the given section.
type NewNote struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	SectionID    *uint  `json:"section_id"`
	SubsectionID *uint  `json:"subsection_id"`
}

// Columns implements Form
func (f NewNote) Columns() []string {
	return []string{"name", "url", "section_id", "subsection_id"}
}

// Values implements Form
func (f NewNote) Values() []interface{} {
	return []interface{}{f.Name, f.URL, f.SectionID, f.SubsectionID}
}

// Scope implements CreateForm
func (f NewNote) Scope() *uint {
	return f.SubsectionID
}

// NoteFilter selects notes. Fields left nil do not participate.
type NoteFilter struct {
	ID           *uint   `schema:"id"`
	Name         *string `schema:"name"`
	URL          *string `schema:"url"`
	Position     *uint   `schema:"position"`
	SectionID    *uint   `schema:"section_id"`
	SubsectionID *uint   `schema:"subsection_id"`

	Op   query.Combinator `schema:"-"`
	Rows *uint            `schema:"limit"`
}

// Conditions implements Filter
func (f *NoteFilter) Conditions() *query.Builder {
	b := &query.Builder{}
	if f.ID != nil {
		b.Eq("id", *f.ID)
	}
	if f.Name != nil {
		b.Eq("name", *f.Name)
	}
	if f.URL != nil {
		b.Eq("url", *f.URL)
	}
	if f.Position != nil {
		b.Eq("position", *f.Position)
	}
	if f.SectionID != nil {
		b.Eq("section_id", *f.SectionID)
	}
	if f.SubsectionID != nil {
		b.Eq("subsection_id", *f.SubsectionID)
	}

	return b
}

// Combinator implements Filter
func (f *NoteFilter) Combinator() query.Combinator {
	return f.Op
}

// Limit implements Filter
func (f *NoteFilter) Limit() *uint {
	return f.Rows
}

// WithLimit implements Filter
func (f *NoteFilter) WithLimit(n uint) Filter {
	c := *f
	c.Rows = &n
	return &c
}

// NotePatch carries the updatable note fields.
type NotePatch struct {
	Name         *string `json:"name"`
	URL          *string `json:"url"`
	SectionID    *uint   `json:"section_id"`
	SubsectionID *uint   `json:"subsection_id"`
	Position     *uint   `json:"position"`
}

// Assignments implements Patch
func (p NotePatch) Assignments() *query.Builder {
	b := &query.Builder{}
	if p.Name != nil {
		b.Eq("name", *p.Name)
	}
	if p.URL != nil {
		b.Eq("url", *p.URL)
	}
	if p.SectionID != nil {
		b.Eq("section_id", *p.SectionID)
	}
	if p.SubsectionID != nil {
		b.Eq("subsection_id", *p.SubsectionID)
	}
	if p.Position != nil {
		b.Eq("position", *p.Position)
	}

	return b
}
