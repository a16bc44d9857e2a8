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

// Package store implements filtered access to the entity tables, plus
// position-based ordering for the tables that carry it. Queries are
// assembled from predicate fragments with positional parameter binding;
// see the query package.
package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lectern/lectern/pkg/server/query"
)

// Filter selects rows for read, update and delete operations. Fields
// left unset do not participate in the selection.
type Filter interface {
	// Conditions returns the equality predicates in the entity's fixed
	// field order.
	Conditions() *query.Builder
	// Combinator is the join token between predicates.
	Combinator() query.Combinator
	// Limit caps the number of rows affected; nil means unbounded.
	Limit() *uint
	// WithLimit returns a copy of the filter with the limit replaced.
	WithLimit(n uint) Filter
}

// Patch carries optional column updates. Absent fields are left alone.
type Patch interface {
	// Assignments returns the SET fragments for the present fields.
	Assignments() *query.Builder
}

// Form supplies column values for an insert.
type Form interface {
	Columns() []string
	Values() []interface{}
}

// Table provides filtered reads, updates and deletes over a single
// entity table.
type Table[T any] struct {
	db   *gorm.DB
	name string
}

// NewTable returns a table handle for the given table name. Rows scan
// into values of type T by column name.
func NewTable[T any](db *gorm.DB, name string) *Table[T] {
	return &Table[T]{db: db, name: name}
}

// GetMany returns the rows matching the filter, up to its limit. The
// rows come back in datastore-native order; callers that need position
// order sort on their side. An empty result is not an error.
func (t *Table[T]) GetMany(f Filter) ([]T, error) {
	cond := f.Conditions()
	q := "SELECT * FROM " + t.name + cond.Where(f.Combinator()) + query.Limit(f.Limit())

	var rows []T
	if err := t.db.Raw(q, cond.Values()...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "querying %s", t.name)
	}

	return rows, nil
}

// GetOne returns the single row matching the filter, forcing a limit of
// one. It returns ErrNotFound when no row matches.
func (t *Table[T]) GetOne(f Filter) (T, error) {
	var zero T

	rows, err := t.GetMany(f.WithLimit(1))
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}

	return rows[0], nil
}

// UpdateMany applies the patch's present fields to every row matching
// the filter. It returns ErrNothingToUpdate before touching the
// datastore when the patch is empty, and ErrNotFound when the filter
// matches no row. The existence probe and the update are separate
// statements; a concurrent delete can still slip in between.
func (t *Table[T]) UpdateMany(p Patch, f Filter) error {
	set := p.Assignments()
	if set.Empty() {
		return ErrNothingToUpdate
	}

	rows, err := t.GetMany(f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}

	cond := f.Conditions()
	q := "UPDATE " + t.name + " SET " + set.List() + cond.Where(f.Combinator())

	args := make([]interface{}, 0, set.Len()+cond.Len())
	args = append(args, set.Values()...)
	args = append(args, cond.Values()...)

	if err := t.db.Exec(q, args...).Error; err != nil {
		return errors.Wrapf(err, "updating %s", t.name)
	}

	return nil
}

// DeleteMany removes the rows matching the filter, up to its limit.
// Deleting zero rows is not an error.
func (t *Table[T]) DeleteMany(f Filter) error {
	if f.Limit() != nil {
		return t.deleteLimited(f)
	}

	cond := f.Conditions()
	q := "DELETE FROM " + t.name + cond.Where(f.Combinator())

	if err := t.db.Exec(q, cond.Values()...).Error; err != nil {
		return errors.Wrapf(err, "deleting from %s", t.name)
	}

	return nil
}

// DeleteOne removes at most one row matching the filter.
func (t *Table[T]) DeleteOne(f Filter) error {
	return t.DeleteMany(f.WithLimit(1))
}

// deleteLimited deletes at most limit rows. MySQL accepts LIMIT on
// DELETE directly; SQLite and PostgreSQL do not, so the victims are
// picked with a SELECT and removed by id.
func (t *Table[T]) deleteLimited(f Filter) error {
	cond := f.Conditions()
	q := "SELECT id FROM " + t.name + cond.Where(f.Combinator()) + query.Limit(f.Limit())

	var ids []uint
	if err := t.db.Raw(q, cond.Values()...).Scan(&ids).Error; err != nil {
		return errors.Wrapf(err, "selecting rows to delete from %s", t.name)
	}
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	del := "DELETE FROM " + t.name + " WHERE id IN (" + placeholders + ")"
	if err := t.db.Exec(del, args...).Error; err != nil {
		return errors.Wrapf(err, "deleting from %s", t.name)
	}

	return nil
}

// Insert adds a row with the given column values.
func (t *Table[T]) Insert(form Form) error {
	columns := form.Columns()
	values := form.Values()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	q := "INSERT INTO " + t.name + " (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders + ")"

	if err := t.db.Exec(q, values...).Error; err != nil {
		return errors.Wrapf(err, "inserting into %s", t.name)
	}

	return nil
}
