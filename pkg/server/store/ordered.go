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
	stdsql "database/sql"

	"github.com/pkg/errors"
)

// CreateForm supplies column values for a position-assigning insert.
// The position column itself is always assigned by the store.
type CreateForm interface {
	Form
	// Scope returns the scope key the new row lands in; nil means the
	// table-wide scope.
	Scope() *uint
}

// Ordered is a Table whose rows carry a scope-unique position.
type Ordered[T any] struct {
	Table[T]
	// scopeColumn bounds position uniqueness; empty for tables with a
	// single global scope.
	scopeColumn string
	position    func(*T) uint
	scope       func(*T) *uint
	filterByID  func(id uint) Filter
}

// Create inserts a new row at the end of its scope: the maximum
// position currently in the scope plus one, or zero when the scope is
// empty. The read-max-then-insert sequence is two round-trips; two
// concurrent creates in the same scope can race, in which case the
// loser's insert fails the uniqueness constraint.
func (o *Ordered[T]) Create(form CreateForm) error {
	next, err := o.nextPosition(form.Scope())
	if err != nil {
		return err
	}

	return o.Insert(positioned{form: form, position: next})
}

// Swap exchanges the positions of the two rows with the given ids.
// Missing rows are reported through SwapNotFoundError before any scope
// check; rows with defined, differing scope keys fail with
// ErrScopeMismatch and are left untouched.
func (o *Ordered[T]) Swap(idA, idB uint) error {
	rowA, errA := o.GetOne(o.filterByID(idA))
	rowB, errB := o.GetOne(o.filterByID(idB))

	var nf SwapNotFoundError
	if errA != nil {
		nf.MissingA = &idA
	}
	if errB != nil {
		nf.MissingB = &idB
	}
	if nf.MissingA != nil || nf.MissingB != nil {
		return &nf
	}

	scopeA, scopeB := o.scope(&rowA), o.scope(&rowB)
	if scopeA != nil && scopeB != nil && *scopeA != *scopeB {
		return ErrScopeMismatch
	}

	// A temporary position above every existing one in the table keeps
	// the uniqueness constraint satisfied at each intermediate step.
	temp, err := o.nextPosition(nil)
	if err != nil {
		return err
	}

	posA, posB := o.position(&rowA), o.position(&rowB)

	// Three separate writes, no transaction. A failure partway leaves
	// the positions in an intermediate state.
	if err := o.setPosition(idA, temp); err != nil {
		return err
	}
	if err := o.setPosition(idB, posA); err != nil {
		return err
	}
	return o.setPosition(idA, posB)
}

func (o *Ordered[T]) setPosition(id, pos uint) error {
	q := "UPDATE " + o.name + " SET position = ? WHERE id = ?"
	if err := o.db.Exec(q, pos, id).Error; err != nil {
		return errors.Wrapf(err, "updating %s position", o.name)
	}

	return nil
}

func (o *Ordered[T]) nextPosition(scope *uint) (uint, error) {
	max, err := o.maxPosition(scope)
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}

	return *max + 1, nil
}

// maxPosition returns the greatest position in the given scope, nil
// when the scope holds no rows. A nil scope queries the whole table.
func (o *Ordered[T]) maxPosition(scope *uint) (*uint, error) {
	q := "SELECT MAX(position) FROM " + o.name
	var args []interface{}
	if scope != nil && o.scopeColumn != "" {
		q += " WHERE " + o.scopeColumn + " = ?"
		args = append(args, *scope)
	}

	var max stdsql.NullInt64
	if err := o.db.Raw(q, args...).Row().Scan(&max); err != nil {
		return nil, errors.Wrapf(err, "reading max position of %s", o.name)
	}
	if !max.Valid {
		return nil, nil
	}

	m := uint(max.Int64)
	return &m, nil
}

// positioned is a Form with the store-assigned position appended.
type positioned struct {
	form     CreateForm
	position uint
}

func (p positioned) Columns() []string {
	return append(p.form.Columns(), "position")
}

func (p positioned) Values() []interface{} {
	return append(p.form.Values(), p.position)
}
