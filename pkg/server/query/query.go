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

// Package query assembles SQL predicate fragments and their bound
// parameter values. Raw values never enter the query text; every value
// is bound positionally.
package query

import (
	"fmt"
	"strings"
)

// Combinator is the token joining predicates in a WHERE clause.
type Combinator int

const (
	// And joins predicates with AND. It is the zero value.
	And Combinator = iota
	// Or joins predicates with OR
	Or
)

func (c Combinator) token() string {
	if c == Or {
		return " OR "
	}
	return " AND "
}

// Builder accumulates column predicates in the order they are added,
// together with the values to bind in the same order.
type Builder struct {
	frags []string
	vals  []interface{}
}

// Eq appends an equality predicate on the given column.
func (b *Builder) Eq(column string, value interface{}) *Builder {
	b.frags = append(b.frags, column+" = ?")
	b.vals = append(b.vals, value)
	return b
}

// Empty reports whether no predicates have been added.
func (b *Builder) Empty() bool {
	return len(b.frags) == 0
}

// Len returns the number of predicates added.
func (b *Builder) Len() int {
	return len(b.frags)
}

// Values returns the bound values in predicate order.
func (b *Builder) Values() []interface{} {
	return b.vals
}

// Where renders a leading-space WHERE clause, or an empty string when
// there are no predicates. The combinator has no effect with fewer than
// two predicates.
func (b *Builder) Where(c Combinator) string {
	if b.Empty() {
		return ""
	}
	return " WHERE " + strings.Join(b.frags, c.token())
}

// List renders the fragments as a comma-separated list, for SET clauses.
func (b *Builder) List() string {
	return strings.Join(b.frags, ", ")
}

// Limit renders a leading-space LIMIT clause, or an empty string when
// limit is nil. The row count is an integer under the caller's control,
// never user-supplied text.
func Limit(limit *uint) string {
	if limit == nil {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", *limit)
}
