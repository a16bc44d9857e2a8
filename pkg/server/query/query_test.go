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

package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lectern/lectern/pkg/assert"
)

func TestWhere(t *testing.T) {
	testCases := []struct {
		name       string
		build      func(b *Builder)
		combinator Combinator
		expected   string
		values     []interface{}
	}{
		{
			name:       "no predicates emits nothing",
			build:      func(b *Builder) {},
			combinator: And,
			expected:   "",
			values:     nil,
		},
		{
			name: "single predicate ignores combinator",
			build: func(b *Builder) {
				b.Eq("id", uint(42))
			},
			combinator: Or,
			expected:   " WHERE id = ?",
			values:     []interface{}{uint(42)},
		},
		{
			name: "multiple predicates joined by AND in insertion order",
			build: func(b *Builder) {
				b.Eq("id", uint(1)).Eq("title", "Algebra").Eq("position", uint(0))
			},
			combinator: And,
			expected:   " WHERE id = ? AND title = ? AND position = ?",
			values:     []interface{}{uint(1), "Algebra", uint(0)},
		},
		{
			name: "multiple predicates joined by OR",
			build: func(b *Builder) {
				b.Eq("username", "dobb").Eq("password", "pass2")
			},
			combinator: Or,
			expected:   " WHERE username = ? OR password = ?",
			values:     []interface{}{"dobb", "pass2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var b Builder
			tc.build(&b)

			assert.Equal(t, b.Where(tc.combinator), tc.expected, "clause mismatch")
			if diff := cmp.Diff(tc.values, b.Values()); diff != "" {
				t.Errorf("values mismatch: %s", diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	var b Builder
	b.Eq("title", "Calculus").Eq("position", uint(3))

	assert.Equal(t, b.List(), "title = ?, position = ?", "set list mismatch")
}

func TestLimit(t *testing.T) {
	assert.Equal(t, Limit(nil), "", "nil limit should emit nothing")

	n := uint(1)
	assert.Equal(t, Limit(&n), " LIMIT 1", "limit clause mismatch")
}
