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
	"testing"

	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/assert"
	"github.com/lectern/lectern/pkg/server/query"
	"github.com/lectern/lectern/pkg/server/testutils"
)

func TestUserFilterCombinators(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	users := Users(db)

	if err := users.Insert(NewUser{Username: "dobb", Password: "pass1"}); err != nil {
		t.Fatal(errors.Wrap(err, "inserting user"))
	}
	if err := users.Insert(NewUser{Username: "ivgap04", Password: "pass2"}); err != nil {
		t.Fatal(errors.Wrap(err, "inserting user"))
	}

	t.Run("or matches either predicate", func(t *testing.T) {
		rows, err := users.GetMany(&UserFilter{
			Username: strPtr("dobb"),
			Password: strPtr("pass2"),
			Op:       query.Or,
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "listing users"))
		}
		assert.Equal(t, len(rows), 2, "each user matches one predicate")
	})

	t.Run("and requires both predicates", func(t *testing.T) {
		rows, err := users.GetMany(&UserFilter{
			Username: strPtr("dobb"),
			Password: strPtr("pass2"),
			Op:       query.And,
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "listing users"))
		}
		assert.Equal(t, len(rows), 0, "no user matches both predicates")
	})

	t.Run("and with a consistent pair matches one", func(t *testing.T) {
		rows, err := users.GetMany(&UserFilter{
			Username: strPtr("dobb"),
			Password: strPtr("pass1"),
			Op:       query.And,
		})
		if err != nil {
			t.Fatal(errors.Wrap(err, "listing users"))
		}
		assert.Equal(t, len(rows), 1, "exactly one user matches")
		assert.Equal(t, rows[0].Username, "dobb", "matched username")
	})
}

func TestUserUniqueUsername(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	users := Users(db)

	if err := users.Insert(NewUser{Username: "dobb", Password: "pass1"}); err != nil {
		t.Fatal(errors.Wrap(err, "inserting user"))
	}

	if err := users.Insert(NewUser{Username: "dobb", Password: "pass3"}); err == nil {
		t.Fatal("duplicate username should fail the uniqueness constraint")
	}
}
