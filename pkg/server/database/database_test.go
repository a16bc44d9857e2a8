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

package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}

	return db
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := initTestDB(t)

	if err := InitSchema(db); err != nil {
		t.Fatalf("first InitSchema: %v", err)
	}
	if err := InitSchema(db); err != nil {
		t.Fatalf("second InitSchema should be a no-op: %v", err)
	}

	for _, table := range []string{"users", "sessions", "sections", "subsections", "notes"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s missing after InitSchema", table)
		}
	}
}

func TestDropSchema(t *testing.T) {
	db := initTestDB(t)

	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	if err := DropSchema(db); err != nil {
		t.Fatalf("DropSchema: %v", err)
	}

	for _, table := range []string{"users", "sessions", "sections", "subsections", "notes"} {
		if db.Migrator().HasTable(table) {
			t.Errorf("table %s still present after DropSchema", table)
		}
	}
}
