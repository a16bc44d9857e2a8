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
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open initializes the database connection. A URL starting with
// postgres:// connects to PostgreSQL; anything else is treated as a
// path to a SQLite database file.
func Open(databaseURL string) *gorm.DB {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var db *gorm.DB
	var err error
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		db, err = gorm.Open(postgres.Open(databaseURL), cfg)
	} else {
		dir := filepath.Dir(databaseURL)
		if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
			panic(errors.Wrapf(mkErr, "creating database directory at %s", dir))
		}

		// _fk turns on foreign key enforcement, which SQLite leaves
		// off by default.
		db, err = gorm.Open(sqlite.Open(databaseURL+"?_fk=1"), cfg)
	}
	if err != nil {
		panic(errors.Wrap(err, "opening database connection"))
	}

	return db
}

// InitSchema creates any missing tables, indexes and foreign keys. It
// is idempotent and safe to run on every startup.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Session{},
		&Section{},
		&Subsection{},
		&Note{},
	); err != nil {
		return errors.Wrap(err, "migrating schema")
	}

	return nil
}

// DropSchema removes every table. Used only in test setup.
func DropSchema(db *gorm.DB) error {
	// Children first so that foreign keys do not get in the way.
	if err := db.Migrator().DropTable(
		&Note{},
		&Subsection{},
		&Section{},
		&Session{},
		&User{},
	); err != nil {
		return errors.Wrap(err, "dropping tables")
	}

	return nil
}
