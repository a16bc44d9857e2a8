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
	"time"
)

// User is a model for a user account
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`
}

// Session represents an authenticated user session. Expiry is checked
// lazily at authentication time, not by a background sweep.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Token     string    `gorm:"uniqueIndex;size:255;not null" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Section is a top-level grouping of lecture notes. Positions are
// unique across all sections.
type Section struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Position uint   `gorm:"uniqueIndex:idx_sections_position;not null" json:"position"`
}

// Subsection is a grouping within a section. Positions are unique among
// the subsections of the same section.
type Subsection struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Title     string   `gorm:"size:255;not null" json:"title"`
	Position  uint     `gorm:"uniqueIndex:idx_subsections_scope_position;not null" json:"position"`
	SectionID uint     `gorm:"not null;uniqueIndex:idx_subsections_scope_position" json:"section_id"`
	Section   *Section `gorm:"foreignKey:SectionID" json:"-"`
}

// Note is a single lecture note link. It may hang off a subsection, off
// a section directly, or off neither. Positions are unique among the
// notes of the same subsection; notes without a subsection draw their
// positions from the table-wide sequence.
type Note struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	URL          string      `gorm:"not null" json:"url"`
	Position     uint        `gorm:"uniqueIndex:idx_notes_scope_position;not null" json:"position"`
	SectionID    *uint       `gorm:"index" json:"section_id"`
	Section      *Section    `gorm:"foreignKey:SectionID" json:"-"`
	SubsectionID *uint       `gorm:"uniqueIndex:idx_notes_scope_position" json:"subsection_id"`
	Subsection   *Subsection `gorm:"foreignKey:SubsectionID" json:"-"`
}
