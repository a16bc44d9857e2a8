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

package app

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/server/store"
)

// TreeNote is a note as it appears in the nested tree.
type TreeNote struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Position     uint   `json:"position"`
	SectionID    *uint  `json:"section_id"`
	SubsectionID *uint  `json:"subsection_id"`
}

// TreeSubsection is a subsection with its notes attached.
type TreeSubsection struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Position  uint       `json:"position"`
	SectionID uint       `json:"section_id"`
	Notes     []TreeNote `json:"notes"`
}

// TreeSection is a section with its subsections and its directly
// attached notes.
type TreeSection struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Position    uint             `json:"position"`
	Subsections []TreeSubsection `json:"subsections"`
	Notes       []TreeNote       `json:"notes"`
}

// Tree is the whole hierarchy in one nested view.
type Tree struct {
	Sections []TreeSection `json:"sections"`
}

// Tree assembles the nested view from three flat reads. Notes land
// under their subsection when they have one, under their section when
// they only have a section, and drop out of the view otherwise. Every
// level is sorted by position.
func (a *App) Tree() (Tree, error) {
	sections, err := a.Sections.GetMany(&store.SectionFilter{})
	if err != nil {
		return Tree{}, errors.Wrap(err, "fetching sections")
	}
	subsections, err := a.Subsections.GetMany(&store.SubsectionFilter{})
	if err != nil {
		return Tree{}, errors.Wrap(err, "fetching subsections")
	}
	notes, err := a.Notes.GetMany(&store.NoteFilter{})
	if err != nil {
		return Tree{}, errors.Wrap(err, "fetching notes")
	}

	notesBySubsection := map[uint][]TreeNote{}
	notesBySection := map[uint][]TreeNote{}
	for _, n := range notes {
		item := TreeNote{
			ID:           n.ID,
			Name:         n.Name,
			URL:          n.URL,
			Position:     n.Position,
			SectionID:    n.SectionID,
			SubsectionID: n.SubsectionID,
		}

		if n.SubsectionID != nil {
			notesBySubsection[*n.SubsectionID] = append(notesBySubsection[*n.SubsectionID], item)
		} else if n.SectionID != nil {
			notesBySection[*n.SectionID] = append(notesBySection[*n.SectionID], item)
		}
	}

	subsectionsBySection := map[uint][]TreeSubsection{}
	for _, s := range subsections {
		subNotes := notesBySubsection[s.ID]
		sortNotes(subNotes)

		subsectionsBySection[s.SectionID] = append(subsectionsBySection[s.SectionID], TreeSubsection{
			ID:        s.ID,
			Title:     s.Title,
			Position:  s.Position,
			SectionID: s.SectionID,
			Notes:     subNotes,
		})
	}

	items := make([]TreeSection, 0, len(sections))
	for _, s := range sections {
		subs := subsectionsBySection[s.ID]
		sort.Slice(subs, func(i, j int) bool {
			return subs[i].Position < subs[j].Position
		})

		sectionNotes := notesBySection[s.ID]
		sortNotes(sectionNotes)

		items = append(items, TreeSection{
			ID:          s.ID,
			Title:       s.Title,
			Position:    s.Position,
			Subsections: subs,
			Notes:       sectionNotes,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	return Tree{Sections: items}, nil
}

func sortNotes(notes []TreeNote) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Position < notes[j].Position
	})
}
