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
	"github.com/lectern/lectern/pkg/server/testutils"
)

func TestCreateSectionPositions(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	sections := Sections(db)

	titles := []string{"Algebra", "Geometry", "Analysis", "Topology"}
	for _, title := range titles {
		if err := sections.Create(NewSection{Title: title}); err != nil {
			t.Fatal(errors.Wrapf(err, "creating section %s", title))
		}
	}

	// Positions follow creation order, starting from zero.
	for want, title := range titles {
		row, err := sections.GetOne(&SectionFilter{Title: &title})
		if err != nil {
			t.Fatal(errors.Wrapf(err, "reading back section %s", title))
		}
		assert.Equal(t, row.Position, uint(want), "position of "+title)
	}
}

func TestSwapSections(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	sections := Sections(db)

	first := mustCreateSection(t, sections, "Algebra")
	mustCreateSection(t, sections, "Geometry")
	third := mustCreateSection(t, sections, "Analysis")

	if err := sections.Swap(first.ID, third.ID); err != nil {
		t.Fatal(errors.Wrap(err, "swapping sections"))
	}

	gotFirst, err := sections.GetOne(&SectionFilter{ID: &first.ID})
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading back first section"))
	}
	gotThird, err := sections.GetOne(&SectionFilter{ID: &third.ID})
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading back third section"))
	}

	assert.Equal(t, gotFirst.Position, third.Position, "first section should take the third's position")
	assert.Equal(t, gotThird.Position, first.Position, "third section should take the first's position")

	// Swapping again restores the original order.
	if err := sections.Swap(first.ID, third.ID); err != nil {
		t.Fatal(errors.Wrap(err, "swapping sections back"))
	}

	gotFirst, err = sections.GetOne(&SectionFilter{ID: &first.ID})
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading back first section"))
	}
	assert.Equal(t, gotFirst.Position, first.Position, "double swap should restore the position")
}

func TestSwapSectionsNotFound(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	sections := Sections(db)

	row := mustCreateSection(t, sections, "Algebra")

	t.Run("one side missing", func(t *testing.T) {
		err := sections.Swap(99, row.ID)

		var nf *SwapNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected SwapNotFoundError, got %v", err)
		}
		if nf.MissingA == nil || *nf.MissingA != 99 {
			t.Fatalf("expected missing id 99, got %+v", nf)
		}
		if nf.MissingB != nil {
			t.Fatalf("expected only one missing id, got %+v", nf)
		}
		if !errors.Is(err, ErrNotFound) {
			t.Fatal("SwapNotFoundError should match ErrNotFound")
		}
	})

	t.Run("both sides missing", func(t *testing.T) {
		err := sections.Swap(98, 99)

		var nf *SwapNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected SwapNotFoundError, got %v", err)
		}
		if nf.MissingA == nil || nf.MissingB == nil {
			t.Fatalf("expected both ids reported, got %+v", nf)
		}
		assert.Equal(t, *nf.MissingA, uint(98), "first missing id")
		assert.Equal(t, *nf.MissingB, uint(99), "second missing id")
	})
}
