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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is an error for a lookup that matched no row
	ErrNotFound = errors.New("no matching record found")
	// ErrNothingToUpdate is an error for a patch with no fields set
	ErrNothingToUpdate = errors.New("the patch contains no fields")
	// ErrScopeMismatch is an error for a swap between entities whose
	// scope keys differ
	ErrScopeMismatch = errors.New("cannot swap entities from different scopes")
)

// SwapNotFoundError reports which of a swap's two targets could not be
// resolved. It matches ErrNotFound under errors.Is.
type SwapNotFoundError struct {
	MissingA *uint
	MissingB *uint
}

func (e *SwapNotFoundError) Error() string {
	switch {
	case e.MissingA != nil && e.MissingB != nil:
		return fmt.Sprintf("records %d and %d not found", *e.MissingA, *e.MissingB)
	case e.MissingA != nil:
		return fmt.Sprintf("record %d not found", *e.MissingA)
	case e.MissingB != nil:
		return fmt.Sprintf("record %d not found", *e.MissingB)
	}
	return "record not found"
}

// Is makes the error match ErrNotFound
func (e *SwapNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
