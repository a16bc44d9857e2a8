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

// Package assets embeds the static admin web pages.
package assets

import (
	"embed"

	"github.com/pkg/errors"
)

//go:embed static
var staticFiles embed.FS

// MustGet returns the content of the named static file. It panics when
// the file was not embedded; page names are fixed at compile time.
func MustGet(name string) []byte {
	ret, err := staticFiles.ReadFile("static/" + name)
	if err != nil {
		panic(errors.Wrapf(err, "reading static file %s", name))
	}

	return ret
}
