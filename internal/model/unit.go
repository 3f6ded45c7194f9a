// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"io/fs"
	"iter"
	"slices"
)

// Unit is a [CompilationUnit] holding its type declarations in memory.
type Unit struct {
	Decls []*Type

	// ReadFile returns the contents of a source file. A nil ReadFile has no sources.
	ReadFile func(filename string) ([]byte, error)
}

var _ CompilationUnit = (*Unit)(nil)

// Types implements [CompilationUnit].
func (u *Unit) Types() iter.Seq[*Type] {
	if u == nil {
		return func(func(*Type) bool) {}
	}

	return slices.Values(u.Decls)
}

// SourceText implements [CompilationUnit].
func (u *Unit) SourceText(loc Location) (string, bool) {
	if u == nil || u.ReadFile == nil || loc.Filename == "" {
		return "", false
	}

	content, err := u.ReadFile(loc.Filename)
	if err != nil {
		return "", false
	}

	return string(content), true
}

// Sources returns a ReadFile function serving the given file contents.
func Sources(files map[string]string) func(string) ([]byte, error) {
	return func(filename string) ([]byte, error) {
		content, ok := files[filename]
		if !ok {
			return nil, &fs.PathError{Op: "read", Path: filename, Err: fs.ErrNotExist}
		}

		return []byte(content), nil
	}
}
