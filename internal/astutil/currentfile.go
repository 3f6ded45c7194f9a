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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// containerinit is the name of the linter.
const containerinit = "containerinit"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Test returns true if the file is a test file.
func (c CurrentFile) Test() bool {
	return c.handle != nil && strings.HasSuffix(c.handle.Name(), "_test.go")
}

// Contains reports whether pos lies within the file.
func (c CurrentFile) Contains(pos token.Pos) bool {
	return c.handle != nil && c.handle.Base() <= int(pos) && int(pos) <= c.handle.Base()+c.handle.Size()
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLint checks whether a declaration at pos is suppressed by a //nolint:containerinit
// comment, either on the same line or on the line directly above.
func (c CurrentFile) NoLint(pos token.Pos) bool {
	if c.file == nil || !c.Contains(pos) {
		return false
	}

	line := c.line(pos)

	// find the first comment starting after the declaration
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })

	if i < len(c.file.Comments) {
		if comment := c.file.Comments[i].List[0]; c.line(comment.Pos()) == line && CommentHasNoLint(comment) {
			return true
		}
	}

	if i > 0 {
		group := c.file.Comments[i-1]
		if comment := group.List[len(group.List)-1]; c.line(comment.Pos()) == line-1 && CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:containerinit` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == containerinit || l == "all" {
			return true
		}
	}

	return false
}

// Files indexes the [CurrentFile] of each file of a package.
type Files []CurrentFile

// NewFiles creates the [Files] of a package.
func NewFiles(fset *token.FileSet, files []*ast.File) Files {
	index := make(Files, 0, len(files))
	for _, f := range files {
		if c := NewCurrentFile(fset, f); c.Valid() {
			index = append(index, c)
		}
	}

	return index
}

// Lookup returns the file containing pos.
func (f Files) Lookup(pos token.Pos) (CurrentFile, bool) {
	for _, c := range f {
		if c.Contains(pos) {
			return c, true
		}
	}

	return CurrentFile{}, false
}
