// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the containerinit analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// Path is the package path of parsed sources.
const Path = "test"

// Filename is the file name of parsed sources.
const Filename = "test.go"

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically prefixed with a `package test` clause
// unless it already has one, so declarations can be tested without the package scaffolding.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File, []byte) {
	tb.Helper()

	fset := token.NewFileSet()
	content := wrapSource(src)

	f, err := parser.ParseFile(fset, Filename, content, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f, content
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(Path, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Pass parses and type checks src and returns an *[analysis.Pass] for it,
// together with an [inspector.Inspector] over the file.
//
// Diagnostics reported to the pass are appended to the returned slice.
func Pass(tb testing.TB, src string) (*analysis.Pass, *inspector.Inspector, *[]analysis.Diagnostic) {
	tb.Helper()

	fset, f, content := Parse(tb, src)
	pkg, info := Check(tb, fset, f)

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{
		Fset:      fset,
		Files:     []*ast.File{f},
		Pkg:       pkg,
		TypesInfo: info,
		Report:    func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) },
		ReadFile: func(filename string) ([]byte, error) {
			if filename != Filename {
				return nil, &fs.PathError{Op: "read", Path: filename, Err: fs.ErrNotExist}
			}

			return content, nil
		},
	}

	return p, inspector.New(p.Files), &diagnostics
}

func wrapSource(src string) []byte {
	const header = "package " + Path + "\n\n"

	if strings.Contains(src, "\n"+header) {
		return []byte(src)
	}

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return srcFile.Bytes()
}
