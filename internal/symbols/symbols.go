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

// Package symbols builds the symbol model of a Go package.
//
// Go has no implements clause, so the interfaces a type declares are taken from
// compile-time assertions at package level:
//
//	var _ componentmodel.IComponent = (*Form)(nil)
//
// from interfaces embedded in the type's struct, and from the structs it embeds.
// Constructors of a type T are the package level functions NewT or newT
// returning T or *T.
package symbols

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/containerinit/internal/astutil"
	"fillmore-labs.com/containerinit/internal/config"
	"fillmore-labs.com/containerinit/internal/model"
)

// Build creates the compilation unit of the package analyzed by p.
//
// Types declared in generated or test files are left out unless enabled in behavior.
func Build(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, behavior config.Behaviors) *model.Unit {
	defer trace.StartRegion(ctx, "Symbols").End()

	b := builder{
		fset:     p.Fset,
		info:     p.TypesInfo,
		pkg:      p.Pkg,
		declared: make(map[*types.TypeName][]types.Type),
	}

	var (
		currentFile astutil.CurrentFile
		included    bool
	)

	in.Root().Inspect(
		[]ast.Node{(*ast.File)(nil), (*ast.FuncDecl)(nil), (*ast.GenDecl)(nil)},
		func(c inspector.Cursor) bool {
			switch n := c.Node().(type) {
			case *ast.File:
				currentFile = astutil.NewCurrentFile(p.Fset, n)
				included = (behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()) &&
					(behavior.Enabled(config.IncludeTests) || !currentFile.Test())

				return currentFile.Valid()

			case *ast.FuncDecl:
				return false // local types are not part of the model

			case *ast.GenDecl:
				switch n.Tok {
				case token.TYPE:
					if included {
						b.collectTypes(n)
					}

				case token.VAR:
					b.collectAssertions(n)
				}

				return false

			default:
				astutil.InternalError(p, n, "Unexpected node type: %T", n)

				return false
			}
		},
	)

	readFile := p.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	return &model.Unit{
		Decls:    b.types(),
		ReadFile: readFile,
	}
}

type builder struct {
	fset *token.FileSet
	info *types.Info
	pkg  *types.Package

	// names holds the named types in declaration order.
	names []*types.TypeName

	// declared maps types to the interfaces asserted for them.
	declared map[*types.TypeName][]types.Type
}

// collectTypes records the named types of a type declaration.
func (b *builder) collectTypes(decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		tspec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		obj, ok := b.info.Defs[tspec.Name].(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}

		if _, ok := obj.Type().(*types.Named); !ok {
			continue
		}

		b.names = append(b.names, obj)
	}
}

// collectAssertions records interface assertions of the form var _ I = (*T)(nil).
func (b *builder) collectAssertions(decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok || vspec.Type == nil {
			continue
		}

		iface := b.info.TypeOf(vspec.Type)
		if iface == nil || !types.IsInterface(iface) {
			continue
		}

		for i, name := range vspec.Names {
			if name.Name != "_" || i >= len(vspec.Values) {
				continue
			}

			named := namedOf(b.info.TypeOf(vspec.Values[i]))
			if named == nil || named.Obj().Pkg() != b.pkg {
				continue
			}

			obj := named.Obj()
			b.declared[obj] = append(b.declared[obj], iface)
		}
	}
}

// types converts the collected named types into model declarations.
func (b *builder) types() []*model.Type {
	decls := make([]*model.Type, 0, len(b.names))

	for _, obj := range b.names {
		named, _ := obj.Type().(*types.Named)

		decl := &model.Type{
			Name:      obj.Name(),
			Path:      b.pkg.Path(),
			Locations: []model.Location{b.location(obj)},
		}

		if st, ok := named.Underlying().(*types.Struct); ok {
			for i := range st.NumFields() {
				f := st.Field(i)
				decl.Members = append(decl.Members, model.Member{
					Name:      f.Name(),
					Kind:      model.KindField,
					Type:      typeRef(f.Type(), true),
					Locations: []model.Location{b.location(f)},
				})
			}
		}

		for i := range named.NumMethods() {
			m := named.Method(i)
			decl.Members = append(decl.Members, model.Member{
				Name:      m.Name(),
				Kind:      model.KindMethod,
				Locations: []model.Location{b.location(m)},
			})
		}

		decl.Interfaces = capabilities(b.inherited(obj))

		decls = append(decls, decl)
	}

	return decls
}

func (b *builder) location(obj types.Object) model.Location {
	pos := obj.Pos()

	return model.Location{
		Filename: b.fset.PositionFor(pos, false).Filename,
		Pos:      pos,
		End:      pos + token.Pos(len(obj.Name())),
	}
}

// inherited returns the interfaces declared for obj, including those of embedded
// interfaces and, recursively, of embedded structs.
//
// Only assertions in the analyzed package are known, so a base type from another
// package contributes just its embedded interfaces.
func (b *builder) inherited(obj *types.TypeName) []types.Type {
	var (
		declared []types.Type
		seen     = make(map[*types.TypeName]bool)
	)

	var add func(obj *types.TypeName)
	add = func(obj *types.TypeName) {
		if seen[obj] {
			return
		}
		seen[obj] = true

		declared = append(declared, b.declared[obj]...)

		st, ok := obj.Type().Underlying().(*types.Struct)
		if !ok {
			return
		}

		for i := range st.NumFields() {
			f := st.Field(i)
			if !f.Embedded() {
				continue
			}

			if types.IsInterface(f.Type()) {
				declared = append(declared, f.Type())

				continue
			}

			if base := namedOf(f.Type()); base != nil {
				add(base.Obj())
			}
		}
	}

	add(obj)

	return declared
}

// capabilities returns the given interfaces and all interfaces they embed, transitively.
func capabilities(declared []types.Type) []model.TypeRef {
	var (
		refs []model.TypeRef
		seen = make(map[*types.TypeName]bool)
	)

	var add func(t types.Type)
	add = func(t types.Type) {
		named := namedOf(t)
		if named == nil {
			return // unnamed interface literal
		}

		if seen[named.Obj()] {
			return
		}
		seen[named.Obj()] = true

		refs = append(refs, typeRef(named, false))

		iface, ok := named.Underlying().(*types.Interface)
		if !ok {
			return
		}

		for i := range iface.NumEmbeddeds() {
			add(iface.EmbeddedType(i))
		}
	}

	for _, t := range declared {
		add(t)
	}

	return refs
}

// namedOf returns the named type of t or *t, nil otherwise.
func namedOf(t types.Type) *types.Named {
	if t == nil {
		return nil
	}

	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, _ := t.(*types.Named)

	return named
}
