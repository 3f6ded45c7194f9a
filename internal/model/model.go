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

// Package model describes the read-only symbol model the container checks operate on.
//
// A [CompilationUnit] is built once by the host and never modified afterwards,
// so every value reachable from it can be shared between concurrent checks.
package model

import (
	"go/token"
	"iter"
)

// CompilationUnit is the semantic model of one compilation.
type CompilationUnit interface {
	// Types yields every named type of the compilation exactly once, in no particular order.
	Types() iter.Seq[*Type]

	// SourceText returns the complete text of the source containing loc.
	SourceText(loc Location) (string, bool)
}

// Kind classifies a type member.
type Kind uint8

const (
	// KindField is a data member.
	KindField Kind = iota + 1

	// KindMethod is a method.
	KindMethod
)

// Location is a source span of a declaration.
type Location struct {
	Filename string
	Pos, End token.Pos
}

// TypeRef is a resolved reference to a type.
type TypeRef struct {
	// Name is the simple name, empty for unnamed types.
	Name string

	// Path is the package path, empty for predeclared or unresolved types.
	Path string

	// Constructors lists the available constructor signatures.
	Constructors []Signature
}

// QualifiedName returns the package qualified name of the type.
func (r TypeRef) QualifiedName() string {
	if r.Path == "" {
		return r.Name
	}

	return r.Path + "." + r.Name
}

// Signature is a constructor signature.
type Signature struct {
	Name   string
	Params []TypeRef
}

// Member is a field or method of a [Type].
type Member struct {
	Name      string
	Kind      Kind
	Type      TypeRef // declared type, only for fields
	Locations []Location
}

// Type is a named type declaration.
type Type struct {
	Name string
	Path string

	// Interfaces holds all declared capabilities, including the ones inherited through embedding.
	Interfaces []TypeRef

	Members   []Member
	Locations []Location
}

// Lookup yields all members named name.
func (t *Type) Lookup(name string) iter.Seq[Member] {
	return func(yield func(Member) bool) {
		for _, m := range t.Members {
			if m.Name != name {
				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// Fields yields all members of kind [KindField].
func (t *Type) Fields() iter.Seq[Member] {
	return func(yield func(Member) bool) {
		for _, m := range t.Members {
			if m.Kind != KindField {
				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// Primary returns the first declaration location of the type.
func (t *Type) Primary() (Location, bool) {
	if len(t.Locations) == 0 {
		return Location{}, false
	}

	return t.Locations[0], true
}
