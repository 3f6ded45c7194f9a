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

// Package check decides whether a component type fails to create its components container.
//
// # Pipeline
//
// Each type passes through these stages, stopping at the first that rules it out:
//
//  1. Candidate: the type declares the component interface and has a container field
//  2. Dependent: some field's type has a constructor taking only the container
//  3. Initialized: the source of an initializer contains the container construction statement
//  4. Report: a single diagnostic at the type's primary location
//
// Checks of different types share no state and may run concurrently.
package check

import (
	"context"
	"runtime/trace"
	"strings"

	"fillmore-labs.com/containerinit/internal/model"
	"fillmore-labs.com/containerinit/internal/rule"
)

// Checker performs the container initialization check.
type Checker struct {
	rule        rule.Descriptor
	component   typeName
	container   typeName
	field       string
	initializer string
	statement   string
}

// New creates a [Checker] for the given configuration.
func New(c Config) Checker {
	return Checker{
		rule:        rule.ComponentContainer(),
		component:   typeName(c.Component),
		container:   typeName(c.Container),
		field:       c.Field,
		initializer: c.Initializer,
		statement:   c.Statement,
	}
}

// Check runs all stages for decl and reports at most one [Diagnostic] to sink.
func (c Checker) Check(ctx context.Context, unit model.CompilationUnit, decl *model.Type, sink Sink) Verdict {
	defer trace.StartRegion(ctx, "CheckType").End()

	if _, ok := c.Candidate(decl); !ok {
		return NotCandidate
	}

	if ctx.Err() != nil {
		return Cancelled
	}

	if _, ok := c.Dependent(ctx, decl); !ok {
		if ctx.Err() != nil {
			return Cancelled
		}

		return Independent
	}

	if c.Initialized(ctx, unit, decl) {
		return Initialized
	}

	if ctx.Err() != nil {
		return Cancelled
	}

	loc, ok := decl.Primary()
	if !ok {
		return NotCandidate // nowhere to report
	}

	sink.Report(Diagnostic{
		Rule:     c.rule,
		Location: loc,
		Args:     []string{decl.Name},
	})

	return Reported
}

// CheckCompilation runs once after all types of unit are checked.
func (Checker) CheckCompilation(context.Context, model.CompilationUnit, Sink) {}

// Candidate reports whether decl declares the component interface and
// has a container field, which it returns.
func (c Checker) Candidate(decl *model.Type) (model.Member, bool) {
	if decl == nil || !c.isComponent(decl) {
		return model.Member{}, false
	}

	for m := range decl.Lookup(c.field) {
		if m.Kind != model.KindField || !c.container.matches(m.Type) {
			return model.Member{}, false
		}

		return m, true
	}

	return model.Member{}, false
}

func (c Checker) isComponent(decl *model.Type) bool {
	for _, iface := range decl.Interfaces {
		if c.component.matches(iface) {
			return true
		}
	}

	return false
}

// Dependent returns a field of decl whose type has a constructor taking only the container.
//
// Every field is paired with every field type, including the container field itself.
func (c Checker) Dependent(ctx context.Context, decl *model.Type) (model.Member, bool) {
	defer trace.StartRegion(ctx, "Dependent").End()

	for range decl.Fields() {
		if ctx.Err() != nil {
			return model.Member{}, false
		}

		for field := range decl.Fields() {
			if c.constructible(field.Type) {
				return field, true
			}
		}
	}

	return model.Member{}, false
}

func (c Checker) constructible(ref model.TypeRef) bool {
	for _, ctor := range ref.Constructors {
		if len(ctor.Params) == 1 && c.container.matches(ctor.Params[0]) {
			return true
		}
	}

	return false
}

// Initialized reports whether the source of any initializer declaration of decl
// contains the container construction statement.
//
// Matching is textual: case and whitespace sensitive, anywhere in the source.
// Sources that can't be read count as not containing the statement, and an
// empty statement is never found.
func (c Checker) Initialized(ctx context.Context, unit model.CompilationUnit, decl *model.Type) bool {
	defer trace.StartRegion(ctx, "Initialized").End()

	if c.statement == "" {
		return false
	}

	for m := range decl.Lookup(c.initializer) {
		if m.Kind != model.KindMethod {
			continue
		}

		for _, loc := range m.Locations {
			if text, ok := unit.SourceText(loc); ok && strings.Contains(text, c.statement) {
				return true
			}
		}
	}

	return false
}
