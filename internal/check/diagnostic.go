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

package check

import (
	"cmp"
	"slices"
	"sync"

	"fillmore-labs.com/containerinit/internal/model"
	"fillmore-labs.com/containerinit/internal/rule"
)

// Diagnostic is a finding for one type.
type Diagnostic struct {
	Rule     rule.Descriptor
	Location model.Location

	// Args are the message format arguments, the type's simple name.
	Args []string
}

// MessageArgs returns Args for use with [rule.Localizer.Message].
func (d Diagnostic) MessageArgs() []any {
	args := make([]any, len(d.Args))
	for i, a := range d.Args {
		args[i] = a
	}

	return args
}

// TypeName returns the simple name of the reported type, or "<unknown>".
func (d Diagnostic) TypeName() string {
	if len(d.Args) == 0 {
		return "<unknown>"
	}

	return d.Args[0]
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// Collector is a [Sink] safe for concurrent use.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Report implements [Sink].
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns the collected diagnostics, ordered by position.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	diagnostics := slices.Clone(c.diagnostics)
	slices.SortFunc(diagnostics, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Location.Pos, b.Location.Pos),
			cmp.Compare(a.Location.Filename, b.Location.Filename),
		)
	})

	return diagnostics
}
