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
package gclplugin

import containerinit "fillmore-labs.com/containerinit/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Tests enables checking types declared in test files.
	Tests *bool `json:"tests,omitzero"`
	// Statement is the container construction statement expected in the initializer.
	Statement *string `json:"statement,omitzero"`
	// Component is the name of the component interface.
	Component *string `json:"component,omitzero"`
	// Container is the name of the container type.
	Container *string `json:"container,omitzero"`
	// Field is the name of the container field.
	Field *string `json:"field,omitzero"`
	// Initializer is the name of the initializer method.
	Initializer *string `json:"initializer,omitzero"`
	// Lang is the language of diagnostic messages.
	Lang *string `json:"lang,omitzero"`
}

// Options converts [Settings] into a list of [containerinit.Option] for the containerinit analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []containerinit.Option {
	var opts []containerinit.Option

	opts = appendOption(opts, s.Tests, containerinit.WithTests)
	opts = appendOption(opts, s.Statement, containerinit.WithStatement)
	opts = appendOption(opts, s.Component, containerinit.WithComponentInterface)
	opts = appendOption(opts, s.Container, containerinit.WithContainerType)
	opts = appendOption(opts, s.Field, containerinit.WithField)
	opts = appendOption(opts, s.Initializer, containerinit.WithInitializer)
	opts = appendOption(opts, s.Lang, containerinit.WithLanguage)

	return opts
}

// appendOption appends a non-nil setting to a [containerinit.Option] list.
func appendOption[T any](opts []containerinit.Option, value *T, constructor func(T) containerinit.Option) []containerinit.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
