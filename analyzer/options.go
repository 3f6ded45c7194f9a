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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/containerinit/internal/config"
)

// Option configures specific behavior of a [New] containerinit analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure checking types declared in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithTests is an [Option] to configure checking types declared in test files.
func WithTests(tests bool) Option { return testsOption{tests: tests} }

type testsOption struct{ tests bool }

func (o testsOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeTests, o.tests)
}

func (o testsOption) LogAttr() slog.Attr {
	return slog.Bool("tests", o.tests)
}

// WithStatement is an [Option] to configure the container construction statement
// searched for in the initializer source.
func WithStatement(statement string) Option { return statementOption{statement: statement} }

type statementOption struct{ statement string }

func (o statementOption) apply(r *runOptions) {
	r.names.Statement = o.statement
}

func (o statementOption) LogAttr() slog.Attr {
	return slog.String("statement", o.statement)
}

// WithComponentInterface is an [Option] to configure the name of the component interface.
// A name containing a dot is matched against the package qualified name.
func WithComponentInterface(component string) Option {
	return componentOption{component: component}
}

type componentOption struct{ component string }

func (o componentOption) apply(r *runOptions) {
	r.names.Component = o.component
}

func (o componentOption) LogAttr() slog.Attr {
	return slog.String("component", o.component)
}

// WithContainerType is an [Option] to configure the name of the container type.
// A name containing a dot is matched against the package qualified name.
func WithContainerType(container string) Option {
	return containerOption{container: container}
}

type containerOption struct{ container string }

func (o containerOption) apply(r *runOptions) {
	r.names.Container = o.container
}

func (o containerOption) LogAttr() slog.Attr {
	return slog.String("container", o.container)
}

// WithField is an [Option] to configure the name of the container field.
func WithField(field string) Option { return fieldOption{field: field} }

type fieldOption struct{ field string }

func (o fieldOption) apply(r *runOptions) {
	r.names.Field = o.field
}

func (o fieldOption) LogAttr() slog.Attr {
	return slog.String("field", o.field)
}

// WithInitializer is an [Option] to configure the name of the initializer method.
func WithInitializer(initializer string) Option { return initializerOption{initializer: initializer} }

type initializerOption struct{ initializer string }

func (o initializerOption) apply(r *runOptions) {
	r.names.Initializer = o.initializer
}

func (o initializerOption) LogAttr() slog.Attr {
	return slog.String("initializer", o.initializer)
}

// WithLanguage is an [Option] to configure the language of diagnostic messages.
func WithLanguage(lang string) Option { return languageOption{lang: lang} }

type languageOption struct{ lang string }

func (o languageOption) apply(r *runOptions) {
	r.lang = o.lang
}

func (o languageOption) LogAttr() slog.Attr {
	return slog.String("lang", o.lang)
}
