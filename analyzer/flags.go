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
	"flag"

	"fillmore-labs.com/containerinit/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBehaviorValue(&r.behavior, config.IncludeGenerated), "generated", "check types declared in generated files")
	flags.Var(newBehaviorValue(&r.behavior, config.IncludeTests), "tests", "check types declared in test files")

	flags.StringVar(&r.names.Statement, "statement", r.names.Statement, "container construction statement expected in the initializer")
	flags.StringVar(&r.names.Component, "component", r.names.Component, "name of the component interface")
	flags.StringVar(&r.names.Container, "container", r.names.Container, "name of the container type")
	flags.StringVar(&r.names.Field, "field", r.names.Field, "name of the container field")
	flags.StringVar(&r.names.Initializer, "initializer", r.names.Initializer, "name of the initializer method")

	flags.StringVar(&r.lang, "lang", r.lang, "language of diagnostic messages")
}
