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
	"strings"

	"fillmore-labs.com/containerinit/internal/model"
)

// Defaults of the designer pattern.
const (
	ComponentInterface = "IComponent"
	ContainerType      = "IContainer"
	ContainerField     = "components"
	Initializer        = "InitializeComponent"
	Statement          = "this.components = new System.ComponentModel.Container();"
)

// Config holds the names the checker looks for.
//
// Component and Container match the simple type name, unless they contain a dot,
// in which case they match the package qualified name.
type Config struct {
	Component   string
	Container   string
	Field       string
	Initializer string
	Statement   string
}

// DefaultConfig returns the configuration of the designer pattern.
func DefaultConfig() Config {
	return Config{
		Component:   ComponentInterface,
		Container:   ContainerType,
		Field:       ContainerField,
		Initializer: Initializer,
		Statement:   Statement,
	}
}

// typeName matches type references by simple or qualified name.
type typeName string

func (n typeName) matches(ref model.TypeRef) bool {
	if strings.Contains(string(n), ".") {
		return ref.QualifiedName() == string(n)
	}

	return ref.Name == string(n)
}
