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

// Package analyzer implements the containerinit static analysis pass.
//
// # Overview
//
// containerinit detects components following the designer pattern whose
// generated initializer never creates the container that other fields are
// constructed with. Those fields end up registered with a nil container and
// are never disposed together with the component.
//
// A type is reported when
//
//   - it declares the IComponent interface,
//   - it has a field named components of type IContainer,
//   - some field's type has a constructor taking only an IContainer, and
//   - the source of its InitializeComponent method does not contain the
//     container construction statement.
//
// # Example
//
//	var _ componentmodel.IComponent = (*Form)(nil)
//
//	type Form struct { // Type 'Form' has fields constructed from 'components', ...
//	    components componentmodel.IContainer
//	    timer      *Timer // func NewTimer(container componentmodel.IContainer) *Timer
//	}
//
//	func (this *Form) InitializeComponent() {
//	    this.timer = NewTimer(this.components)
//	}
//
// # Go Declarations
//
// Interfaces count as declared when asserted at package level
// (var _ IComponent = (*Form)(nil)) or embedded in the struct. Constructors
// are the NewT and newT functions of the type's package returning T or *T.
//
// # Limitations
//
// The initializer check is textual. The statement (see -statement) must occur
// verbatim in a file declaring the initializer; differently formatted but
// equivalent code is not recognized.
package analyzer
