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

package componentmodel

type IComponent interface {
	Dispose()
}

type IContainer interface {
	Add(c IComponent)
}

type Container struct {
	components []IComponent
}

func NewContainer() *Container { return &Container{} }

func (c *Container) Add(comp IComponent) { c.components = append(c.components, comp) }

type Timer struct{}

func NewTimer(container IContainer) *Timer { return &Timer{} }

func (*Timer) Dispose() {}

type ToolTip struct{}

func NewToolTip(container IContainer) *ToolTip { return &ToolTip{} }

func (*ToolTip) Dispose() {}

type Label struct{}

func NewLabel() *Label { return &Label{} }
