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

// Package rule holds the diagnostic descriptor and its localized strings.
package rule

// Severity is the default severity of a rule.
type Severity string

// Known severities.
const (
	Info    Severity = "Info"
	Warning Severity = "Warning"
	Error   Severity = "Error"
)

// Descriptor describes a diagnostic rule.
//
// Title, MessageFormat and Description are message keys, rendered by a [Localizer].
// [analysis.Diagnostic] carries no severity, so Severity and EnabledByDefault are
// informational, kept for display and for compatibility with the rule's other hosts.
//
// [analysis.Diagnostic]: https://pkg.go.dev/golang.org/x/tools/go/analysis#Diagnostic
type Descriptor struct {
	ID               string
	Category         string
	Severity         Severity
	EnabledByDefault bool

	Title         string
	MessageFormat string
	Description   string
}

// ID is the stable identifier of the container initialization rule.
const ID = "ComponentContainerFixAnalyzer"

const (
	titleKey       = ID + ".Title"
	messageKey     = ID + ".MessageFormat"
	descriptionKey = ID + ".Description"
)

// ComponentContainer returns the descriptor of the container initialization rule.
//
// The category is "Naming" for compatibility, although the defect is structural.
func ComponentContainer() Descriptor {
	return Descriptor{
		ID:               ID,
		Category:         "Naming",
		Severity:         Warning,
		EnabledByDefault: true,
		Title:            titleKey,
		MessageFormat:    messageKey,
		Description:      descriptionKey,
	}
}
