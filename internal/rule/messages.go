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

package rule

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type entry struct {
	tag      language.Tag
	key, msg string
}

var entries = [...]entry{
	{language.English, titleKey, "Components container is not initialized"},
	{language.English, messageKey, "Type '%s' has fields constructed from 'components', but InitializeComponent never creates the container"},
	{language.English, descriptionKey, "Components implementing IComponent that pass their 'components' container to " +
		"other fields must create it in InitializeComponent, otherwise the dependent components are never disposed."},

	{language.German, titleKey, "Komponenten-Container wird nicht initialisiert"},
	{language.German, messageKey, "Typ '%s' hat Felder, die mit 'components' konstruiert werden, aber InitializeComponent erzeugt den Container nie"},
	{language.German, descriptionKey, "Komponenten, die IComponent implementieren und ihren 'components'-Container an " +
		"andere Felder weitergeben, müssen ihn in InitializeComponent erzeugen, sonst werden die abhängigen Komponenten nie freigegeben."},
}

var (
	messages  = newCatalog()
	languages = messages.Languages()
	matcher   = language.NewMatcher(languages)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		if err := b.SetString(e.tag, e.key, e.msg); err != nil {
			panic(err)
		}
	}

	return b
}

// Localizer renders the strings of a [Descriptor] in one language.
//
// A Localizer is not safe for concurrent use.
type Localizer struct {
	printer *message.Printer
}

// NewLocalizer returns a [Localizer] for the BCP 47 language tag lang.
// Unknown or malformed tags fall back to English.
func NewLocalizer(lang string) Localizer {
	tag := language.English

	if t, err := language.Parse(lang); err == nil {
		if _, i, c := matcher.Match(t); c != language.No && i < len(languages) {
			tag = languages[i]
		}
	}

	return Localizer{printer: message.NewPrinter(tag, message.Catalog(messages))}
}

// Title renders the title of d.
func (l Localizer) Title(d Descriptor) string {
	return l.printer.Sprintf(d.Title)
}

// Message renders the message format of d with args substituted.
func (l Localizer) Message(d Descriptor, args ...any) string {
	return l.printer.Sprintf(d.MessageFormat, args...)
}

// Description renders the description of d.
func (l Localizer) Description(d Descriptor) string {
	return l.printer.Sprintf(d.Description)
}
