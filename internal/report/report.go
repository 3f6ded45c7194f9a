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

// Package report converts container check findings into analysis diagnostics.
package report

import (
	"context"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/containerinit/internal/astutil"
	"fillmore-labs.com/containerinit/internal/check"
	"fillmore-labs.com/containerinit/internal/rule"
)

// ProcessDiagnostics renders and emits the findings of a pass.
//
// This is the final phase of the analyzer pipeline. Findings suppressed by a
// //nolint:containerinit comment are dropped, the others are reported with the
// localized message of their rule.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, diagnostics []check.Diagnostic, l rule.Localizer, url string) {
	if len(diagnostics) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	files := astutil.NewFiles(p.Fset, p.Files)

	for _, d := range diagnostics {
		pos := d.Location.Pos

		f, ok := files.Lookup(pos)
		if !ok {
			astutil.InternalError(p, span{pos, d.Location.End}, "Type %s without file info", d.TypeName())

			continue
		}

		if f.NoLint(pos) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      pos,
			End:      d.Location.End,
			Category: d.Rule.Category,
			Message:  l.Message(d.Rule, d.MessageArgs()...),
			URL:      url + "#" + d.Rule.ID,
		})
	}
}

// span implements [analysis.Range].
type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }

func (s span) End() token.Pos { return s.end }
