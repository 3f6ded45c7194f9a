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
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/containerinit/internal/check"
	"fillmore-labs.com/containerinit/internal/model"
	"fillmore-labs.com/containerinit/internal/report"
	"fillmore-labs.com/containerinit/internal/rule"
	"fillmore-labs.com/containerinit/internal/symbols"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the containerinit analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("containerinit: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ContainerInit")
	defer task.End()

	// Stage 1: Build the symbol model of the package
	unit := symbols.Build(ctx, p, in, r.behavior)

	// Stage 2: Check every named type, then the whole package
	checker := check.New(r.names)

	var sink check.Collector

	checkTypes(ctx, checker, unit, &sink)
	checker.CheckCompilation(ctx, unit, &sink)

	// Stage 3: Report localized diagnostics in source order
	report.ProcessDiagnostics(ctx, p, sink.Diagnostics(), rule.NewLocalizer(r.lang), url)

	return nil, nil
}

// checkTypes checks all types of unit concurrently.
func checkTypes(ctx context.Context, c check.Checker, unit model.CompilationUnit, sink check.Sink) {
	defer trace.StartRegion(ctx, "CheckTypes").End()

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for decl := range unit.Types() {
		g.Go(func() error {
			c.Check(ctx, unit, decl, sink)

			return nil
		})
	}

	_ = g.Wait() // checks don't fail
}
