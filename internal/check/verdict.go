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

// Verdict is the terminal state of checking one type.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// NotCandidate indicates the type lacks the component capability or the container field.
	NotCandidate Verdict = iota // not-candidate

	// Independent indicates no field can be constructed from the container.
	Independent // independent

	// Initialized indicates the initializer creates the container.
	Initialized // initialized

	// Reported indicates a diagnostic was reported for the type.
	Reported // reported

	// Cancelled indicates the check was aborted before reaching a decision.
	Cancelled // cancelled
)
