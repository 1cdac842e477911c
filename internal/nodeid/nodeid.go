// Copyright (c) 2024 The gbfcore Authors
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

// Package nodeid mints the process-wide monotonic identifiers attached to
// every ast.Node (spec.md §3.1, §9). An ID exists purely for debugging and
// log correlation: structural equality (ast.Node.Equal) must never depend
// on it, and it must never be serialized, since two ASTs built in different
// processes (or different runs of the same process) can be structurally
// identical while minting different ID sequences.
package nodeid

import "sync/atomic"

// ID is an opaque, process-local node identifier.
type ID uint64

var counter atomic.Uint64

// Next mints the next ID in the process-wide monotonic sequence. Safe for
// concurrent use, since batch decompiles many functions' ASTs in parallel.
func Next() ID {
	return ID(counter.Add(1))
}
