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

package region

import "github.com/preagonal/gbfcore/gbferrors"

// Reduce runs the four reducers to a fixpoint (spec.md §4.2's main loop):
// each pass walks the active regions reachable from the entry in reverse
// post-order, trying every reducer in priority order at each region and
// restarting the pass the moment one fires. The loop stops when a full
// pass makes no change, which leaves exactly one active region (the
// function's structured body) if the CFG was reducible.
//
// MAX_ITER bounds passes at 4·|regions|, matching spec.md §4.2: each of
// the four reducer kinds can plausibly need one pass per original region
// before it either proves it has nothing left to do or the graph is
// irreducible (e.g. a CFG with multiple entries into a loop body, which
// none of the four rules can fold).
func Reduce(g *Graph, functionName string) error {
	maxIter := 4 * g.Len()
	if maxIter == 0 {
		maxIter = 1
	}

	for iter := 0; ; iter++ {
		if iter >= maxIter {
			return gbferrors.New(gbferrors.ReductionFixpointNotReached,
				gbferrors.Context{FunctionName: functionName},
				"structural reducer did not reach a fixpoint within the iteration budget")
		}

		changed := false
		for _, id := range g.ReversePostOrder(g.Entry()) {
			if !g.Active(id) {
				continue
			}
			for _, r := range reducers() {
				if r.tryApply(g, id) {
					changed = true
					break
				}
			}
			if changed {
				break // restart the pass from the top; the graph shape moved.
			}
		}

		if !changed {
			break
		}
	}

	if len(g.ActiveIDs()) != 1 {
		return gbferrors.New(gbferrors.IrreducibleGraph,
			gbferrors.Context{FunctionName: functionName},
			"region graph did not reduce to a single region")
	}
	return nil
}

// Root returns the single region left after a successful Reduce.
func (g *Graph) Root() *Region {
	ids := g.ActiveIDs()
	if len(ids) != 1 {
		return nil
	}
	return g.Region(ids[0])
}
