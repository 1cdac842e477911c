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

import "golang.org/x/tools/container/intsets"

// dominatorTree computes the immediate dominator of every region reachable
// from the graph's entry, using the Cooper/Harvey/Kennedy iterative
// algorithm cited by _examples/tmc-mirror-go.tools/ssa/lift.go (the same
// algorithm that file's domFrontier/Idom machinery is built on, there
// applied to Go SSA basic blocks; here applied to region-graph nodes). The
// iterative formulation is preferred over Lengauer-Tarjan because region
// graphs in practice are small (one region per basic block before
// reduction) and the simple algorithm is easy to verify against the
// confluence property required by spec.md §5 (L2).
type dominatorTree struct {
	idom map[ID]ID
	pos  map[ID]int
}

// buildDominatorTree computes the dominator tree of g's currently-active
// regions, reachable from entry.
func buildDominatorTree(g *Graph, entry ID) *dominatorTree {
	order := g.ReversePostOrder(entry)
	pos := make(map[ID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	idom := map[ID]ID{entry: entry}
	changed := true
	for changed {
		changed = false
		for _, b := range order {
			if b == entry {
				continue
			}
			var newIdom ID
			set := false
			for _, p := range g.Predecessors(b) {
				if _, ok := pos[p]; !ok {
					continue // predecessor not reachable from entry in this order
				}
				if _, ok := idom[p]; !ok {
					continue // not processed yet this pass
				}
				if !set {
					newIdom = p
					set = true
					continue
				}
				newIdom = intersect(idom, pos, newIdom, p)
			}
			if set && idom[b] != newIdom {
				idom[b] = newIdom
				changed = true
			}
		}
	}

	return &dominatorTree{idom: idom, pos: pos}
}

// intersect walks both fingers up the partially-built dominator tree until
// they meet, using each region's position in reverse post-order as the
// comparison key (a dominator always has a smaller RPO position than the
// node it dominates).
func intersect(idom map[ID]ID, pos map[ID]int, a, b ID) ID {
	for a != b {
		for pos[a] > pos[b] {
			a = idom[a]
		}
		for pos[b] > pos[a] {
			b = idom[b]
		}
	}
	return a
}

// Dominates reports whether a dominates b (every path from the graph's
// entry to b passes through a). A region trivially dominates itself.
func (t *dominatorTree) Dominates(a, b ID) bool {
	if a == b {
		return true
	}
	cur, ok := t.idom[b]
	if !ok {
		return false
	}
	for {
		if cur == a {
			return true
		}
		parent, ok := t.idom[cur]
		if !ok || parent == cur {
			return false
		}
		cur = parent
	}
}

// reachableSet returns the bitset of region ids reachable from `from`
// without passing through `avoidThrough` (used by the Loop reducer to
// extract a loop body). Backed by intsets.Sparse, the sparse integer set
// golang.org/x/tools uses throughout its SSA/pointer analysis packages for
// exactly this shape of small, dense-ish id sets.
func reachableSet(g *Graph, from ID, avoidThrough ID) *intsets.Sparse {
	var set intsets.Sparse
	stack := []ID{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if set.Has(int(id)) {
			continue
		}
		set.Insert(int(id))
		if id == avoidThrough {
			continue
		}
		for _, e := range g.Region(id).Edges {
			if !set.Has(int(e.To)) {
				stack = append(stack, e.To)
			}
		}
	}
	return &set
}
