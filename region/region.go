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

// Package region implements the region graph and the iterative structural
// reducer (spec.md §3.3, §4.2): the CFG is lifted into a graph of regions,
// one per basic block, whose edges are pattern-matched and collapsed
// (linear merge, virtual-branch tails, conditional-to-if, loops) until one
// region remains holding the function's structured body.
//
// The reducer loop is modeled after the fixpoint-iteration shape of
// _examples/uber-go-nilaway/assertion/function/assertiontree/backprop.go
// (a worklist over CFG blocks, run to a fixpoint) and the copy-then-mutate
// discipline of preprocess_blocks.go's copyGraph (the region graph here is
// built once from the input CFG and then mutated in place by reducers,
// never touching the caller's bytecode.Function).
package region

import "github.com/preagonal/gbfcore/ast"

// ID indexes a region in a Graph's arena.
type ID int

// Type is the closed set of region kinds (spec.md §3.3).
type Type uint8

// The closed set of region kinds.
const (
	// Linear has at most one outgoing edge and no jump expression.
	Linear Type = iota
	// Condition has exactly two outgoing edges, tagged IfTrue/IfFalse,
	// and a jump expression.
	Condition
	// Tail has no outgoing edges.
	Tail
	// Inactive regions are tombstones left behind by a merge; they are
	// ignored by every subsequent pass and are never the target of an
	// edge.
	Inactive
)

// EdgeTag discriminates the three kinds of region-graph edge (spec.md
// §3.3).
type EdgeTag uint8

// The closed set of edge tags.
const (
	Unconditional EdgeTag = iota
	IfTrue
	IfFalse
)

// Edge is one directed region-graph edge.
type Edge struct {
	To  ID
	Tag EdgeTag
}

// Polarity records, for a Condition region, whether the bytecode's branch
// opcode tests "jump when false" (Jne) or "jump when true" (Jeq). The
// Conditional reducer uses this to decide whether JumpExpr needs negating
// before becoming an If's condition (spec.md §4.2 "Condition inversion").
type Polarity uint8

// The two branch polarities the loader can hand us.
const (
	// JumpWhenFalse means the recorded JumpExpr already reflects the
	// truthy-continue semantics (GS2's Jne): no negation needed.
	JumpWhenFalse Polarity = iota
	// JumpWhenTrue means JumpExpr must be negated to serve as an If's
	// condition (GS2's Jeq).
	JumpWhenTrue
)

// Region is one node in the region graph: initially one basic block,
// later an aggregation produced by a reducer (spec.md §3.3, GLOSSARY).
type Region struct {
	ID       ID
	Type     Type
	Nodes    []ast.Node
	JumpExpr ast.Expr // non-nil only for Condition regions
	Polarity Polarity
	Edges    []Edge
}

// Graph is the arena-backed region graph for one function.
type Graph struct {
	regions []*Region
	entry   ID
}

// NewGraph allocates one Linear region per basic block, per spec.md §3.3's
// lifecycle ("regions are created during CFG lifting, one per basic
// block"). entry names the function's entry block index.
func NewGraph(blockCount int, entry int) *Graph {
	g := &Graph{regions: make([]*Region, blockCount), entry: ID(entry)}
	for i := range g.regions {
		g.regions[i] = &Region{ID: ID(i), Type: Linear}
	}
	return g
}

// Entry returns the id of the function's single entry region (spec.md
// §3.3 invariant: exactly one entry region per function).
func (g *Graph) Entry() ID { return g.entry }

// Region returns the region with the given id.
func (g *Graph) Region(id ID) *Region { return g.regions[id] }

// Len returns the total number of region slots, including Inactive ones.
func (g *Graph) Len() int { return len(g.regions) }

// Active reports whether a region id is live (not Inactive).
func (g *Graph) Active(id ID) bool {
	return int(id) >= 0 && int(id) < len(g.regions) && g.regions[id].Type != Inactive
}

// ActiveIDs returns the ids of every live region, in ascending order.
func (g *Graph) ActiveIDs() []ID {
	var ids []ID
	for _, r := range g.regions {
		if r.Type != Inactive {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// AddEdge appends an edge from `from` to `to`.
func (g *Graph) AddEdge(from ID, e Edge) {
	r := g.regions[from]
	r.Edges = append(r.Edges, e)
}

// SetEdges replaces all outgoing edges of `from`.
func (g *Graph) SetEdges(from ID, edges []Edge) {
	g.regions[from].Edges = edges
}

// Predecessors returns the ids of every active region with an edge into
// `to`.
func (g *Graph) Predecessors(to ID) []ID {
	var preds []ID
	for _, r := range g.regions {
		if r.Type == Inactive {
			continue
		}
		for _, e := range r.Edges {
			if e.To == to {
				preds = append(preds, r.ID)
				break
			}
		}
	}
	return preds
}

// MarkInactive tombstones a region: subsequent passes must ignore it, and
// it must never remain the target of any edge (spec.md §3.3 invariant).
func (g *Graph) MarkInactive(id ID) {
	r := g.regions[id]
	r.Type = Inactive
	r.Nodes = nil
	r.JumpExpr = nil
	r.Edges = nil
}

// Append adds nodes to the end of a region's statement list.
func (g *Graph) Append(id ID, nodes ...ast.Node) {
	g.regions[id].Nodes = append(g.regions[id].Nodes, nodes...)
}

// ReversePostOrder returns the ids of every active region reachable from
// `from`, in reverse post-order. The structural reducer and the dominator
// builder both commit to this traversal order (spec.md §5: "the
// implementation MUST pick and document a traversal (reverse post-order
// recommended)").
func (g *Graph) ReversePostOrder(from ID) []ID {
	visited := make(map[ID]bool, len(g.regions))
	var order []ID
	var visit func(id ID)
	visit = func(id ID) {
		if visited[id] || !g.Active(id) {
			return
		}
		visited[id] = true
		for _, e := range g.regions[id].Edges {
			visit(e.To)
		}
		order = append(order, id)
	}
	visit(from)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
