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

import "github.com/preagonal/gbfcore/ast"

// loopReducer recognizes a while-loop: region L is Condition, one of its
// successors (directly or through a body of already-merged regions) has a
// back edge to L, and L dominates every region in that body (spec.md
// §4.2, precondition "a region L has a back-edge from some region B to L,
// and L dominates B"). The other successor of L is the loop's exit.
type loopReducer struct{}

func (loopReducer) name() string { return "loop" }

func (loopReducer) tryApply(g *Graph, id ID) bool {
	l := g.Region(id)
	if l.Type != Condition || len(l.Edges) != 2 {
		return false
	}

	var trueID, falseID ID
	for _, e := range l.Edges {
		switch e.Tag {
		case IfTrue:
			trueID = e.To
		case IfFalse:
			falseID = e.To
		}
	}

	dt := buildDominatorTree(g, g.Entry())

	if tryWhile(g, dt, l, trueID, falseID, conditionExpr(l)) {
		return true
	}
	if tryWhile(g, dt, l, falseID, trueID, negate(conditionExpr(l))) {
		return true
	}
	return false
}

// tryWhile attempts to fold bodyEntry (and whatever already-merged chain
// hangs off it) into a While guarded by cond, with exitID as the region L
// falls through to once the loop ends.
func tryWhile(g *Graph, dt *dominatorTree, l *Region, bodyEntry, exitID ID, cond ast.Expr) bool {
	if !g.Active(bodyEntry) || bodyEntry == l.ID {
		return false
	}

	backID, ok := findBackEdge(g, dt, l.ID, bodyEntry)
	if !ok {
		return false
	}

	body := reachableSet(g, bodyEntry, backID)
	// Every region in the body must be dominated by L: otherwise some
	// other path reaches into the middle of the loop and this isn't a
	// single-entry natural loop (spec.md §5 L2, confluence).
	for _, rid := range g.ActiveIDs() {
		if body.Has(int(rid)) && !dt.Dominates(l.ID, rid) {
			return false
		}
	}
	// No region inside the body may be entered from outside {L, body}.
	for _, rid := range g.ActiveIDs() {
		if !body.Has(int(rid)) {
			continue
		}
		for _, p := range g.Predecessors(rid) {
			if p != l.ID && !body.Has(int(p)) {
				return false
			}
		}
	}

	order := g.ReversePostOrder(bodyEntry)
	var stmts []ast.Node
	for _, rid := range order {
		if !body.Has(int(rid)) {
			continue
		}
		stmts = append(stmts, g.Region(rid).Nodes...)
	}

	whileNode := ast.NewWhile(cond, ast.NewBlock(stmts))
	l.Nodes = append(l.Nodes, whileNode)
	l.JumpExpr = nil
	l.Type = Linear
	for _, rid := range order {
		if body.Has(int(rid)) {
			g.MarkInactive(rid)
		}
	}
	g.SetEdges(l.ID, []Edge{{To: exitID, Tag: Unconditional}})
	return true
}

// findBackEdge reports a region B, reachable from bodyEntry, with an edge
// to l that l dominates — the defining property of a natural loop back
// edge (spec.md GLOSSARY "Back edge").
func findBackEdge(g *Graph, dt *dominatorTree, l, bodyEntry ID) (ID, bool) {
	for _, rid := range g.ReversePostOrder(bodyEntry) {
		if !dt.Dominates(l, rid) {
			continue
		}
		for _, e := range g.Region(rid).Edges {
			if e.To == l {
				return rid, true
			}
		}
	}
	return 0, false
}
