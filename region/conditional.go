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

import (
	"github.com/preagonal/gbfcore/ast"
)

// conditionalReducer recognizes if-then and if-else patterns rooted at a
// Condition region (spec.md §4.2).
type conditionalReducer struct{}

func (conditionalReducer) name() string { return "conditional" }

func (conditionalReducer) tryApply(g *Graph, id ID) bool {
	h := g.Region(id)
	if h.Type != Condition || len(h.Edges) != 2 {
		return false
	}

	var tID, fID ID
	foundTrue, foundFalse := false, false
	for _, e := range h.Edges {
		switch e.Tag {
		case IfTrue:
			tID, foundTrue = e.To, true
		case IfFalse:
			fID, foundFalse = e.To, true
		}
	}
	if !foundTrue || !foundFalse || !g.Active(tID) || !g.Active(fID) {
		return false
	}

	cond := conditionExpr(h)

	if tryIfElse(g, h, tID, fID, cond) {
		return true
	}
	if tryIfThen(g, h, tID, fID, cond) {
		return true
	}
	// symmetric: false-branch is the single statement, true-branch is
	// the join (this arises when the loader emits the branch with
	// polarity flipped relative to source order).
	if tryIfThen(g, h, fID, tID, negate(cond)) {
		return true
	}
	return false
}

// conditionExpr returns H's jump expression, negating it first if the
// branch opcode tested "jump when true" (spec.md §4.2 "Condition
// inversion").
func conditionExpr(h *Region) ast.Expr {
	if h.Polarity == JumpWhenTrue {
		return negate(h.JumpExpr)
	}
	return h.JumpExpr
}

func negate(e ast.Expr) ast.Expr {
	n, err := ast.NewUnaryOp(e, ast.LogicalNot)
	if err != nil {
		// e is always an Expr here, so NewUnaryOp's only failure mode
		// (a Stmt operand) cannot occur.
		panic(err)
	}
	return n
}

// tryIfElse recognizes: T and F each have single predecessor H and a
// common single successor J.
func tryIfElse(g *Graph, h *Region, tID, fID ID, cond ast.Expr) bool {
	t, f := g.Region(tID), g.Region(fID)
	if len(g.Predecessors(tID)) != 1 || len(g.Predecessors(fID)) != 1 {
		return false
	}
	if len(t.Edges) != 1 || len(f.Edges) != 1 {
		return false
	}
	j := t.Edges[0].To
	if f.Edges[0].To != j || !g.Active(j) {
		return false
	}

	ifNode := ast.NewIf(cond, ast.NewBlock(t.Nodes), ast.NewBlock(f.Nodes))
	h.Nodes = append(h.Nodes, ifNode)
	h.JumpExpr = nil
	h.Type = Linear
	g.MarkInactive(tID)
	g.MarkInactive(fID)
	g.SetEdges(h.ID, []Edge{{To: j, Tag: Unconditional}})
	return true
}

// tryIfThen recognizes: T has single predecessor H and a single successor
// J; F == J (the false branch falls straight through to the join).
func tryIfThen(g *Graph, h *Region, tID, fID ID, cond ast.Expr) bool {
	t := g.Region(tID)
	if len(g.Predecessors(tID)) != 1 || len(t.Edges) != 1 {
		return false
	}
	j := t.Edges[0].To
	if fID != j || !g.Active(j) {
		return false
	}

	ifNode := ast.NewIf(cond, ast.NewBlock(t.Nodes), nil)
	h.Nodes = append(h.Nodes, ifNode)
	h.JumpExpr = nil
	h.Type = Linear
	g.MarkInactive(tID)
	g.SetEdges(h.ID, []Edge{{To: j, Tag: Unconditional}})
	return true
}
