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

package ast

// If is the structured conditional the Conditional reducer produces
// (spec.md §4.2, §4.3). Else is nil for an if-then with no else branch.
type If struct {
	base
	Cond Expr
	Then *Block
	Else *Block // nil for if-then
}

// NewIf constructs an If node. Pass a nil els for an if-then.
func NewIf(cond Expr, then, els *Block) *If {
	return &If{base: newBase(), Cond: cond, Then: then, Else: els}
}

func (*If) controlFlowNode() {}
func (*If) stmtNode()        {}

// Accept routes to Visitor.VisitIf.
func (i *If) Accept(v Visitor) error { return v.VisitIf(i) }

// Equal compares two nodes structurally, ignoring ID.
func (i *If) Equal(other Node) bool {
	o, ok := other.(*If)
	if !ok || !i.Cond.Equal(o.Cond) || !i.Then.Equal(o.Then) {
		return false
	}
	if i.Else == nil || o.Else == nil {
		return i.Else == nil && o.Else == nil
	}
	return i.Else.Equal(o.Else)
}

// While is the structured loop the Loop reducer produces (spec.md §4.2,
// §4.3). The Loop reducer only folds loops whose header is a Condition
// region, so Cond is always derived from that region's jump expression;
// loops with no jump condition are not folded into a While.
type While struct {
	base
	Cond Expr
	Body *Block
}

// NewWhile constructs a While node.
func NewWhile(cond Expr, body *Block) *While {
	return &While{base: newBase(), Cond: cond, Body: body}
}

func (*While) controlFlowNode() {}
func (*While) stmtNode()        {}

// Accept routes to Visitor.VisitWhile.
func (w *While) Accept(v Visitor) error { return v.VisitWhile(w) }

// Equal compares two nodes structurally, ignoring ID.
func (w *While) Equal(other Node) bool {
	o, ok := other.(*While)
	return ok && w.Cond.Equal(o.Cond) && w.Body.Equal(o.Body)
}
