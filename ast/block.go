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

// Block is an ordered sequence of statements (which may themselves be
// ControlFlow nodes), emitted wrapped in braces with one extra indent
// level (spec.md §3.1, §4.3).
type Block struct {
	base
	Statements []Node
}

// NewBlock constructs a Block from the given statements.
func NewBlock(statements []Node) *Block {
	return &Block{base: newBase(), Statements: statements}
}

func (*Block) stmtNode() {}

// Accept routes to Visitor.VisitBlock.
func (b *Block) Accept(v Visitor) error { return v.VisitBlock(b) }

// Equal compares two nodes structurally, ignoring ID.
func (b *Block) Equal(other Node) bool {
	o, ok := other.(*Block)
	if !ok || len(b.Statements) != len(o.Statements) {
		return false
	}
	for i, s := range b.Statements {
		if !s.Equal(o.Statements[i]) {
			return false
		}
	}
	return true
}
