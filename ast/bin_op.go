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

// BinOpKind is the closed set of binary operators (spec.md §3.1).
type BinOpKind uint8

// The closed set of binary operators.
const (
	Add BinOpKind = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	In
)

var binOpSymbols = map[BinOpKind]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%",
	And: "&&", Or: "||", BitAnd: "&", BitOr: "|", BitXor: "^",
	Shl: "<<", Shr: ">>",
	Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	In: "in",
}

// String renders the operator's GS2 source spelling.
func (k BinOpKind) String() string {
	if s, ok := binOpSymbols[k]; ok {
		return s
	}
	return "?"
}

// BinOp is a binary expression (left, right, op) (spec.md §3.1).
type BinOp struct {
	base
	Left  Expr
	Right Expr
	Op    BinOpKind
}

// NewBinOp constructs a BinOp.
func NewBinOp(left, right Expr, op BinOpKind) *BinOp {
	return &BinOp{base: newBase(), Left: left, Right: right, Op: op}
}

func (*BinOp) exprNode() {}

// Accept routes to Visitor.VisitBinOp.
func (b *BinOp) Accept(v Visitor) error { return v.VisitBinOp(b) }

// Equal compares two nodes structurally, ignoring ID.
func (b *BinOp) Equal(other Node) bool {
	o, ok := other.(*BinOp)
	return ok && o.Op == b.Op && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}
