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

import (
	"fmt"

	"github.com/preagonal/gbfcore/gbferrors"
)

// UnOpKind is the closed set of unary operators (spec.md §3.1).
type UnOpKind uint8

// The closed set of unary operators.
const (
	LogicalNot UnOpKind = iota
	BitwiseNot
	Negate
)

var unOpSymbols = map[UnOpKind]string{
	LogicalNot: "!",
	BitwiseNot: "~",
	Negate:     "-",
}

// String renders the operator's GS2 source spelling.
func (k UnOpKind) String() string {
	if s, ok := unOpSymbols[k]; ok {
		return s
	}
	return "?"
}

// UnaryOp is a unary expression (operand, op) (spec.md §3.1).
//
// DESIGN NOTE (spec.md §9 Open Question): the source's unary handler left
// commented-out SSA-assignment generation, an unresolved choice between
// binding unary results to a fresh temporary or inlining them directly.
// gbfcore picks "always inline": a UnaryOp is constructed and pushed back
// onto the operand stack exactly like a BinOp, never forcing an
// Assignment. This keeps unary results usable in the same expression
// position they were produced in (matching scenario-style expectations
// such as `y = -x;`), and avoids inventing synthetic temporaries that have
// no GS2 bytecode symbol to attach SSA versions to.
type UnaryOp struct {
	base
	Operand Expr
	Op      UnOpKind
}

// NewUnaryOp constructs a UnaryOp, validating the operand kind per
// spec.md §3.1: literals, identifiers, and other expressions are
// accepted; a node that turns out to be a statement (e.g. a misrouted
// Assignment reaching the unary handler through a malformed operand stack)
// is rejected with InvalidOperand rather than silently accepted.
func NewUnaryOp(operand Node, op UnOpKind) (*UnaryOp, error) {
	expr, ok := operand.(Expr)
	if !ok {
		return nil, gbferrors.New(gbferrors.InvalidOperand, gbferrors.Context{},
			fmt.Sprintf("unary operator %s cannot be applied to a statement", op))
	}
	return &UnaryOp{base: newBase(), Operand: expr, Op: op}, nil
}

func (*UnaryOp) exprNode() {}

// Accept routes to Visitor.VisitUnaryOp.
func (u *UnaryOp) Accept(v Visitor) error { return v.VisitUnaryOp(u) }

// Equal compares two nodes structurally, ignoring ID.
func (u *UnaryOp) Equal(other Node) bool {
	o, ok := other.(*UnaryOp)
	return ok && o.Op == u.Op && u.Operand.Equal(o.Operand)
}
