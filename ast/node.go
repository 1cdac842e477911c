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

// Package ast implements the sum-typed AST model that the decompiler core
// builds up per function (spec.md §3.1). The top-level AstKind sum
// (Expression | Statement | Block | Function | ControlFlow) is realized as
// the Node interface with narrower marker interfaces (Expr, Stmt,
// ControlFlow, Assignable) for the handlers in package decompiler and the
// reducers in package region to type-assert against.
//
// Every concrete node type lives in its own file, one per kind, mirroring
// original_source's gbf_core/src/decompiler/ast/*.rs layout.
package ast

import "github.com/preagonal/gbfcore/internal/nodeid"

// Node is implemented by every AST node kind. Structural equality (Equal)
// always ignores the node's ID; it participates SSA versions only where a
// concrete type carries one (spec.md §3.1's equality contract).
type Node interface {
	ID() nodeid.ID
	Accept(v Visitor) error
	Equal(other Node) bool
}

// Expr is implemented by every ExprKind variant (spec.md §3.1).
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every StmtKind variant.
type Stmt interface {
	Node
	stmtNode()
}

// ControlFlow is implemented by the structured control-flow nodes the
// reducer introduces (If, While) — a peer of Statement in the AstKind sum,
// but storable in a region's node list exactly like any other statement.
type ControlFlow interface {
	Node
	controlFlowNode()
}

// Assignable is implemented by expressions usable as an lvalue: Identifier
// and MemberAccess (spec.md §3.1, GLOSSARY). ArrayAccess is deliberately
// NOT Assignable — per spec.md §4.1, array stores are built explicitly by
// the AssignArrayIndex/AssignArray handler pair rather than popped off the
// stack as a generic assignable.
type Assignable interface {
	Expr
	// Location returns the canonical, flattened textual form of this
	// lvalue used as the SSA context's map key (spec.md §3.2).
	Location() string
	assignableNode()
}

// base holds the fields every node needs: its minted ID. Concrete node
// types embed base and get ID() for free.
type base struct {
	id nodeid.ID
}

func newBase() base {
	return base{id: nodeid.Next()}
}

func (b base) ID() nodeid.ID { return b.id }
