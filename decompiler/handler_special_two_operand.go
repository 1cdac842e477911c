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

// Mirrors original_source's handlers/special_two_operand.rs.
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
)

// handleAccessMember pops the field (top of stack, pushed last) then the
// base, building a left-associative base.field chain (spec.md §4.1;
// confirmed against spec.md §8 scenario 2, `player.chat`, where "chat" is
// pushed after "player").
func handleAccessMember(c *Context, _ bytecode.Instruction) error {
	field, err := c.popAssignable()
	if err != nil {
		return err
	}
	base, err := c.popAssignable()
	if err != nil {
		return err
	}
	ma := ast.NewMemberAccess(base, field)
	version := int(c.ssaCtx.CurrentOrNew(ma.Location()))
	c.pushOne(ma.WithVersion(version))
	return nil
}

// handleAssign pops the assignment target first: spec.md §8 scenario 1
// (`PushNumber 42; PushVariable "x"; Assign` → `x = 42;`) pushes the
// value before the target, so the target — not the value — is what's on
// top of the stack when Assign fires. This is the opposite pop order
// from the one spec.md §4.1's prose lists for this opcode; the worked
// scenario is taken as authoritative (see DESIGN.md).
func handleAssign(c *Context, _ bytecode.Instruction) error {
	lhs, err := c.popAssignable()
	if err != nil {
		return err
	}
	rhs, err := c.popExpression()
	if err != nil {
		return err
	}

	version := c.ssaCtx.NewVersionFor(lhs.Location())
	versioned := withVersion(lhs, int(version))

	c.appendStmt(ast.NewAssignment(versioned, rhs))
	return nil
}

// withVersion re-annotates an Assignable with a freshly minted SSA
// version, without needing a common interface method across Identifier
// and MemberAccess (their WithVersion signatures return concrete types).
func withVersion(a ast.Assignable, version int) ast.Expr {
	switch n := a.(type) {
	case *ast.Identifier:
		return n.WithVersion(version)
	case *ast.MemberAccess:
		return n.WithVersion(version)
	default:
		return a
	}
}

// handleAssignArrayIndex builds an ArrayAccess lvalue from the array and
// index operands (spec.md §4.1) and pushes it as a pending expression for
// a following AssignArray or plain read.
func handleAssignArrayIndex(c *Context, _ bytecode.Instruction) error {
	index, err := c.popExpression()
	if err != nil {
		return err
	}
	arr, err := c.popAssignable()
	if err != nil {
		return err
	}
	c.pushOne(ast.NewArrayAccess(arr, index))
	return nil
}
