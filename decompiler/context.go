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

// Package decompiler implements spec.md §4.1: the per-block operand-stack
// simulator and opcode dispatch table that turns a bytecode.Function's
// instructions into region-graph nodes.
//
// The handler split lives in this same package, one file per opcode
// category (handler_literal.go, handler_identifier.go, ...), mirroring
// original_source's gbf_core/src/decompiler/handlers/*.rs split. Go's
// one-way import rule rules out a separate decompiler/handlers
// subpackage here: handlers need full access to Context's unexported
// stack machinery, and Context's dispatch table needs every handler, so
// the two sides would import each other. Keeping them in one package
// achieves the same per-category file layout without the cycle.
package decompiler

import (
	"fmt"

	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/gbferrors"
	"github.com/preagonal/gbfcore/region"
	"github.com/preagonal/gbfcore/ssa"
)

// Context is the per-block (reset each block) and per-function (ssa,
// error-context name) decompilation state: the operand stack plus
// whatever a block's handlers have decided belongs in the region under
// construction (spec.md §4.1).
type Context struct {
	functionName string
	ssaCtx       *ssa.Context

	blockID    int
	instrIndex int
	stack      []frame

	// stmts accumulates the statements a block's handlers append
	// directly to the region (Assign, AssignArray, Ret, ...), bypassing
	// the operand stack.
	stmts []ast.Node

	// jumpExpr/polarity are set by the Jeq/Jne and ShortCircuitAnd/Or
	// handlers when a block ends in a two-successor branch; nil/unset for
	// a Linear block.
	jumpExpr ast.Expr
	polarity region.Polarity
	hasJump  bool
}

func newContext(functionName string, ssaCtx *ssa.Context) *Context {
	return &Context{functionName: functionName, ssaCtx: ssaCtx}
}

// resetBlock clears per-block state ahead of processing a new basic
// block. The operand stack MUST be empty on block entry (spec.md §4.1).
func (c *Context) resetBlock(blockID int) {
	c.blockID = blockID
	c.instrIndex = 0
	c.stack = c.stack[:0]
	c.stmts = nil
	c.jumpExpr = nil
	c.hasJump = false
}

// errorContext snapshots the current position for inclusion in an error
// (spec.md §4.1 get_error_context, §6.3).
func (c *Context) errorContext() gbferrors.Context {
	return gbferrors.Context{
		FunctionName: c.functionName,
		BlockID:      c.blockID,
		InstrIndex:   c.instrIndex,
		StackDepth:   len(c.stack),
		StackSummary: c.stackSummary(),
	}
}

func (c *Context) stackSummary() string {
	if len(c.stack) == 0 {
		return "[]"
	}
	s := "["
	for i, f := range c.stack {
		if i > 0 {
			s += ", "
		}
		s += f.String()
	}
	return s + "]"
}

// pushOne pushes an expression or statement fragment onto the operand
// stack (spec.md §4.1 push_one).
func (c *Context) pushOne(n ast.Node) {
	c.stack = append(c.stack, standaloneFrame(n))
}

// appendStmt appends a statement directly to the region under
// construction, bypassing the operand stack (used by Assign, AssignArray,
// Ret).
func (c *Context) appendStmt(n ast.Node) {
	c.stmts = append(c.stmts, n)
}

func (c *Context) popFrame() (frame, error) {
	if len(c.stack) == 0 {
		return frame{}, gbferrors.New(gbferrors.StackUnderflow, c.errorContext(),
			"operand stack underflow")
	}
	f := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return f, nil
}

// popExpression pops the top of the stack and requires it be an
// expression (spec.md §4.1 pop_expression).
func (c *Context) popExpression() (ast.Expr, error) {
	f, err := c.popFrame()
	if err != nil {
		return nil, err
	}
	if f.kind != frameStandalone {
		return nil, gbferrors.New(gbferrors.ExpectedExpression, c.errorContext(),
			fmt.Sprintf("expected an expression, found %s", f))
	}
	e, ok := f.node.(ast.Expr)
	if !ok {
		return nil, gbferrors.New(gbferrors.ExpectedExpression, c.errorContext(),
			"expected an expression, found a statement")
	}
	return e, nil
}

// popAssignable pops the top of the stack and requires it be an
// Identifier or MemberAccess (spec.md §4.1 pop_assignable: "Array-access
// expressions are NOT assignable at pop time").
func (c *Context) popAssignable() (ast.Assignable, error) {
	f, err := c.popFrame()
	if err != nil {
		return nil, err
	}
	if f.kind != frameStandalone {
		return nil, gbferrors.New(gbferrors.ExpectedAssignable, c.errorContext(),
			fmt.Sprintf("expected an assignable, found %s", f))
	}
	a, ok := f.node.(ast.Assignable)
	if !ok {
		return nil, gbferrors.New(gbferrors.ExpectedAssignable, c.errorContext(),
			"expected an identifier or member access")
	}
	return a, nil
}

// beginArray transitions the stack into array-construction mode
// (spec.md §4.1 PushArray).
func (c *Context) beginArray() {
	c.stack = append(c.stack, buildingArrayFrame())
}

// addArrayElement pops the most recently pushed expression and folds it
// into the BuildingArray frame beneath it (spec.md §4.1 ArrayElement).
func (c *Context) addArrayElement() error {
	elem, err := c.popExpression()
	if err != nil {
		return err
	}
	if len(c.stack) == 0 || c.stack[len(c.stack)-1].kind != frameBuildingArray {
		return gbferrors.New(gbferrors.ExpectedExpression, c.errorContext(),
			"ArrayElement with no array under construction")
	}
	top := &c.stack[len(c.stack)-1]
	top.elems = append(top.elems, elem)
	return nil
}

// endArray pops the BuildingArray frame and returns the assembled
// ast.Array, ready for the caller to push as a standalone expression
// (spec.md §4.1 EndArray).
func (c *Context) endArray() (*ast.Array, error) {
	if len(c.stack) == 0 || c.stack[len(c.stack)-1].kind != frameBuildingArray {
		return nil, gbferrors.New(gbferrors.ExpectedExpression, c.errorContext(),
			"EndArray with no array under construction")
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return ast.NewArray(top.elems), nil
}

// setJump records the block-ending branch condition and its source
// polarity (spec.md §4.2 "the handler records the intended polarity on
// the region at branch time").
func (c *Context) setJump(expr ast.Expr, polarity region.Polarity) {
	c.jumpExpr = expr
	c.polarity = polarity
	c.hasJump = true
}
