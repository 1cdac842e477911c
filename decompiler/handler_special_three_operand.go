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

// Mirrors original_source's handlers/special_three_operand.rs.
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
)

// handleAssignArray pops the value, then the index, then the array target
// (in that order, matching the push order array/index/value for
// `a[i] = v`): builds ArrayAccess(array, index) and appends an
// Assignment(that, value) to the region (spec.md §4.1).
func handleAssignArray(c *Context, _ bytecode.Instruction) error {
	rhs, err := c.popExpression()
	if err != nil {
		return err
	}
	index, err := c.popExpression()
	if err != nil {
		return err
	}
	arr, err := c.popAssignable()
	if err != nil {
		return err
	}
	lhs := ast.NewArrayAccess(arr, index)
	c.appendStmt(ast.NewAssignment(lhs, rhs))
	return nil
}

// handleInRange pops end, then start, then subject (push order
// subject/start/end for `x in a..b`): builds BinOp(subject, Range(start,
// end), In) (spec.md §4.1).
func handleInRange(c *Context, _ bytecode.Instruction) error {
	end, err := c.popExpression()
	if err != nil {
		return err
	}
	start, err := c.popExpression()
	if err != nil {
		return err
	}
	subject, err := c.popExpression()
	if err != nil {
		return err
	}
	c.pushOne(ast.NewBinOp(subject, ast.NewRange(start, end), ast.In))
	return nil
}
