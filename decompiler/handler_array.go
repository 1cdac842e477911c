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

// Mirrors original_source's handling of array construction, which the
// source folds into its general opcode handlers rather than its own file;
// gbfcore keeps it separate since spec.md §4.1 calls it out as its own
// dispatch-table row ("Array construction").
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
)

func handlePushArray(c *Context, _ bytecode.Instruction) error {
	c.beginArray()
	return nil
}

func handleArrayElement(c *Context, _ bytecode.Instruction) error {
	return c.addArrayElement()
}

func handleEndArray(c *Context, _ bytecode.Instruction) error {
	arr, err := c.endArray()
	if err != nil {
		return err
	}
	c.pushOne(arr)
	return nil
}

// handleArrayAccess builds a read of an array element: pops the array
// target (top, pushed last) then the index beneath it, matching spec.md
// §8 scenario 5's `PushNumber 1; PushVariable "a"; ArrayAccess` → `a[1]`.
func handleArrayAccess(c *Context, _ bytecode.Instruction) error {
	arr, err := c.popAssignable()
	if err != nil {
		return err
	}
	index, err := c.popExpression()
	if err != nil {
		return err
	}
	c.pushOne(ast.NewArrayAccess(arr, index))
	return nil
}
