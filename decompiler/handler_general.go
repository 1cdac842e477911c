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

// Mirrors original_source's handlers/general.rs (Pop) and the Ret opcode,
// which spec.md §4.1 lists under its own "Return" dispatch-table row.
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
)

func handlePop(c *Context, _ bytecode.Instruction) error {
	_, err := c.popFrame()
	return err
}

// handleRet pops the return value, if any, or synthesises a void return
// when the stack is already empty (spec.md §4.1, §8 "Empty function"
// boundary behaviour: `return;`).
func handleRet(c *Context, _ bytecode.Instruction) error {
	if len(c.stack) == 0 {
		c.appendStmt(ast.NewReturn(nil))
		return nil
	}
	value, err := c.popExpression()
	if err != nil {
		return err
	}
	c.appendStmt(ast.NewReturn(value))
	return nil
}
