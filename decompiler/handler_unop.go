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

// Mirrors original_source's handlers/un_op.rs.
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
)

func unOpHandler(op ast.UnOpKind) handlerFunc {
	return func(c *Context, _ bytecode.Instruction) error {
		operand, err := c.popExpression()
		if err != nil {
			return err
		}
		n, err := ast.NewUnaryOp(operand, op)
		if err != nil {
			return err
		}
		c.pushOne(n)
		return nil
	}
}

var unOpHandlers = map[bytecode.Opcode]ast.UnOpKind{
	bytecode.OpLogicalNot:   ast.LogicalNot,
	bytecode.OpBitwiseInvert: ast.BitwiseNot,
	bytecode.OpUnarySubtract: ast.Negate,
}
