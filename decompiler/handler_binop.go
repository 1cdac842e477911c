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

// Mirrors original_source's handlers/bin_op.rs. Every binary opcode pops
// its right operand (the most recently pushed), then its left operand,
// per spec.md §4.1's dispatch table row ("Pop rhs, pop lhs, push BinOp") —
// confirmed by spec.md §8 scenario 3 (`1 + 2 * 3`, where `Mul` fires
// before `Add` precisely because `3` was pushed after `2`).
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
)

func binOpHandler(op ast.BinOpKind) handlerFunc {
	return func(c *Context, _ bytecode.Instruction) error {
		rhs, err := c.popExpression()
		if err != nil {
			return err
		}
		lhs, err := c.popExpression()
		if err != nil {
			return err
		}
		c.pushOne(ast.NewBinOp(lhs, rhs, op))
		return nil
	}
}

var binOpHandlers = map[bytecode.Opcode]ast.BinOpKind{
	bytecode.OpAdd:    ast.Add,
	bytecode.OpSub:    ast.Sub,
	bytecode.OpMul:    ast.Mul,
	bytecode.OpDiv:    ast.Div,
	bytecode.OpMod:    ast.Mod,
	bytecode.OpAnd:    ast.And,
	bytecode.OpOr:     ast.Or,
	bytecode.OpBitAnd: ast.BitAnd,
	bytecode.OpBitOr:  ast.BitOr,
	bytecode.OpBitXor: ast.BitXor,
	bytecode.OpShl:    ast.Shl,
	bytecode.OpShr:    ast.Shr,
	bytecode.OpEq:     ast.Eq,
	bytecode.OpNe:     ast.Ne,
	bytecode.OpLt:     ast.Lt,
	bytecode.OpLe:     ast.Le,
	bytecode.OpGt:     ast.Gt,
	bytecode.OpGe:     ast.Ge,
}
