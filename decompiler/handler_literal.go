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

// Mirrors original_source's handlers/literal.rs.
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/gbferrors"
)

func handlePushNumber(c *Context, instr bytecode.Instruction) error {
	op, err := requireOperand(c, instr)
	if err != nil {
		return err
	}
	switch op.Kind {
	case bytecode.OperandInt:
		c.pushOne(ast.NewIntLiteral(op.Int))
	case bytecode.OperandFloat:
		c.pushOne(ast.NewFloatLiteral(op.Float))
	default:
		return gbferrors.New(gbferrors.InstructionMustHaveOperand, c.errorContext(),
			"PushNumber requires an int or float operand")
	}
	return nil
}

func handlePushString(c *Context, instr bytecode.Instruction) error {
	op, err := requireOperand(c, instr)
	if err != nil {
		return err
	}
	c.pushOne(ast.NewStringLiteral(op.String))
	return nil
}

func requireOperand(c *Context, instr bytecode.Instruction) (*bytecode.Operand, error) {
	if instr.Operand == nil {
		return nil, gbferrors.New(gbferrors.InstructionMustHaveOperand, c.errorContext(),
			string(instr.Opcode)+" requires an operand")
	}
	return instr.Operand, nil
}
