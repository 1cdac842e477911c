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

package decompiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/decompiler"
	"github.com/preagonal/gbfcore/emitter"
)

func num(n int32) *bytecode.Operand  { return &bytecode.Operand{Kind: bytecode.OperandInt, Int: n} }
func str(s string) *bytecode.Operand { return &bytecode.Operand{Kind: bytecode.OperandString, String: s} }

func decompileAndEmit(t *testing.T, fn *bytecode.Function) string {
	t.Helper()
	astFn, err := decompiler.DecompileFunction(fn)
	require.NoError(t, err)
	out, err := emitter.Emit(astFn, nil)
	require.NoError(t, err)
	return out
}

// scenario 1: PushNumber 42; PushVariable "x"; Assign; Ret -> "x = 42;\nreturn;\n"
func TestScenarioSimpleAssignment(t *testing.T) {
	fn := &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{
				ID: 0,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushNumber, Operand: num(42)},
					{Opcode: bytecode.OpPushVariable, Operand: str("x")},
					{Opcode: bytecode.OpAssign},
					{Opcode: bytecode.OpRet},
				},
			},
		},
	}

	out := decompileAndEmit(t, fn)
	require.Equal(t, "x = 42;\nreturn;\n", out)
}

// scenario 2: PushString "Hello"; PushVariable "player"; PushVariable "chat";
// AccessMember; Assign; Ret -> "player.chat = \"Hello\";\nreturn;\n"
func TestScenarioMemberWrite(t *testing.T) {
	fn := &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{
				ID: 0,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushString, Operand: str("Hello")},
					{Opcode: bytecode.OpPushVariable, Operand: str("player")},
					{Opcode: bytecode.OpPushVariable, Operand: str("chat")},
					{Opcode: bytecode.OpAccessMember},
					{Opcode: bytecode.OpAssign},
					{Opcode: bytecode.OpRet},
				},
			},
		},
	}

	out := decompileAndEmit(t, fn)
	require.Equal(t, "player.chat = \"Hello\";\nreturn;\n", out)
}

// scenario 3: PushNumber 1; PushNumber 2; PushNumber 3; Mul; Add; PushVariable "y";
// Assign -> "y = 1 + 2 * 3;\n"
func TestScenarioBinaryOpPrecedence(t *testing.T) {
	fn := &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{
				ID: 0,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushNumber, Operand: num(1)},
					{Opcode: bytecode.OpPushNumber, Operand: num(2)},
					{Opcode: bytecode.OpPushNumber, Operand: num(3)},
					{Opcode: bytecode.OpMul},
					{Opcode: bytecode.OpAdd},
					{Opcode: bytecode.OpPushVariable, Operand: str("y")},
					{Opcode: bytecode.OpAssign},
				},
			},
		},
	}

	out := decompileAndEmit(t, fn)
	require.Equal(t, "y = 1 + 2 * 3;\n", out)
}

// scenario 4: a two-successor condition block testing x == 0, a true block
// assigning y = 1, a false block assigning y = 2, both joining to a return.
func TestScenarioIfElse(t *testing.T) {
	fn := &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{ // 0: condition
				ID: 0,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushVariable, Operand: str("x")},
					{Opcode: bytecode.OpPushNumber, Operand: num(0)},
					{Opcode: bytecode.OpEq},
					{Opcode: bytecode.OpJne},
				},
				Succs: []bytecode.Edge{
					{To: 1, Kind: bytecode.EdgeIfTrue},
					{To: 2, Kind: bytecode.EdgeIfFalse},
				},
			},
			{ // 1: true branch
				ID: 1,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushNumber, Operand: num(1)},
					{Opcode: bytecode.OpPushVariable, Operand: str("y")},
					{Opcode: bytecode.OpAssign},
				},
				Succs: []bytecode.Edge{{To: 3, Kind: bytecode.EdgeUnconditional}},
			},
			{ // 2: false branch
				ID: 2,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushNumber, Operand: num(2)},
					{Opcode: bytecode.OpPushVariable, Operand: str("y")},
					{Opcode: bytecode.OpAssign},
				},
				Succs: []bytecode.Edge{{To: 3, Kind: bytecode.EdgeUnconditional}},
			},
			{ // 3: join
				ID:           3,
				Instructions: []bytecode.Instruction{{Opcode: bytecode.OpRet}},
			},
		},
	}

	out := decompileAndEmit(t, fn)
	require.Equal(t, "if (x == 0) {\n    y = 1;\n} else {\n    y = 2;\n}\nreturn;\n", out)
}

// scenario 5: array literal construction followed by an index read.
func TestScenarioArrayLiteralAndAccess(t *testing.T) {
	fn := &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{
				ID: 0,
				Instructions: []bytecode.Instruction{
					{Opcode: bytecode.OpPushArray},
					{Opcode: bytecode.OpPushNumber, Operand: num(10)},
					{Opcode: bytecode.OpArrayElement},
					{Opcode: bytecode.OpPushNumber, Operand: num(20)},
					{Opcode: bytecode.OpArrayElement},
					{Opcode: bytecode.OpEndArray},
					{Opcode: bytecode.OpPushVariable, Operand: str("a")},
					{Opcode: bytecode.OpAssign},
					{Opcode: bytecode.OpPushNumber, Operand: num(1)},
					{Opcode: bytecode.OpPushVariable, Operand: str("a")},
					{Opcode: bytecode.OpArrayAccess},
					{Opcode: bytecode.OpPushVariable, Operand: str("z")},
					{Opcode: bytecode.OpAssign},
				},
			},
		},
	}

	out := decompileAndEmit(t, fn)
	require.Equal(t, "a = {10, 20};\nz = a[1];\n", out)
}

// An empty function (single, instruction-less Ret block) emits exactly
// "return;" (spec.md §8 boundary behaviour).
func TestScenarioEmptyFunction(t *testing.T) {
	fn := &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{ID: 0, Instructions: []bytecode.Instruction{{Opcode: bytecode.OpRet}}},
		},
	}

	out := decompileAndEmit(t, fn)
	require.Equal(t, "return;\n", out)
}

// An unimplemented opcode surfaces as a dispatch-table miss rather than a
// panic.
func TestUnimplementedOpcodeIsAnError(t *testing.T) {
	fn := &bytecode.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []bytecode.BasicBlock{
			{ID: 0, Instructions: []bytecode.Instruction{{Opcode: bytecode.Opcode("NotAReal")}}},
		},
	}

	_, err := decompiler.DecompileFunction(fn)
	require.Error(t, err)
}
