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

package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/config"
	"github.com/preagonal/gbfcore/emitter"
)

func emitFn(t *testing.T, stmts ...ast.Node) string {
	t.Helper()
	out, err := emitter.Emit(ast.NewFunction("f", ast.NewBlock(stmts)), nil)
	require.NoError(t, err)
	return out
}

func TestEmitAddMulDoesNotParenthesizeTighterChild(t *testing.T) {
	// 1 + (2 * 3): the Mul child binds tighter than its Add parent, so no
	// parentheses are needed even though it is the right operand.
	expr := ast.NewBinOp(
		ast.NewIntLiteral(1),
		ast.NewBinOp(ast.NewIntLiteral(2), ast.NewIntLiteral(3), ast.Mul),
		ast.Add,
	)
	out := emitFn(t, ast.NewReturn(expr))
	require.Equal(t, "return 1 + 2 * 3;\n", out)
}

func TestEmitSubOfSubParenthesizesRightOperand(t *testing.T) {
	// (1 - 2) - 3 is not the same value as 1 - (2 - 3); since Sub is
	// left-associative, a Sub as the right child of an equal-precedence Sub
	// must be parenthesized to preserve meaning.
	expr := ast.NewBinOp(
		ast.NewIntLiteral(1),
		ast.NewBinOp(ast.NewIntLiteral(2), ast.NewIntLiteral(3), ast.Sub),
		ast.Sub,
	)
	out := emitFn(t, ast.NewReturn(expr))
	require.Equal(t, "return 1 - (2 - 3);\n", out)
}

func TestEmitStringLiteralEscaping(t *testing.T) {
	out := emitFn(t, ast.NewReturn(ast.NewStringLiteral("line\nwith \"quotes\"\\")))
	require.Equal(t, "return \"line\\nwith \\\"quotes\\\"\\\\\";\n", out)
}

func TestEmitStringLiteralEscapesControlByte(t *testing.T) {
	out := emitFn(t, ast.NewReturn(ast.NewStringLiteral("\x00")))
	require.Equal(t, "return \"\\x00\";\n", out)
}

func TestEmitStringLiteralEscapesEscByte(t *testing.T) {
	out := emitFn(t, ast.NewReturn(ast.NewStringLiteral("\x1b")))
	require.Equal(t, "return \"\\x1b\";\n", out)
}

func TestEmitStringLiteralEscapesHighByte(t *testing.T) {
	out := emitFn(t, ast.NewReturn(ast.NewStringLiteral("\xff")))
	require.Equal(t, "return \"\\xff\";\n", out)
}

func TestEmitIfThenNoElse(t *testing.T) {
	cond := ast.NewBinOp(ast.NewIdentifier("x"), ast.NewIntLiteral(0), ast.Gt)
	then := ast.NewBlock([]ast.Node{ast.NewAssignment(ast.NewIdentifier("y"), ast.NewIntLiteral(1))})
	out := emitFn(t, ast.NewIf(cond, then, nil))
	require.Equal(t, "if (x > 0) {\n    y = 1;\n}\n", out)
}

func TestEmitWhileLoop(t *testing.T) {
	cond := ast.NewBoolLiteral(true)
	body := ast.NewBlock([]ast.Node{ast.NewReturn(nil)})
	out := emitFn(t, ast.NewWhile(cond, body))
	require.Equal(t, "while (true) {\n    return;\n}\n", out)
}

func TestEmitDeeplyNestedMemberAccessHasNoParens(t *testing.T) {
	chain := ast.Assignable(ast.NewIdentifier("a"))
	for _, field := range []string{"b", "c", "d", "e"} {
		chain = ast.NewMemberAccess(chain, ast.NewIdentifier(field))
	}
	out := emitFn(t, ast.NewReturn(chain))
	require.Equal(t, "return a.b.c.d.e;\n", out)
}

func TestEmitArrayLiteralUsesBraces(t *testing.T) {
	arr := ast.NewArray([]ast.Expr{ast.NewIntLiteral(10), ast.NewIntLiteral(20)})
	out := emitFn(t, ast.NewReturn(arr))
	require.Equal(t, "return {10, 20};\n", out)
}

func TestEmitUnaryNegateOfIdentifierIsAtomic(t *testing.T) {
	neg, err := ast.NewUnaryOp(ast.NewIdentifier("x"), ast.Negate)
	require.NoError(t, err)
	out := emitFn(t, ast.NewReturn(neg))
	require.Equal(t, "return -x;\n", out)
}

func TestEmitCompactModeProducesSingleLineOutput(t *testing.T) {
	cond := ast.NewBinOp(ast.NewIdentifier("x"), ast.NewIntLiteral(0), ast.Gt)
	then := ast.NewBlock([]ast.Node{ast.NewAssignment(ast.NewIdentifier("y"), ast.NewIntLiteral(1))})
	fn := ast.NewFunction("f", ast.NewBlock([]ast.Node{ast.NewIf(cond, then, nil)}))

	cfg := config.Default()
	cfg.PrettyPrint = false
	out, err := emitter.Emit(fn, cfg)
	require.NoError(t, err)
	require.Equal(t, "if (x > 0) { y = 1; }", out)
}

func TestEmitUnaryNotOfBinOpParenthesizes(t *testing.T) {
	bin := ast.NewBinOp(ast.NewIdentifier("a"), ast.NewIdentifier("b"), ast.And)
	not, err := ast.NewUnaryOp(bin, ast.LogicalNot)
	require.NoError(t, err)
	out := emitFn(t, ast.NewReturn(not))
	require.Equal(t, "return !(a && b);\n", out)
}
