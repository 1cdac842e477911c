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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/preagonal/gbfcore/ast"
)

func TestIdentifierEqualIgnoresNodeID(t *testing.T) {
	a := ast.NewIdentifier("x")
	b := ast.NewIdentifier("x")

	require.NotEqual(t, a.ID(), b.ID(), "two constructed identifiers must have distinct node ids")
	require.True(t, a.Equal(b), "structural equality must ignore NodeId")
}

func TestIdentifierEqualRespectsSSAVersionWhenBothPresent(t *testing.T) {
	a := ast.NewIdentifier("x").WithVersion(1)
	b := ast.NewIdentifier("x").WithVersion(2)
	c := ast.NewIdentifier("x").WithVersion(1)

	require.False(t, a.Equal(b))
	require.True(t, a.Equal(c))
}

func TestIdentifierEqualUnversionedVsVersioned(t *testing.T) {
	unversioned := ast.NewIdentifier("x")
	versioned := ast.NewIdentifier("x").WithVersion(0)

	require.True(t, unversioned.Equal(versioned))
}

func TestMemberAccessLocationFlattensChain(t *testing.T) {
	player := ast.NewIdentifier("player")
	chat := ast.NewIdentifier("chat")
	ma := ast.NewMemberAccess(player, chat)

	require.Equal(t, "player.chat", ma.Location())
}

func TestNewRejectsNonStringNonIdentifierArg(t *testing.T) {
	typeExpr := ast.NewIdentifier("Sprite")
	_, err := ast.NewNew(typeExpr, ast.NewIntLiteral(42))
	require.Error(t, err)

	_, err = ast.NewNew(typeExpr, ast.NewStringLiteral("sprite.png"))
	require.NoError(t, err)

	_, err = ast.NewNew(typeExpr, ast.NewIdentifier("path"))
	require.NoError(t, err)
}

func TestUnaryOpRejectsStatementOperand(t *testing.T) {
	stmt := ast.NewReturn(nil)
	_, err := ast.NewUnaryOp(stmt, ast.LogicalNot)
	require.Error(t, err)
}

func TestArrayEqual(t *testing.T) {
	a := ast.NewArray([]ast.Expr{ast.NewIntLiteral(1), ast.NewIntLiteral(2)})
	b := ast.NewArray([]ast.Expr{ast.NewIntLiteral(1), ast.NewIntLiteral(2)})
	c := ast.NewArray([]ast.Expr{ast.NewIntLiteral(1), ast.NewIntLiteral(3)})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
