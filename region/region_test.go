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

package region_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/region"
)

// nodeEqual lets cmp.Diff compare ast.Node values the same way the rest of
// the codebase does: structurally, ignoring the per-process NodeId (spec.md
// §3.1's equality contract).
var nodeEqual = cmp.Comparer(func(a, b ast.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
})

func buildDiamond() *region.Graph {
	g := region.NewGraph(4, 0)
	g.Region(0).Type = region.Condition
	g.Region(0).JumpExpr = ast.NewIdentifier("cond")
	g.Region(0).Polarity = region.JumpWhenFalse
	g.SetEdges(0, []region.Edge{
		{To: 1, Tag: region.IfTrue},
		{To: 2, Tag: region.IfFalse},
	})
	g.Append(1, assign("a", 1))
	g.SetEdges(1, []region.Edge{{To: 3, Tag: region.Unconditional}})
	g.Append(2, assign("a", 2))
	g.SetEdges(2, []region.Edge{{To: 3, Tag: region.Unconditional}})
	g.Append(3, assign("b", 3))
	return g
}

// Two independent builds of the same diamond shape mint disjoint NodeId
// sequences but must reduce to structurally identical trees.
func TestReduceDiamondIsStructurallyDeterministic(t *testing.T) {
	g1, g2 := buildDiamond(), buildDiamond()
	require.NoError(t, region.Reduce(g1, "f"))
	require.NoError(t, region.Reduce(g2, "f"))

	diff := cmp.Diff(g1.Root().Nodes, g2.Root().Nodes, nodeEqual)
	require.Empty(t, diff, "two builds of the same diamond must reduce identically regardless of NodeId")
}

func assign(name string, v int32) ast.Node {
	return ast.NewAssignment(ast.NewIdentifier(name), ast.NewIntLiteral(v))
}

func TestReduceLinearChain(t *testing.T) {
	g := region.NewGraph(3, 0)
	g.Append(0, assign("a", 1))
	g.Append(1, assign("b", 2))
	g.Append(2, assign("c", 3))
	g.Region(2).Type = region.Tail // terminal block, e.g. ends in a return
	g.SetEdges(0, []region.Edge{{To: 1, Tag: region.Unconditional}})
	g.SetEdges(1, []region.Edge{{To: 2, Tag: region.Unconditional}})

	require.NoError(t, region.Reduce(g, "f"))
	root := g.Root()
	require.NotNil(t, root)
	require.Equal(t, region.Tail, root.Type)
	require.Len(t, root.Nodes, 3)
}

func TestReduceDiamondProducesIfElse(t *testing.T) {
	// 0: if (cond) 1 else 2; 1 -> 3; 2 -> 3; 3: tail.
	g := region.NewGraph(4, 0)
	g.Region(0).Type = region.Condition
	g.Region(0).JumpExpr = ast.NewIdentifier("cond")
	g.Region(0).Polarity = region.JumpWhenFalse
	g.SetEdges(0, []region.Edge{
		{To: 1, Tag: region.IfTrue},
		{To: 2, Tag: region.IfFalse},
	})
	g.Append(1, assign("a", 1))
	g.SetEdges(1, []region.Edge{{To: 3, Tag: region.Unconditional}})
	g.Append(2, assign("a", 2))
	g.SetEdges(2, []region.Edge{{To: 3, Tag: region.Unconditional}})
	g.Append(3, assign("b", 3))

	require.NoError(t, region.Reduce(g, "f"))
	root := g.Root()
	require.NotNil(t, root)
	require.Len(t, root.Nodes, 2, "If node followed by b's assignment")

	ifNode, ok := root.Nodes[0].(*ast.If)
	require.True(t, ok, "expected the first statement to be an If")
	require.NotNil(t, ifNode.Else)
	require.Len(t, ifNode.Then.Statements, 1)
	require.Len(t, ifNode.Else.Statements, 1)
}

func TestReduceIfThenNoElse(t *testing.T) {
	// 0: if (cond) 1; 1 -> 2; 0 -> 2 (false branch skips straight to join).
	g := region.NewGraph(3, 0)
	g.Region(0).Type = region.Condition
	g.Region(0).JumpExpr = ast.NewIdentifier("cond")
	g.Region(0).Polarity = region.JumpWhenFalse
	g.SetEdges(0, []region.Edge{
		{To: 1, Tag: region.IfTrue},
		{To: 2, Tag: region.IfFalse},
	})
	g.Append(1, assign("a", 1))
	g.SetEdges(1, []region.Edge{{To: 2, Tag: region.Unconditional}})
	g.Append(2, assign("b", 2))

	require.NoError(t, region.Reduce(g, "f"))
	root := g.Root()
	require.NotNil(t, root)

	ifNode, ok := root.Nodes[0].(*ast.If)
	require.True(t, ok)
	require.Nil(t, ifNode.Else)
	require.Len(t, ifNode.Then.Statements, 1)
}

func TestReduceWhileLoop(t *testing.T) {
	// 0: if (cond) 1 else 2 (loop header); 1: body -> back to 0; 2: exit.
	g := region.NewGraph(3, 0)
	g.Region(0).Type = region.Condition
	g.Region(0).JumpExpr = ast.NewIdentifier("cond")
	g.Region(0).Polarity = region.JumpWhenFalse
	g.SetEdges(0, []region.Edge{
		{To: 1, Tag: region.IfTrue},
		{To: 2, Tag: region.IfFalse},
	})
	g.Append(1, assign("a", 1))
	g.SetEdges(1, []region.Edge{{To: 0, Tag: region.Unconditional}})
	g.Append(2, assign("b", 2))

	require.NoError(t, region.Reduce(g, "f"))
	root := g.Root()
	require.NotNil(t, root)

	whileNode, ok := root.Nodes[0].(*ast.While)
	require.True(t, ok, "expected the first statement to be a While")
	require.Len(t, whileNode.Body.Statements, 1)
	require.Len(t, root.Nodes, 2, "While followed by exit region's b assignment")
}

func TestReduceIrreducibleGraphFails(t *testing.T) {
	// Two regions with edges into each other's middle: neither a linear
	// chain, nor a conditional, nor a natural loop (no single entry).
	g := region.NewGraph(4, 0)
	g.Region(0).Type = region.Condition
	g.Region(0).JumpExpr = ast.NewIdentifier("cond")
	g.SetEdges(0, []region.Edge{
		{To: 1, Tag: region.IfTrue},
		{To: 2, Tag: region.IfFalse},
	})
	g.SetEdges(1, []region.Edge{{To: 3, Tag: region.Unconditional}})
	g.SetEdges(2, []region.Edge{{To: 3, Tag: region.Unconditional}})
	g.SetEdges(3, []region.Edge{
		{To: 1, Tag: region.Unconditional},
	})

	err := region.Reduce(g, "f")
	require.Error(t, err)
}
