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

package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/gbferrors"
	"github.com/preagonal/gbfcore/region"
	"github.com/preagonal/gbfcore/ssa"
)

// handlerFunc is one opcode's effect on the operand stack / region under
// construction (spec.md §4.1).
type handlerFunc func(*Context, bytecode.Instruction) error

var dispatch = buildDispatch()

func buildDispatch() map[bytecode.Opcode]handlerFunc {
	d := map[bytecode.Opcode]handlerFunc{
		bytecode.OpPushNumber: handlePushNumber,
		bytecode.OpPushString: handlePushString,

		bytecode.OpPushVariable: handlePushVariable,
		bytecode.OpPlayer:       handlePlayer,
		bytecode.OpLevel:        handleLevel,
		bytecode.OpThis:         handleThis,
		bytecode.OpTemp:         handleTemp,

		bytecode.OpAccessMember:     handleAccessMember,
		bytecode.OpAssign:           handleAssign,
		bytecode.OpAssignArrayIndex: handleAssignArrayIndex,

		bytecode.OpAssignArray: handleAssignArray,
		bytecode.OpInRange:     handleInRange,

		bytecode.OpShortCircuitAnd: handleShortCircuitAnd,
		bytecode.OpShortCircuitOr:  handleShortCircuitOr,

		bytecode.OpJmp: handleJmp,
		bytecode.OpJeq: handleJeq,
		bytecode.OpJne: handleJne,

		bytecode.OpPushArray:    handlePushArray,
		bytecode.OpEndArray:     handleEndArray,
		bytecode.OpArrayElement: handleArrayElement,
		bytecode.OpArrayAccess:  handleArrayAccess,

		bytecode.OpRet: handleRet,
		bytecode.OpPop: handlePop,

		bytecode.OpLine:  handleNop,
		bytecode.OpDebug: handleNop,
	}
	for op, kind := range binOpHandlers {
		d[op] = binOpHandler(kind)
	}
	for op, kind := range unOpHandlers {
		d[op] = unOpHandler(kind)
	}
	return d
}

// DecompileFunction runs spec.md's stages B and C over one function: every
// block's instructions are symbolically executed into a region graph
// (stage B), which is then reduced to a single structured region
// (stage C). The caller (package emitter, or package batch) handles
// stage D.
func DecompileFunction(fn *bytecode.Function) (*ast.Function, error) {
	ssaCtx := ssa.NewContext()
	ctx := newContext(fn.Name, ssaCtx)
	g := region.NewGraph(len(fn.Blocks), fn.Entry)

	for _, blockID := range fn.RPO() {
		if err := decompileBlock(ctx, g, fn, blockID); err != nil {
			return nil, err
		}
	}

	if err := region.Reduce(g, fn.Name); err != nil {
		return nil, err
	}

	root := g.Root()
	return ast.NewFunction(fn.Name, ast.NewBlock(root.Nodes)), nil
}

func decompileBlock(ctx *Context, g *region.Graph, fn *bytecode.Function, blockID int) error {
	ctx.resetBlock(blockID)
	block := fn.Blocks[blockID]

	for i, instr := range block.Instructions {
		ctx.instrIndex = i
		h, ok := dispatch[instr.Opcode]
		if !ok {
			return gbferrors.New(gbferrors.UnimplementedOpcode, ctx.errorContext(),
				"no handler registered for opcode "+string(instr.Opcode))
		}
		if err := h(ctx, instr); err != nil {
			return err
		}
	}

	return closeBlock(ctx, g, block)
}

// closeBlock applies spec.md §4.1's block-boundary contract: a
// two-successor block must have left a jump condition behind; any other
// block must leave the operand stack empty.
func closeBlock(ctx *Context, g *region.Graph, block bytecode.BasicBlock) error {
	r := g.Region(region.ID(block.ID))
	r.Nodes = ctx.stmts

	switch len(block.Succs) {
	case 0:
		if len(ctx.stack) != 0 {
			return gbferrors.New(gbferrors.StackNotEmptyAtBlockEnd, ctx.errorContext(),
				"operand stack not empty at a block with no successors")
		}
		r.Type = region.Tail

	case 2:
		if !ctx.hasJump {
			return gbferrors.New(gbferrors.StackNotEmptyAtBlockEnd, ctx.errorContext(),
				"two-successor block ended without a jump condition")
		}
		r.Type = region.Condition
		r.JumpExpr = ctx.jumpExpr
		r.Polarity = ctx.polarity
		g.SetEdges(r.ID, convertEdges(block.Succs))

	default:
		if len(ctx.stack) != 0 {
			return gbferrors.New(gbferrors.StackNotEmptyAtBlockEnd, ctx.errorContext(),
				"operand stack not empty at a linear block's end")
		}
		r.Type = region.Linear
		g.SetEdges(r.ID, convertEdges(block.Succs))
	}
	return nil
}

func convertEdges(succs []bytecode.Edge) []region.Edge {
	edges := make([]region.Edge, len(succs))
	for i, e := range succs {
		edges[i] = region.Edge{To: region.ID(e.To), Tag: convertEdgeKind(e.Kind)}
	}
	return edges
}

func convertEdgeKind(k bytecode.EdgeKind) region.EdgeTag {
	switch k {
	case bytecode.EdgeIfTrue:
		return region.IfTrue
	case bytecode.EdgeIfFalse:
		return region.IfFalse
	default:
		return region.Unconditional
	}
}
