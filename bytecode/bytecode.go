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

// Package bytecode defines the shape of a loaded GS2 module as the
// decompiler core consumes it. Parsing the bytecode stream, building the
// control-flow graph, and rendering it to DOT are all out of scope for this
// module (spec.md §1) — this package exists only to pin the contract that
// the loader and the CFG builder are expected to satisfy.
package bytecode

// Opcode is the closed set of instructions the GS2 virtual machine can
// execute. The handler registry in package decompiler must cover every
// value the loader can emit; any gap surfaces as
// gbferrors.UnimplementedOpcode.
type Opcode string

// The minimum opcode set required by spec.md §4.1's dispatch table.
const (
	OpPushNumber Opcode = "PushNumber"
	OpPushString Opcode = "PushString"

	OpPushVariable Opcode = "PushVariable"
	OpPlayer       Opcode = "Player"
	OpLevel        Opcode = "Level"
	OpThis         Opcode = "This"
	OpTemp         Opcode = "Temp"

	OpAdd    Opcode = "Add"
	OpSub    Opcode = "Sub"
	OpMul    Opcode = "Mul"
	OpDiv    Opcode = "Div"
	OpMod    Opcode = "Mod"
	OpAnd    Opcode = "And"
	OpOr     Opcode = "Or"
	OpBitAnd Opcode = "BitAnd"
	OpBitOr  Opcode = "BitOr"
	OpBitXor Opcode = "BitXor"
	OpShl    Opcode = "Shl"
	OpShr    Opcode = "Shr"
	OpEq     Opcode = "Eq"
	OpNe     Opcode = "Ne"
	OpLt     Opcode = "Lt"
	OpLe     Opcode = "Le"
	OpGt     Opcode = "Gt"
	OpGe     Opcode = "Ge"

	OpAccessMember     Opcode = "AccessMember"
	OpAssign           Opcode = "Assign"
	OpAssignArrayIndex Opcode = "AssignArrayIndex"

	OpAssignArray Opcode = "AssignArray"
	OpInRange     Opcode = "InRange"

	OpLogicalNot   Opcode = "LogicalNot"
	OpBitwiseInvert Opcode = "BitwiseInvert"
	OpUnarySubtract Opcode = "UnarySubtract"

	OpShortCircuitAnd Opcode = "ShortCircuitAnd"
	OpShortCircuitOr  Opcode = "ShortCircuitOr"

	OpJmp Opcode = "Jmp"
	OpJeq Opcode = "Jeq"
	OpJne Opcode = "Jne"

	OpPushArray    Opcode = "PushArray"
	OpEndArray     Opcode = "EndArray"
	OpArrayElement Opcode = "ArrayElement"
	OpArrayAccess  Opcode = "ArrayAccess"

	OpRet Opcode = "Ret"
	OpPop Opcode = "Pop"

	OpLine  Opcode = "line"
	OpDebug Opcode = "debug"
)

// OperandKind discriminates the payload carried by an Operand.
type OperandKind uint8

// The closed set of operand payload kinds, per spec.md §6.1.
const (
	OperandNone OperandKind = iota
	OperandInt
	OperandString
	OperandFloat
	OperandBool
	OperandNull
)

// Operand is the typed literal payload attached to some instructions.
// Floats are carried as the exact source string so their spelling survives
// (spec.md §3.1, §9).
type Operand struct {
	Kind   OperandKind
	Int    int32
	String string
	Float  string
	Bool   bool
}

// Instruction is one stack-machine op within a BasicBlock.
type Instruction struct {
	Opcode  Opcode
	Address uint32
	Operand *Operand // nil when the opcode takes none
}

// EdgeKind tags a CFG edge with the branch polarity it represents.
type EdgeKind uint8

// The three edge kinds the core's region graph understands (spec.md §3.3).
const (
	EdgeUnconditional EdgeKind = iota
	EdgeIfTrue
	EdgeIfFalse
)

// Edge is one directed CFG edge from a basic block to a successor.
type Edge struct {
	To   int // index into Function.Blocks
	Kind EdgeKind
}

// BasicBlock is a maximal straight-line run of instructions with a single
// entry and exit, plus its outgoing CFG edges.
type BasicBlock struct {
	ID           int
	Instructions []Instruction
	Succs        []Edge
}

// Function is one decompilable unit: an ordered set of basic blocks, the
// entry block's index, and a stable name used in diagnostics.
type Function struct {
	Name    string
	Entry   int
	Blocks  []BasicBlock
}

// RPO returns the indices of f.Blocks in reverse post-order starting from
// f.Entry. This is the traversal order SSA versioning and the structural
// reducer both commit to (spec.md §5: "the implementation MUST pick and
// document a traversal (reverse post-order recommended)").
func (f *Function) RPO() []int {
	visited := make([]bool, len(f.Blocks))
	var order []int
	var visit func(i int)
	visit = func(i int) {
		if i < 0 || i >= len(f.Blocks) || visited[i] {
			return
		}
		visited[i] = true
		for _, e := range f.Blocks[i].Succs {
			visit(e.To)
		}
		order = append(order, i)
	}
	visit(f.Entry)
	// reverse post-order: post-order then reversed
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// Module is a collection of independently decompilable functions. There is
// no cross-function mutable state (spec.md §5), so a Module's functions may
// be decompiled concurrently.
type Module struct {
	Name      string
	Functions []Function
}
