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

package ast

// Visitor is the Go-idiomatic rendering of the source's trait-based
// AstVisitor/AstVisitable double dispatch (original_source's
// gbf_core/src/decompiler/ast/visitors/mod.rs; see DESIGN NOTES §9 of
// spec.md, "Polymorphism over AST nodes"). Each node kind's Accept method
// routes to exactly one of these methods, so emit logic for a kind lives in
// one place no matter which Visitor implementation is walking the tree.
type Visitor interface {
	VisitLiteral(*Literal) error
	VisitIdentifier(*Identifier) error
	VisitMemberAccess(*MemberAccess) error
	VisitArrayAccess(*ArrayAccess) error
	VisitBinOp(*BinOp) error
	VisitUnaryOp(*UnaryOp) error
	VisitFunctionCall(*FunctionCall) error
	VisitArray(*Array) error
	VisitRange(*Range) error
	VisitNew(*New) error
	VisitNewArray(*NewArray) error
	VisitPhi(*Phi) error

	VisitAssignment(*Assignment) error
	VisitReturn(*Return) error
	VisitVirtualBranch(*VirtualBranch) error

	VisitIf(*If) error
	VisitWhile(*While) error

	VisitBlock(*Block) error
	VisitFunction(*Function) error
}
