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

// Assignment is a write to an assignable lvalue (spec.md §3.1, §4.1). The
// LHS has already been annotated with its freshly-minted SSA version by
// the time an Assignment is constructed.
type Assignment struct {
	base
	LHS Expr // Assignable (Identifier/MemberAccess) or ArrayAccess
	RHS Expr
}

// NewAssignment constructs an Assignment statement.
func NewAssignment(lhs, rhs Expr) *Assignment {
	return &Assignment{base: newBase(), LHS: lhs, RHS: rhs}
}

func (*Assignment) stmtNode() {}

// Accept routes to Visitor.VisitAssignment.
func (a *Assignment) Accept(v Visitor) error { return v.VisitAssignment(a) }

// Equal compares two nodes structurally, ignoring ID.
func (a *Assignment) Equal(other Node) bool {
	o, ok := other.(*Assignment)
	return ok && a.LHS.Equal(o.LHS) && a.RHS.Equal(o.RHS)
}
