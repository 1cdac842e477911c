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

// ArrayAccess is (array-expression, index-expression), optionally
// SSA-versioned. Deliberately NOT Assignable (spec.md §4.1): the
// AssignArrayIndex/AssignArray handler pair builds it explicitly as an
// lvalue rather than letting it be popped generically off the operand
// stack.
type ArrayAccess struct {
	base
	Array   Expr
	Index   Expr
	Version *int
}

// NewArrayAccess constructs an ArrayAccess over the given array and index.
func NewArrayAccess(array, index Expr) *ArrayAccess {
	return &ArrayAccess{base: newBase(), Array: array, Index: index}
}

// WithVersion returns a copy annotated with the given SSA version.
func (a *ArrayAccess) WithVersion(version int) *ArrayAccess {
	v := version
	return &ArrayAccess{base: newBase(), Array: a.Array, Index: a.Index, Version: &v}
}

func (*ArrayAccess) exprNode() {}

// Accept routes to Visitor.VisitArrayAccess.
func (a *ArrayAccess) Accept(v Visitor) error { return v.VisitArrayAccess(a) }

// Equal compares two nodes structurally, ignoring ID.
func (a *ArrayAccess) Equal(other Node) bool {
	o, ok := other.(*ArrayAccess)
	if !ok {
		return false
	}
	if !a.Array.Equal(o.Array) || !a.Index.Equal(o.Index) {
		return false
	}
	if a.Version != nil && o.Version != nil {
		return *a.Version == *o.Version
	}
	return a.Version == nil && o.Version == nil
}
