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

// NewArray is constructor sugar for allocating an array of a given type
// and size (spec.md §3.1), e.g. GS2's `new int[10]`.
type NewArray struct {
	base
	Type Expr
	Size Expr
}

// NewNewArray constructs a NewArray node.
func NewNewArray(typeExpr, size Expr) *NewArray {
	return &NewArray{base: newBase(), Type: typeExpr, Size: size}
}

func (*NewArray) exprNode() {}

// Accept routes to Visitor.VisitNewArray.
func (n *NewArray) Accept(v Visitor) error { return v.VisitNewArray(n) }

// Equal compares two nodes structurally, ignoring ID.
func (n *NewArray) Equal(other Node) bool {
	o, ok := other.(*NewArray)
	return ok && n.Type.Equal(o.Type) && n.Size.Equal(o.Size)
}
