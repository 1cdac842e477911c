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

// Array is an ordered element list, emitted with GS2's brace literal
// syntax (spec.md §3.1, §4.3).
type Array struct {
	base
	Elements []Expr
}

// NewArray constructs an Array literal.
func NewArray(elements []Expr) *Array {
	return &Array{base: newBase(), Elements: elements}
}

func (*Array) exprNode() {}

// Accept routes to Visitor.VisitArray.
func (a *Array) Accept(v Visitor) error { return v.VisitArray(a) }

// Equal compares two nodes structurally, ignoring ID.
func (a *Array) Equal(other Node) bool {
	o, ok := other.(*Array)
	if !ok || len(a.Elements) != len(o.Elements) {
		return false
	}
	for i, e := range a.Elements {
		if !e.Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}
