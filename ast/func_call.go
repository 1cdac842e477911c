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

// FunctionCall is (callee assignable, positional argument list)
// (spec.md §3.1).
type FunctionCall struct {
	base
	Callee Assignable
	Args   []Expr
}

// NewFunctionCall constructs a FunctionCall.
func NewFunctionCall(callee Assignable, args []Expr) *FunctionCall {
	return &FunctionCall{base: newBase(), Callee: callee, Args: args}
}

func (*FunctionCall) exprNode() {}

// Accept routes to Visitor.VisitFunctionCall.
func (f *FunctionCall) Accept(v Visitor) error { return v.VisitFunctionCall(f) }

// Equal compares two nodes structurally, ignoring ID.
func (f *FunctionCall) Equal(other Node) bool {
	o, ok := other.(*FunctionCall)
	if !ok || !f.Callee.Equal(o.Callee) || len(f.Args) != len(o.Args) {
		return false
	}
	for i, a := range f.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}
