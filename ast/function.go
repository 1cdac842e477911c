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

// Function is the top-level AstKind::Function wrapper: a decompiled
// function's name plus its final, fully-structured body (spec.md §3.1).
// It is produced once the structural reducer (package region) has reduced
// the region graph to a single region and package emitter has nothing left
// to do but walk this node.
type Function struct {
	base
	Name string
	Body *Block
}

// NewFunction constructs a Function AST node.
func NewFunction(name string, body *Block) *Function {
	return &Function{base: newBase(), Name: name, Body: body}
}

// Accept routes to Visitor.VisitFunction.
func (f *Function) Accept(v Visitor) error { return v.VisitFunction(f) }

// Equal compares two nodes structurally, ignoring ID.
func (f *Function) Equal(other Node) bool {
	o, ok := other.(*Function)
	return ok && f.Name == o.Name && f.Body.Equal(o.Body)
}
