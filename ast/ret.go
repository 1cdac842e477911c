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

// Return is a return statement; Value is nil for a void return
// (spec.md §4.3: "return <expr>;" or "return;").
type Return struct {
	base
	Value Expr // nil for void return
}

// NewReturn constructs a Return statement.
func NewReturn(value Expr) *Return {
	return &Return{base: newBase(), Value: value}
}

func (*Return) stmtNode() {}

// Accept routes to Visitor.VisitReturn.
func (r *Return) Accept(v Visitor) error { return v.VisitReturn(r) }

// Equal compares two nodes structurally, ignoring ID.
func (r *Return) Equal(other Node) bool {
	o, ok := other.(*Return)
	if !ok {
		return false
	}
	if r.Value == nil || o.Value == nil {
		return r.Value == nil && o.Value == nil
	}
	return r.Value.Equal(o.Value)
}
