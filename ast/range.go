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

// Range is (start, end), used exclusively as the right-hand operand of a
// BinOp with Op == In (spec.md §3.1).
type Range struct {
	base
	Start Expr
	End   Expr
}

// NewRange constructs a Range.
func NewRange(start, end Expr) *Range {
	return &Range{base: newBase(), Start: start, End: end}
}

func (*Range) exprNode() {}

// Accept routes to Visitor.VisitRange.
func (r *Range) Accept(v Visitor) error { return v.VisitRange(r) }

// Equal compares two nodes structurally, ignoring ID.
func (r *Range) Equal(other Node) bool {
	o, ok := other.(*Range)
	return ok && r.Start.Equal(o.Start) && r.End.Equal(o.End)
}
