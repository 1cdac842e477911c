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

// RegionRef is a region graph node id as seen from the AST layer. It is
// defined here, rather than imported from package region, to keep package
// ast free of a dependency on the structural analyzer — region.RegionID
// converts to/from RegionRef with a plain int conversion.
type RegionRef int

// PhiEdge is one (predecessor region, version) pair feeding a Phi join.
type PhiEdge struct {
	Pred    RegionRef
	Version int
}

// Phi is an SSA join: the list of incoming (predecessor region id,
// version) pairs for a location that was written on more than one
// incoming path (spec.md §3.1).
type Phi struct {
	base
	Incoming []PhiEdge
}

// NewPhi constructs a Phi node.
func NewPhi(incoming []PhiEdge) *Phi {
	return &Phi{base: newBase(), Incoming: incoming}
}

func (*Phi) exprNode() {}

// Accept routes to Visitor.VisitPhi.
func (p *Phi) Accept(v Visitor) error { return v.VisitPhi(p) }

// Equal compares two nodes structurally, ignoring ID.
func (p *Phi) Equal(other Node) bool {
	o, ok := other.(*Phi)
	if !ok || len(p.Incoming) != len(o.Incoming) {
		return false
	}
	for i, e := range p.Incoming {
		if e != o.Incoming[i] {
			return false
		}
	}
	return true
}
