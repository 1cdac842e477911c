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

// VirtualBranch is a placeholder statement marking a control-flow
// destination before the region graph's structure has been fully resolved
// (spec.md §4.2 "Virtual-branch tail" reducer; GLOSSARY). A later reducer
// pass either materializes it into real control flow (If/While) or proves
// it a harmless fall-through and discards it during a Linear merge.
type VirtualBranch struct {
	base
	Target RegionRef
}

// NewVirtualBranch constructs a VirtualBranch pointing at the given
// region.
func NewVirtualBranch(target RegionRef) *VirtualBranch {
	return &VirtualBranch{base: newBase(), Target: target}
}

func (*VirtualBranch) stmtNode() {}

// Accept routes to Visitor.VisitVirtualBranch.
func (vb *VirtualBranch) Accept(v Visitor) error { return v.VisitVirtualBranch(vb) }

// Equal compares two nodes structurally, ignoring ID.
func (vb *VirtualBranch) Equal(other Node) bool {
	o, ok := other.(*VirtualBranch)
	return ok && vb.Target == o.Target
}
