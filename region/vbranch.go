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

// Mirrors original_source's gbf_core/src/decompiler/structure_analysis
// handling of virtual branches (vbranch.rs, on both the AST and the
// structure-analysis side).
package region

import "github.com/preagonal/gbfcore/ast"

// vbranchTailReducer handles the case linearMergeReducer cannot: region R
// is Linear with exactly one successor S, but S has other predecessors
// too, so R and S cannot be folded together without duplicating S. R is
// retyped Tail and records a VirtualBranch placeholder statement pointing
// at S; a later pass (conditional or loop) will either materialize that
// placeholder into real control flow or prove it a harmless fall-through
// (spec.md §4.2, GLOSSARY "Virtual branch").
type vbranchTailReducer struct{}

func (vbranchTailReducer) name() string { return "vbranch-tail" }

func (vbranchTailReducer) tryApply(g *Graph, id ID) bool {
	r := g.Region(id)
	if r.Type != Linear || len(r.Edges) != 1 {
		return false
	}
	sID := r.Edges[0].To
	if !g.Active(sID) {
		return false
	}
	if len(g.Predecessors(sID)) == 1 {
		return false // linearMergeReducer's territory, not ours
	}

	r.Nodes = append(r.Nodes, ast.NewVirtualBranch(ast.RegionRef(sID)))
	r.Type = Tail
	r.Edges = nil
	return true
}
