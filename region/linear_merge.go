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

// Mirrors original_source's
// gbf_core/src/decompiler/structure_analysis/linear_region_reducer.rs: the
// simplest of the four reducers, and the one every pass tries first.
package region

// linearMergeReducer eliminates trivially linear chains: region R has
// exactly one successor S, and S has exactly one predecessor (R), so R and
// S can never be entered separately — fold S into R (spec.md §4.2).
type linearMergeReducer struct{}

func (linearMergeReducer) name() string { return "linear-merge" }

func (linearMergeReducer) tryApply(g *Graph, id ID) bool {
	r := g.Region(id)
	if len(r.Edges) != 1 {
		return false
	}
	sID := r.Edges[0].To
	if !g.Active(sID) || sID == id {
		return false
	}
	if len(g.Predecessors(sID)) != 1 {
		return false
	}

	s := g.Region(sID)
	r.Nodes = append(r.Nodes, s.Nodes...)
	r.JumpExpr = s.JumpExpr
	r.Polarity = s.Polarity
	r.Type = s.Type
	r.Edges = s.Edges

	g.MarkInactive(sID)
	return true
}
