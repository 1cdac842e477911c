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

package region

// reducer recognizes a local region-graph pattern rooted at one region and
// collapses it (spec.md GLOSSARY "Region reducer"). TryApply reports
// whether it fired; when it did, the caller restarts the current pass
// (spec.md §4.2's main loop).
type reducer interface {
	// name is a short label for the reducer; Reduce does not include it
	// in its errors.
	name() string
	tryApply(g *Graph, id ID) bool
}

// reducers runs in priority order every pass, matching spec.md §4.2's
// listed precedence: linear merge, then virtual-branch tail, then
// conditional, then loop.
func reducers() []reducer {
	return []reducer{
		linearMergeReducer{},
		vbranchTailReducer{},
		conditionalReducer{},
		loopReducer{},
	}
}
