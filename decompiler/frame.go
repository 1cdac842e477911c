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

package decompiler

import "github.com/preagonal/gbfcore/ast"

// frameKind is the tri-state tag of an operand-stack slot, mirroring
// original_source's execution_frame.rs ExecutionFrame enum
// (StandaloneNode | BuildingArray | None — the "None" case is simply the
// absence of a slot, so it is not represented here).
type frameKind uint8

const (
	frameStandalone frameKind = iota
	frameBuildingArray
)

// frame is one operand-stack slot.
type frame struct {
	kind  frameKind
	node  ast.Node   // valid when kind == frameStandalone
	elems []ast.Expr // valid when kind == frameBuildingArray
}

func standaloneFrame(n ast.Node) frame {
	return frame{kind: frameStandalone, node: n}
}

func buildingArrayFrame() frame {
	return frame{kind: frameBuildingArray}
}

// String names the frame kind for error messages (gbferrors.ExpectedExpression{frame_kind}).
func (f frame) String() string {
	switch f.kind {
	case frameStandalone:
		return "StandaloneNode"
	case frameBuildingArray:
		return "BuildingArray"
	default:
		return "Unknown"
	}
}
