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

// Mirrors original_source's handlers/jump.rs.
package decompiler

import (
	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/region"
)

// handleJmp is the unconditional jump: it carries no operand and leaves
// no jump_expr on the region (spec.md §4.1).
func handleJmp(*Context, bytecode.Instruction) error { return nil }

// handleJne pops the branch condition and records it with JumpWhenFalse
// polarity: the recorded expression already reflects the truthy-continue
// semantics (spec.md §4.2 "Condition inversion").
func handleJne(c *Context, _ bytecode.Instruction) error {
	cond, err := c.popExpression()
	if err != nil {
		return err
	}
	c.setJump(cond, region.JumpWhenFalse)
	return nil
}

// handleJeq pops the branch condition and records it with JumpWhenTrue
// polarity: the Conditional reducer negates it before use as an If's
// condition (spec.md §4.2).
func handleJeq(c *Context, _ bytecode.Instruction) error {
	cond, err := c.popExpression()
	if err != nil {
		return err
	}
	c.setJump(cond, region.JumpWhenTrue)
	return nil
}
