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

// Mirrors original_source's handlers/short_circuit.rs. spec.md §9 notes
// the source under-specifies short-circuit fusion; per §4.2/§8 scenario 6
// this core resolves it by treating ShortCircuitAnd/Or exactly like a
// Jne/Jeq that also leaves its condition on the stack, so a later
// consumer (e.g. a subsequent binary op building `a && b` directly, or
// the Conditional reducer if the block ends here) still sees the value.
package decompiler

import (
	"github.com/preagonal/gbfcore/bytecode"
	"github.com/preagonal/gbfcore/region"
)

// handleShortCircuitAnd: `a && b` jumps around `b` when `a` is already
// false, so the recorded polarity is JumpWhenFalse.
func handleShortCircuitAnd(c *Context, _ bytecode.Instruction) error {
	cond, err := c.popExpression()
	if err != nil {
		return err
	}
	c.pushOne(cond)
	c.setJump(cond, region.JumpWhenFalse)
	return nil
}

// handleShortCircuitOr: `a || b` jumps around `b` when `a` is already
// true, so the recorded polarity is JumpWhenTrue.
func handleShortCircuitOr(c *Context, _ bytecode.Instruction) error {
	cond, err := c.popExpression()
	if err != nil {
		return err
	}
	c.pushOne(cond)
	c.setJump(cond, region.JumpWhenTrue)
	return nil
}
