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

// Mirrors original_source's handlers/identifier.rs.
package decompiler

import (
	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/bytecode"
)

// pushIdentifier resolves name to its current SSA version (minting one on
// first read) and pushes the annotated Identifier (spec.md §4.1).
func pushIdentifier(c *Context, name string) {
	id := ast.NewIdentifier(name)
	version := int(c.ssaCtx.CurrentOrNew(id.Location()))
	c.pushOne(id.WithVersion(version))
}

func handlePushVariable(c *Context, instr bytecode.Instruction) error {
	op, err := requireOperand(c, instr)
	if err != nil {
		return err
	}
	pushIdentifier(c, op.String)
	return nil
}

func handlePlayer(c *Context, _ bytecode.Instruction) error {
	pushIdentifier(c, "player")
	return nil
}

func handleLevel(c *Context, _ bytecode.Instruction) error {
	pushIdentifier(c, "level")
	return nil
}

func handleThis(c *Context, _ bytecode.Instruction) error {
	pushIdentifier(c, "this")
	return nil
}

func handleTemp(c *Context, _ bytecode.Instruction) error {
	pushIdentifier(c, "temp")
	return nil
}
