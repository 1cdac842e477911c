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

// Package ssa implements the per-function SSA versioning context
// (spec.md §3.2). Every write to an assignable location mints a fresh
// version; every read binds to the current version, so later passes (the
// emitter, and anyone inspecting the AST) can disambiguate re-used names.
//
// The numbering scheme mirrors, in spirit, the dominance-driven renaming
// pass in _examples/tmc-mirror-go.tools/ssa/lift.go (Cytron et al.'s
// algorithm: a monotonically increasing counter, per-location "current
// version" bookkeeping, and a fixed traversal order) — adapted here from
// registers in a Go SSA function to GS2's assignable lvalues.
package ssa

// Version is a non-negative, strictly increasing SSA version number.
type Version int

// Context is the per-function SSA versioning state (spec.md §3.2): a map
// from a location's canonical string form to its current version, plus
// the monotonic counter that mints the next one.
//
// Context is not safe for concurrent use — it is owned by exactly one
// function's decompilation (spec.md §5), and functions within a Module
// never share SSA state.
type Context struct {
	currentVersions map[string]Version
	nextVersion     Version
}

// NewContext constructs an empty SSA context.
func NewContext() *Context {
	return &Context{currentVersions: make(map[string]Version)}
}

// NewVersionFor mints a fresh version for loc, records it as loc's current
// version, and returns it. Two distinct writes to the same location never
// share a version (spec.md §3.2 invariant).
func (c *Context) NewVersionFor(loc string) Version {
	v := c.nextVersion
	c.nextVersion++
	c.currentVersions[loc] = v
	return v
}

// CurrentVersionOf returns loc's current version, if any write to it has
// been observed yet.
func (c *Context) CurrentVersionOf(loc string) (Version, bool) {
	v, ok := c.currentVersions[loc]
	return v, ok
}

// CurrentOrNew returns loc's current version if one exists, minting a new
// one otherwise. This is the binding rule for a read that has no prior
// write in this traversal (e.g. a function parameter or global read
// before any local assignment) — spec.md §3.2.
func (c *Context) CurrentOrNew(loc string) Version {
	if v, ok := c.CurrentVersionOf(loc); ok {
		return v
	}
	return c.NewVersionFor(loc)
}

// NextVersion reports the version that will be minted by the next call to
// NewVersionFor, without consuming it. Exposed for diagnostics and tests.
func (c *Context) NextVersion() Version {
	return c.nextVersion
}
