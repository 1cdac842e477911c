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

import "fmt"

// Identifier is a bare name, optionally annotated with the SSA version
// bound to it at this program point (spec.md §3.1, §3.2).
type Identifier struct {
	base
	Name    string
	Version *int // nil when not yet SSA-annotated
}

// NewIdentifier constructs an unversioned Identifier.
func NewIdentifier(name string) *Identifier {
	return &Identifier{base: newBase(), Name: name}
}

// WithVersion returns a copy of the identifier annotated with the given SSA
// version. Shared AST subtrees are immutable once published (spec.md
// §3.1), so annotating always produces a fresh node rather than mutating
// in place.
func (i *Identifier) WithVersion(version int) *Identifier {
	v := version
	return &Identifier{base: newBase(), Name: i.Name, Version: &v}
}

func (*Identifier) exprNode()       {}
func (*Identifier) assignableNode() {}

// Location returns the canonical SSA location string for this identifier:
// its bare name (spec.md §3.2).
func (i *Identifier) Location() string { return i.Name }

// Accept routes to Visitor.VisitIdentifier.
func (i *Identifier) Accept(v Visitor) error { return v.VisitIdentifier(i) }

// Equal compares two nodes structurally, ignoring ID; SSA versions
// participate only when both sides carry one (spec.md §3.1).
func (i *Identifier) Equal(other Node) bool {
	o, ok := other.(*Identifier)
	if !ok || o.Name != i.Name {
		return false
	}
	if i.Version != nil && o.Version != nil {
		return *i.Version == *o.Version
	}
	return true
}

func (i *Identifier) String() string {
	if i.Version != nil {
		return fmt.Sprintf("%s#%d", i.Name, *i.Version)
	}
	return i.Name
}
