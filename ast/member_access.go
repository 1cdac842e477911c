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

import "strings"

// MemberAccess is an ordered (base, field) pair, both assignable,
// forming a left-associative chain (e.g. a.b.c), per spec.md §3.1.
type MemberAccess struct {
	base
	Object  Assignable
	Field   Assignable
	Version *int
}

// NewMemberAccess constructs a MemberAccess over the given base and field.
func NewMemberAccess(object, field Assignable) *MemberAccess {
	return &MemberAccess{base: newBase(), Object: object, Field: field}
}

// WithVersion returns a copy annotated with the given SSA version.
func (m *MemberAccess) WithVersion(version int) *MemberAccess {
	v := version
	return &MemberAccess{base: newBase(), Object: m.Object, Field: m.Field, Version: &v}
}

func (*MemberAccess) exprNode()       {}
func (*MemberAccess) assignableNode() {}

// Accept routes to Visitor.VisitMemberAccess.
func (m *MemberAccess) Accept(v Visitor) error { return v.VisitMemberAccess(m) }

// Location flattens the chain with "." into the canonical SSA location
// string (spec.md §3.2), e.g. "player.chat".
func (m *MemberAccess) Location() string {
	var b strings.Builder
	b.WriteString(m.Object.Location())
	b.WriteByte('.')
	b.WriteString(m.Field.Location())
	return b.String()
}

// Equal compares two nodes structurally, ignoring ID.
func (m *MemberAccess) Equal(other Node) bool {
	o, ok := other.(*MemberAccess)
	if !ok {
		return false
	}
	if !m.Object.Equal(o.Object) || !m.Field.Equal(o.Field) {
		return false
	}
	if m.Version != nil && o.Version != nil {
		return *m.Version == *o.Version
	}
	return m.Version == nil && o.Version == nil
}
