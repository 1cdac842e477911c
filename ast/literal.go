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

// LiteralKind discriminates the payload carried by a Literal node.
type LiteralKind uint8

// The closed set of literal payload kinds (spec.md §3.1).
const (
	LiteralString LiteralKind = iota
	LiteralInt
	// LiteralFloat values are carried as the exact source string so their
	// spelling survives emission verbatim (spec.md §3.1, §9).
	LiteralFloat
	LiteralBool
	LiteralNull
)

// Literal is a constant value: a string, a signed 32-bit integer, a float
// carried as its source spelling, a boolean, or null.
type Literal struct {
	base
	Kind    LiteralKind
	Str     string
	Int     int32
	Float   string
	Bool    bool
}

// NewStringLiteral constructs a string Literal.
func NewStringLiteral(s string) *Literal {
	return &Literal{base: newBase(), Kind: LiteralString, Str: s}
}

// NewIntLiteral constructs a signed 32-bit integer Literal.
func NewIntLiteral(v int32) *Literal {
	return &Literal{base: newBase(), Kind: LiteralInt, Int: v}
}

// NewFloatLiteral constructs a Literal whose spelling is carried verbatim.
func NewFloatLiteral(spelling string) *Literal {
	return &Literal{base: newBase(), Kind: LiteralFloat, Float: spelling}
}

// NewBoolLiteral constructs a boolean Literal.
func NewBoolLiteral(v bool) *Literal {
	return &Literal{base: newBase(), Kind: LiteralBool, Bool: v}
}

// NewNullLiteral constructs the null Literal.
func NewNullLiteral() *Literal {
	return &Literal{base: newBase(), Kind: LiteralNull}
}

func (*Literal) exprNode() {}

// Accept routes to Visitor.VisitLiteral.
func (l *Literal) Accept(v Visitor) error { return v.VisitLiteral(l) }

// Equal compares two nodes structurally, ignoring ID.
func (l *Literal) Equal(other Node) bool {
	o, ok := other.(*Literal)
	if !ok || o.Kind != l.Kind {
		return false
	}
	switch l.Kind {
	case LiteralString:
		return l.Str == o.Str
	case LiteralInt:
		return l.Int == o.Int
	case LiteralFloat:
		return l.Float == o.Float
	case LiteralBool:
		return l.Bool == o.Bool
	case LiteralNull:
		return true
	}
	return false
}
