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

import "github.com/preagonal/gbfcore/gbferrors"

// New is constructor sugar: a type-expression plus a single argument that
// must be a string literal or an identifier (spec.md §3.1).
type New struct {
	base
	Type Expr
	Arg  Expr
}

// NewNew constructs a New node, validating that Arg is a string literal or
// identifier per spec.md §3.1.
func NewNew(typeExpr, arg Expr) (*New, error) {
	if !isStringLiteralOrIdentifier(arg) {
		return nil, gbferrors.New(gbferrors.InvalidOperand, gbferrors.Context{},
			"New's argument must be a string literal or identifier")
	}
	return &New{base: newBase(), Type: typeExpr, Arg: arg}, nil
}

func isStringLiteralOrIdentifier(e Expr) bool {
	switch n := e.(type) {
	case *Identifier:
		return true
	case *Literal:
		return n.Kind == LiteralString
	default:
		return false
	}
}

func (*New) exprNode() {}

// Accept routes to Visitor.VisitNew.
func (n *New) Accept(v Visitor) error { return v.VisitNew(n) }

// Equal compares two nodes structurally, ignoring ID.
func (n *New) Equal(other Node) bool {
	o, ok := other.(*New)
	return ok && n.Type.Equal(o.Type) && n.Arg.Equal(o.Arg)
}
