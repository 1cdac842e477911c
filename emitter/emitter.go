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

// Package emitter implements spec.md §4.3, stage D: a double-dispatch
// ast.Visitor that walks a decompiled function's AST and renders it as
// GS2 source text, with precedence- and context-sensitive formatting.
//
// The visitor shape mirrors util/asthelper/asthelper.go's switch-based
// expr-to-string traversal from the teacher repository, adapted from a
// type-switch over Go SSA values to double dispatch over ast.Node, per
// spec.md §9's "Polymorphism over AST nodes" guidance.
package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preagonal/gbfcore/ast"
	"github.com/preagonal/gbfcore/config"
)

// precedence table, standard C-family order (spec.md §4.3). Higher binds
// tighter.
var precedence = map[ast.BinOpKind]int{
	ast.Or: 1,
	ast.And: 2,
	ast.BitOr: 3,
	ast.BitXor: 4,
	ast.BitAnd: 5,
	ast.Eq: 6, ast.Ne: 6,
	ast.Lt: 7, ast.Le: 7, ast.Gt: 7, ast.Ge: 7, ast.In: 7,
	ast.Shl: 8, ast.Shr: 8,
	ast.Add: 9, ast.Sub: 9,
	ast.Mul: 10, ast.Div: 10, ast.Mod: 10,
}

// rightAssociative is empty for this language's binary operators; every
// BinOp here is left-associative, so a right child with equal precedence
// always needs parentheses (spec.md §4.3 "equal and the child is on the
// non-associative side").
var rightAssociative = map[ast.BinOpKind]bool{}

// emitter walks an AST, rendering it into buf under cfg's formatting
// rules. It implements ast.Visitor; every Visit* method appends to buf
// and returns nil, since string building cannot fail — the error return
// exists only to satisfy the interface and passes child errors through.
// Nodes are not checked for missing children: a BinOp with a nil
// operand, for example, is not reported as an error.
type emitter struct {
	cfg    *config.Config
	buf    strings.Builder
	indent int
}

// Emit renders fn as GS2 source text under cfg (spec.md §4.3, §6.2).
func Emit(fn *ast.Function, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &emitter{cfg: cfg}
	if err := fn.Body.Accept(e); err != nil {
		return "", err
	}
	out := e.buf.String()
	if !cfg.PrettyPrint {
		out = strings.TrimSuffix(out, " ")
	}
	return out, nil
}

func (e *emitter) writeIndent() {
	if !e.cfg.PrettyPrint {
		return
	}
	e.buf.WriteString(strings.Repeat(" ", e.indent*e.cfg.IndentWidth))
}

// newline ends a statement or block line. With cfg.PrettyPrint disabled,
// the whole function collapses onto one line, statements separated by a
// single space instead of e.cfg.LineEnding and indentation (spec.md §6.2's
// "pretty-print" knob governs this, not a separate code path).
func (e *emitter) newline() {
	if !e.cfg.PrettyPrint {
		e.buf.WriteByte(' ')
		return
	}
	e.buf.WriteString(e.cfg.LineEnding)
}

// visitExpr renders a nested expression under the given precedence
// context, adding parentheses if required.
func (e *emitter) visitExpr(n ast.Expr, parentPrec int, rightSide bool) error {
	needsParen := false
	if bo, ok := n.(*ast.BinOp); ok {
		childPrec := precedence[bo.Op]
		if childPrec < parentPrec {
			needsParen = true
		} else if childPrec == parentPrec && rightSide && !rightAssociative[bo.Op] {
			needsParen = true
		}
	}
	if needsParen {
		e.buf.WriteByte('(')
	}
	if err := n.Accept(e); err != nil {
		return err
	}
	if needsParen {
		e.buf.WriteByte(')')
	}
	return nil
}

func (e *emitter) VisitLiteral(l *ast.Literal) error {
	switch l.Kind {
	case ast.LiteralString:
		e.buf.WriteByte('"')
		e.buf.WriteString(EscapeString(l.Str))
		e.buf.WriteByte('"')
	case ast.LiteralInt:
		e.buf.WriteString(strconv.FormatInt(int64(l.Int), 10))
	case ast.LiteralFloat:
		e.buf.WriteString(l.Float)
	case ast.LiteralBool:
		e.buf.WriteString(strconv.FormatBool(l.Bool))
	case ast.LiteralNull:
		e.buf.WriteString("null")
	}
	return nil
}

func (e *emitter) VisitIdentifier(i *ast.Identifier) error {
	e.buf.WriteString(i.Name)
	return nil
}

func (e *emitter) VisitMemberAccess(m *ast.MemberAccess) error {
	if err := m.Object.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte('.')
	return m.Field.Accept(e)
}

func (e *emitter) VisitArrayAccess(a *ast.ArrayAccess) error {
	if err := a.Array.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte('[')
	if err := a.Index.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *emitter) VisitBinOp(b *ast.BinOp) error {
	prec := precedence[b.Op]
	if err := e.visitExpr(b.Left, prec, false); err != nil {
		return err
	}
	fmt.Fprintf(&e.buf, " %s ", b.Op)
	return e.visitExpr(b.Right, prec, true)
}

func (e *emitter) VisitUnaryOp(u *ast.UnaryOp) error {
	e.buf.WriteString(u.Op.String())
	needsParen := !isAtomicOperand(u.Operand)
	if needsParen {
		e.buf.WriteByte('(')
	}
	if err := u.Operand.Accept(e); err != nil {
		return err
	}
	if needsParen {
		e.buf.WriteByte(')')
	}
	return nil
}

// isAtomicOperand reports whether n never needs parenthesising as a
// unary operand: literals, identifiers, member/array access, and calls
// all read unambiguously without them (spec.md §4.3 "parenthesise
// non-atomic operand").
func isAtomicOperand(n ast.Expr) bool {
	switch n.(type) {
	case *ast.Literal, *ast.Identifier, *ast.MemberAccess, *ast.ArrayAccess, *ast.FunctionCall:
		return true
	default:
		return false
	}
}

func (e *emitter) VisitFunctionCall(f *ast.FunctionCall) error {
	if err := f.Callee.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		if err := arg.Accept(e); err != nil {
			return err
		}
	}
	e.buf.WriteByte(')')
	return nil
}

func (e *emitter) VisitArray(a *ast.Array) error {
	e.buf.WriteByte('{')
	for i, el := range a.Elements {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		if err := el.Accept(e); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *emitter) VisitRange(r *ast.Range) error {
	if err := r.Start.Accept(e); err != nil {
		return err
	}
	e.buf.WriteString("..")
	return r.End.Accept(e)
}

func (e *emitter) VisitNew(n *ast.New) error {
	e.buf.WriteString("new ")
	if err := n.Type.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte('(')
	if err := n.Arg.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte(')')
	return nil
}

func (e *emitter) VisitNewArray(n *ast.NewArray) error {
	e.buf.WriteString("new ")
	if err := n.Type.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte('[')
	if err := n.Size.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *emitter) VisitPhi(p *ast.Phi) error {
	e.buf.WriteString("phi(")
	for i, edge := range p.Incoming {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		fmt.Fprintf(&e.buf, "r%d#%d", edge.Pred, edge.Version)
	}
	e.buf.WriteByte(')')
	return nil
}

func (e *emitter) VisitAssignment(a *ast.Assignment) error {
	e.writeIndent()
	if err := a.LHS.Accept(e); err != nil {
		return err
	}
	e.buf.WriteString(" = ")
	if err := a.RHS.Accept(e); err != nil {
		return err
	}
	e.buf.WriteByte(';')
	e.newline()
	return nil
}

func (e *emitter) VisitReturn(r *ast.Return) error {
	e.writeIndent()
	e.buf.WriteString("return")
	if r.Value != nil {
		e.buf.WriteByte(' ')
		if err := r.Value.Accept(e); err != nil {
			return err
		}
	}
	e.buf.WriteByte(';')
	e.newline()
	return nil
}

func (e *emitter) VisitVirtualBranch(vb *ast.VirtualBranch) error {
	e.writeIndent()
	fmt.Fprintf(&e.buf, "/* goto region %d */", vb.Target)
	e.newline()
	return nil
}

func (e *emitter) VisitIf(i *ast.If) error {
	e.writeIndent()
	e.buf.WriteString("if (")
	if err := i.Cond.Accept(e); err != nil {
		return err
	}
	e.buf.WriteString(") {")
	e.newline()
	e.indent++
	if err := i.Then.Accept(e); err != nil {
		return err
	}
	e.indent--
	e.writeIndent()
	e.buf.WriteByte('}')
	if i.Else != nil {
		e.buf.WriteString(" else {")
		e.newline()
		e.indent++
		if err := i.Else.Accept(e); err != nil {
			return err
		}
		e.indent--
		e.writeIndent()
		e.buf.WriteByte('}')
	}
	e.newline()
	return nil
}

func (e *emitter) VisitWhile(w *ast.While) error {
	e.writeIndent()
	e.buf.WriteString("while (")
	if err := w.Cond.Accept(e); err != nil {
		return err
	}
	e.buf.WriteString(") {")
	e.newline()
	e.indent++
	if err := w.Body.Accept(e); err != nil {
		return err
	}
	e.indent--
	e.writeIndent()
	e.buf.WriteByte('}')
	e.newline()
	return nil
}

func (e *emitter) VisitBlock(b *ast.Block) error {
	for _, stmt := range b.Statements {
		if err := stmt.Accept(e); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) VisitFunction(f *ast.Function) error {
	return f.Body.Accept(e)
}
